package dto

import (
	"github.com/shopspring/decimal"

	"crmdesk/internal/domain/records/lead"
)

// CreateLeadRequest is the request body for creating a lead.
type CreateLeadRequest struct {
	Name   string          `json:"name" binding:"required"`
	Email  string          `json:"email" binding:"required"`
	Phone  *string         `json:"phone"`
	Source string          `json:"source" binding:"required"`
	Status lead.Status     `json:"status"`
	Value  decimal.Decimal `json:"value"`
}

// ToEntity converts DTO to domain record.
func (r *CreateLeadRequest) ToEntity() *lead.Lead {
	l := lead.NewLead(r.Name, r.Email, r.Source)
	l.Phone = r.Phone
	if r.Status != "" {
		l.Status = r.Status
	}
	l.Value = r.Value
	return l
}

// UpdateLeadRequest is the request body for updating a lead.
type UpdateLeadRequest struct {
	Name   string          `json:"name" binding:"required"`
	Email  string          `json:"email" binding:"required"`
	Phone  *string         `json:"phone"`
	Source string          `json:"source" binding:"required"`
	Status lead.Status     `json:"status" binding:"required"`
	Value  decimal.Decimal `json:"value"`
}

// ApplyTo applies update DTO to existing record.
func (r *UpdateLeadRequest) ApplyTo(l *lead.Lead) {
	l.Name = r.Name
	l.Email = r.Email
	l.Phone = r.Phone
	l.Source = r.Source
	l.Status = r.Status
	l.Value = r.Value
}

// LeadResponse is the response body for a lead.
type LeadResponse struct {
	BaseResponse
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Phone  *string         `json:"phone,omitempty"`
	Source string          `json:"source"`
	Status lead.Status     `json:"status"`
	Value  decimal.Decimal `json:"value"`
}

// FromLead creates response DTO from domain record.
func FromLead(l *lead.Lead) LeadResponse {
	return LeadResponse{
		BaseResponse: FromBaseRecord(l.BaseRecord),
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Source:       l.Source,
		Status:       l.Status,
		Value:        l.Value,
	}
}
