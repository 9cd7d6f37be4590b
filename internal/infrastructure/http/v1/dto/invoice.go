package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"crmdesk/internal/core/id"
	"crmdesk/internal/domain/records/invoice"
)

// CreateInvoiceRequest is the request body for creating an invoice.
// The document number is assigned by the server.
type CreateInvoiceRequest struct {
	ClientID  id.ID           `json:"clientId" binding:"required"`
	ProjectID *id.ID          `json:"projectId"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Status    invoice.Status  `json:"status"`
	IssueDate *time.Time      `json:"issueDate"`
	DueDate   *time.Time      `json:"dueDate"`
}

// ToEntity converts DTO to domain record.
func (r *CreateInvoiceRequest) ToEntity() *invoice.Invoice {
	inv := invoice.NewInvoice(r.ClientID, r.Amount)
	inv.ProjectID = r.ProjectID
	if r.Status != "" {
		inv.Status = r.Status
	}
	if r.IssueDate != nil {
		inv.IssueDate = *r.IssueDate
	}
	inv.DueDate = r.DueDate
	return inv
}

// UpdateInvoiceRequest is the request body for updating an invoice.
type UpdateInvoiceRequest struct {
	ClientID  id.ID           `json:"clientId" binding:"required"`
	ProjectID *id.ID          `json:"projectId"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Status    invoice.Status  `json:"status" binding:"required"`
	IssueDate time.Time       `json:"issueDate" binding:"required"`
	DueDate   *time.Time      `json:"dueDate"`
}

// ApplyTo applies update DTO to existing record. The number is immutable.
func (r *UpdateInvoiceRequest) ApplyTo(inv *invoice.Invoice) {
	inv.ClientID = r.ClientID
	inv.ProjectID = r.ProjectID
	inv.Amount = r.Amount
	inv.Status = r.Status
	inv.IssueDate = r.IssueDate
	inv.DueDate = r.DueDate
}

// InvoiceResponse is the response body for an invoice.
type InvoiceResponse struct {
	BaseResponse
	Number    string          `json:"number"`
	ClientID  string          `json:"clientId"`
	ProjectID *string         `json:"projectId,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Status    invoice.Status  `json:"status"`
	IssueDate time.Time       `json:"issueDate"`
	DueDate   *time.Time      `json:"dueDate,omitempty"`
}

// FromInvoice creates response DTO from domain record.
func FromInvoice(inv *invoice.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		BaseResponse: FromBaseRecord(inv.BaseRecord),
		Number:       inv.Number,
		ClientID:     inv.ClientID.String(),
		Amount:       inv.Amount,
		Status:       inv.Status,
		IssueDate:    inv.IssueDate,
		DueDate:      inv.DueDate,
	}
	if inv.ProjectID != nil {
		s := inv.ProjectID.String()
		resp.ProjectID = &s
	}
	return resp
}
