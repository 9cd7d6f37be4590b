package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"crmdesk/internal/core/id"
	"crmdesk/internal/domain/records/payment"
)

// CreatePaymentRequest is the request body for creating a payment.
type CreatePaymentRequest struct {
	InvoiceID *id.ID          `json:"invoiceId"`
	ClientID  *id.ID          `json:"clientId"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    payment.Method  `json:"method" binding:"required"`
	Status    payment.Status  `json:"status"`
	PaidAt    *time.Time      `json:"paidAt"`
}

// ToEntity converts DTO to domain record.
func (r *CreatePaymentRequest) ToEntity() *payment.Payment {
	p := payment.NewPayment(r.Amount, r.Method)
	p.InvoiceID = r.InvoiceID
	p.ClientID = r.ClientID
	if r.Status != "" {
		p.Status = r.Status
	}
	p.PaidAt = r.PaidAt
	return p
}

// UpdatePaymentRequest is the request body for updating a payment.
type UpdatePaymentRequest struct {
	InvoiceID *id.ID          `json:"invoiceId"`
	ClientID  *id.ID          `json:"clientId"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    payment.Method  `json:"method" binding:"required"`
	Status    payment.Status  `json:"status" binding:"required"`
	PaidAt    *time.Time      `json:"paidAt"`
}

// ApplyTo applies update DTO to existing record.
func (r *UpdatePaymentRequest) ApplyTo(p *payment.Payment) {
	p.InvoiceID = r.InvoiceID
	p.ClientID = r.ClientID
	p.Amount = r.Amount
	p.Method = r.Method
	p.Status = r.Status
	p.PaidAt = r.PaidAt
}

// PaymentResponse is the response body for a payment.
type PaymentResponse struct {
	BaseResponse
	InvoiceID *string         `json:"invoiceId,omitempty"`
	ClientID  *string         `json:"clientId,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Method    payment.Method  `json:"method"`
	Status    payment.Status  `json:"status"`
	PaidAt    *time.Time      `json:"paidAt,omitempty"`
}

// FromPayment creates response DTO from domain record.
func FromPayment(p *payment.Payment) PaymentResponse {
	resp := PaymentResponse{
		BaseResponse: FromBaseRecord(p.BaseRecord),
		Amount:       p.Amount,
		Method:       p.Method,
		Status:       p.Status,
		PaidAt:       p.PaidAt,
	}
	if p.InvoiceID != nil {
		s := p.InvoiceID.String()
		resp.InvoiceID = &s
	}
	if p.ClientID != nil {
		s := p.ClientID.String()
		resp.ClientID = &s
	}
	return resp
}
