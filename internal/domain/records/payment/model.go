// Package payment provides the Payment record (money received against
// invoices).
package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/entity"
	"crmdesk/internal/core/id"
)

// Status defines the payment processing state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Method defines how the payment was made.
type Method string

const (
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
)

// Payment represents money received, optionally tied to an invoice.
type Payment struct {
	entity.BaseRecord

	InvoiceID *id.ID `db:"invoice_id" json:"invoiceId,omitempty"`
	ClientID  *id.ID `db:"client_id" json:"clientId,omitempty"`

	Amount decimal.Decimal `db:"amount" json:"amount"`
	Method Method          `db:"method" json:"method"`
	Status Status          `db:"status" json:"status"`

	// PaidAt orders the default payment list (newest first)
	PaidAt *time.Time `db:"paid_at" json:"paidAt,omitempty"`
}

// NewPayment creates a Payment with required fields.
func NewPayment(amount decimal.Decimal, method Method) *Payment {
	return &Payment{
		BaseRecord: entity.NewBaseRecord(),
		Amount:     amount,
		Method:     method,
		Status:     StatusPending,
	}
}

// Validate implements entity.Validatable interface.
func (p *Payment) Validate(ctx context.Context) error {
	if !p.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount").
			WithDetail("value", p.Amount.String())
	}

	if !isValidMethod(p.Method) {
		return apperror.NewValidation("invalid payment method").
			WithDetail("field", "method").
			WithDetail("value", string(p.Method))
	}

	if !isValidStatus(p.Status) {
		return apperror.NewValidation("invalid payment status").
			WithDetail("field", "status").
			WithDetail("value", string(p.Status))
	}

	if p.Status == StatusCompleted && p.PaidAt == nil {
		return apperror.NewValidation("completed payment requires paid time").
			WithDetail("field", "paidAt")
	}

	return nil
}

func isValidMethod(m Method) bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer:
		return true
	}
	return false
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	}
	return false
}
