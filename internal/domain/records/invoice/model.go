// Package invoice provides the Invoice record (billing documents).
package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/entity"
	"crmdesk/internal/core/id"
)

// Status defines the invoice lifecycle state.
type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Invoice represents a billing document issued to a client.
type Invoice struct {
	entity.BaseRecord

	// Number is the document number, assigned on create (e.g. INV-2026-00001)
	Number string `db:"number" json:"number"`

	// ClientID references the billed client. Kept as a loose reference:
	// restoring a trashed invoice may leave it dangling.
	ClientID  id.ID  `db:"client_id" json:"clientId"`
	ProjectID *id.ID `db:"project_id" json:"projectId,omitempty"`

	Amount decimal.Decimal `db:"amount" json:"amount"`
	Status Status          `db:"status" json:"status"`

	// IssueDate orders the default invoice list (newest first)
	IssueDate time.Time  `db:"issue_date" json:"issueDate"`
	DueDate   *time.Time `db:"due_date" json:"dueDate,omitempty"`
}

// NewInvoice creates an Invoice with required fields.
func NewInvoice(clientID id.ID, amount decimal.Decimal) *Invoice {
	return &Invoice{
		BaseRecord: entity.NewBaseRecord(),
		ClientID:   clientID,
		Amount:     amount,
		Status:     StatusDraft,
		IssueDate:  time.Now().UTC(),
	}
}

// Validate implements entity.Validatable interface.
func (i *Invoice) Validate(ctx context.Context) error {
	if id.IsNil(i.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	if !i.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount").
			WithDetail("value", i.Amount.String())
	}

	if !isValidStatus(i.Status) {
		return apperror.NewValidation("invalid invoice status").
			WithDetail("field", "status").
			WithDetail("value", string(i.Status))
	}

	if i.DueDate != nil && i.DueDate.Before(i.IssueDate) {
		return apperror.NewValidation("due date cannot precede issue date").
			WithDetail("field", "dueDate")
	}

	return nil
}

// IsOverdue reports whether the invoice is unpaid past its due date.
func (i *Invoice) IsOverdue(now time.Time) bool {
	if i.Status == StatusPaid || i.DueDate == nil {
		return false
	}
	return i.DueDate.Before(now)
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}
