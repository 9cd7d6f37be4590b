package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/id"
)

func validInvoice() *Invoice {
	return NewInvoice(id.New(), decimal.NewFromInt(100))
}

func TestInvoice_Validate(t *testing.T) {
	t.Run("valid draft", func(t *testing.T) {
		assert.NoError(t, validInvoice().Validate(context.Background()))
	})

	t.Run("missing client", func(t *testing.T) {
		inv := validInvoice()
		inv.ClientID = id.ID{}
		err := inv.Validate(context.Background())
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("zero amount", func(t *testing.T) {
		inv := validInvoice()
		inv.Amount = decimal.Zero
		assert.Error(t, inv.Validate(context.Background()))
	})

	t.Run("negative amount", func(t *testing.T) {
		inv := validInvoice()
		inv.Amount = decimal.NewFromInt(-5)
		assert.Error(t, inv.Validate(context.Background()))
	})

	t.Run("unknown status", func(t *testing.T) {
		inv := validInvoice()
		inv.Status = Status("cancelled")
		assert.Error(t, inv.Validate(context.Background()))
	})

	t.Run("due before issue", func(t *testing.T) {
		inv := validInvoice()
		due := inv.IssueDate.AddDate(0, 0, -1)
		inv.DueDate = &due
		assert.Error(t, inv.Validate(context.Background()))
	})

	t.Run("due after issue", func(t *testing.T) {
		inv := validInvoice()
		due := inv.IssueDate.AddDate(0, 1, 0)
		inv.DueDate = &due
		assert.NoError(t, inv.Validate(context.Background()))
	})
}

func TestInvoice_IsOverdue(t *testing.T) {
	now := time.Now().UTC()
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	inv := validInvoice()
	assert.False(t, inv.IsOverdue(now), "no due date")

	inv.DueDate = &past
	inv.Status = StatusSent
	assert.True(t, inv.IsOverdue(now))

	inv.Status = StatusPaid
	assert.False(t, inv.IsOverdue(now), "paid invoices never go overdue")

	inv.Status = StatusSent
	inv.DueDate = &future
	assert.False(t, inv.IsOverdue(now))
}

func TestNewInvoice_Defaults(t *testing.T) {
	inv := validInvoice()
	assert.Equal(t, StatusDraft, inv.Status)
	assert.False(t, inv.IssueDate.IsZero())
	assert.Empty(t, inv.Number, "number is assigned on create")
}
