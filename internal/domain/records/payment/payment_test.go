package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk/internal/core/apperror"
)

func TestPayment_Validate(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		mutate  func(*Payment)
		wantErr bool
	}{
		{"valid pending", func(*Payment) {}, false},
		{"zero amount", func(p *Payment) { p.Amount = decimal.Zero }, true},
		{"negative amount", func(p *Payment) { p.Amount = decimal.NewFromInt(-10) }, true},
		{"unknown method", func(p *Payment) { p.Method = Method("crypto") }, true},
		{"unknown status", func(p *Payment) { p.Status = Status("refunded") }, true},
		{"completed without paid time", func(p *Payment) { p.Status = StatusCompleted }, true},
		{"completed with paid time", func(p *Payment) {
			p.Status = StatusCompleted
			p.PaidAt = &now
		}, false},
		{"failed", func(p *Payment) { p.Status = StatusFailed }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPayment(decimal.NewFromInt(250), MethodCard)
			tt.mutate(p)
			err := p.Validate(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPayment_Defaults(t *testing.T) {
	p := NewPayment(decimal.NewFromInt(250), MethodCash)
	assert.Equal(t, StatusPending, p.Status)
	assert.Nil(t, p.PaidAt)
}
