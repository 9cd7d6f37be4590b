package lead

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk/internal/core/apperror"
)

func TestLead_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Lead)
		wantErr bool
	}{
		{"valid", func(*Lead) {}, false},
		{"missing name", func(l *Lead) { l.Name = "" }, true},
		{"missing email", func(l *Lead) { l.Email = "" }, true},
		{"malformed email", func(l *Lead) { l.Email = "nope" }, true},
		{"missing source", func(l *Lead) { l.Source = "" }, true},
		{"unknown status", func(l *Lead) { l.Status = Status("hot") }, true},
		{"negative value", func(l *Lead) { l.Value = decimal.NewFromInt(-1) }, true},
		{"qualified with value", func(l *Lead) {
			l.Status = StatusQualified
			l.Value = decimal.NewFromInt(5000)
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLead("Initech", "info@initech.example", "referral")
			tt.mutate(l)
			err := l.Validate(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLead_Defaults(t *testing.T) {
	l := NewLead("Initech", "info@initech.example", "referral")
	assert.Equal(t, StatusNew, l.Status)
	assert.True(t, l.Value.IsZero())
}
