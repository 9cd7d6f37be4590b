// Package lead provides the Lead record (prospects in the sales funnel).
package lead

import (
	"context"
	"regexp"

	"github.com/shopspring/decimal"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/entity"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Status defines the lead funnel state.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusLost      Status = "lost"
)

// Lead represents a sales prospect.
type Lead struct {
	entity.BaseRecord

	Name  string  `db:"name" json:"name"`
	Email string  `db:"email" json:"email"`
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Source records where the lead came from (e.g. referral, website)
	Source string `db:"source" json:"source"`
	Status Status `db:"status" json:"status"`

	// Value is the estimated deal value
	Value decimal.Decimal `db:"value" json:"value"`
}

// NewLead creates a Lead with required fields.
func NewLead(name, email, source string) *Lead {
	return &Lead{
		BaseRecord: entity.NewBaseRecord(),
		Name:       name,
		Email:      email,
		Source:     source,
		Status:     StatusNew,
	}
}

// Validate implements entity.Validatable interface.
func (l *Lead) Validate(ctx context.Context) error {
	if l.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if l.Email == "" {
		return apperror.NewValidation("email is required").
			WithDetail("field", "email")
	}
	if !emailRE.MatchString(l.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email").
			WithDetail("value", l.Email)
	}

	if l.Source == "" {
		return apperror.NewValidation("source is required").
			WithDetail("field", "source")
	}

	if !isValidStatus(l.Status) {
		return apperror.NewValidation("invalid lead status").
			WithDetail("field", "status").
			WithDetail("value", string(l.Status))
	}

	if l.Value.IsNegative() {
		return apperror.NewValidation("value cannot be negative").
			WithDetail("field", "value")
	}

	return nil
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusLost:
		return true
	}
	return false
}
