// Package teammate provides the Team record (colleagues shown on the
// team board).
package teammate

import (
	"context"
	"regexp"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/entity"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Teammate represents a team member entry.
type Teammate struct {
	entity.BaseRecord

	Name  string  `db:"name" json:"name"`
	Email string  `db:"email" json:"email"`
	Role  *string `db:"role" json:"role,omitempty"`
	Phone *string `db:"phone" json:"phone,omitempty"`
}

// NewTeammate creates a Teammate with required fields.
func NewTeammate(name, email string) *Teammate {
	return &Teammate{
		BaseRecord: entity.NewBaseRecord(),
		Name:       name,
		Email:      email,
	}
}

// Validate implements entity.Validatable interface.
func (t *Teammate) Validate(ctx context.Context) error {
	if t.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if t.Email == "" {
		return apperror.NewValidation("email is required").
			WithDetail("field", "email")
	}
	if !emailRE.MatchString(t.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email").
			WithDetail("value", t.Email)
	}

	return nil
}
