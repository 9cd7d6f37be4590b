// Package client provides the Client record: the people and companies
// the rest of the dashboard hangs off.
package client

import (
	"context"
	"regexp"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/entity"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Client represents a customer account.
type Client struct {
	entity.BaseRecord

	// Name is the display name shown in lists and trash entries
	Name string `db:"name" json:"name"`

	// Email is the primary contact address, unique per owner
	Email string `db:"email" json:"email"`

	Phone   *string `db:"phone" json:"phone,omitempty"`
	Company *string `db:"company" json:"company,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`
	Notes   *string `db:"notes" json:"notes,omitempty"`
}

// NewClient creates a Client with required fields.
func NewClient(name, email string) *Client {
	return &Client{
		BaseRecord: entity.NewBaseRecord(),
		Name:       name,
		Email:      email,
	}
}

// Validate implements entity.Validatable interface.
func (c *Client) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if c.Email == "" {
		return apperror.NewValidation("email is required").
			WithDetail("field", "email")
	}
	if !emailRE.MatchString(c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email").
			WithDetail("value", c.Email)
	}

	return nil
}
