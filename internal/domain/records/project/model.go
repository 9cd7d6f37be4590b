// Package project provides the Project record (engagements tasks and
// invoices can reference).
package project

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/entity"
	"crmdesk/internal/core/id"
)

// Status defines the project lifecycle state.
type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
)

// Project represents a client engagement.
type Project struct {
	entity.BaseRecord

	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`

	Status   Status `db:"status" json:"status"`
	ClientID *id.ID `db:"client_id" json:"clientId,omitempty"`

	StartDate *time.Time      `db:"start_date" json:"startDate,omitempty"`
	EndDate   *time.Time      `db:"end_date" json:"endDate,omitempty"`
	Budget    decimal.Decimal `db:"budget" json:"budget"`
}

// NewProject creates a Project with required fields.
func NewProject(name string) *Project {
	return &Project{
		BaseRecord: entity.NewBaseRecord(),
		Name:       name,
		Status:     StatusActive,
	}
}

// Validate implements entity.Validatable interface.
func (p *Project) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if !isValidStatus(p.Status) {
		return apperror.NewValidation("invalid project status").
			WithDetail("field", "status").
			WithDetail("value", string(p.Status))
	}

	if p.Budget.IsNegative() {
		return apperror.NewValidation("budget cannot be negative").
			WithDetail("field", "budget")
	}

	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return apperror.NewValidation("end date cannot precede start date").
			WithDetail("field", "endDate")
	}

	return nil
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusOnHold, StatusCompleted:
		return true
	}
	return false
}
