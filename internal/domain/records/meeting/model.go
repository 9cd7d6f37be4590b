// Package meeting provides the Meeting record (scheduled appointments).
package meeting

import (
	"context"
	"time"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/entity"
	"crmdesk/internal/core/id"
)

// Meeting represents a scheduled appointment, optionally tied to a client.
type Meeting struct {
	entity.BaseRecord

	Title string `db:"title" json:"title"`

	// ScheduledAt orders the default meeting list (soonest first)
	ScheduledAt time.Time `db:"scheduled_at" json:"scheduledAt"`

	// DurationMin is the planned length in minutes
	DurationMin int `db:"duration_min" json:"durationMin"`

	Location *string `db:"location" json:"location,omitempty"`
	ClientID *id.ID  `db:"client_id" json:"clientId,omitempty"`
	Notes    *string `db:"notes" json:"notes,omitempty"`
}

// NewMeeting creates a Meeting with required fields.
func NewMeeting(title string, scheduledAt time.Time) *Meeting {
	return &Meeting{
		BaseRecord:  entity.NewBaseRecord(),
		Title:       title,
		ScheduledAt: scheduledAt,
		DurationMin: 30,
	}
}

// Validate implements entity.Validatable interface.
func (m *Meeting) Validate(ctx context.Context) error {
	if m.Title == "" {
		return apperror.NewValidation("title is required").
			WithDetail("field", "title")
	}

	if m.ScheduledAt.IsZero() {
		return apperror.NewValidation("scheduled time is required").
			WithDetail("field", "scheduledAt")
	}

	if m.DurationMin < 0 {
		return apperror.NewValidation("duration cannot be negative").
			WithDetail("field", "durationMin")
	}

	return nil
}

// EndsAt returns the planned end time.
func (m *Meeting) EndsAt() time.Time {
	return m.ScheduledAt.Add(time.Duration(m.DurationMin) * time.Minute)
}
