// Package entity defines the common shape shared by all dashboard records.
package entity

import (
	"context"
	"time"

	"crmdesk/internal/core/id"
)

// Validatable is implemented by records that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks record invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// BaseRecord contains the fields every backing table carries:
// a server-assigned primary key, the owning user, and audit timestamps.
type BaseRecord struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// UserID is the owning user; every read and write is scoped to it
	UserID string `db:"user_id" json:"userId"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewBaseRecord creates a BaseRecord with generated ID and fresh timestamps.
func NewBaseRecord() BaseRecord {
	now := time.Now().UTC()
	return BaseRecord{
		ID:        id.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetID returns the primary key.
func (b *BaseRecord) GetID() id.ID {
	return b.ID
}

// Touch updates the UpdatedAt timestamp.
func (b *BaseRecord) Touch() {
	b.UpdatedAt = time.Now().UTC()
}

// SetOwner stamps the owning user id.
func (b *BaseRecord) SetOwner(userID string) {
	b.UserID = userID
}

// Owner returns the owning user id.
func (b *BaseRecord) Owner() string {
	return b.UserID
}
