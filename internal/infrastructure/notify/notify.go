// Package notify emits dashboard activity events (record created,
// deleted, restored) to a pluggable sink.
package notify

import (
	"context"
	"time"
)

// Event is a single activity notification.
type Event struct {
	// Type names the action, e.g. "record.deleted" or "trash.restored"
	Type string `json:"type"`

	// Entity is the record kind the event concerns
	Entity string `json:"entity"`

	// RecordID is the affected record's ID
	RecordID string `json:"recordId,omitempty"`

	// UserID is the acting user
	UserID string `json:"userId,omitempty"`

	// Message is a human-readable summary
	Message string `json:"message,omitempty"`

	OccurredAt time.Time `json:"occurredAt"`
}

// Notifier delivers events. Implementations must not block the caller's
// request path on delivery failures.
type Notifier interface {
	Notify(ctx context.Context, event Event)
	Close() error
}

// NewEvent builds an event stamped with the current time.
func NewEvent(eventType, entity, recordID, userID, message string) Event {
	return Event{
		Type:       eventType,
		Entity:     entity,
		RecordID:   recordID,
		UserID:     userID,
		Message:    message,
		OccurredAt: time.Now().UTC(),
	}
}
