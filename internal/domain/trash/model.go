package trash

import (
	"context"
	"time"

	"crmdesk/internal/core/apperror"
)

// DeletedItem is one ledger entry: a full snapshot of a record taken at the
// moment its delete was confirmed. Entries are immutable once captured.
type DeletedItem struct {
	// ID is the original record's primary key, opaque here.
	// Ledger identity is scoped to "currently in trash".
	ID string `json:"id"`

	// Name is a human-readable label snapshotted at deletion time.
	Name string `json:"name"`

	// Kind routes the entry back to a backing table on restore.
	Kind Kind `json:"kind"`

	// Payload is the record's full field set at deletion time.
	// It keeps the original created_at/updated_at values; restore
	// re-stamps the live row but the snapshot retains history.
	Payload map[string]any `json:"payload"`

	// DeletedAt is set by the ledger on capture.
	DeletedAt time.Time `json:"deletedAt"`
}

// Validate checks the capture preconditions: id, kind, and payload present.
func (i *DeletedItem) Validate(ctx context.Context) error {
	if i.ID == "" {
		return apperror.NewValidation("trash entry requires the original record id")
	}
	if !i.Kind.Valid() {
		return apperror.NewValidation("unknown trash kind").WithDetail("kind", string(i.Kind))
	}
	if len(i.Payload) == 0 {
		return apperror.NewValidation("trash entry requires a payload snapshot")
	}
	return nil
}
