package trash

import (
	"context"
	"time"
)

// SnapshotFunc renders a deleted record as its trash snapshot: a display
// name and a column-keyed payload the record can be re-inserted from.
type SnapshotFunc[T any] func(rec T) (name string, payload map[string]any)

// Capture builds an after-delete hook that records the deleted record in
// the ledger. The hook never returns an error: by the time it runs the
// delete is committed, and capture failures must not surface as delete
// failures.
func Capture[T any](ledger *Ledger, kind Kind, recID func(rec T) string, snapshot SnapshotFunc[T]) func(ctx context.Context, rec T) error {
	return func(ctx context.Context, rec T) error {
		name, payload := snapshot(rec)
		ledger.AddEntry(ctx, DeletedItem{
			ID:        recID(rec),
			Name:      name,
			Kind:      kind,
			Payload:   payload,
			DeletedAt: time.Now().UTC(),
		})
		return nil
	}
}
