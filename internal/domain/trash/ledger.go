package trash

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/id"
	"crmdesk/internal/core/session"
	"crmdesk/internal/infrastructure/kv"
	"crmdesk/pkg/logger"
)

// TableStore re-inserts a restored payload into a named backing table.
// Implementations filter the row to the table's known columns.
type TableStore interface {
	Insert(ctx context.Context, table string, row map[string]any) error
}

// ledgerVersion is the persisted envelope format version. Bump it when
// DeletedItem gains fields so old envelopes can be migrated, not dropped.
const ledgerVersion = 1

// compressThreshold is the serialized-entries size above which the
// envelope body is zstd-compressed.
const compressThreshold = 10 * 1024 // 10KB

// compression algorithms recorded in the envelope
const (
	compressionNone = "none"
	compressionZstd = "zstd"
)

// envelope is the persisted ledger format: one envelope per user under a
// well-known key. Exactly one of Entries and Compressed is set.
type envelope struct {
	Version    int           `json:"version"`
	Algo       string        `json:"algo"`
	Entries    []DeletedItem `json:"entries,omitempty"`
	Compressed []byte        `json:"compressed,omitempty"`
}

// Ledger is the authoritative, durable list of soft-deleted records for
// each user, and mediates their return to live storage.
//
// The KV store is the source of truth: every operation loads the owner's
// entries, mutates, and persists under one mutex. A failed persist leaves
// nothing half-visible: no ghost entries after a failed capture.
type Ledger struct {
	mu     sync.Mutex
	store  kv.Store
	tables TableStore

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewLedger creates a trash ledger over the given persistence port and
// restore table store.
func NewLedger(store kv.Store, tables TableStore) (*Ledger, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &Ledger{
		store:   store,
		tables:  tables,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

func ledgerKey(userID string) string {
	return "trash:" + userID
}

// load reads the owner's entries from the store. A missing key is an
// empty ledger.
func (l *Ledger) load(ctx context.Context, userID string) ([]DeletedItem, error) {
	raw, ok, err := l.store.Get(ctx, ledgerKey(userID))
	if err != nil {
		return nil, fmt.Errorf("load trash ledger: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("decode trash envelope: %w", err)
	}
	if env.Version != ledgerVersion {
		return nil, fmt.Errorf("unsupported trash envelope version %d", env.Version)
	}

	if env.Algo == compressionZstd {
		body, err := l.decoder.DecodeAll(env.Compressed, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress trash envelope: %w", err)
		}
		var entries []DeletedItem
		if err := json.Unmarshal(body, &entries); err != nil {
			return nil, fmt.Errorf("decode trash entries: %w", err)
		}
		return entries, nil
	}

	return env.Entries, nil
}

// persist writes the owner's full entry list to the store.
func (l *Ledger) persist(ctx context.Context, userID string, entries []DeletedItem) error {
	env := envelope{Version: ledgerVersion, Algo: compressionNone}

	body, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode trash entries: %w", err)
	}

	if len(body) > compressThreshold {
		env.Algo = compressionZstd
		env.Compressed = l.encoder.EncodeAll(body, nil)
	} else {
		env.Entries = entries
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode trash envelope: %w", err)
	}

	if err := l.store.Set(ctx, ledgerKey(userID), string(raw)); err != nil {
		return fmt.Errorf("persist trash ledger: %w", err)
	}
	return nil
}

// AddEntry appends a captured snapshot to the current user's ledger.
// It never fails the caller's delete flow: by the time capture runs the
// live row is already gone, so persistence failures are logged and the
// entry is dropped. A dropped entry loses recoverability, not consistency.
func (l *Ledger) AddEntry(ctx context.Context, item DeletedItem) {
	userID := session.UserID(ctx)
	if userID == "" {
		logger.Warn(ctx, "trash capture without session, entry dropped", "id", item.ID)
		return
	}

	if err := item.Validate(ctx); err != nil {
		logger.Warn(ctx, "invalid trash entry dropped", "id", item.ID, "error", err)
		return
	}

	if item.DeletedAt.IsZero() {
		item.DeletedAt = time.Now().UTC()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load(ctx, userID)
	if err != nil {
		logger.Error(ctx, "trash ledger load failed, entry dropped", "id", item.ID, "error", err)
		return
	}

	for _, existing := range entries {
		if existing.ID == item.ID {
			logger.Warn(ctx, "duplicate trash entry ignored", "id", item.ID, "kind", item.Kind)
			return
		}
	}

	entries = append(entries, item)
	if err := l.persist(ctx, userID, entries); err != nil {
		logger.Error(ctx, "trash ledger persist failed, entry dropped", "id", item.ID, "error", err)
	}
}

// RestoreEntry re-materializes a trashed record as a new live row in the
// kind's backing table, then evicts the entry.
//
// The insert payload is the snapshot under a fresh primary key, with the
// owner re-stamped to the current session and fresh timestamps: a
// restored record reads as freshly created. The entry is only evicted
// after the insert is confirmed, so a rejected insert leaves the ledger
// untouched and the user can retry. A concurrent second call for the
// same id finds the entry gone and fails NotFound instead of
// double-inserting.
func (l *Ledger) RestoreEntry(ctx context.Context, itemID string) (bool, error) {
	userID := session.UserID(ctx)
	if userID == "" {
		return false, apperror.NewUnauthorized("authentication required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load(ctx, userID)
	if err != nil {
		return false, apperror.NewStoreFailure("trash ledger", err)
	}

	idx := -1
	for i, e := range entries {
		if e.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, apperror.NewNotFound("trash entry", itemID)
	}
	item := entries[idx]

	table, err := item.Kind.Table()
	if err != nil {
		return false, err
	}

	row := restoreRow(item.Payload, userID)
	if err := l.tables.Insert(ctx, table, row); err != nil {
		// Entry stays in the ledger so the user can retry.
		return false, apperror.NewStoreFailure(table, err)
	}

	entries = append(entries[:idx], entries[idx+1:]...)
	if err := l.persist(ctx, userID, entries); err != nil {
		// The row is live again; a stale entry is the lesser evil here.
		logger.Error(ctx, "trash eviction persist failed", "id", itemID, "error", err)
	}

	logger.Info(ctx, "trash entry restored", "id", itemID, "kind", item.Kind, "table", table)
	return true, nil
}

// PurgeEntry removes a single entry without restoring it. Irreversible.
func (l *Ledger) PurgeEntry(ctx context.Context, itemID string) error {
	userID := session.UserID(ctx)
	if userID == "" {
		return apperror.NewUnauthorized("authentication required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load(ctx, userID)
	if err != nil {
		return apperror.NewStoreFailure("trash ledger", err)
	}

	idx := -1
	for i, e := range entries {
		if e.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperror.NewNotFound("trash entry", itemID)
	}

	entries = append(entries[:idx], entries[idx+1:]...)
	if err := l.persist(ctx, userID, entries); err != nil {
		return apperror.NewStoreFailure("trash ledger", err)
	}
	return nil
}

// ClearAll empties the current user's ledger. Irreversible; no backing
// table is touched.
func (l *Ledger) ClearAll(ctx context.Context) error {
	userID := session.UserID(ctx)
	if userID == "" {
		return apperror.NewUnauthorized("authentication required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.persist(ctx, userID, nil); err != nil {
		return apperror.NewStoreFailure("trash ledger", err)
	}
	return nil
}

// List returns the current user's entries in insertion order
// (oldest-deleted-first). Unauthenticated reads get an empty list.
func (l *Ledger) List(ctx context.Context) ([]DeletedItem, error) {
	userID := session.UserID(ctx)
	if userID == "" {
		return []DeletedItem{}, nil
	}

	entries, err := l.load(ctx, userID)
	if err != nil {
		return nil, apperror.NewStoreFailure("trash ledger", err)
	}
	if entries == nil {
		entries = []DeletedItem{}
	}
	return entries, nil
}

// restoreRow builds the insert payload: the snapshot with a fresh primary
// key, owned by the current user, with operative timestamps set to now.
func restoreRow(payload map[string]any, userID string) map[string]any {
	row := make(map[string]any, len(payload))
	for k, v := range payload {
		row[k] = v
	}

	now := time.Now().UTC()
	row["id"] = id.New()
	row["user_id"] = userID
	row["created_at"] = now
	row["updated_at"] = now

	return row
}
