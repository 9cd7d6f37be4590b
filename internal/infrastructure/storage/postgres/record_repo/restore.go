package record_repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/Masterminds/squirrel"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/domain/trash"
	"crmdesk/internal/infrastructure/storage/postgres"
)

// Compile-time check that RestoreStore implements trash.TableStore.
var _ trash.TableStore = (*RestoreStore)(nil)

// RestoreStore re-inserts trash snapshots into record tables. Each table
// must be registered with its column set; snapshot keys that are not
// columns of the target table are dropped, so a payload captured under
// an older record shape still inserts cleanly.
type RestoreStore struct {
	db postgres.DB

	mu      sync.RWMutex
	columns map[string]map[string]struct{}
}

// NewRestoreStore creates an empty restore store.
func NewRestoreStore(db postgres.DB) *RestoreStore {
	return &RestoreStore{
		db:      db,
		columns: make(map[string]map[string]struct{}),
	}
}

// Register makes a table restorable with the given column set.
func (s *RestoreStore) Register(table string, cols []string) {
	set := make(map[string]struct{}, len(cols))
	for _, col := range cols {
		set[col] = struct{}{}
	}

	s.mu.Lock()
	s.columns[table] = set
	s.mu.Unlock()
}

// Insert implements trash.TableStore.
func (s *RestoreStore) Insert(ctx context.Context, table string, row map[string]any) error {
	s.mu.RLock()
	cols, ok := s.columns[table]
	s.mu.RUnlock()
	if !ok {
		return apperror.NewValidation("table is not restorable").
			WithDetail("table", table)
	}

	filtered := make(map[string]any, len(row))
	for k, v := range row {
		if _, known := cols[k]; known {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return apperror.NewValidation("restore payload has no usable columns").
			WithDetail("table", table)
	}

	q := squirrel.StatementBuilder.
		PlaceholderFormat(squirrel.Dollar).
		Insert(table).
		SetMap(filtered)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build restore insert: %w", err)
	}

	if _, err := s.db.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("restore insert %s: %w", table, err)
	}

	return nil
}
