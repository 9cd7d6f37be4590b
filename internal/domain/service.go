// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"fmt"
	"sync"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/id"
	"crmdesk/internal/core/session"
	"crmdesk/internal/core/tx"
	"crmdesk/pkg/logger"
)

// RecordService provides business logic for one entity kind.
// It keeps the last-fetched list and a loading flag, and refreshes the
// whole cached list after every successful mutation. No partial patching;
// simplicity and consistency over efficiency.
type RecordService[T Record] struct {
	repo      RecordRepository[T]
	txManager tx.Manager
	hooks     *HookRegistry[T]

	// entityName for error messages
	entityName string
	// defaultOrder is the kind-appropriate recency ordering for lists
	defaultOrder string

	mu      sync.RWMutex
	cached  []T
	loading bool
}

// RecordServiceConfig configures the record service.
type RecordServiceConfig[T Record] struct {
	Repo         RecordRepository[T]
	TxManager    tx.Manager
	EntityName   string
	DefaultOrder string
}

// NewRecordService creates a new record service.
func NewRecordService[T Record](cfg RecordServiceConfig[T]) *RecordService[T] {
	order := cfg.DefaultOrder
	if order == "" {
		order = "-created_at"
	}
	return &RecordService[T]{
		repo:         cfg.Repo,
		txManager:    cfg.TxManager,
		hooks:        NewHookRegistry[T](),
		entityName:   cfg.EntityName,
		defaultOrder: order,
	}
}

// Hooks returns the hook registry for external registration.
func (s *RecordService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// EntityName returns the name used in errors and messages.
func (s *RecordService[T]) EntityName() string {
	return s.entityName
}

func (s *RecordService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	// If the record already returns a structured AppError, keep it.
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *RecordService[T]) normalizeGetErr(err error, recID any) error {
	if err == nil {
		return nil
	}
	// Preserve existing AppError, but map not-found to the entity name.
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, recID)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", recID)
}

// requireUser rejects writes issued without an authenticated session.
func (s *RecordService[T]) requireUser(ctx context.Context) (string, error) {
	userID := session.UserID(ctx)
	if userID == "" {
		return "", apperror.NewUnauthorized("authentication required")
	}
	return userID, nil
}

func (s *RecordService[T]) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txManager == nil {
		return fn(ctx)
	}
	return s.txManager.RunInTransaction(ctx, fn)
}

// List retrieves records owned by the current user.
// An unauthenticated read is an empty result, not an error.
func (s *RecordService[T]) List(ctx context.Context, filter ListFilter) (ListResult[T], error) {
	if session.UserID(ctx) == "" {
		return ListResult[T]{Items: []T{}, Limit: filter.Limit, Offset: filter.Offset}, nil
	}

	if filter.OrderBy == "" {
		filter.OrderBy = s.defaultOrder
	}

	s.setLoading(true)
	defer s.setLoading(false)

	result, err := s.repo.List(ctx, filter)
	if err != nil {
		// Cache stays as it was before the failed call.
		return ListResult[T]{}, err
	}

	s.storeCache(result.Items)
	return result, nil
}

// Cached returns the last-fetched list and whether a fetch is in flight.
func (s *RecordService[T]) Cached() ([]T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]T, len(s.cached))
	copy(snapshot, s.cached)
	return snapshot, s.loading
}

// GetByID retrieves a record by ID.
func (s *RecordService[T]) GetByID(ctx context.Context, recID id.ID) (T, error) {
	rec, err := s.repo.GetByID(ctx, recID)
	if err != nil {
		return rec, s.normalizeGetErr(err, recID.String())
	}
	return rec, nil
}

// Create validates, stamps the owner, and inserts a new record.
// The cache is only refreshed after the insert is confirmed.
func (s *RecordService[T]) Create(ctx context.Context, rec T) error {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return err
	}
	rec.SetOwner(userID)

	if err := rec.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	if err := s.hooks.Run(ctx, BeforeCreate, rec); err != nil {
		return err
	}

	err = s.inTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, rec); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.refreshCache(ctx)

	if err := s.hooks.Run(ctx, AfterCreate, rec); err != nil {
		// The record is already created; log and continue.
		logger.Warn(ctx, "after-create hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// Update validates and modifies an existing record owned by the current user.
func (s *RecordService[T]) Update(ctx context.Context, rec T) error {
	if _, err := s.requireUser(ctx); err != nil {
		return err
	}

	if err := rec.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	if err := s.hooks.Run(ctx, BeforeUpdate, rec); err != nil {
		return err
	}

	rec.Touch()

	err := s.inTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, rec); err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.refreshCache(ctx)

	if err := s.hooks.Run(ctx, AfterUpdate, rec); err != nil {
		logger.Warn(ctx, "after-update hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// Delete removes the row from the backing table.
// The record is fetched first so after-delete hooks (trash capture) can
// snapshot it; they run only once the delete is confirmed, so a failed
// delete never produces a trash entry.
func (s *RecordService[T]) Delete(ctx context.Context, recID id.ID) (T, error) {
	var zero T

	if _, err := s.requireUser(ctx); err != nil {
		return zero, err
	}

	rec, err := s.repo.GetByID(ctx, recID)
	if err != nil {
		return zero, s.normalizeGetErr(err, recID.String())
	}

	if err := s.hooks.Run(ctx, BeforeDelete, rec); err != nil {
		return zero, err
	}

	err = s.inTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, recID); err != nil {
			return fmt.Errorf("delete %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return zero, err
	}

	s.refreshCache(ctx)

	if err := s.hooks.Run(ctx, AfterDelete, rec); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "entity", s.entityName, "error", err)
	}

	return rec, nil
}

// Exists checks if a record exists for the current user.
func (s *RecordService[T]) Exists(ctx context.Context, recID id.ID) (bool, error) {
	return s.repo.Exists(ctx, recID)
}

// refreshCache re-fetches the whole owned list after a mutation.
func (s *RecordService[T]) refreshCache(ctx context.Context) {
	result, err := s.repo.List(ctx, ListFilter{OrderBy: s.defaultOrder})
	if err != nil {
		logger.Warn(ctx, "cache refresh failed", "entity", s.entityName, "error", err)
		return
	}
	s.storeCache(result.Items)
}

func (s *RecordService[T]) storeCache(items []T) {
	s.mu.Lock()
	s.cached = items
	s.mu.Unlock()
}

func (s *RecordService[T]) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
