// Package record_repo provides PostgreSQL implementations for record
// repositories. Every query is scoped to the session user: one user never
// sees or touches another user's rows.
package record_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/id"
	"crmdesk/internal/core/session"
	"crmdesk/internal/domain"
	"crmdesk/internal/infrastructure/storage/postgres"
)

// BaseRecordRepo provides common CRUD operations for dashboard records.
// Embed this in specific record repositories.
type BaseRecordRepo[T domain.Record] struct {
	db         postgres.DB
	tableName  string
	selectCols []string
	searchCols []string
	newFn      func() T
}

// NewBaseRecordRepo creates a new base record repository. searchCols are
// the columns the list Search filter matches against.
func NewBaseRecordRepo[T domain.Record](
	db postgres.DB,
	tableName string,
	selectCols []string,
	searchCols []string,
	newFn func() T,
) *BaseRecordRepo[T] {
	return &BaseRecordRepo[T]{
		db:         db,
		tableName:  tableName,
		selectCols: selectCols,
		searchCols: searchCols,
		newFn:      newFn,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BaseRecordRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Table returns the backing table name.
func (r *BaseRecordRepo[T]) Table() string {
	return r.tableName
}

func (r *BaseRecordRepo[T]) requireOwner(ctx context.Context) (string, error) {
	userID := session.UserID(ctx)
	if userID == "" {
		return "", apperror.NewUnauthorized("authentication required")
	}
	return userID, nil
}

// Create inserts a new record using its "db" tags.
func (r *BaseRecordRepo[T]) Create(ctx context.Context, rec T) error {
	if _, err := r.requireOwner(ctx); err != nil {
		return err
	}

	data := postgres.StructToMap(rec)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in record")
	}

	// Filter to only include columns that exist in DB
	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.Builder().
		Insert(r.tableName).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", r.tableName, err)
	}

	return nil
}

// Update modifies an existing record, scoped to its owner.
func (r *BaseRecordRepo[T]) Update(ctx context.Context, rec T) error {
	userID, err := r.requireOwner(ctx)
	if err != nil {
		return err
	}

	data := postgres.StructToMap(rec)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in record")
	}

	recID, ok := data["id"]
	if !ok {
		return fmt.Errorf("record has no 'id' field with db tag")
	}

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" || col == "user_id" || col == "created_at" {
			continue // immutable
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.Builder().
		Update(r.tableName).
		SetMap(filteredData).
		Where(squirrel.Eq{"id": recID}).
		Where(squirrel.Eq{"user_id": userID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.db.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tableName, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, recID)
	}

	return nil
}

func (r *BaseRecordRepo[T]) baseSelect(userID string) squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName).
		Where(squirrel.Eq{"user_id": userID})
}

// GetByID retrieves the owner's record by ID.
func (r *BaseRecordRepo[T]) GetByID(ctx context.Context, recID id.ID) (T, error) {
	rec := r.newFn()

	userID, err := r.requireOwner(ctx)
	if err != nil {
		return rec, err
	}

	q := r.baseSelect(userID).
		Where(squirrel.Eq{"id": recID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return rec, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.db.GetQuerier(ctx), rec, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return rec, apperror.NewNotFound(r.tableName, recID.String())
		}
		return rec, fmt.Errorf("get by id: %w", err)
	}

	return rec, nil
}

// List retrieves the owner's records with filtering and pagination.
func (r *BaseRecordRepo[T]) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error) {
	result := domain.ListResult[T]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	userID, err := r.requireOwner(ctx)
	if err != nil {
		return result, err
	}

	q := r.baseSelect(userID)

	if filter.Search != "" && len(r.searchCols) > 0 {
		pattern := "%" + filter.Search + "%"
		or := make(squirrel.Or, 0, len(r.searchCols))
		for _, col := range r.searchCols {
			or = append(or, squirrel.ILike{col: pattern})
		}
		q = q.Where(or)
	}

	if len(filter.IDs) > 0 {
		q = q.Where(squirrel.Eq{"id": filter.IDs})
	}

	// Count total (before pagination)
	countQ := r.Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub")

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.db.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	orderBy, err := r.parseOrderBy(filter.OrderBy)
	if err != nil {
		return result, err
	}
	q = q.OrderBy(orderBy)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list: %w", err)
	}

	return result, nil
}

// Exists checks if the owner's record exists.
func (r *BaseRecordRepo[T]) Exists(ctx context.Context, recID id.ID) (bool, error) {
	userID, err := r.requireOwner(ctx)
	if err != nil {
		return false, err
	}

	q := r.Builder().
		Select("1").
		From(r.tableName).
		Where(squirrel.Eq{"id": recID}).
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.db.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}

	return true, nil
}

// Delete performs physical removal of the owner's row. The caller is
// responsible for capturing a snapshot beforehand; after this returns
// the row is gone.
func (r *BaseRecordRepo[T]) Delete(ctx context.Context, recID id.ID) error {
	userID, err := r.requireOwner(ctx)
	if err != nil {
		return err
	}

	q := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": recID}).
		Where(squirrel.Eq{"user_id": userID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.db.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		// Check for foreign key violation (23503)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperror.NewConflict("record is referenced by other records").
				WithDetail("entity", r.tableName).
				WithDetail("id", recID.String())
		}
		return fmt.Errorf("execute delete %s: %w", r.tableName, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, recID.String())
	}

	return nil
}

// FindOne executes a SELECT query and returns a single record.
func (r *BaseRecordRepo[T]) FindOne(ctx context.Context, q squirrel.SelectBuilder) (T, error) {
	rec := r.newFn()

	sql, args, err := q.ToSql()
	if err != nil {
		return rec, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.db.GetQuerier(ctx), rec, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return rec, apperror.NewNotFound(r.tableName, "matching query")
		}
		return rec, fmt.Errorf("find one: %w", err)
	}

	return rec, nil
}

func (r *BaseRecordRepo[T]) parseOrderBy(orderBy string) (string, error) {
	allowed := make(map[string]struct{}, len(r.selectCols))
	for _, col := range r.selectCols {
		allowed[col] = struct{}{}
	}

	if orderBy == "" {
		return "created_at DESC", nil
	}

	// Support "-field" for DESC.
	direction := "ASC"
	field := orderBy
	if strings.HasPrefix(orderBy, "-") {
		direction = "DESC"
		field = strings.TrimPrefix(orderBy, "-")
	} else if strings.HasPrefix(orderBy, "+") {
		field = strings.TrimPrefix(orderBy, "+")
	}

	field = strings.TrimSpace(field)
	if field == "" {
		return "", apperror.NewValidation("invalid orderBy").WithDetail("orderBy", orderBy)
	}

	if _, ok := allowed[field]; !ok {
		return "", apperror.NewValidation("invalid orderBy").WithDetail("orderBy", orderBy).WithDetail("field", field)
	}

	return field + " " + direction, nil
}
