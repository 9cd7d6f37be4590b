package record_repo

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk/internal/core/apperror"
)

func newMockRestoreStore(t *testing.T) (*RestoreStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewRestoreStore(&mockDB{q: mock}), mock
}

func TestRestoreStore_Insert(t *testing.T) {
	store, mock := newMockRestoreStore(t)
	store.Register("clients", []string{"id", "user_id", "name", "email"})

	mock.ExpectExec("INSERT INTO clients").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.Insert(context.Background(), "clients", map[string]any{
		"id":      "11111111-1111-1111-1111-111111111111",
		"user_id": "u1",
		"name":    "Acme",
		"email":   "billing@acme.example",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreStore_Insert_DropsUnknownColumns(t *testing.T) {
	store, mock := newMockRestoreStore(t)
	store.Register("clients", []string{"name"})

	// only "name" survives the filter, so exactly one placeholder
	mock.ExpectExec("INSERT INTO clients").
		WithArgs("Acme").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.Insert(context.Background(), "clients", map[string]any{
		"name":          "Acme",
		"legacy_field":  "stale snapshot data",
		"another_field": 42,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreStore_Insert_UnregisteredTable(t *testing.T) {
	store, _ := newMockRestoreStore(t)

	err := store.Insert(context.Background(), "gadgets", map[string]any{"name": "x"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestRestoreStore_Insert_NoUsableColumns(t *testing.T) {
	store, _ := newMockRestoreStore(t)
	store.Register("clients", []string{"name", "email"})

	err := store.Insert(context.Background(), "clients", map[string]any{"bogus": 1})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
