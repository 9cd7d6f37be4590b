package trash

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/session"
)

// fakeStore is an in-memory kv store with injectable failures.
type fakeStore struct {
	data   map[string]string
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) Del(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

// tableSpy records restore inserts and can simulate rejections.
type tableSpy struct {
	calls int
	table string
	row   map[string]any
	err   error
}

func (s *tableSpy) Insert(_ context.Context, table string, row map[string]any) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.table = table
	s.row = row
	return nil
}

func userCtx(userID string) context.Context {
	return session.WithUser(context.Background(), &session.Session{UserID: userID})
}

func testItem(id, name string) DeletedItem {
	return DeletedItem{
		ID:   id,
		Name: name,
		Kind: KindClient,
		Payload: map[string]any{
			"id":      id,
			"user_id": "u1",
			"name":    name,
			"email":   name + "@example.com",
		},
	}
}

func newTestLedger(t *testing.T, store *fakeStore, tables TableStore) *Ledger {
	t.Helper()
	if tables == nil {
		tables = &tableSpy{}
	}
	ledger, err := NewLedger(store, tables)
	require.NoError(t, err)
	return ledger
}

func TestLedger_AddAndList(t *testing.T) {
	ledger := newTestLedger(t, newFakeStore(), nil)
	ctx := userCtx("u1")

	ledger.AddEntry(ctx, testItem("rec-1", "Acme"))
	ledger.AddEntry(ctx, testItem("rec-2", "Globex"))

	entries, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// insertion order, oldest first
	assert.Equal(t, "rec-1", entries[0].ID)
	assert.Equal(t, "rec-2", entries[1].ID)
	assert.Equal(t, "Acme", entries[0].Name)
	assert.Equal(t, KindClient, entries[0].Kind)
	assert.False(t, entries[0].DeletedAt.IsZero())
	assert.Equal(t, "Acme", entries[0].Payload["name"])
}

func TestLedger_List_PerUserIsolation(t *testing.T) {
	ledger := newTestLedger(t, newFakeStore(), nil)

	ledger.AddEntry(userCtx("u1"), testItem("rec-1", "Acme"))

	entries, err := ledger.List(userCtx("u2"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLedger_List_Unauthenticated(t *testing.T) {
	ledger := newTestLedger(t, newFakeStore(), nil)

	entries, err := ledger.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestLedger_AddEntry_NoSessionDropped(t *testing.T) {
	store := newFakeStore()
	ledger := newTestLedger(t, store, nil)

	ledger.AddEntry(context.Background(), testItem("rec-1", "Acme"))

	assert.Empty(t, store.data)
}

func TestLedger_AddEntry_InvalidDropped(t *testing.T) {
	store := newFakeStore()
	ledger := newTestLedger(t, store, nil)
	ctx := userCtx("u1")

	ledger.AddEntry(ctx, DeletedItem{ID: "rec-1", Kind: KindClient}) // no payload
	ledger.AddEntry(ctx, DeletedItem{ID: "", Kind: KindClient, Payload: map[string]any{"a": 1}})
	ledger.AddEntry(ctx, DeletedItem{ID: "rec-2", Kind: Kind("gadget"), Payload: map[string]any{"a": 1}})

	entries, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLedger_AddEntry_DuplicateIgnored(t *testing.T) {
	ledger := newTestLedger(t, newFakeStore(), nil)
	ctx := userCtx("u1")

	ledger.AddEntry(ctx, testItem("rec-1", "first"))
	ledger.AddEntry(ctx, testItem("rec-1", "second"))

	entries, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "first", entries[0].Name)
}

func TestLedger_AddEntry_PersistFailureLeavesNoGhost(t *testing.T) {
	store := newFakeStore()
	ledger := newTestLedger(t, store, nil)
	ctx := userCtx("u1")

	store.setErr = errors.New("kv down")
	ledger.AddEntry(ctx, testItem("rec-1", "Acme"))
	store.setErr = nil

	entries, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLedger_RestoreEntry(t *testing.T) {
	spy := &tableSpy{}
	ledger := newTestLedger(t, newFakeStore(), spy)
	ctx := userCtx("u1")

	item := testItem("rec-1", "Acme")
	item.Payload["created_at"] = "2020-01-01T00:00:00Z"
	ledger.AddEntry(ctx, item)

	before := time.Now().UTC()
	restored, err := ledger.RestoreEntry(ctx, "rec-1")
	require.NoError(t, err)
	assert.True(t, restored)

	assert.Equal(t, "clients", spy.table)
	assert.NotEqual(t, "rec-1", spy.row["id"], "restored row gets a fresh primary key")
	assert.NotEmpty(t, spy.row["id"])
	assert.Equal(t, "u1", spy.row["user_id"])
	assert.Equal(t, "Acme", spy.row["name"])

	createdAt, ok := spy.row["created_at"].(time.Time)
	require.True(t, ok, "created_at must be re-stamped, not the snapshot value")
	assert.False(t, createdAt.Before(before.Add(-time.Second)))

	entries, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLedger_RestoreEntry_AtMostOnce(t *testing.T) {
	spy := &tableSpy{}
	ledger := newTestLedger(t, newFakeStore(), spy)
	ctx := userCtx("u1")

	ledger.AddEntry(ctx, testItem("rec-1", "Acme"))

	_, err := ledger.RestoreEntry(ctx, "rec-1")
	require.NoError(t, err)

	_, err = ledger.RestoreEntry(ctx, "rec-1")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, 1, spy.calls)
}

func TestLedger_RestoreEntry_InsertFailureKeepsEntry(t *testing.T) {
	spy := &tableSpy{err: errors.New("constraint violation")}
	ledger := newTestLedger(t, newFakeStore(), spy)
	ctx := userCtx("u1")

	ledger.AddEntry(ctx, testItem("rec-1", "Acme"))

	restored, err := ledger.RestoreEntry(ctx, "rec-1")
	require.Error(t, err)
	assert.False(t, restored)

	// entry stays, retry succeeds once the insert goes through
	spy.err = nil
	restored, err = ledger.RestoreEntry(ctx, "rec-1")
	require.NoError(t, err)
	assert.True(t, restored)
}

func TestLedger_RestoreEntry_OtherUserNotVisible(t *testing.T) {
	ledger := newTestLedger(t, newFakeStore(), nil)

	ledger.AddEntry(userCtx("u1"), testItem("rec-1", "Acme"))

	_, err := ledger.RestoreEntry(userCtx("u2"), "rec-1")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestLedger_RestoreEntry_Unauthenticated(t *testing.T) {
	ledger := newTestLedger(t, newFakeStore(), nil)

	_, err := ledger.RestoreEntry(context.Background(), "rec-1")
	require.Error(t, err)
	assert.True(t, apperror.IsUnauthorized(err))
}

func TestLedger_PurgeEntry(t *testing.T) {
	spy := &tableSpy{}
	ledger := newTestLedger(t, newFakeStore(), spy)
	ctx := userCtx("u1")

	ledger.AddEntry(ctx, testItem("rec-1", "Acme"))
	ledger.AddEntry(ctx, testItem("rec-2", "Globex"))

	require.NoError(t, ledger.PurgeEntry(ctx, "rec-1"))

	entries, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rec-2", entries[0].ID)
	assert.Zero(t, spy.calls, "purge must not touch the backing table")

	err = ledger.PurgeEntry(ctx, "rec-1")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestLedger_ClearAll(t *testing.T) {
	ledger := newTestLedger(t, newFakeStore(), nil)
	ctx := userCtx("u1")

	ledger.AddEntry(ctx, testItem("rec-1", "Acme"))
	ledger.AddEntry(userCtx("u2"), testItem("rec-9", "Other"))

	require.NoError(t, ledger.ClearAll(ctx))

	entries, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// other users unaffected
	entries, err = ledger.List(userCtx("u2"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLedger_CompressionRoundTrip(t *testing.T) {
	store := newFakeStore()
	ledger := newTestLedger(t, store, nil)
	ctx := userCtx("u1")

	item := testItem("rec-1", "Acme")
	item.Payload["notes"] = strings.Repeat("all work and no play ", 1024)
	ledger.AddEntry(ctx, item)

	raw := store.data[ledgerKey("u1")]
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	assert.Equal(t, compressionZstd, env.Algo)
	assert.Nil(t, env.Entries)
	assert.Less(t, len(raw), 22*1024, "compressed envelope should be smaller than the payload")

	entries, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, item.Payload["notes"], entries[0].Payload["notes"])
}

func TestLedger_SmallLedgerStoredPlain(t *testing.T) {
	store := newFakeStore()
	ledger := newTestLedger(t, store, nil)
	ctx := userCtx("u1")

	ledger.AddEntry(ctx, testItem("rec-1", "Acme"))

	var env envelope
	require.NoError(t, json.Unmarshal([]byte(store.data[ledgerKey("u1")]), &env))
	assert.Equal(t, compressionNone, env.Algo)
	assert.Len(t, env.Entries, 1)
}

func TestLedger_UnsupportedVersion(t *testing.T) {
	store := newFakeStore()
	ledger := newTestLedger(t, store, nil)
	ctx := userCtx("u1")

	raw, err := json.Marshal(envelope{Version: 99, Algo: compressionNone})
	require.NoError(t, err)
	store.data[ledgerKey("u1")] = string(raw)

	_, err = ledger.List(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestLedger_LoadFailureSurfaces(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("kv down")
	ledger := newTestLedger(t, store, nil)

	_, err := ledger.List(userCtx("u1"))
	require.Error(t, err)
}
