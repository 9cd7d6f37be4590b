package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/entity"
	"crmdesk/internal/core/id"
	"crmdesk/internal/core/session"
)

// note is a minimal record for exercising the generic service.
type note struct {
	entity.BaseRecord
	Title string
}

func (n *note) Validate(_ context.Context) error {
	if n.Title == "" {
		return apperror.NewValidation("title is required")
	}
	return nil
}

func newNote(title string) *note {
	return &note{BaseRecord: entity.NewBaseRecord(), Title: title}
}

// fakeRepo is an in-memory repository with injectable failures.
type fakeRepo struct {
	records map[id.ID]*note
	order   []id.ID

	createErr error
	deleteErr error
	listErr   error

	lastListFilter ListFilter
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[id.ID]*note)}
}

func (r *fakeRepo) Create(_ context.Context, rec *note) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.records[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, recID id.ID) (*note, error) {
	rec, ok := r.records[recID]
	if !ok {
		return nil, apperror.NewNotFound("note", recID.String())
	}
	return rec, nil
}

func (r *fakeRepo) Update(_ context.Context, rec *note) error {
	if _, ok := r.records[rec.ID]; !ok {
		return apperror.NewNotFound("note", rec.ID.String())
	}
	r.records[rec.ID] = rec
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, recID id.ID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.records[recID]; !ok {
		return apperror.NewNotFound("note", recID.String())
	}
	delete(r.records, recID)
	return nil
}

func (r *fakeRepo) List(_ context.Context, filter ListFilter) (ListResult[*note], error) {
	r.lastListFilter = filter
	if r.listErr != nil {
		return ListResult[*note]{}, r.listErr
	}
	items := make([]*note, 0, len(r.records))
	for _, recID := range r.order {
		if rec, ok := r.records[recID]; ok {
			items = append(items, rec)
		}
	}
	return ListResult[*note]{Items: items, TotalCount: int64(len(items))}, nil
}

func (r *fakeRepo) Exists(_ context.Context, recID id.ID) (bool, error) {
	_, ok := r.records[recID]
	return ok, nil
}

func newNoteService(repo *fakeRepo) *RecordService[*note] {
	return NewRecordService(RecordServiceConfig[*note]{
		Repo:       repo,
		EntityName: "note",
	})
}

func authedCtx() context.Context {
	return session.WithUser(context.Background(), &session.Session{UserID: "u1"})
}

func TestRecordService_Create(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)
	ctx := authedCtx()

	n := newNote("groceries")
	require.NoError(t, svc.Create(ctx, n))

	assert.Equal(t, "u1", n.UserID, "owner must be stamped from the session")
	assert.Contains(t, repo.records, n.ID)

	cached, loading := svc.Cached()
	assert.False(t, loading)
	assert.Len(t, cached, 1, "cache refreshes after a confirmed insert")
}

func TestRecordService_Create_Unauthenticated(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)

	err := svc.Create(context.Background(), newNote("groceries"))
	require.Error(t, err)
	assert.True(t, apperror.IsUnauthorized(err))
	assert.Empty(t, repo.records)
}

func TestRecordService_Create_ValidationFailure(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)

	err := svc.Create(authedCtx(), newNote(""))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, repo.records)
}

func TestRecordService_Create_BeforeHookRejects(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)
	svc.Hooks().OnBeforeCreate(func(_ context.Context, _ *note) error {
		return apperror.NewConflict("duplicate title")
	})

	err := svc.Create(authedCtx(), newNote("groceries"))
	require.Error(t, err)
	assert.Empty(t, repo.records, "a rejected create must not reach the repository")
}

func TestRecordService_Update_TouchesTimestamp(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)
	ctx := authedCtx()

	n := newNote("groceries")
	require.NoError(t, svc.Create(ctx, n))

	before := n.UpdatedAt
	n.Title = "groceries and fuel"
	require.NoError(t, svc.Update(ctx, n))

	assert.True(t, n.UpdatedAt.After(before) || n.UpdatedAt.Equal(before))
	assert.Equal(t, "groceries and fuel", repo.records[n.ID].Title)
}

func TestRecordService_Delete_RunsAfterHookWithRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)
	ctx := authedCtx()

	n := newNote("groceries")
	require.NoError(t, svc.Create(ctx, n))

	var captured *note
	svc.Hooks().OnAfterDelete(func(_ context.Context, rec *note) error {
		captured = rec
		return nil
	})

	deleted, err := svc.Delete(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, n.ID, deleted.ID)
	require.NotNil(t, captured, "after-delete hook must run on success")
	assert.Equal(t, "groceries", captured.Title)
	assert.NotContains(t, repo.records, n.ID)
}

func TestRecordService_Delete_FailureSkipsAfterHook(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)
	ctx := authedCtx()

	n := newNote("groceries")
	require.NoError(t, svc.Create(ctx, n))

	hookRan := false
	svc.Hooks().OnAfterDelete(func(_ context.Context, _ *note) error {
		hookRan = true
		return nil
	})

	repo.deleteErr = errors.New("connection reset")
	_, err := svc.Delete(ctx, n.ID)
	require.Error(t, err)
	assert.False(t, hookRan, "a failed delete must not trigger capture")
	assert.Contains(t, repo.records, n.ID)
}

func TestRecordService_Delete_NotFound(t *testing.T) {
	svc := newNoteService(newFakeRepo())

	_, err := svc.Delete(authedCtx(), id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRecordService_Delete_AfterHookErrorIsSwallowed(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)
	ctx := authedCtx()

	n := newNote("groceries")
	require.NoError(t, svc.Create(ctx, n))

	svc.Hooks().OnAfterDelete(func(_ context.Context, _ *note) error {
		return errors.New("capture store down")
	})

	_, err := svc.Delete(ctx, n.ID)
	assert.NoError(t, err, "the delete already happened, hook failures only log")
}

func TestRecordService_List_Unauthenticated(t *testing.T) {
	svc := newNoteService(newFakeRepo())

	result, err := svc.List(context.Background(), DefaultListFilter())
	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestRecordService_List_AppliesDefaultOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := NewRecordService(RecordServiceConfig[*note]{
		Repo:         repo,
		EntityName:   "note",
		DefaultOrder: "due_date",
	})

	_, err := svc.List(authedCtx(), ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, "due_date", repo.lastListFilter.OrderBy)

	_, err = svc.List(authedCtx(), ListFilter{OrderBy: "-title"})
	require.NoError(t, err)
	assert.Equal(t, "-title", repo.lastListFilter.OrderBy, "an explicit order wins")
}

func TestRecordService_List_FailureKeepsCache(t *testing.T) {
	repo := newFakeRepo()
	svc := newNoteService(repo)
	ctx := authedCtx()

	require.NoError(t, svc.Create(ctx, newNote("groceries")))
	cached, _ := svc.Cached()
	require.Len(t, cached, 1)

	repo.listErr = errors.New("connection reset")
	_, err := svc.List(ctx, DefaultListFilter())
	require.Error(t, err)

	cached, loading := svc.Cached()
	assert.Len(t, cached, 1, "a failed fetch keeps the previous snapshot")
	assert.False(t, loading)
}
