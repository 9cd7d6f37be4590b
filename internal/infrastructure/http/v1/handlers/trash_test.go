package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmdesk/internal/core/session"
	"crmdesk/internal/domain/trash"
	"crmdesk/internal/infrastructure/http/v1/middleware"
	"crmdesk/internal/infrastructure/kv"
)

type insertSpy struct {
	calls int
	table string
	row   map[string]any
}

func (s *insertSpy) Insert(_ context.Context, table string, row map[string]any) error {
	s.calls++
	s.table = table
	s.row = row
	return nil
}

// sessionStub injects a fixed user into the request context, standing in
// for the JWT middleware.
func sessionStub(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			ctx := session.WithUser(c.Request.Context(), &session.Session{UserID: userID})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func newTrashAPI(t *testing.T, userID string) (*gin.Engine, *trash.Ledger, *insertSpy) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	spy := &insertSpy{}
	ledger, err := trash.NewLedger(kv.NewMemoryStore(), spy)
	require.NoError(t, err)

	h := NewTrashHandler(NewBaseHandler(), ledger)

	engine := gin.New()
	engine.Use(middleware.ErrorHandler(), sessionStub(userID))
	engine.GET("/trash", h.List)
	engine.POST("/trash/:id/restore", h.Restore)
	engine.DELETE("/trash/:id", h.Purge)
	engine.DELETE("/trash", h.Clear)

	return engine, ledger, spy
}

func trashEntry(id, name string) trash.DeletedItem {
	return trash.DeletedItem{
		ID:   id,
		Name: name,
		Kind: trash.KindClient,
		Payload: map[string]any{
			"id":    id,
			"name":  name,
			"email": name + "@example.com",
		},
	}
}

func doRequest(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestTrashAPI_ListEmpty(t *testing.T) {
	engine, _, _ := newTrashAPI(t, "u1")

	w := doRequest(engine, http.MethodGet, "/trash")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items      []map[string]any `json:"items"`
		TotalCount int64            `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Items)
	assert.Zero(t, body.TotalCount)
}

func TestTrashAPI_ListHidesPayload(t *testing.T) {
	engine, ledger, _ := newTrashAPI(t, "u1")
	ledger.AddEntry(session.WithUser(context.Background(), &session.Session{UserID: "u1"}), trashEntry("rec-1", "Acme"))

	w := doRequest(engine, http.MethodGet, "/trash")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items      []map[string]any `json:"items"`
		TotalCount int64            `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, int64(1), body.TotalCount)
	assert.Equal(t, "rec-1", body.Items[0]["id"])
	assert.Equal(t, "Acme", body.Items[0]["name"])
	assert.Equal(t, "client", body.Items[0]["kind"])
	assert.NotContains(t, body.Items[0], "payload", "snapshots stay server-side")
}

func TestTrashAPI_Restore(t *testing.T) {
	engine, ledger, spy := newTrashAPI(t, "u1")
	ledger.AddEntry(session.WithUser(context.Background(), &session.Session{UserID: "u1"}), trashEntry("rec-1", "Acme"))

	w := doRequest(engine, http.MethodPost, "/trash/rec-1/restore")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["restored"])
	assert.Equal(t, "rec-1", body["id"])
	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, "clients", spy.table)

	// the entry is gone now
	w = doRequest(engine, http.MethodPost, "/trash/rec-1/restore")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrashAPI_Purge(t *testing.T) {
	engine, ledger, spy := newTrashAPI(t, "u1")
	ledger.AddEntry(session.WithUser(context.Background(), &session.Session{UserID: "u1"}), trashEntry("rec-1", "Acme"))

	w := doRequest(engine, http.MethodDelete, "/trash/rec-1")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, spy.calls)

	w = doRequest(engine, http.MethodDelete, "/trash/rec-1")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrashAPI_Clear(t *testing.T) {
	engine, ledger, _ := newTrashAPI(t, "u1")
	ctx := session.WithUser(context.Background(), &session.Session{UserID: "u1"})
	ledger.AddEntry(ctx, trashEntry("rec-1", "Acme"))
	ledger.AddEntry(ctx, trashEntry("rec-2", "Globex"))

	w := doRequest(engine, http.MethodDelete, "/trash")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(engine, http.MethodGet, "/trash")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalCount":0`)
}

func TestTrashAPI_UnauthenticatedWrites(t *testing.T) {
	engine, _, _ := newTrashAPI(t, "")

	w := doRequest(engine, http.MethodPost, "/trash/rec-1/restore")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(engine, http.MethodDelete, "/trash/rec-1")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// reads degrade to empty instead of failing
	w = doRequest(engine, http.MethodGet, "/trash")
	assert.Equal(t, http.StatusOK, w.Code)
}
