package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crmdesk/internal/domain/trash"
	"crmdesk/internal/infrastructure/http/v1/dto"
)

// TrashHandler handles the trash bin endpoints.
type TrashHandler struct {
	*BaseHandler
	ledger *trash.Ledger
}

// NewTrashHandler creates a new trash handler.
func NewTrashHandler(base *BaseHandler, ledger *trash.Ledger) *TrashHandler {
	return &TrashHandler{
		BaseHandler: base,
		ledger:      ledger,
	}
}

// List handles GET /trash - list the user's trashed records,
// oldest-deleted first.
func (h *TrashHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.ledger.List(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.TrashEntryResponse, len(entries))
	for i, entry := range entries {
		items[i] = dto.FromTrashEntry(entry)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(items)),
	})
}

// Restore handles POST /trash/:id/restore - bring a trashed record back
// as a fresh live row.
func (h *TrashHandler) Restore(c *gin.Context) {
	ctx := c.Request.Context()
	itemID := c.Param("id")

	restored, err := h.ledger.RestoreEntry(ctx, itemID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RestoreResponse{
		Restored: restored,
		ID:       itemID,
	})
}

// Purge handles DELETE /trash/:id - drop a single entry for good.
func (h *TrashHandler) Purge(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.ledger.PurgeEntry(ctx, c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /trash - empty the user's trash.
func (h *TrashHandler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.ledger.ClearAll(ctx); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
