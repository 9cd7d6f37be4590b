package dto

import (
	"time"

	"crmdesk/internal/domain/trash"
)

// TrashEntryResponse is the list view of a trashed record. The raw
// snapshot stays server-side; clients only see what they need to decide
// on a restore.
type TrashEntryResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Kind      trash.Kind `json:"kind"`
	DeletedAt time.Time  `json:"deletedAt"`
}

// FromTrashEntry creates response DTO from a ledger entry.
func FromTrashEntry(item trash.DeletedItem) TrashEntryResponse {
	return TrashEntryResponse{
		ID:        item.ID,
		Name:      item.Name,
		Kind:      item.Kind,
		DeletedAt: item.DeletedAt,
	}
}

// RestoreResponse is the response body for a restore.
type RestoreResponse struct {
	Restored bool   `json:"restored"`
	ID       string `json:"id"`
}
