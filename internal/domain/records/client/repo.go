package client

import (
	"context"

	"crmdesk/internal/domain"
)

// Repository defines the interface for Client persistence.
type Repository interface {
	domain.RecordRepository[*Client]

	// FindByEmail retrieves a client by email (unique per owner).
	FindByEmail(ctx context.Context, email string) (*Client, error)
}
