package record_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/session"
	"crmdesk/internal/domain/records/client"
	"crmdesk/internal/infrastructure/storage/postgres"
)

const clientTable = "clients"

// ClientRepo implements client.Repository.
type ClientRepo struct {
	*BaseRecordRepo[*client.Client]
}

// NewClientRepo creates a new client repository.
func NewClientRepo(db postgres.DB) *ClientRepo {
	return &ClientRepo{
		BaseRecordRepo: NewBaseRecordRepo(
			db,
			clientTable,
			postgres.ExtractDBColumns[client.Client](),
			[]string{"name", "email", "company"},
			func() *client.Client { return &client.Client{} },
		),
	}
}

// FindByEmail retrieves the owner's client by email.
func (r *ClientRepo) FindByEmail(ctx context.Context, email string) (*client.Client, error) {
	userID := session.UserID(ctx)
	if userID == "" {
		return nil, apperror.NewUnauthorized("authentication required")
	}

	q := r.baseSelect(userID).
		Where(squirrel.Eq{"email": email}).
		Limit(1)

	c, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("client", email)
		}
		return nil, err
	}
	return c, nil
}
