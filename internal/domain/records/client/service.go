package client

import (
	"context"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/tx"
	"crmdesk/internal/domain"
)

// Service provides business logic for the Client record.
// Uses composition with domain.RecordService for common CRUD operations.
type Service struct {
	*domain.RecordService[*Client]
	repo Repository
}

// NewService creates a new Client service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewRecordService(domain.RecordServiceConfig[*Client]{
		Repo:         repo,
		TxManager:    txManager,
		EntityName:   "client",
		DefaultOrder: "-created_at",
	})

	svc := &Service{
		RecordService: base,
		repo:          repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkEmailUnique)
	base.Hooks().OnBeforeUpdate(svc.checkEmailUnique)

	return svc
}

// FindByEmail retrieves a client by email.
func (s *Service) FindByEmail(ctx context.Context, email string) (*Client, error) {
	return s.repo.FindByEmail(ctx, email)
}

// checkEmailUnique rejects a second client with the same email for one
// owner. Excludes the record itself so updates pass.
func (s *Service) checkEmailUnique(ctx context.Context, c *Client) error {
	existing, err := s.repo.FindByEmail(ctx, c.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != c.ID {
		return apperror.NewDuplicate("client", "email", c.Email)
	}
	return nil
}
