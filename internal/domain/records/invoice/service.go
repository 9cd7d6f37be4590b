package invoice

import (
	"context"
	"fmt"
	"time"

	"crmdesk/internal/core/tx"
	"crmdesk/internal/domain"
	"crmdesk/pkg/numerator"
)

// Service provides business logic for the Invoice record.
type Service struct {
	*domain.RecordService[*Invoice]
	numerator *numerator.Service
}

// NewService creates a new Invoice service. Invoices list newest-issued-first.
func NewService(repo domain.RecordRepository[*Invoice], txManager tx.Manager, num *numerator.Service) *Service {
	base := domain.NewRecordService(domain.RecordServiceConfig[*Invoice]{
		Repo:         repo,
		TxManager:    txManager,
		EntityName:   "invoice",
		DefaultOrder: "-issue_date",
	})

	svc := &Service{
		RecordService: base,
		numerator:     num,
	}

	base.Hooks().OnBeforeCreate(svc.assignNumber)

	return svc
}

// assignNumber generates the document number before create. A restored
// invoice carries its old number in the snapshot and keeps it.
func (s *Service) assignNumber(ctx context.Context, inv *Invoice) error {
	if inv.Number != "" {
		return nil
	}

	cfg := numerator.DefaultConfig("INV")
	number, err := s.numerator.GetNextNumber(ctx, cfg, time.Now())
	if err != nil {
		return fmt.Errorf("generate invoice number: %w", err)
	}
	inv.Number = number
	return nil
}
