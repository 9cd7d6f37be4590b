package payment

import (
	"crmdesk/internal/core/tx"
	"crmdesk/internal/domain"
)

// Service provides business logic for the Payment record.
type Service struct {
	*domain.RecordService[*Payment]
}

// NewService creates a new Payment service. Payments list newest-paid-first.
func NewService(repo domain.RecordRepository[*Payment], txManager tx.Manager) *Service {
	return &Service{
		RecordService: domain.NewRecordService(domain.RecordServiceConfig[*Payment]{
			Repo:         repo,
			TxManager:    txManager,
			EntityName:   "payment",
			DefaultOrder: "-paid_at",
		}),
	}
}
