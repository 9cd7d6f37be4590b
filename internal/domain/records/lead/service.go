package lead

import (
	"crmdesk/internal/core/tx"
	"crmdesk/internal/domain"
)

// Service provides business logic for the Lead record.
type Service struct {
	*domain.RecordService[*Lead]
}

// NewService creates a new Lead service.
func NewService(repo domain.RecordRepository[*Lead], txManager tx.Manager) *Service {
	return &Service{
		RecordService: domain.NewRecordService(domain.RecordServiceConfig[*Lead]{
			Repo:         repo,
			TxManager:    txManager,
			EntityName:   "lead",
			DefaultOrder: "-created_at",
		}),
	}
}
