package teammate

import (
	"crmdesk/internal/core/tx"
	"crmdesk/internal/domain"
)

// Service provides business logic for the Teammate record.
type Service struct {
	*domain.RecordService[*Teammate]
}

// NewService creates a new Teammate service.
func NewService(repo domain.RecordRepository[*Teammate], txManager tx.Manager) *Service {
	return &Service{
		RecordService: domain.NewRecordService(domain.RecordServiceConfig[*Teammate]{
			Repo:         repo,
			TxManager:    txManager,
			EntityName:   "teammate",
			DefaultOrder: "-created_at",
		}),
	}
}
