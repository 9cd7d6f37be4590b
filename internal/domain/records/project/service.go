package project

import (
	"crmdesk/internal/core/tx"
	"crmdesk/internal/domain"
)

// Service provides business logic for the Project record.
type Service struct {
	*domain.RecordService[*Project]
}

// NewService creates a new Project service.
func NewService(repo domain.RecordRepository[*Project], txManager tx.Manager) *Service {
	return &Service{
		RecordService: domain.NewRecordService(domain.RecordServiceConfig[*Project]{
			Repo:         repo,
			TxManager:    txManager,
			EntityName:   "project",
			DefaultOrder: "-created_at",
		}),
	}
}
