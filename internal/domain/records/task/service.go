package task

import (
	"crmdesk/internal/core/tx"
	"crmdesk/internal/domain"
)

// Service provides business logic for the Task record.
type Service struct {
	*domain.RecordService[*Task]
}

// NewService creates a new Task service. Tasks list earliest-due-first.
func NewService(repo domain.RecordRepository[*Task], txManager tx.Manager) *Service {
	return &Service{
		RecordService: domain.NewRecordService(domain.RecordServiceConfig[*Task]{
			Repo:         repo,
			TxManager:    txManager,
			EntityName:   "task",
			DefaultOrder: "due_date",
		}),
	}
}
