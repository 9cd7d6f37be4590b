package meeting

import (
	"crmdesk/internal/core/tx"
	"crmdesk/internal/domain"
)

// Service provides business logic for the Meeting record.
type Service struct {
	*domain.RecordService[*Meeting]
}

// NewService creates a new Meeting service. Meetings list soonest-first.
func NewService(repo domain.RecordRepository[*Meeting], txManager tx.Manager) *Service {
	return &Service{
		RecordService: domain.NewRecordService(domain.RecordServiceConfig[*Meeting]{
			Repo:         repo,
			TxManager:    txManager,
			EntityName:   "meeting",
			DefaultOrder: "scheduled_at",
		}),
	}
}
