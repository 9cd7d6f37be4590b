package record_repo

import (
	"crmdesk/internal/domain/records/teammate"
	"crmdesk/internal/infrastructure/storage/postgres"
)

const teammateTable = "teams"

// TeammateRepo implements domain.RecordRepository for team members.
type TeammateRepo struct {
	*BaseRecordRepo[*teammate.Teammate]
}

// NewTeammateRepo creates a new teammate repository.
func NewTeammateRepo(db postgres.DB) *TeammateRepo {
	return &TeammateRepo{
		BaseRecordRepo: NewBaseRecordRepo(
			db,
			teammateTable,
			postgres.ExtractDBColumns[teammate.Teammate](),
			[]string{"name", "email", "role"},
			func() *teammate.Teammate { return &teammate.Teammate{} },
		),
	}
}
