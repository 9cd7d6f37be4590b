package record_repo

import (
	"crmdesk/internal/domain/records/project"
	"crmdesk/internal/infrastructure/storage/postgres"
)

const projectTable = "projects"

// ProjectRepo implements domain.RecordRepository for projects.
type ProjectRepo struct {
	*BaseRecordRepo[*project.Project]
}

// NewProjectRepo creates a new project repository.
func NewProjectRepo(db postgres.DB) *ProjectRepo {
	return &ProjectRepo{
		BaseRecordRepo: NewBaseRecordRepo(
			db,
			projectTable,
			postgres.ExtractDBColumns[project.Project](),
			[]string{"name", "description"},
			func() *project.Project { return &project.Project{} },
		),
	}
}
