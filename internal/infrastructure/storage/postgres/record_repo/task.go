package record_repo

import (
	"crmdesk/internal/domain/records/task"
	"crmdesk/internal/infrastructure/storage/postgres"
)

const taskTable = "tasks"

// TaskRepo implements domain.RecordRepository for tasks.
type TaskRepo struct {
	*BaseRecordRepo[*task.Task]
}

// NewTaskRepo creates a new task repository.
func NewTaskRepo(db postgres.DB) *TaskRepo {
	return &TaskRepo{
		BaseRecordRepo: NewBaseRecordRepo(
			db,
			taskTable,
			postgres.ExtractDBColumns[task.Task](),
			[]string{"title", "description"},
			func() *task.Task { return &task.Task{} },
		),
	}
}
