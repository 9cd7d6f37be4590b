package handlers

import (
	"crmdesk/internal/domain/records/task"
	"crmdesk/internal/infrastructure/http/v1/dto"
)

// TaskHandler serves HTTP requests for task records.
type TaskHandler = RecordHandler[*task.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]

// NewTaskHandler hides the generic handler setup from the router.
func NewTaskHandler(base *BaseHandler, svc *task.Service) *TaskHandler {
	return NewRecordHandler(base, RecordHandlerConfig[*task.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]{
		Service:    svc.RecordService,
		EntityName: "task",
		MapCreateDTO: func(req dto.CreateTaskRequest) *task.Task {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateTaskRequest, existing *task.Task) *task.Task {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(t *task.Task) any {
			return dto.FromTask(t)
		},
	})
}
