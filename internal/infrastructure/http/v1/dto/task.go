package dto

import (
	"time"

	"crmdesk/internal/core/id"
	"crmdesk/internal/domain/records/task"
)

// CreateTaskRequest is the request body for creating a task.
type CreateTaskRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description *string       `json:"description"`
	Status      task.Status   `json:"status"`
	Priority    task.Priority `json:"priority"`
	DueDate     *time.Time    `json:"dueDate"`
	ProjectID   *id.ID        `json:"projectId"`
}

// ToEntity converts DTO to domain record.
func (r *CreateTaskRequest) ToEntity() *task.Task {
	t := task.NewTask(r.Title)
	t.Description = r.Description
	if r.Status != "" {
		t.Status = r.Status
	}
	if r.Priority != "" {
		t.Priority = r.Priority
	}
	t.DueDate = r.DueDate
	t.ProjectID = r.ProjectID
	return t
}

// UpdateTaskRequest is the request body for updating a task.
type UpdateTaskRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description *string       `json:"description"`
	Status      task.Status   `json:"status" binding:"required"`
	Priority    task.Priority `json:"priority" binding:"required"`
	DueDate     *time.Time    `json:"dueDate"`
	ProjectID   *id.ID        `json:"projectId"`
}

// ApplyTo applies update DTO to existing record.
func (r *UpdateTaskRequest) ApplyTo(t *task.Task) {
	t.Title = r.Title
	t.Description = r.Description
	t.Status = r.Status
	t.Priority = r.Priority
	t.DueDate = r.DueDate
	t.ProjectID = r.ProjectID
}

// TaskResponse is the response body for a task.
type TaskResponse struct {
	BaseResponse
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Status      task.Status   `json:"status"`
	Priority    task.Priority `json:"priority"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
	ProjectID   *string       `json:"projectId,omitempty"`
}

// FromTask creates response DTO from domain record.
func FromTask(t *task.Task) TaskResponse {
	resp := TaskResponse{
		BaseResponse: FromBaseRecord(t.BaseRecord),
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		Priority:     t.Priority,
		DueDate:      t.DueDate,
	}
	if t.ProjectID != nil {
		s := t.ProjectID.String()
		resp.ProjectID = &s
	}
	return resp
}
