// Package task provides the Task record (to-do items on the dashboard).
package task

import (
	"context"
	"time"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/entity"
	"crmdesk/internal/core/id"
)

// Status defines the task lifecycle state.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Priority defines the task urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task represents a single to-do item, optionally tied to a project.
type Task struct {
	entity.BaseRecord

	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description,omitempty"`

	Status   Status   `db:"status" json:"status"`
	Priority Priority `db:"priority" json:"priority"`

	// DueDate orders the default task list (earliest due first)
	DueDate *time.Time `db:"due_date" json:"dueDate,omitempty"`

	ProjectID *id.ID `db:"project_id" json:"projectId,omitempty"`
}

// NewTask creates a Task with required fields and default state.
func NewTask(title string) *Task {
	return &Task{
		BaseRecord: entity.NewBaseRecord(),
		Title:      title,
		Status:     StatusTodo,
		Priority:   PriorityMedium,
	}
}

// Validate implements entity.Validatable interface.
func (t *Task) Validate(ctx context.Context) error {
	if t.Title == "" {
		return apperror.NewValidation("title is required").
			WithDetail("field", "title")
	}

	if !isValidStatus(t.Status) {
		return apperror.NewValidation("invalid task status").
			WithDetail("field", "status").
			WithDetail("value", string(t.Status))
	}

	if !isValidPriority(t.Priority) {
		return apperror.NewValidation("invalid task priority").
			WithDetail("field", "priority").
			WithDetail("value", string(t.Priority))
	}

	return nil
}

// IsOverdue reports whether the task is past due and not done.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusDone
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func isValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
