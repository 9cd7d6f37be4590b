package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask_Defaults(t *testing.T) {
	tk := NewTask("write docs")
	assert.Equal(t, StatusTodo, tk.Status)
	assert.Equal(t, PriorityMedium, tk.Priority)
	assert.Nil(t, tk.DueDate)
}

func TestTask_Validate(t *testing.T) {
	ctx := context.Background()

	tk := NewTask("write docs")
	assert.NoError(t, tk.Validate(ctx))

	tk.Title = ""
	assert.Error(t, tk.Validate(ctx))

	tk = NewTask("write docs")
	tk.Status = Status("blocked")
	assert.Error(t, tk.Validate(ctx))

	tk = NewTask("write docs")
	tk.Priority = Priority("urgent")
	assert.Error(t, tk.Validate(ctx))
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Now().UTC()
	past := now.AddDate(0, 0, -1)

	tk := NewTask("write docs")
	assert.False(t, tk.IsOverdue(now), "no due date means never overdue")

	tk.DueDate = &past
	assert.True(t, tk.IsOverdue(now))

	tk.Status = StatusDone
	assert.False(t, tk.IsOverdue(now), "done tasks are not overdue")
}
