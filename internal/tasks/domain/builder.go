package domain

import (
	"time"

	sharedDomain "github.com/felixgeelhaar/nucleus/internal/shared/domain"
)

// TaskBuilder stages task fields and validates them in Build. Useful where
// fields arrive piecemeal, such as flag parsing in the CLI adapter.
type TaskBuilder struct {
	title       string
	description string
	priority    Priority
	dueDate     *time.Time
}

// NewTaskBuilder creates an empty builder.
func NewTaskBuilder() *TaskBuilder {
	return &TaskBuilder{priority: PriorityNone}
}

// WithTitle stages the task title.
func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.title = title
	return b
}

// WithDescription stages the task description.
func (b *TaskBuilder) WithDescription(description string) *TaskBuilder {
	b.description = description
	return b
}

// WithPriority stages the task priority.
func (b *TaskBuilder) WithPriority(priority Priority) *TaskBuilder {
	b.priority = priority
	return b
}

// WithDueDate stages the due date.
func (b *TaskBuilder) WithDueDate(dueDate time.Time) *TaskBuilder {
	b.dueDate = &dueDate
	return b
}

// Build validates the staged fields and produces a provisional task. It
// fails with a validation error when required fields are unset or invalid.
func (b *TaskBuilder) Build() (*Task, error) {
	if err := ValidateCreateTask(CreateTaskRequest{
		Title:       b.title,
		Description: b.description,
		Priority:    b.priority.String(),
	}); err != nil {
		return nil, err
	}

	task, err := NewTask(b.title)
	if err != nil {
		return nil, sharedDomain.WrapError(err)
	}
	if b.description != "" {
		if err := task.SetDescription(b.description); err != nil {
			return nil, sharedDomain.WrapError(err)
		}
	}
	if err := task.SetPriority(b.priority); err != nil {
		return nil, sharedDomain.WrapError(err)
	}
	if b.dueDate != nil {
		if err := task.SetDueDate(b.dueDate); err != nil {
			return nil, sharedDomain.WrapError(err)
		}
	}
	return task, nil
}
