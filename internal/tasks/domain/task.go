package domain

import (
	"errors"
	"strings"
	"time"

	sharedDomain "github.com/felixgeelhaar/nucleus/internal/shared/domain"
)

var (
	ErrEmptyTitle          = errors.New("task title cannot be empty")
	ErrTitleTooLong        = errors.New("task title exceeds maximum length")
	ErrDescriptionTooLong  = errors.New("task description exceeds maximum length")
	ErrTaskAlreadyComplete = errors.New("task is already completed")
	ErrTaskArchived        = errors.New("task is archived")
)

const (
	// MaxTitleLength is the maximum allowed title length.
	MaxTitleLength = 200
	// MaxDescriptionLength is the maximum allowed description length.
	MaxDescriptionLength = 2000
)

// Task represents a unit of work to be done.
type Task struct {
	sharedDomain.AuditableEntity
	title       string
	description string
	status      Status
	priority    Priority
	dueDate     *time.Time
	completedAt *time.Time
}

// NewTask creates a provisional task with the given title. Identity and
// version are assigned when the task is stored.
func NewTask(title string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}

	return &Task{
		title:    title,
		status:   StatusPending,
		priority: PriorityNone,
	}, nil
}

// Getters

func (t *Task) Title() string           { return t.title }
func (t *Task) Description() string     { return t.description }
func (t *Task) Status() Status          { return t.status }
func (t *Task) Priority() Priority      { return t.priority }
func (t *Task) DueDate() *time.Time     { return t.dueDate }
func (t *Task) CompletedAt() *time.Time { return t.completedAt }
func (t *Task) IsCompleted() bool       { return t.status == StatusCompleted }
func (t *Task) IsArchived() bool        { return t.status == StatusArchived }

// SetTitle updates the task title.
func (t *Task) SetTitle(title string) error {
	if t.IsArchived() {
		return ErrTaskArchived
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	t.title = title
	t.Touch()
	return nil
}

// SetDescription updates the task description.
func (t *Task) SetDescription(description string) error {
	if t.IsArchived() {
		return ErrTaskArchived
	}
	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	t.description = description
	t.Touch()
	return nil
}

// SetPriority updates the task priority.
func (t *Task) SetPriority(priority Priority) error {
	if t.IsArchived() {
		return ErrTaskArchived
	}
	if !priority.IsValid() {
		return ErrInvalidPriority
	}
	t.priority = priority
	t.Touch()
	return nil
}

// SetDueDate updates the due date. A nil due date clears it.
func (t *Task) SetDueDate(dueDate *time.Time) error {
	if t.IsArchived() {
		return ErrTaskArchived
	}
	t.dueDate = dueDate
	t.Touch()
	return nil
}

// SetStatus moves the task to the given status. Transitions between
// non-archived states are unconstrained; an archived task only accepts
// re-archiving, which is a no-op.
func (t *Task) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if t.IsArchived() {
		if status == StatusArchived {
			return nil // Idempotent
		}
		return ErrTaskArchived
	}

	if status == StatusCompleted && t.status != StatusCompleted {
		now := time.Now().UTC()
		t.completedAt = &now
	}
	if status != StatusCompleted {
		t.completedAt = nil
	}
	t.status = status
	t.Touch()
	return nil
}

// Complete marks the task as completed.
func (t *Task) Complete() error {
	if t.IsCompleted() {
		return ErrTaskAlreadyComplete
	}
	return t.SetStatus(StatusCompleted)
}

// Archive marks the task as archived. Idempotent.
func (t *Task) Archive() error {
	return t.SetStatus(StatusArchived)
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	clone := *t
	if t.dueDate != nil {
		due := *t.dueDate
		clone.dueDate = &due
	}
	if t.completedAt != nil {
		completed := *t.completedAt
		clone.completedAt = &completed
	}
	return &clone
}
