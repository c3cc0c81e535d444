// Package application provides the task service facade: validation first,
// then storage, with every outcome delivered as a result value.
package application

import (
	"context"
	"log/slog"
	"time"

	sharedDomain "github.com/felixgeelhaar/nucleus/internal/shared/domain"
	"github.com/felixgeelhaar/nucleus/internal/shared/infrastructure/memory"
	"github.com/felixgeelhaar/nucleus/internal/tasks/domain"
	"github.com/felixgeelhaar/nucleus/pkg/observability"
	"github.com/google/uuid"
)

// TaskPatch carries a partial update. A nil field means "leave unchanged";
// a non-nil field is applied even when it points at a zero value, so an
// empty description explicitly clears the stored one. The due date needs
// its own clear flag because a nil pointer already means "unchanged".
type TaskPatch struct {
	Title        *string
	Description  *string
	Status       *domain.Status
	Priority     *domain.Priority
	DueDate      *time.Time
	ClearDueDate bool
}

// TaskService orchestrates validation and storage for tasks.
type TaskService struct {
	repo   *memory.Repository[*domain.Task]
	logger *slog.Logger
	actor  string
}

// NewTaskService creates a task service acting on behalf of the given actor.
func NewTaskService(repo *memory.Repository[*domain.Task], logger *slog.Logger, actor string) *TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskService{repo: repo, logger: logger, actor: actor}
}

// Create validates the request and stores a new task. Validation failures
// return before the repository is touched.
func (s *TaskService) Create(ctx context.Context, req domain.CreateTaskRequest) sharedDomain.Result[*domain.Task] {
	if err := domain.ValidateCreateTask(req); err != nil {
		s.logger.Debug("task creation rejected", observability.ErrorKey, err)
		return sharedDomain.Fail[*domain.Task](err)
	}

	builder := domain.NewTaskBuilder().
		WithTitle(req.Title).
		WithDescription(req.Description)
	if req.Priority != "" {
		priority, err := domain.ParsePriority(req.Priority)
		if err != nil {
			return sharedDomain.Fail[*domain.Task](sharedDomain.NewValidationError("unknown priority %q", req.Priority))
		}
		builder = builder.WithPriority(priority)
	}
	if req.DueDate != nil {
		builder = builder.WithDueDate(*req.DueDate)
	}

	task, err := builder.Build()
	if err != nil {
		return sharedDomain.Fail[*domain.Task](sharedDomain.WrapError(err))
	}
	task.StampCreated(s.actor)

	created := s.repo.Create(ctx, task)
	s.logger.Info("task created", "task_id", created.ID(), "title", created.Title())
	return sharedDomain.Ok(created)
}

// Get looks a task up by id. Absence is a not-found failure.
func (s *TaskService) Get(ctx context.Context, id uuid.UUID) sharedDomain.Result[*domain.Task] {
	task, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return sharedDomain.Fail[*domain.Task](sharedDomain.NewNotFoundError("task %s not found", id))
	}
	return sharedDomain.Ok(task)
}

// List returns the tasks matching the filter, in insertion order. An empty
// filter returns everything. Listing never fails.
func (s *TaskService) List(ctx context.Context, filter domain.TaskFilter) sharedDomain.Result[[]*domain.Task] {
	if filter.IsEmpty() {
		return sharedDomain.Ok(s.repo.FindAll(ctx))
	}
	return sharedDomain.Ok(s.repo.FindWhere(ctx, filter.Match))
}

// UpdateStatus moves a task to a new status and refreshes the audit stamp.
func (s *TaskService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) sharedDomain.Result[*domain.Task] {
	updated, err := s.repo.Update(ctx, id, func(t *domain.Task) error {
		if err := t.SetStatus(status); err != nil {
			return sharedDomain.NewValidationError("cannot move task to %s: %v", status, err)
		}
		t.StampUpdated(s.actor)
		return nil
	})
	if err != nil {
		return sharedDomain.Fail[*domain.Task](sharedDomain.WrapError(err))
	}

	s.logger.Info("task status updated", "task_id", id, "status", status.String(), "version", updated.Version())
	return sharedDomain.Ok(updated)
}

// Update applies a partial update to a task.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, patch TaskPatch) sharedDomain.Result[*domain.Task] {
	updated, err := s.repo.Update(ctx, id, func(t *domain.Task) error {
		if patch.Title != nil {
			if err := t.SetTitle(*patch.Title); err != nil {
				return sharedDomain.NewValidationError("invalid title: %v", err)
			}
		}
		if patch.Description != nil {
			if err := t.SetDescription(*patch.Description); err != nil {
				return sharedDomain.NewValidationError("invalid description: %v", err)
			}
		}
		if patch.Priority != nil {
			if err := t.SetPriority(*patch.Priority); err != nil {
				return sharedDomain.NewValidationError("invalid priority: %v", err)
			}
		}
		if patch.Status != nil {
			if err := t.SetStatus(*patch.Status); err != nil {
				return sharedDomain.NewValidationError("invalid status: %v", err)
			}
		}
		if patch.ClearDueDate {
			if err := t.SetDueDate(nil); err != nil {
				return sharedDomain.WrapError(err)
			}
		} else if patch.DueDate != nil {
			if err := t.SetDueDate(patch.DueDate); err != nil {
				return sharedDomain.WrapError(err)
			}
		}
		t.StampUpdated(s.actor)
		return nil
	})
	if err != nil {
		return sharedDomain.Fail[*domain.Task](sharedDomain.WrapError(err))
	}

	s.logger.Info("task updated", "task_id", id, "version", updated.Version())
	return sharedDomain.Ok(updated)
}

// Delete removes a task. The wrapped bool reports whether a removal
// occurred; deleting an unknown id succeeds with false.
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) sharedDomain.Result[bool] {
	removed := s.repo.Delete(ctx, id)
	if removed {
		s.logger.Info("task deleted", "task_id", id)
	}
	return sharedDomain.Ok(removed)
}
