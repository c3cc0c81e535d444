// Package application provides the user service facade: validation and the
// email uniqueness check run before the repository is touched, and every
// outcome is delivered as a result value.
package application

import (
	"context"
	"log/slog"

	sharedDomain "github.com/felixgeelhaar/nucleus/internal/shared/domain"
	"github.com/felixgeelhaar/nucleus/internal/shared/infrastructure/memory"
	"github.com/felixgeelhaar/nucleus/internal/users/domain"
	"github.com/felixgeelhaar/nucleus/pkg/observability"
	"github.com/google/uuid"
)

// UserService orchestrates validation and storage for users.
type UserService struct {
	repo   *memory.Repository[*domain.User]
	logger *slog.Logger
	actor  string
}

// NewUserService creates a user service acting on behalf of the given actor.
func NewUserService(repo *memory.Repository[*domain.User], logger *slog.Logger, actor string) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{repo: repo, logger: logger, actor: actor}
}

// Register validates the request, enforces email uniqueness, and stores a
// new user. A duplicate email fails with a conflict and leaves the
// repository unchanged.
func (s *UserService) Register(ctx context.Context, req domain.RegisterUserRequest) sharedDomain.Result[*domain.User] {
	if err := domain.ValidateRegisterUser(req); err != nil {
		s.logger.Debug("user registration rejected", observability.ErrorKey, err)
		return sharedDomain.Fail[*domain.User](err)
	}

	email, err := domain.NewEmail(req.Email)
	if err != nil {
		return sharedDomain.Fail[*domain.User](sharedDomain.NewValidationError("invalid email %q", req.Email))
	}
	name, err := domain.NewName(req.Name)
	if err != nil {
		return sharedDomain.Fail[*domain.User](sharedDomain.NewValidationError("invalid name: %v", err))
	}

	existing := s.repo.FindWhere(ctx, domain.UserFilter{Email: &email}.Match)
	if len(existing) > 0 {
		return sharedDomain.Fail[*domain.User](sharedDomain.NewConflictError("email %s is already registered", email))
	}

	user := domain.NewUser(email, name)
	if req.Role != "" {
		role, err := domain.ParseRole(req.Role)
		if err != nil {
			return sharedDomain.Fail[*domain.User](sharedDomain.NewValidationError("unknown role %q", req.Role))
		}
		if err := user.SetRole(role); err != nil {
			return sharedDomain.Fail[*domain.User](sharedDomain.WrapError(err))
		}
	}
	user.StampCreated(s.actor)

	created := s.repo.Create(ctx, user)
	s.logger.Info("user registered", "user_id", created.ID(), "email", created.Email().String())
	return sharedDomain.Ok(created)
}

// Get looks a user up by id. Absence is a not-found failure.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) sharedDomain.Result[*domain.User] {
	user, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return sharedDomain.Fail[*domain.User](sharedDomain.NewNotFoundError("user %s not found", id))
	}
	return sharedDomain.Ok(user)
}

// List returns the users matching the filter, in insertion order.
func (s *UserService) List(ctx context.Context, filter domain.UserFilter) sharedDomain.Result[[]*domain.User] {
	if filter.IsEmpty() {
		return sharedDomain.Ok(s.repo.FindAll(ctx))
	}
	return sharedDomain.Ok(s.repo.FindWhere(ctx, filter.Match))
}

// Rename changes a user's name.
func (s *UserService) Rename(ctx context.Context, id uuid.UUID, name string) sharedDomain.Result[*domain.User] {
	newName, err := domain.NewName(name)
	if err != nil {
		return sharedDomain.Fail[*domain.User](sharedDomain.NewValidationError("invalid name: %v", err))
	}

	updated, err := s.repo.Update(ctx, id, func(u *domain.User) error {
		u.UpdateName(newName)
		u.StampUpdated(s.actor)
		return nil
	})
	if err != nil {
		return sharedDomain.Fail[*domain.User](sharedDomain.WrapError(err))
	}

	s.logger.Info("user renamed", "user_id", id, "version", updated.Version())
	return sharedDomain.Ok(updated)
}

// Deactivate marks a user inactive. Deactivating an already-inactive user
// succeeds and still bumps the version, like any other update.
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) sharedDomain.Result[*domain.User] {
	updated, err := s.repo.Update(ctx, id, func(u *domain.User) error {
		u.Deactivate()
		u.StampUpdated(s.actor)
		return nil
	})
	if err != nil {
		return sharedDomain.Fail[*domain.User](sharedDomain.WrapError(err))
	}

	s.logger.Info("user deactivated", "user_id", id)
	return sharedDomain.Ok(updated)
}

// Delete removes a user. The wrapped bool reports whether a removal
// occurred; deleting an unknown id succeeds with false.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) sharedDomain.Result[bool] {
	removed := s.repo.Delete(ctx, id)
	if removed {
		s.logger.Info("user deleted", "user_id", id)
	}
	return sharedDomain.Ok(removed)
}
