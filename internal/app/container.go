// Package app wires repositories and services into a single container the
// adapters consume.
package app

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/nucleus/internal/shared/infrastructure/memory"
	tasksApp "github.com/felixgeelhaar/nucleus/internal/tasks/application"
	tasksDomain "github.com/felixgeelhaar/nucleus/internal/tasks/domain"
	usersApp "github.com/felixgeelhaar/nucleus/internal/users/application"
	usersDomain "github.com/felixgeelhaar/nucleus/internal/users/domain"
	"github.com/felixgeelhaar/nucleus/pkg/config"
)

// Container holds the application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	TaskRepo *memory.Repository[*tasksDomain.Task]
	UserRepo *memory.Repository[*usersDomain.User]

	Tasks *tasksApp.TaskService
	Users *usersApp.UserService
}

// NewContainer constructs the repositories and services.
func NewContainer(cfg *config.Config, logger *slog.Logger) *Container {
	if logger == nil {
		logger = slog.Default()
	}

	taskRepo := memory.NewRepository[*tasksDomain.Task]()
	userRepo := memory.NewRepository[*usersDomain.User]()

	return &Container{
		Config:   cfg,
		Logger:   logger,
		TaskRepo: taskRepo,
		UserRepo: userRepo,
		Tasks:    tasksApp.NewTaskService(taskRepo, logger, cfg.Actor),
		Users:    usersApp.NewUserService(userRepo, logger, cfg.Actor),
	}
}

// SeedDemoData preloads a handful of tasks and users so list and stats
// commands have something to show in a fresh process.
func (c *Container) SeedDemoData(ctx context.Context) {
	seedTasks := []tasksDomain.CreateTaskRequest{
		{Title: "Write project proposal", Priority: "high"},
		{Title: "Review open pull requests", Priority: "medium"},
		{Title: "Plan sprint retro", Description: "Collect discussion topics beforehand"},
	}
	for _, req := range seedTasks {
		if res := c.Tasks.Create(ctx, req); !res.IsOk() {
			c.Logger.Warn("demo task not seeded", "title", req.Title, "error", res.Err())
		}
	}

	seedUsers := []usersDomain.RegisterUserRequest{
		{Email: "ada@example.com", Name: "Ada Lovelace", Role: "admin"},
		{Email: "grace@example.com", Name: "Grace Hopper"},
	}
	for _, req := range seedUsers {
		if res := c.Users.Register(ctx, req); !res.IsOk() {
			c.Logger.Warn("demo user not seeded", "email", req.Email, "error", res.Err())
		}
	}
}
