// Package app assembles the application services from provider dependencies.
package app

import (
	"log/slog"

	"github.com/taskapp/taskapp/internal/backend/auth"
	"github.com/taskapp/taskapp/internal/backend/contract"
	"github.com/taskapp/taskapp/internal/backend/health"
	"github.com/taskapp/taskapp/internal/backend/notifications"
	"github.com/taskapp/taskapp/internal/backend/tasks"
	"github.com/taskapp/taskapp/internal/backend/users"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/database"
	"github.com/taskapp/taskapp/internal/events"
)

// Service bundles the application services used by the entry points.
// Auth and Notifications are nil when the provider has no identity
// provider or email sender configured.
type Service struct {
	Tasks         *tasks.Service
	Users         *users.Service
	Auth          *auth.Service
	Notifications *notifications.Service
	Health        health.Manager
	Logger        *slog.Logger
	Provider      constants.BackendProvider
}

// ProviderDependencies groups the repositories and provider-specific adapters required to build a Service.
type ProviderDependencies struct {
	TaskRepo    database.TaskRepository
	UserRepo    database.UserRepository
	Publisher   events.Publisher
	Observer    events.FailureObserver
	Identity    contract.IdentityProvider
	EmailSender contract.EmailSender
	Health      health.Manager
}

// NewService wires the application services. A nil Observer falls back to
// the EMF metric observer.
func NewService(deps *ProviderDependencies, log *slog.Logger, provider constants.BackendProvider) *Service {
	observer := deps.Observer
	if observer == nil {
		observer = events.NewEMFObserver(log)
	}

	svc := &Service{
		Tasks: tasks.NewService(deps.TaskRepo, log,
			tasks.WithPublisher(deps.Publisher),
			tasks.WithFailureObserver(observer),
		),
		Users: users.NewService(deps.UserRepo, log,
			users.WithPublisher(deps.Publisher),
			users.WithFailureObserver(observer),
		),
		Health:   deps.Health,
		Logger:   log,
		Provider: provider,
	}

	if deps.Identity != nil {
		svc.Auth = auth.NewService(deps.Identity, log)
	}
	if deps.EmailSender != nil {
		svc.Notifications = notifications.NewService(deps.EmailSender, deps.UserRepo, log)
	}

	return svc
}
