// Package database defines repository interfaces for data persistence.
// It provides abstractions for task and user storage.
package database

import (
	"context"

	"github.com/taskapp/taskapp/internal/domain"
)

// TaskRepository defines the interface for task persistence.
// This abstraction allows for different implementations (DynamoDB, in-memory, etc.)
// without changing the business logic layer.
type TaskRepository interface {
	// Save stores a new task. Returns a CONFLICT error if the ID already exists.
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// FindByID retrieves a task by its ID.
	// Returns nil if the task doesn't exist.
	FindByID(ctx context.Context, id string) (*domain.Task, error)

	// FindAll returns every stored task. Order is unspecified.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// Update replaces an existing task. Returns a NOT_FOUND error if the ID does not exist.
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// Delete removes a task and reports whether anything was deleted.
	Delete(ctx context.Context, id string) (bool, error)
}

// UserRepository defines the interface for user profile persistence.
type UserRepository interface {
	// Save stores a new profile. Returns a CONFLICT error if the user ID already exists.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByID retrieves a profile by user ID.
	// Returns nil if the profile doesn't exist.
	FindByID(ctx context.Context, userID string) (*domain.User, error)

	// FindAll returns every stored profile.
	FindAll(ctx context.Context) ([]*domain.User, error)

	// Update replaces an existing profile. Returns a NOT_FOUND error if the user ID does not exist.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)

	// Delete removes a profile and reports whether anything was deleted.
	Delete(ctx context.Context, userID string) (bool, error)
}
