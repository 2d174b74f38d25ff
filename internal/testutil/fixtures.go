// Package testutil provides shared testing utilities and helpers.
package testutil

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/domain"
)

// FixedTime is the reference instant used by builders.
var FixedTime = time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)

// TaskBuilder provides a fluent interface for building test tasks.
type TaskBuilder struct {
	record domain.TaskRecord
}

// NewTaskBuilder creates a new TaskBuilder with sensible defaults.
func NewTaskBuilder() *TaskBuilder {
	return &TaskBuilder{
		record: domain.TaskRecord{
			ID:          "task-test-123",
			Title:       "Write tests",
			Description: "cover the service layer",
			CreatedAt:   FixedTime,
			UpdatedAt:   FixedTime,
		},
	}
}

// WithID sets the task ID.
func (b *TaskBuilder) WithID(id string) *TaskBuilder {
	b.record.ID = id
	return b
}

// WithTitle sets the task title.
func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.record.Title = title
	return b
}

// WithDescription sets the task description.
func (b *TaskBuilder) WithDescription(description string) *TaskBuilder {
	b.record.Description = description
	return b
}

// Completed marks the task as completed.
func (b *TaskBuilder) Completed() *TaskBuilder {
	b.record.Completed = true
	return b
}

// Build returns the constructed Task.
func (b *TaskBuilder) Build() *domain.Task {
	return domain.TaskFromRecord(b.record)
}

// UserBuilder provides a fluent interface for building test users.
type UserBuilder struct {
	record domain.UserRecord
}

// NewUserBuilder creates a new UserBuilder with sensible defaults.
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		record: domain.UserRecord{
			UserID:      "user-test-123",
			Email:       "test@example.com",
			Preferences: domain.DefaultPreferences(),
			CreatedAt:   FixedTime,
		},
	}
}

// WithUserID sets the user ID.
func (b *UserBuilder) WithUserID(userID string) *UserBuilder {
	b.record.UserID = userID
	return b
}

// WithEmail sets the user's email.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.record.Email = email
	return b
}

// WithPhoneNumber sets the user's phone number.
func (b *UserBuilder) WithPhoneNumber(phone string) *UserBuilder {
	b.record.PhoneNumber = phone
	return b
}

// WithPreferences sets the user's preferences.
func (b *UserBuilder) WithPreferences(prefs domain.Preferences) *UserBuilder {
	b.record.Preferences = prefs
	return b
}

// Build returns the constructed User.
func (b *UserBuilder) Build() *domain.User {
	return domain.UserFromRecord(b.record)
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// TestContext creates a test context with a reasonable timeout.
// Note: The cancel function is intentionally not returned since test contexts
// are expected to be short-lived and will be cleaned up when the test completes.
func TestContext() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), constants.TestContextTimeout)
	_ = cancel
	return ctx
}

// SilentLogger creates a logger that discards all output.
func SilentLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// TestActor returns the actor matching the default UserBuilder profile.
func TestActor() domain.Actor {
	return domain.Actor{UserID: "user-test-123", UserEmail: "test@example.com"}
}
