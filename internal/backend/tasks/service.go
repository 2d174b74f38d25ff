// Package tasks implements the task application service.
package tasks

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/database"
	"github.com/taskapp/taskapp/internal/domain"
	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/events"
	"github.com/taskapp/taskapp/internal/logger"
)

// Service provides the business logic for task management.
// The event publisher is optional; when it is nil no event is attempted.
type Service struct {
	repo      database.TaskRepository
	publisher events.Publisher
	observer  events.FailureObserver
	logger    *slog.Logger
	newID     func() string
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher enables best-effort event publishing.
func WithPublisher(publisher events.Publisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithFailureObserver registers the hook notified of swallowed publish failures.
func WithFailureObserver(observer events.FailureObserver) Option {
	return func(s *Service) {
		s.observer = observer
	}
}

// WithIDGenerator overrides the task ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// WithClock overrides the time source.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		s.now = fn
	}
}

// NewService creates a task service backed by repo.
func NewService(repo database.TaskRepository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: log,
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTask stores a new open task and publishes a TaskCreation event.
// A publish failure does not fail the call.
func (s *Service) CreateTask(ctx context.Context, title, description string, actor domain.Actor) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.ErrBadRequest("title is required", nil)
	}

	task := domain.NewTask(s.newID(), title, description, s.now())

	created, err := s.repo.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	reqLogger := logger.DeriveRequestLogger(ctx, s.logger)
	reqLogger.Info("task created", "task_id", created.ID())

	events.PublishBestEffort(ctx, s.publisher, s.logger, s.observer,
		constants.TaskEventSource, constants.TaskCreationDetailType,
		events.TaskCreationDetail{
			TaskID:      created.ID(),
			Title:       created.Title(),
			Description: created.Description(),
			UserID:      actor.UserID,
			UserEmail:   actor.UserEmail,
		})

	return created, nil
}

// GetTask returns the task with the given ID, or nil if it does not exist.
func (s *Service) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// GetAllTasks returns every task.
func (s *Service) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.FindAll(ctx)
}

// CompleteTask marks a task as completed and publishes a TaskCompletion event.
// It returns nil without publishing when the task does not exist, including
// when it is deleted between the read and the write.
// Completing an already completed task refreshes UpdatedAt and publishes again.
func (s *Service) CompleteTask(ctx context.Context, id string, actor domain.Actor) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	task.Complete(s.now())

	updated, err := s.update(ctx, task)
	if err != nil || updated == nil {
		return nil, err
	}

	reqLogger := logger.DeriveRequestLogger(ctx, s.logger)
	reqLogger.Info("task completed", "task_id", updated.ID())

	events.PublishBestEffort(ctx, s.publisher, s.logger, s.observer,
		constants.TaskEventSource, constants.TaskCompletionDetailType,
		events.TaskCompletionDetail{
			TaskID:      updated.ID(),
			Title:       updated.Title(),
			CompletedAt: updated.UpdatedAt(),
			UserID:      actor.UserID,
			UserEmail:   actor.UserEmail,
		})

	return updated, nil
}

// UpdateTask applies the supplied fields to a task. Nil fields are unchanged.
// It returns nil when the task does not exist. No event is published.
func (s *Service) UpdateTask(ctx context.Context, id string, title, description *string) (*domain.Task, error) {
	if title != nil && strings.TrimSpace(*title) == "" {
		return nil, apperrors.ErrBadRequest("title cannot be empty", nil)
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	task.Update(title, description, s.now())

	return s.update(ctx, task)
}

// update writes task back, treating a delete that raced the read as absent.
func (s *Service) update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	updated, err := s.repo.Update(ctx, task)
	if apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
		logger.DeriveRequestLogger(ctx, s.logger).Debug("task deleted before update", "task_id", task.ID())
		return nil, nil
	}
	return updated, err
}

// DeleteTask removes a task and reports whether it existed. No event is published.
func (s *Service) DeleteTask(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		reqLogger := logger.DeriveRequestLogger(ctx, s.logger)
		reqLogger.Info("task deleted", "task_id", id)
	}

	return deleted, nil
}
