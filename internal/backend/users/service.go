// Package users implements the user profile application service.
package users

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/database"
	"github.com/taskapp/taskapp/internal/domain"
	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/events"
	"github.com/taskapp/taskapp/internal/logger"
)

// CreateProfileInput holds the attributes of a new profile.
// Preferences fields left nil take their default value.
type CreateProfileInput struct {
	UserID      string
	Email       string
	PhoneNumber string
	Preferences domain.PreferencesPatch
}

// Service provides the business logic for user profiles.
// The event publisher is optional; when it is nil no event is attempted.
type Service struct {
	repo      database.UserRepository
	publisher events.Publisher
	observer  events.FailureObserver
	logger    *slog.Logger
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

// WithClock overrides the time source.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		s.now = fn
	}
}

// NewService creates a user service backed by repo.
func NewService(repo database.UserRepository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUserProfile stores a new profile and publishes a UserCreated event.
// It fails with DUPLICATE_ENTITY, without writing, when the user already exists.
func (s *Service) CreateUserProfile(ctx context.Context, input CreateProfileInput) (*domain.User, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, apperrors.ErrBadRequest("user ID is required", nil)
	}

	existing, err := s.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateEntity("user profile already exists", nil)
	}

	prefs := domain.DefaultPreferences().Merge(input.Preferences)
	user := domain.NewUser(input.UserID, input.Email, input.PhoneNumber, prefs, s.now())

	created, err := s.repo.Save(ctx, user)
	if err != nil {
		// A concurrent confirmation can win the write after our lookup.
		if apperrors.HasCode(err, apperrors.ErrCodeConflict) {
			return nil, apperrors.ErrDuplicateEntity("user profile already exists", err)
		}
		return nil, err
	}

	reqLogger := logger.DeriveRequestLogger(ctx, s.logger)
	reqLogger.Info("user profile created", "user_id", created.UserID())

	events.PublishBestEffort(ctx, s.publisher, s.logger, s.observer,
		constants.UserEventSource, constants.UserCreatedDetailType,
		events.UserCreatedDetail{
			UserID:    created.UserID(),
			Email:     created.Email(),
			CreatedAt: created.CreatedAt(),
		})

	return created, nil
}

// GetUserByID returns the profile, or nil if it does not exist.
func (s *Service) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateUserPreferences merges patch into the stored preferences and
// publishes a UserPreferencesUpdated event. Unlike tasks, a missing
// profile is a NOT_FOUND error.
func (s *Service) UpdateUserPreferences(
	ctx context.Context,
	userID string,
	patch domain.PreferencesPatch,
) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound("user not found", nil)
	}

	user.UpdatePreferences(patch, s.now())

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	reqLogger := logger.DeriveRequestLogger(ctx, s.logger)
	reqLogger.Info("user preferences updated", "user_id", updated.UserID())

	events.PublishBestEffort(ctx, s.publisher, s.logger, s.observer,
		constants.UserEventSource, constants.UserPreferencesUpdatedDetailType,
		events.UserPreferencesUpdatedDetail{
			UserID:      updated.UserID(),
			Preferences: updated.Preferences(),
		})

	return updated, nil
}
