// Package notifications turns domain events into emails.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taskapp/taskapp/internal/backend/contract"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/database"
	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/events"
	"github.com/taskapp/taskapp/internal/logger"
)

// Service sends notification emails. The user repository is optional; when
// set, users who turned notifications off are skipped.
type Service struct {
	sender   contract.EmailSender
	users    database.UserRepository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a notification service.
func NewService(sender contract.EmailSender, users database.UserRepository, log *slog.Logger) *Service {
	return &Service{
		sender:   sender,
		users:    users,
		validate: validator.New(),
		logger:   log,
	}
}

// SendEmail validates and delivers a single message.
func (s *Service) SendEmail(ctx context.Context, email contract.Email) error {
	if len(email.To) == 0 {
		return apperrors.ErrBadRequest("at least one recipient is required", nil)
	}
	for _, to := range email.To {
		if err := s.validate.Var(to, "required,email"); err != nil {
			return apperrors.ErrBadRequest(fmt.Sprintf("invalid recipient %q", to), err)
		}
	}
	if strings.TrimSpace(email.Subject) == "" {
		return apperrors.ErrBadRequest("subject is required", nil)
	}
	if strings.TrimSpace(email.TextBody) == "" && strings.TrimSpace(email.HTMLBody) == "" {
		return apperrors.ErrBadRequest("email body is required", nil)
	}

	return s.sender.SendEmail(ctx, email)
}

// HandleEvent reacts to a domain event delivered by the event bus.
// Unknown detail types are ignored.
func (s *Service) HandleEvent(ctx context.Context, source, detailType string, detail json.RawMessage) error {
	reqLogger := logger.DeriveRequestLogger(ctx, s.logger)

	switch detailType {
	case constants.TaskCreationDetailType:
		var d events.TaskCreationDetail
		if err := json.Unmarshal(detail, &d); err != nil {
			return apperrors.ErrBadRequest("invalid TaskCreation detail", err)
		}
		return s.notify(ctx, d.UserID, d.UserEmail, contract.Email{
			Subject:  "Task created: " + d.Title,
			TextBody: fmt.Sprintf("Your task %q was created.\n\n%s\n\nTask ID: %s", d.Title, d.Description, d.TaskID),
		})
	case constants.TaskCompletionDetailType:
		var d events.TaskCompletionDetail
		if err := json.Unmarshal(detail, &d); err != nil {
			return apperrors.ErrBadRequest("invalid TaskCompletion detail", err)
		}
		return s.notify(ctx, d.UserID, d.UserEmail, contract.Email{
			Subject: "Task completed: " + d.Title,
			TextBody: fmt.Sprintf("Your task %q was completed at %s.\n\nTask ID: %s",
				d.Title, d.CompletedAt.Format("2006-01-02 15:04 MST"), d.TaskID),
		})
	case constants.UserCreatedDetailType:
		var d events.UserCreatedDetail
		if err := json.Unmarshal(detail, &d); err != nil {
			return apperrors.ErrBadRequest("invalid UserCreated detail", err)
		}
		return s.notify(ctx, d.UserID, d.Email, contract.Email{
			Subject:  fmt.Sprintf("Welcome to %s", constants.ProjectName),
			TextBody: fmt.Sprintf("Your %s account is ready.", constants.ProjectName),
		})
	default:
		reqLogger.Warn("ignoring unsupported event", "source", source, "detail_type", detailType)
		return nil
	}
}

// notify resolves the recipient and honors the user's notification preference.
func (s *Service) notify(ctx context.Context, userID, recipient string, email contract.Email) error {
	reqLogger := logger.DeriveRequestLogger(ctx, s.logger)

	if userID != "" && s.users != nil {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user != nil {
			if !user.Preferences().Notifications {
				reqLogger.Info("notifications disabled, skipping email", "user_id", userID)
				return nil
			}
			if recipient == "" {
				recipient = user.Email()
			}
		}
	}

	if recipient == "" {
		reqLogger.Debug("no recipient for notification, skipping", "user_id", userID)
		return nil
	}

	email.To = []string{recipient}
	if err := s.SendEmail(ctx, email); err != nil {
		return err
	}

	reqLogger.Info("notification sent", "user_id", userID, "subject", email.Subject)
	return nil
}
