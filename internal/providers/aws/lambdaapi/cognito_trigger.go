package lambdaapi

import (
	"context"
	"log/slog"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/taskapp/taskapp/internal/backend/users"
	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/logger"
)

const confirmSignUpTrigger = "PostConfirmation_ConfirmSignUp"

// ProfileCreator creates user profiles.
type ProfileCreator interface {
	CreateUserProfile(ctx context.Context, input users.CreateProfileInput) error
}

type userServiceCreator struct {
	svc *users.Service
}

func (c userServiceCreator) CreateUserProfile(ctx context.Context, input users.CreateProfileInput) error {
	_, err := c.svc.CreateUserProfile(ctx, input)
	return err
}

// NewCognitoTriggerHandler creates the post-confirmation trigger handler.
func NewCognitoTriggerHandler(svc *users.Service, log *slog.Logger) lambda.Handler {
	return lambda.NewHandler(CognitoPostConfirmation(userServiceCreator{svc: svc}, log))
}

// CognitoPostConfirmation returns a handler that creates the user profile
// from the confirmed user's attributes. It always returns the event
// unchanged: failing the trigger would fail the user's confirmation.
func CognitoPostConfirmation(
	creator ProfileCreator,
	log *slog.Logger,
) func(context.Context, awsevents.CognitoEventUserPoolsPostConfirmation) (
	awsevents.CognitoEventUserPoolsPostConfirmation, error) {
	return func(
		ctx context.Context,
		event awsevents.CognitoEventUserPoolsPostConfirmation,
	) (awsevents.CognitoEventUserPoolsPostConfirmation, error) {
		reqLogger := logger.DeriveRequestLogger(ctx, log)

		if event.TriggerSource != confirmSignUpTrigger {
			reqLogger.Debug("ignoring post-confirmation trigger", "trigger_source", event.TriggerSource)
			return event, nil
		}

		attrs := event.Request.UserAttributes
		input := users.CreateProfileInput{
			UserID:      attrs["sub"],
			Email:       attrs["email"],
			PhoneNumber: attrs["phone_number"],
		}

		err := creator.CreateUserProfile(ctx, input)
		switch {
		case err == nil:
			reqLogger.Info("user profile created from confirmation", "user_id", input.UserID)
		case apperrors.HasCode(err, apperrors.ErrCodeDuplicateEntity):
			reqLogger.Info("user profile already exists", "user_id", input.UserID)
		default:
			reqLogger.Error("failed to create user profile", "error", err, "context", map[string]any{
				"user_id":   input.UserID,
				"user_pool": event.UserPoolID,
			})
		}

		return event, nil
	}
}
