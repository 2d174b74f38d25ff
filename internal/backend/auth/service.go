// Package auth implements sign-up, confirmation and sign-in on top of an
// identity provider.
package auth

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/taskapp/taskapp/internal/backend/contract"
	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/logger"
)

// Service provides authentication flows.
type Service struct {
	provider contract.IdentityProvider
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates an auth service backed by provider.
func NewService(provider contract.IdentityProvider, log *slog.Logger) *Service {
	return &Service{
		provider: provider,
		validate: validator.New(),
		logger:   log,
	}
}

type signUpParams struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=8"`
	PhoneNumber string `validate:"omitempty,startswith=+,e164"`
}

// SignUp registers a new identity. The user profile is created later by the
// post-confirmation trigger.
func (s *Service) SignUp(ctx context.Context, input contract.SignUpInput) (*contract.SignUpResult, error) {
	params := signUpParams{Email: input.Email, Password: input.Password, PhoneNumber: input.PhoneNumber}
	if err := s.validate.Struct(params); err != nil {
		return nil, apperrors.ErrBadRequest("invalid sign-up request", err)
	}

	result, err := s.provider.SignUp(ctx, input)
	if err != nil {
		return nil, err
	}

	reqLogger := logger.DeriveRequestLogger(ctx, s.logger)
	reqLogger.Info("user signed up", "user_id", result.UserID, "confirmed", result.UserConfirmed)

	return result, nil
}

// ConfirmSignUp confirms an identity with the emailed code.
func (s *Service) ConfirmSignUp(ctx context.Context, email, code string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return apperrors.ErrBadRequest("invalid email address", err)
	}
	if code == "" {
		return apperrors.ErrBadRequest("confirmation code is required", nil)
	}

	return s.provider.ConfirmSignUp(ctx, email, code)
}

// SignIn authenticates with email and password and returns the issued tokens.
func (s *Service) SignIn(ctx context.Context, email, password string) (*contract.AuthTokens, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, apperrors.ErrBadRequest("invalid email address", err)
	}
	if password == "" {
		return nil, apperrors.ErrBadRequest("password is required", nil)
	}

	tokens, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return tokens, nil
}
