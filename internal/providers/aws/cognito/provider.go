// Package cognito implements the identity provider port on Amazon Cognito user pools.
package cognito

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"github.com/taskapp/taskapp/internal/backend/contract"
	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/logger"
)

// IdentityProvider implements contract.IdentityProvider for one app client.
type IdentityProvider struct {
	client       Client
	clientID     string
	clientSecret string
	logger       *slog.Logger
}

// NewIdentityProvider creates an IdentityProvider. clientSecret is empty for
// public app clients; otherwise every request carries a SECRET_HASH.
func NewIdentityProvider(client Client, clientID, clientSecret string, log *slog.Logger) *IdentityProvider {
	return &IdentityProvider{
		client:       client,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       log,
	}
}

// SecretHash computes the Cognito SECRET_HASH for username.
func SecretHash(username, clientID, clientSecret string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (p *IdentityProvider) secretHash(username string) *string {
	if p.clientSecret == "" {
		return nil
	}
	return aws.String(SecretHash(username, p.clientID, p.clientSecret))
}

func (p *IdentityProvider) logCall(ctx context.Context, operation string) {
	logArgs := []any{
		"operation", "CognitoIdentityProvider." + operation,
		"client_id", p.clientID,
	}
	logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
	logger.DeriveRequestLogger(ctx, p.logger).Debug("calling external service", "context", logger.SliceToMap(logArgs))
}

// SignUp registers a user with email as the username.
func (p *IdentityProvider) SignUp(ctx context.Context, input contract.SignUpInput) (*contract.SignUpResult, error) {
	attrs := []types.AttributeType{
		{Name: aws.String("email"), Value: aws.String(input.Email)},
	}
	if input.PhoneNumber != "" {
		attrs = append(attrs, types.AttributeType{Name: aws.String("phone_number"), Value: aws.String(input.PhoneNumber)})
	}

	p.logCall(ctx, "SignUp")

	out, err := p.client.SignUp(ctx, &cip.SignUpInput{
		ClientId:       aws.String(p.clientID),
		Username:       aws.String(input.Email),
		Password:       aws.String(input.Password),
		SecretHash:     p.secretHash(input.Email),
		UserAttributes: attrs,
	})
	if err != nil {
		return nil, p.mapError(ctx, "sign-up failed", err)
	}

	return &contract.SignUpResult{
		UserID:        aws.ToString(out.UserSub),
		UserConfirmed: out.UserConfirmed,
	}, nil
}

// ConfirmSignUp confirms a user with the emailed code.
func (p *IdentityProvider) ConfirmSignUp(ctx context.Context, email, code string) error {
	p.logCall(ctx, "ConfirmSignUp")

	_, err := p.client.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		SecretHash:       p.secretHash(email),
	})
	if err != nil {
		return p.mapError(ctx, "confirmation failed", err)
	}
	return nil
}

// SignIn authenticates with the USER_PASSWORD_AUTH flow.
func (p *IdentityProvider) SignIn(ctx context.Context, email, password string) (*contract.AuthTokens, error) {
	params := map[string]string{
		"USERNAME": email,
		"PASSWORD": password,
	}
	if hash := p.secretHash(email); hash != nil {
		params["SECRET_HASH"] = *hash
	}

	p.logCall(ctx, "InitiateAuth")

	out, err := p.client.InitiateAuth(ctx, &cip.InitiateAuthInput{
		ClientId:       aws.String(p.clientID),
		AuthFlow:       types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: params,
	})
	if err != nil {
		return nil, p.mapError(ctx, "sign-in failed", err)
	}

	if out.AuthenticationResult == nil {
		return nil, apperrors.ErrUnauthorized(
			"additional authentication challenge required: "+string(out.ChallengeName), nil)
	}

	result := out.AuthenticationResult
	return &contract.AuthTokens{
		IDToken:      aws.ToString(result.IdToken),
		AccessToken:  aws.ToString(result.AccessToken),
		RefreshToken: aws.ToString(result.RefreshToken),
		ExpiresIn:    result.ExpiresIn,
		TokenType:    aws.ToString(result.TokenType),
	}, nil
}

// mapError classifies Cognito exceptions into app errors.
func (p *IdentityProvider) mapError(ctx context.Context, message string, err error) error {
	var (
		usernameExists *types.UsernameExistsException
		notAuthorized  *types.NotAuthorizedException
		notConfirmed   *types.UserNotConfirmedException
		userNotFound   *types.UserNotFoundException
		codeMismatch   *types.CodeMismatchException
		expiredCode    *types.ExpiredCodeException
		invalidPwd     *types.InvalidPasswordException
		invalidParam   *types.InvalidParameterException
	)

	switch {
	case errors.As(err, &usernameExists):
		return apperrors.ErrConflict("user already exists", err)
	case errors.As(err, &notConfirmed):
		return apperrors.ErrUserNotConfirmed("user is not confirmed", err)
	case errors.As(err, &notAuthorized), errors.As(err, &userNotFound):
		return apperrors.ErrUnauthorized("invalid email or password", err)
	case errors.As(err, &codeMismatch), errors.As(err, &expiredCode):
		return apperrors.ErrBadRequest("invalid or expired confirmation code", err)
	case errors.As(err, &invalidPwd), errors.As(err, &invalidParam):
		return apperrors.ErrBadRequest(message, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		logger.DeriveRequestLogger(ctx, p.logger).Error("cognito request failed",
			"error_code", apiErr.ErrorCode(), "error", err)
	}
	return apperrors.ErrIdentityProvider(message, err)
}
