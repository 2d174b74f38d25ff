// Package contract defines the ports between the application services and
// provider-specific implementations (identity, email).
package contract

import "context"

// SignUpInput holds the attributes of a new identity.
type SignUpInput struct {
	Email       string
	Password    string
	PhoneNumber string
}

// SignUpResult is returned by IdentityProvider.SignUp.
type SignUpResult struct {
	UserID        string
	UserConfirmed bool
}

// AuthTokens are issued after a successful sign-in.
type AuthTokens struct {
	IDToken      string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int32
	TokenType    string
}

// IdentityProvider manages user identities (e.g. Cognito user pools).
type IdentityProvider interface {
	// SignUp registers a new identity. The returned UserID is the provider subject.
	SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error)

	// ConfirmSignUp confirms a pending identity with the code sent to the user.
	ConfirmSignUp(ctx context.Context, email, code string) error

	// SignIn authenticates with username and password.
	SignIn(ctx context.Context, email, password string) (*AuthTokens, error)
}

// Email is an outbound email message.
type Email struct {
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}

// EmailSender delivers email messages (e.g. SES).
type EmailSender interface {
	SendEmail(ctx context.Context, email Email) error
}
