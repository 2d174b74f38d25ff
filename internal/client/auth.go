package client

import (
	"context"
	"net/http"

	"github.com/taskapp/taskapp/internal/api"
)

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error) {
	var resp api.SignUpResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodPost, Path: "/api/v1/auth/signup", Body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConfirmSignUp confirms an account with the emailed code.
func (c *Client) ConfirmSignUp(ctx context.Context, req api.ConfirmSignUpRequest) (*api.ConfirmSignUpResponse, error) {
	var resp api.ConfirmSignUpResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodPost, Path: "/api/v1/auth/confirm", Body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignIn exchanges credentials for tokens.
func (c *Client) SignIn(ctx context.Context, req api.SignInRequest) (*api.SignInResponse, error) {
	var resp api.SignInResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodPost, Path: "/api/v1/auth/login", Body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
