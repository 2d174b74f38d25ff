package client

import (
	"context"
	"net/http"

	"github.com/taskapp/taskapp/internal/api"
)

// GetCurrentUser returns the caller's profile.
func (c *Client) GetCurrentUser(ctx context.Context) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodGet, Path: "/api/v1/users/me"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateCurrentUser creates the caller's profile.
func (c *Client) CreateCurrentUser(ctx context.Context, req api.CreateUserProfileRequest) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodPost, Path: "/api/v1/users/me", Body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdatePreferences changes the caller's preferences.
func (c *Client) UpdatePreferences(ctx context.Context, req api.UpdatePreferencesRequest) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodPatch, Path: "/api/v1/users/me/preferences", Body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
