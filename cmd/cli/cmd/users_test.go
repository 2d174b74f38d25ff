package cmd

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/client"
	"github.com/taskapp/taskapp/internal/domain"
	"github.com/taskapp/taskapp/internal/output"
	"github.com/taskapp/taskapp/internal/testutil"
)

func userRecord() domain.UserRecord {
	return testutil.NewUserBuilder().Build().Record()
}

func TestUsersService_ShowCurrentUser(t *testing.T) {
	t.Run("prints profile", func(t *testing.T) {
		c := &mockClient{getCurrentUserFunc: func(_ context.Context) (*api.UserResponse, error) {
			return &api.UserResponse{User: userRecord()}, nil
		}}
		out := &mockOutputInterface{}

		require.NoError(t, NewUsersService(c, out, output.FormatTable).ShowCurrentUser(context.Background()))
		email, ok := out.keyValue("Email")
		assert.True(t, ok)
		assert.Equal(t, userRecord().Email, email)
		theme, _ := out.keyValue("Theme")
		assert.Equal(t, string(userRecord().Preferences.Theme), theme)
	})

	t.Run("missing profile hints at create", func(t *testing.T) {
		c := &mockClient{getCurrentUserFunc: func(_ context.Context) (*api.UserResponse, error) {
			return nil, &client.APIError{StatusCode: http.StatusNotFound}
		}}

		err := NewUsersService(c, &mockOutputInterface{}, output.FormatTable).ShowCurrentUser(context.Background())
		assert.ErrorContains(t, err, "users create")
	})
}

func TestUsersService_CreateProfile(t *testing.T) {
	c := &mockClient{createCurrentUserFunc: func(_ context.Context, req api.CreateUserProfileRequest) (*api.UserResponse, error) {
		assert.Equal(t, "+15555550100", req.PhoneNumber)
		return &api.UserResponse{User: userRecord()}, nil
	}}
	out := &mockOutputInterface{}

	err := NewUsersService(c, out, output.FormatYAML).
		CreateProfile(context.Background(), api.CreateUserProfileRequest{PhoneNumber: "+15555550100"})
	require.NoError(t, err)
	require.Len(t, out.yaml, 1)
	assert.IsType(t, domain.UserRecord{}, out.yaml[0])
}

func TestUsersService_UpdatePreferences(t *testing.T) {
	dark := "dark"
	purple := "purple"
	off := false

	tests := []struct {
		name    string
		req     api.UpdatePreferencesRequest
		called  bool
		wantErr string
	}{
		{name: "empty patch", req: api.UpdatePreferencesRequest{}, wantErr: "nothing to update"},
		{name: "invalid theme", req: api.UpdatePreferencesRequest{Theme: &purple}, wantErr: "invalid theme"},
		{name: "theme", req: api.UpdatePreferencesRequest{Theme: &dark}, called: true},
		{name: "notifications", req: api.UpdatePreferencesRequest{Notifications: &off}, called: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			c := &mockClient{updatePreferencesFunc: func(_ context.Context, req api.UpdatePreferencesRequest) (*api.UserResponse, error) {
				called = true
				assert.Equal(t, tt.req, req)
				return &api.UserResponse{User: userRecord()}, nil
			}}

			err := NewUsersService(c, &mockOutputInterface{}, output.FormatTable).
				UpdatePreferences(context.Background(), tt.req)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.called, called)
		})
	}
}
