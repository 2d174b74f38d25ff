package cmd

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/client"
	"github.com/taskapp/taskapp/internal/config"
)

func TestAuthService_SignUp(t *testing.T) {
	t.Run("prompts for password", func(t *testing.T) {
		c := &mockClient{signUpFunc: func(_ context.Context, req api.SignUpRequest) (*api.SignUpResponse, error) {
			assert.Equal(t, "alice@example.com", req.Email)
			assert.Equal(t, "s3cretpass", req.Password)
			return &api.SignUpResponse{UserID: "sub-1"}, nil
		}}
		out := &mockOutputInterface{prompts: []string{"s3cretpass"}}

		require.NoError(t, NewAuthService(c, out, &recordingSaver{}).
			SignUp(context.Background(), "alice@example.com", "", ""))
		id, _ := out.keyValue("User ID")
		assert.Equal(t, "sub-1", id)
		assert.True(t, out.has("Infof"))
	})

	t.Run("empty password", func(t *testing.T) {
		err := NewAuthService(&mockClient{}, &mockOutputInterface{}, &recordingSaver{}).
			SignUp(context.Background(), "alice@example.com", "", "")
		assert.EqualError(t, err, "password is required")
	})

	t.Run("duplicate account", func(t *testing.T) {
		c := &mockClient{signUpFunc: func(_ context.Context, _ api.SignUpRequest) (*api.SignUpResponse, error) {
			return nil, &client.APIError{StatusCode: http.StatusConflict, Message: "Conflict"}
		}}
		err := NewAuthService(c, &mockOutputInterface{}, &recordingSaver{}).
			SignUp(context.Background(), "alice@example.com", "pw123456", "")
		assert.ErrorContains(t, err, "failed to sign up")
	})
}

func TestAuthService_Confirm(t *testing.T) {
	c := &mockClient{confirmSignUpFunc: func(_ context.Context, req api.ConfirmSignUpRequest) (*api.ConfirmSignUpResponse, error) {
		assert.Equal(t, "123456", req.Code)
		return &api.ConfirmSignUpResponse{Message: "confirmed"}, nil
	}}
	out := &mockOutputInterface{}

	require.NoError(t, NewAuthService(c, out, &recordingSaver{}).Confirm(context.Background(), "alice@example.com", "123456"))
	assert.True(t, out.has("Successf"))
}

func TestAuthService_Login(t *testing.T) {
	cfg := &config.Config{APIEndpoint: "https://api.example.com", IDToken: "old"}

	t.Run("saves id token", func(t *testing.T) {
		c := &mockClient{signInFunc: func(_ context.Context, _ api.SignInRequest) (*api.SignInResponse, error) {
			return &api.SignInResponse{IDToken: "new-token", ExpiresIn: 3600}, nil
		}}
		saver := &recordingSaver{}

		require.NoError(t, NewAuthService(c, &mockOutputInterface{}, saver).
			Login(context.Background(), cfg, "alice@example.com", "pw123456"))
		require.NotNil(t, saver.saved)
		assert.Equal(t, "https://api.example.com", saver.saved.APIEndpoint)
		assert.Equal(t, "new-token", saver.saved.IDToken)
	})

	t.Run("rejected credentials are not saved", func(t *testing.T) {
		c := &mockClient{signInFunc: func(_ context.Context, _ api.SignInRequest) (*api.SignInResponse, error) {
			return nil, &client.APIError{StatusCode: http.StatusUnauthorized}
		}}
		saver := &recordingSaver{}

		err := NewAuthService(c, &mockOutputInterface{}, saver).
			Login(context.Background(), cfg, "alice@example.com", "wrong")
		assert.ErrorContains(t, err, "failed to sign in")
		assert.Nil(t, saver.saved)
	})

	t.Run("save failure", func(t *testing.T) {
		c := &mockClient{signInFunc: func(_ context.Context, _ api.SignInRequest) (*api.SignInResponse, error) {
			return &api.SignInResponse{IDToken: "t"}, nil
		}}
		err := NewAuthService(c, &mockOutputInterface{}, &recordingSaver{err: errors.New("disk full")}).
			Login(context.Background(), cfg, "alice@example.com", "pw123456")
		assert.ErrorContains(t, err, "disk full")
	})
}
