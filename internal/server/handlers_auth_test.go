package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/app"
	"github.com/taskapp/taskapp/internal/backend/contract"
	apperrors "github.com/taskapp/taskapp/internal/errors"
)

func TestSignUp(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/v1/auth/signup",
		api.SignUpRequest{Email: "new@example.com", Password: "correct-horse"}, false)

	assertStatus(t, rr, http.StatusCreated)
	resp := decodeBody[api.SignUpResponse](t, rr)
	assert.Equal(t, "sub-new", resp.UserID)
	assert.False(t, resp.UserConfirmed)
}

func TestSignUpValidation(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/v1/auth/signup",
		api.SignUpRequest{Email: "new@example.com", Password: "short"}, false)

	assertStatus(t, rr, http.StatusBadRequest)
	assert.Contains(t, decodeBody[api.ErrorResponse](t, rr).Details, "Password")
}

func TestSignIn(t *testing.T) {
	t.Run("returns tokens", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, http.MethodPost, "/api/v1/auth/login",
			api.SignInRequest{Email: "a@example.com", Password: "pw"}, false)

		assertStatus(t, rr, http.StatusOK)
		assert.Equal(t, "id-token", decodeBody[api.SignInResponse](t, rr).IDToken)
	})

	t.Run("maps provider errors", func(t *testing.T) {
		env := newTestEnv(t, func(deps *app.ProviderDependencies) {
			deps.Identity = &testIdentityProvider{signInFunc: func(string, string) (*contract.AuthTokens, error) {
				return nil, apperrors.ErrUnauthorized("invalid email or password", nil)
			}}
		})

		rr := env.do(t, http.MethodPost, "/api/v1/auth/login",
			api.SignInRequest{Email: "a@example.com", Password: "pw"}, false)

		assertStatus(t, rr, http.StatusUnauthorized)
		assert.Equal(t, apperrors.ErrCodeUnauthorized, decodeBody[api.ErrorResponse](t, rr).Code)
	})
}

func TestConfirmSignUp(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/v1/auth/confirm",
		api.ConfirmSignUpRequest{Email: "a@example.com", Code: "123456"}, false)

	assertStatus(t, rr, http.StatusOK)
}

func TestAuthNotConfigured(t *testing.T) {
	env := newTestEnv(t, func(deps *app.ProviderDependencies) { deps.Identity = nil })

	rr := env.do(t, http.MethodPost, "/api/v1/auth/login",
		api.SignInRequest{Email: "a@example.com", Password: "pw"}, false)

	assertStatus(t, rr, http.StatusServiceUnavailable)
	resp := decodeBody[api.ErrorResponse](t, rr)
	assert.Equal(t, apperrors.ErrCodeServiceUnavailable, resp.Code)
	assert.Equal(t, "failed to sign in", resp.Error)
}
