package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskapp/taskapp/internal/app"
	"github.com/taskapp/taskapp/internal/backend/contract"
	"github.com/taskapp/taskapp/internal/backend/health"
	"github.com/taskapp/taskapp/internal/constants"
	dynamoRepo "github.com/taskapp/taskapp/internal/providers/aws/database/dynamodb"
	"github.com/taskapp/taskapp/internal/testutil"
)

const (
	testUserID    = "user-test-123"
	testUserEmail = "test@example.com"
)

type testIdentityProvider struct {
	signUpFunc func(input contract.SignUpInput) (*contract.SignUpResult, error)
	signInFunc func(email, password string) (*contract.AuthTokens, error)
}

func (p *testIdentityProvider) SignUp(_ context.Context, input contract.SignUpInput) (*contract.SignUpResult, error) {
	if p.signUpFunc != nil {
		return p.signUpFunc(input)
	}
	return &contract.SignUpResult{UserID: "sub-new"}, nil
}

func (p *testIdentityProvider) ConfirmSignUp(context.Context, string, string) error { return nil }

func (p *testIdentityProvider) SignIn(_ context.Context, email, password string) (*contract.AuthTokens, error) {
	if p.signInFunc != nil {
		return p.signInFunc(email, password)
	}
	return &contract.AuthTokens{IDToken: "id-token", TokenType: "Bearer", ExpiresIn: 3600}, nil
}

type testHealthManager struct {
	report *health.Report
	err    error
}

func (m *testHealthManager) Check(context.Context) (*health.Report, error) {
	return m.report, m.err
}

type testEnv struct {
	router *Router
	client *dynamoRepo.MockDynamoDBClient
	deps   *app.ProviderDependencies
}

func newTestEnv(t *testing.T, mutate ...func(*app.ProviderDependencies)) *testEnv {
	t.Helper()

	client := dynamoRepo.NewMockDynamoDBClient()
	client.CreateTable("tasks", dynamoRepo.TaskKeyAttribute)
	client.CreateTable("users", dynamoRepo.UserKeyAttribute)
	log := testutil.SilentLogger()

	deps := &app.ProviderDependencies{
		TaskRepo: dynamoRepo.NewTaskRepository(client, "tasks", log),
		UserRepo: dynamoRepo.NewUserRepository(client, "users", log),
		Identity: &testIdentityProvider{},
	}
	for _, fn := range mutate {
		fn(deps)
	}

	svc := app.NewService(deps, log, constants.AWS)
	router := NewRouter(svc, 0, nil, WithIdentityResolver(TrustedHeaderIdentity{}))
	return &testEnv{router: router, client: client, deps: deps}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if authenticated {
		req.Header.Set(constants.UserIDHeader, testUserID)
		req.Header.Set(constants.UserEmailHeader, testUserEmail)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func assertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rr.Code, rr.Body.String())
}

var _ http.Handler = (*Router)(nil)
