package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/config"
	"github.com/taskapp/taskapp/internal/domain"
	"github.com/taskapp/taskapp/internal/testutil"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(&config.Config{APIEndpoint: server.URL, IDToken: token}, testutil.SilentLogger())
}

func TestClient_Do(t *testing.T) {
	tests := []struct {
		name          string
		token         string
		request       Request
		wantAuth      string
		wantBody      string
		wantMethod    string
		wantPath      string
		serverStatus  int
		serverBody    string
		expectedError bool
	}{
		{
			name:         "GET with token",
			token:        "id-token",
			request:      Request{Method: http.MethodGet, Path: "/api/v1/tasks"},
			wantAuth:     "Bearer id-token",
			wantMethod:   http.MethodGet,
			wantPath:     "/api/v1/tasks",
			serverStatus: http.StatusOK,
			serverBody:   `{"tasks":[]}`,
		},
		{
			name:         "POST without token sends body",
			request:      Request{Method: http.MethodPost, Path: "/api/v1/auth/login", Body: map[string]string{"email": "a@b.co"}},
			wantMethod:   http.MethodPost,
			wantPath:     "/api/v1/auth/login",
			wantBody:     `{"email":"a@b.co"}`,
			serverStatus: http.StatusOK,
			serverBody:   `{}`,
		},
		{
			name:          "unmarshalable body",
			request:       Request{Method: http.MethodPost, Path: "/x", Body: make(chan int)},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, tt.wantAuth, r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				if tt.wantBody != "" {
					body, _ := io.ReadAll(r.Body)
					assert.JSONEq(t, tt.wantBody, string(body))
				}
				w.WriteHeader(tt.serverStatus)
				_, _ = w.Write([]byte(tt.serverBody))
			}, tt.token)

			resp, err := c.Do(context.Background(), tt.request)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.serverStatus, resp.StatusCode)
			assert.Equal(t, tt.serverBody, string(resp.Body))
		})
	}
}

func TestClient_DoJSON_Error(t *testing.T) {
	t.Run("structured error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "Not found", Code: "NOT_FOUND", Details: "task not found"})
		}, "")

		_, err := c.GetTask(context.Background(), "t-1")
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "NOT_FOUND", apiErr.Code)
		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "task not found")
	})

	t.Run("plain text error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}, "")

		_, err := c.ListTasks(context.Background())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "upstream down", apiErr.Details)
		assert.False(t, IsNotFound(err))
	})

	t.Run("invalid success body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}, "")

		_, err := c.ListTasks(context.Background())
		assert.ErrorContains(t, err, "failed to parse response")
	})
}

func TestClient_Tasks(t *testing.T) {
	task := testutil.NewTaskBuilder().WithID("t-1").WithTitle("Write docs").Build().Record()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/tasks":
			_ = json.NewEncoder(w).Encode(api.ListTasksResponse{Tasks: []domain.TaskRecord{task}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/tasks":
			var req api.CreateTaskRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "Write docs", req.Title)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(api.TaskResponse{Task: task})
		case r.Method == http.MethodPatch && r.URL.Path == "/api/v1/tasks/t-1":
			_ = json.NewEncoder(w).Encode(api.TaskResponse{Task: task})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/tasks/t-1/complete":
			done := task
			done.Completed = true
			_ = json.NewEncoder(w).Encode(api.TaskResponse{Task: done})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/tasks/t-1":
			_ = json.NewEncoder(w).Encode(api.DeleteTaskResponse{TaskID: "t-1", Deleted: true})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}, "tok")

	ctx := context.Background()

	list, err := c.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, "t-1", list.Tasks[0].ID)

	created, err := c.CreateTask(ctx, api.CreateTaskRequest{Title: "Write docs"})
	require.NoError(t, err)
	assert.Equal(t, "Write docs", created.Task.Title)

	title := "Write docs"
	_, err = c.UpdateTask(ctx, "t-1", api.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)

	completed, err := c.CompleteTask(ctx, "t-1")
	require.NoError(t, err)
	assert.True(t, completed.Task.Completed)

	deleted, err := c.DeleteTask(ctx, "t-1")
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
}

func TestClient_GetHealth(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus string
		wantErr    bool
	}{
		{name: "ok", status: http.StatusOK, body: `{"status":"ok","version":"1.0.0"}`, wantStatus: "ok"},
		{name: "degraded", status: http.StatusServiceUnavailable, body: `{"status":"degraded","version":"1.0.0"}`, wantStatus: "degraded"},
		{name: "error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/health", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "")

			health, err := c.GetHealth(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, health.Status)
		})
	}
}

func TestClient_UsersAndAuth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			_ = json.NewEncoder(w).Encode(api.SignInResponse{IDToken: "id", AccessToken: "access", TokenType: "Bearer"})
		case "/api/v1/users/me/preferences":
			assert.Equal(t, http.MethodPatch, r.Method)
			_ = json.NewEncoder(w).Encode(api.UserResponse{User: domain.UserRecord{UserID: "u-1", Email: "a@b.co"}})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "Not found", Code: "NOT_FOUND"})
		}
	}, "")

	ctx := context.Background()

	tokens, err := c.SignIn(ctx, api.SignInRequest{Email: "a@b.co", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "id", tokens.IDToken)

	dark := "dark"
	user, err := c.UpdatePreferences(ctx, api.UpdatePreferencesRequest{Theme: &dark})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.User.UserID)

	_, err = c.GetCurrentUser(ctx)
	assert.True(t, IsNotFound(err))
}
