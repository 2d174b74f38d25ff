package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/config"
)

var errNotImplemented = errors.New("not implemented")

type mockClient struct {
	getHealthFunc         func(ctx context.Context) (*api.HealthResponse, error)
	signUpFunc            func(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error)
	confirmSignUpFunc     func(ctx context.Context, req api.ConfirmSignUpRequest) (*api.ConfirmSignUpResponse, error)
	signInFunc            func(ctx context.Context, req api.SignInRequest) (*api.SignInResponse, error)
	listTasksFunc         func(ctx context.Context) (*api.ListTasksResponse, error)
	getTaskFunc           func(ctx context.Context, taskID string) (*api.TaskResponse, error)
	createTaskFunc        func(ctx context.Context, req api.CreateTaskRequest) (*api.TaskResponse, error)
	updateTaskFunc        func(ctx context.Context, taskID string, req api.UpdateTaskRequest) (*api.TaskResponse, error)
	completeTaskFunc      func(ctx context.Context, taskID string) (*api.TaskResponse, error)
	deleteTaskFunc        func(ctx context.Context, taskID string) (*api.DeleteTaskResponse, error)
	getCurrentUserFunc    func(ctx context.Context) (*api.UserResponse, error)
	createCurrentUserFunc func(ctx context.Context, req api.CreateUserProfileRequest) (*api.UserResponse, error)
	updatePreferencesFunc func(ctx context.Context, req api.UpdatePreferencesRequest) (*api.UserResponse, error)
}

func (m *mockClient) GetHealth(ctx context.Context) (*api.HealthResponse, error) {
	if m.getHealthFunc != nil {
		return m.getHealthFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockClient) SignUp(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error) {
	if m.signUpFunc != nil {
		return m.signUpFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *mockClient) ConfirmSignUp(ctx context.Context, req api.ConfirmSignUpRequest) (*api.ConfirmSignUpResponse, error) {
	if m.confirmSignUpFunc != nil {
		return m.confirmSignUpFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *mockClient) SignIn(ctx context.Context, req api.SignInRequest) (*api.SignInResponse, error) {
	if m.signInFunc != nil {
		return m.signInFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *mockClient) ListTasks(ctx context.Context) (*api.ListTasksResponse, error) {
	if m.listTasksFunc != nil {
		return m.listTasksFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockClient) GetTask(ctx context.Context, taskID string) (*api.TaskResponse, error) {
	if m.getTaskFunc != nil {
		return m.getTaskFunc(ctx, taskID)
	}
	return nil, errNotImplemented
}

func (m *mockClient) CreateTask(ctx context.Context, req api.CreateTaskRequest) (*api.TaskResponse, error) {
	if m.createTaskFunc != nil {
		return m.createTaskFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *mockClient) UpdateTask(ctx context.Context, taskID string, req api.UpdateTaskRequest) (*api.TaskResponse, error) {
	if m.updateTaskFunc != nil {
		return m.updateTaskFunc(ctx, taskID, req)
	}
	return nil, errNotImplemented
}

func (m *mockClient) CompleteTask(ctx context.Context, taskID string) (*api.TaskResponse, error) {
	if m.completeTaskFunc != nil {
		return m.completeTaskFunc(ctx, taskID)
	}
	return nil, errNotImplemented
}

func (m *mockClient) DeleteTask(ctx context.Context, taskID string) (*api.DeleteTaskResponse, error) {
	if m.deleteTaskFunc != nil {
		return m.deleteTaskFunc(ctx, taskID)
	}
	return nil, errNotImplemented
}

func (m *mockClient) GetCurrentUser(ctx context.Context) (*api.UserResponse, error) {
	if m.getCurrentUserFunc != nil {
		return m.getCurrentUserFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockClient) CreateCurrentUser(ctx context.Context, req api.CreateUserProfileRequest) (*api.UserResponse, error) {
	if m.createCurrentUserFunc != nil {
		return m.createCurrentUserFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *mockClient) UpdatePreferences(ctx context.Context, req api.UpdatePreferencesRequest) (*api.UserResponse, error) {
	if m.updatePreferencesFunc != nil {
		return m.updatePreferencesFunc(ctx, req)
	}
	return nil, errNotImplemented
}

type mockOutputInterface struct {
	calls   []call
	prompts []string
	yaml    []any
}

type call struct {
	method string
	args   []any
}

func (m *mockOutputInterface) Infof(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Infof", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) Errorf(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Errorf", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) Successf(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Successf", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) Warningf(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Warningf", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) Table(headers []string, rows [][]string) {
	m.calls = append(m.calls, call{method: "Table", args: []any{headers, rows}})
}
func (m *mockOutputInterface) Blank() {
	m.calls = append(m.calls, call{method: "Blank"})
}
func (m *mockOutputInterface) Bold(text string) string {
	return text
}
func (m *mockOutputInterface) Cyan(text string) string {
	return text
}
func (m *mockOutputInterface) KeyValue(key, value string) {
	m.calls = append(m.calls, call{method: "KeyValue", args: []any{key, value}})
}
func (m *mockOutputInterface) Subheader(text string) {
	m.calls = append(m.calls, call{method: "Subheader", args: []any{text}})
}
func (m *mockOutputInterface) StatusBadge(completed bool) string {
	if completed {
		return "done"
	}
	return "open"
}
func (m *mockOutputInterface) YAML(v any) error {
	m.yaml = append(m.yaml, v)
	return nil
}
func (m *mockOutputInterface) Prompt(_ string) string {
	if len(m.prompts) == 0 {
		return ""
	}
	answer := m.prompts[0]
	m.prompts = m.prompts[1:]
	return answer
}

func (m *mockOutputInterface) has(method string) bool {
	for _, c := range m.calls {
		if c.method == method {
			return true
		}
	}
	return false
}

func (m *mockOutputInterface) keyValue(key string) (string, bool) {
	for _, c := range m.calls {
		if c.method == "KeyValue" && c.args[0] == key {
			return c.args[1].(string), true
		}
	}
	return "", false
}

type recordingSaver struct {
	saved *config.Config
	err   error
}

func (r *recordingSaver) Save(cfg *config.Config) error {
	r.saved = cfg
	return r.err
}
