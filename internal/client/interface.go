package client

import (
	"context"

	"github.com/taskapp/taskapp/internal/api"
)

// Interface defines the API client interface for dependency injection and testing
type Interface interface {
	GetHealth(ctx context.Context) (*api.HealthResponse, error)
	SignUp(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error)
	ConfirmSignUp(ctx context.Context, req api.ConfirmSignUpRequest) (*api.ConfirmSignUpResponse, error)
	SignIn(ctx context.Context, req api.SignInRequest) (*api.SignInResponse, error)
	ListTasks(ctx context.Context) (*api.ListTasksResponse, error)
	GetTask(ctx context.Context, taskID string) (*api.TaskResponse, error)
	CreateTask(ctx context.Context, req api.CreateTaskRequest) (*api.TaskResponse, error)
	UpdateTask(ctx context.Context, taskID string, req api.UpdateTaskRequest) (*api.TaskResponse, error)
	CompleteTask(ctx context.Context, taskID string) (*api.TaskResponse, error)
	DeleteTask(ctx context.Context, taskID string) (*api.DeleteTaskResponse, error)
	GetCurrentUser(ctx context.Context) (*api.UserResponse, error)
	CreateCurrentUser(ctx context.Context, req api.CreateUserProfileRequest) (*api.UserResponse, error)
	UpdatePreferences(ctx context.Context, req api.UpdatePreferencesRequest) (*api.UserResponse, error)
}

// Compile-time check to ensure Client implements Interface
var _ Interface = (*Client)(nil)
