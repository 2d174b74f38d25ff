package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/taskapp/taskapp/internal/api"
)

func taskPath(taskID string, suffix ...string) string {
	path := "/api/v1/tasks/" + url.PathEscape(taskID)
	for _, s := range suffix {
		path += "/" + s
	}
	return path
}

// ListTasks returns every task.
func (c *Client) ListTasks(ctx context.Context) (*api.ListTasksResponse, error) {
	var resp api.ListTasksResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodGet, Path: "/api/v1/tasks"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTask returns a single task.
func (c *Client) GetTask(ctx context.Context, taskID string) (*api.TaskResponse, error) {
	var resp api.TaskResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodGet, Path: taskPath(taskID)}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, req api.CreateTaskRequest) (*api.TaskResponse, error) {
	var resp api.TaskResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodPost, Path: "/api/v1/tasks", Body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTask changes the supplied fields of a task.
func (c *Client) UpdateTask(ctx context.Context, taskID string, req api.UpdateTaskRequest) (*api.TaskResponse, error) {
	var resp api.TaskResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodPatch, Path: taskPath(taskID), Body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompleteTask marks a task as completed.
func (c *Client) CompleteTask(ctx context.Context, taskID string) (*api.TaskResponse, error) {
	var resp api.TaskResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodPost, Path: taskPath(taskID, "complete")}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) (*api.DeleteTaskResponse, error) {
	var resp api.DeleteTaskResponse
	if err := c.DoJSON(ctx, Request{Method: http.MethodDelete, Path: taskPath(taskID)}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
