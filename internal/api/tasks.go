package api

import "github.com/taskapp/taskapp/internal/domain"

// CreateTaskRequest is the body of POST /api/v1/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=256"`
	Description string `json:"description" validate:"max=4096"`
}

// UpdateTaskRequest is the body of PATCH /api/v1/tasks/{taskID}.
// Omitted fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=256"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=4096"`
}

// TaskResponse wraps a single task.
type TaskResponse struct {
	Task domain.TaskRecord `json:"task" yaml:"task"`
}

// ListTasksResponse contains all tasks.
type ListTasksResponse struct {
	Tasks []domain.TaskRecord `json:"tasks" yaml:"tasks"`
}

// DeleteTaskResponse is returned by DELETE /api/v1/tasks/{taskID}.
type DeleteTaskResponse struct {
	TaskID  string `json:"task_id" yaml:"task_id"`
	Deleted bool   `json:"deleted" yaml:"deleted"`
}
