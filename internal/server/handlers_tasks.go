package server

import (
	"net/http"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/domain"
	apperrors "github.com/taskapp/taskapp/internal/errors"
)

func writeTaskNotFound(w http.ResponseWriter, taskID string) {
	writeErrorResponseWithCode(w, http.StatusNotFound, apperrors.ErrCodeNotFound,
		"task not found", "no task with id "+taskID)
}

// handleListTasks handles GET /api/v1/tasks.
func (r *Router) handleListTasks(w http.ResponseWriter, req *http.Request) {
	tasks, err := r.svc.Tasks.GetAllTasks(req.Context())
	if err != nil {
		r.handleAndLogError(w, req, err, "list tasks")
		return
	}

	records := make([]domain.TaskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, task.Record())
	}
	writeJSON(w, http.StatusOK, api.ListTasksResponse{Tasks: records})
}

// handleCreateTask handles POST /api/v1/tasks.
func (r *Router) handleCreateTask(w http.ResponseWriter, req *http.Request) {
	actor, ok := requireActor(w, req)
	if !ok {
		return
	}

	var createReq api.CreateTaskRequest
	if err := r.decodeRequestBody(w, req, &createReq); err != nil {
		return
	}

	task, err := r.svc.Tasks.CreateTask(req.Context(), createReq.Title, createReq.Description, actor)
	if err != nil {
		r.handleAndLogError(w, req, err, "create task")
		return
	}

	writeJSON(w, http.StatusCreated, api.TaskResponse{Task: task.Record()})
}

// handleGetTask handles GET /api/v1/tasks/{taskID}.
func (r *Router) handleGetTask(w http.ResponseWriter, req *http.Request) {
	taskID, ok := getRequiredURLParam(w, req, "taskID")
	if !ok {
		return
	}

	task, err := r.svc.Tasks.GetTask(req.Context(), taskID)
	if err != nil {
		r.handleAndLogError(w, req, err, "get task")
		return
	}
	if task == nil {
		writeTaskNotFound(w, taskID)
		return
	}

	writeJSON(w, http.StatusOK, api.TaskResponse{Task: task.Record()})
}

// handleUpdateTask handles PATCH /api/v1/tasks/{taskID}.
func (r *Router) handleUpdateTask(w http.ResponseWriter, req *http.Request) {
	taskID, ok := getRequiredURLParam(w, req, "taskID")
	if !ok {
		return
	}

	var updateReq api.UpdateTaskRequest
	if err := r.decodeRequestBody(w, req, &updateReq); err != nil {
		return
	}

	task, err := r.svc.Tasks.UpdateTask(req.Context(), taskID, updateReq.Title, updateReq.Description)
	if err != nil {
		r.handleAndLogError(w, req, err, "update task")
		return
	}
	if task == nil {
		writeTaskNotFound(w, taskID)
		return
	}

	writeJSON(w, http.StatusOK, api.TaskResponse{Task: task.Record()})
}

// handleCompleteTask handles POST /api/v1/tasks/{taskID}/complete.
func (r *Router) handleCompleteTask(w http.ResponseWriter, req *http.Request) {
	actor, ok := requireActor(w, req)
	if !ok {
		return
	}
	taskID, ok := getRequiredURLParam(w, req, "taskID")
	if !ok {
		return
	}

	task, err := r.svc.Tasks.CompleteTask(req.Context(), taskID, actor)
	if err != nil {
		r.handleAndLogError(w, req, err, "complete task")
		return
	}
	if task == nil {
		writeTaskNotFound(w, taskID)
		return
	}

	writeJSON(w, http.StatusOK, api.TaskResponse{Task: task.Record()})
}

// handleDeleteTask handles DELETE /api/v1/tasks/{taskID}.
func (r *Router) handleDeleteTask(w http.ResponseWriter, req *http.Request) {
	taskID, ok := getRequiredURLParam(w, req, "taskID")
	if !ok {
		return
	}

	deleted, err := r.svc.Tasks.DeleteTask(req.Context(), taskID)
	if err != nil {
		r.handleAndLogError(w, req, err, "delete task")
		return
	}
	if !deleted {
		writeTaskNotFound(w, taskID)
		return
	}

	writeJSON(w, http.StatusOK, api.DeleteTaskResponse{TaskID: taskID, Deleted: true})
}
