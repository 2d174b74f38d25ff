package events

import (
	"time"

	"github.com/taskapp/taskapp/internal/domain"
)

// TaskCreationDetail is published when a task is created.
type TaskCreationDetail struct {
	TaskID      string `json:"taskId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId,omitempty"`
	UserEmail   string `json:"userEmail,omitempty"`
}

// TaskCompletionDetail is published every time a task is completed.
type TaskCompletionDetail struct {
	TaskID      string    `json:"taskId"`
	Title       string    `json:"title"`
	CompletedAt time.Time `json:"completedAt"`
	UserID      string    `json:"userId,omitempty"`
	UserEmail   string    `json:"userEmail,omitempty"`
}

// UserCreatedDetail is published when a user profile is created.
type UserCreatedDetail struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPreferencesUpdatedDetail is published after a preferences update.
type UserPreferencesUpdatedDetail struct {
	UserID      string             `json:"userId"`
	Preferences domain.Preferences `json:"preferences"`
}
