// Package domain holds the taskapp entities. Entities are created by the
// application services and only change through their methods.
package domain

import "time"

// Task is a unit of work tracked by the task service.
type Task struct {
	id          string
	title       string
	description string
	completed   bool
	createdAt   time.Time
	updatedAt   time.Time
}

// TaskRecord is the plain, serializable representation of a Task.
type TaskRecord struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Completed   bool      `json:"completed" yaml:"completed"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// NewTask builds an open task whose creation and update timestamps are equal.
func NewTask(id, title, description string, now time.Time) *Task {
	now = now.UTC()
	return &Task{
		id:          id,
		title:       title,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}
}

// TaskFromRecord rebuilds a Task from its persisted form.
func TaskFromRecord(r TaskRecord) *Task {
	t := &Task{
		id:          r.ID,
		title:       r.Title,
		description: r.Description,
		completed:   r.Completed,
		createdAt:   r.CreatedAt.UTC(),
		updatedAt:   r.UpdatedAt.UTC(),
	}
	if t.updatedAt.Before(t.createdAt) {
		t.updatedAt = t.createdAt
	}
	return t
}

// ID returns the task identifier.
func (t *Task) ID() string { return t.id }

// Title returns the task title.
func (t *Task) Title() string { return t.title }

// Description returns the task description.
func (t *Task) Description() string { return t.description }

// Completed reports whether the task was completed.
func (t *Task) Completed() bool { return t.completed }

// CreatedAt returns the creation time.
func (t *Task) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the time of the last mutation.
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// Complete marks the task as done. Completing an already completed task
// only refreshes UpdatedAt; tasks are never reopened.
func (t *Task) Complete(now time.Time) {
	t.completed = true
	t.touch(now)
}

// Update applies the supplied fields. Nil fields are left untouched.
func (t *Task) Update(title, description *string, now time.Time) {
	if title != nil {
		t.title = *title
	}
	if description != nil {
		t.description = *description
	}
	t.touch(now)
}

// touch keeps UpdatedAt >= CreatedAt even with a skewed clock.
func (t *Task) touch(now time.Time) {
	now = now.UTC()
	if now.Before(t.createdAt) {
		now = t.createdAt
	}
	t.updatedAt = now
}

// Record returns the plain representation of the task.
func (t *Task) Record() TaskRecord {
	return TaskRecord{
		ID:          t.id,
		Title:       t.title,
		Description: t.description,
		Completed:   t.completed,
		CreatedAt:   t.createdAt,
		UpdatedAt:   t.updatedAt,
	}
}
