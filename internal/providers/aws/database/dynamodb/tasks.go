package dynamodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/taskapp/taskapp/internal/domain"
	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/logger"
)

// TaskKeyAttribute is the partition key of the tasks table.
const TaskKeyAttribute = "id"

// TaskRepository implements the database.TaskRepository interface using DynamoDB.
type TaskRepository struct {
	table table
}

// NewTaskRepository creates a new DynamoDB-backed task repository.
func NewTaskRepository(client Client, tableName string, log *slog.Logger) *TaskRepository {
	return &TaskRepository{
		table: table{client: client, name: tableName, keyAttr: TaskKeyAttribute, logger: log},
	}
}

// taskItem represents the structure stored in DynamoDB.
// This keeps the database schema separate from the domain types.
type taskItem struct {
	ID          string    `dynamodbav:"id"`
	Title       string    `dynamodbav:"title"`
	Description string    `dynamodbav:"description"`
	Completed   bool      `dynamodbav:"completed"`
	CreatedAt   time.Time `dynamodbav:"createdAt"`
	UpdatedAt   time.Time `dynamodbav:"updatedAt"`
}

func newTaskItem(task *domain.Task) taskItem {
	r := task.Record()
	return taskItem{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (i *taskItem) toDomain() *domain.Task {
	return domain.TaskFromRecord(domain.TaskRecord{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Completed:   i.Completed,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	})
}

// Save stores a new task. It fails with CONFLICT if the ID is already taken.
func (r *TaskRepository) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	av, err := attributevalue.MarshalMap(newTaskItem(task))
	if err != nil {
		return nil, apperrors.ErrInternalError("failed to marshal task item", err)
	}

	cond := expression.AttributeNotExists(expression.Name(TaskKeyAttribute))
	if err = r.table.putItem(ctx, task.ID(), av, cond); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, apperrors.ErrConflict("task with this ID already exists", err)
		}
		return nil, apperrors.ErrDatabaseError("failed to save task", err)
	}

	return task, nil
}

// FindByID retrieves a task by ID. Returns nil if it does not exist.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	av, err := r.table.getItem(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDatabaseError("failed to get task", err)
	}
	if av == nil {
		logger.DeriveRequestLogger(ctx, r.table.logger).Debug("task not found", "task_id", id)
		return nil, nil
	}

	var item taskItem
	if err = attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, apperrors.ErrDatabaseError("failed to unmarshal task",
			fmt.Errorf("unmarshal task item: %w", err))
	}
	return item.toDomain(), nil
}

// FindAll returns every task in the table.
func (r *TaskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	avs, err := r.table.scanAll(ctx)
	if err != nil {
		return nil, apperrors.ErrDatabaseError("failed to list tasks", err)
	}

	return unmarshalTasks(ctx, r.table.logger, avs), nil
}

func unmarshalTasks(ctx context.Context, log *slog.Logger, avs []map[string]types.AttributeValue) []*domain.Task {
	reqLogger := logger.DeriveRequestLogger(ctx, log)
	tasks := make([]*domain.Task, 0, len(avs))
	for _, av := range avs {
		var item taskItem
		if err := attributevalue.UnmarshalMap(av, &item); err != nil {
			reqLogger.Warn("failed to unmarshal task item", "error", err)
			continue
		}
		tasks = append(tasks, item.toDomain())
	}
	return tasks
}

// Update replaces an existing task. It fails with NOT_FOUND if the task does not exist.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	av, err := attributevalue.MarshalMap(newTaskItem(task))
	if err != nil {
		return nil, apperrors.ErrInternalError("failed to marshal task item", err)
	}

	cond := expression.AttributeExists(expression.Name(TaskKeyAttribute))
	if err = r.table.putItem(ctx, task.ID(), av, cond); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, apperrors.ErrNotFound("task not found", err)
		}
		return nil, apperrors.ErrDatabaseError("failed to update task", err)
	}

	return task, nil
}

// Delete removes a task and reports whether it existed.
func (r *TaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.table.deleteItem(ctx, id)
	if err != nil {
		return false, apperrors.ErrDatabaseError("failed to delete task", err)
	}
	return deleted, nil
}
