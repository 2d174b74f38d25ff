package tasks

import (
	"context"

	"github.com/taskapp/taskapp/internal/domain"
)

// mockTaskRepository implements database.TaskRepository for testing
type mockTaskRepository struct {
	saveFunc     func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	findByIDFunc func(ctx context.Context, id string) (*domain.Task, error)
	findAllFunc  func(ctx context.Context) ([]*domain.Task, error)
	updateFunc   func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	deleteFunc   func(ctx context.Context, id string) (bool, error)

	saveCalls   int
	updateCalls int
}

func (m *mockTaskRepository) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	m.saveCalls++
	if m.saveFunc != nil {
		return m.saveFunc(ctx, task)
	}
	return task, nil
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	m.updateCalls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, task)
	}
	return task, nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, nil
}
