package users

import (
	"context"

	"github.com/taskapp/taskapp/internal/domain"
)

// mockUserRepository implements database.UserRepository for testing
type mockUserRepository struct {
	saveFunc     func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByIDFunc func(ctx context.Context, userID string) (*domain.User, error)
	updateFunc   func(ctx context.Context, user *domain.User) (*domain.User, error)

	saveCalls   int
	updateCalls int
}

func (m *mockUserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.saveCalls++
	if m.saveFunc != nil {
		return m.saveFunc(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) FindAll(context.Context) ([]*domain.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.updateCalls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) Delete(context.Context, string) (bool, error) {
	return false, nil
}
