package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPublisher is a testify mock of events.Publisher.
type MockPublisher struct {
	mock.Mock
}

// PublishEvent records the call and returns the configured error.
func (m *MockPublisher) PublishEvent(ctx context.Context, source, detailType string, detail any) error {
	args := m.Called(ctx, source, detailType, detail)
	return args.Error(0)
}

// MockFailureObserver is a testify mock of events.FailureObserver.
type MockFailureObserver struct {
	mock.Mock
}

// ObservePublishFailure records the call.
func (m *MockFailureObserver) ObservePublishFailure(ctx context.Context, source, detailType string, err error) {
	m.Called(ctx, source, detailType, err)
}
