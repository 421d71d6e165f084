package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"skema/internal/domain"
)

// MockSessionStore is a mock implementation of port.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Turn), args.Error(1)
}

func (m *MockSessionStore) Append(ctx context.Context, sessionID string, turn domain.Turn) error {
	args := m.Called(ctx, sessionID, turn)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
