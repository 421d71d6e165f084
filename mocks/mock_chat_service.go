package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"skema/internal/domain"
)

// MockChatService is a mock implementation of service.ChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Send(ctx context.Context, sessionID, message string) (string, error) {
	args := m.Called(ctx, sessionID, message)
	return args.String(0), args.Error(1)
}

func (m *MockChatService) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Turn), args.Error(1)
}

func (m *MockChatService) Reset(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
