package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"skema/internal/port"
)

// MockLLMBackend is a mock implementation of port.LLMBackend.
type MockLLMBackend struct {
	mock.Mock
}

func (m *MockLLMBackend) Invoke(ctx context.Context, messages []port.Message, opts port.InvokeOptions) (*port.InvokeResult, error) {
	args := m.Called(ctx, messages, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.InvokeResult), args.Error(1)
}

func (m *MockLLMBackend) Capabilities() port.Capabilities {
	args := m.Called()
	return args.Get(0).(port.Capabilities)
}

func (m *MockLLMBackend) Provider() string {
	args := m.Called()
	return args.String(0)
}
