package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"skema/internal/domain"
	"skema/internal/service"
)

// MockSchemaService is a mock implementation of service.SchemaService.
type MockSchemaService struct {
	mock.Mock
}

func (m *MockSchemaService) Create(ctx context.Context, input service.CreateSchemaInput) (*domain.SchemaRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SchemaRecord), args.Error(1)
}

func (m *MockSchemaService) GetByName(ctx context.Context, name string) (*domain.SchemaRecord, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SchemaRecord), args.Error(1)
}

func (m *MockSchemaService) List(ctx context.Context, offset, limit int) ([]domain.SchemaRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SchemaRecord), args.Int(1), args.Error(2)
}

func (m *MockSchemaService) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
