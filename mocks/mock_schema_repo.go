package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"skema/internal/domain"
)

// MockSchemaRepository is a mock implementation of port.SchemaRepository.
type MockSchemaRepository struct {
	mock.Mock
}

func (m *MockSchemaRepository) Create(ctx context.Context, record *domain.SchemaRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSchemaRepository) GetByName(ctx context.Context, name string) (*domain.SchemaRecord, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SchemaRecord), args.Error(1)
}

func (m *MockSchemaRepository) List(ctx context.Context, offset, limit int) ([]domain.SchemaRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SchemaRecord), args.Int(1), args.Error(2)
}

func (m *MockSchemaRepository) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
