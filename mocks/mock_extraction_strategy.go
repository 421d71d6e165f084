package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"skema/internal/domain"
	"skema/internal/extract"
	"skema/internal/schema"
)

// MockExtractionStrategy is a mock implementation of extract.Strategy.
type MockExtractionStrategy struct {
	mock.Mock
}

var _ extract.Strategy = (*MockExtractionStrategy)(nil)

func (m *MockExtractionStrategy) Name() domain.Strategy {
	args := m.Called()
	return args.Get(0).(domain.Strategy)
}

func (m *MockExtractionStrategy) Extract(ctx context.Context, sch *schema.Schema, ectx domain.ExtractionContext) (map[string]any, error) {
	args := m.Called(ctx, sch, ectx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}
