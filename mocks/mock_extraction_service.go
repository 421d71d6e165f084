package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"skema/internal/domain"
	"skema/internal/service"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) Extract(ctx context.Context, input *service.ExtractInput) (*domain.ExtractionResult, []domain.StrategyAttempt, error) {
	args := m.Called(ctx, input)
	var result *domain.ExtractionResult
	if args.Get(0) != nil {
		result = args.Get(0).(*domain.ExtractionResult)
	}
	var attempts []domain.StrategyAttempt
	if args.Get(1) != nil {
		attempts = args.Get(1).([]domain.StrategyAttempt)
	}
	return result, attempts, args.Error(2)
}
