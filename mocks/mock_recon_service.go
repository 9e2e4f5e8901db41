package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shiprecon/internal/domain"
)

// MockReconService is a mock implementation of service.ReconService.
type MockReconService struct {
	mock.Mock
}

func (m *MockReconService) FindMissingOrders(ctx context.Context) ([]domain.MissingOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissingOrder), args.Error(1)
}

func (m *MockReconService) Report(ctx context.Context) (*domain.ReconciliationReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationReport), args.Error(1)
}
