package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shiprecon/internal/domain"
)

// MockShipmentService is a mock implementation of service.ShipmentService.
type MockShipmentService struct {
	mock.Mock
}

func (m *MockShipmentService) Save(ctx context.Context, rows []domain.ShipmentRow) (int, error) {
	args := m.Called(ctx, rows)
	return args.Int(0), args.Error(1)
}

func (m *MockShipmentService) List(ctx context.Context, filter domain.ShipmentFilter) ([]domain.Shipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}

func (m *MockShipmentService) GetByOrderCode(ctx context.Context, orderCode string) (*domain.Shipment, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockShipmentService) Stats(ctx context.Context) (*domain.ShipmentStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShipmentStats), args.Error(1)
}
