package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shiprecon/internal/domain"
)

// MockShipmentRepo is a mock implementation of port.ShipmentRepository.
type MockShipmentRepo struct {
	mock.Mock
}

func (m *MockShipmentRepo) UpsertBatch(ctx context.Context, shipments []domain.Shipment) error {
	args := m.Called(ctx, shipments)
	return args.Error(0)
}

func (m *MockShipmentRepo) List(ctx context.Context, filter domain.ShipmentFilter) ([]domain.Shipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}

func (m *MockShipmentRepo) ListDelivered(ctx context.Context) ([]domain.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}

func (m *MockShipmentRepo) GetByOrderCode(ctx context.Context, orderCode string) (*domain.Shipment, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockShipmentRepo) Stats(ctx context.Context) (*domain.ShipmentStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShipmentStats), args.Error(1)
}
