package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"shiprecon/internal/domain"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Save(ctx context.Context, invoiceNumber string, invoiceDate time.Time, lines []domain.InvoiceLineRow) (int64, error) {
	args := m.Called(ctx, invoiceNumber, invoiceDate, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceListItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceListItem), args.Error(1)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListOrders(ctx context.Context, invoiceID int64) ([]domain.InvoiceOrder, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceOrder), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceService) Stats(ctx context.Context) (*domain.InvoiceStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceStats), args.Error(1)
}
