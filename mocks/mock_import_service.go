package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shiprecon/internal/service"
)

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportShipments(ctx context.Context, upload service.Upload) (int, error) {
	args := m.Called(ctx, upload)
	return args.Int(0), args.Error(1)
}

func (m *MockImportService) ImportInvoice(ctx context.Context, meta service.InvoiceMeta, upload service.Upload) (int64, int, error) {
	args := m.Called(ctx, meta, upload)
	return args.Get(0).(int64), args.Int(1), args.Error(2)
}

func (m *MockImportService) ImportMappings(ctx context.Context, upload service.Upload) (int, error) {
	args := m.Called(ctx, upload)
	return args.Int(0), args.Error(1)
}
