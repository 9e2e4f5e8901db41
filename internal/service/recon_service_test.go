package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shiprecon/internal/domain"
	"shiprecon/internal/service"
	"shiprecon/mocks"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func deliveredShipment(code string, net string) domain.Shipment {
	return domain.Shipment{
		OrderCode:     code,
		CustomerName:  "Customer " + code,
		Status:        "Delivered",
		NetAmount:     decimal.RequireFromString(net),
		DeliveredDate: datePtr(2024, time.March, 15),
	}
}

func TestReconReport_SingleMissingOrder(t *testing.T) {
	shipRepo := new(mocks.MockShipmentRepo)
	invRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewReconService(shipRepo, invRepo)

	shipRepo.On("ListDelivered", mock.Anything).
		Return([]domain.Shipment{deliveredShipment("A1", "95.00")}, nil)
	invRepo.On("AllInvoicedOrderNumbers", mock.Anything).Return([]string{}, nil)

	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.DeliveredCount)
	assert.Equal(t, 0, report.InvoicedCount)
	assert.Equal(t, 1, report.MissingCount)
	assert.Equal(t, 0.0, report.InvoicedPercentage)
	assert.True(t, report.TotalMissingValue.Equal(decimal.RequireFromString("95.00")),
		"total missing %s", report.TotalMissingValue)
	require.Len(t, report.MissingOrders, 1)
	assert.Equal(t, "A1", report.MissingOrders[0].OrderCode)
}

func TestReconReport_SetDifferencePreservesOrder(t *testing.T) {
	shipRepo := new(mocks.MockShipmentRepo)
	invRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewReconService(shipRepo, invRepo)

	shipRepo.On("ListDelivered", mock.Anything).Return([]domain.Shipment{
		deliveredShipment("C3", "10.00"),
		deliveredShipment("A1", "20.00"),
		deliveredShipment("B2", "30.00"),
	}, nil)
	invRepo.On("AllInvoicedOrderNumbers", mock.Anything).Return([]string{"A1"}, nil)

	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	require.Len(t, report.MissingOrders, 2)
	assert.Equal(t, "C3", report.MissingOrders[0].OrderCode)
	assert.Equal(t, "B2", report.MissingOrders[1].OrderCode)
	assert.True(t, report.TotalMissingValue.Equal(decimal.RequireFromString("40.00")))
}

// Invoiced order numbers are counted globally, so invoices referencing
// orders that never appear as delivered shipments push the percentage
// past 100. The value is reported as-is.
func TestReconReport_PercentageCanExceedHundred(t *testing.T) {
	shipRepo := new(mocks.MockShipmentRepo)
	invRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewReconService(shipRepo, invRepo)

	shipRepo.On("ListDelivered", mock.Anything).
		Return([]domain.Shipment{deliveredShipment("A1", "10.00")}, nil)
	invRepo.On("AllInvoicedOrderNumbers", mock.Anything).
		Return([]string{"A1", "X9", "Y8"}, nil)

	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.MissingCount)
	assert.InDelta(t, 300.0, report.InvoicedPercentage, 0.001)
}

func TestReconReport_EmptyDelivered(t *testing.T) {
	shipRepo := new(mocks.MockShipmentRepo)
	invRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewReconService(shipRepo, invRepo)

	shipRepo.On("ListDelivered", mock.Anything).Return([]domain.Shipment{}, nil)
	invRepo.On("AllInvoicedOrderNumbers", mock.Anything).Return([]string{"A1"}, nil)

	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.DeliveredCount)
	assert.Equal(t, 0, report.MissingCount)
	assert.Equal(t, 0.0, report.InvoicedPercentage)
	assert.True(t, report.TotalMissingValue.IsZero())
	assert.Empty(t, report.MissingOrders)
}

func TestReconReport_SingleSnapshotPair(t *testing.T) {
	shipRepo := new(mocks.MockShipmentRepo)
	invRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewReconService(shipRepo, invRepo)

	shipRepo.On("ListDelivered", mock.Anything).
		Return([]domain.Shipment{deliveredShipment("A1", "10.00")}, nil).Once()
	invRepo.On("AllInvoicedOrderNumbers", mock.Anything).
		Return([]string{"A1"}, nil).Once()

	_, err := svc.Report(context.Background())
	require.NoError(t, err)

	shipRepo.AssertNumberOfCalls(t, "ListDelivered", 1)
	invRepo.AssertNumberOfCalls(t, "AllInvoicedOrderNumbers", 1)
}

func TestFindMissingOrders_RepoErrors(t *testing.T) {
	shipRepo := new(mocks.MockShipmentRepo)
	invRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewReconService(shipRepo, invRepo)

	repoErr := errors.New("db down")
	shipRepo.On("ListDelivered", mock.Anything).Return(nil, repoErr)

	_, err := svc.FindMissingOrders(context.Background())
	assert.ErrorIs(t, err, repoErr)
	invRepo.AssertNotCalled(t, "AllInvoicedOrderNumbers", mock.Anything)
}
