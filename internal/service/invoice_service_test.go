package service_test

import (
	"context"
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

func TestInvoiceSave_TotalIsSumOfLines(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := service.NewInvoiceService(repo)

	var storedInvoice *domain.Invoice
	var storedOrders []domain.InvoiceOrder
	repo.On("SaveWithOrders", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			storedInvoice = args.Get(1).(*domain.Invoice)
			storedOrders = args.Get(2).([]domain.InvoiceOrder)
		}).
		Return(int64(7), nil)

	invoiceDate := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	id, err := svc.Save(context.Background(), " INV-001 ", invoiceDate, []domain.InvoiceLineRow{
		{OrderNumber: " A1 ", OrderAmount: "100.50"},
		{OrderNumber: "B2", OrderAmount: "49.50"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	require.NotNil(t, storedInvoice)
	assert.Equal(t, "INV-001", storedInvoice.InvoiceNumber)
	assert.Equal(t, invoiceDate, storedInvoice.InvoiceDate)
	assert.True(t, storedInvoice.TotalAmount.Equal(decimal.RequireFromString("150.00")),
		"total %s", storedInvoice.TotalAmount)

	require.Len(t, storedOrders, 2)
	assert.Equal(t, "A1", storedOrders[0].OrderNumber)
	assert.True(t, storedOrders[0].OrderAmount.Equal(decimal.RequireFromString("100.50")))
}

func TestInvoiceSave_MetaRequired(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := service.NewInvoiceService(repo)

	_, err := svc.Save(context.Background(), "   ", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), nil)
	assert.ErrorIs(t, err, domain.ErrInvoiceMetaRequired)

	_, err = svc.Save(context.Background(), "INV-001", time.Time{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvoiceMetaRequired)

	repo.AssertNotCalled(t, "SaveWithOrders", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceSave_MalformedLineAmount(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := service.NewInvoiceService(repo)

	_, err := svc.Save(context.Background(), "INV-001",
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		[]domain.InvoiceLineRow{
			{OrderNumber: "A1", OrderAmount: "100.00"},
			{OrderNumber: "B2", OrderAmount: "12,50"},
		})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 2, validationErr.Row)
	assert.Equal(t, "order_amount", validationErr.Column)
	repo.AssertNotCalled(t, "SaveWithOrders", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceDelete_Passthrough(t *testing.T) {
	repo := new(mocks.MockInvoiceRepo)
	svc := service.NewInvoiceService(repo)

	repo.On("Delete", mock.Anything, int64(3)).Return(domain.ErrNotFound)

	err := svc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertExpectations(t)
}
