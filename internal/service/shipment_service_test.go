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

func TestShipmentSave_ParsesAndComputesNet(t *testing.T) {
	repo := new(mocks.MockShipmentRepo)
	svc := service.NewShipmentService(repo)

	var stored []domain.Shipment
	repo.On("UpsertBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).([]domain.Shipment)
		}).
		Return(nil)

	count, err := svc.Save(context.Background(), []domain.ShipmentRow{
		{
			OrderCode:     "  A1  ",
			CustomerName:  " Bob ",
			Status:        " Delivered ",
			Amount:        "100.00",
			ShippingFee:   "5.00",
			DeliveredDate: "2024-03-15",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.Len(t, stored, 1)
	got := stored[0]
	assert.Equal(t, "A1", got.OrderCode)
	assert.Equal(t, "Bob", got.CustomerName)
	assert.Equal(t, "Delivered", got.Status)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("100.00")), "amount %s", got.Amount)
	assert.True(t, got.ShippingFee.Equal(decimal.RequireFromString("5.00")), "fee %s", got.ShippingFee)
	assert.True(t, got.NetAmount.Equal(decimal.RequireFromString("95.00")), "net %s", got.NetAmount)
	require.NotNil(t, got.DeliveredDate)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *got.DeliveredDate)
}

func TestShipmentSave_MalformedAmountRejectsBatch(t *testing.T) {
	repo := new(mocks.MockShipmentRepo)
	svc := service.NewShipmentService(repo)

	_, err := svc.Save(context.Background(), []domain.ShipmentRow{
		{OrderCode: "A1", Amount: "100.00", ShippingFee: "5.00"},
		{OrderCode: "A2", Amount: "abc", ShippingFee: "5.00"},
	})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 2, validationErr.Row)
	assert.Equal(t, "amount", validationErr.Column)
	repo.AssertNotCalled(t, "UpsertBatch", mock.Anything, mock.Anything)
}

func TestShipmentSave_UnparseableDateStoredAsNull(t *testing.T) {
	repo := new(mocks.MockShipmentRepo)
	svc := service.NewShipmentService(repo)

	var stored []domain.Shipment
	repo.On("UpsertBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).([]domain.Shipment)
		}).
		Return(nil)

	_, err := svc.Save(context.Background(), []domain.ShipmentRow{
		{OrderCode: "A1", Amount: "1", ShippingFee: "0", DeliveredDate: "not a date"},
		{OrderCode: "A2", Amount: "1", ShippingFee: "0", DeliveredDate: ""},
	})
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Nil(t, stored[0].DeliveredDate)
	assert.Nil(t, stored[1].DeliveredDate)
}

func TestShipmentSave_AcceptsCommonDateLayouts(t *testing.T) {
	repo := new(mocks.MockShipmentRepo)
	svc := service.NewShipmentService(repo)

	var stored []domain.Shipment
	repo.On("UpsertBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).([]domain.Shipment)
		}).
		Return(nil)

	_, err := svc.Save(context.Background(), []domain.ShipmentRow{
		{OrderCode: "A1", Amount: "1", ShippingFee: "0", DeliveredDate: "2024/03/15"},
		{OrderCode: "A2", Amount: "1", ShippingFee: "0", DeliveredDate: "03/15/2024"},
	})
	require.NoError(t, err)
	require.Len(t, stored, 2)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, s := range stored {
		require.NotNil(t, s.DeliveredDate)
		assert.Equal(t, want, *s.DeliveredDate)
	}
}

func TestShipmentSave_RepoError(t *testing.T) {
	repo := new(mocks.MockShipmentRepo)
	svc := service.NewShipmentService(repo)

	repoErr := errors.New("db down")
	repo.On("UpsertBatch", mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Save(context.Background(), []domain.ShipmentRow{
		{OrderCode: "A1", Amount: "1", ShippingFee: "0"},
	})
	assert.ErrorIs(t, err, repoErr)
}

func TestShipmentList_Passthrough(t *testing.T) {
	repo := new(mocks.MockShipmentRepo)
	svc := service.NewShipmentService(repo)

	filter := domain.ShipmentFilter{Status: "Delivered", Search: "bob"}
	want := []domain.Shipment{{OrderCode: "A1"}}
	repo.On("List", mock.Anything, filter).Return(want, nil)

	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}
