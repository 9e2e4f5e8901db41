package service

import (
	"context"
	"strings"

	"shiprecon/internal/domain"
	"shiprecon/internal/port"
)

// ShipmentService defines the shipment store contract.
type ShipmentService interface {
	// Save cleans and parses canonical rows, recomputes net amounts, and
	// upserts the batch keyed by order_code in one transaction.
	Save(ctx context.Context, rows []domain.ShipmentRow) (int, error)
	List(ctx context.Context, filter domain.ShipmentFilter) ([]domain.Shipment, error)
	GetByOrderCode(ctx context.Context, orderCode string) (*domain.Shipment, error)
	Stats(ctx context.Context) (*domain.ShipmentStats, error)
}

type shipmentService struct {
	shipmentRepo port.ShipmentRepository
}

// NewShipmentService creates a new ShipmentService implementation.
func NewShipmentService(shipmentRepo port.ShipmentRepository) ShipmentService {
	return &shipmentService{shipmentRepo: shipmentRepo}
}

func (s *shipmentService) Save(ctx context.Context, rows []domain.ShipmentRow) (int, error) {
	shipments := make([]domain.Shipment, 0, len(rows))
	for i, row := range rows {
		amount, err := parseAmount(row.Amount, domain.ColAmount, i+1)
		if err != nil {
			return 0, err
		}
		fee, err := parseAmount(row.ShippingFee, domain.ColShippingFee, i+1)
		if err != nil {
			return 0, err
		}

		// net_amount is derived here, never taken from input.
		shipments = append(shipments, domain.Shipment{
			OrderCode:     strings.TrimSpace(row.OrderCode),
			CustomerName:  strings.TrimSpace(row.CustomerName),
			Status:        strings.TrimSpace(row.Status),
			Amount:        amount,
			ShippingFee:   fee,
			NetAmount:     amount.Sub(fee),
			DeliveredDate: parseDate(row.DeliveredDate),
		})
	}

	if err := s.shipmentRepo.UpsertBatch(ctx, shipments); err != nil {
		return 0, err
	}
	return len(shipments), nil
}

func (s *shipmentService) List(ctx context.Context, filter domain.ShipmentFilter) ([]domain.Shipment, error) {
	return s.shipmentRepo.List(ctx, filter)
}

func (s *shipmentService) GetByOrderCode(ctx context.Context, orderCode string) (*domain.Shipment, error) {
	return s.shipmentRepo.GetByOrderCode(ctx, orderCode)
}

func (s *shipmentService) Stats(ctx context.Context) (*domain.ShipmentStats, error) {
	return s.shipmentRepo.Stats(ctx)
}
