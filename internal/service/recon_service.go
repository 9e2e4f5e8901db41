package service

import (
	"context"

	"github.com/shopspring/decimal"

	"shiprecon/internal/domain"
	"shiprecon/internal/port"
)

// ReconService reconciles delivered shipments against invoiced order numbers.
type ReconService interface {
	// FindMissingOrders returns the delivered shipments whose order code
	// appears in no invoice line item, preserving delivered_date descending
	// order.
	FindMissingOrders(ctx context.Context) ([]domain.MissingOrder, error)

	// Report builds the full reconciliation report. All metrics derive from
	// a single snapshot pair of delivered shipments and invoiced order
	// numbers, so they stay mutually consistent even under concurrent
	// writes.
	Report(ctx context.Context) (*domain.ReconciliationReport, error)
}

type reconService struct {
	shipmentRepo port.ShipmentRepository
	invoiceRepo  port.InvoiceRepository
}

// NewReconService creates a new ReconService implementation.
func NewReconService(shipmentRepo port.ShipmentRepository, invoiceRepo port.InvoiceRepository) ReconService {
	return &reconService{shipmentRepo: shipmentRepo, invoiceRepo: invoiceRepo}
}

func (s *reconService) FindMissingOrders(ctx context.Context) ([]domain.MissingOrder, error) {
	delivered, invoiced, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return missingOrders(delivered, invoiced), nil
}

func (s *reconService) Report(ctx context.Context) (*domain.ReconciliationReport, error) {
	delivered, invoiced, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	missing := missingOrders(delivered, invoiced)

	totalMissing := decimal.Zero
	for _, m := range missing {
		totalMissing = totalMissing.Add(m.NetAmount)
	}

	// invoiced counts global distinct order numbers, so the percentage can
	// legitimately exceed 100; it is not clamped.
	percentage := 0.0
	if len(delivered) > 0 {
		percentage = float64(len(invoiced)) / float64(len(delivered)) * 100
	}

	return &domain.ReconciliationReport{
		MissingOrders:      missing,
		MissingCount:       len(missing),
		DeliveredCount:     len(delivered),
		InvoicedCount:      len(invoiced),
		InvoicedPercentage: percentage,
		TotalMissingValue:  totalMissing,
	}, nil
}

// snapshot performs exactly one delivered-shipments read and one
// invoiced-order-numbers read; callers derive everything from the pair.
func (s *reconService) snapshot(ctx context.Context) ([]domain.Shipment, []string, error) {
	delivered, err := s.shipmentRepo.ListDelivered(ctx)
	if err != nil {
		return nil, nil, err
	}
	invoiced, err := s.invoiceRepo.AllInvoicedOrderNumbers(ctx)
	if err != nil {
		return nil, nil, err
	}
	return delivered, invoiced, nil
}

func missingOrders(delivered []domain.Shipment, invoiced []string) []domain.MissingOrder {
	invoicedSet := make(map[string]struct{}, len(invoiced))
	for _, n := range invoiced {
		invoicedSet[n] = struct{}{}
	}

	missing := make([]domain.MissingOrder, 0)
	for _, s := range delivered {
		if _, ok := invoicedSet[s.OrderCode]; ok {
			continue
		}
		missing = append(missing, domain.MissingOrder{
			OrderCode:     s.OrderCode,
			CustomerName:  s.CustomerName,
			NetAmount:     s.NetAmount,
			DeliveredDate: s.DeliveredDate,
			Status:        s.Status,
		})
	}
	return missing
}
