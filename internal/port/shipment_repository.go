package port

import (
	"context"

	"shiprecon/internal/domain"
)

// ShipmentRepository persists and queries shipment records.
type ShipmentRepository interface {
	// UpsertBatch upserts shipments keyed by order_code in a single
	// transaction. Any failure rolls back the entire batch.
	UpsertBatch(ctx context.Context, shipments []domain.Shipment) error

	// List returns shipments matching the filter, ordered by delivered_date
	// descending then order_code ascending.
	List(ctx context.Context, filter domain.ShipmentFilter) ([]domain.Shipment, error)

	// ListDelivered returns all shipments whose status case-insensitively
	// equals "delivered", ordered by delivered_date descending.
	ListDelivered(ctx context.Context) ([]domain.Shipment, error)

	// GetByOrderCode returns the shipment with the given order code, or
	// domain.ErrNotFound.
	GetByOrderCode(ctx context.Context, orderCode string) (*domain.Shipment, error)

	// Stats returns the shipment dashboard aggregates.
	Stats(ctx context.Context) (*domain.ShipmentStats, error)
}
