package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"shiprecon/internal/domain"
	"shiprecon/internal/port"
)

type shipmentRepo struct {
	db *sqlx.DB
}

// NewShipmentRepo creates a new PostgreSQL-backed ShipmentRepository.
func NewShipmentRepo(db *sqlx.DB) port.ShipmentRepository {
	return &shipmentRepo{db: db}
}

const upsertShipmentQuery = `INSERT INTO shipments
	(order_code, customer_name, status, amount, shipping_fee, net_amount, delivered_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (order_code) DO UPDATE SET
		customer_name = EXCLUDED.customer_name,
		status = EXCLUDED.status,
		amount = EXCLUDED.amount,
		shipping_fee = EXCLUDED.shipping_fee,
		net_amount = EXCLUDED.net_amount,
		delivered_date = EXCLUDED.delivered_date`

func (r *shipmentRepo) UpsertBatch(ctx context.Context, shipments []domain.Shipment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("shipmentRepo.UpsertBatch begin: %w", err)
	}
	defer tx.Rollback()

	for _, s := range shipments {
		_, err := tx.ExecContext(ctx, upsertShipmentQuery,
			s.OrderCode, s.CustomerName, s.Status,
			s.Amount, s.ShippingFee, s.NetAmount, s.DeliveredDate)
		if err != nil {
			return fmt.Errorf("shipmentRepo.UpsertBatch %q: %w", s.OrderCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("shipmentRepo.UpsertBatch commit: %w", err)
	}
	return nil
}

func (r *shipmentRepo) List(ctx context.Context, filter domain.ShipmentFilter) ([]domain.Shipment, error) {
	query := "SELECT * FROM shipments WHERE 1=1"
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += fmt.Sprintf(" AND delivered_date >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += fmt.Sprintf(" AND delivered_date <= $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (order_code ILIKE $%d OR customer_name ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY delivered_date DESC, order_code"

	var shipments []domain.Shipment
	if err := r.db.SelectContext(ctx, &shipments, query, args...); err != nil {
		return nil, fmt.Errorf("shipmentRepo.List: %w", err)
	}
	return shipments, nil
}

func (r *shipmentRepo) ListDelivered(ctx context.Context) ([]domain.Shipment, error) {
	var shipments []domain.Shipment
	err := r.db.SelectContext(ctx, &shipments,
		`SELECT * FROM shipments
		 WHERE LOWER(status) = $1
		 ORDER BY delivered_date DESC`, domain.StatusDelivered)
	if err != nil {
		return nil, fmt.Errorf("shipmentRepo.ListDelivered: %w", err)
	}
	return shipments, nil
}

func (r *shipmentRepo) GetByOrderCode(ctx context.Context, orderCode string) (*domain.Shipment, error) {
	var shipment domain.Shipment
	err := r.db.GetContext(ctx, &shipment,
		"SELECT * FROM shipments WHERE order_code = $1", orderCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("shipmentRepo.GetByOrderCode: %w", err)
	}
	return &shipment, nil
}

const shipmentStatsQuery = `SELECT
	COUNT(*) AS total,
	COUNT(CASE WHEN LOWER(status) = 'delivered' THEN 1 END) AS delivered,
	COALESCE(SUM(shipping_fee), 0) AS total_fees,
	COALESCE(SUM(net_amount), 0) AS total_net
FROM shipments`

func (r *shipmentRepo) Stats(ctx context.Context) (*domain.ShipmentStats, error) {
	var stats domain.ShipmentStats
	if err := r.db.GetContext(ctx, &stats, shipmentStatsQuery); err != nil {
		return nil, fmt.Errorf("shipmentRepo.Stats: %w", err)
	}
	return &stats, nil
}
