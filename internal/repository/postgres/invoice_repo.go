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

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

const upsertInvoiceQuery = `INSERT INTO invoices (invoice_number, invoice_date, total_amount)
	VALUES ($1, $2, $3)
	ON CONFLICT (invoice_number) DO UPDATE SET
		invoice_date = EXCLUDED.invoice_date,
		total_amount = EXCLUDED.total_amount
	RETURNING id`

const upsertInvoiceOrderQuery = `INSERT INTO invoice_orders (invoice_id, order_number, order_amount)
	VALUES ($1, $2, $3)
	ON CONFLICT (invoice_id, order_number) DO UPDATE SET
		order_amount = EXCLUDED.order_amount`

func (r *invoiceRepo) SaveWithOrders(ctx context.Context, invoice *domain.Invoice, orders []domain.InvoiceOrder) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.SaveWithOrders begin: %w", err)
	}
	defer tx.Rollback()

	var invoiceID int64
	err = tx.QueryRowContext(ctx, upsertInvoiceQuery,
		invoice.InvoiceNumber, invoice.InvoiceDate, invoice.TotalAmount).Scan(&invoiceID)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.SaveWithOrders header: %w", err)
	}

	for _, order := range orders {
		_, err := tx.ExecContext(ctx, upsertInvoiceOrderQuery,
			invoiceID, order.OrderNumber, order.OrderAmount)
		if err != nil {
			return 0, fmt.Errorf("invoiceRepo.SaveWithOrders line %q: %w", order.OrderNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("invoiceRepo.SaveWithOrders commit: %w", err)
	}
	return invoiceID, nil
}

func (r *invoiceRepo) List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceListItem, error) {
	query := `SELECT i.id, i.invoice_number, i.invoice_date, i.total_amount, i.created_at,
		COUNT(io.id) AS order_count,
		COALESCE(SUM(io.order_amount), 0) AS calculated_total
		FROM invoices i
		LEFT JOIN invoice_orders io ON io.invoice_id = i.id
		WHERE 1=1`
	var args []interface{}

	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += fmt.Sprintf(" AND i.invoice_date >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += fmt.Sprintf(" AND i.invoice_date <= $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND i.invoice_number ILIKE $%d", len(args))
	}
	query += " GROUP BY i.id ORDER BY i.invoice_date DESC, i.invoice_number"

	var invoices []domain.InvoiceListItem
	if err := r.db.SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &invoice, nil
}

func (r *invoiceRepo) ListOrders(ctx context.Context, invoiceID int64) ([]domain.InvoiceOrder, error) {
	var orders []domain.InvoiceOrder
	err := r.db.SelectContext(ctx, &orders,
		`SELECT * FROM invoice_orders
		 WHERE invoice_id = $1
		 ORDER BY order_number`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListOrders: %w", err)
	}
	return orders, nil
}

func (r *invoiceRepo) AllInvoicedOrderNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	err := r.db.SelectContext(ctx, &numbers,
		"SELECT DISTINCT order_number FROM invoice_orders")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.AllInvoicedOrderNumbers: %w", err)
	}
	return numbers, nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id int64) error {
	// Line items go with the invoice via ON DELETE CASCADE.
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const invoiceStatsQuery = `SELECT
	(SELECT COUNT(*) FROM invoices) AS total_invoices,
	(SELECT COALESCE(SUM(total_amount), 0) FROM invoices) AS total_amount,
	(SELECT COALESCE(AVG(total_amount), 0) FROM invoices) AS avg_amount,
	(SELECT COUNT(DISTINCT order_number) FROM invoice_orders) AS total_orders`

func (r *invoiceRepo) Stats(ctx context.Context) (*domain.InvoiceStats, error) {
	var stats domain.InvoiceStats
	if err := r.db.GetContext(ctx, &stats, invoiceStatsQuery); err != nil {
		return nil, fmt.Errorf("invoiceRepo.Stats: %w", err)
	}
	return &stats, nil
}
