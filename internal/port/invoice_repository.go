package port

import (
	"context"

	"shiprecon/internal/domain"
)

// InvoiceRepository persists and queries invoices and their line items.
type InvoiceRepository interface {
	// SaveWithOrders upserts the invoice header by invoice_number, then
	// upserts each line item by (invoice_id, order_number), all in one
	// transaction. It returns the invoice ID.
	SaveWithOrders(ctx context.Context, invoice *domain.Invoice, orders []domain.InvoiceOrder) (int64, error)

	// List returns invoices matching the filter, each augmented with its
	// line-item count and recomputed total, ordered by invoice_date
	// descending then invoice_number ascending.
	List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceListItem, error)

	// GetByID returns the invoice with the given ID, or domain.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)

	// ListOrders returns an invoice's line items ordered by order_number.
	ListOrders(ctx context.Context, invoiceID int64) ([]domain.InvoiceOrder, error)

	// AllInvoicedOrderNumbers returns the distinct order numbers across all
	// line items, regardless of invoice.
	AllInvoicedOrderNumbers(ctx context.Context) ([]string, error)

	// Delete removes an invoice; its line items are cascade-deleted with it.
	Delete(ctx context.Context, id int64) error

	// Stats returns the invoice dashboard aggregates.
	Stats(ctx context.Context) (*domain.InvoiceStats, error)
}
