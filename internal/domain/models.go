package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MappingRule maps a column name as it appears in an uploaded file to the
// fixed internal column name the system expects. The full set is replaced
// atomically whenever a new reference file is uploaded.
type MappingRule struct {
	ID           int64     `db:"id" json:"id"`
	FileKind     FileKind  `db:"file_type" json:"file_type"`
	SourceColumn string    `db:"source_column" json:"source_column"`
	SystemColumn string    `db:"system_column" json:"system_column"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Shipment is a delivery record keyed by order code. NetAmount is always
// recomputed as Amount - ShippingFee at write time, never trusted from input.
type Shipment struct {
	ID            int64           `db:"id" json:"id"`
	OrderCode     string          `db:"order_code" json:"order_code"`
	CustomerName  string          `db:"customer_name" json:"customer_name"`
	Status        string          `db:"status" json:"status"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	ShippingFee   decimal.Decimal `db:"shipping_fee" json:"shipping_fee"`
	NetAmount     decimal.Decimal `db:"net_amount" json:"net_amount"`
	DeliveredDate *time.Time      `db:"delivered_date" json:"delivered_date"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// Invoice is an invoice header. TotalAmount is computed from the line items
// at save time; the value supplied by the caller is ignored.
type Invoice struct {
	ID            int64           `db:"id" json:"id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   time.Time       `db:"invoice_date" json:"invoice_date"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// InvoiceOrder is a single invoice line item. Line items are owned by their
// invoice and are cascade-deleted with it.
type InvoiceOrder struct {
	ID          int64           `db:"id" json:"id"`
	InvoiceID   int64           `db:"invoice_id" json:"invoice_id"`
	OrderNumber string          `db:"order_number" json:"order_number"`
	OrderAmount decimal.Decimal `db:"order_amount" json:"order_amount"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// InvoiceListItem is an invoice row in the list view, augmented with its
// line-item count and a total recomputed from the line items at read time.
// CalculatedTotal diverging from TotalAmount indicates drift.
type InvoiceListItem struct {
	Invoice
	OrderCount      int             `db:"order_count" json:"order_count"`
	CalculatedTotal decimal.Decimal `db:"calculated_total" json:"calculated_total"`
}

// User is an application login.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ShipmentStats holds the dashboard aggregates for shipments.
type ShipmentStats struct {
	Total     int             `db:"total" json:"total"`
	Delivered int             `db:"delivered" json:"delivered"`
	TotalFees decimal.Decimal `db:"total_fees" json:"total_fees"`
	TotalNet  decimal.Decimal `db:"total_net" json:"total_net"`
}

// InvoiceStats holds the dashboard aggregates for invoices.
type InvoiceStats struct {
	TotalInvoices int             `db:"total_invoices" json:"total_invoices"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
	AvgAmount     decimal.Decimal `db:"avg_amount" json:"avg_amount"`
	TotalOrders   int             `db:"total_orders" json:"total_orders"`
}

// MissingOrder is a delivered shipment with no matching invoice line item.
type MissingOrder struct {
	OrderCode     string          `json:"order_code"`
	CustomerName  string          `json:"customer_name"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	DeliveredDate *time.Time      `json:"delivered_date"`
	Status        string          `json:"status"`
}

// ReconciliationReport is recomputed fresh on every request; it is never
// persisted or cached. All fields derive from a single snapshot pair of
// delivered shipments and invoiced order numbers.
type ReconciliationReport struct {
	MissingOrders      []MissingOrder  `json:"missing_orders"`
	MissingCount       int             `json:"missing_count"`
	DeliveredCount     int             `json:"delivered_count"`
	InvoicedCount      int             `json:"invoiced_count"`
	InvoicedPercentage float64         `json:"invoiced_percentage"`
	TotalMissingValue  decimal.Decimal `json:"total_missing_value"`
}

// ShipmentRow is a canonical shipment row after column mapping. All fields
// are still raw strings; parsing happens at save time.
type ShipmentRow struct {
	OrderCode     string
	CustomerName  string
	Status        string
	Amount        string
	ShippingFee   string
	DeliveredDate string
}

// InvoiceLineRow is a canonical invoice line item row after column mapping.
type InvoiceLineRow struct {
	OrderNumber string
	OrderAmount string
}

// ShipmentFilter holds the optional predicates for the shipment list view.
// Date bounds are inclusive and apply to delivered_date.
type ShipmentFilter struct {
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
}

// InvoiceFilter holds the optional predicates for the invoice list view.
type InvoiceFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
}
