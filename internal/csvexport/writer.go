package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"shiprecon/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for the missing-orders export.
var columns = []string{
	"Order Code",
	"Customer",
	"Net Amount",
	"Delivered Date",
	"Status",
}

// Writer wraps csv.Writer for exporting missing orders as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteMissingOrders converts missing orders to CSV rows and writes them.
func (w *Writer) WriteMissingOrders(orders []domain.MissingOrder) error {
	for i := range orders {
		if err := w.csv.Write(orderToRow(&orders[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func orderToRow(o *domain.MissingOrder) []string {
	return []string{
		o.OrderCode,
		o.CustomerName,
		o.NetAmount.StringFixed(2),
		formatDate(o.DeliveredDate),
		o.Status,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// BuildFilename returns the dated filename for the Content-Disposition
// header: missing_orders_{YYYY-MM-DD}.csv.
func BuildFilename() string {
	return fmt.Sprintf("missing_orders_%s.csv", time.Now().Format("2006-01-02"))
}
