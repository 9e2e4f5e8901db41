package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shiprecon/internal/domain"
	"shiprecon/internal/port"
)

// InvoiceService defines the invoice store contract.
type InvoiceService interface {
	// Save upserts the invoice header and its line items in one
	// transaction. The stored total_amount is the sum of the line items'
	// order_amount; any caller-supplied total is ignored.
	Save(ctx context.Context, invoiceNumber string, invoiceDate time.Time, lines []domain.InvoiceLineRow) (int64, error)
	List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceListItem, error)
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	ListOrders(ctx context.Context, invoiceID int64) ([]domain.InvoiceOrder, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*domain.InvoiceStats, error)
}

type invoiceService struct {
	invoiceRepo port.InvoiceRepository
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(invoiceRepo port.InvoiceRepository) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

func (s *invoiceService) Save(ctx context.Context, invoiceNumber string, invoiceDate time.Time, lines []domain.InvoiceLineRow) (int64, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" || invoiceDate.IsZero() {
		return 0, domain.ErrInvoiceMetaRequired
	}

	orders := make([]domain.InvoiceOrder, 0, len(lines))
	total := decimal.Zero
	for i, line := range lines {
		amount, err := parseAmount(line.OrderAmount, domain.ColOrderAmount, i+1)
		if err != nil {
			return 0, err
		}
		total = total.Add(amount)
		orders = append(orders, domain.InvoiceOrder{
			OrderNumber: strings.TrimSpace(line.OrderNumber),
			OrderAmount: amount,
		})
	}

	invoice := &domain.Invoice{
		InvoiceNumber: invoiceNumber,
		InvoiceDate:   invoiceDate,
		TotalAmount:   total,
	}
	return s.invoiceRepo.SaveWithOrders(ctx, invoice, orders)
}

func (s *invoiceService) List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceListItem, error) {
	return s.invoiceRepo.List(ctx, filter)
}

func (s *invoiceService) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) ListOrders(ctx context.Context, invoiceID int64) ([]domain.InvoiceOrder, error) {
	return s.invoiceRepo.ListOrders(ctx, invoiceID)
}

func (s *invoiceService) Delete(ctx context.Context, id int64) error {
	return s.invoiceRepo.Delete(ctx, id)
}

func (s *invoiceService) Stats(ctx context.Context) (*domain.InvoiceStats, error) {
	return s.invoiceRepo.Stats(ctx)
}
