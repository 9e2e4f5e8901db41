package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shiprecon/internal/domain"
	"shiprecon/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	importService  service.ImportService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService, importService service.ImportService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, importService: importService}
}

// Upload handles POST /api/v1/invoices/upload. The multipart form carries
// the invoice header fields (invoice_number, invoice_date) alongside the
// line-item file.
func (h *InvoiceHandler) Upload(c *gin.Context) {
	invoiceNumber := c.PostForm("invoice_number")
	invoiceDateStr := c.PostForm("invoice_date")
	if invoiceNumber == "" || invoiceDateStr == "" {
		HandleError(c, domain.ErrInvoiceMetaRequired)
		return
	}
	invoiceDate, err := time.Parse("2006-01-02", invoiceDateStr)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "BAD_DATE", "invoice_date must be formatted YYYY-MM-DD")
		return
	}

	upload, file, ok := formUpload(c, "invoice_file")
	if !ok {
		return
	}
	defer file.Close()

	meta := service.InvoiceMeta{InvoiceNumber: invoiceNumber, InvoiceDate: invoiceDate}
	invoiceID, count, err := h.importService.ImportInvoice(c.Request.Context(), meta, upload)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"invoice_id": invoiceID, "orders_processed": count})
}

// List handles GET /api/v1/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	filter := domain.InvoiceFilter{Search: c.Query("search")}
	var ok bool
	if filter.DateFrom, ok = queryDate(c, "date_from"); !ok {
		return
	}
	if filter.DateTo, ok = queryDate(c, "date_to"); !ok {
		return
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoices)
}

// GetOrders handles GET /api/v1/invoices/:id/orders
func (h *InvoiceHandler) GetOrders(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if _, err := h.invoiceService.GetByID(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	orders, err := h.invoiceService.ListOrders(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, orders)
}

// Delete handles DELETE /api/v1/invoices/:id. Line items are removed with
// the invoice.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// Stats handles GET /api/v1/invoices/stats
func (h *InvoiceHandler) Stats(c *gin.Context) {
	stats, err := h.invoiceService.Stats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "BAD_ID", "id must be an integer")
		return 0, false
	}
	return id, true
}
