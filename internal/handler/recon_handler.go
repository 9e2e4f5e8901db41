package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shiprecon/internal/csvexport"
	"shiprecon/internal/service"
)

// ReconHandler handles reconciliation endpoints.
type ReconHandler struct {
	reconService service.ReconService
}

// NewReconHandler creates a new ReconHandler.
func NewReconHandler(reconService service.ReconService) *ReconHandler {
	return &ReconHandler{reconService: reconService}
}

// Report handles GET /api/v1/reconciliation/report
func (h *ReconHandler) Report(c *gin.Context) {
	report, err := h.reconService.Report(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// MissingOrders handles GET /api/v1/reconciliation/missing
func (h *ReconHandler) MissingOrders(c *gin.Context) {
	missing, err := h.reconService.FindMissingOrders(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, missing)
}

// ExportMissingOrders handles GET /api/v1/reconciliation/missing/export and
// streams the missing orders as a CSV download.
func (h *ReconHandler) ExportMissingOrders(c *gin.Context) {
	missing, err := h.reconService.FindMissingOrders(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+csvexport.BuildFilename()+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteMissingOrders(missing); err != nil {
		return
	}
	w.Flush()
}
