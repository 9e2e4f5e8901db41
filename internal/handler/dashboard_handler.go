package handler

import (
	"github.com/gin-gonic/gin"

	"shiprecon/internal/domain"
	"shiprecon/internal/service"
)

// DashboardHandler aggregates the stats the dashboard renders.
type DashboardHandler struct {
	shipmentService service.ShipmentService
	invoiceService  service.InvoiceService
	reconService    service.ReconService
	mappingService  service.MappingService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(
	shipmentService service.ShipmentService,
	invoiceService service.InvoiceService,
	reconService service.ReconService,
	mappingService service.MappingService,
) *DashboardHandler {
	return &DashboardHandler{
		shipmentService: shipmentService,
		invoiceService:  invoiceService,
		reconService:    reconService,
		mappingService:  mappingService,
	}
}

// dashboardPayload is the combined dashboard response.
type dashboardPayload struct {
	Shipments        *domain.ShipmentStats        `json:"shipments"`
	Invoices         *domain.InvoiceStats         `json:"invoices"`
	Reconciliation   *domain.ReconciliationReport `json:"reconciliation"`
	HasValidMappings bool                         `json:"has_valid_mappings"`
}

// Get handles GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	shipmentStats, err := h.shipmentService.Stats(ctx)
	if err != nil {
		HandleError(c, err)
		return
	}
	invoiceStats, err := h.invoiceService.Stats(ctx)
	if err != nil {
		HandleError(c, err)
		return
	}
	report, err := h.reconService.Report(ctx)
	if err != nil {
		HandleError(c, err)
		return
	}
	hasMappings, err := h.mappingService.HasValidMappings(ctx)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, dashboardPayload{
		Shipments:        shipmentStats,
		Invoices:         invoiceStats,
		Reconciliation:   report,
		HasValidMappings: hasMappings,
	})
}
