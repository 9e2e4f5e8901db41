package handler

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shiprecon/internal/domain"
	"shiprecon/internal/service"
)

// ShipmentHandler handles shipment endpoints.
type ShipmentHandler struct {
	shipmentService service.ShipmentService
	importService   service.ImportService
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(shipmentService service.ShipmentService, importService service.ImportService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService, importService: importService}
}

// Upload handles POST /api/v1/shipments/upload
func (h *ShipmentHandler) Upload(c *gin.Context) {
	upload, file, ok := formUpload(c, "shipment_file")
	if !ok {
		return
	}
	defer file.Close()

	count, err := h.importService.ImportShipments(c.Request.Context(), upload)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"records_processed": count})
}

// List handles GET /api/v1/shipments
func (h *ShipmentHandler) List(c *gin.Context) {
	filter := domain.ShipmentFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	var ok bool
	if filter.DateFrom, ok = queryDate(c, "date_from"); !ok {
		return
	}
	if filter.DateTo, ok = queryDate(c, "date_to"); !ok {
		return
	}

	shipments, err := h.shipmentService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, shipments)
}

// GetByOrderCode handles GET /api/v1/shipments/:orderCode
func (h *ShipmentHandler) GetByOrderCode(c *gin.Context) {
	shipment, err := h.shipmentService.GetByOrderCode(c.Request.Context(), c.Param("orderCode"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, shipment)
}

// Stats handles GET /api/v1/shipments/stats
func (h *ShipmentHandler) Stats(c *gin.Context) {
	stats, err := h.shipmentService.Stats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// formUpload extracts the uploaded file from the multipart form. Returns
// ok=false if the field is missing (error response already written); the
// caller must close the returned file.
func formUpload(c *gin.Context, field string) (service.Upload, multipart.File, bool) {
	header, err := c.FormFile(field)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "missing uploaded file field "+field)
		return service.Upload{}, nil, false
	}
	file, err := header.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "BAD_UPLOAD", "could not open uploaded file")
		return service.Upload{}, nil, false
	}
	return service.Upload{Reader: file, Filename: header.Filename, Size: header.Size}, file, true
}

// queryDate parses an optional YYYY-MM-DD query parameter. Returns ok=false
// if the value is present but malformed (error response already written).
func queryDate(c *gin.Context, key string) (*time.Time, bool) {
	value := c.Query(key)
	if value == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "BAD_DATE", key+" must be formatted YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}
