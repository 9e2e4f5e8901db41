package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shiprecon/internal/domain"
	"shiprecon/internal/mapper"
	"shiprecon/internal/service"
)

// MappingHandler handles reference-schema endpoints.
type MappingHandler struct {
	mappingService service.MappingService
	importService  service.ImportService
}

// NewMappingHandler creates a new MappingHandler.
func NewMappingHandler(mappingService service.MappingService, importService service.ImportService) *MappingHandler {
	return &MappingHandler{mappingService: mappingService, importService: importService}
}

// Upload handles POST /api/v1/mappings/upload. Uploading a reference file
// replaces all existing mappings.
func (h *MappingHandler) Upload(c *gin.Context) {
	upload, file, ok := formUpload(c, "reference_file")
	if !ok {
		return
	}
	defer file.Close()

	count, err := h.importService.ImportMappings(c.Request.Context(), upload)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"mappings_saved": count})
}

// List handles GET /api/v1/mappings with an optional file_type query.
func (h *MappingHandler) List(c *gin.Context) {
	var kind *domain.FileKind
	if value := c.Query("file_type"); value != "" {
		k := domain.FileKind(value)
		if !k.Valid() {
			RespondError(c, http.StatusBadRequest, "BAD_FILE_TYPE", "file_type must be shipment or invoice")
			return
		}
		kind = &k
	}

	rules, err := h.mappingService.List(c.Request.Context(), kind)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rules)
}

// Status handles GET /api/v1/mappings/status. It reports the upload gate
// plus the required columns per file kind, which the configuration screen
// renders.
func (h *MappingHandler) Status(c *gin.Context) {
	ok, err := h.mappingService.HasValidMappings(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"has_valid_mappings": ok,
		"required_columns": gin.H{
			string(domain.FileKindShipment): mapper.RequiredColumns(domain.FileKindShipment),
			string(domain.FileKindInvoice):  mapper.RequiredColumns(domain.FileKindInvoice),
		},
	})
}
