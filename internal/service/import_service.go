package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"shiprecon/internal/config"
	"shiprecon/internal/domain"
	"shiprecon/internal/fileread"
	"shiprecon/internal/mapper"
	"shiprecon/internal/port"
)

// Upload is the DTO for an uploaded file.
type Upload struct {
	Reader   io.Reader
	Filename string
	Size     int64
}

// InvoiceMeta carries the invoice header fields supplied alongside an
// invoice file upload.
type InvoiceMeta struct {
	InvoiceNumber string
	InvoiceDate   time.Time
}

// ImportService orchestrates uploads: gate on the mapping configuration,
// stage the file, read it, apply the column mappings, and hand the canonical
// rows to the owning store. Staged files are deleted after a successful
// ingestion.
type ImportService interface {
	ImportShipments(ctx context.Context, upload Upload) (int, error)
	ImportInvoice(ctx context.Context, meta InvoiceMeta, upload Upload) (int64, int, error)
	ImportMappings(ctx context.Context, upload Upload) (int, error)
}

type importService struct {
	mappingRepo port.MappingRepository
	mappingSvc  MappingService
	shipmentSvc ShipmentService
	invoiceSvc  InvoiceService
	cfg         *config.UploadConfig
}

// NewImportService creates a new ImportService implementation.
func NewImportService(
	mappingRepo port.MappingRepository,
	mappingSvc MappingService,
	shipmentSvc ShipmentService,
	invoiceSvc InvoiceService,
	cfg *config.UploadConfig,
) ImportService {
	return &importService{
		mappingRepo: mappingRepo,
		mappingSvc:  mappingSvc,
		shipmentSvc: shipmentSvc,
		invoiceSvc:  invoiceSvc,
		cfg:         cfg,
	}
}

func (s *importService) ImportShipments(ctx context.Context, upload Upload) (int, error) {
	ok, err := s.mappingSvc.HasValidMappings(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, domain.ErrMappingsNotConfigured
	}

	path, err := s.stage(upload, "shipment")
	if err != nil {
		return 0, err
	}

	result, err := fileread.Read(path)
	if err != nil {
		return 0, err
	}

	rules, err := s.mappingRepo.List(ctx, kindPtr(domain.FileKindShipment))
	if err != nil {
		return 0, err
	}
	rows, err := mapper.ShipmentRows(rules, result.Columns, result.Rows)
	if err != nil {
		return 0, err
	}

	count, err := s.shipmentSvc.Save(ctx, rows)
	if err != nil {
		return 0, err
	}

	os.Remove(path)
	return count, nil
}

func (s *importService) ImportInvoice(ctx context.Context, meta InvoiceMeta, upload Upload) (int64, int, error) {
	ok, err := s.mappingSvc.HasValidMappings(ctx)
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, domain.ErrMappingsNotConfigured
	}
	if strings.TrimSpace(meta.InvoiceNumber) == "" || meta.InvoiceDate.IsZero() {
		return 0, 0, domain.ErrInvoiceMetaRequired
	}

	path, err := s.stage(upload, "invoice")
	if err != nil {
		return 0, 0, err
	}

	result, err := fileread.Read(path)
	if err != nil {
		return 0, 0, err
	}

	rules, err := s.mappingRepo.List(ctx, kindPtr(domain.FileKindInvoice))
	if err != nil {
		return 0, 0, err
	}
	lines, err := mapper.InvoiceLineRows(rules, result.Columns, result.Rows)
	if err != nil {
		return 0, 0, err
	}

	invoiceID, err := s.invoiceSvc.Save(ctx, meta.InvoiceNumber, meta.InvoiceDate, lines)
	if err != nil {
		return 0, 0, err
	}

	os.Remove(path)
	return invoiceID, len(lines), nil
}

func (s *importService) ImportMappings(ctx context.Context, upload Upload) (int, error) {
	path, err := s.stage(upload, "reference")
	if err != nil {
		return 0, err
	}

	result, err := fileread.Read(path)
	if err != nil {
		return 0, err
	}

	count, err := s.mappingSvc.Replace(ctx, result.Columns, result.Rows)
	if err != nil {
		return 0, err
	}

	os.Remove(path)
	return count, nil
}

// stage validates the upload and copies it into the staging directory under
// a unique name, returning the staged path.
func (s *importService) stage(upload Upload, prefix string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(upload.Filename), "."))
	if _, ok := domain.AllowedUploadExtensions[ext]; !ok {
		return "", domain.ErrUnsupportedFileType
	}
	if upload.Size > s.cfg.MaxBytes() {
		return "", domain.ErrFileTooLarge
	}

	path := filepath.Join(s.cfg.Dir, fmt.Sprintf("%s_%s.%s", prefix, uuid.New().String(), ext))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, upload.Reader); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	return path, nil
}

func kindPtr(kind domain.FileKind) *domain.FileKind {
	return &kind
}
