package service

import (
	"context"
	"strings"

	"shiprecon/internal/domain"
	"shiprecon/internal/mapper"
	"shiprecon/internal/port"
)

// Reference file column names.
const (
	refColFileType     = "file_type"
	refColSourceColumn = "source_column"
	refColSystemColumn = "system_column"
)

// MappingService manages the reference schema.
type MappingService interface {
	// Replace validates raw reference-file rows and atomically replaces the
	// whole mapping set. It returns the number of rules saved.
	Replace(ctx context.Context, columns []string, rows []map[string]string) (int, error)

	// List returns the stored rules, optionally filtered by file kind.
	List(ctx context.Context, kind *domain.FileKind) ([]domain.MappingRule, error)

	// HasValidMappings reports whether uploads are unlocked: both file kinds
	// mapped and the two key columns present. This gate is looser than the
	// per-upload required-column validation.
	HasValidMappings(ctx context.Context) (bool, error)

	// RulesFor returns the stored rules for one file kind.
	RulesFor(ctx context.Context, kind domain.FileKind) ([]domain.MappingRule, error)
}

type mappingService struct {
	mappingRepo port.MappingRepository
}

// NewMappingService creates a new MappingService implementation.
func NewMappingService(mappingRepo port.MappingRepository) MappingService {
	return &mappingService{mappingRepo: mappingRepo}
}

func (s *mappingService) Replace(ctx context.Context, columns []string, rows []map[string]string) (int, error) {
	columnSet := make(map[string]bool, len(columns))
	for _, col := range columns {
		columnSet[col] = true
	}
	for _, col := range []string{refColFileType, refColSourceColumn, refColSystemColumn} {
		if !columnSet[col] {
			return 0, domain.NewMappingError("reference file must contain column %q", col)
		}
	}

	rules := make([]domain.MappingRule, 0, len(rows))
	for _, row := range rows {
		kind := domain.FileKind(strings.ToLower(strings.TrimSpace(row[refColFileType])))
		if !kind.Valid() {
			return 0, domain.NewMappingError(
				"invalid file_type %q: must be %q or %q",
				row[refColFileType], domain.FileKindShipment, domain.FileKindInvoice)
		}
		source := strings.TrimSpace(row[refColSourceColumn])
		system := strings.TrimSpace(row[refColSystemColumn])
		if source == "" || system == "" {
			return 0, domain.NewMappingError("source_column and system_column cannot be empty")
		}
		rules = append(rules, domain.MappingRule{
			FileKind:     kind,
			SourceColumn: source,
			SystemColumn: system,
		})
	}

	if err := s.mappingRepo.ReplaceAll(ctx, rules); err != nil {
		return 0, err
	}
	return len(rules), nil
}

func (s *mappingService) List(ctx context.Context, kind *domain.FileKind) ([]domain.MappingRule, error) {
	return s.mappingRepo.List(ctx, kind)
}

func (s *mappingService) HasValidMappings(ctx context.Context) (bool, error) {
	rules, err := s.mappingRepo.List(ctx, nil)
	if err != nil {
		return false, err
	}
	return mapper.HasValidMappings(rules), nil
}

func (s *mappingService) RulesFor(ctx context.Context, kind domain.FileKind) ([]domain.MappingRule, error) {
	return s.mappingRepo.List(ctx, &kind)
}
