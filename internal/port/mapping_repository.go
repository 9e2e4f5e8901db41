package port

import (
	"context"

	"shiprecon/internal/domain"
)

// MappingRepository persists the reference schema (column mapping rules).
type MappingRepository interface {
	// ReplaceAll atomically swaps the whole mapping set: all existing rules
	// are deleted and the given rules inserted in one transaction.
	ReplaceAll(ctx context.Context, rules []domain.MappingRule) error

	// List returns mapping rules ordered by file_type, then source_column.
	// A nil kind returns rules for all file kinds.
	List(ctx context.Context, kind *domain.FileKind) ([]domain.MappingRule, error)
}
