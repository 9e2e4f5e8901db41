package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"shiprecon/internal/domain"
	"shiprecon/internal/port"
)

type mappingRepo struct {
	db *sqlx.DB
}

// NewMappingRepo creates a new PostgreSQL-backed MappingRepository.
func NewMappingRepo(db *sqlx.DB) port.MappingRepository {
	return &mappingRepo{db: db}
}

func (r *mappingRepo) ReplaceAll(ctx context.Context, rules []domain.MappingRule) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("mappingRepo.ReplaceAll begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM reference_schema"); err != nil {
		return fmt.Errorf("mappingRepo.ReplaceAll clear: %w", err)
	}

	const insert = `INSERT INTO reference_schema (file_type, source_column, system_column)
		VALUES ($1, $2, $3)`
	for _, rule := range rules {
		if _, err := tx.ExecContext(ctx, insert, rule.FileKind, rule.SourceColumn, rule.SystemColumn); err != nil {
			return fmt.Errorf("mappingRepo.ReplaceAll insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("mappingRepo.ReplaceAll commit: %w", err)
	}
	return nil
}

func (r *mappingRepo) List(ctx context.Context, kind *domain.FileKind) ([]domain.MappingRule, error) {
	var rules []domain.MappingRule
	var err error
	if kind != nil {
		err = r.db.SelectContext(ctx, &rules,
			`SELECT * FROM reference_schema WHERE file_type = $1
			 ORDER BY file_type, source_column`, *kind)
	} else {
		err = r.db.SelectContext(ctx, &rules,
			"SELECT * FROM reference_schema ORDER BY file_type, source_column")
	}
	if err != nil {
		return nil, fmt.Errorf("mappingRepo.List: %w", err)
	}
	return rules, nil
}
