package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"skema/internal/domain"
	"skema/internal/port"
)

type schemaRepo struct {
	db *sqlx.DB
}

// NewSchemaRepo creates a new PostgreSQL-backed SchemaRepository.
func NewSchemaRepo(db *sqlx.DB) port.SchemaRepository {
	return &schemaRepo{db: db}
}

func (r *schemaRepo) Create(ctx context.Context, record *domain.SchemaRecord) error {
	record.ID = uuid.New()
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	query := `INSERT INTO extraction_schemas (id, name, description, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.Name, record.Description, record.Fields, record.CreatedAt, record.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "name") {
			return domain.ErrDuplicateSchemaName
		}
		return fmt.Errorf("schemaRepo.Create: %w", err)
	}
	return nil
}

func (r *schemaRepo) GetByName(ctx context.Context, name string) (*domain.SchemaRecord, error) {
	var record domain.SchemaRecord
	err := r.db.GetContext(ctx, &record, "SELECT * FROM extraction_schemas WHERE name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("schemaRepo.GetByName: %w", err)
	}
	return &record, nil
}

func (r *schemaRepo) List(ctx context.Context, offset, limit int) ([]domain.SchemaRecord, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM extraction_schemas")
	if err != nil {
		return nil, 0, fmt.Errorf("schemaRepo.List count: %w", err)
	}

	var records []domain.SchemaRecord
	err = r.db.SelectContext(ctx, &records,
		"SELECT * FROM extraction_schemas ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("schemaRepo.List: %w", err)
	}
	return records, total, nil
}

func (r *schemaRepo) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM extraction_schemas WHERE name = $1", name)
	if err != nil {
		return fmt.Errorf("schemaRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
