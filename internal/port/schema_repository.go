package port

import (
	"context"

	"skema/internal/domain"
)

// SchemaRepository stores named schema definitions (the catalog). It never
// stores extraction results.
type SchemaRepository interface {
	Create(ctx context.Context, record *domain.SchemaRecord) error
	GetByName(ctx context.Context, name string) (*domain.SchemaRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.SchemaRecord, int, error)
	Delete(ctx context.Context, name string) error
}
