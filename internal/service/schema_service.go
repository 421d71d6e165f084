package service

import (
	"context"
	"encoding/json"
	"fmt"

	"skema/internal/domain"
	"skema/internal/port"
	"skema/internal/schema"
)

// CreateSchemaInput is the DTO for storing a named schema in the catalog.
type CreateSchemaInput struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Fields      []schema.FieldDef `json:"fields" binding:"required"`
}

// SchemaService defines the schema catalog contract.
type SchemaService interface {
	Create(ctx context.Context, input CreateSchemaInput) (*domain.SchemaRecord, error)
	GetByName(ctx context.Context, name string) (*domain.SchemaRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.SchemaRecord, int, error)
	Delete(ctx context.Context, name string) error
}

type schemaService struct {
	repo port.SchemaRepository
}

// NewSchemaService creates a new SchemaService implementation.
func NewSchemaService(repo port.SchemaRepository) SchemaService {
	return &schemaService{repo: repo}
}

// Create runs the definition through Define before storing, so the catalog
// never holds a schema that extraction would reject.
func (s *schemaService) Create(ctx context.Context, input CreateSchemaInput) (*domain.SchemaRecord, error) {
	if _, err := schema.Define(input.Fields); err != nil {
		return nil, err
	}

	fields, err := json.Marshal(input.Fields)
	if err != nil {
		return nil, fmt.Errorf("marshaling field definitions: %w", err)
	}

	record := &domain.SchemaRecord{
		Name:        input.Name,
		Description: input.Description,
		Fields:      fields,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *schemaService) GetByName(ctx context.Context, name string) (*domain.SchemaRecord, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *schemaService) List(ctx context.Context, offset, limit int) ([]domain.SchemaRecord, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *schemaService) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}
