package service

import (
	"context"
	"fmt"

	"skema/internal/domain"
	"skema/internal/extract"
	"skema/internal/port"
	"skema/internal/schema"
)

// ExtractInput is the DTO for one extraction request. The schema comes from
// the catalog (SchemaName) or inline (Fields); exactly one must be set.
// Strategies optionally reorders or omits strategies for this request.
type ExtractInput struct {
	SchemaName        string            `json:"schema_name"`
	Fields            []schema.FieldDef `json:"fields"`
	Context           any               `json:"context"`
	SystemInstruction string            `json:"system_instruction"`
	Strategies        []string          `json:"strategies"`
}

// ExtractionService defines the extraction pipeline contract.
type ExtractionService interface {
	Extract(ctx context.Context, input *ExtractInput) (*domain.ExtractionResult, []domain.StrategyAttempt, error)
}

type extractionService struct {
	orchestrator *extract.Orchestrator
	schemaRepo   port.SchemaRepository
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(orchestrator *extract.Orchestrator, schemaRepo port.SchemaRepository) ExtractionService {
	return &extractionService{orchestrator: orchestrator, schemaRepo: schemaRepo}
}

// Extract resolves the schema and the strategy order, then runs the fallback
// chain. The attempt trail is returned alongside the result even on success.
func (s *extractionService) Extract(ctx context.Context, input *ExtractInput) (*domain.ExtractionResult, []domain.StrategyAttempt, error) {
	sch, err := s.resolveSchema(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	order, err := resolveOrder(input.Strategies)
	if err != nil {
		return nil, nil, err
	}

	ectx := domain.ExtractionContext{
		Data:              input.Context,
		SystemInstruction: input.SystemInstruction,
	}
	return s.orchestrator.Extract(ctx, sch, ectx, order)
}

// resolveSchema builds the Schema from the catalog or from inline fields. An
// absent fields key and an explicit empty list are distinct: the latter is a
// valid zero-field schema.
func (s *extractionService) resolveSchema(ctx context.Context, input *ExtractInput) (*schema.Schema, error) {
	switch {
	case input.SchemaName != "" && input.Fields != nil:
		return nil, &schema.InvalidSchemaError{Reason: "schema_name and fields are mutually exclusive"}
	case input.SchemaName != "":
		record, err := s.schemaRepo.GetByName(ctx, input.SchemaName)
		if err != nil {
			return nil, err
		}
		return schema.DefineFromJSON(record.Fields)
	case input.Fields != nil:
		return schema.Define(input.Fields)
	default:
		return nil, &schema.InvalidSchemaError{Reason: "either schema_name or fields must be provided"}
	}
}

// resolveOrder maps strategy names onto domain values so an unknown name is
// rejected before any backend call.
func resolveOrder(names []string) ([]domain.Strategy, error) {
	if len(names) == 0 {
		return nil, nil
	}
	order := make([]domain.Strategy, 0, len(names))
	for _, name := range names {
		strat, ok := domain.AllStrategies[name]
		if !ok {
			return nil, fmt.Errorf("strategy %q: %w", name, domain.ErrUnknownStrategy)
		}
		order = append(order, strat)
	}
	return order, nil
}
