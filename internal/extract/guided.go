package extract

import (
	"context"
	"errors"
	"fmt"

	"skema/internal/domain"
	"skema/internal/port"
	"skema/internal/schema"
)

type guidedStrategy struct {
	backend port.LLMBackend
}

// NewGuidedStrategy builds the instruction-guided strategy: the most portable
// path, degrading schema conformance into a textual convention injected ahead
// of the user context, then recovering JSON from whatever text comes back.
func NewGuidedStrategy(backend port.LLMBackend) Strategy {
	return &guidedStrategy{backend: backend}
}

func (s *guidedStrategy) Name() domain.Strategy {
	return domain.StrategyInstructionGuided
}

func (s *guidedStrategy) Extract(ctx context.Context, sch *schema.Schema, ectx domain.ExtractionContext) (map[string]any, error) {
	messages := []port.Message{{
		Role:    string(domain.RoleUser),
		Content: sch.FormatSpec() + "\nContext:\n" + renderContext(ectx.Data),
	}}
	opts := port.InvokeOptions{SystemPrompt: ectx.SystemInstruction}

	res, err := s.backend.Invoke(ctx, messages, opts)
	if err != nil {
		return nil, fmt.Errorf("guidedStrategy.Extract: %w", err)
	}

	candidate, found := locateJSON(res.Content)
	if !found {
		return nil, &UnparsableOutputError{
			Reason: "no JSON object found in output",
			Output: snippet(res.Content, 200),
		}
	}
	obj, err := parseObject(candidate)
	if err != nil {
		return nil, &UnparsableOutputError{Reason: err.Error(), Output: snippet(candidate, 200)}
	}

	normalized, err := sch.Validate(obj)
	if err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			return nil, &SchemaValidationError{FieldPath: ve.FieldPath, Err: err}
		}
		return nil, &SchemaValidationError{Err: err}
	}
	return normalized, nil
}
