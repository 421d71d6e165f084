package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"skema/internal/domain"
	"skema/internal/port"
	"skema/internal/schema"
)

const (
	extractToolName        = "submit_extraction"
	extractToolDescription = "Submit the structured data extracted from the user's message. Every argument must match its declared type and constraints."
)

type bindingStrategy struct {
	backend port.LLMBackend
}

// NewBindingStrategy builds the bound-function strategy: the schema becomes a
// callable tool declaration and the backend is forced to invoke it, so the
// backend's own coercion produces typed arguments.
func NewBindingStrategy(backend port.LLMBackend) Strategy {
	return &bindingStrategy{backend: backend}
}

func (s *bindingStrategy) Name() domain.Strategy {
	return domain.StrategyBoundFunction
}

func (s *bindingStrategy) Extract(ctx context.Context, sch *schema.Schema, ectx domain.ExtractionContext) (map[string]any, error) {
	if !s.backend.Capabilities().ToolCalling {
		return nil, &CapabilityUnsupportedError{Provider: s.backend.Provider(), Capability: "function/tool calling"}
	}

	opts := port.InvokeOptions{
		SystemPrompt: bindingSystemPrompt(ectx),
		Tool: &port.ToolSpec{
			Name:        extractToolName,
			Description: extractToolDescription,
			Parameters:  sch.JSONSchema(),
		},
	}
	res, err := s.backend.Invoke(ctx, contextMessage(ectx), opts)
	if err != nil {
		return nil, fmt.Errorf("bindingStrategy.Extract: %w", err)
	}
	if len(res.ToolArguments) == 0 {
		return nil, fmt.Errorf("bindingStrategy.Extract: backend returned no tool arguments")
	}

	var args map[string]any
	if err := json.Unmarshal(res.ToolArguments, &args); err != nil {
		return nil, fmt.Errorf("bindingStrategy.Extract: decode tool arguments: %w", err)
	}

	// the tool signature cannot express ranges, enum casing, or formats, so
	// the arguments are re-validated in full
	normalized, err := sch.Validate(args)
	if err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			return nil, &ConstraintViolationError{FieldPath: ve.FieldPath, Err: err}
		}
		return nil, &ConstraintViolationError{Err: err}
	}
	return normalized, nil
}

func bindingSystemPrompt(ectx domain.ExtractionContext) string {
	const instruction = "Extract the requested fields from the user's message by calling the provided tool."
	if ectx.SystemInstruction == "" {
		return instruction
	}
	return ectx.SystemInstruction + "\n\n" + instruction
}
