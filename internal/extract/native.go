package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"skema/internal/domain"
	"skema/internal/port"
	"skema/internal/schema"
)

type nativeStrategy struct {
	backend port.LLMBackend
}

// NewNativeStrategy builds the native-mode strategy: the backend's JSON mode
// flag guarantees syntactically valid output, so no substring heuristic runs
// and a parse failure is a backend contract violation rather than an expected
// degradation.
func NewNativeStrategy(backend port.LLMBackend) Strategy {
	return &nativeStrategy{backend: backend}
}

func (s *nativeStrategy) Name() domain.Strategy {
	return domain.StrategyNativeMode
}

func (s *nativeStrategy) Extract(ctx context.Context, sch *schema.Schema, ectx domain.ExtractionContext) (map[string]any, error) {
	if !s.backend.Capabilities().JSONMode {
		return nil, &CapabilityUnsupportedError{Provider: s.backend.Provider(), Capability: "native JSON mode"}
	}

	messages := []port.Message{{
		Role:    string(domain.RoleUser),
		Content: sch.FormatSpec() + "\nContext:\n" + renderContext(ectx.Data),
	}}
	opts := port.InvokeOptions{SystemPrompt: ectx.SystemInstruction, JSONMode: true}

	res, err := s.backend.Invoke(ctx, messages, opts)
	if err != nil {
		return nil, fmt.Errorf("nativeStrategy.Extract: %w", err)
	}

	raw := strings.TrimSpace(res.Content)
	if !json.Valid([]byte(raw)) {
		failure := &BackendModeFailure{Provider: s.backend.Provider(), Output: snippet(raw, 200)}
		// contract violations are logged distinctly from ordinary strategy failures
		log.Printf("extract.nativeStrategy: %v", failure)
		return nil, failure
	}
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		failure := &BackendModeFailure{Provider: s.backend.Provider(), Output: snippet(raw, 200)}
		log.Printf("extract.nativeStrategy: %v", failure)
		return nil, failure
	}
	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, &SchemaValidationError{Err: &schema.ValidationError{Message: "top-level JSON value is not an object"}}
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
