// Package extract implements the schema-constrained extraction pipeline:
// three strategies for obtaining schema-conformant data from a text
// generation backend (bound-function, instruction-guided, native-mode) and
// the fallback orchestrator that runs them in priority order until one
// succeeds or all are exhausted.
package extract

import (
	"context"
	"encoding/json"
	"fmt"

	"skema/internal/domain"
	"skema/internal/port"
	"skema/internal/schema"
)

// Strategy is one concrete technique for extracting a schema-conformant
// value. Extract returns the normalized value or a typed failure; it never
// mutates the schema.
type Strategy interface {
	Name() domain.Strategy
	Extract(ctx context.Context, sch *schema.Schema, ectx domain.ExtractionContext) (map[string]any, error)
}

// renderContext turns the free-form context data into prompt text: strings
// pass through verbatim, everything else is marshaled as indented JSON.
func renderContext(data any) string {
	switch v := data.(type) {
	case nil:
		return "No additional context."
	case string:
		if v == "" {
			return "No additional context."
		}
		return v
	default:
		raw, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	}
}

func contextMessage(ectx domain.ExtractionContext) []port.Message {
	return []port.Message{{Role: string(domain.RoleUser), Content: renderContext(ectx.Data)}}
}

func snippet(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
