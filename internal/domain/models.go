package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractionContext carries the free-form input a schema is extracted from:
// arbitrary data (a string, an error object, any JSON-shaped value) plus an
// optional system instruction. Immutable per request.
type ExtractionContext struct {
	Data              any
	SystemInstruction string
}

// StrategyAttempt records one failed strategy invocation in the diagnostic
// trail. Attempts are folded into the trail and never persisted.
type StrategyAttempt struct {
	Strategy Strategy  `json:"strategy"`
	Kind     ErrorKind `json:"error_kind"`
	Message  string    `json:"message"`
}

// ExtractionResult is the terminal outcome of a successful extraction: a
// value satisfying every required and constraints entry of the schema it was
// extracted against, plus the strategy that produced it.
type ExtractionResult struct {
	Value        map[string]any `json:"value"`
	StrategyUsed Strategy       `json:"strategy_used"`
}

// Turn is one entry in a session's bounded conversation history.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SchemaRecord is a stored, named schema definition in the catalog. The
// catalog holds definitions only; extraction results are never stored.
type SchemaRecord struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Fields      json.RawMessage `db:"fields" json:"fields"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
