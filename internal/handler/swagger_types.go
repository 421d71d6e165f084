package handler

import (
	"time"

	"skema/internal/domain"
	"skema/internal/schema"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ExtractRequest represents the extraction request body. Exactly one of
// schema_name and fields selects the schema; on the /schemas/{name}/extract
// route the path parameter supplies schema_name.
type ExtractRequest struct {
	SchemaName        string            `json:"schema_name" example:"log-summary"`
	Fields            []schema.FieldDef `json:"fields"`
	Context           interface{}       `json:"context"`
	SystemInstruction string            `json:"system_instruction" example:"You summarize build logs."`
	Strategies        []string          `json:"strategies" example:"bound_function,instruction_guided,native_mode"`
}

// CreateSchemaRequest represents the create schema request body.
type CreateSchemaRequest struct {
	Name        string            `json:"name" binding:"required" example:"log-summary"`
	Description string            `json:"description" example:"shape of a summarized build log"`
	Fields      []schema.FieldDef `json:"fields" binding:"required"`
}

// ChatRequest represents the chat turn request body.
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required" example:"build-7421"`
	Message   string `json:"message" binding:"required" example:"What failed last night?"`
}

// --- Response Types ---

// ExtractResponse represents the result of a successful extraction.
type ExtractResponse struct {
	Value        map[string]interface{}   `json:"value"`
	StrategyUsed domain.Strategy          `json:"strategy_used" example:"bound_function"`
	Attempts     []domain.StrategyAttempt `json:"attempts"`
}

// ChatResponse represents a completed chat turn.
type ChatResponse struct {
	SessionID string `json:"session_id" example:"build-7421"`
	Reply     string `json:"reply" example:"The nightly job failed at 02:00 with two timeouts."`
}

// SessionHistoryResponse represents the bounded history of one session.
type SessionHistoryResponse struct {
	SessionID string        `json:"session_id" example:"build-7421"`
	Turns     []domain.Turn `json:"turns"`
}

// SchemaResponse represents a stored schema definition.
type SchemaResponse struct {
	ID          string            `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string            `json:"name" example:"log-summary"`
	Description string            `json:"description" example:"shape of a summarized build log"`
	Fields      []schema.FieldDef `json:"fields"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
