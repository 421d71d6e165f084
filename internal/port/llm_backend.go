package port

import (
	"context"
	"encoding/json"
)

// Message is one turn of the conversation sent to the backend.
type Message struct {
	Role    string
	Content string
}

// ToolSpec declares a callable function the backend is forced to invoke:
// name, human description, and a JSON-Schema parameter block.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  json.RawMessage
}

// InvokeOptions selects the generation mode for a single call. At most one of
// Tool and JSONMode should be set; leaving both unset requests plain text
// completion.
type InvokeOptions struct {
	SystemPrompt string
	Tool         *ToolSpec
	JSONMode     bool
	Temperature  *float64
	MaxTokens    int
}

// InvokeResult carries the backend's reply: plain text in Content, or the
// selected tool's arguments in ToolArguments when a tool call was forced.
type InvokeResult struct {
	Content       string
	ToolArguments json.RawMessage
	ModelUsed     string
}

// Capabilities reports which generation modes a backend supports. The
// extraction strategies query these before calling; a missing capability
// surfaces as a typed failure, never a generic error.
type Capabilities struct {
	ToolCalling bool
	JSONMode    bool
}

// LLMBackend abstracts the text-generation backend. Invoke blocks for the
// duration of generation and must honor ctx cancellation.
type LLMBackend interface {
	Invoke(ctx context.Context, messages []Message, opts InvokeOptions) (*InvokeResult, error)
	Capabilities() Capabilities
	Provider() string
}
