package extract

import (
	"fmt"
	"strings"

	"skema/internal/domain"
)

// CapabilityUnsupportedError reports that the backend lacks a generation mode
// a strategy requires. Raised before any outbound call; the orchestrator
// treats it as a signal to skip ahead, not a hard failure.
type CapabilityUnsupportedError struct {
	Provider   string
	Capability string
}

func (e *CapabilityUnsupportedError) Error() string {
	return fmt.Sprintf("backend %q does not support %s", e.Provider, e.Capability)
}

// UnparsableOutputError reports that no parseable JSON object could be
// recovered from instruction-guided output.
type UnparsableOutputError struct {
	Reason string
	Output string
}

func (e *UnparsableOutputError) Error() string {
	return fmt.Sprintf("unparsable output: %s (output: %s)", e.Reason, e.Output)
}

// BackendModeFailure reports a backend contract violation: output produced
// under the native JSON mode flag was not syntactically valid JSON.
type BackendModeFailure struct {
	Provider string
	Output   string
}

func (e *BackendModeFailure) Error() string {
	return fmt.Sprintf("backend %q violated JSON mode contract (output: %s)", e.Provider, e.Output)
}

// SchemaValidationError reports that parsed output failed the field-level
// schema walk, carrying the offending field path.
type SchemaValidationError struct {
	FieldPath string
	Err       error
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *SchemaValidationError) Unwrap() error { return e.Err }

// ConstraintViolationError reports that bound-function arguments violated a
// constraint not expressible in the function signature.
type ConstraintViolationError struct {
	FieldPath string
	Err       error
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation: %v", e.Err)
}

func (e *ConstraintViolationError) Unwrap() error { return e.Err }

// ExhaustedError is the terminal failure: every configured strategy was tried
// and failed. It carries one diagnostic per attempted strategy so callers can
// tell a backend missing a capability from a backend ignoring instructions.
type ExhaustedError struct {
	Attempts []domain.StrategyAttempt
}

func (e *ExhaustedError) Error() string {
	var b strings.Builder
	b.WriteString("all extraction strategies exhausted")
	for _, a := range e.Attempts {
		b.WriteString(fmt.Sprintf("; %s: %s (%s)", a.Strategy, a.Message, a.Kind))
	}
	return b.String()
}
