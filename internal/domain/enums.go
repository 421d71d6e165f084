package domain

// Strategy identifies one extraction technique in the fallback chain.
type Strategy string

const (
	StrategyBoundFunction     Strategy = "bound_function"
	StrategyInstructionGuided Strategy = "instruction_guided"
	StrategyNativeMode        Strategy = "native_mode"
)

// AllStrategies maps strategy names to their Strategy value.
var AllStrategies = map[string]Strategy{
	"bound_function":     StrategyBoundFunction,
	"instruction_guided": StrategyInstructionGuided,
	"native_mode":        StrategyNativeMode,
}

// DefaultStrategyOrder is the priority order used when a caller does not
// override it: most reliable first.
var DefaultStrategyOrder = []Strategy{
	StrategyBoundFunction,
	StrategyInstructionGuided,
	StrategyNativeMode,
}

// ErrorKind classifies why a strategy attempt failed.
type ErrorKind string

const (
	ErrorKindCapabilityUnsupported ErrorKind = "capability_unsupported"
	ErrorKindUnparsableOutput      ErrorKind = "unparsable_output"
	ErrorKindBackendModeFailure    ErrorKind = "backend_mode_failure"
	ErrorKindSchemaValidation      ErrorKind = "schema_validation"
	ErrorKindConstraintViolation   ErrorKind = "constraint_violation"
	ErrorKindBackendFailure        ErrorKind = "backend_failure"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)
