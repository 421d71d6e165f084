package extract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skema/internal/domain"
	"skema/internal/extract"
	"skema/internal/port"
	"skema/internal/schema"
	"skema/mocks"
)

func jsonModeBackend(content string) *mocks.MockLLMBackend {
	backend := new(mocks.MockLLMBackend)
	backend.On("Capabilities").Return(port.Capabilities{ToolCalling: true, JSONMode: true})
	backend.On("Provider").Return("test-provider").Maybe()
	backend.On("Invoke", mock.Anything, mock.Anything, mock.MatchedBy(func(opts port.InvokeOptions) bool {
		return opts.JSONMode && opts.Tool == nil
	})).Return(&port.InvokeResult{Content: content}, nil)
	return backend
}

func TestNativeStrategy_Success(t *testing.T) {
	backend := jsonModeBackend(`{"errorCount": 1, "errorLevel": "error"}`)
	strat := extract.NewNativeStrategy(backend)

	value, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "one error"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"errorCount": float64(1), "errorLevel": "error"}, value)
	backend.AssertExpectations(t)
}

func TestNativeStrategy_CapabilityUnsupported_FailsFast(t *testing.T) {
	backend := new(mocks.MockLLMBackend)
	backend.On("Capabilities").Return(port.Capabilities{ToolCalling: true, JSONMode: false})
	backend.On("Provider").Return("no-json-mode")

	strat := extract.NewNativeStrategy(backend)
	_, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "ctx"})

	var capErr *extract.CapabilityUnsupportedError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "no-json-mode", capErr.Provider)
	backend.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything)
}

func TestNativeStrategy_InvalidJSON_IsBackendModeFailure(t *testing.T) {
	// the mode contract guarantees syntactic validity; prose violates it
	backend := jsonModeBackend("definitely not JSON")
	strat := extract.NewNativeStrategy(backend)

	_, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "ctx"})

	var modeErr *extract.BackendModeFailure
	require.ErrorAs(t, err, &modeErr)
	assert.Equal(t, "test-provider", modeErr.Provider)
}

func TestNativeStrategy_NonObjectRoot_IsValidationFailure(t *testing.T) {
	// [1,2] honors the syntax contract but cannot match an object schema
	backend := jsonModeBackend(`[1, 2]`)
	strat := extract.NewNativeStrategy(backend)

	_, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "ctx"})

	var sve *extract.SchemaValidationError
	require.ErrorAs(t, err, &sve)
}

func TestNativeStrategy_MissingRequiredField(t *testing.T) {
	backend := jsonModeBackend(`{"errorLevel": "info"}`)
	strat := extract.NewNativeStrategy(backend)

	_, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "ctx"})

	var sve *extract.SchemaValidationError
	require.ErrorAs(t, err, &sve)
	assert.Equal(t, "errorCount", sve.FieldPath)
}

func TestNativeStrategy_BackendError(t *testing.T) {
	backend := new(mocks.MockLLMBackend)
	backend.On("Capabilities").Return(port.Capabilities{JSONMode: true})
	backend.On("Invoke", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

	strat := extract.NewNativeStrategy(backend)
	_, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "ctx"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNativeStrategy_ZeroFieldSchema(t *testing.T) {
	empty, err := schema.Define(nil)
	require.NoError(t, err)

	backend := jsonModeBackend(`{}`)
	strat := extract.NewNativeStrategy(backend)

	value, err := strat.Extract(context.Background(), empty, domain.ExtractionContext{Data: "ctx"})
	require.NoError(t, err)
	assert.Empty(t, value)
}
