package extract_test

import (
	"context"
	"encoding/json"
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

func levelSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Define([]schema.FieldDef{
		{Name: "errorCount", Type: schema.TypeNumber, Description: "how many errors occurred", Required: true},
		{Name: "errorLevel", Type: schema.TypeEnum, Enum: []string{"error", "warning", "info"}, Required: true},
	})
	require.NoError(t, err)
	return s
}

func toolBackend(result *port.InvokeResult, err error) *mocks.MockLLMBackend {
	backend := new(mocks.MockLLMBackend)
	backend.On("Capabilities").Return(port.Capabilities{ToolCalling: true, JSONMode: true})
	backend.On("Provider").Return("test-provider").Maybe()
	backend.On("Invoke", mock.Anything, mock.Anything, mock.Anything).Return(result, err)
	return backend
}

func TestBindingStrategy_Success(t *testing.T) {
	backend := toolBackend(&port.InvokeResult{
		ToolArguments: json.RawMessage(`{"errorCount": 2, "errorLevel": "warning"}`),
	}, nil)
	strat := extract.NewBindingStrategy(backend)

	value, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "two warnings occurred"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"errorCount": float64(2), "errorLevel": "warning"}, value)
	backend.AssertNumberOfCalls(t, "Invoke", 1)
}

func TestBindingStrategy_DeclaresSchemaAsTool(t *testing.T) {
	backend := new(mocks.MockLLMBackend)
	backend.On("Capabilities").Return(port.Capabilities{ToolCalling: true})
	backend.On("Invoke", mock.Anything, mock.Anything, mock.MatchedBy(func(opts port.InvokeOptions) bool {
		if opts.Tool == nil || opts.Tool.Name != "submit_extraction" {
			return false
		}
		var params map[string]any
		if err := json.Unmarshal(opts.Tool.Parameters, &params); err != nil {
			return false
		}
		props, ok := params["properties"].(map[string]any)
		if !ok {
			return false
		}
		_, hasCount := props["errorCount"]
		_, hasLevel := props["errorLevel"]
		return hasCount && hasLevel
	})).Return(&port.InvokeResult{ToolArguments: json.RawMessage(`{"errorCount":0,"errorLevel":"info"}`)}, nil)

	strat := extract.NewBindingStrategy(backend)
	_, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "all quiet"})
	require.NoError(t, err)
	backend.AssertExpectations(t)
}

func TestBindingStrategy_CapabilityUnsupported_FailsFast(t *testing.T) {
	backend := new(mocks.MockLLMBackend)
	backend.On("Capabilities").Return(port.Capabilities{ToolCalling: false, JSONMode: true})
	backend.On("Provider").Return("no-tools")

	strat := extract.NewBindingStrategy(backend)
	_, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "ctx"})

	var capErr *extract.CapabilityUnsupportedError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "no-tools", capErr.Provider)
	backend.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything)
}

func TestBindingStrategy_ConstraintViolation(t *testing.T) {
	// the tool signature cannot express enum membership; re-validation must
	backend := toolBackend(&port.InvokeResult{
		ToolArguments: json.RawMessage(`{"errorCount": 1, "errorLevel": "fatal"}`),
	}, nil)
	strat := extract.NewBindingStrategy(backend)

	_, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "ctx"})

	var cv *extract.ConstraintViolationError
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "errorLevel", cv.FieldPath)
}

func TestBindingStrategy_NoToolArguments(t *testing.T) {
	backend := toolBackend(&port.InvokeResult{Content: "I decided not to call the tool."}, nil)
	strat := extract.NewBindingStrategy(backend)

	_, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "ctx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tool arguments")
}

func TestBindingStrategy_BackendError(t *testing.T) {
	backend := toolBackend(nil, assert.AnError)
	strat := extract.NewBindingStrategy(backend)

	_, err := strat.Extract(context.Background(), levelSchema(t), domain.ExtractionContext{Data: "ctx"})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBindingStrategy_ZeroFieldSchema(t *testing.T) {
	empty, err := schema.Define(nil)
	require.NoError(t, err)

	backend := toolBackend(&port.InvokeResult{ToolArguments: json.RawMessage(`{}`)}, nil)
	strat := extract.NewBindingStrategy(backend)

	value, err := strat.Extract(context.Background(), empty, domain.ExtractionContext{Data: "anything"})
	require.NoError(t, err)
	assert.Empty(t, value)
}
