package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"skema/internal/backend"
	"skema/internal/config"
	"skema/internal/port"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
)

func init() {
	backend.RegisterProvider("anthropic", func(cfg *config.BackendConfig) (port.LLMBackend, error) {
		return NewClient(cfg), nil
	})
}

// Client implements port.LLMBackend using the Anthropic Messages API.
type Client struct {
	apiKey    string
	model     string
	endpoint  string
	maxTokens int
	client    *http.Client
}

// NewClient creates an Anthropic-backed client from a backend config.
func NewClient(cfg *config.BackendConfig) *Client {
	return newClient(cfg, apiURL)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.BackendConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.BackendConfig, endpoint string) *Client {
	model := cfg.DefaultModel
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if cfg.BaseURL != "" {
		endpoint = cfg.BaseURL + "/v1/messages"
	}
	return &Client{
		apiKey:    cfg.APIKey,
		model:     model,
		endpoint:  endpoint,
		maxTokens: maxTokens,
		client:    &http.Client{Timeout: timeout},
	}
}

// Capabilities reports forced tool calls but no native JSON output mode; the
// Messages API has no response_format equivalent.
func (c *Client) Capabilities() port.Capabilities {
	return port.Capabilities{ToolCalling: true, JSONMode: false}
}

func (c *Client) Provider() string {
	return "anthropic"
}

func (c *Client) Invoke(ctx context.Context, messages []port.Message, opts port.InvokeOptions) (*port.InvokeResult, error) {
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	msgs := make([]map[string]interface{}, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, map[string]interface{}{
			"role":    m.Role,
			"content": m.Content,
		})
	}

	reqBody := map[string]interface{}{
		"model":      c.model,
		"max_tokens": maxTokens,
		"messages":   msgs,
	}
	if opts.SystemPrompt != "" {
		reqBody["system"] = opts.SystemPrompt
	}
	if opts.Temperature != nil {
		reqBody["temperature"] = *opts.Temperature
	}
	if opts.Tool != nil {
		reqBody["tools"] = []map[string]interface{}{
			{
				"name":         opts.Tool.Name,
				"description":  opts.Tool.Description,
				"input_schema": opts.Tool.Parameters,
			},
		}
		reqBody["tool_choice"] = map[string]interface{}{
			"type": "tool",
			"name": opts.Tool.Name,
		}
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling anthropic API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody, c.model)
}

// apiResponse models the Anthropic Messages API response.
type apiResponse struct {
	Content []struct {
		Type  string          `json:"type"`
		Text  string          `json:"text"`
		Name  string          `json:"name"`
		Input json.RawMessage `json:"input"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func parseResponse(body []byte, model string) (*port.InvokeResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("empty response from API: no content blocks")
	}

	if resp.StopReason == "max_tokens" {
		return nil, fmt.Errorf("output truncated (stop_reason: max_tokens): response exceeded output token limit")
	}

	out := &port.InvokeResult{ModelUsed: model}
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			if out.Content == "" {
				out.Content = block.Text
			}
		case "tool_use":
			if out.ToolArguments == nil {
				out.ToolArguments = block.Input
			}
		}
	}
	return out, nil
}
