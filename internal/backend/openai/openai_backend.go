package openai

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
	apiURL = "https://api.openai.com/v1/chat/completions"
)

func init() {
	backend.RegisterProvider("openai", func(cfg *config.BackendConfig) (port.LLMBackend, error) {
		return NewClient(cfg), nil
	})
}

// Client implements port.LLMBackend using the OpenAI Chat Completions API.
type Client struct {
	apiKey    string
	model     string
	endpoint  string
	maxTokens int
	client    *http.Client
}

// NewClient creates an OpenAI-backed client from a backend config.
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
		model = "gpt-4o"
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
		endpoint = cfg.BaseURL + "/chat/completions"
	}
	return &Client{
		apiKey:    cfg.APIKey,
		model:     model,
		endpoint:  endpoint,
		maxTokens: maxTokens,
		client:    &http.Client{Timeout: timeout},
	}
}

// Capabilities reports that OpenAI supports both forced tool calls and the
// json_object response format.
func (c *Client) Capabilities() port.Capabilities {
	return port.Capabilities{ToolCalling: true, JSONMode: true}
}

func (c *Client) Provider() string {
	return "openai"
}

func (c *Client) Invoke(ctx context.Context, messages []port.Message, opts port.InvokeOptions) (*port.InvokeResult, error) {
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	msgs := make([]map[string]interface{}, 0, len(messages)+1)
	if opts.SystemPrompt != "" {
		msgs = append(msgs, map[string]interface{}{
			"role":    "system",
			"content": opts.SystemPrompt,
		})
	}
	for _, m := range messages {
		msgs = append(msgs, map[string]interface{}{
			"role":    m.Role,
			"content": m.Content,
		})
	}

	reqBody := map[string]interface{}{
		"model":                 c.model,
		"max_completion_tokens": maxTokens,
		"messages":              msgs,
	}
	if opts.Temperature != nil {
		reqBody["temperature"] = *opts.Temperature
	}
	if opts.Tool != nil {
		reqBody["tools"] = []map[string]interface{}{
			{
				"type": "function",
				"function": map[string]interface{}{
					"name":        opts.Tool.Name,
					"description": opts.Tool.Description,
					"parameters":  opts.Tool.Parameters,
				},
			},
		}
		reqBody["tool_choice"] = map[string]interface{}{
			"type":     "function",
			"function": map[string]interface{}{"name": opts.Tool.Name},
		}
	}
	if opts.JSONMode {
		reqBody["response_format"] = map[string]interface{}{
			"type": "json_object",
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
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling openai API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody, c.model)
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func parseResponse(body []byte, model string) (*port.InvokeResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}

	if resp.Choices[0].FinishReason == "length" {
		return nil, fmt.Errorf("output truncated (finish_reason: length): response exceeded output token limit")
	}

	msg := resp.Choices[0].Message
	out := &port.InvokeResult{
		Content:   msg.Content,
		ModelUsed: model,
	}
	if len(msg.ToolCalls) > 0 {
		out.ToolArguments = json.RawMessage(msg.ToolCalls[0].Function.Arguments)
	}
	return out, nil
}
