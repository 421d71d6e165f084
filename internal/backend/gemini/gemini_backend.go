package gemini

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
	apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
)

func init() {
	backend.RegisterProvider("gemini", func(cfg *config.BackendConfig) (port.LLMBackend, error) {
		return NewClient(cfg), nil
	})
}

// Client implements port.LLMBackend using Google's Gemini API.
type Client struct {
	apiKey    string
	model     string
	endpoint  string
	maxTokens int
	client    *http.Client
}

// NewClient creates a Gemini-backed client from a backend config.
func NewClient(cfg *config.BackendConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.BackendConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.BackendConfig, endpoint string) *Client {
	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-2.0-flash"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		base := apiBaseURL
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
		endpoint = fmt.Sprintf("%s/%s:generateContent", base, model)
	}
	return &Client{
		apiKey:    cfg.APIKey,
		model:     model,
		endpoint:  endpoint,
		maxTokens: maxTokens,
		client:    &http.Client{Timeout: timeout},
	}
}

// Capabilities reports forced function calls and the application/json
// response MIME type.
func (c *Client) Capabilities() port.Capabilities {
	return port.Capabilities{ToolCalling: true, JSONMode: true}
}

func (c *Client) Provider() string {
	return "gemini"
}

func (c *Client) Invoke(ctx context.Context, messages []port.Message, opts port.InvokeOptions) (*port.InvokeResult, error) {
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	contents := make([]map[string]interface{}, 0, len(messages))
	for _, m := range messages {
		contents = append(contents, map[string]interface{}{
			"role": toGeminiRole(m.Role),
			"parts": []map[string]interface{}{
				{"text": m.Content},
			},
		})
	}

	generationConfig := map[string]interface{}{
		"maxOutputTokens": maxTokens,
	}
	if opts.Temperature != nil {
		generationConfig["temperature"] = *opts.Temperature
	}
	if opts.JSONMode {
		generationConfig["responseMimeType"] = "application/json"
	}

	reqBody := map[string]interface{}{
		"contents":         contents,
		"generationConfig": generationConfig,
	}
	if opts.SystemPrompt != "" {
		reqBody["systemInstruction"] = map[string]interface{}{
			"parts": []map[string]interface{}{
				{"text": opts.SystemPrompt},
			},
		}
	}
	if opts.Tool != nil {
		reqBody["tools"] = []map[string]interface{}{
			{
				"functionDeclarations": []map[string]interface{}{
					{
						"name":        opts.Tool.Name,
						"description": opts.Tool.Description,
						"parameters":  opts.Tool.Parameters,
					},
				},
			},
		}
		reqBody["toolConfig"] = map[string]interface{}{
			"functionCallingConfig": map[string]interface{}{
				"mode":                 "ANY",
				"allowedFunctionNames": []string{opts.Tool.Name},
			},
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
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody, c.model)
}

// Gemini names the assistant role "model"; system text travels separately
// via systemInstruction.
func toGeminiRole(role string) string {
	if role == "assistant" {
		return "model"
	}
	return "user"
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text         string `json:"text"`
				FunctionCall *struct {
					Name string          `json:"name"`
					Args json.RawMessage `json:"args"`
				} `json:"functionCall"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func parseResponse(body []byte, model string) (*port.InvokeResult, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from API: no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == "MAX_TOKENS" {
		return nil, fmt.Errorf("output truncated (finishReason: MAX_TOKENS): response exceeded output token limit")
	}

	if len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from API: no parts")
	}

	out := &port.InvokeResult{ModelUsed: model}
	for _, part := range candidate.Content.Parts {
		if part.FunctionCall != nil && out.ToolArguments == nil {
			out.ToolArguments = part.FunctionCall.Args
		}
		if part.Text != "" && out.Content == "" {
			out.Content = part.Text
		}
	}
	return out, nil
}
