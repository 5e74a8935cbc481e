// Package providers implements concrete LLM provider backends.
package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/toyinlola/fmtai/pkg/ai"
)

// DefaultTimeout bounds a single completion request.
const DefaultTimeout = 60 * time.Second

// OpenAIProvider implements ai.LLMProvider for any OpenAI-compatible API.
// This covers DeepSeek, OpenAI, OpenRouter, Ollama and vLLM.
type OpenAIProvider struct {
	config ai.ProviderConfig
	client *http.Client
}

// NewOpenAIProvider creates a provider for OpenAI-compatible endpoints.
// An empty endpoint or model falls back to the DeepSeek defaults.
func NewOpenAIProvider(cfg ai.ProviderConfig, timeout time.Duration) *OpenAIProvider {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = ai.DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = ai.DefaultModel
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	return &OpenAIProvider{
		config: cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// chatRequest is the OpenAI chat completions request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
	Stream      bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the OpenAI chat completions response body.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// baseURL returns the versioned API root.
func (p *OpenAIProvider) baseURL() string {
	if strings.HasSuffix(p.config.Endpoint, "/v1") {
		return p.config.Endpoint
	}
	return p.config.Endpoint + "/v1"
}

// Complete sends a prompt to the OpenAI-compatible endpoint and returns the response.
// A missing API key fails with *ai.ConfigurationError before any request is made.
// Non-success statuses and unusable payloads fail with *ai.UpstreamError.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string, opts ai.CompletionOpts) (string, error) {
	if p.config.APIKey == "" {
		return "", &ai.ConfigurationError{Msg: "chat-completion credential missing", Err: ai.ErrMissingAPIKey}
	}

	messages := make([]chatMessage, 0, 2)
	if opts.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: opts.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	reqBody := chatRequest{
		Model:    p.config.Model,
		Messages: messages,
		Stream:   false,
	}
	if opts.MaxTokens > 0 {
		reqBody.MaxTokens = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		t := opts.Temperature
		reqBody.Temperature = &t
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("ai: marshaling request: %w", err)
	}

	url := p.baseURL() + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	slog.Debug("ai: sending completion", "url", url, "model", p.config.Model, "prompt_bytes", len(prompt))

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: sending request to %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ai: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ai.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(resp.StatusCode, respBody),
		}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", &ai.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    "malformed response: " + truncate(string(respBody), 200),
		}
	}

	if chatResp.Error != nil {
		return "", &ai.UpstreamError{StatusCode: resp.StatusCode, Message: chatResp.Error.Message}
	}

	if len(chatResp.Choices) == 0 {
		return "", &ai.UpstreamError{StatusCode: resp.StatusCode, Message: "provider returned no choices"}
	}

	return chatResp.Choices[0].Message.Content, nil
}

// Available checks if the provider endpoint is reachable by sending a lightweight request.
func (p *OpenAIProvider) Available(ctx context.Context) bool {
	if p.config.APIKey == "" {
		return false
	}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	url := p.baseURL() + "/models"
	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, url, nil)
	if err != nil {
		slog.Debug("ai: availability check failed", "error", err)
		return false
	}
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		slog.Debug("ai: endpoint unreachable", "endpoint", p.config.Endpoint, "error", err)
		return false
	}
	defer resp.Body.Close() //nolint:errcheck

	return resp.StatusCode == http.StatusOK
}

// upstreamMessage extracts error.message from an error body, falling back to
// the status text.
func upstreamMessage(status int, body []byte) string {
	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	if status == http.StatusTooManyRequests {
		return "rate limited by provider"
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
