// Package ai talks to the chat-completion model that performs the formatting.
// It supports any OpenAI-compatible API endpoint (DeepSeek, OpenAI, OpenRouter,
// Ollama, vLLM).
package ai

import "context"

// ProviderType identifies the LLM provider protocol.
type ProviderType string

const (
	ProviderOpenAICompatible ProviderType = "openai-compatible"
)

// Defaults for the DeepSeek chat-completion endpoint.
const (
	DefaultEndpoint    = "https://api.deepseek.com"
	DefaultModel       = "deepseek-chat"
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 4000
)

// ProviderConfig holds the configuration for connecting to an LLM provider.
type ProviderConfig struct {
	Endpoint string       `json:"endpoint" yaml:"endpoint"` // Base URL (e.g., "https://api.deepseek.com")
	Model    string       `json:"model" yaml:"model"`       // Model name (e.g., "deepseek-chat")
	APIKey   string       `json:"-" yaml:"-"`               // API key (never serialized)
	Type     ProviderType `json:"type" yaml:"type"`         // Provider protocol type
}

// CompletionOpts configures a single LLM completion request.
type CompletionOpts struct {
	MaxTokens    int     `json:"max_tokens,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
	SystemPrompt string  `json:"system_prompt,omitempty"`
}

// LLMProvider abstracts communication with an LLM backend.
type LLMProvider interface {
	// Complete sends a prompt to the LLM and returns the response text.
	Complete(ctx context.Context, prompt string, opts CompletionOpts) (string, error)

	// Available checks whether the provider endpoint is configured and reachable.
	Available(ctx context.Context) bool
}
