package ai

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is wrapped by ConfigurationError when no credential is set.
var ErrMissingAPIKey = errors.New("API key is not configured")

// ConfigurationError reports a provider that cannot be used as configured.
// It is raised before any network attempt and is never retried.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai: configuration: %s: %v", e.Msg, e.Err)
	}
	return "ai: configuration: " + e.Msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// UpstreamError reports a non-success status or an unusable payload from the
// chat-completion service. Message carries the upstream's own message when the
// error body could be decoded.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ai: upstream error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return "ai: upstream error: " + e.Message
}
