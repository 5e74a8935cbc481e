package formatter

import (
	"strings"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

// ValidationError reports a request that cannot be sent to the model.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return "formatter: invalid " + e.Field + ": " + e.Msg
}

// Validate checks a request before any prompt is built.
// Code and language must be non-blank and the config enums must be known.
func Validate(req interfaces.FormatRequest) error {
	if strings.TrimSpace(req.Code) == "" {
		return &ValidationError{Field: "code", Msg: "missing required field"}
	}
	if strings.TrimSpace(req.Language) == "" {
		return &ValidationError{Field: "language", Msg: "missing required field"}
	}
	if err := req.Config.Validate(); err != nil {
		return &ValidationError{Field: "config", Msg: err.Error()}
	}
	return nil
}
