// Package formatter turns a FormatRequest into a FormatResult by delegating
// the rewrite to a chat-completion model.
//
// The pipeline is: validate → build prompt → complete → sanitize → classify.
// Everything except the completion call is pure.
package formatter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/toyinlola/fmtai/pkg/ai"
	"github.com/toyinlola/fmtai/pkg/ai/prompts"
	"github.com/toyinlola/fmtai/pkg/changes"
	"github.com/toyinlola/fmtai/pkg/interfaces"
)

// DefaultWorkers is the number of concurrent completions FormatBatch runs.
const DefaultWorkers = 4

// Formatter formats code through an LLM provider.
type Formatter struct {
	provider    ai.LLMProvider
	classifier  *changes.Classifier
	temperature float64
	maxTokens   int
	workers     int
	cache       *lru.Cache[string, *interfaces.FormatResult]
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClassifier sets the change classifier. Defaults to positional.
func WithClassifier(c *changes.Classifier) Option {
	return func(f *Formatter) {
		f.classifier = c
	}
}

// WithTemperature sets the sampling temperature sent with each completion.
func WithTemperature(t float64) Option {
	return func(f *Formatter) {
		f.temperature = t
	}
}

// WithMaxTokens caps the completion length.
func WithMaxTokens(n int) Option {
	return func(f *Formatter) {
		f.maxTokens = n
	}
}

// WithWorkers sets the FormatBatch concurrency.
func WithWorkers(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.workers = n
		}
	}
}

// WithCache keeps up to size results keyed by request so repeated requests
// skip the provider. A size <= 0 disables caching.
func WithCache(size int) Option {
	return func(f *Formatter) {
		if size <= 0 {
			f.cache = nil
			return
		}
		c, err := lru.New[string, *interfaces.FormatResult](size)
		if err != nil {
			slog.Warn("formatter: result cache disabled", "size", size, "error", err)
			return
		}
		f.cache = c
	}
}

// New creates a Formatter backed by the given provider.
func New(provider ai.LLMProvider, opts ...Option) *Formatter {
	f := &Formatter{
		provider:    provider,
		classifier:  changes.NewClassifier(changes.ModePositional),
		temperature: ai.DefaultTemperature,
		maxTokens:   ai.DefaultMaxTokens,
		workers:     DefaultWorkers,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format validates req, asks the model to reformat the code and returns the
// sanitized result with change statistics.
//
// Validation failures return *ValidationError without contacting the
// provider. Provider errors (*ai.ConfigurationError, *ai.UpstreamError or
// transport errors) are returned unmodified. Nothing is retried.
func (f *Formatter) Format(ctx context.Context, req interfaces.FormatRequest) (*interfaces.FormatResult, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	var key string
	if f.cache != nil {
		key = cacheKey(req)
		if res, ok := f.cache.Get(key); ok {
			slog.Debug("formatter: cache hit", "language", req.Language)
			cp := *res
			return &cp, nil
		}
	}

	start := time.Now()
	system, user := prompts.Build(req)

	raw, err := f.provider.Complete(ctx, user, ai.CompletionOpts{
		MaxTokens:    f.maxTokens,
		Temperature:  f.temperature,
		SystemPrompt: system,
	})
	if err != nil {
		slog.Error("format failed", "language", req.Language, "error", err, "duration", time.Since(start))
		return nil, err
	}

	formatted := req.Code
	if strings.TrimSpace(raw) != "" {
		formatted = ai.Sanitize(raw)
	} else {
		slog.Warn("formatter: empty completion, keeping original code", "language", req.Language)
	}

	res := &interfaces.FormatResult{
		Formatted: formatted,
		Original:  req.Code,
		Changes:   f.classifier.Classify(req.Code, formatted),
	}

	slog.Info("format complete",
		"language", req.Language,
		"additions", res.Changes.Additions,
		"deletions", res.Changes.Deletions,
		"modifications", res.Changes.Modifications,
		"duration", time.Since(start),
	)

	if f.cache != nil {
		cp := *res
		f.cache.Add(key, &cp)
	}
	return res, nil
}

// Available reports whether the underlying provider is configured and reachable.
func (f *Formatter) Available(ctx context.Context) bool {
	return f.provider.Available(ctx)
}

// wrapItemErr labels a batch item's error with its path.
func wrapItemErr(path string, err error) error {
	if path == "" {
		return err
	}
	return fmt.Errorf("%s: %w", path, err)
}
