package formatter

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

// BatchItem is one input of FormatBatch.
type BatchItem struct {
	Path    string
	Request interfaces.FormatRequest
}

// FormatBatch formats every item with at most the configured number of
// concurrent completions. A failing item does not stop the others. Results
// are returned in input order, one per item. Items not yet started when ctx
// is cancelled carry ctx.Err().
func (f *Formatter) FormatBatch(ctx context.Context, items []BatchItem) []interfaces.FileResult {
	results := make([]interfaces.FileResult, len(items))
	if len(items) == 0 {
		return results
	}

	slog.Info("starting batch", "items", len(items), "workers", f.workers)

	var (
		wg  sync.WaitGroup
		sem = make(chan struct{}, f.workers)
	)

	for i, item := range items {
		results[i] = interfaces.FileResult{Path: item.Path, Language: item.Request.Language}

		wg.Add(1)
		go func(i int, item BatchItem) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				setError(&results[i], item.Path, ctx.Err())
				return
			}

			// Check for context cancellation before starting.
			if ctx.Err() != nil {
				setError(&results[i], item.Path, ctx.Err())
				return
			}

			start := time.Now()
			res, err := f.Format(ctx, item.Request)
			results[i].Duration = time.Since(start)
			if err != nil {
				slog.Warn("batch item failed", "path", item.Path, "error", err)
				setError(&results[i], item.Path, err)
				return
			}
			results[i].Result = res
		}(i, item)
	}

	wg.Wait()
	return results
}

func setError(r *interfaces.FileResult, path string, err error) {
	r.Error = wrapItemErr(path, err)
	r.ErrorMsg = err.Error()
}
