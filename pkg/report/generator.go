// Package report summarises a formatting run over one or more inputs.
package report

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

// Generator builds reports from per-file results.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate produces a Report from batch results. elapsed is the wall time of
// the whole run.
func (g *Generator) Generate(files []interfaces.FileResult, elapsed time.Duration) *interfaces.Report {
	rpt := &interfaces.Report{
		ID:        generateID(),
		Timestamp: g.now(),
		Files:     files,
		Duration:  elapsed,
	}

	for _, f := range files {
		if f.Error != nil || f.Result == nil {
			rpt.Failed++
			continue
		}
		rpt.Totals = rpt.Totals.Add(f.Result.Changes)
		if f.Result.HasChanges() {
			rpt.Changed++
		}
	}

	rpt.Summary = buildSummary(rpt)
	return rpt
}

// buildSummary creates a one-line summary of the run.
func buildSummary(r *interfaces.Report) string {
	total := len(r.Files)
	s := fmt.Sprintf("%d of %d files reformatted (+%d -%d ~%d lines)",
		r.Changed, total, r.Totals.Additions, r.Totals.Deletions, r.Totals.Modifications)
	if r.Failed > 0 {
		s += fmt.Sprintf(", %d failed", r.Failed)
	}
	return s
}

// generateID creates a unique report identifier.
func generateID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b) // best-effort; crypto/rand is reliable
	return fmt.Sprintf("fmt-%x", b)
}
