package report

import (
	"fmt"
	"io"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

// MarkdownFormatter writes a report as Markdown suitable for PR comments.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a Markdown report formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the report as Markdown to the given writer.
func (f *MarkdownFormatter) Format(w io.Writer, report *interfaces.Report) error {
	fmt.Fprintf(w, "# fmtai Format Report %s\n\n", statusBadge(report))
	f.writeTable(w, report)
	f.writeFailures(w, report)

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "*%s | Report ID: %s | Generated: %s*\n",
		report.Summary, report.ID, report.Timestamp.Format("2006-01-02 15:04:05"))
	return nil
}

func (f *MarkdownFormatter) writeTable(w io.Writer, report *interfaces.Report) {
	fmt.Fprintln(w, "| File | Language | Additions | Deletions | Modifications |")
	fmt.Fprintln(w, "|------|----------|-----------|-----------|---------------|")
	for _, file := range report.Files {
		if file.Result == nil {
			fmt.Fprintf(w, "| `%s` | %s | - | - | - |\n", displayName(file), file.Language)
			continue
		}
		c := file.Result.Changes
		fmt.Fprintf(w, "| `%s` | %s | %d | %d | %d |\n",
			displayName(file), file.Language, c.Additions, c.Deletions, c.Modifications)
	}
	t := report.Totals
	fmt.Fprintf(w, "| **Total** | | **%d** | **%d** | **%d** |\n\n", t.Additions, t.Deletions, t.Modifications)
}

func (f *MarkdownFormatter) writeFailures(w io.Writer, report *interfaces.Report) {
	if report.Failed == 0 {
		return
	}
	fmt.Fprintf(w, "## Failures (%d)\n\n", report.Failed)
	for _, file := range report.Files {
		if file.Error == nil {
			continue
		}
		fmt.Fprintf(w, "- `%s`: %s\n", displayName(file), file.ErrorMsg)
	}
	fmt.Fprintln(w)
}

// statusBadge returns a text badge for the run outcome.
func statusBadge(r *interfaces.Report) string {
	switch {
	case r.Failed > 0:
		return "🔴"
	case r.Changed > 0:
		return "🟡"
	default:
		return "🟢"
	}
}
