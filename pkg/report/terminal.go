package report

import (
	"fmt"
	"io"
	"time"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// TerminalFormatter writes a color-coded report to a terminal.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a terminal report formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// Format writes the report to the given writer using ANSI colors.
func (f *TerminalFormatter) Format(w io.Writer, report *interfaces.Report) error {
	f.writeHeader(w)
	f.writeFiles(w, report)
	f.writeFooter(w, report)
	return nil
}

func (f *TerminalFormatter) writeHeader(w io.Writer) {
	fmt.Fprintf(w, "\n%s%s══════════════════════════════════════════%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s  fmtai Format Report%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s══════════════════════════════════════════%s\n\n", colorBold, colorCyan, colorReset)
}

func (f *TerminalFormatter) writeFiles(w io.Writer, report *interfaces.Report) {
	for _, file := range report.Files {
		name := displayName(file)
		switch {
		case file.Error != nil || file.Result == nil:
			fmt.Fprintf(w, "  %s✗ %s%s\n", colorRed, name, colorReset)
			fmt.Fprintf(w, "      %s%s%s\n", colorDim, file.ErrorMsg, colorReset)
		case !file.Result.HasChanges():
			fmt.Fprintf(w, "  %s= %s%s %s(no changes)%s\n", colorGreen, name, colorReset, colorDim, colorReset)
		default:
			c := file.Result.Changes
			fmt.Fprintf(w, "  %s~ %s%s  %s+%d%s %s-%d%s %s~%d%s\n",
				colorYellow, name, colorReset,
				colorGreen, c.Additions, colorReset,
				colorRed, c.Deletions, colorReset,
				colorYellow, c.Modifications, colorReset)
		}
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeFooter(w io.Writer, report *interfaces.Report) {
	fmt.Fprintf(w, "  %s%s%s\n", colorBold, report.Summary, colorReset)
	fmt.Fprintf(w, "  %s%s──────────────────────────────────────────%s\n", colorDim, colorCyan, colorReset)
	fmt.Fprintf(w, "  %sReport: %s | Duration: %s%s\n",
		colorDim, report.ID, report.Duration.Round(time.Millisecond), colorReset)
	fmt.Fprintf(w, "  %sGenerated: %s%s\n\n",
		colorDim, report.Timestamp.Format("2006-01-02 15:04:05"), colorReset)
}

// displayName labels a file result, falling back to its language for stdin.
func displayName(f interfaces.FileResult) string {
	if f.Path != "" {
		return f.Path
	}
	return "<stdin> (" + f.Language + ")"
}
