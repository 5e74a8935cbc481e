package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/toyinlola/fmtai/pkg/ai"
	"github.com/toyinlola/fmtai/pkg/ai/providers"
	"github.com/toyinlola/fmtai/pkg/changes"
	"github.com/toyinlola/fmtai/pkg/cli"
	"github.com/toyinlola/fmtai/pkg/formatter"
	"github.com/toyinlola/fmtai/pkg/interfaces"
	"github.com/toyinlola/fmtai/pkg/report"
)

// errWouldChange is returned by --check when any input would be reformatted.
var errWouldChange = errors.New("format: some inputs are not formatted")

var (
	language  string
	diffMode  string
	showDiff  bool
	writeBack bool
	check     bool
)

// formatFlags holds FormatConfig overrides; only flags the user set are applied.
var formatFlags = struct {
	indent           int
	width            int
	tabs             bool
	preserveComments bool
	naming           string
	style            string
	removeImports    bool
	simplify         bool
	extract          bool
}{}

var formatCmd = &cobra.Command{
	Use:   "format [file...]",
	Short: "Reformat source files with the configured model",
	Long: `Format sends each file to the chat-completion model with the configured
style options and reports per-file line changes.

Format files and print a report:
  fmtai format src/app.js src/util.ts

Show what would change without touching files:
  fmtai format --diff src/app.js

Rewrite files in place:
  fmtai format --write src/*.py

Read from stdin and print the formatted code:
  cat main.go | fmtai format --lang go`,
	RunE: runFormat,
}

func init() {
	fs := formatCmd.Flags()
	fs.StringVarP(&language, "lang", "l", "", "language identifier (default: inferred from file extension)")
	fs.StringVar(&diffMode, "diff-mode", "", "change classification: positional|aligned (default from config)")
	fs.BoolVarP(&showDiff, "diff", "d", false, "print a unified diff for each changed file")
	fs.BoolVarP(&writeBack, "write", "w", false, "write formatted code back to the source files")
	fs.BoolVar(&check, "check", false, "exit non-zero if any file would change")

	fs.IntVar(&formatFlags.indent, "indent", 2, "indent size (2|4|8)")
	fs.IntVar(&formatFlags.width, "width", 80, "max line width (80|100|120|150)")
	fs.BoolVar(&formatFlags.tabs, "tabs", false, "indent with tabs instead of spaces")
	fs.BoolVar(&formatFlags.preserveComments, "preserve-comments", true, "keep comments")
	fs.StringVar(&formatFlags.naming, "naming", "camelCase", "variable naming (camelCase|snake_case|PascalCase)")
	fs.StringVar(&formatFlags.style, "style", "prettier", "style guide (prettier|standard|airbnb|custom)")
	fs.BoolVar(&formatFlags.removeImports, "remove-unused-imports", false, "ask the model to remove unused imports")
	fs.BoolVar(&formatFlags.simplify, "simplify-conditions", false, "ask the model to simplify conditions")
	fs.BoolVar(&formatFlags.extract, "extract-functions", false, "ask the model to extract functions where appropriate")

	rootCmd.AddCommand(formatCmd)
}

// reportFormatter writes a structured report to a writer.
type reportFormatter interface {
	Format(w io.Writer, report *interfaces.Report) error
}

func runFormat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := appCfg

	fc := cfg.Format
	applyFormatFlags(cmd.Flags(), &fc)
	if err := fc.Validate(); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if diffMode != "" {
		cfg.Diff.Mode = diffMode
	}

	f, err := newFormatter(cfg)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	items, err := collectInputs(cmd.InOrStdin(), args, fc)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}

	start := time.Now()
	results := f.FormatBatch(ctx, items)
	rpt := report.NewGenerator().Generate(results, time.Since(start))

	stdout := cmd.OutOrStdout()

	// stdin mode: the formatted code is the output.
	if len(args) == 0 {
		r := results[0]
		if r.Error != nil {
			return r.Error
		}
		if showDiff {
			return printDiffs(stdout, results, cfg.Diff.Context)
		}
		fmt.Fprintln(stdout, r.Result.Formatted)
		slog.Info("stdin formatted", "summary", rpt.Summary)
		return checkOutcome(rpt)
	}

	if showDiff {
		if err := printDiffs(stdout, results, cfg.Diff.Context); err != nil {
			return err
		}
	}
	if writeBack {
		if err := writeResults(results); err != nil {
			return err
		}
	}

	var w io.Writer = stdout
	if output != "" {
		file, fileErr := os.Create(output)
		if fileErr != nil {
			return fmt.Errorf("format: creating output file: %w", fileErr)
		}
		defer file.Close() // best-effort cleanup
		w = file
	}

	if err := selectFormatter(format).Format(w, rpt); err != nil {
		return fmt.Errorf("format: writing report: %w", err)
	}

	return checkOutcome(rpt)
}

// newFormatter wires the configured provider and classifier.
// A missing API key fails here, before any network attempt.
func newFormatter(cfg *cli.Config) (*formatter.Formatter, error) {
	if cfg.AI.APIKey() == "" {
		return nil, &ai.ConfigurationError{
			Msg: fmt.Sprintf("set %s to the chat-completion API key", cfg.AI.APIKeyEnv),
			Err: ai.ErrMissingAPIKey,
		}
	}
	return buildFormatter(cfg)
}

func buildFormatter(cfg *cli.Config) (*formatter.Formatter, error) {
	mode, err := changes.ParseMode(cfg.Diff.Mode)
	if err != nil {
		return nil, err
	}

	provider := providers.NewOpenAIProvider(cfg.AI.ProviderConfig(), cfg.AI.Timeout)
	slog.Debug("provider configured", "endpoint", cfg.AI.Endpoint, "model", cfg.AI.Model, "diff_mode", mode)

	return formatter.New(provider,
		formatter.WithClassifier(changes.NewClassifier(mode)),
		formatter.WithTemperature(cfg.AI.Temperature),
		formatter.WithMaxTokens(cfg.AI.MaxTokens),
		formatter.WithWorkers(cfg.Batch.Workers),
		formatter.WithCache(cfg.Cache.Size),
	), nil
}

// applyFormatFlags overrides fc with every format flag the user set explicitly.
func applyFormatFlags(fs *pflag.FlagSet, fc *interfaces.FormatConfig) {
	if fs.Changed("indent") {
		fc.IndentSize = formatFlags.indent
	}
	if fs.Changed("width") {
		fc.MaxLineWidth = formatFlags.width
	}
	if fs.Changed("tabs") {
		fc.TabOrSpaces = interfaces.IndentSpaces
		if formatFlags.tabs {
			fc.TabOrSpaces = interfaces.IndentTab
		}
	}
	if fs.Changed("preserve-comments") {
		fc.PreserveComments = formatFlags.preserveComments
	}
	if fs.Changed("naming") {
		fc.VariableNaming = interfaces.NamingConvention(formatFlags.naming)
	}
	if fs.Changed("style") {
		fc.StyleGuide = interfaces.StyleGuide(formatFlags.style)
	}
	if fs.Changed("remove-unused-imports") {
		fc.RefactorOptions.RemoveUnusedImports = formatFlags.removeImports
	}
	if fs.Changed("simplify-conditions") {
		fc.RefactorOptions.SimplifyConditions = formatFlags.simplify
	}
	if fs.Changed("extract-functions") {
		fc.RefactorOptions.ExtractFunctions = formatFlags.extract
	}
}

// collectInputs builds batch items from file arguments, or from stdin when
// there are none.
func collectInputs(stdin io.Reader, paths []string, fc interfaces.FormatConfig) ([]formatter.BatchItem, error) {
	if len(paths) == 0 {
		if language == "" {
			return nil, fmt.Errorf("reading stdin requires --lang")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []formatter.BatchItem{{
			Request: interfaces.FormatRequest{Code: string(data), Language: language, Config: fc},
		}}, nil
	}

	items := make([]formatter.BatchItem, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		lang := language
		if lang == "" {
			lang = interfaces.LanguageForPath(p)
		}
		if lang == "" {
			slog.Warn("could not infer language, pass --lang", "path", p)
		}
		items = append(items, formatter.BatchItem{
			Path:    p,
			Request: interfaces.FormatRequest{Code: string(data), Language: lang, Config: fc},
		})
	}
	return items, nil
}

// printDiffs writes a unified diff for every changed result.
func printDiffs(w io.Writer, results []interfaces.FileResult, context int) error {
	for _, r := range results {
		if r.Result == nil || !r.Result.HasChanges() {
			continue
		}
		name := r.Path
		if name == "" {
			name = "stdin" + interfaces.ExtensionForLanguage(r.Language)
		}
		d, err := changes.Unified(name, r.Result.Original, r.Result.Formatted, context)
		if err != nil {
			return err
		}
		fmt.Fprint(w, d)
		if !strings.HasSuffix(d, "\n") {
			fmt.Fprintln(w)
		}
	}
	return nil
}

// writeResults overwrites each changed source file, keeping its permissions.
func writeResults(results []interfaces.FileResult) error {
	for _, r := range results {
		if r.Result == nil || !r.Result.HasChanges() || r.Path == "" {
			continue
		}
		info, err := os.Stat(r.Path)
		if err != nil {
			return fmt.Errorf("format: %w", err)
		}
		if err := os.WriteFile(r.Path, []byte(r.Result.Formatted), info.Mode().Perm()); err != nil {
			return fmt.Errorf("format: writing %s: %w", r.Path, err)
		}
		slog.Info("file rewritten", "path", r.Path)
	}
	return nil
}

// checkOutcome maps failures and --check to the command's error.
func checkOutcome(rpt *interfaces.Report) error {
	if rpt.Failed > 0 {
		return fmt.Errorf("format: %d of %d inputs failed", rpt.Failed, len(rpt.Files))
	}
	if check && rpt.Changed > 0 {
		return errWouldChange
	}
	return nil
}

// selectFormatter returns the appropriate report formatter for the given format name.
func selectFormatter(name string) reportFormatter {
	switch name {
	case "json":
		return report.NewJSONFormatter()
	case "markdown":
		return report.NewMarkdownFormatter()
	default:
		return report.NewTerminalFormatter()
	}
}
