// Package interfaces defines the shared types and contracts for all fmtai modules.
// This package has ZERO dependencies on any other pkg/ package.
// All cross-module communication goes through types and interfaces defined here.
package interfaces

import (
	"fmt"
	"slices"
	"time"
)

// IndentUnit selects between tab and space indentation.
type IndentUnit string

const (
	IndentTab    IndentUnit = "tab"
	IndentSpaces IndentUnit = "spaces"
)

// NamingConvention is the variable naming style the model is asked to apply.
type NamingConvention string

const (
	NamingCamelCase  NamingConvention = "camelCase"
	NamingSnakeCase  NamingConvention = "snake_case"
	NamingPascalCase NamingConvention = "PascalCase"
)

// StyleGuide names the formatting style guide.
type StyleGuide string

const (
	StylePrettier StyleGuide = "prettier"
	StyleStandard StyleGuide = "standard"
	StyleAirbnb   StyleGuide = "airbnb"
	StyleCustom   StyleGuide = "custom"
)

// Allowed enumerated values for FormatConfig.
var (
	IndentSizes   = []int{2, 4, 8}
	MaxLineWidths = []int{80, 100, 120, 150}
	IndentUnits   = []IndentUnit{IndentTab, IndentSpaces}
	Namings       = []NamingConvention{NamingCamelCase, NamingSnakeCase, NamingPascalCase}
	StyleGuides   = []StyleGuide{StylePrettier, StyleStandard, StyleAirbnb, StyleCustom}
)

// RefactorOptions are optional transformations beyond whitespace formatting.
type RefactorOptions struct {
	RemoveUnusedImports bool `json:"removeUnusedImports" yaml:"remove_unused_imports"`
	SimplifyConditions  bool `json:"simplifyConditions" yaml:"simplify_conditions"`
	ExtractFunctions    bool `json:"extractFunctions" yaml:"extract_functions"`
}

// FormatConfig describes how the code should be formatted.
type FormatConfig struct {
	IndentSize       int              `json:"indentSize" yaml:"indent_size"`
	MaxLineWidth     int              `json:"maxLineWidth" yaml:"max_line_width"`
	TabOrSpaces      IndentUnit       `json:"tabOrSpaces" yaml:"tab_or_spaces"`
	PreserveComments bool             `json:"preserveComments" yaml:"preserve_comments"`
	VariableNaming   NamingConvention `json:"variableNaming" yaml:"variable_naming"`
	RefactorOptions  RefactorOptions  `json:"refactorOptions" yaml:"refactor_options"`
	StyleGuide       StyleGuide       `json:"styleGuide" yaml:"style_guide"`
}

// DefaultFormatConfig returns the configuration used when a caller supplies none.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		IndentSize:       2,
		MaxLineWidth:     80,
		TabOrSpaces:      IndentSpaces,
		PreserveComments: true,
		VariableNaming:   NamingCamelCase,
		StyleGuide:       StylePrettier,
	}
}

// Validate reports the first enumerated field holding an unsupported value.
func (c FormatConfig) Validate() error {
	if !slices.Contains(IndentSizes, c.IndentSize) {
		return fmt.Errorf("indentSize must be one of %v, got %d", IndentSizes, c.IndentSize)
	}
	if !slices.Contains(MaxLineWidths, c.MaxLineWidth) {
		return fmt.Errorf("maxLineWidth must be one of %v, got %d", MaxLineWidths, c.MaxLineWidth)
	}
	if !slices.Contains(IndentUnits, c.TabOrSpaces) {
		return fmt.Errorf("tabOrSpaces must be one of %v, got %q", IndentUnits, c.TabOrSpaces)
	}
	if !slices.Contains(Namings, c.VariableNaming) {
		return fmt.Errorf("variableNaming must be one of %v, got %q", Namings, c.VariableNaming)
	}
	if !slices.Contains(StyleGuides, c.StyleGuide) {
		return fmt.Errorf("styleGuide must be one of %v, got %q", StyleGuides, c.StyleGuide)
	}
	return nil
}

// FormatRequest is a single formatting attempt.
type FormatRequest struct {
	Code     string       `json:"code"`
	Language string       `json:"language"`
	Config   FormatConfig `json:"config"`
}

// ChangeStats counts line changes between original and formatted code.
type ChangeStats struct {
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
	Modifications int `json:"modifications"`
}

// Total returns the sum of all counters.
func (s ChangeStats) Total() int {
	return s.Additions + s.Deletions + s.Modifications
}

// Add accumulates another set of counters.
func (s ChangeStats) Add(o ChangeStats) ChangeStats {
	return ChangeStats{
		Additions:     s.Additions + o.Additions,
		Deletions:     s.Deletions + o.Deletions,
		Modifications: s.Modifications + o.Modifications,
	}
}

// FormatResult is returned once per successful FormatRequest.
type FormatResult struct {
	Formatted string      `json:"formatted"`
	Original  string      `json:"original"`
	Changes   ChangeStats `json:"changes"`
}

// HasChanges reports whether the formatted code differs from the original.
func (r *FormatResult) HasChanges() bool {
	return r.Original != r.Formatted
}

// FileResult is the outcome of formatting one input of a batch.
type FileResult struct {
	Path     string        `json:"path"`
	Language string        `json:"language"`
	Result   *FormatResult `json:"result,omitempty"`
	Error    error         `json:"-"`
	ErrorMsg string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Report is the final output of a fmtai run over one or more inputs.
type Report struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Files     []FileResult  `json:"files"`
	Totals    ChangeStats   `json:"totals"`
	Changed   int           `json:"changed"`
	Failed    int           `json:"failed"`
	Summary   string        `json:"summary"`
	Duration  time.Duration `json:"duration"`
}
