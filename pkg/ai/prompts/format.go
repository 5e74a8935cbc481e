// Package prompts holds the instructions sent to the formatting model.
package prompts

import (
	"fmt"
	"strings"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

const formatSystemPrompt = `You are an expert code formatter. Always return only the formatted code without any explanations or markdown formatting.`

// Refactor instruction lines, emitted only for enabled toggles.
const (
	RemoveUnusedImportsInstruction = "- Remove unused imports"
	SimplifyConditionsInstruction  = "- Simplify conditions"
	ExtractFunctionsInstruction    = "- Extract functions where appropriate"
)

// FormatSystemPrompt returns the fixed system directive for formatting.
func FormatSystemPrompt() string {
	return formatSystemPrompt
}

// FormatPrompt builds the user prompt for a formatting request.
// The request must already be validated.
func FormatPrompt(req interfaces.FormatRequest) string {
	cfg := req.Config

	unit := "tabs"
	if cfg.TabOrSpaces == interfaces.IndentSpaces {
		unit = "spaces"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Format and optimize the following %s code according to these specifications:\n\n", req.Language)
	fmt.Fprintf(&b, "- Indent size: %d %s\n", cfg.IndentSize, unit)
	fmt.Fprintf(&b, "- Max line width: %d characters\n", cfg.MaxLineWidth)
	fmt.Fprintf(&b, "- Style guide: %s\n", cfg.StyleGuide)
	fmt.Fprintf(&b, "- Preserve comments: %t\n", cfg.PreserveComments)
	fmt.Fprintf(&b, "- Variable naming: %s\n", cfg.VariableNaming)

	if cfg.RefactorOptions.RemoveUnusedImports {
		b.WriteString(RemoveUnusedImportsInstruction + "\n")
	}
	if cfg.RefactorOptions.SimplifyConditions {
		b.WriteString(SimplifyConditionsInstruction + "\n")
	}
	if cfg.RefactorOptions.ExtractFunctions {
		b.WriteString(ExtractFunctionsInstruction + "\n")
	}

	b.WriteString("\nProvide ONLY the formatted code. No explanations, no additional text.\n\n")
	b.WriteString("Code to format:\n")
	fmt.Fprintf(&b, "```%s\n%s\n```", req.Language, req.Code)

	return b.String()
}

// Build returns the system directive and user prompt for a request.
func Build(req interfaces.FormatRequest) (systemDirective, userPrompt string) {
	return FormatSystemPrompt(), FormatPrompt(req)
}
