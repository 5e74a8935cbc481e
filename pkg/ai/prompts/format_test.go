package prompts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

func TestFormatSystemPrompt_ForbidsProseAndFences(t *testing.T) {
	sys := FormatSystemPrompt()
	for _, want := range []string{"expert code formatter", "only the formatted code", "markdown"} {
		if !strings.Contains(sys, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestFormatPrompt_EmbedsConfig(t *testing.T) {
	req := interfaces.FormatRequest{
		Code:     "const x=1",
		Language: "typescript",
		Config: interfaces.FormatConfig{
			IndentSize:       4,
			MaxLineWidth:     120,
			TabOrSpaces:      interfaces.IndentSpaces,
			PreserveComments: false,
			VariableNaming:   interfaces.NamingSnakeCase,
			StyleGuide:       interfaces.StyleAirbnb,
		},
	}

	prompt := FormatPrompt(req)

	for _, want := range []string{
		"following typescript code",
		"- Indent size: 4 spaces",
		"- Max line width: 120 characters",
		"- Style guide: airbnb",
		"- Preserve comments: false",
		"- Variable naming: snake_case",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\n%s", want, prompt)
		}
	}
}

func TestFormatPrompt_TabUnit(t *testing.T) {
	cfg := interfaces.DefaultFormatConfig()
	cfg.TabOrSpaces = interfaces.IndentTab
	cfg.IndentSize = 8

	prompt := FormatPrompt(interfaces.FormatRequest{Code: "x", Language: "go", Config: cfg})
	if !strings.Contains(prompt, "- Indent size: 8 tabs") {
		t.Errorf("expected tab unit in prompt:\n%s", prompt)
	}
}

func TestFormatPrompt_CodeFencedVerbatim(t *testing.T) {
	codes := []string{
		"foo();",
		"def f():\n    return 1\n",
		"  leading and trailing  ",
		"line with ``` inside",
	}
	configs := []interfaces.FormatConfig{
		interfaces.DefaultFormatConfig(),
		{IndentSize: 8, MaxLineWidth: 150, TabOrSpaces: interfaces.IndentTab, VariableNaming: interfaces.NamingPascalCase, StyleGuide: interfaces.StyleCustom,
			RefactorOptions: interfaces.RefactorOptions{RemoveUnusedImports: true, SimplifyConditions: true, ExtractFunctions: true}},
	}

	for _, code := range codes {
		for i, cfg := range configs {
			t.Run(fmt.Sprintf("%q/%d", code, i), func(t *testing.T) {
				prompt := FormatPrompt(interfaces.FormatRequest{Code: code, Language: "python", Config: cfg})
				want := "```python\n" + code + "\n```"
				if !strings.HasSuffix(prompt, want) {
					t.Errorf("prompt does not end with fenced code block %q:\n%s", want, prompt)
				}
			})
		}
	}
}

func TestFormatPrompt_RefactorToggles(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		opts := interfaces.RefactorOptions{
			RemoveUnusedImports: mask&1 != 0,
			SimplifyConditions:  mask&2 != 0,
			ExtractFunctions:    mask&4 != 0,
		}
		t.Run(fmt.Sprintf("mask=%03b", mask), func(t *testing.T) {
			cfg := interfaces.DefaultFormatConfig()
			cfg.RefactorOptions = opts
			prompt := FormatPrompt(interfaces.FormatRequest{Code: "x := 1", Language: "go", Config: cfg})

			checks := []struct {
				line    string
				enabled bool
			}{
				{RemoveUnusedImportsInstruction, opts.RemoveUnusedImports},
				{SimplifyConditionsInstruction, opts.SimplifyConditions},
				{ExtractFunctionsInstruction, opts.ExtractFunctions},
			}
			for _, c := range checks {
				if got := strings.Contains(prompt, c.line); got != c.enabled {
					t.Errorf("line %q present=%v, want %v", c.line, got, c.enabled)
				}
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	req := interfaces.FormatRequest{Code: "a", Language: "go", Config: interfaces.DefaultFormatConfig()}
	sys1, user1 := Build(req)
	sys2, user2 := Build(req)
	if sys1 != sys2 || user1 != user2 {
		t.Error("Build is not deterministic")
	}
	if sys1 != FormatSystemPrompt() {
		t.Error("Build returned unexpected system directive")
	}
}
