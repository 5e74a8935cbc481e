package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

func sampleFiles() []interfaces.FileResult {
	return []interfaces.FileResult{
		{
			Path:     "src/app.js",
			Language: "javascript",
			Result: &interfaces.FormatResult{
				Original:  "a\nb",
				Formatted: "a\nc\nd",
				Changes:   interfaces.ChangeStats{Additions: 1, Modifications: 1},
			},
		},
		{
			Path:     "main.go",
			Language: "go",
			Result:   &interfaces.FormatResult{Original: "x", Formatted: "x"},
		},
		{
			Path:     "broken.py",
			Language: "python",
			Error:    errors.New("broken.py: ai: upstream error (HTTP 500): boom"),
			ErrorMsg: "ai: upstream error (HTTP 500): boom",
		},
	}
}

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	gen.now = func() time.Time { return fixed }

	rpt := gen.Generate(sampleFiles(), 2*time.Second)

	if !strings.HasPrefix(rpt.ID, "fmt-") {
		t.Errorf("unexpected report ID: %s", rpt.ID)
	}
	if !rpt.Timestamp.Equal(fixed) {
		t.Errorf("unexpected timestamp: %v", rpt.Timestamp)
	}
	if rpt.Changed != 1 || rpt.Failed != 1 {
		t.Errorf("changed=%d failed=%d, want 1 and 1", rpt.Changed, rpt.Failed)
	}
	if rpt.Totals != (interfaces.ChangeStats{Additions: 1, Modifications: 1}) {
		t.Errorf("unexpected totals: %+v", rpt.Totals)
	}
	want := "1 of 3 files reformatted (+1 -0 ~1 lines), 1 failed"
	if rpt.Summary != want {
		t.Errorf("summary = %q, want %q", rpt.Summary, want)
	}
}

func TestGenerator_Generate_Empty(t *testing.T) {
	rpt := NewGenerator().Generate(nil, 0)
	if rpt.Summary != "0 of 0 files reformatted (+0 -0 ~0 lines)" {
		t.Errorf("unexpected summary: %q", rpt.Summary)
	}
}

func TestJSONFormatter(t *testing.T) {
	rpt := NewGenerator().Generate(sampleFiles(), time.Second)

	var buf bytes.Buffer
	if err := NewJSONFormatter().Format(&buf, rpt); err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	var decoded struct {
		Files []struct {
			Path   string `json:"path"`
			Error  string `json:"error"`
			Result *struct {
				Changes interfaces.ChangeStats `json:"changes"`
			} `json:"result"`
		} `json:"files"`
		Totals interfaces.ChangeStats `json:"totals"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(decoded.Files))
	}
	if decoded.Files[2].Error == "" || decoded.Files[2].Result != nil {
		t.Errorf("failed file not encoded as error: %+v", decoded.Files[2])
	}
	if decoded.Files[0].Result.Changes.Additions != 1 {
		t.Errorf("unexpected changes: %+v", decoded.Files[0].Result.Changes)
	}
}

func TestTerminalFormatter(t *testing.T) {
	rpt := NewGenerator().Generate(sampleFiles(), time.Second)

	var buf bytes.Buffer
	if err := NewTerminalFormatter().Format(&buf, rpt); err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"src/app.js", "main.go", "(no changes)", "broken.py", "boom", rpt.Summary, rpt.ID} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q", want)
		}
	}
}

func TestMarkdownFormatter(t *testing.T) {
	rpt := NewGenerator().Generate(sampleFiles(), time.Second)

	var buf bytes.Buffer
	if err := NewMarkdownFormatter().Format(&buf, rpt); err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# fmtai Format Report 🔴",
		"| `src/app.js` | javascript | 1 | 0 | 1 |",
		"| `broken.py` | python | - | - | - |",
		"## Failures (1)",
		"| **Total** | | **1** | **0** | **1** |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\n%s", want, out)
		}
	}
}

func TestDisplayName_Stdin(t *testing.T) {
	if got := displayName(interfaces.FileResult{Language: "go"}); got != "<stdin> (go)" {
		t.Errorf("unexpected display name %q", got)
	}
}
