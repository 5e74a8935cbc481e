package changes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

func stats(add, del, mod int) interfaces.ChangeStats {
	return interfaces.ChangeStats{Additions: add, Deletions: del, Modifications: mod}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		formatted string
		want      interfaces.ChangeStats
	}{
		{"appended line", "a\nb\nc", "a\nb\nc\nd", stats(1, 0, 0)},
		{"changed line", "a\nb\nc", "a\nx\nc", stats(0, 0, 1)},
		{"dropped line", "a\nb\nc", "a\nb", stats(0, 1, 0)},
		{"insert at top cascades", "a\nb\nc", "x\na\nb\nc", stats(1, 0, 3)},
		{"empty original", "", "a\nb", stats(1, 0, 1)},
		{"empty formatted", "a\nb", "", stats(0, 1, 1)},
		{"both empty", "", "", stats(0, 0, 0)},
		{"trailing newline added", "a", "a\n", stats(1, 0, 0)},
		{"blank lines are lines", "a\n\nb", "a\nb", stats(0, 1, 1)},
		{"whitespace matters", "if(x){\n  y()\n}", "if (x) {\n    y()\n}", stats(0, 0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.original, tt.formatted))
		})
	}
}

func TestClassify_IdenticalInputs(t *testing.T) {
	for _, s := range []string{"", "\n", "a", "a\nb\nc", "\n\n\n", "func main() {\n\tfmt.Println(1)\n}\n"} {
		assert.Equal(t, interfaces.ChangeStats{}, Classify(s, s), "input %q", s)
		assert.Equal(t, interfaces.ChangeStats{}, ClassifyAligned(s, s), "input %q", s)
	}
}

func TestClassifyAligned(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		formatted string
		want      interfaces.ChangeStats
	}{
		{"appended line", "a\nb\nc", "a\nb\nc\nd", stats(1, 0, 0)},
		{"changed line", "a\nb\nc", "a\nx\nc", stats(0, 0, 1)},
		{"dropped line", "a\nb\nc", "a\nb", stats(0, 1, 0)},
		{"insert at top is one addition", "a\nb\nc", "x\na\nb\nc", stats(1, 0, 0)},
		{"removed from middle", "a\nb\nc\nd", "a\nd", stats(0, 2, 0)},
		{"replace two with three", "a\nb\nc\nz", "a\nx\ny\nw\nz", stats(1, 0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAligned(tt.original, tt.formatted))
		})
	}
}

func TestClassifier_Mode(t *testing.T) {
	orig, fmtd := "a\nb\nc", "x\na\nb\nc"

	assert.Equal(t, ModePositional, NewClassifier("").Mode())
	assert.Equal(t, Classify(orig, fmtd), NewClassifier(ModePositional).Classify(orig, fmtd))
	assert.Equal(t, ClassifyAligned(orig, fmtd), NewClassifier(ModeAligned).Classify(orig, fmtd))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModePositional, m)

	m, err = ParseMode("aligned")
	require.NoError(t, err)
	assert.Equal(t, ModeAligned, m)

	_, err = ParseMode("lcs")
	assert.Error(t, err)
}

func TestUnified(t *testing.T) {
	out, err := Unified("main.js", "a\nb\nc\n", "a\nx\nc\n", 3)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "--- a/main.js\n+++ b/main.js\n"), out)
	assert.Contains(t, out, "-b\n")
	assert.Contains(t, out, "+x\n")

	out, err = Unified("main.js", "same\n", "same\n", 3)
	require.NoError(t, err)
	assert.Empty(t, out)
}
