package changes

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified renders a unified diff between original and formatted for name.
// It returns "" when the two are identical.
func Unified(name, original, formatted string, context int) (string, error) {
	if context < 0 {
		context = 3
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(formatted),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  context,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("changes: rendering diff for %s: %w", name, err)
	}
	return out, nil
}
