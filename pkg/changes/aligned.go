package changes

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

// ClassifyAligned counts changes along a line-level LCS alignment.
//
// Within each run of differing lines, paired deletions and insertions count as
// modifications; the surplus on either side counts as deletions or additions.
// Line splitting matches Classify, so ClassifyAligned(a, a) is zero too.
func ClassifyAligned(original, formatted string) interfaces.ChangeStats {
	dmp := diffmatchpatch.New()

	// The sentinel newline gives every line, including the last, a terminator,
	// so "c" and "c\n" compare equal in the line hash.
	a, b, lines := dmp.DiffLinesToChars(original+"\n", formatted+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var stats interfaces.ChangeStats
	var deleted, inserted int

	flush := func() {
		paired := min(deleted, inserted)
		stats.Modifications += paired
		stats.Deletions += deleted - paired
		stats.Additions += inserted - paired
		deleted, inserted = 0, 0
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			deleted += countLines(d.Text)
		case diffmatchpatch.DiffInsert:
			inserted += countLines(d.Text)
		case diffmatchpatch.DiffEqual:
			flush()
		}
	}
	flush()

	return stats
}

// countLines counts newline-terminated lines in a diff chunk.
func countLines(s string) int {
	n := strings.Count(s, "\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
