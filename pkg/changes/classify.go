// Package changes compares original and formatted code line by line.
package changes

import (
	"fmt"
	"strings"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

// Mode selects how lines are paired before counting changes.
type Mode string

const (
	// ModePositional pairs line i of the original with line i of the
	// formatted text. An inserted line near the top shows up as a run of
	// modifications. This is the default and the compatible behaviour.
	ModePositional Mode = "positional"

	// ModeAligned pairs lines along a longest-common-subsequence alignment.
	ModeAligned Mode = "aligned"
)

// ParseMode validates a mode name. The empty string selects ModePositional.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModePositional:
		return ModePositional, nil
	case ModeAligned:
		return ModeAligned, nil
	default:
		return "", fmt.Errorf("changes: unknown diff mode %q (want %s or %s)", s, ModePositional, ModeAligned)
	}
}

// Classifier counts changes in the configured mode.
type Classifier struct {
	mode Mode
}

// NewClassifier creates a classifier for the given mode.
func NewClassifier(mode Mode) *Classifier {
	if mode == "" {
		mode = ModePositional
	}
	return &Classifier{mode: mode}
}

// Mode returns the classifier's pairing mode.
func (c *Classifier) Mode() Mode {
	return c.mode
}

// Classify counts changes between original and formatted.
func (c *Classifier) Classify(original, formatted string) interfaces.ChangeStats {
	if c.mode == ModeAligned {
		return ClassifyAligned(original, formatted)
	}
	return Classify(original, formatted)
}

// Classify compares original and formatted by line index.
//
// Both inputs are split on "\n". For every index up to the longer of the two,
// a line present only in formatted is an addition, a line present only in
// original is a deletion, and two present lines that differ are a
// modification.
func Classify(original, formatted string) interfaces.ChangeStats {
	orig := strings.Split(original, "\n")
	fmtd := strings.Split(formatted, "\n")

	var stats interfaces.ChangeStats
	n := max(len(orig), len(fmtd))
	for i := range n {
		hasOrig := i < len(orig)
		hasFmt := i < len(fmtd)

		switch {
		case !hasOrig && hasFmt:
			stats.Additions++
		case hasOrig && !hasFmt:
			stats.Deletions++
		case orig[i] != fmtd[i]:
			stats.Modifications++
		}
	}
	return stats
}
