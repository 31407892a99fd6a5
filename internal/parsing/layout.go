// Package parsing turns extracted resume text into the canonical structured
// record, through a deterministic regex pipeline, a Gemini-backed parser, or
// a hybrid of the two with a defined fallback contract.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// shortLineLen is the length under which a line counts as "short".
	// Column layouts fragment text into many short lines.
	shortLineLen = 20

	// twoColumnRatio and complexRatio are the short-line proportions that
	// signal a column layout and a complex/graphical layout respectively.
	twoColumnRatio = 0.4
	complexRatio   = 0.6
)

// DetectLayout classifies text as single-column, two-column, or complex from
// the proportion of short lines. This is a heuristic consumed only as a
// formatting-score weight, never as a hard gate.
func DetectLayout(text string) types.LayoutType {
	var total, short int
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		total++
		if len(line) < shortLineLen {
			short++
		}
	}
	if total == 0 {
		return types.LayoutUnknown
	}

	ratio := float64(short) / float64(total)
	switch {
	case ratio > complexRatio:
		return types.LayoutComplex
	case ratio > twoColumnRatio:
		return types.LayoutTwoColumn
	default:
		return types.LayoutSingleColumn
	}
}

// ReflowTwoColumn makes a best-effort pass at linearizing two-column text by
// pairing consecutive short lines back into one. Extraction interleaves the
// columns line by line, so this recovers readability, not exact order.
func ReflowTwoColumn(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			out = append(out, "")
			i++
			continue
		}
		if len(line) < shortLineLen && i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" && len(next) < shortLineLen {
				out = append(out, line+" "+next)
				i += 2
				continue
			}
		}
		out = append(out, line)
		i++
	}
	return strings.Join(out, "\n")
}
