package parsing

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textutil"
)

const (
	// maxSkills caps the extracted skill list.
	maxSkills = 50
	// minSkillLen and maxSkillLen bound a single skill entry.
	minSkillLen = 2
	maxSkillLen = 49
	// maxSeparatedWords is the word limit for a line to be treated as a
	// separator-delimited skill list rather than prose.
	maxSeparatedWords = 5
)

// ExtractSkills pulls a flat skill list from text. Bullet-delimited lines are
// preferred; when no bullets exist, short comma- or pipe-separated lines are
// split instead. Entries are deduplicated case-insensitively preserving first
// occurrence, bounded to 2-49 characters, and capped at 50.
func ExtractSkills(text string) []string {
	var candidates []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, textutil.Bullet) || strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			entry := strings.TrimSpace(strings.TrimLeft(line, textutil.Bullet+"-* "))
			// A bulleted line may itself hold a comma-separated list.
			if strings.Contains(entry, ",") {
				candidates = append(candidates, splitList(entry, ",")...)
			} else {
				candidates = append(candidates, entry)
			}
		}
	}

	if len(candidates) == 0 {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			sep := ""
			switch {
			case strings.Contains(line, "|"):
				sep = "|"
			case strings.Contains(line, ","):
				sep = ","
			default:
				continue
			}
			// Only short fragments qualify; long comma-laden lines are prose.
			if allFragmentsShort(line, sep) {
				candidates = append(candidates, splitList(line, sep)...)
			}
		}
	}

	return dedupeSkills(candidates)
}

// NormalizeSkillGroups converts any skill representation (flat list, single
// category, multiple categories) into the canonical category map with
// deduplicated non-empty entries. This runs exactly once at the parser
// boundary; downstream code never re-branches on representation.
func NormalizeSkillGroups(groups map[string][]string, flat []string) map[string][]string {
	out := make(map[string][]string)
	for category, items := range groups {
		category = strings.TrimSpace(category)
		if category == "" {
			category = "skills"
		}
		deduped := dedupeSkills(items)
		if len(deduped) > 0 {
			out[category] = deduped
		}
	}
	if len(flat) > 0 {
		deduped := dedupeSkills(flat)
		if len(deduped) > 0 {
			out["skills"] = append(out["skills"], deduped...)
			out["skills"] = dedupeSkills(out["skills"])
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// splitList splits on the separator, trimming each fragment.
func splitList(line, sep string) []string {
	parts := strings.Split(line, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allFragmentsShort reports whether every separated fragment stays within the
// word limit for a skill entry.
func allFragmentsShort(line, sep string) bool {
	for _, p := range strings.Split(line, sep) {
		if len(strings.Fields(p)) > maxSeparatedWords {
			return false
		}
	}
	return true
}

// dedupeSkills filters by length, removes case-insensitive duplicates
// preserving first-occurrence order, and applies the cap.
func dedupeSkills(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.Trim(strings.TrimSpace(item), ":;.")
		if len(item) < minSkillLen || len(item) > maxSkillLen {
			continue
		}
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
		if len(out) >= maxSkills {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
