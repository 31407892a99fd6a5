package parsing

import (
	"regexp"
	"strings"
)

// HeaderSection is the implicit section holding content that appears before
// the first detected header, typically the name and contact block.
const HeaderSection = "header"

// maxHeaderWords is the word limit for a line to qualify as a section header.
const maxHeaderWords = 5

// sectionPatterns maps canonical section names to the header wordings that
// introduce them. Order matters only for deterministic iteration.
var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"summary", regexp.MustCompile(`(?i)^(professional\s+)?(summary|objective|profile|about\s*me?)\b`)},
	{"experience", regexp.MustCompile(`(?i)^(work\s+|professional\s+|relevant\s+)?(experience|employment(\s+history)?|career\s+history)\b`)},
	{"education", regexp.MustCompile(`(?i)^(education(al)?(\s+background)?|academic(s|\s+background)?)\b`)},
	{"skills", regexp.MustCompile(`(?i)^(technical\s+|core\s+|key\s+)?(skills?|competenc(y|ies)|technologies|tech\s+stack|expertise)\b`)},
	{"projects", regexp.MustCompile(`(?i)^(personal\s+|academic\s+|side\s+|key\s+)?projects?\b`)},
	{"certifications", regexp.MustCompile(`(?i)^(certification|certificate|license)s?\b`)},
	{"awards", regexp.MustCompile(`(?i)^(awards?|honors?|achievements?|accomplishments?)\b`)},
	{"publications", regexp.MustCompile(`(?i)^(publications?|research|papers?)\b`)},
	{"languages", regexp.MustCompile(`(?i)^languages?\b`)},
	{"interests", regexp.MustCompile(`(?i)^(interests?|hobbies)\b`)},
	{"references", regexp.MustCompile(`(?i)^references?\b`)},
	{"contact", regexp.MustCompile(`(?i)^contact(\s+(info(rmation)?|details?))?\b`)},
	{"volunteer", regexp.MustCompile(`(?i)^(volunteer(ing)?(\s+experience)?|community\s+service)\b`)},
	{"leadership", regexp.MustCompile(`(?i)^leadership(\s+experience)?\b`)},
}

// DetectSections segments text into named logical sections in one linear
// pass. A line starts a new section when it is at most five words long and
// matches a known header pattern; everything between two boundaries belongs
// to the preceding header, and content before the first boundary goes to the
// implicit "header" section.
func DetectSections(text string) map[string]string {
	sections := make(map[string]string)
	current := HeaderSection
	var buf []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		buf = buf[:0]
		if content == "" {
			return
		}
		if existing, ok := sections[current]; ok {
			sections[current] = existing + "\n" + content
			return
		}
		sections[current] = content
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if name, ok := matchSectionHeader(trimmed); ok {
			flush()
			current = name
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return sections
}

// matchSectionHeader reports whether the line is a section header and which
// canonical section it introduces.
func matchSectionHeader(line string) (string, bool) {
	if line == "" {
		return "", false
	}
	stripped := strings.Trim(line, "•:-— \t")
	if stripped == "" || len(strings.Fields(stripped)) > maxHeaderWords {
		return "", false
	}
	for _, entry := range sectionPatterns {
		if entry.pattern.MatchString(stripped) {
			return entry.name, true
		}
	}
	return "", false
}
