package scoring

import (
	"fmt"
	"strings"
)

// maxSuggestions caps the recommendation list.
const maxSuggestions = 10

// baselineTips are generic best-practice recommendations appended after the
// specific, analyzer-derived ones.
var baselineTips = []string{
	"Tailor keywords to each job description you apply for",
	"Start every bullet with a strong action verb",
	"Quantify accomplishments with numbers, percentages, or dollar amounts",
}

// buildSuggestions assembles recommendations from the analyzer issue lists:
// missing required sections come first, then the rest of the specific
// issues, then baseline tips. The list is deduplicated and capped.
func buildSuggestions(a *localAnalysis) []string {
	var out []string

	for _, name := range a.Sections.MissingRequired {
		out = append(out, fmt.Sprintf("Add the missing %s section; ATS filters frequently reject resumes without one", name))
	}
	for _, name := range a.Sections.MissingRecommended {
		out = append(out, fmt.Sprintf("Consider adding a %s section", name))
	}

	out = append(out, a.Formatting.Issues...)
	out = append(out, a.Readability.Issues...)

	if a.Quantification.Score < MaxQuantificationScore/2 {
		out = append(out, "Back up more achievements with concrete numbers (e.g. \"cut costs by 30%\")")
	}
	if len(a.Keywords.Missing) > 0 {
		kws := a.Keywords.Missing
		if len(kws) > 5 {
			kws = kws[:5]
		}
		out = append(out, "Work these job-description keywords into your resume: "+strings.Join(kws, ", "))
	}

	out = append(out, baselineTips...)

	return dedupeCapped(out, maxSuggestions)
}

func dedupeCapped(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, limit)
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
		if len(out) >= limit {
			break
		}
	}
	return out
}
