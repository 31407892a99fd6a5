package scoring

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// MaxSectionScore bounds the sections analyzer. Raw points (3 required at 9,
// 3 recommended at 4) sum to 39 and are clamped.
const MaxSectionScore = 35.0

const (
	requiredSectionPoints    = 9.0
	recommendedSectionPoints = 4.0
)

// RequiredSections are the sections an ATS-ready resume cannot omit.
var RequiredSections = []string{"experience", "education", "skills"}

// recommendedSections round out a strong resume but are not mandatory.
var recommendedSections = []string{"summary", "projects", "certifications"}

// sectionSynonyms lists header wordings that count as fuzzy presence of a
// section when the structured record carries nothing for it.
var sectionSynonyms = map[string][]string{
	"experience":     {"experience", "employment", "work history", "career history"},
	"education":      {"education", "academic"},
	"skills":         {"skills", "technologies", "competencies", "tech stack", "expertise"},
	"summary":        {"summary", "objective", "profile", "about"},
	"projects":       {"projects"},
	"certifications": {"certifications", "certificates", "licenses"},
}

// SectionResult carries the sections sub-score and the missing-section lists
// used for prioritized suggestions.
type SectionResult struct {
	Score              float64
	Present            []string
	MissingRequired    []string
	MissingRecommended []string
}

// AnalyzeSections scores section presence: 9 points per required section,
// 4 per recommended, clamped to 35. A section counts as present when the
// structured record holds data for it, the parser detected it by name, or a
// synonym header appears in the raw text. Adding a missing required section
// never lowers the score.
func AnalyzeSections(record *types.ParsedRecord) SectionResult {
	var result SectionResult
	if record == nil {
		result.MissingRequired = append(result.MissingRequired, RequiredSections...)
		result.MissingRecommended = append(result.MissingRecommended, recommendedSections...)
		return result
	}

	for _, name := range RequiredSections {
		if hasSection(record, name) {
			result.Present = append(result.Present, name)
			result.Score += requiredSectionPoints
		} else {
			result.MissingRequired = append(result.MissingRequired, name)
		}
	}
	for _, name := range recommendedSections {
		if hasSection(record, name) {
			result.Present = append(result.Present, name)
			result.Score += recommendedSectionPoints
		} else {
			result.MissingRecommended = append(result.MissingRecommended, name)
		}
	}

	if result.Score > MaxSectionScore {
		result.Score = MaxSectionScore
	}
	return result
}

func hasSection(record *types.ParsedRecord, name string) bool {
	switch name {
	case "experience":
		if len(record.Experience) > 0 {
			return true
		}
	case "education":
		if len(record.Education) > 0 {
			return true
		}
	case "skills":
		if len(record.Skills) > 0 {
			return true
		}
	case "summary":
		if record.ProfessionalSummary != "" {
			return true
		}
	case "projects":
		if len(record.Projects) > 0 {
			return true
		}
	case "certifications":
		if len(record.Certifications) > 0 {
			return true
		}
	}

	if _, ok := record.Sections[name]; ok {
		return true
	}

	lower := strings.ToLower(record.ParsedText)
	for _, syn := range sectionSynonyms[name] {
		if strings.Contains(lower, syn) {
			return true
		}
	}
	return false
}
