// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// LayoutType classifies the visual layout of an extracted resume.
type LayoutType string

// Layout type values.
const (
	LayoutSingleColumn LayoutType = "single_column"
	LayoutTwoColumn    LayoutType = "two_column"
	LayoutComplex      LayoutType = "complex"
	LayoutUnknown      LayoutType = "unknown"
)

// ParsingMethod identifies which strategy produced a ParsedRecord.
type ParsingMethod string

// Parsing method values.
const (
	ParseMethodGemini          ParsingMethod = "gemini"
	ParseMethodFallbackRegex   ParsingMethod = "fallback_regex"
	ParseMethodLaTeXStructured ParsingMethod = "latex_structured"
	ParseMethodFallbackMinimal ParsingMethod = "fallback_minimal"
)

// DateCurrent is the canonical marker for an ongoing date range. Every other
// normalized date is "YYYY" or "YYYY-MM".
const DateCurrent = "present"

// ContactInfo holds contact fields extracted from the resume header.
type ContactInfo struct {
	Name      string            `json:"name,omitempty"`
	Email     string            `json:"email,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Location  string            `json:"location,omitempty"`
	LinkedIn  string            `json:"linkedin,omitempty"`
	GitHub    string            `json:"github,omitempty"`
	Portfolio string            `json:"portfolio,omitempty"`
	Profiles  map[string]string `json:"profiles,omitempty"` // other profile URLs keyed by host
}

// IsEmpty reports whether no contact field was extracted.
func (c *ContactInfo) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Name == "" && c.Email == "" && c.Phone == "" && c.Location == "" &&
		c.LinkedIn == "" && c.GitHub == "" && c.Portfolio == "" && len(c.Profiles) == 0
}

// Experience represents one job. Multiple bullet points are joined into a
// single newline-delimited description, never split into separate entries.
type Experience struct {
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education represents one education entry.
type Education struct {
	School    string `json:"school,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	Location  string `json:"location,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	GPA       string `json:"gpa,omitempty"`
}

// Project represents one project entry.
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// Certification represents one certification entry.
type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// ParsedRecord is the canonical structured resume. All fields are optional;
// arrays default to empty. Skills is always a map from category to a list of
// distinct non-empty strings, regardless of how the source represented them.
type ParsedRecord struct {
	ContactInfo         *ContactInfo        `json:"contact_info,omitempty"`
	ProfessionalSummary string              `json:"professional_summary,omitempty"`
	Experience          []Experience        `json:"experience,omitempty"`
	Education           []Education         `json:"education,omitempty"`
	Projects            []Project           `json:"projects,omitempty"`
	Skills              map[string][]string `json:"skills,omitempty"`
	Certifications      []Certification     `json:"certifications,omitempty"`
	Achievements        []string            `json:"achievements,omitempty"`
	Awards              []string            `json:"awards,omitempty"`
	Languages           []string            `json:"languages,omitempty"`
	CustomSections      map[string][]string `json:"custom_sections,omitempty"`

	ParsedText    string            `json:"parsed_text,omitempty"`
	Sections      map[string]string `json:"sections,omitempty"`
	LayoutType    LayoutType        `json:"layout_type,omitempty"`
	ParsingMethod ParsingMethod     `json:"parsing_method,omitempty"`
	ParsedAt      time.Time         `json:"parsed_at,omitempty"`
}

// HasContact reports whether the record carries at least a name or an email.
func (r *ParsedRecord) HasContact() bool {
	if r == nil || r.ContactInfo == nil {
		return false
	}
	return r.ContactInfo.Name != "" || r.ContactInfo.Email != ""
}

// HasContent reports whether the record carries at least one of the
// experience, education, or projects sections.
func (r *ParsedRecord) HasContent() bool {
	if r == nil {
		return false
	}
	return len(r.Experience) > 0 || len(r.Education) > 0 || len(r.Projects) > 0
}

// AllSkills flattens the category map into one ordered list of skill names.
func (r *ParsedRecord) AllSkills() []string {
	if r == nil || len(r.Skills) == 0 {
		return nil
	}
	// Stable order: canonical category first, then the rest sorted by key
	// is unnecessary for scoring; callers only need the full set.
	var out []string
	seen := make(map[string]bool)
	for _, items := range r.Skills {
		for _, s := range items {
			key := normalizeKey(s)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}

func normalizeKey(s string) string {
	b := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b = append(b, r+('a'-'A'))
		case r == ' ' || r == '\t':
			continue
		default:
			b = append(b, r)
		}
	}
	return string(b)
}
