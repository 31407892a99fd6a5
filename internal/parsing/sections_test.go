package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSections(t *testing.T) {
	text := `Jane Smith
jane@example.com

WORK EXPERIENCE
Acme Corp, Senior Engineer

Technical Skills
Go, Python

Awards
Dean's list
`

	sections := DetectSections(text)

	require.Contains(t, sections, HeaderSection)
	assert.Contains(t, sections[HeaderSection], "Jane Smith")
	assert.Contains(t, sections[HeaderSection], "jane@example.com")

	require.Contains(t, sections, "experience")
	assert.Equal(t, "Acme Corp, Senior Engineer", sections["experience"])

	require.Contains(t, sections, "skills")
	assert.Equal(t, "Go, Python", sections["skills"])

	require.Contains(t, sections, "awards")
	assert.Equal(t, "Dean's list", sections["awards"])
}

func TestDetectSections_RepeatedHeaderMerges(t *testing.T) {
	text := "Experience\nfirst job\nEducation\nschool\nExperience\nsecond job"

	sections := DetectSections(text)

	assert.Equal(t, "first job\nsecond job", sections["experience"])
	assert.Equal(t, "school", sections["education"])
}

func TestDetectSections_NoHeaders(t *testing.T) {
	sections := DetectSections("one line of plain prose with no headings anywhere in sight")

	require.Len(t, sections, 1)
	assert.Contains(t, sections, HeaderSection)
}

func TestMatchSectionHeader(t *testing.T) {
	tests := []struct {
		line    string
		want    string
		matched bool
	}{
		{"Professional Summary", "summary", true},
		{"OBJECTIVE", "summary", true},
		{"Work Experience", "experience", true},
		{"EMPLOYMENT HISTORY", "experience", true},
		{"Education", "education", true},
		{"Academic Background", "education", true},
		{"Technical Skills:", "skills", true},
		{"Core Competencies", "skills", true},
		{"• Projects", "projects", true},
		{"Certifications", "certifications", true},
		{"Honors & Awards", "awards", true},
		{"Publications", "publications", true},
		{"Languages", "languages", true},
		{"Volunteer Experience", "volunteer", true},
		{"Leadership", "leadership", true},
		{"Contact Information", "contact", true},
		{"", "", false},
		{"Led a team of five engineers across two offices", "", false},
		{"Went back to school in 2019", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, ok := matchSectionHeader(tt.line)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, name)
		})
	}
}
