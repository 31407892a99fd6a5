package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func fullRecord() *types.ParsedRecord {
	return &types.ParsedRecord{
		ProfessionalSummary: "Backend engineer.",
		Experience:          []types.Experience{{Company: "Acme", Position: "Engineer"}},
		Education:           []types.Education{{School: "State University"}},
		Projects:            []types.Project{{Name: "LogSearch"}},
		Skills:              map[string][]string{"skills": {"Go"}},
		Certifications:      []types.Certification{{Name: "CKA"}},
	}
}

func TestAnalyzeSections_AllPresent(t *testing.T) {
	result := AnalyzeSections(fullRecord())

	assert.Equal(t, MaxSectionScore, result.Score, "raw 39 points clamp to 35")
	assert.Empty(t, result.MissingRequired)
	assert.Empty(t, result.MissingRecommended)
}

func TestAnalyzeSections_EmptyRecord(t *testing.T) {
	result := AnalyzeSections(&types.ParsedRecord{ParsedText: "Jane Smith"})

	assert.Zero(t, result.Score)
	assert.Equal(t, RequiredSections, result.MissingRequired)
}

func TestAnalyzeSections_NilRecord(t *testing.T) {
	result := AnalyzeSections(nil)
	assert.Zero(t, result.Score)
	assert.Equal(t, RequiredSections, result.MissingRequired)
}

func TestAnalyzeSections_FuzzyTextPresence(t *testing.T) {
	// No structured data, but synonym headers appear in the raw text.
	record := &types.ParsedRecord{
		ParsedText: "EMPLOYMENT\nAcme Corp\nACADEMIC BACKGROUND\nState University\nTECH STACK\nGo",
	}

	result := AnalyzeSections(record)
	assert.Empty(t, result.MissingRequired)
	assert.InDelta(t, 27.0, result.Score, 0.001)
}

func TestAnalyzeSections_DetectedSectionNamesCount(t *testing.T) {
	record := &types.ParsedRecord{
		Sections: map[string]string{"experience": "Acme", "summary": "engineer"},
	}

	result := AnalyzeSections(record)
	assert.NotContains(t, result.MissingRequired, "experience")
	assert.NotContains(t, result.MissingRecommended, "summary")
	assert.InDelta(t, 13.0, result.Score, 0.001)
}

func TestAnalyzeSections_Monotonic(t *testing.T) {
	// Adding a previously-missing required section never lowers the score.
	record := &types.ParsedRecord{
		Education: []types.Education{{School: "State University"}},
		Skills:    map[string][]string{"skills": {"Go"}},
	}
	before := AnalyzeSections(record)

	record.Experience = []types.Experience{{Company: "Acme"}}
	after := AnalyzeSections(record)

	assert.GreaterOrEqual(t, after.Score, before.Score)
	assert.NotContains(t, after.MissingRequired, "experience")
}
