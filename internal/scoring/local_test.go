package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const cleanResumeText = `Jane Smith
jane@example.com | Seattle, WA

Summary
Backend engineer with six years of experience building distributed systems in Go and Python.

Experience
Senior Software Engineer, Acme Corp
• Reduced p99 latency by 40% after migrating the billing service to Go
• Saved $250k in annual infrastructure spend by consolidating Kubernetes clusters
• Improved deploy frequency by 300% by building a CI/CD pipeline with Docker
• Mentored 4 junior engineers through promotion
• Cut onboarding time by 50% by writing runbooks

Education
State University, BS Computer Science

Skills
• Go, Python, SQL, PostgreSQL, Redis, AWS, Docker, Kubernetes, Git

Projects
LogSearch: a distributed log search engine handling 2TB per day

Certifications
CKA (Certified Kubernetes Administrator)
`

func cleanRecord() *types.ParsedRecord {
	return &types.ParsedRecord{
		ContactInfo:         &types.ContactInfo{Name: "Jane Smith", Email: "jane@example.com"},
		ProfessionalSummary: "Backend engineer with six years of experience.",
		Experience: []types.Experience{{
			Company:     "Acme Corp",
			Position:    "Senior Software Engineer",
			Description: "Reduced p99 latency by 40%\nSaved $250k annually",
		}},
		Education:      []types.Education{{School: "State University", Degree: "BS"}},
		Projects:       []types.Project{{Name: "LogSearch"}},
		Skills:         map[string][]string{"skills": {"Go", "Python", "SQL", "PostgreSQL", "Redis", "AWS", "Docker", "Kubernetes", "Git"}},
		Certifications: []types.Certification{{Name: "CKA"}},
		ParsedText:     cleanResumeText,
		LayoutType:     types.LayoutSingleColumn,
	}
}

func TestLocalScorer_CleanResume(t *testing.T) {
	report := NewLocalScorer(nil).Score(cleanRecord(), "")
	require.NotNil(t, report)

	assert.GreaterOrEqual(t, report.TotalScore, 70.0)
	assert.Contains(t, []types.Rating{types.RatingGood, types.RatingVeryGood, types.RatingExcellent}, report.Rating)
	assert.Equal(t, types.ScoreMethodLocal, report.ScoringMethod)
	assert.False(t, report.FallbackUsed)
	assert.NotEmpty(t, report.ID)
	assert.False(t, report.ScoredAt.IsZero())
	assert.NotEmpty(t, report.Strengths)
	assert.NotEmpty(t, report.Recommendations)

	assertBounds(t, report)
}

func TestLocalScorer_BareBonesResume(t *testing.T) {
	record := &types.ParsedRecord{ParsedText: "Jane Smith"}
	scorer := NewLocalScorer(nil)

	report := scorer.Score(record, "")
	require.NotNil(t, report)

	assert.Less(t, report.TotalScore, 40.0)
	assert.Contains(t, []types.Rating{types.RatingPoor, types.RatingNeedsImprovement}, report.Rating)
	assert.Equal(t, RequiredSections, scorer.MissingRequiredSections(record))

	assertBounds(t, report)
}

func TestLocalScorer_NilRecord(t *testing.T) {
	report := NewLocalScorer(nil).Score(nil, "")
	require.NotNil(t, report)
	assertBounds(t, report)
}

func TestLocalScorer_Deterministic(t *testing.T) {
	scorer := NewLocalScorer(nil)
	a := scorer.Score(cleanRecord(), "backend role using Go and Kubernetes")
	b := scorer.Score(cleanRecord(), "backend role using Go and Kubernetes")

	assert.Equal(t, a.TotalScore, b.TotalScore)
	assert.Equal(t, a.Breakdown, b.Breakdown)
	assert.Equal(t, a.Recommendations, b.Recommendations)
}

func TestLocalScorer_JobDescriptionKeywords(t *testing.T) {
	report := NewLocalScorer(nil).Score(cleanRecord(), "Looking for Terraform and Elasticsearch experience")

	assert.Contains(t, report.MissingKeywords, "terraform")
	assert.Contains(t, report.MissingKeywords, "elasticsearch")
}

func TestLocalScorer_StructuredRecordWithoutRawText(t *testing.T) {
	record := cleanRecord()
	record.ParsedText = ""

	report := NewLocalScorer(nil).Score(record, "")
	assert.Greater(t, report.TotalScore, 0.0, "structured fields alone must still produce a score")
	assertBounds(t, report)
}

// assertBounds checks the score-bounds invariant on every category and on
// the total, plus the fixed 100-point budget.
func assertBounds(t *testing.T, report *types.ScoringReport) {
	t.Helper()

	assert.GreaterOrEqual(t, report.TotalScore, 0.0)
	assert.LessOrEqual(t, report.TotalScore, 100.0)

	var maxSum float64
	for name, cat := range report.Breakdown.Categories() {
		assert.GreaterOrEqual(t, cat.Score, 0.0, name)
		assert.LessOrEqual(t, cat.Score, cat.MaxScore, name)
		assert.GreaterOrEqual(t, cat.Percentage, 0.0, name)
		assert.LessOrEqual(t, cat.Percentage, 100.0, name)
		maxSum += cat.MaxScore
	}
	assert.InDelta(t, 100.0, maxSum, 0.001)
}
