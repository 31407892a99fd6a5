package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// LocalScorer is the deterministic rule-based ATS engine. It never fails:
// every analyzer has defined behavior for empty or degenerate input.
type LocalScorer struct {
	logger *zap.Logger
}

// NewLocalScorer creates the rule-based scorer.
func NewLocalScorer(logger *zap.Logger) *LocalScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalScorer{logger: logger}
}

// Score runs the five analyzers over the record and aggregates them into
// the unified six-category report. The job description is optional and only
// affects keyword-overlap output.
func (s *LocalScorer) Score(record *types.ParsedRecord, jobDescription string) *types.ScoringReport {
	text := scoringText(record)

	analysis := &localAnalysis{
		Keywords:       AnalyzeKeywords(text, jobDescription),
		Sections:       AnalyzeSections(record),
		Formatting:     AnalyzeFormatting(record),
		Quantification: AnalyzeQuantification(text),
		Readability:    AnalyzeReadability(text),
	}

	breakdown := transformLocalResult(analysis)
	total := breakdownTotal(&breakdown)

	report := &types.ScoringReport{
		ID:              uuid.NewString(),
		TotalScore:      total,
		Rating:          types.RatingForScore(total),
		Breakdown:       breakdown,
		Strengths:       buildStrengths(analysis),
		Weaknesses:      buildWeaknesses(analysis),
		MissingKeywords: emptyIfNil(analysis.Keywords.Missing),
		Recommendations: buildSuggestions(analysis),
		ScoringMethod:   types.ScoreMethodLocal,
		ScoredAt:        time.Now().UTC(),
	}

	s.logger.Debug("local scoring complete",
		zap.Float64("total", total),
		zap.String("rating", string(report.Rating)),
		zap.Int("keyword_matches", len(analysis.Keywords.Matched)),
		zap.Strings("missing_required", analysis.Sections.MissingRequired))

	return report
}

// MissingRequiredSections reports which required sections the record lacks,
// for callers that need the list without a full scoring pass.
func (s *LocalScorer) MissingRequiredSections(record *types.ParsedRecord) []string {
	return AnalyzeSections(record).MissingRequired
}

// scoringText picks the text the text-level analyzers run over: the parsed
// text when present, otherwise a rendering of the structured fields (the
// Gemini parser path may carry structure without raw text).
func scoringText(record *types.ParsedRecord) string {
	if record == nil {
		return ""
	}
	if record.ParsedText != "" {
		return record.ParsedText
	}

	var sb strings.Builder
	if record.ProfessionalSummary != "" {
		sb.WriteString(record.ProfessionalSummary + "\n")
	}
	for _, e := range record.Experience {
		fmt.Fprintf(&sb, "%s %s\n%s\n", e.Position, e.Company, e.Description)
	}
	for _, e := range record.Education {
		fmt.Fprintf(&sb, "%s %s %s\n", e.School, e.Degree, e.Field)
	}
	for _, p := range record.Projects {
		fmt.Fprintf(&sb, "%s\n%s\n", p.Name, p.Description)
	}
	if skills := record.AllSkills(); len(skills) > 0 {
		sb.WriteString(strings.Join(skills, ", ") + "\n")
	}
	return sb.String()
}

func buildStrengths(a *localAnalysis) []string {
	var out []string
	if len(a.Keywords.Matched) >= 8 {
		out = append(out, fmt.Sprintf("Strong keyword coverage: %d recognized technical and soft-skill terms", len(a.Keywords.Matched)))
	}
	if len(a.Sections.MissingRequired) == 0 {
		out = append(out, "All required sections (experience, education, skills) are present")
	}
	if a.Quantification.Percentages+a.Quantification.CurrencyValues >= 3 {
		out = append(out, "Achievements are backed by concrete percentages or amounts")
	}
	if a.Formatting.BulletCount >= goodBulletCount {
		out = append(out, "Accomplishments are presented as scannable bullet points")
	}
	if a.Readability.Score >= MaxReadabilityScore-1 {
		out = append(out, "Writing is concise and easy to read")
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func buildWeaknesses(a *localAnalysis) []string {
	var out []string
	for _, name := range a.Sections.MissingRequired {
		out = append(out, fmt.Sprintf("Missing required section: %s", name))
	}
	if a.Quantification.Score < MaxQuantificationScore/2 {
		out = append(out, "Few quantified achievements; impact is hard to judge")
	}
	if len(a.Keywords.Matched) < 5 {
		out = append(out, "Low keyword coverage for common ATS filters")
	}
	out = append(out, a.Formatting.Issues...)
	out = append(out, a.Readability.Issues...)
	return dedupeCapped(out, maxSuggestions)
}
