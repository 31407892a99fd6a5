package scoring

import (
	"encoding/json"
	"errors"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// clampCategory builds a CategoryScore with the correctness-critical clamp:
// score is forced into [0, max] and percentage into [0, 100] no matter what
// the producer returned. Raw model output is untrusted and must never be
// forwarded unclamped.
func clampCategory(score, max float64) types.CategoryScore {
	if score < 0 {
		score = 0
	}
	if score > max {
		score = max
	}
	pct := 0.0
	if max > 0 {
		pct = score / max * 100
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return types.CategoryScore{Score: score, MaxScore: max, Percentage: pct}
}

// breakdownTotal sums the clamped category scores; it is the only way a
// total score is ever computed.
func breakdownTotal(b *types.ScoreBreakdown) float64 {
	return b.FormatATSCompatibility.Score +
		b.KeywordMatch.Score +
		b.SkillsRelevance.Score +
		b.ExperienceQuality.Score +
		b.AchievementsImpact.Score +
		b.GrammarClarity.Score
}

// localAnalysis bundles the five analyzer results before transformation.
type localAnalysis struct {
	Keywords       KeywordResult
	Sections       SectionResult
	Formatting     FormattingResult
	Quantification QuantificationResult
	Readability    ReadabilityResult
}

// transformLocalResult maps the five analyzer scales (30/35/15/10/10) onto
// the unified six-category breakdown. The sections score feeds both
// skills_relevance and experience_quality since section presence is the
// local engine's only signal for either.
func transformLocalResult(a *localAnalysis) types.ScoreBreakdown {
	sectionsRatio := a.Sections.Score / MaxSectionScore
	return types.ScoreBreakdown{
		FormatATSCompatibility: clampCategory(a.Formatting.Score/MaxFormattingScore*types.MaxFormatATS, types.MaxFormatATS),
		KeywordMatch:           clampCategory(a.Keywords.Score/MaxKeywordScore*types.MaxKeywordMatch, types.MaxKeywordMatch),
		SkillsRelevance:        clampCategory(sectionsRatio*types.MaxSkillsRelevance, types.MaxSkillsRelevance),
		ExperienceQuality:      clampCategory(sectionsRatio*types.MaxExperienceQuality, types.MaxExperienceQuality),
		AchievementsImpact:     clampCategory(a.Quantification.Score/MaxQuantificationScore*types.MaxAchievementsImpact, types.MaxAchievementsImpact),
		GrammarClarity:         clampCategory(a.Readability.Score/MaxReadabilityScore*types.MaxGrammarClarity, types.MaxGrammarClarity),
	}
}

// geminiScoreResponse mirrors the JSON shape the scoring prompt demands.
type geminiScoreResponse struct {
	TotalScore float64 `json:"total_score"`
	Breakdown  struct {
		FormatATSCompatibility geminiCategory `json:"format_ats_compatibility"`
		KeywordMatch           geminiCategory `json:"keyword_match"`
		SkillsRelevance        geminiCategory `json:"skills_relevance"`
		ExperienceQuality      geminiCategory `json:"experience_quality"`
		AchievementsImpact     geminiCategory `json:"achievements_impact"`
		GrammarClarity         geminiCategory `json:"grammar_clarity"`
	} `json:"breakdown"`
	Strengths       []string               `json:"strengths"`
	Weaknesses      []string               `json:"weaknesses"`
	MissingKeywords []string               `json:"missing_keywords"`
	Recommendations []string               `json:"recommendations"`
	ImprovedBullets []types.ImprovedBullet `json:"improved_bullets"`
}

type geminiCategory struct {
	Score float64 `json:"score"`
}

// parseGeminiResponse validates and normalizes a raw scoring response. The
// model's own total and max_score values are ignored: every category is
// clamped against the canonical maximums and the total is recomputed from
// the clamped breakdown.
func parseGeminiResponse(raw string) (*types.ScoringReport, error) {
	if err := schemas.ValidateScoringReport(raw); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			return nil, &ResponseError{Message: "response is not valid JSON", Cause: err}
		}
		return nil, &ResponseError{Message: "response violates the expected shape", Cause: err}
	}

	var resp geminiScoreResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &ResponseError{Message: "response could not be decoded", Cause: err}
	}

	breakdown := types.ScoreBreakdown{
		FormatATSCompatibility: clampCategory(resp.Breakdown.FormatATSCompatibility.Score, types.MaxFormatATS),
		KeywordMatch:           clampCategory(resp.Breakdown.KeywordMatch.Score, types.MaxKeywordMatch),
		SkillsRelevance:        clampCategory(resp.Breakdown.SkillsRelevance.Score, types.MaxSkillsRelevance),
		ExperienceQuality:      clampCategory(resp.Breakdown.ExperienceQuality.Score, types.MaxExperienceQuality),
		AchievementsImpact:     clampCategory(resp.Breakdown.AchievementsImpact.Score, types.MaxAchievementsImpact),
		GrammarClarity:         clampCategory(resp.Breakdown.GrammarClarity.Score, types.MaxGrammarClarity),
	}
	total := breakdownTotal(&breakdown)

	return &types.ScoringReport{
		TotalScore:      total,
		Rating:          types.RatingForScore(total),
		Breakdown:       breakdown,
		Strengths:       emptyIfNil(resp.Strengths),
		Weaknesses:      emptyIfNil(resp.Weaknesses),
		MissingKeywords: emptyIfNil(resp.MissingKeywords),
		Recommendations: emptyIfNil(resp.Recommendations),
		ImprovedBullets: resp.ImprovedBullets,
	}, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
