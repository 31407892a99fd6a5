// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ScoringMethod identifies which scorer produced a report.
type ScoringMethod string

// Scoring method values. ScoreMethodGeminiFallback marks a report produced by
// the local scorer after the Gemini path failed.
const (
	ScoreMethodLocal          ScoringMethod = "local"
	ScoreMethodGemini         ScoringMethod = "gemini"
	ScoreMethodGeminiFallback ScoringMethod = "gemini_fallback"
)

// Rating is the human-readable tier for a total score.
type Rating string

// Rating tiers, from the canonical 6-tier ladder.
const (
	RatingExcellent        Rating = "Excellent"
	RatingVeryGood         Rating = "Very Good"
	RatingGood             Rating = "Good"
	RatingFair             Rating = "Fair"
	RatingNeedsImprovement Rating = "Needs Improvement"
	RatingPoor             Rating = "Poor"
)

// RatingForScore maps a total score to its tier: >=90 Excellent, >=80 Very
// Good, >=70 Good, >=60 Fair, >=50 Needs Improvement, else Poor. Both the
// local and the Gemini-normalized paths use this single ladder.
func RatingForScore(total float64) Rating {
	switch {
	case total >= 90:
		return RatingExcellent
	case total >= 80:
		return RatingVeryGood
	case total >= 70:
		return RatingGood
	case total >= 60:
		return RatingFair
	case total >= 50:
		return RatingNeedsImprovement
	default:
		return RatingPoor
	}
}

// CategoryScore is one bounded sub-score. Score never exceeds MaxScore and
// Percentage is always within [0,100]; producers clamp before returning.
type CategoryScore struct {
	Score      float64 `json:"score" validate:"gte=0"`
	MaxScore   float64 `json:"max_score" validate:"gt=0"`
	Percentage float64 `json:"percentage" validate:"gte=0,lte=100"`
}

// Category maximums for the unified breakdown. They sum to 100.
const (
	MaxFormatATS          = 20.0
	MaxKeywordMatch       = 25.0
	MaxSkillsRelevance    = 15.0
	MaxExperienceQuality  = 20.0
	MaxAchievementsImpact = 10.0
	MaxGrammarClarity     = 10.0
)

// ScoreBreakdown is the unified six-category breakdown shared by every
// scoring path.
type ScoreBreakdown struct {
	FormatATSCompatibility CategoryScore `json:"format_ats_compatibility"`
	KeywordMatch           CategoryScore `json:"keyword_match"`
	SkillsRelevance        CategoryScore `json:"skills_relevance"`
	ExperienceQuality      CategoryScore `json:"experience_quality"`
	AchievementsImpact     CategoryScore `json:"achievements_impact"`
	GrammarClarity         CategoryScore `json:"grammar_clarity"`
}

// Categories returns the breakdown entries in display order.
func (b *ScoreBreakdown) Categories() map[string]CategoryScore {
	return map[string]CategoryScore{
		"format_ats_compatibility": b.FormatATSCompatibility,
		"keyword_match":            b.KeywordMatch,
		"skills_relevance":         b.SkillsRelevance,
		"experience_quality":       b.ExperienceQuality,
		"achievements_impact":      b.AchievementsImpact,
		"grammar_clarity":          b.GrammarClarity,
	}
}

// ImprovedBullet pairs an original resume bullet with a suggested rewrite.
type ImprovedBullet struct {
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
}

// ScoringReport is the immutable result of one scoring request. It is created
// once and only ever replaced, never mutated.
type ScoringReport struct {
	ID              string           `json:"id,omitempty"`
	TotalScore      float64          `json:"total_score" validate:"gte=0,lte=100"`
	Rating          Rating           `json:"rating"`
	Breakdown       ScoreBreakdown   `json:"breakdown"`
	Strengths       []string         `json:"strengths"`
	Weaknesses      []string         `json:"weaknesses"`
	MissingKeywords []string         `json:"missing_keywords"`
	Recommendations []string         `json:"recommendations"`
	ImprovedBullets []ImprovedBullet `json:"improved_bullets,omitempty"`
	ScoringMethod   ScoringMethod    `json:"scoring_method"`
	FallbackUsed    bool             `json:"fallback_used"`
	ScoredAt        time.Time        `json:"scored_at"`

	// Audit fields for the external cost/latency collaborator. Populated
	// only when the Gemini path produced the report.
	TokensUsed int    `json:"tokens_used,omitempty"`
	ModelName  string `json:"model_name,omitempty"`
	LatencyMS  int64  `json:"latency_ms,omitempty"`
}
