package scoring

import (
	"regexp"
	"strings"
)

// MaxQuantificationScore bounds the quantification analyzer.
const MaxQuantificationScore = 10.0

const quantificationWeight = 0.8

var (
	percentPattern  = regexp.MustCompile(`\d+(?:\.\d+)?\s*%`)
	currencyPattern = regexp.MustCompile(`[$€£]\s*\d[\d,]*(?:\.\d+)?\s*(?:[kKmMbB](?:illion)?)?`)
	// impactPattern catches verb-plus-number phrases like "reduced latency by
	// 40" or "grew revenue to 2M".
	impactPattern = regexp.MustCompile(`(?i)\b(increased|decreased|reduced|improved|grew|saved|cut|boosted|accelerated|scaled|drove|delivered|generated)\b[^.\n]{0,60}?\d`)
	numberPattern = regexp.MustCompile(`\b\d[\d,]*(?:\.\d+)?\b`)
)

// QuantificationResult carries the quantification sub-score and the raw
// evidence counts.
type QuantificationResult struct {
	Score          float64
	Percentages    int
	CurrencyValues int
	ImpactPhrases  int
	PlainNumbers   int
}

// AnalyzeQuantification scores numeric evidence of impact: percentages and
// currency amounts weigh 2, impact-verb phrases 1.5, bare numbers 1;
// score = min(10, 0.8 * weighted count). Empty text scores zero.
func AnalyzeQuantification(text string) QuantificationResult {
	var result QuantificationResult
	if strings.TrimSpace(text) == "" {
		return result
	}

	result.Percentages = len(percentPattern.FindAllString(text, -1))
	result.CurrencyValues = len(currencyPattern.FindAllString(text, -1))
	result.ImpactPhrases = len(impactPattern.FindAllString(text, -1))

	// Bare numbers exclude those already counted as percentages or currency.
	plain := len(numberPattern.FindAllString(text, -1)) - result.Percentages - result.CurrencyValues
	if plain < 0 {
		plain = 0
	}
	result.PlainNumbers = plain

	weighted := 2.0*float64(result.Percentages) +
		2.0*float64(result.CurrencyValues) +
		1.5*float64(result.ImpactPhrases) +
		1.0*float64(result.PlainNumbers)

	score := quantificationWeight * weighted
	if score > MaxQuantificationScore {
		score = MaxQuantificationScore
	}
	result.Score = score
	return result
}
