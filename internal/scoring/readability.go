package scoring

import (
	"strings"
)

// MaxReadabilityScore bounds the readability analyzer.
const MaxReadabilityScore = 10.0

const (
	longSentenceWords     = 25
	veryLongSentenceWords = 35
	complexWordLen        = 12
	complexWordRatio      = 0.2
	highComplexWordRatio  = 0.3
)

// ReadabilityResult carries the readability sub-score and its inputs.
type ReadabilityResult struct {
	Score          float64
	AvgSentenceLen float64
	ComplexWordPct float64
	Issues         []string
}

// AnalyzeReadability starts at 10 and deducts for long average sentence
// length (over 25 words) and for a high share of 12+ character words (over
// 20%). Empty text scores zero.
func AnalyzeReadability(text string) ReadabilityResult {
	var result ReadabilityResult
	if strings.TrimSpace(text) == "" {
		return result
	}

	words := strings.Fields(text)
	sentences := countSentences(text)
	if sentences == 0 {
		sentences = 1
	}
	result.AvgSentenceLen = float64(len(words)) / float64(sentences)

	var complexWords int
	for _, w := range words {
		if len(strings.Trim(w, ".,;:!?()")) >= complexWordLen {
			complexWords++
		}
	}
	if len(words) > 0 {
		result.ComplexWordPct = float64(complexWords) / float64(len(words))
	}

	score := MaxReadabilityScore
	switch {
	case result.AvgSentenceLen > veryLongSentenceWords:
		score -= 5
		result.Issues = append(result.Issues, "Sentences run very long; keep them under 25 words")
	case result.AvgSentenceLen > longSentenceWords:
		score -= 3
		result.Issues = append(result.Issues, "Sentences run long; keep them under 25 words")
	}

	switch {
	case result.ComplexWordPct > highComplexWordRatio:
		score -= 5
		result.Issues = append(result.Issues, "Heavy use of long words hurts readability; prefer plain phrasing")
	case result.ComplexWordPct > complexWordRatio:
		score -= 3
		result.Issues = append(result.Issues, "Frequent long words hurt readability; prefer plain phrasing")
	}

	if score < 0 {
		score = 0
	}
	result.Score = score
	return result
}

// countSentences treats terminal punctuation and line breaks as sentence
// boundaries; resume bullets rarely carry periods.
func countSentences(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n := strings.Count(line, ".") + strings.Count(line, "!") + strings.Count(line, "?")
		if n == 0 {
			n = 1
		}
		count += n
	}
	return count
}
