package scoring

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textutil"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// MaxFormattingScore bounds the formatting analyzer: word-count band (6) +
// bullet density (4) + line consistency (2) + layout bonus (3).
const MaxFormattingScore = 15.0

const (
	idealWordsMin = 250
	idealWordsMax = 1000
	nearWordsMin  = 150
	nearWordsMax  = 1500

	goodBulletCount = 5
	longLineLen     = 120
)

// FormattingResult carries the formatting sub-score and the issues feeding
// the suggestion generator.
type FormattingResult struct {
	Score       float64
	WordCount   int
	BulletCount int
	Issues      []string
}

// AnalyzeFormatting scores document shape: an ideal word-count band of
// 250-1000, bullet-point density, line-length consistency, and a bonus for a
// single-column layout. Empty text scores zero.
func AnalyzeFormatting(record *types.ParsedRecord) FormattingResult {
	var result FormattingResult
	if record == nil || strings.TrimSpace(record.ParsedText) == "" {
		result.Issues = append(result.Issues, "Resume has no readable text content")
		return result
	}

	text := record.ParsedText
	result.WordCount = len(strings.Fields(text))

	switch {
	case result.WordCount >= idealWordsMin && result.WordCount <= idealWordsMax:
		result.Score += 6
	case result.WordCount >= nearWordsMin && result.WordCount <= nearWordsMax:
		result.Score += 3
		if result.WordCount < idealWordsMin {
			result.Issues = append(result.Issues, "Resume is on the short side; aim for 250-1000 words")
		} else {
			result.Issues = append(result.Issues, "Resume is on the long side; aim for 250-1000 words")
		}
	case result.WordCount < nearWordsMin:
		result.Issues = append(result.Issues, "Resume is too short; aim for 250-1000 words")
	default:
		result.Issues = append(result.Issues, "Resume is too long; trim it to 250-1000 words")
	}

	var longLines, totalLines int
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		totalLines++
		if len(line) > longLineLen {
			longLines++
		}
		if strings.HasPrefix(line, textutil.Bullet) || strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			result.BulletCount++
		}
	}

	switch {
	case result.BulletCount >= goodBulletCount:
		result.Score += 4
	case result.BulletCount > 0:
		result.Score += 2
		result.Issues = append(result.Issues, "Use more bullet points to describe accomplishments")
	default:
		result.Issues = append(result.Issues, "Use bullet points instead of paragraphs for accomplishments")
	}

	// Mostly-uniform line lengths read as machine-friendly structure.
	if totalLines > 0 && float64(longLines)/float64(totalLines) <= 0.1 {
		result.Score += 2
	} else if totalLines > 0 {
		result.Issues = append(result.Issues, "Break up very long lines; dense blocks confuse ATS parsers")
	}

	switch record.LayoutType {
	case types.LayoutSingleColumn:
		result.Score += 3
	case types.LayoutTwoColumn:
		result.Score += 1
		result.Issues = append(result.Issues, "Two-column layouts often scramble ATS text extraction; prefer a single column")
	case types.LayoutComplex:
		result.Issues = append(result.Issues, "Complex or graphical layouts often scramble ATS text extraction; prefer a single column")
	}

	if result.Score > MaxFormattingScore {
		result.Score = MaxFormattingScore
	}
	return result
}
