// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtraction outputs a summary of the text-extraction result.
func (p *Printer) PrintExtraction(result *types.ExtractionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Method:      %s\n", result.Method))
	sb.WriteString(fmt.Sprintf("Characters:  %d\n", len(result.Text)))
	if result.NumPages > 0 {
		sb.WriteString(fmt.Sprintf("Pages:       %d\n", result.NumPages))
	}
	if result.NumParagraphs > 0 {
		sb.WriteString(fmt.Sprintf("Paragraphs:  %d\n", result.NumParagraphs))
	}
	sb.WriteString(fmt.Sprintf("Hyperlinks:  %d", len(result.Hyperlinks)))

	p.printBox("EXTRACTION", sb.String())
}

// PrintParsedRecord outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintParsedRecord(record *types.ParsedRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	if record.ContactInfo != nil && record.ContactInfo.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", record.ContactInfo.Name))
	}
	if record.ContactInfo != nil && record.ContactInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", record.ContactInfo.Email))
	}
	sb.WriteString(fmt.Sprintf("Method:   %s\n", record.ParsingMethod))
	sb.WriteString(fmt.Sprintf("Layout:   %s\n", record.LayoutType))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience:     %d entries\n", len(record.Experience)))
	sb.WriteString(fmt.Sprintf("Education:      %d entries\n", len(record.Education)))
	sb.WriteString(fmt.Sprintf("Projects:       %d entries\n", len(record.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications: %d entries\n", len(record.Certifications)))

	if skills := record.AllSkills(); len(skills) > 0 {
		joined := strings.Join(skills, ", ")
		if len(joined) > 45 {
			joined = joined[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSkills: %s", joined))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoringReport outputs the score breakdown, strengths, and top
// recommendations.
func (p *Printer) PrintScoringReport(report *types.ScoringReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:   %.1f / 100  (%s)\n", report.TotalScore, report.Rating))
	sb.WriteString(fmt.Sprintf("Method:  %s", report.ScoringMethod))
	if report.FallbackUsed {
		sb.WriteString("  (fallback)")
	}
	sb.WriteString("\n\n")

	sb.WriteString(formatCategory("Format/ATS", report.Breakdown.FormatATSCompatibility))
	sb.WriteString(formatCategory("Keywords", report.Breakdown.KeywordMatch))
	sb.WriteString(formatCategory("Skills", report.Breakdown.SkillsRelevance))
	sb.WriteString(formatCategory("Experience", report.Breakdown.ExperienceQuality))
	sb.WriteString(formatCategory("Achievements", report.Breakdown.AchievementsImpact))
	sb.WriteString(formatCategory("Clarity", report.Breakdown.GrammarClarity))

	if len(report.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(report.Strengths), 3)
		for i := 0; i < count; i++ {
			s := report.Strengths[i]
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nTop recommendations:\n")
		count := min(len(report.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			r := report.Recommendations[i]
			if len(r) > 50 {
				r = r[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", r))
		}
		if len(report.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMissingKeywords outputs job-description keywords the resume lacks.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMissingKeywords(keywords []string) {
	if len(keywords) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO MISSING KEYWORDS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d keywords in the posting but not the resume:\n\n", len(keywords)))

	count := min(len(keywords), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", keywords[i]))
	}
	if len(keywords) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(keywords)-count))
	}

	p.printBox("MISSING KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

func formatCategory(label string, cat types.CategoryScore) string {
	return fmt.Sprintf("%-13s %5.1f / %-4.0f (%3.0f%%)\n", label, cat.Score, cat.MaxScore, cat.Percentage)
}
