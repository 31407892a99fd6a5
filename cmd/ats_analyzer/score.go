package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume-file>",
	Short: "Score a resume for ATS compatibility",
	Long:  "Run the full pipeline: extract text from the resume, parse it into a structured record, and produce a scoring report. An optional job description (file or URL) weights keyword analysis toward the posting.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var (
	scoreJobFile    string
	scoreJobURL     string
	scoreOutputFile string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to a job description text file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL of a job posting to fetch the description from")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON report (default: stdout)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if scoreJobFile != "" {
		settings.Job = scoreJobFile
	}
	if scoreJobURL != "" {
		settings.JobURL = scoreJobURL
	}
	if scoreOutputFile != "" {
		settings.Output = scoreOutputFile
	}
	if settings.Job != "" && settings.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	log, err := buildLogger(settings)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()

	client, err := newLLMClient(ctx, settings, log)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close() //nolint:errcheck
	}

	jobDescription, err := loadJobDescription(ctx, settings, log)
	if err != nil {
		return err
	}

	doc, err := readDocument(args[0])
	if err != nil {
		return err
	}

	report, record, result, err := scoreDocument(ctx, doc, jobDescription, client, log)
	if err != nil {
		return err
	}

	if settings.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintExtraction(result)
		printer.PrintParsedRecord(record)
		printer.PrintScoringReport(report)
		printer.PrintMissingKeywords(report.MissingKeywords)
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if settings.Output == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(settings.Output, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Score: %.1f/100 (%s)\n", report.TotalScore, report.Rating)
	_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", settings.Output)
	return nil
}

// scoreDocument runs extraction, parsing, and scoring for one document.
func scoreDocument(ctx context.Context, doc *types.RawDocument, jobDescription string, client llm.Client, log *zap.Logger) (*types.ScoringReport, *types.ParsedRecord, *types.ExtractionResult, error) {
	result, err := extraction.NewService(log).Extract(ctx, doc)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to extract resume text from %s: %w", doc.Filename, err)
	}

	record := parsing.NewHybridParser(client, log).Parse(ctx, result)
	report := scoring.NewHybridScorer(client, client != nil, log).Score(ctx, record, jobDescription)

	return report, record, result, nil
}

func loadJobDescription(ctx context.Context, settings config.Config, log *zap.Logger) (string, error) {
	switch {
	case settings.Job != "":
		data, err := os.ReadFile(settings.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil

	case settings.JobURL != "":
		log.Debug("fetching job description", zap.String("url", settings.JobURL))
		text, err := fetch.JobDescription(ctx, settings.JobURL, fetch.DefaultOptions())
		if err != nil {
			return "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		return text, nil
	}

	return "", nil
}
