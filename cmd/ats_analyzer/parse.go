package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Extract and parse a resume into structured JSON",
	Long:  "Extract text from a PDF, DOCX, LaTeX, or plain text resume and parse it into a structured record. Uses Gemini when an API key is available and falls back to rule-based parsing otherwise.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var parseOutputFile string

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
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

	doc, err := readDocument(args[0])
	if err != nil {
		return err
	}

	result, err := extraction.NewService(log).Extract(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	record := parsing.NewHybridParser(client, log).Parse(ctx, result)

	if settings.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintExtraction(result)
		printer.PrintParsedRecord(record)
	}

	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Parsed resume written to %s\n", parseOutputFile)
	return nil
}
