// Package main provides the ATS resume analyzer command line interface.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var rootCmd = &cobra.Command{
	Use:   "ats_analyzer",
	Short: "ATS resume analyzer",
	Long:  "Extracts text from PDF, DOCX, and LaTeX resumes, parses them into structured records, and scores them for ATS compatibility with an optional job description.",
}

var (
	flagConfig    string
	flagAPIKey    string
	flagLocalOnly bool
	flagVerbose   bool
	flagJSONLogs  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rootCmd.PersistentFlags().BoolVar(&flagLocalOnly, "local-only", false, "Skip Gemini entirely and use local analysis only")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed progress and report summaries")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit structured JSON logs instead of console output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings merges the optional config file under the CLI flags. Flags win
// for booleans; string flags win when set, otherwise the file value applies.
func loadSettings() (config.Config, error) {
	settings := config.Config{
		APIKey:    flagAPIKey,
		LocalOnly: flagLocalOnly,
		Verbose:   flagVerbose,
		JSONLogs:  flagJSONLogs,
	}

	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return settings, err
		}
		if err := fileCfg.Validate(); err != nil {
			return settings, err
		}
		settings = settings.MergeWithDefaults(*fileCfg)
		settings.LocalOnly = settings.LocalOnly || fileCfg.LocalOnly
		settings.Verbose = settings.Verbose || fileCfg.Verbose
		settings.JSONLogs = settings.JSONLogs || fileCfg.JSONLogs
	}

	if settings.APIKey == "" {
		settings.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return settings, nil
}

func buildLogger(settings config.Config) (*zap.Logger, error) {
	return logger.New(settings.JSONLogs, settings.Verbose)
}

// newLLMClient returns a Gemini client, or nil when running local-only or no
// API key is available. A nil client downgrades every AI path to its local
// fallback without error.
func newLLMClient(ctx context.Context, settings config.Config, log *zap.Logger) (llm.Client, error) {
	if settings.LocalOnly {
		log.Debug("local-only mode, skipping Gemini client")
		return nil, nil
	}
	if settings.APIKey == "" {
		log.Warn("no Gemini API key configured, falling back to local analysis")
		return nil, nil
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), settings.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// readDocument loads a resume file from disk with the content type inferred
// from its extension.
func readDocument(path string) (*types.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	return &types.RawDocument{
		Bytes:       data,
		ContentType: contentTypeForExt(filepath.Ext(path)),
		Filename:    filepath.Base(path),
	}, nil
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return types.ContentTypePDF
	case ".docx":
		return types.ContentTypeDOCX
	case ".doc":
		return types.ContentTypeDOC
	case ".tex", ".latex":
		return types.ContentTypeLaTeX
	case ".txt":
		return types.ContentTypePlainText
	default:
		return ""
	}
}
