package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// GeminiScorer scores a resume through the Gemini rubric prompt. It fails
// loudly on any API or response problem; the hybrid layer owns the fallback
// decision.
type GeminiScorer struct {
	client llm.Client
	logger *zap.Logger
}

// NewGeminiScorer creates a Gemini-backed scorer around an injected client.
func NewGeminiScorer(client llm.Client, logger *zap.Logger) *GeminiScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiScorer{client: client, logger: logger}
}

// Available reports whether the scorer can attempt a model call.
func (g *GeminiScorer) Available() bool {
	return g != nil && g.client != nil
}

// Score sends the parsed record and optional job description to Gemini and
// normalizes the response into the unified report, including the audit
// fields (tokens, model, latency).
func (g *GeminiScorer) Score(ctx context.Context, record *types.ParsedRecord, jobDescription string) (*types.ScoringReport, error) {
	if !g.Available() {
		return nil, &APICallError{Message: "no model client configured"}
	}

	resumeJSON, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize parsed record: %w", err)
	}

	jobContext := ""
	jobBlock := ""
	if jobDescription != "" {
		jobContext = ", weighted toward the job description below"
		jobBlock = "\nJob description:\n" + jobDescription
	}

	prompt := prompts.Format(prompts.MustGet(prompts.ScoringFile, "score-resume"), map[string]string{
		"JobContext":     jobContext,
		"ResumeJSON":     string(resumeJSON),
		"JobDescription": jobBlock,
	})

	start := time.Now()
	result, err := g.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	latency := time.Since(start)
	if err != nil {
		return nil, &APICallError{Message: "scoring request failed", Cause: err}
	}

	if llm.IsLikelyTruncated(result.Text) {
		return nil, &ResponseError{
			Message:   "response does not terminate a JSON document",
			Truncated: true,
		}
	}

	report, err := parseGeminiResponse(result.Text)
	if err != nil {
		return nil, err
	}

	report.ScoringMethod = types.ScoreMethodGemini
	report.ScoredAt = time.Now().UTC()
	report.TokensUsed = result.TotalTokens()
	report.ModelName = result.Model
	report.LatencyMS = latency.Milliseconds()

	g.logger.Debug("gemini scoring complete",
		zap.Float64("total", report.TotalScore),
		zap.String("model", report.ModelName),
		zap.Int("tokens", report.TokensUsed),
		zap.Int64("latency_ms", report.LatencyMS))

	return report, nil
}
