package scoring

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// HybridScorer prefers the Gemini rubric and falls back to the local engine
// on any failure. Scoring never fails: the worst case is a deterministic
// local report flagged with fallback_used.
type HybridScorer struct {
	gemini       *GeminiScorer
	local        *LocalScorer
	preferGemini bool
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewHybridScorer builds the hybrid strategy. A nil client disables the
// Gemini path and every request is scored locally.
func NewHybridScorer(client llm.Client, preferGemini bool, logger *zap.Logger) *HybridScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &HybridScorer{
		local:        NewLocalScorer(logger),
		preferGemini: preferGemini,
		validate:     validator.New(),
		logger:       logger,
	}
	if client != nil {
		h.gemini = NewGeminiScorer(client, logger)
	}
	return h
}

// Score produces a report for the record. The Gemini path is attempted when
// preferred and available; any error there is logged and absorbed by scoring
// locally, with the report marked scoring_method=gemini_fallback and
// fallback_used=true. A structurally invalid Gemini report is treated the
// same as a failed call.
func (h *HybridScorer) Score(ctx context.Context, record *types.ParsedRecord, jobDescription string) *types.ScoringReport {
	if h.preferGemini && h.gemini.Available() {
		report, err := h.gemini.Score(ctx, record, jobDescription)
		if err == nil {
			err = h.validate.Struct(report)
		}
		if err == nil {
			if report.ID == "" {
				report.ID = uuid.NewString()
			}
			report.FallbackUsed = false
			return report
		}
		h.logger.Warn("gemini scoring failed, falling back to local scorer",
			zap.Error(err))

		report = h.local.Score(record, jobDescription)
		report.ScoringMethod = types.ScoreMethodGeminiFallback
		report.FallbackUsed = true
		return report
	}

	return h.local.Score(record, jobDescription)
}
