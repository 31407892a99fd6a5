package parsing

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// HybridParser chooses the parsing strategy per document: structured LaTeX
// output is trusted as-is, Gemini is preferred for everything else, and the
// rule-based parser is the guaranteed fallback. Parsing never fails: the
// worst case is a minimal record built from raw text.
type HybridParser struct {
	gemini *GeminiParser
	rules  *Parser
	logger *zap.Logger
}

// NewHybridParser builds the hybrid strategy. A nil client disables the
// Gemini path entirely and every document goes through the rule-based parser.
func NewHybridParser(client llm.Client, logger *zap.Logger) *HybridParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &HybridParser{
		rules:  NewParser(logger),
		logger: logger,
	}
	if client != nil {
		h.gemini = NewGeminiParser(client, logger)
	}
	return h
}

// Parse converts an extraction result into a ParsedRecord.
//
// When the extractor already produced structured data with both contact info
// and content (the LaTeX path), that record is returned without any model
// call. Otherwise Gemini is tried first; any API or response failure is
// logged and absorbed by falling back to the rule-based parser, so a model
// outage degrades quality but never breaks the pipeline.
func (h *HybridParser) Parse(ctx context.Context, extraction *types.ExtractionResult) *types.ParsedRecord {
	if sd := extraction.StructuredData; sd != nil && sd.HasContact() && sd.HasContent() {
		h.logger.Debug("using structured extraction, skipping model call",
			zap.String("method", string(sd.ParsingMethod)))
		return sd
	}

	if h.gemini != nil {
		record, err := h.gemini.Parse(ctx, extraction.Text, extraction.Hyperlinks)
		if err == nil {
			return h.mergeStructured(record, extraction)
		}
		h.logger.Warn("gemini parsing failed, falling back to rule-based parser",
			zap.Error(err))
	}

	fallback := h.rules.Parse(extraction.Text, extraction.Metadata)
	return h.mergeStructured(fallback, extraction)
}

// mergeStructured backfills fields a partially-successful extractor pass
// found but the chosen parser missed. Parser output always wins over
// extractor output for fields both produced.
func (h *HybridParser) mergeStructured(record *types.ParsedRecord, extraction *types.ExtractionResult) *types.ParsedRecord {
	sd := extraction.StructuredData
	if sd == nil {
		return record
	}
	if record.ContactInfo.IsEmpty() && !sd.ContactInfo.IsEmpty() {
		record.ContactInfo = sd.ContactInfo
	}
	if len(record.Experience) == 0 {
		record.Experience = sd.Experience
	}
	if len(record.Education) == 0 {
		record.Education = sd.Education
	}
	if len(record.Projects) == 0 {
		record.Projects = sd.Projects
	}
	if len(record.Skills) == 0 {
		record.Skills = sd.Skills
	}
	return record
}
