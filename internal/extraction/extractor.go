// Package extraction converts uploaded resume documents (PDF, DOCX, LaTeX,
// plain text) into raw text plus format-specific side channels such as PDF
// hyperlink annotations and LaTeX macro structure.
package extraction

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Extractor converts a raw document into an ExtractionResult. Implementations
// are stateless; the same input always yields the same output.
type Extractor interface {
	Extract(ctx context.Context, doc *types.RawDocument) (*types.ExtractionResult, error)
}

// Service dispatches documents to the extractor matching their content type.
type Service struct {
	pdf    *PDFExtractor
	docx   *DOCXExtractor
	latex  *LaTeXExtractor
	logger *zap.Logger
}

// NewService creates an extraction service with default extractor tuning.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		pdf:    NewPDFExtractor(logger),
		docx:   NewDOCXExtractor(logger),
		latex:  NewLaTeXExtractor(logger),
		logger: logger,
	}
}

// Extract routes the document to the extractor for its content type. Plain
// text that carries LaTeX markers is routed to the LaTeX extractor so that
// pasted .tex sources get structural parsing.
func (s *Service) Extract(ctx context.Context, doc *types.RawDocument) (*types.ExtractionResult, error) {
	extractor, err := s.extractorFor(doc)
	if err != nil {
		return nil, err
	}

	result, err := extractor.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("document extracted",
		zap.String("filename", doc.Filename),
		zap.String("method", string(result.Method)),
		zap.Int("chars", len(result.Text)),
		zap.Int("hyperlinks", len(result.Hyperlinks)))

	return result, nil
}

func (s *Service) extractorFor(doc *types.RawDocument) (Extractor, error) {
	switch doc.ContentType {
	case types.ContentTypePDF:
		return s.pdf, nil
	case types.ContentTypeDOCX, types.ContentTypeDOC:
		return s.docx, nil
	case types.ContentTypeLaTeX, types.ContentTypeTeXText:
		return s.latex, nil
	case types.ContentTypePlainText, "":
		if IsLaTeX(string(doc.Bytes)) {
			return s.latex, nil
		}
		return &PlainTextExtractor{}, nil
	}

	// Content type lies sometimes; fall back to the filename extension.
	switch strings.ToLower(filepath.Ext(doc.Filename)) {
	case ".pdf":
		return s.pdf, nil
	case ".docx", ".doc":
		return s.docx, nil
	case ".tex", ".latex":
		return s.latex, nil
	case ".txt":
		if IsLaTeX(string(doc.Bytes)) {
			return s.latex, nil
		}
		return &PlainTextExtractor{}, nil
	}

	return nil, &UnsupportedTypeError{ContentType: doc.ContentType, Filename: doc.Filename}
}

// PlainTextExtractor passes text documents through unchanged.
type PlainTextExtractor struct{}

// Extract returns the document bytes as text.
func (e *PlainTextExtractor) Extract(_ context.Context, doc *types.RawDocument) (*types.ExtractionResult, error) {
	text := strings.TrimSpace(string(doc.Bytes))
	if text == "" {
		return nil, &Error{Filename: doc.Filename, Message: "document contains no text"}
	}
	return &types.ExtractionResult{
		Text:   text,
		Method: types.ExtractionPlainText,
	}, nil
}
