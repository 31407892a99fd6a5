package extraction

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// minPrimaryTextLen is the threshold below which the default extraction
	// is considered failed and the layout-preserving mode takes over.
	minPrimaryTextLen = 100

	// charTolerance is the horizontal gap (in text-space units, relative to
	// font size) beyond which two fragments on a row get a separating space.
	// Too small and words run together; too large and kerned words split.
	charTolerance = 0.18

	// lineTolerance is the vertical distance under which two fragments are
	// treated as the same visual line.
	lineTolerance = 3.0
)

// uriPattern matches link annotation URI entries in the raw PDF stream.
// LaTeX-generated resumes often render link text invisibly, so the URI has
// to be recovered from annotations rather than page text.
var uriPattern = regexp.MustCompile(`/URI\s*\(((?:\\.|[^)\\])*)\)`)

// PDFExtractor extracts page text and hyperlink annotations from PDF bytes.
type PDFExtractor struct {
	logger *zap.Logger
}

// NewPDFExtractor creates a PDF extractor.
func NewPDFExtractor(logger *zap.Logger) *PDFExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFExtractor{logger: logger}
}

// Extract converts PDF bytes into text plus hyperlink annotations. When the
// default per-page extraction yields fewer than 100 characters it retries in
// a layout-preserving mode that reassembles rows by glyph position.
func (e *PDFExtractor) Extract(_ context.Context, doc *types.RawDocument) (result *types.ExtractionResult, err error) {
	// The underlying reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &Error{Filename: doc.Filename, Message: fmt.Sprintf("malformed PDF structure: %v", r)}
		}
	}()

	if len(doc.Bytes) == 0 {
		return nil, &Error{Filename: doc.Filename, Message: "empty PDF document"}
	}

	numPages, err := e.inspect(doc)
	if err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(bytes.NewReader(doc.Bytes), int64(len(doc.Bytes)))
	if err != nil {
		return nil, &Error{Filename: doc.Filename, Message: "cannot decode PDF", Cause: err}
	}

	method := types.ExtractionPDF
	text := e.extractPlain(reader)
	if len(strings.TrimSpace(text)) < minPrimaryTextLen {
		e.logger.Debug("default PDF extraction too short, retrying layout-preserving",
			zap.String("filename", doc.Filename), zap.Int("chars", len(text)))
		if layoutText := e.extractByRows(reader); len(strings.TrimSpace(layoutText)) > len(strings.TrimSpace(text)) {
			text = layoutText
			method = types.ExtractionPDFLayout
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &Error{Filename: doc.Filename, Message: "PDF contains no extractable text"}
	}

	return &types.ExtractionResult{
		Text:       text,
		Method:     method,
		Hyperlinks: extractURIAnnotations(doc.Bytes),
		NumPages:   numPages,
	}, nil
}

// inspect validates the document with pdfcpu and returns the page count.
// Encrypted documents get a distinct error message.
func (e *PDFExtractor) inspect(doc *types.RawDocument) (int, error) {
	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := pdfapi.ReadContext(bytes.NewReader(doc.Bytes), conf)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "password") ||
			strings.Contains(strings.ToLower(err.Error()), "encrypt") {
			return 0, &Error{Filename: doc.Filename, Message: "PDF is password-protected", Cause: err}
		}
		return 0, &Error{Filename: doc.Filename, Message: "corrupted PDF document", Cause: err}
	}
	return ctx.PageCount, nil
}

// extractPlain runs the default per-page text extraction.
func (e *PDFExtractor) extractPlain(reader *pdf.Reader) string {
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Debug("page extraction failed", zap.Int("page", i), zap.Error(err))
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String()
}

// extractByRows reassembles page text from positioned glyph fragments,
// inserting spaces only when the horizontal gap exceeds the character
// tolerance. This keeps words intact on PDFs whose content streams emit
// per-glyph text runs.
func (e *PDFExtractor) extractByRows(reader *pdf.Reader) string {
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		// Rows come back keyed by vertical position; render top-down.
		sort.SliceStable(rows, func(a, b int) bool { return rows[a].Position > rows[b].Position })
		for _, row := range rows {
			sb.WriteString(joinRowContent(row.Content))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// joinRowContent concatenates a row's fragments, spacing on X gaps.
func joinRowContent(texts []pdf.Text) string {
	var sb strings.Builder
	var prevEnd float64
	for idx, t := range texts {
		if idx > 0 {
			gap := t.X - prevEnd
			threshold := t.FontSize * charTolerance
			if threshold <= 0 {
				threshold = 1.0
			}
			if gap > threshold {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	return sb.String()
}

// extractURIAnnotations scans the raw PDF stream for /URI link annotations
// and returns the deduplicated targets in order of appearance.
func extractURIAnnotations(raw []byte) []types.Hyperlink {
	matches := uriPattern.FindAllSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	links := make([]types.Hyperlink, 0, len(matches))
	for _, m := range matches {
		uri := unescapePDFString(string(m[1]))
		if uri == "" || seen[uri] {
			continue
		}
		seen[uri] = true
		links = append(links, types.Hyperlink{URI: uri})
	}
	return links
}

// unescapePDFString resolves the escape sequences allowed in PDF literal strings.
func unescapePDFString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			// A dangling reverse solidus is disregarded.
			if i+1 == len(s) {
				break
			}
			i++
			switch s[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(s[i])
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
