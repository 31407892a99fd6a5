package extraction

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// minDOCXTextLen is the minimum extracted length for a successful parse.
	minDOCXTextLen = 10

	// tableCellDelimiter joins cell text within one table row.
	tableCellDelimiter = " | "
)

// oleMagic is the compound-file header used by legacy .doc files and by
// password-protected OOXML documents (which are OLE-wrapped).
var oleMagic = []byte{0xd0, 0xcf, 0x11, 0xe0}

// DOCXExtractor extracts paragraph and table text from DOCX bytes.
type DOCXExtractor struct {
	logger *zap.Logger
}

// NewDOCXExtractor creates a DOCX extractor.
func NewDOCXExtractor(logger *zap.Logger) *DOCXExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DOCXExtractor{logger: logger}
}

// Extract converts DOCX bytes into text. Paragraph text is separated by
// newlines; table cell text is joined with a delimiter per row. Non-zip
// input and password-protected documents fail with distinct messages, and
// output under 10 characters is rejected as a parse failure.
func (e *DOCXExtractor) Extract(_ context.Context, doc *types.RawDocument) (*types.ExtractionResult, error) {
	if len(doc.Bytes) == 0 {
		return nil, &Error{Filename: doc.Filename, Message: "empty DOCX document"}
	}

	zr, err := zip.NewReader(bytes.NewReader(doc.Bytes), int64(len(doc.Bytes)))
	if err != nil {
		if bytes.HasPrefix(doc.Bytes, oleMagic) {
			return nil, &Error{Filename: doc.Filename, Message: "document is password-protected or uses the legacy .doc format"}
		}
		return nil, &Error{Filename: doc.Filename, Message: "not a valid DOCX archive", Cause: err}
	}

	var documentXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			documentXML, err = f.Open()
			if err != nil {
				return nil, &Error{Filename: doc.Filename, Message: "cannot open word/document.xml", Cause: err}
			}
			break
		}
	}
	if documentXML == nil {
		return nil, &Error{Filename: doc.Filename, Message: "DOCX archive is missing word/document.xml"}
	}
	defer func() { _ = documentXML.Close() }()

	text, paragraphs, err := walkDocumentXML(documentXML)
	if err != nil {
		return nil, &Error{Filename: doc.Filename, Message: "cannot parse word/document.xml", Cause: err}
	}

	text = strings.TrimSpace(text)
	if len(text) < minDOCXTextLen {
		return nil, &Error{Filename: doc.Filename, Message: "DOCX contains no meaningful text"}
	}

	e.logger.Debug("docx extracted", zap.String("filename", doc.Filename), zap.Int("paragraphs", paragraphs))

	return &types.ExtractionResult{
		Text:          text,
		Method:        types.ExtractionDOCX,
		NumParagraphs: paragraphs,
	}, nil
}

// walkDocumentXML streams through WordprocessingML, emitting a line per
// paragraph and joining table cells within a row by the cell delimiter.
func walkDocumentXML(r io.Reader) (string, int, error) {
	decoder := xml.NewDecoder(r)

	var (
		sb         strings.Builder
		paragraph  strings.Builder
		rowCells   []string
		cell       strings.Builder
		paragraphs int
		inCell     bool
	)

	flushParagraph := func() {
		text := strings.TrimSpace(paragraph.String())
		paragraph.Reset()
		if text == "" {
			return
		}
		paragraphs++
		if inCell {
			if cell.Len() > 0 {
				cell.WriteString("\n")
			}
			cell.WriteString(text)
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tr":
				rowCells = rowCells[:0]
			case "tc":
				inCell = true
				cell.Reset()
			case "tab":
				paragraph.WriteString("\t")
			case "br", "cr":
				paragraph.WriteString("\n")
			case "t":
				var content string
				if err := decoder.DecodeElement(&content, &t); err != nil {
					return "", 0, err
				}
				paragraph.WriteString(content)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				flushParagraph()
			case "tc":
				flushParagraph()
				inCell = false
				if text := strings.TrimSpace(cell.String()); text != "" {
					rowCells = append(rowCells, text)
				}
			case "tr":
				if len(rowCells) > 0 {
					sb.WriteString(strings.Join(rowCells, tableCellDelimiter))
					sb.WriteString("\n")
				}
			}
		}
	}

	return sb.String(), paragraphs, nil
}
