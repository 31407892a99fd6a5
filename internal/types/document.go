// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Supported content types for uploaded documents.
const (
	ContentTypePDF       = "application/pdf"
	ContentTypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeDOC       = "application/msword"
	ContentTypeLaTeX     = "application/x-tex"
	ContentTypeTeXText   = "text/x-tex"
	ContentTypePlainText = "text/plain"
)

// RawDocument is an immutable uploaded document. It is consumed exactly once
// by an extractor and then discarded.
type RawDocument struct {
	Bytes       []byte
	ContentType string
	Filename    string
}

// ExtractionMethod identifies which extractor produced an ExtractionResult.
type ExtractionMethod string

// Extraction method values.
const (
	ExtractionPDF       ExtractionMethod = "pdf"
	ExtractionPDFLayout ExtractionMethod = "pdf_layout"
	ExtractionDOCX      ExtractionMethod = "docx"
	ExtractionLaTeX     ExtractionMethod = "latex"
	ExtractionPlainText ExtractionMethod = "plain_text"
)

// Hyperlink is a link recovered from a document side channel (e.g. PDF
// annotations, where the link text itself may be invisible in extracted text).
type Hyperlink struct {
	URI  string `json:"uri"`
	Text string `json:"text,omitempty"`
}

// ExtractionResult is the output of a format extractor. It is never mutated
// after creation.
type ExtractionResult struct {
	Text           string            `json:"text"`
	Method         ExtractionMethod  `json:"extraction_method"`
	Hyperlinks     []Hyperlink       `json:"hyperlinks,omitempty"`
	NumPages       int               `json:"num_pages,omitempty"`
	NumParagraphs  int               `json:"num_paragraphs,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	RawLaTeX       string            `json:"raw_latex,omitempty"`
	StructuredData *ParsedRecord     `json:"structured_data,omitempty"`
}
