package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestServiceRoutesPlainText(t *testing.T) {
	svc := NewService(nil)
	result, err := svc.Extract(context.Background(), &types.RawDocument{
		Bytes:       []byte("John Doe\nSoftware Engineer"),
		ContentType: types.ContentTypePlainText,
		Filename:    "resume.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, types.ExtractionPlainText, result.Method)
	assert.Equal(t, "John Doe\nSoftware Engineer", result.Text)
}

func TestServiceRoutesLaTeXInPlainText(t *testing.T) {
	// Pasted .tex sources arrive as text/plain but must get structural parsing.
	svc := NewService(nil)
	result, err := svc.Extract(context.Background(), &types.RawDocument{
		Bytes:       []byte(latexResume),
		ContentType: types.ContentTypePlainText,
		Filename:    "resume.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, types.ExtractionLaTeX, result.Method)
	assert.NotNil(t, result.StructuredData)
}

func TestServiceRoutesByExtension(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Extract(context.Background(), &types.RawDocument{
		Bytes:       []byte("not really a pdf"),
		ContentType: "application/octet-stream",
		Filename:    "resume.pdf",
	})
	// Routed to the PDF extractor, which rejects the bytes.
	var exErr *Error
	require.ErrorAs(t, err, &exErr)
}

func TestServiceUnsupportedType(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Extract(context.Background(), &types.RawDocument{
		Bytes:       []byte{0x01, 0x02},
		ContentType: "image/png",
		Filename:    "photo.png",
	})
	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
}

func TestPlainTextExtractorEmpty(t *testing.T) {
	extractor := &PlainTextExtractor{}
	_, err := extractor.Extract(context.Background(), &types.RawDocument{
		Bytes:    []byte("   \n  "),
		Filename: "empty.txt",
	})
	var exErr *Error
	require.ErrorAs(t, err, &exErr)
}
