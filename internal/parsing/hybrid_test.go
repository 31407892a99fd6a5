package parsing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func structuredExtraction() *types.ExtractionResult {
	return &types.ExtractionResult{
		Text:   "Jane Smith latex resume",
		Method: types.ExtractionLaTeX,
		StructuredData: &types.ParsedRecord{
			ContactInfo: &types.ContactInfo{Name: "Jane Smith", Email: "jane@example.com"},
			Experience: []types.Experience{
				{Company: "Acme Corp", Position: "Engineer"},
			},
			ParsingMethod: types.ParseMethodLaTeXStructured,
		},
	}
}

func TestHybridParser_StructuredShortcut(t *testing.T) {
	client := &stubClient{response: validGeminiResponse}
	hybrid := NewHybridParser(client, nil)

	record := hybrid.Parse(context.Background(), structuredExtraction())
	require.NotNil(t, record)

	assert.Equal(t, 0, client.calls, "structured extraction must not trigger a model call")
	assert.Equal(t, types.ParseMethodLaTeXStructured, record.ParsingMethod)
	assert.Equal(t, "Jane Smith", record.ContactInfo.Name)
}

func TestHybridParser_GeminiPreferred(t *testing.T) {
	client := &stubClient{response: validGeminiResponse}
	hybrid := NewHybridParser(client, nil)

	record := hybrid.Parse(context.Background(), &types.ExtractionResult{Text: sampleResume})
	require.NotNil(t, record)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, types.ParseMethodGemini, record.ParsingMethod)
	assert.Equal(t, "Acme Corp", record.Experience[0].Company)
}

func TestHybridParser_FallbackOnAPIError(t *testing.T) {
	client := &stubClient{err: errors.New("deadline exceeded")}
	hybrid := NewHybridParser(client, nil)

	record := hybrid.Parse(context.Background(), &types.ExtractionResult{Text: sampleResume})
	require.NotNil(t, record, "parsing never fails outright")

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, types.ParseMethodFallbackRegex, record.ParsingMethod)
	assert.Equal(t, "Jane Smith", record.ContactInfo.Name)
}

func TestHybridParser_FallbackOnTruncatedResponse(t *testing.T) {
	client := &stubClient{response: `{"contact_info": {"name": "Jane Smith", "sect`}
	hybrid := NewHybridParser(client, nil)

	record := hybrid.Parse(context.Background(), &types.ExtractionResult{Text: sampleResume})
	require.NotNil(t, record)

	assert.Equal(t, types.ParseMethodFallbackRegex, record.ParsingMethod)
	assert.NotContains(t, record.ContactInfo.Name, "sect", "truncated model output must not leak into the record")
}

func TestHybridParser_NilClientUsesRules(t *testing.T) {
	hybrid := NewHybridParser(nil, nil)

	record := hybrid.Parse(context.Background(), &types.ExtractionResult{Text: sampleResume})
	require.NotNil(t, record)
	assert.Equal(t, types.ParseMethodFallbackRegex, record.ParsingMethod)
}

func TestHybridParser_MergesPartialStructuredData(t *testing.T) {
	// Structured data with content but no contact does not qualify for the
	// shortcut; after the model fails it still backfills the fallback record.
	extraction := &types.ExtractionResult{
		Text: "plain prose with no recognizable structure at all",
		StructuredData: &types.ParsedRecord{
			Experience: []types.Experience{{Company: "Acme Corp", Position: "Engineer"}},
		},
	}
	client := &stubClient{err: errors.New("unavailable")}
	hybrid := NewHybridParser(client, nil)

	record := hybrid.Parse(context.Background(), extraction)
	require.NotNil(t, record)

	assert.Equal(t, 1, client.calls)
	require.Len(t, record.Experience, 1)
	assert.Equal(t, "Acme Corp", record.Experience[0].Company)
}
