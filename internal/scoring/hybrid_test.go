package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestHybridScorer_GeminiPreferred(t *testing.T) {
	client := &stubClient{response: validScoringResponse}
	hybrid := NewHybridScorer(client, true, nil)

	report := hybrid.Score(context.Background(), cleanRecord(), "")
	require.NotNil(t, report)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, types.ScoreMethodGemini, report.ScoringMethod)
	assert.False(t, report.FallbackUsed)
	assert.NotEmpty(t, report.ID)
	assertBounds(t, report)
}

func TestHybridScorer_FallbackOnAPIError(t *testing.T) {
	client := &stubClient{err: errors.New("deadline exceeded")}
	hybrid := NewHybridScorer(client, true, nil)

	report := hybrid.Score(context.Background(), cleanRecord(), "")
	require.NotNil(t, report, "scoring never fails outright")

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, types.ScoreMethodGeminiFallback, report.ScoringMethod)
	assert.True(t, report.FallbackUsed)
	assertBounds(t, report)
}

func TestHybridScorer_FallbackOnBadResponse(t *testing.T) {
	client := &stubClient{response: `{"breakdown": {}}`}
	hybrid := NewHybridScorer(client, true, nil)

	report := hybrid.Score(context.Background(), cleanRecord(), "")
	require.NotNil(t, report)

	assert.True(t, report.FallbackUsed)
	assert.Equal(t, types.ScoreMethodGeminiFallback, report.ScoringMethod)
}

func TestHybridScorer_GeminiNotPreferred(t *testing.T) {
	client := &stubClient{response: validScoringResponse}
	hybrid := NewHybridScorer(client, false, nil)

	report := hybrid.Score(context.Background(), cleanRecord(), "")

	assert.Equal(t, 0, client.calls)
	assert.Equal(t, types.ScoreMethodLocal, report.ScoringMethod)
	assert.False(t, report.FallbackUsed)
}

func TestHybridScorer_NilClient(t *testing.T) {
	hybrid := NewHybridScorer(nil, true, nil)

	report := hybrid.Score(context.Background(), cleanRecord(), "")
	require.NotNil(t, report)
	assert.Equal(t, types.ScoreMethodLocal, report.ScoringMethod)
}
