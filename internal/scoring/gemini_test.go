package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

type stubClient struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (*llm.Result, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Result{
		Text:             s.response,
		Model:            "stub-model",
		PromptTokens:     500,
		CompletionTokens: 300,
	}, nil
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }
func (s *stubClient) Close() error                  { return nil }

func TestGeminiScorer_Score(t *testing.T) {
	client := &stubClient{response: validScoringResponse}
	scorer := NewGeminiScorer(client, nil)

	report, err := scorer.Score(context.Background(), cleanRecord(), "backend role")
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Contains(t, client.lastPrompt, "Acme Corp")
	assert.Contains(t, client.lastPrompt, "backend role")

	assert.Equal(t, types.ScoreMethodGemini, report.ScoringMethod)
	assert.InDelta(t, 76.0, report.TotalScore, 0.001)
	assert.Equal(t, 800, report.TokensUsed)
	assert.Equal(t, "stub-model", report.ModelName)
	assert.False(t, report.ScoredAt.IsZero())

	assertBounds(t, report)
}

func TestGeminiScorer_Score_APIError(t *testing.T) {
	scorer := NewGeminiScorer(&stubClient{err: errors.New("quota exhausted")}, nil)

	report, err := scorer.Score(context.Background(), cleanRecord(), "")
	require.Error(t, err)
	assert.Nil(t, report)

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
}

func TestGeminiScorer_Score_TruncatedResponse(t *testing.T) {
	scorer := NewGeminiScorer(&stubClient{response: `{"total_score": 80, "breakdown": {"forma`}, nil)

	report, err := scorer.Score(context.Background(), cleanRecord(), "")
	require.Error(t, err)
	assert.Nil(t, report)

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.True(t, respErr.Truncated)
}

func TestGeminiScorer_Score_NoClient(t *testing.T) {
	scorer := NewGeminiScorer(nil, nil)
	assert.False(t, scorer.Available())

	_, err := scorer.Score(context.Background(), cleanRecord(), "")
	require.Error(t, err)
}
