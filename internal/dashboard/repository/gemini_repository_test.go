package repository

import (
	"testing"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolarityResponse(t *testing.T) {
	p, err := parsePolarityResponse("```json\n{\"neg\": 0.1, \"neu\": 0.6, \"pos\": 0.3, \"compound\": 0.42}\n```")

	require.NoError(t, err)
	assert.InDelta(t, 0.1, p.Negative, 1e-9)
	assert.InDelta(t, 0.6, p.Neutral, 1e-9)
	assert.InDelta(t, 0.3, p.Positive, 1e-9)
	assert.Equal(t, 0.42, p.Compound)
}

func TestParsePolarityResponse_Normalizes(t *testing.T) {
	p, err := parsePolarityResponse(`{"neg": 0.5, "neu": 1.0, "pos": 0.5, "compound": 3}`)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.Negative+p.Neutral+p.Positive, 1e-9)
	assert.InDelta(t, 0.5, p.Neutral, 1e-9)
	assert.Equal(t, 1.0, p.Compound)
}

func TestParsePolarityResponse_AllZeroIsNeutral(t *testing.T) {
	p, err := parsePolarityResponse(`{"neg": 0, "neu": 0, "pos": 0, "compound": 0}`)

	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Neutral)
}

func TestParsePolarityResponse_Invalid(t *testing.T) {
	_, err := parsePolarityResponse("")
	assert.Error(t, err)

	_, err = parsePolarityResponse("the headline is positive")
	assert.Error(t, err)
}

func TestNewGeminiAnalyzer_RequiresClient(t *testing.T) {
	cfg := &config.Config{Sentiment: config.Sentiment{Gemini: config.Gemini{MaxRequestPerMinute: 10}}}

	_, err := NewGeminiAnalyzer(cfg, logger.NewNop(), nil)

	assert.ErrorIs(t, err, ErrAnalyzerUnavailable)
}

func TestBuildPolarityPrompt_QuotesHeadline(t *testing.T) {
	prompt := buildPolarityPrompt(`AAPL "surges"`)

	assert.Contains(t, prompt, `"AAPL \"surges\""`)
	assert.Contains(t, prompt, `"compound"`)
}
