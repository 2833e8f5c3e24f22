package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// geminiAnalyzer asks a Gemini model for VADER-style polarity scores.
type geminiAnalyzer struct {
	cfg            *config.Config
	log            *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAnalyzer creates a SentimentAnalyzer backed by the Gemini API.
func NewGeminiAnalyzer(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (SentimentAnalyzer, error) {
	if genAiClient == nil {
		return nil, ErrAnalyzerUnavailable
	}
	if cfg.Sentiment.Gemini.MaxRequestPerMinute <= 0 {
		return nil, fmt.Errorf("gemini max_request_per_minute must be positive, got %d", cfg.Sentiment.Gemini.MaxRequestPerMinute)
	}
	secondsPerRequest := time.Minute / time.Duration(cfg.Sentiment.Gemini.MaxRequestPerMinute)
	return &geminiAnalyzer{
		cfg:            cfg,
		log:            log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		genAiClient:    genAiClient,
	}, nil
}

func (g *geminiAnalyzer) PolarityScores(ctx context.Context, text string) (entity.Polarity, error) {
	if err := g.requestLimiter.Wait(ctx); err != nil {
		return entity.Polarity{}, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(buildPolarityPrompt(text), "user"),
	}
	temperature := float32(0)
	resp, err := g.genAiClient.Models.GenerateContent(ctx, g.cfg.Sentiment.Gemini.Model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      &temperature,
	})
	if err != nil {
		g.log.ErrorContext(ctx, "Failed to request Gemini polarity", logger.ErrorField(err), logger.StringField("headline", text))
		return entity.Polarity{}, fmt.Errorf("failed to request Gemini polarity: %w", err)
	}

	polarity, err := parsePolarityResponse(resp.Text())
	if err != nil {
		g.log.ErrorContext(ctx, "Failed to parse Gemini polarity", logger.ErrorField(err), logger.StringField("headline", text))
		return entity.Polarity{}, err
	}
	return polarity, nil
}

func buildPolarityPrompt(headline string) string {
	return fmt.Sprintf(`You are a financial news sentiment scorer. Score the headline below the way the VADER sentiment model does.

Headline: %q

Respond with JSON only:
{
  "neg": {0.0 - 1.0},
  "neu": {0.0 - 1.0},
  "pos": {0.0 - 1.0},
  "compound": {-1.0 - 1.0}
}
neg, neu and pos must add up to 1.0.`, headline)
}

// parsePolarityResponse decodes the model's JSON answer and forces it back
// into range: components are rescaled to sum to 1, compound is clamped.
func parsePolarityResponse(raw string) (entity.Polarity, error) {
	raw = strings.Trim(strings.TrimSpace(raw), "`json\n`")
	if raw == "" {
		return entity.Polarity{}, fmt.Errorf("no content found in Gemini response")
	}

	var p entity.Polarity
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return entity.Polarity{}, fmt.Errorf("failed to unmarshal polarity from Gemini response: %w", err)
	}

	p.Negative = clamp(p.Negative, 0, 1)
	p.Neutral = clamp(p.Neutral, 0, 1)
	p.Positive = clamp(p.Positive, 0, 1)
	p.Compound = clamp(p.Compound, -1, 1)

	sum := p.Negative + p.Neutral + p.Positive
	if sum == 0 {
		p.Neutral = 1
	} else {
		p.Negative /= sum
		p.Neutral /= sum
		p.Positive /= sum
	}
	return p, nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}
