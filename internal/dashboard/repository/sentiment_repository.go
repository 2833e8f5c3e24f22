package repository

import (
	"context"
	"errors"

	"golang-stock-sentiment/internal/entity"
)

// ErrAnalyzerUnavailable is returned when no sentiment model is loaded.
var ErrAnalyzerUnavailable = errors.New("sentiment analyzer unavailable")

// SentimentAnalyzer scores the polarity of a single piece of text. Calls
// are independent of each other and implementations must be safe for
// concurrent use.
type SentimentAnalyzer interface {
	PolarityScores(ctx context.Context, text string) (entity.Polarity, error)
}
