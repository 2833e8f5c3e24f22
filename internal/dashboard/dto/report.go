package dto

import (
	"time"

	"golang-stock-sentiment/internal/entity"
)

// SentimentReport is everything one pipeline run produces for a ticker.
type SentimentReport struct {
	Ticker      string                   `json:"ticker"`
	GeneratedAt time.Time                `json:"generated_at"`
	Headlines   []entity.ScoredHeadline  `json:"headlines"`
	Hourly      []entity.SentimentBucket `json:"hourly"`
	Daily       []entity.SentimentBucket `json:"daily"`
	HourlyChart ChartSpec                `json:"hourly_chart"`
	DailyChart  ChartSpec                `json:"daily_chart"`
}

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}
