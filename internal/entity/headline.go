package entity

import "time"

// RawHeadlineRow is one row read from the news table before timestamps are
// resolved. Date is empty when the row only carried a time.
type RawHeadlineRow struct {
	Date     string `json:"date,omitempty"`
	Time     string `json:"time"`
	Headline string `json:"headline"`
}

// ParsedHeadline is a headline with its resolved publication timestamp.
type ParsedHeadline struct {
	Timestamp time.Time `json:"datetime"`
	Headline  string    `json:"headline"`
}

// Polarity is the output of a sentiment model for one piece of text.
// Negative, Neutral and Positive sum to roughly 1; Compound is in [-1, 1].
type Polarity struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// ScoredHeadline is a ParsedHeadline together with its polarity scores.
// SentimentScore holds the model's compound score.
type ScoredHeadline struct {
	ParsedHeadline
	Negative       float64 `json:"neg"`
	Neutral        float64 `json:"neu"`
	Positive       float64 `json:"pos"`
	SentimentScore float64 `json:"sentiment_score"`
}
