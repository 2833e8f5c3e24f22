package repository

import (
	"context"

	"golang-stock-sentiment/internal/entity"

	"github.com/jonreiter/govader"
)

type vaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderAnalyzer loads the VADER lexicon. The lexicon ships inside the
// binary, so this only has to run once per process.
func NewVaderAnalyzer() (SentimentAnalyzer, error) {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	if analyzer == nil {
		return nil, ErrAnalyzerUnavailable
	}
	return &vaderAnalyzer{analyzer: analyzer}, nil
}

func (v *vaderAnalyzer) PolarityScores(_ context.Context, text string) (entity.Polarity, error) {
	s := v.analyzer.PolarityScores(text)
	return entity.Polarity{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}, nil
}
