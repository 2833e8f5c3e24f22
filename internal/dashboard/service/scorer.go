package service

import (
	"context"
	"fmt"

	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/entity"
)

// ScoreHeadlines runs every headline through analyzer, one call per row,
// keeping input order. Rows sharing a timestamp stay separate.
func ScoreHeadlines(ctx context.Context, analyzer repository.SentimentAnalyzer, rows []entity.ParsedHeadline) ([]entity.ScoredHeadline, error) {
	if analyzer == nil {
		return nil, repository.ErrAnalyzerUnavailable
	}

	scored := make([]entity.ScoredHeadline, 0, len(rows))
	for i, row := range rows {
		p, err := analyzer.PolarityScores(ctx, row.Headline)
		if err != nil {
			return nil, fmt.Errorf("failed to score headline %d: %w", i, err)
		}
		scored = append(scored, entity.ScoredHeadline{
			ParsedHeadline: row,
			Negative:       p.Negative,
			Neutral:        p.Neutral,
			Positive:       p.Positive,
			SentimentScore: p.Compound,
		})
	}
	return scored, nil
}
