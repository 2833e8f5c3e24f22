package service

import (
	"fmt"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/entity"
)

const chartTimeLayout = "2006-01-02 15:04:05"

// ChartTitle is the title shown above a ticker's chart for window.
func ChartTitle(ticker string, window entity.Window) string {
	return fmt.Sprintf("%s %s Sentiment Scores", ticker, window.Label())
}

// BuildBarChart plots mean sentiment score against window start.
func BuildBarChart(ticker string, window entity.Window, buckets []entity.SentimentBucket) dto.ChartSpec {
	trace := dto.BarTrace{
		Type: "bar",
		Name: "sentiment_score",
		X:    make([]string, 0, len(buckets)),
		Y:    make([]*float64, 0, len(buckets)),
	}
	for _, b := range buckets {
		trace.X = append(trace.X, b.PeriodStart.Format(chartTimeLayout))
		if b.Empty() {
			trace.Y = append(trace.Y, nil)
			continue
		}
		score := b.SentimentScore
		trace.Y = append(trace.Y, &score)
	}

	return dto.ChartSpec{
		Data: []dto.BarTrace{trace},
		Layout: dto.ChartLayout{
			Title: dto.ChartText{Text: ChartTitle(ticker, window)},
			XAxis: dto.ChartAxis{Title: dto.ChartText{Text: "datetime"}},
			YAxis: dto.ChartAxis{Title: dto.ChartText{Text: "sentiment_score"}},
		},
	}
}
