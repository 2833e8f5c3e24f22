package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"golang-stock-sentiment/internal/entity"
)

type aggregateOptions struct {
	fillGaps bool
}

// AggregateOption tunes Aggregate.
type AggregateOption func(*aggregateOptions)

// WithGapFill makes Aggregate emit an empty bucket for every window
// between the first and last observed one.
func WithGapFill() AggregateOption {
	return func(o *aggregateOptions) { o.fillGaps = true }
}

type bucketSum struct {
	count          int
	neg            float64
	neu            float64
	pos            float64
	sentimentScore float64
}

// Aggregate groups rows into hour or day windows and averages their
// scores. Buckets come back ordered by window start.
func Aggregate(rows []entity.ScoredHeadline, window entity.Window, opts ...AggregateOption) ([]entity.SentimentBucket, error) {
	var o aggregateOptions
	for _, opt := range opts {
		opt(&o)
	}

	buckets := []entity.SentimentBucket{}
	if len(rows) == 0 {
		return buckets, nil
	}

	sums := make(map[int64]*bucketSum)
	starts := make(map[int64]time.Time)
	for i, row := range rows {
		if row.Timestamp.IsZero() {
			return nil, fmt.Errorf("%w: row %d has no timestamp", ErrMalformedInput, i)
		}
		if math.IsNaN(row.SentimentScore) || math.IsInf(row.SentimentScore, 0) {
			return nil, fmt.Errorf("%w: row %d has non-finite sentiment score", ErrMalformedInput, i)
		}

		start, err := window.Truncate(row.Timestamp)
		if err != nil {
			return nil, err
		}
		key := start.UnixNano()
		sum, ok := sums[key]
		if !ok {
			sum = &bucketSum{}
			sums[key] = sum
			starts[key] = start
		}
		sum.count++
		sum.neg += row.Negative
		sum.neu += row.Neutral
		sum.pos += row.Positive
		sum.sentimentScore += row.SentimentScore
	}

	keys := make([]int64, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for i, k := range keys {
		start := starts[k]
		if o.fillGaps && i > 0 {
			prev := buckets[len(buckets)-1].PeriodStart
			for gap := window.Next(prev); gap.Before(start); gap = window.Next(gap) {
				buckets = append(buckets, entity.SentimentBucket{PeriodStart: gap})
			}
		}

		sum := sums[k]
		n := float64(sum.count)
		buckets = append(buckets, entity.SentimentBucket{
			PeriodStart:    start,
			Count:          sum.count,
			Negative:       sum.neg / n,
			Neutral:        sum.neu / n,
			Positive:       sum.pos / n,
			SentimentScore: sum.sentimentScore / n,
		})
	}
	return buckets, nil
}
