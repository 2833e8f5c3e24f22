package service

import (
	"context"
	"strings"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"
)

// SentimentService runs the fetch, parse, score and aggregate pipeline for
// one ticker.
type SentimentService interface {
	Analyze(ctx context.Context, ticker string) (*dto.SentimentReport, error)
}

type sentimentService struct {
	cfg      *config.Config
	log      *logger.Logger
	newsRepo repository.NewsRepository
	analyzer repository.SentimentAnalyzer
	location *time.Location
	now      func() time.Time
}

// NewSentimentService creates a new sentiment service. loc is the time
// zone the news source prints its timestamps in.
func NewSentimentService(cfg *config.Config, log *logger.Logger, newsRepo repository.NewsRepository, analyzer repository.SentimentAnalyzer, loc *time.Location) SentimentService {
	if loc == nil {
		loc = time.UTC
	}
	return &sentimentService{
		cfg:      cfg,
		log:      log,
		newsRepo: newsRepo,
		analyzer: analyzer,
		location: loc,
		now:      time.Now,
	}
}

// NormalizeTicker trims and uppercases user input.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Analyze returns the scored headlines and hourly/daily buckets for ticker.
// Every failure is a *PipelineError.
func (s *sentimentService) Analyze(ctx context.Context, ticker string) (*dto.SentimentReport, error) {
	ticker = NormalizeTicker(ticker)
	now := s.now().In(s.location)

	table, err := s.newsRepo.FetchNewsTable(ctx, ticker)
	if err != nil {
		return nil, newPipelineError(StageFetch, ticker, err)
	}

	parsed, err := ParseNewsTable(table, now, s.location)
	if err != nil {
		return nil, newPipelineError(StageParse, ticker, err)
	}
	s.logParsed(ctx, ticker, parsed)

	scored, err := ScoreHeadlines(ctx, s.analyzer, parsed)
	if err != nil {
		return nil, newPipelineError(StageScore, ticker, err)
	}

	var opts []AggregateOption
	if s.cfg.Dashboard.FillGaps {
		opts = append(opts, WithGapFill())
	}
	hourly, err := Aggregate(scored, entity.WindowHour, opts...)
	if err != nil {
		return nil, newPipelineError(StageAggregate, ticker, err)
	}
	daily, err := Aggregate(scored, entity.WindowDay, opts...)
	if err != nil {
		return nil, newPipelineError(StageAggregate, ticker, err)
	}

	s.log.InfoContext(ctx, "Sentiment analysis completed",
		logger.StringField("ticker", ticker),
		logger.IntField("headlines", len(scored)),
		logger.IntField("hourly_buckets", len(hourly)),
		logger.IntField("daily_buckets", len(daily)),
	)

	return &dto.SentimentReport{
		Ticker:      ticker,
		GeneratedAt: now,
		Headlines:   scored,
		Hourly:      hourly,
		Daily:       daily,
		HourlyChart: BuildBarChart(ticker, entity.WindowHour, hourly),
		DailyChart:  BuildBarChart(ticker, entity.WindowDay, daily),
	}, nil
}

func (s *sentimentService) logParsed(ctx context.Context, ticker string, parsed []entity.ParsedHeadline) {
	if len(parsed) == 0 {
		s.log.DebugContext(ctx, "Parsed news table is empty", logger.StringField("ticker", ticker))
		return
	}
	s.log.DebugContext(ctx, "Parsed news table",
		logger.StringField("ticker", ticker),
		logger.IntField("rows", len(parsed)),
		logger.Field("first", parsed[0].Timestamp),
		logger.Field("last", parsed[len(parsed)-1].Timestamp),
	)
}
