package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

var (
	// ErrEmptyTicker is returned when no ticker was supplied.
	ErrEmptyTicker = errors.New("ticker is empty")
	// ErrNewsTableNotFound is returned when the page has no news table.
	ErrNewsTableNotFound = errors.New("news table not found")
)

// NewsRepository fetches the news listing for a ticker.
type NewsRepository interface {
	FetchNewsTable(ctx context.Context, ticker string) (*goquery.Selection, error)
}

type finvizRepository struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient *http.Client
}

// NewFinvizRepository creates a NewsRepository backed by the FinViz quote page.
func NewFinvizRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	return &finvizRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.Scraper.Timeout,
		},
	}
}

// FetchNewsTable downloads the quote page for ticker and returns the
// #news-table element.
func (r *finvizRepository) FetchNewsTable(ctx context.Context, ticker string) (*goquery.Selection, error) {
	if ticker == "" {
		return nil, ErrEmptyTicker
	}

	pageURL := r.cfg.Scraper.BaseURL + url.QueryEscape(ticker)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to create request", logger.ErrorField(err), logger.StringField("url", pageURL))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to fetch news page", logger.ErrorField(err), logger.StringField("url", pageURL))
		return nil, fmt.Errorf("failed to fetch news page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.log.ErrorContext(ctx, "Received non-success response for news page",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("url", pageURL),
		)
		return nil, fmt.Errorf("failed to fetch news page, status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to parse news page", logger.ErrorField(err), logger.StringField("url", pageURL))
		return nil, fmt.Errorf("failed to parse news page: %w", err)
	}

	table := doc.Find("#" + common.NewsTableID).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w for ticker %s", ErrNewsTableNotFound, ticker)
	}

	r.log.DebugContext(ctx, "Fetched news table",
		logger.StringField("ticker", ticker),
		logger.IntField("rows", table.Find("tr").Length()),
	)
	return table, nil
}

func (r *finvizRepository) userAgent() string {
	if ua := strings.TrimSpace(r.cfg.Scraper.UserAgent); ua != "" {
		return ua
	}
	return common.BrowserUserAgent
}
