package config

import (
	"time"

	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/config"
)

// Scraper holds configuration for the headline fetcher.
type Scraper struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
	TimeZone  string        `mapstructure:"time_zone"`
}

// Gemini holds the configuration for the Gemini sentiment provider.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Sentiment selects and configures the sentiment model.
type Sentiment struct {
	Provider string `mapstructure:"provider"`
	Gemini   Gemini `mapstructure:"gemini"`
}

// Dashboard holds presentation options.
type Dashboard struct {
	FillGaps bool `mapstructure:"fill_gaps"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App       config.App    `mapstructure:"app"`
	Logger    config.Logger `mapstructure:"logger"`
	API       config.API    `mapstructure:"api"`
	Scraper   Scraper       `mapstructure:"scraper"`
	Sentiment Sentiment     `mapstructure:"sentiment"`
	Dashboard Dashboard     `mapstructure:"dashboard"`
}

// Defaults returns the values used when neither the file nor the
// environment sets a key.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"app.name":                                "stock-news-sentiment",
		"app.env":                                 "development",
		"logger.level":                            "info",
		"logger.encoding":                         "json",
		"api.host":                                "0.0.0.0",
		"api.port":                                8080,
		"api.shutdown_timeout":                    "10s",
		"scraper.base_url":                        common.FinvizQuoteURL,
		"scraper.user_agent":                      common.BrowserUserAgent,
		"scraper.timeout":                         "15s",
		"scraper.time_zone":                       common.DefaultTimeZone,
		"sentiment.provider":                      common.SentimentProviderVader,
		"sentiment.gemini.api_key":                "",
		"sentiment.gemini.model":                  "gemini-2.0-flash",
		"sentiment.gemini.max_request_per_minute": 60,
		"dashboard.fill_gaps":                     false,
	}
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, Defaults()); err != nil {
		return nil, err
	}
	return &cfg, nil
}
