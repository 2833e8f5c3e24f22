package common

const (
	FinvizQuoteURL   = "https://finviz.com/quote.ashx?t="
	NewsTableID      = "news-table"
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 6.1; WOW64; rv:20.0) Gecko/20100101 Firefox/20.0"
	DefaultTimeZone  = "America/New_York"

	// TodayToken is what FinViz prints in place of the current date.
	TodayToken = "Today"

	SentimentProviderVader  = "vader"
	SentimentProviderGemini = "gemini"

	// InvalidTickerMessage is the only thing a user sees when a run fails.
	InvalidTickerMessage = "Enter a correct stock ticker, e.g. 'AAPL' above and hit Enter."
)
