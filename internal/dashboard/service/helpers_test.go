package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"golang-stock-sentiment/internal/entity"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const aaplNewsPage = `<html><body>
<table id="news-table">
  <tr><td width="130" align="right">Mar-01-24 08:00AM&nbsp;&nbsp;</td><td align="left"><div class="news-link-left"><a class="tab-link-news" href="/n/1">AAPL surges</a></div></td></tr>
  <tr><td width="130" align="right">08:30AM&nbsp;&nbsp;</td><td align="left"><div class="news-link-left"><a class="tab-link-news" href="/n/2">AAPL sees new partnership</a></div></td></tr>
  <tr><td width="130" align="right">Mar-02-24 10:00AM&nbsp;&nbsp;</td><td align="left"><div class="news-link-left"><a class="tab-link-news" href="/n/3">AAPL drops</a></div></td></tr>
</table>
</body></html>`

func newsTable(t *testing.T, page string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	table := doc.Find("#news-table")
	require.Equal(t, 1, table.Length())
	return table
}

// fakeAnalyzer returns canned scores per headline and neutral otherwise.
type fakeAnalyzer struct {
	mu     sync.Mutex
	scores map[string]entity.Polarity
	err    error
	calls  []string
}

func (f *fakeAnalyzer) PolarityScores(_ context.Context, text string) (entity.Polarity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, text)
	if f.err != nil {
		return entity.Polarity{}, f.err
	}
	if p, ok := f.scores[text]; ok {
		return p, nil
	}
	return entity.Polarity{Neutral: 1}, nil
}

var errModelDown = errors.New("model down")

func aaplScores() map[string]entity.Polarity {
	return map[string]entity.Polarity{
		"AAPL surges":               {Negative: 0, Neutral: 0.4, Positive: 0.6, Compound: 0.5},
		"AAPL sees new partnership": {Negative: 0, Neutral: 0.8, Positive: 0.2, Compound: 0.25},
		"AAPL drops":                {Negative: 0.5, Neutral: 0.5, Positive: 0, Compound: -0.3},
	}
}
