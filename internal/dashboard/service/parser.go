package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
)

// timestampLayouts are tried before falling back to dateparse. FinViz
// prints "Mar-01-24 08:00AM"; rewritten "Today" rows come out as
// "2024-03-01 08:00AM".
var timestampLayouts = []string{
	"Jan-02-06 3:04PM",
	"2006-01-02 3:04PM",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

var errRowIncomplete = errors.New("row incomplete")

// ExtractRows reads the raw (date, time, headline) rows from a news table.
// Rows without a link, without a cell, with an empty date cell, or that
// only carry a time before any date has been seen are skipped.
func ExtractRows(table *goquery.Selection) []entity.RawHeadlineRow {
	var (
		rows     []entity.RawHeadlineRow
		lastDate string
	)
	if table == nil {
		return rows
	}

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		row, err := extractRow(tr, lastDate)
		if err != nil {
			return
		}
		lastDate = row.Date
		rows = append(rows, row)
	})
	return rows
}

// extractRow reads one table row. The returned row always carries a date:
// either its own or lastDate.
func extractRow(tr *goquery.Selection, lastDate string) (entity.RawHeadlineRow, error) {
	link := tr.Find("a").First()
	cell := tr.Find("td").First()
	if link.Length() == 0 || cell.Length() == 0 {
		return entity.RawHeadlineRow{}, errRowIncomplete
	}

	tokens := strings.Fields(cell.Text())
	row := entity.RawHeadlineRow{Headline: strings.TrimSpace(link.Text())}
	switch {
	case len(tokens) == 0:
		return entity.RawHeadlineRow{}, errRowIncomplete
	case len(tokens) == 1:
		if lastDate == "" {
			return entity.RawHeadlineRow{}, errRowIncomplete
		}
		row.Date = lastDate
		row.Time = tokens[0]
	default:
		row.Date = tokens[0]
		row.Time = tokens[1]
	}
	return row, nil
}

// ParseNewsTable turns the news table into headlines in source order. now
// supplies the date that replaces "Today"; timestamps are read in loc.
// A single unparseable timestamp fails the whole table.
func ParseNewsTable(table *goquery.Selection, now time.Time, loc *time.Location) ([]entity.ParsedHeadline, error) {
	return ParseRows(ExtractRows(table), now, loc)
}

// ParseRows resolves raw rows into timestamped headlines.
func ParseRows(rows []entity.RawHeadlineRow, now time.Time, loc *time.Location) ([]entity.ParsedHeadline, error) {
	if loc == nil {
		loc = time.UTC
	}
	today := utils.FormatDate(now.In(loc))

	parsed := make([]entity.ParsedHeadline, 0, len(rows))
	for _, row := range rows {
		date := row.Date
		if date == common.TodayToken {
			date = today
		}

		ts, err := parseTimestamp(date+" "+row.Time, loc)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, entity.ParsedHeadline{Timestamp: ts, Headline: row.Headline})
	}
	return parsed, nil
}

func parseTimestamp(value string, loc *time.Location) (time.Time, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, normalized, loc); err == nil {
			return ts, nil
		}
	}

	ts, err := dateparse.ParseIn(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", value, err)
	}
	return ts, nil
}
