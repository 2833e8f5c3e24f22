package service

import (
	"testing"
	"time"

	"golang-stock-sentiment/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRows_CarriesDateForward(t *testing.T) {
	table := newsTable(t, aaplNewsPage)

	rows := ExtractRows(table)

	require.Len(t, rows, 3)
	assert.Equal(t, entity.RawHeadlineRow{Date: "Mar-01-24", Time: "08:00AM", Headline: "AAPL surges"}, rows[0])
	assert.Equal(t, entity.RawHeadlineRow{Date: "Mar-01-24", Time: "08:30AM", Headline: "AAPL sees new partnership"}, rows[1])
	assert.Equal(t, entity.RawHeadlineRow{Date: "Mar-02-24", Time: "10:00AM", Headline: "AAPL drops"}, rows[2])
}

func TestExtractRows_SkipsBrokenRows(t *testing.T) {
	page := `<table id="news-table">
		<tr><td>09:00AM</td><td><a href="#">time before any date</a></td></tr>
		<tr><td>Mar-01-24 08:00AM</td><td><a href="#">first</a></td></tr>
		<tr><td>Mar-05-24 09:00AM</td><td>no link here</td></tr>
		<tr><td>   </td><td><a href="#">empty date cell</a></td></tr>
		<tr><td>08:45AM</td><td><a href="#">second</a></td></tr>
	</table>`
	table := newsTable(t, page)

	rows := ExtractRows(table)

	require.Len(t, rows, 2)
	assert.LessOrEqual(t, len(rows), table.Find("tr").Length())
	assert.Equal(t, "first", rows[0].Headline)
	assert.Equal(t, "second", rows[1].Headline)
	// the link-less row must not move the carried date
	assert.Equal(t, "Mar-01-24", rows[1].Date)
}

func TestExtractRows_EmptyTable(t *testing.T) {
	table := newsTable(t, `<table id="news-table"></table>`)

	assert.Empty(t, ExtractRows(table))
	assert.Empty(t, ExtractRows(nil))
}

func TestParseNewsTable_FinvizFormat(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	table := newsTable(t, aaplNewsPage)

	parsed, err := ParseNewsTable(table, time.Date(2024, 3, 5, 12, 0, 0, 0, loc), loc)

	require.NoError(t, err)
	require.Len(t, parsed, 3)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, loc), parsed[0].Timestamp)
	assert.Equal(t, time.Date(2024, 3, 1, 8, 30, 0, 0, loc), parsed[1].Timestamp)
	assert.Equal(t, time.Date(2024, 3, 2, 10, 0, 0, 0, loc), parsed[2].Timestamp)
	assert.Equal(t, "AAPL drops", parsed[2].Headline)
}

func TestParseRows_ISODatesCarryForward(t *testing.T) {
	table := newsTable(t, `<table id="news-table">
		<tr><td>2024-01-01 09:00</td><td><a href="#">A</a></td></tr>
		<tr><td>09:30</td><td><a href="#">B</a></td></tr>
	</table>`)

	parsed, err := ParseNewsTable(table, time.Now(), time.UTC)

	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, "2024-01-01", parsed[1].Timestamp.Format("2006-01-02"))
	assert.Equal(t, time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC), parsed[1].Timestamp)
}

func TestParseRows_ReplacesToday(t *testing.T) {
	now := time.Date(2024, 6, 14, 15, 0, 0, 0, time.UTC)
	rows := []entity.RawHeadlineRow{
		{Date: "Today", Time: "07:15AM", Headline: "morning"},
		{Date: "Today", Time: "01:05PM", Headline: "afternoon"},
	}

	parsed, err := ParseRows(rows, now, time.UTC)

	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, time.Date(2024, 6, 14, 7, 15, 0, 0, time.UTC), parsed[0].Timestamp)
	assert.Equal(t, time.Date(2024, 6, 14, 13, 5, 0, 0, time.UTC), parsed[1].Timestamp)
}

func TestParseRows_TodayUsesSourceTimeZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// 02:00 UTC on the 15th is still the 14th in New York.
	now := time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC)

	parsed, err := ParseRows([]entity.RawHeadlineRow{{Date: "Today", Time: "09:00PM", Headline: "late"}}, now, loc)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 14, 21, 0, 0, 0, loc), parsed[0].Timestamp)
}

func TestParseRows_UnparseableTimestampFailsWholeParse(t *testing.T) {
	rows := []entity.RawHeadlineRow{
		{Date: "2024-01-01", Time: "09:00", Headline: "fine"},
		{Date: "notadate", Time: "25:99", Headline: "broken"},
	}

	parsed, err := ParseRows(rows, time.Now(), time.UTC)

	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestParseRows_Empty(t *testing.T) {
	parsed, err := ParseRows(nil, time.Now(), time.UTC)

	require.NoError(t, err)
	assert.NotNil(t, parsed)
	assert.Empty(t, parsed)
}

func TestParseTimestamp_LowercaseMeridiem(t *testing.T) {
	ts, err := parseTimestamp("Mar-01-24 8:05pm", time.UTC)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 20, 5, 0, 0, time.UTC), ts)
}
