package nutrition

import (
	"time"

	"github.com/fitstack/macrotracker/internal/model"
)

// SeriesDays is the length of the trend window.
const SeriesDays = 7

// DatedPortion is a portion consumed on a calendar date (YYYY-MM-DD).
type DatedPortion struct {
	Date string
	Portion
}

type DailyTotal struct {
	Date string `json:"date"`
	Totals
}

// DatedPortions converts joined log rows in order.
func DatedPortions(items []model.LogItem) []DatedPortion {
	dated := make([]DatedPortion, 0, len(items))
	for _, item := range items {
		dated = append(dated, DatedPortion{Date: item.LogDate, Portion: PortionOf(item)})
	}
	return dated
}

// WindowStart returns the first date of the window ending at endDate.
func WindowStart(endDate time.Time) time.Time {
	return calendarDay(endDate).AddDate(0, 0, -(SeriesDays - 1))
}

// calendarDay drops the clock and zone so date arithmetic never crosses a
// DST shift.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeeklySeries returns exactly SeriesDays totals for endDate-6 .. endDate,
// oldest first. Days without portions are present with zero totals and
// portions dated outside the window are ignored.
func WeeklySeries(portions []DatedPortion, endDate time.Time) []DailyTotal {
	start := WindowStart(endDate)

	series := make([]DailyTotal, SeriesDays)
	index := make(map[string]int, SeriesDays)
	for i := range series {
		date := start.AddDate(0, 0, i).Format(model.DateLayout)
		series[i] = DailyTotal{Date: date}
		index[date] = i
	}

	for _, p := range portions {
		i, ok := index[p.Date]
		if !ok {
			continue
		}
		series[i].Totals = series[i].Totals.Add(ForQuantity(p.Per100, p.Quantity))
	}

	return series
}
