package service

import (
	"context"
	"time"

	"github.com/fitstack/macrotracker/internal/model"
	"github.com/fitstack/macrotracker/internal/nutrition"
)

// DayEntry is a logged item with the nutrients of its portion.
type DayEntry struct {
	model.LogItem
	Nutrition nutrition.Totals `json:"nutrition"`
}

// DailySummary is everything the dashboard shows for one date.
type DailySummary struct {
	Date     string             `json:"date"`
	Entries  []DayEntry         `json:"entries"`
	Totals   nutrition.Totals   `json:"totals"`
	Goals    model.GoalSet      `json:"goals"`
	Progress nutrition.Progress `json:"progress"`
}

// WeeklyTrend is the zero-filled series ending at End.
type WeeklyTrend struct {
	Start string                 `json:"start"`
	End   string                 `json:"end"`
	Days  []nutrition.DailyTotal `json:"days"`
	Goals model.GoalSet          `json:"goals"`
}

func (s *TrackerService) DailySummary(ctx context.Context, date time.Time) (*DailySummary, error) {
	items, err := s.ListLogsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	goals, err := s.GetGoals(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]DayEntry, 0, len(items))
	for _, item := range items {
		portion := nutrition.PortionOf(item)
		entries = append(entries, DayEntry{
			LogItem:   item,
			Nutrition: nutrition.ForQuantity(portion.Per100, portion.Quantity),
		})
	}

	totals := nutrition.DailyTotals(nutrition.Portions(items))

	return &DailySummary{
		Date:     date.Format(model.DateLayout),
		Entries:  entries,
		Totals:   totals,
		Goals:    goals,
		Progress: nutrition.ProgressAgainst(totals, goals),
	}, nil
}

// WeeklyTrend reads the whole window in one query and aggregates per day.
func (s *TrackerService) WeeklyTrend(ctx context.Context, end time.Time) (*WeeklyTrend, error) {
	start := nutrition.WindowStart(end)
	from := start.Format(model.DateLayout)
	to := end.Format(model.DateLayout)

	items, err := s.logs.ItemsInRange(ctx, from, to)
	if err != nil {
		return nil, unavailable("weekly trend", err)
	}

	goals, err := s.GetGoals(ctx)
	if err != nil {
		return nil, err
	}

	return &WeeklyTrend{
		Start: from,
		End:   to,
		Days:  nutrition.WeeklySeries(nutrition.DatedPortions(items), end),
		Goals: goals,
	}, nil
}
