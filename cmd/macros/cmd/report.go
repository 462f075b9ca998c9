package cmd

import (
	"context"
	"strings"

	"github.com/fitstack/macrotracker/internal/app"
	"github.com/fitstack/macrotracker/internal/nutrition"
	"github.com/spf13/cobra"
)

func TodayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the entries and goal progress for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				day, err := resolveDate(a.Cfg, date)
				if err != nil {
					return err
				}

				summary, err := a.Tracker.DailySummary(ctx, day)
				if err != nil {
					return describe(err)
				}

				printer.Printf("==> %s\n", summary.Date)
				if len(summary.Entries) == 0 {
					printer.Println("Nothing logged")
				}
				for _, e := range summary.Entries {
					printer.Printf("  %-24s %7.1f%-2s %8.1f kcal  %s\n",
						caser.String(e.Name), e.Quantity, e.ServingUnit, e.Nutrition.Calories, e.ID)
				}

				printer.Println()
				printProgress("Calories", summary.Progress.Calories, "kcal")
				printProgress("Protein", summary.Progress.Protein, "g")
				printProgress("Carbs", summary.Progress.Carbs, "g")
				printProgress("Fat", summary.Progress.Fat, "g")
				if summary.Goals.IsDefault {
					printer.Println("(default goals, set your own with: macros goals set)")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to show (YYYY-MM-DD, default today)")
	return cmd
}

func WeekCmd() *cobra.Command {
	var end string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show calories for the 7 days ending at a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				endDate, err := resolveDate(a.Cfg, end)
				if err != nil {
					return err
				}

				trend, err := a.Tracker.WeeklyTrend(ctx, endDate)
				if err != nil {
					return describe(err)
				}

				printer.Printf("==> %s to %s\n", trend.Start, trend.End)
				for _, d := range trend.Days {
					ratio := nutrition.ProgressRatio(d.Totals.Calories, trend.Goals.Calories)
					printer.Printf("  %s %s %8.0f kcal\n", d.Date, bar(ratio, 20), d.Totals.Calories)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&end, "end", "", "last day of the window (YYYY-MM-DD, default today)")
	return cmd
}

func printProgress(label string, p nutrition.NutrientProgress, unit string) {
	printer.Printf("  %-9s %s %8.1f / %.0f %s\n", label, bar(p.Ratio, 20), p.Consumed, p.Goal, unit)
}

// bar renders a ratio in [0, 1] as a fixed-width meter.
func bar(ratio float64, width int) string {
	filled := int(ratio*float64(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
