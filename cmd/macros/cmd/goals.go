package cmd

import (
	"context"

	"github.com/fitstack/macrotracker/internal/app"
	"github.com/fitstack/macrotracker/internal/model"
	"github.com/spf13/cobra"
)

func GoalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show or change daily goals",
	}

	cmd.AddCommand(goalsShowCmd())
	cmd.AddCommand(goalsSetCmd())
	return cmd
}

func goalsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current daily goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				goals, err := a.Tracker.GetGoals(ctx)
				if err != nil {
					return describe(err)
				}
				printGoals(goals)
				return nil
			})
		},
	}
}

// goalsSetCmd changes only the goals passed as flags.
func goalsSetCmd() *cobra.Command {
	var calories, protein, carbs, fat float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change daily goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				goals, err := a.Tracker.GetGoals(ctx)
				if err != nil {
					return describe(err)
				}

				flags := cmd.Flags()
				if flags.Changed("calories") {
					goals.Calories = calories
				}
				if flags.Changed("protein") {
					goals.Protein = protein
				}
				if flags.Changed("carbs") {
					goals.Carbs = carbs
				}
				if flags.Changed("fat") {
					goals.Fat = fat
				}

				saved, err := a.Tracker.UpdateGoals(ctx, goals)
				if err != nil {
					return describe(err)
				}
				printGoals(saved)
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&calories, "calories", 0, "daily calories (kcal)")
	cmd.Flags().Float64Var(&protein, "protein", 0, "daily protein (g)")
	cmd.Flags().Float64Var(&carbs, "carbs", 0, "daily carbs (g)")
	cmd.Flags().Float64Var(&fat, "fat", 0, "daily fat (g)")
	return cmd
}

func printGoals(goals model.GoalSet) {
	printer.Printf("Calories %8.0f kcal\n", goals.Calories)
	printer.Printf("Protein  %8.0f g\n", goals.Protein)
	printer.Printf("Carbs    %8.0f g\n", goals.Carbs)
	printer.Printf("Fat      %8.0f g\n", goals.Fat)
	if goals.IsDefault {
		printer.Println("(defaults)")
	}
}
