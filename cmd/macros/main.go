package main

import (
	"os"

	"github.com/fitstack/macrotracker/cmd/macros/cmd"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// The CLI is a local tool; default to development unless told otherwise.
	_ = godotenv.Load()
	if os.Getenv("APP_ENV") == "" {
		_ = os.Setenv("APP_ENV", "development")
	}

	rootCmd := &cobra.Command{
		Use:           "macros",
		Short:         "Track daily food intake against macro goals",
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(cmd.MigrateCmd())
	rootCmd.AddCommand(cmd.SeedCmd())
	rootCmd.AddCommand(cmd.ProductsCmd())
	rootCmd.AddCommand(cmd.LogCmd())
	rootCmd.AddCommand(cmd.RemoveCmd())
	rootCmd.AddCommand(cmd.TodayCmd())
	rootCmd.AddCommand(cmd.WeekCmd())
	rootCmd.AddCommand(cmd.GoalsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
