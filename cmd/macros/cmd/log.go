package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fitstack/macrotracker/internal/app"
	"github.com/fitstack/macrotracker/internal/model"
	"github.com/fitstack/macrotracker/internal/service"
	"github.com/spf13/cobra"
)

func LogCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "log <product-name> <quantity>",
		Short: "Log a quantity of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid quantity %q: must be a number", args[1])
			}

			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				logDate, err := resolveDate(a.Cfg, date)
				if err != nil {
					return err
				}

				product, err := a.Tracker.ProductByName(ctx, args[0])
				if errors.Is(err, service.ErrNotFound) {
					return fmt.Errorf("unknown product %q", args[0])
				}
				if err != nil {
					return describe(err)
				}

				id, err := a.Tracker.InsertLog(ctx, product.ID, quantity, logDate)
				if err != nil {
					return describe(err)
				}

				printer.Printf("Logged %.1f%s of %s on %s (%s)\n",
					quantity, product.ServingUnit, caser.String(product.Name), logDate.Format(model.DateLayout), id)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date to log on (YYYY-MM-DD, default today)")
	return cmd
}

func RemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <log-id>",
		Short: "Remove a logged entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				err := a.Tracker.DeleteLog(ctx, args[0])
				if errors.Is(err, service.ErrNotFound) {
					fmt.Println("Entry already removed")
					return nil
				}
				if err != nil {
					return describe(err)
				}
				fmt.Println("Removed", args[0])
				return nil
			})
		},
	}
}
