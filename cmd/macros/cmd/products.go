package cmd

import (
	"context"
	"fmt"

	"github.com/fitstack/macrotracker/internal/app"
	"github.com/fitstack/macrotracker/internal/catalog"
	"github.com/spf13/cobra"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <catalog.yaml>",
		Short: "Insert or update products from a YAML catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}

			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				written, err := a.Tracker.SeedProducts(ctx, products)
				if err != nil {
					return describe(err)
				}
				printer.Printf("==> Seeded %d products from %s\n", written, args[0])
				return nil
			})
		},
	}
}

func ProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List products with nutrients per 100 units",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				products, err := a.Tracker.ListProducts(ctx)
				if err != nil {
					return describe(err)
				}
				if len(products) == 0 {
					fmt.Println("No products yet. Run: macros seed data/products.yaml")
					return nil
				}

				printer.Printf("%-24s %9s %8s %8s %8s  %s\n", "PRODUCT", "KCAL", "PROTEIN", "CARBS", "FAT", "PER")
				for _, p := range products {
					printer.Printf("%-24s %9.1f %8.1f %8.1f %8.1f  100%s\n",
						caser.String(p.Name), p.Calories, p.Protein, p.Carbs, p.Fat, p.ServingUnit)
				}
				return nil
			})
		},
	}
}
