package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/brewkraft/brewkraft/internal/adapters/outbound/config"
	"github.com/brewkraft/brewkraft/internal/adapters/outbound/tui"
	"github.com/brewkraft/brewkraft/internal/application"
	"github.com/spf13/cobra"
)

func newPriceCmd() *cobra.Command {
	var (
		req        application.OrderRequest
		jsonOutput bool
		path       string
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Validate and price a beverage order",
		Long:  "Build an order from the given choices, validate each one against the menu, and print an itemized receipt.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewOrderService(config.New())

			order, err := svc.PriceOrder(absPath, req)
			if err != nil {
				return fmt.Errorf("pricing order: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(order)
			}

			menu, err := svc.Menu(absPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReceipt(order, menu))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Base, "base", "", "Drink base (espresso, americano, latte, cappuccino)")
	cmd.Flags().StringVar(&req.Size, "size", "", "Serving size (small, medium, large)")
	cmd.Flags().StringVar(&req.Milk, "milk", "", "Milk choice (whole, skim, oat, soy)")
	cmd.Flags().StringArrayVar(&req.Syrups, "syrup", nil, "Syrup to add (repeatable, up to 4 distinct)")
	cmd.Flags().IntVar(&req.Sugar, "sugar", 0, "Teaspoons of sugar (0-5)")
	cmd.Flags().IntVar(&req.Shots, "shots", 0, "Extra espresso shots (0-3)")
	cmd.Flags().BoolVar(&req.Iced, "iced", false, "Serve iced (+20% of base cost)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the priced order as JSON")
	cmd.Flags().StringVar(&path, "path", ".", "Directory to read .brewkraft.yaml from")

	return cmd
}
