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

func newMenuCmd() *cobra.Command {
	var (
		jsonOutput bool
		path       string
	)

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Show the effective menu",
		Long:  "Show the price catalogs in effect: the standard menu plus any .brewkraft.yaml overrides.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewOrderService(config.New())
			menu, err := svc.Menu(absPath)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(menu)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderMenu(menu))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the menu as JSON")
	cmd.Flags().StringVar(&path, "path", ".", "Directory to read .brewkraft.yaml from")

	return cmd
}
