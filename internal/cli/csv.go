package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all trades to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			trades, err := store.ListTrades()
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = filepath.Join(app.Config.Journal.ExportDir, "trades.csv")
			}
			if err := journal.ExportCSV(path, trades); err != nil {
				return err
			}

			fmt.Printf("exported %d trades to %s\n", len(trades), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default <export_dir>/trades.csv)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import trades from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trades, err := journal.ImportCSV(args[0])
			if err != nil {
				return err
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			for _, t := range trades {
				if err := store.SaveTrade(t); err != nil {
					return fmt.Errorf("import %s: %w", t.ID, err)
				}
			}

			fmt.Printf("imported %d trades\n", len(trades))
			return nil
		},
	}

	return cmd
}
