package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/trade"
)

// App carries the loaded configuration into subcommands.
type App struct {
	ConfigPath string
	DBPath     string

	Config *config.Config
}

func (a *App) openStore() (*journal.Store, error) {
	return journal.Open(a.Config.Journal.DBPath)
}

func (a *App) anchor() time.Time {
	// Validated at config load, cannot fail here.
	t, _ := a.Config.Account.CreatedAtTime()
	return t
}

func (a *App) multiplier() trade.MultiplierFunc {
	return trade.MultiplierWith(a.Config.Multipliers)
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "tradebook",
		Short:         "Tradebook — trade journal, playbooks, and performance analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&app.DBPath, "db", "", "SQLite journal database (overrides config)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var (
			cfg *config.Config
			err error
		)
		if app.ConfigPath != "" {
			cfg, err = config.LoadFromFile(app.ConfigPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if app.DBPath != "" {
			cfg.Journal.DBPath = app.DBPath
		}
		app.Config = cfg
		return nil
	}

	// Subcommands
	cmd.AddCommand(
		newAddCmd(app),
		newCloseCmd(app),
		newListCmd(app),
		newStatsCmd(app),
		newReportCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newPlaybookCmd(app),
		newNoteCmd(app),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tradebook (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
