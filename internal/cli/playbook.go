package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/pkg/id"
)

func newPlaybookCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playbook",
		Short: "Manage strategy playbooks (rule sets)",
	}

	cmd.AddCommand(
		newPlaybookAddCmd(app),
		newPlaybookListCmd(app),
		newPlaybookShowCmd(app),
		newPlaybookRmCmd(app),
		newPlaybookExportCmd(app),
	)

	return cmd
}

func newPlaybookAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <rules.yaml>",
		Short: "Add or update a playbook from a YAML rule file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := journal.LoadPlaybookFile(args[0])
			if err != nil {
				return err
			}
			p.ID = id.New()
			p.Created = time.Now().UTC()

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SavePlaybook(p); err != nil {
				return err
			}
			fmt.Printf("saved playbook %q (%d rules)\n", p.Name, len(p.Rules))
			return nil
		},
	}
	return cmd
}

func newPlaybookListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List playbooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			playbooks, err := store.ListPlaybooks()
			if err != nil {
				return err
			}
			if len(playbooks) == 0 {
				fmt.Println("no playbooks")
				return nil
			}
			for _, p := range playbooks {
				fmt.Printf("%-24s strategy=%s rules=%d\n", p.Name, p.Strategy, len(p.Rules))
			}
			return nil
		},
	}
	return cmd
}

func newPlaybookShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a playbook's rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := store.GetPlaybook(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (strategy: %s)\n", p.Name, p.Strategy)
			for i, rule := range p.Rules {
				fmt.Printf("  %d. %s\n", i+1, rule)
			}
			return nil
		},
	}
	return cmd
}

func newPlaybookRmCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a playbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			return store.DeletePlaybook(args[0])
		},
	}
	return cmd
}

func newPlaybookExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Write a playbook back out as a YAML rule file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := store.GetPlaybook(args[0])
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = p.Name + ".yaml"
			}
			if err := p.WritePlaybookFile(path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default <name>.yaml)")

	return cmd
}
