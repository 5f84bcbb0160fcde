package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	var dayStr string

	cmd := &cobra.Command{
		Use:   "note [text...]",
		Short: "Write or read the daily recap note",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := dayStr
			if day == "" {
				day = time.Now().UTC().Format("2006-01-02")
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 0 {
				n, err := store.GetNote(day)
				if err != nil {
					return err
				}
				fmt.Printf("%s (updated %s)\n%s\n", n.Day, n.Updated.Format("2006-01-02 15:04"), n.Body)
				return nil
			}

			body := strings.Join(args, " ")
			if err := store.UpsertNote(day, body); err != nil {
				return err
			}
			fmt.Printf("noted %s\n", day)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recap days",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			notes, err := store.ListNotes()
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Println("no notes")
				return nil
			}
			for _, n := range notes {
				first := n.Body
				if i := strings.IndexByte(first, '\n'); i >= 0 {
					first = first[:i]
				}
				fmt.Printf("%s  %s\n", n.Day, first)
			}
			return nil
		},
	})

	cmd.Flags().StringVar(&dayStr, "day", "", "Recap day (YYYY-MM-DD, default today)")

	return cmd
}
