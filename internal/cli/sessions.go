package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewSessionsCmd creates the sessions listing command
func NewSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List saved refinement sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := app.wireRuntime()
			if err != nil {
				return err
			}
			defer rt.Logger.Close()

			summaries, err := rt.Store.List()
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved sessions")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SESSION\tSTATUS\tITERATIONS\tCREATED\tMODIFIED")
			for _, s := range summaries {
				status := "active"
				if s.Finalized {
					status = "finalized"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					s.ID, status, s.Iterations,
					humanize.Time(s.CreatedAt), humanize.Time(s.LastModified))
			}
			return w.Flush()
		},
	}

	return cmd
}
