package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RevCBH/refinery/internal/finalspec"
)

// NewExportCmd creates the export command
func NewExportCmd(app *App) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <session-id>",
		Short: "Export a finalized specification",
		Long: `Export renders the finalized specification of a session as JSON,
YAML, or a markdown report. Sessions that have not been finalized
cannot be exported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := app.wireRuntime()
			if err != nil {
				return err
			}
			defer rt.Logger.Close()

			sess, err := rt.Store.Load(args[0])
			if err != nil {
				return err
			}
			if !sess.Finalized || sess.FinalSpec == nil {
				return fmt.Errorf("session %s has not been finalized", sess.ID)
			}

			f, err := finalspec.ParseFormat(format)
			if err != nil {
				return err
			}
			rendered, err := sess.FinalSpec.Export(f)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}
			if err := os.WriteFile(output, []byte(rendered), 0644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			rt.Presenter.Notice(fmt.Sprintf("Exported session %s to %s", sess.ID, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown",
		"Export format: json, yaml, or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Output file (default stdout)")

	return cmd
}
