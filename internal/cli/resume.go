package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewResumeCmd creates the resume command
func NewResumeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume <session-id>",
		Short: "Resume a saved refinement session",
		Long: `Resume loads a persisted session and continues the refinement loop
from its saved state. Iteration numbering and decision history carry on
where the session left off. Finalized sessions cannot be resumed.`,
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
			if sess.Finalized {
				return fmt.Errorf("session %s is already finalized", sess.ID)
			}

			rt.Logger.Logf("session %s resumed at iteration %d", sess.ID, len(sess.Iterations)+1)
			rt.Presenter.Notice(fmt.Sprintf("Resuming session %s (%d iterations so far)",
				sess.ID, len(sess.Iterations)))

			return runLoop(cmd.Context(), rt, sess)
		},
	}

	return cmd
}
