package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RevCBH/refinery/internal/draft"
	"github.com/RevCBH/refinery/internal/refine"
	"github.com/RevCBH/refinery/internal/session"
)

// NewRunCmd creates the run command
func NewRunCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <draft-spec>",
		Short: "Start a refinement session from a draft specification",
		Long: `Run loads a draft specification (JSON or YAML), starts a new
refinement session, and drives it until finalization or abandonment.
The session is checkpointed after every iteration and can be resumed
with 'refinery resume'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := app.wireRuntime()
			if err != nil {
				return err
			}
			defer rt.Logger.Close()

			spec, err := draft.Load(args[0])
			if err != nil {
				return err
			}

			sess := session.New(spec)
			rt.Logger.Logf("session %s started from %s", sess.ID, args[0])
			rt.Presenter.Notice(fmt.Sprintf("Session %s started", sess.ID))

			return runLoop(cmd.Context(), rt, sess)
		},
	}

	return cmd
}

// runLoop drives the refinement loop with signal-aware cancellation and
// turns the not-finalized outcome into a resumable hint.
func runLoop(ctx context.Context, rt *Runtime, sess *session.Session) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := rt.Loop.Run(ctx, sess)
	if errors.Is(err, refine.ErrNotFinalized) {
		rt.Presenter.Notice(fmt.Sprintf("Session saved. Resume with: refinery resume %s", sess.ID))
		return err
	}
	if err != nil {
		rt.Logger.LogError("refinement loop", err)
		return err
	}
	return nil
}
