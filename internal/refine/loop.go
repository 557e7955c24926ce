// Package refine runs the iterative refinement loop: generate and rank
// suggestions, collect decisions, apply them additively, checkpoint the
// session, and check for convergence, until the user finalizes or the
// iteration cap is reached.
package refine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RevCBH/refinery/internal/draft"
	"github.com/RevCBH/refinery/internal/finalspec"
	"github.com/RevCBH/refinery/internal/session"
	"github.com/RevCBH/refinery/internal/suggest"
)

// ErrNotFinalized is returned when the loop ends without the user
// finalizing the specification. The session remains resumable.
var ErrNotFinalized = errors.New("refinement ended without finalization")

// Approver collects one decision per suggestion plus closing feedback.
type Approver interface {
	Process(suggestions []suggest.Suggestion, state *session.WorkingState) (session.Feedback, error)
}

// Prompter asks the loop's own yes/no questions (finalize, continue).
type Prompter interface {
	Confirm(question string, def bool) (bool, error)
}

// Presenter displays loop progress.
type Presenter interface {
	IterationHeader(number, max int)
	StateOverview(state *session.WorkingState)
	IterationMetrics(m session.Metrics)
	Convergence(remaining int, acceptance float64)
	Finalized(spec *finalspec.Spec, readiness finalspec.Readiness)
	Notice(msg string)
}

// Store persists session checkpoints.
type Store interface {
	Save(sess *session.Session) error
}

// Logger receives loop progress for the session log file.
type Logger interface {
	Logf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// Options configures the loop.
type Options struct {
	MaxIterations        int
	ConvergenceThreshold float64
	RemainingIssuesFloor int
}

// DefaultOptions returns the standard loop configuration.
func DefaultOptions() Options {
	return Options{
		MaxIterations:        10,
		ConvergenceThreshold: 0.95,
		RemainingIssuesFloor: 2,
	}
}

// Loop orchestrates one refinement session from its current state to
// finalization or abandonment.
type Loop struct {
	opts      Options
	generator *suggest.Generator
	approver  Approver
	prompter  Prompter
	presenter Presenter
	store     Store
	logger    Logger
	phase     Phase
}

// New creates a refinement loop. Logger may be nil.
func New(opts Options, generator *suggest.Generator, approver Approver, prompter Prompter, presenter Presenter, store Store, logger Logger) *Loop {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Loop{
		opts:      opts,
		generator: generator,
		approver:  approver,
		prompter:  prompter,
		presenter: presenter,
		store:     store,
		logger:    logger,
		phase:     PhaseActive,
	}
}

// Phase reports the loop's current workflow phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Run drives the session until finalization, abandonment, or the
// iteration cap. Each iteration is checkpointed before any further
// prompt, so interrupting between iterations never loses decisions.
func (l *Loop) Run(ctx context.Context, sess *session.Session) error {
	if sess.Finalized {
		return fmt.Errorf("session %s is already finalized", sess.ID)
	}

	for len(sess.Iterations) < l.opts.MaxIterations {
		if err := ctx.Err(); err != nil {
			return err
		}

		number := len(sess.Iterations) + 1
		l.presenter.IterationHeader(number, l.opts.MaxIterations)
		l.presenter.StateOverview(&sess.CurrentState)

		start := time.Now()
		suggestions := suggest.Rank(l.generator.All(findings(&sess.CurrentState)))
		l.logger.Logf("session %s iteration %d: %d suggestions", sess.ID, number, len(suggestions))

		feedback, err := l.approver.Process(suggestions, &sess.CurrentState)
		if err != nil {
			return fmt.Errorf("collecting feedback: %w", err)
		}

		changes := Apply(&sess.CurrentState, feedback.Decisions)

		it := session.Iteration{
			Number:               number,
			SuggestionsPresented: len(suggestions),
			Feedback:             feedback,
			ChangesApplied:       changes,
			Timestamp:            start,
			DurationSeconds:      time.Since(start).Seconds(),
		}
		sess.RecordIteration(it)

		if err := l.store.Save(sess); err != nil {
			return fmt.Errorf("checkpointing session %s: %w", sess.ID, err)
		}

		l.presenter.IterationMetrics(it.Metrics())
		l.logger.Logf("session %s iteration %d: %d changes applied, acceptance %.2f",
			sess.ID, number, changes, it.Feedback.AcceptanceRate())

		if l.Converged(sess) {
			l.transition(PhaseConverged)
			l.presenter.Convergence(sess.CurrentState.RemainingIssues(), it.Feedback.AcceptanceRate())

			finalize, err := l.prompter.Confirm("Specification has converged. Finalize it now?", true)
			if err != nil {
				return err
			}
			if finalize {
				return l.finalize(sess)
			}
			l.transition(PhaseActive)
		}

		if !feedback.WantsToContinue {
			finalize, err := l.prompter.Confirm("Finalize the specification before stopping?", false)
			if err != nil {
				return err
			}
			if finalize {
				return l.finalize(sess)
			}
			l.transition(PhaseAbandoned)
			return ErrNotFinalized
		}
	}

	// Cap reached: one last chance to finalize as-is.
	l.presenter.Notice(fmt.Sprintf("Maximum iterations (%d) reached without convergence", l.opts.MaxIterations))
	finalize, err := l.prompter.Confirm("Finalize the specification as-is?", true)
	if err != nil {
		return err
	}
	if finalize {
		return l.finalize(sess)
	}
	l.transition(PhaseAbandoned)
	return ErrNotFinalized
}

func (l *Loop) transition(to Phase) {
	if CanTransition(l.phase, to) {
		l.phase = to
	}
}

// finalize freezes the session with its finalized specification and
// persists it.
func (l *Loop) finalize(sess *session.Session) error {
	spec := BuildFinalSpec(sess)
	sess.Finalize(spec)

	if err := l.store.Save(sess); err != nil {
		return fmt.Errorf("saving finalized session %s: %w", sess.ID, err)
	}

	l.transition(PhaseFinalized)
	l.logger.Logf("session %s finalized: confidence %.2f, %d requirements",
		sess.ID, spec.ConfidenceScore, len(spec.Requirements))
	l.presenter.Finalized(spec, spec.ExecutionReadiness())
	return nil
}

// BuildFinalSpec assembles the finalized specification from the
// session's current state and history.
func BuildFinalSpec(sess *session.Session) *finalspec.Spec {
	var handled []draft.EdgeCase
	for _, ec := range sess.CurrentState.EdgeCases {
		if ec.Handled {
			handled = append(handled, ec)
		}
	}

	return &finalspec.Spec{
		Requirements:           append([]draft.Requirement(nil), sess.CurrentState.Requirements...),
		ResolvedEdgeCases:      handled,
		ResolvedContradictions: append([]draft.Contradiction(nil), sess.CurrentState.Contradictions...),
		CompleteRequirementSet: len(sess.CurrentState.CompletenessGaps) == 0,
		ConfidenceScore:        Confidence(sess),
		ApprovalTimestamp:      time.Now(),
		SessionID:              sess.ID,
		TotalIterations:        len(sess.Iterations),
		UserAcceptanceRate:     sess.AcceptanceRate(),
		ReadyForDispatch:       true,
	}
}

func findings(state *session.WorkingState) suggest.Findings {
	return suggest.Findings{
		EdgeCases:              state.EdgeCases,
		Contradictions:         state.Contradictions,
		CompletenessGaps:       state.CompletenessGaps,
		CompressedRequirements: state.CompressedRequirements,
	}
}
