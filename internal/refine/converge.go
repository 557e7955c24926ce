package refine

import (
	"math"

	"github.com/RevCBH/refinery/internal/session"
)

// Converged reports whether the session has reached a stable state: the
// latest iteration's acceptance rate meets the convergence threshold, or
// few enough issues remain open. An iteration that presented no
// suggestions counts as full acceptance.
func (l *Loop) Converged(sess *session.Session) bool {
	if len(sess.Iterations) == 0 {
		return false
	}

	last := sess.Iterations[len(sess.Iterations)-1]
	acceptance := last.Feedback.AcceptanceRate()
	if last.SuggestionsPresented == 0 {
		acceptance = 1.0
	}

	return acceptance >= l.opts.ConvergenceThreshold ||
		sess.CurrentState.RemainingIssues() <= l.opts.RemainingIssuesFloor
}

// Confidence scores the session's final state in [0,1]: the cumulative
// acceptance rate, raised by up to 0.3 for iteration depth, lowered by
// 0.05 per open contradiction or gap.
func Confidence(sess *session.Session) float64 {
	c := sess.AcceptanceRate()
	c += math.Min(0.1*float64(len(sess.Iterations)), 0.3)

	open := sess.CurrentState.UnresolvedContradictions() + len(sess.CurrentState.CompletenessGaps)
	c -= 0.05 * float64(open)

	return math.Max(0, math.Min(1, c))
}
