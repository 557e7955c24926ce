// Package present renders refinement progress to a terminal and collects
// answers from stdin. It owns all user-facing formatting; no other
// package writes to the terminal directly.
package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/RevCBH/refinery/internal/approval"
	"github.com/RevCBH/refinery/internal/draft"
	"github.com/RevCBH/refinery/internal/finalspec"
	"github.com/RevCBH/refinery/internal/session"
	"github.com/RevCBH/refinery/internal/suggest"
)

// Presenter writes formatted refinement output to a single writer.
type Presenter struct {
	w      io.Writer
	styles Styles
}

// NewPresenter creates a presenter. Pass Styles{} for plain output.
func NewPresenter(w io.Writer, styles Styles) *Presenter {
	return &Presenter{w: w, styles: styles}
}

// Notice prints a one-line informational message.
func (p *Presenter) Notice(msg string) {
	fmt.Fprintln(p.w, p.styles.Notice.Render(msg))
}

// IterationHeader prints the banner that opens each iteration.
func (p *Presenter) IterationHeader(number, max int) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.Title.Render("Refinement"),
		p.styles.Iteration.Render(fmt.Sprintf("iteration %d/%d", number, max)))
	fmt.Fprintln(p.w, p.styles.Iteration.Render(strings.Repeat("─", 40)))
}

// StateOverview summarizes the working state: requirement count and open
// findings grouped by severity.
func (p *Presenter) StateOverview(state *session.WorkingState) {
	fmt.Fprintf(p.w, "%s %s\n",
		p.styles.MetricLabel.Render("Requirements:"),
		p.styles.MetricValue.Render(fmt.Sprintf("%d", len(state.Requirements))))

	var open []string
	if n := state.UnresolvedContradictions(); n > 0 {
		open = append(open, fmt.Sprintf("%d contradictions", n))
	}
	if n := len(state.CompletenessGaps); n > 0 {
		open = append(open, fmt.Sprintf("%d gaps", n))
	}
	var unhandled int
	for _, ec := range state.EdgeCases {
		if !ec.Handled {
			unhandled++
		}
	}
	if unhandled > 0 {
		open = append(open, fmt.Sprintf("%d unhandled edge cases", unhandled))
	}
	if n := len(state.CompressedRequirements); n > 0 {
		open = append(open, fmt.Sprintf("%d compressed requirements", n))
	}

	if len(open) == 0 {
		fmt.Fprintln(p.w, p.styles.Converged.Render("No open findings"))
		return
	}
	fmt.Fprintf(p.w, "%s %s\n",
		p.styles.MetricLabel.Render("Open findings:"),
		strings.Join(open, ", "))

	for _, c := range state.Contradictions {
		if !c.Resolved {
			fmt.Fprintf(p.w, "  %s %s\n", p.severity(c.Severity), c.Description)
		}
	}
	for _, ec := range state.EdgeCases {
		if !ec.Handled {
			fmt.Fprintf(p.w, "  %s %s\n", p.severity(ec.Severity), ec.Description)
		}
	}
	for _, g := range state.CompletenessGaps {
		fmt.Fprintf(p.w, "  %s %s\n",
			p.styles.SuggestionMeta.Render("[gap/"+g.Category+"]"), g.Description)
	}
}

func (p *Presenter) severity(s draft.Severity) string {
	switch s {
	case draft.SeverityCritical:
		return p.styles.SeverityCritical.Render("[critical]")
	case draft.SeverityHigh:
		return p.styles.SeverityHigh.Render("[high]")
	case draft.SeverityLow:
		return p.styles.SeverityLow.Render("[low]")
	default:
		return p.styles.SeverityMedium.Render("[medium]")
	}
}

// SuggestionDetails renders one suggestion for individual review.
func (p *Presenter) SuggestionDetails(s suggest.Suggestion, index, total int) {
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "%s %s %s\n",
		p.styles.SuggestionMeta.Render(fmt.Sprintf("[%d/%d]", index, total)),
		IconSuggestion,
		p.styles.SuggestionTitle.Render(s.Title))
	fmt.Fprintf(p.w, "  %s\n", s.Description)
	fmt.Fprintf(p.w, "  %s\n", p.styles.SuggestionMeta.Render(
		fmt.Sprintf("confidence %.0f%% · impact %s · effort %s", s.Confidence*100, s.Impact, s.Effort)))
	if s.Rationale != "" {
		fmt.Fprintf(p.w, "  %s\n", p.styles.Rationale.Render(s.Rationale))
	}
	for _, ex := range s.Examples {
		fmt.Fprintf(p.w, "  %s\n", p.styles.Example.Render("e.g. "+ex))
	}
}

// BatchSummary renders a type group before batch review.
func (p *Presenter) BatchSummary(group string, suggestions []suggest.Suggestion) {
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "%s %s\n",
		p.styles.SuggestionTitle.Render(group),
		p.styles.SuggestionMeta.Render(fmt.Sprintf("(%d suggestions)", len(suggestions))))
	for _, s := range suggestions {
		fmt.Fprintf(p.w, "  %s %s %s\n", IconSuggestion, s.Title,
			p.styles.SuggestionMeta.Render(fmt.Sprintf("(%.0f%%)", s.Confidence*100)))
	}
}

// AutoAccepted lists suggestions accepted without review.
func (p *Presenter) AutoAccepted(suggestions []suggest.Suggestion) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.Accepted.Render(
		fmt.Sprintf("%s Auto-accepted %d high-confidence suggestions:", IconAccepted, len(suggestions))))
	for _, s := range suggestions {
		fmt.Fprintf(p.w, "  %s %s\n", IconAccepted, s.Title)
	}
}

// DecisionSummary prints the per-outcome counts after a review pass.
func (p *Presenter) DecisionSummary(stats approval.Stats) {
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "%s %s accepted, %s auto-accepted, %s modified, %s rejected\n",
		p.styles.MetricLabel.Render("Decisions:"),
		p.styles.Accepted.Render(fmt.Sprintf("%d", stats.Accepted)),
		p.styles.Accepted.Render(fmt.Sprintf("%d", stats.AutoAccepted)),
		p.styles.Modified.Render(fmt.Sprintf("%d", stats.Modified)),
		p.styles.Rejected.Render(fmt.Sprintf("%d", stats.Rejected)))
	if stats.Custom > 0 || stats.Clarified > 0 {
		fmt.Fprintf(p.w, "%s %d custom, %d need clarification\n",
			p.styles.MetricLabel.Render("          "), stats.Custom, stats.Clarified)
	}
}

// IterationMetrics prints the closing numbers of one iteration.
func (p *Presenter) IterationMetrics(m session.Metrics) {
	fmt.Fprintf(p.w, "%s %d suggestions, %d changes, acceptance %.0f%%\n",
		p.styles.MetricLabel.Render(fmt.Sprintf("Iteration %d:", m.Iteration)),
		m.Suggestions, m.ChangesApplied, m.AcceptanceRate*100)
}

// Convergence announces that the session has reached a stable state.
func (p *Presenter) Convergence(remaining int, acceptance float64) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.Converged.Render(
		fmt.Sprintf("%s Specification converged (acceptance %.0f%%, %d open issues)",
			IconConverged, acceptance*100, remaining)))
}

// Finalized renders the finalized specification summary and its
// readiness analysis.
func (p *Presenter) Finalized(spec *finalspec.Spec, readiness finalspec.Readiness) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.Title.Render("Specification finalized"))
	fmt.Fprintf(p.w, "%s %d requirements, %d resolved edge cases, confidence %.2f\n",
		p.styles.MetricLabel.Render("Final:"),
		len(spec.Requirements), len(spec.ResolvedEdgeCases), spec.ConfidenceScore)

	if readiness.Ready {
		fmt.Fprintln(p.w, p.styles.Converged.Render(
			fmt.Sprintf("%s Ready for execution planning (score %.2f)", IconConverged, readiness.Score)))
	} else {
		fmt.Fprintln(p.w, p.styles.Warning.Render(
			fmt.Sprintf("%s Not ready for execution planning (score %.2f)", IconWarning, readiness.Score)))
	}
	for _, b := range readiness.Blockers {
		fmt.Fprintf(p.w, "  %s %s\n", p.styles.Rejected.Render(IconRejected), b)
	}
	for _, r := range readiness.Recommendations {
		fmt.Fprintf(p.w, "  %s\n", p.styles.Notice.Render("· "+r))
	}
}
