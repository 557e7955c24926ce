package present

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RevCBH/refinery/internal/draft"
	"github.com/RevCBH/refinery/internal/finalspec"
	"github.com/RevCBH/refinery/internal/session"
	"github.com/RevCBH/refinery/internal/suggest"
)

func plainPresenter() (*Presenter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPresenter(&buf, Styles{}), &buf
}

func TestStateOverview(t *testing.T) {
	p, out := plainPresenter()

	p.StateOverview(&session.WorkingState{
		Requirements: []draft.Requirement{{Content: "a"}, {Content: "b"}},
		EdgeCases: []draft.EdgeCase{
			{ID: "ec-1", Description: "slow network", Severity: draft.SeverityHigh},
			{ID: "ec-2", Description: "handled already", Handled: true},
		},
		Contradictions: []draft.Contradiction{
			{ID: "c-1", Description: "fast vs safe", Severity: draft.SeverityCritical},
		},
		CompletenessGaps: []draft.CompletenessGap{
			{ID: "gap-1", Category: "security", Description: "no auth requirements"},
		},
	})

	s := out.String()
	assert.Contains(t, s, "Requirements: 2")
	assert.Contains(t, s, "1 contradictions")
	assert.Contains(t, s, "1 unhandled edge cases")
	assert.Contains(t, s, "1 gaps")
	assert.Contains(t, s, "[gap/security] no auth requirements")
	assert.Contains(t, s, "[critical] fast vs safe")
	assert.Contains(t, s, "[high] slow network")
	assert.NotContains(t, s, "handled already")
}

func TestStateOverview_CleanState(t *testing.T) {
	p, out := plainPresenter()
	p.StateOverview(&session.WorkingState{})
	assert.Contains(t, out.String(), "No open findings")
}

func TestSuggestionDetails(t *testing.T) {
	p, out := plainPresenter()

	p.SuggestionDetails(suggest.Suggestion{
		Title:       "Handle: network timeout",
		Description: "Implement timeout and retry mechanisms",
		Confidence:  0.85,
		Impact:      draft.ImpactHigh,
		Effort:      draft.EffortLow,
		Rationale:   "Network issues are common",
		Examples:    []string{"Set timeouts on all calls"},
	}, 2, 5)

	s := out.String()
	assert.Contains(t, s, "[2/5]")
	assert.Contains(t, s, "Handle: network timeout")
	assert.Contains(t, s, "confidence 85%")
	assert.Contains(t, s, "e.g. Set timeouts on all calls")
}

func TestFinalized_ReadyAndBlocked(t *testing.T) {
	p, out := plainPresenter()

	spec := &finalspec.Spec{
		Requirements:           []draft.Requirement{{Content: "a"}},
		CompleteRequirementSet: true,
		ConfidenceScore:        0.9,
		UserAcceptanceRate:     0.8,
		ReadyForDispatch:       true,
	}
	p.Finalized(spec, spec.ExecutionReadiness())
	assert.Contains(t, out.String(), "Ready for execution planning")

	p2, out2 := plainPresenter()
	spec.ReadyForDispatch = false
	p2.Finalized(spec, spec.ExecutionReadiness())
	assert.Contains(t, out2.String(), "Not ready for execution planning")
}

func TestIterationHeaderAndMetrics(t *testing.T) {
	p, out := plainPresenter()

	p.IterationHeader(3, 10)
	p.IterationMetrics(session.Metrics{
		Iteration: 3, Suggestions: 4, ChangesApplied: 2, AcceptanceRate: 0.5,
	})

	s := out.String()
	assert.Contains(t, s, "iteration 3/10")
	assert.Contains(t, s, "Iteration 3: 4 suggestions, 2 changes, acceptance 50%")
}
