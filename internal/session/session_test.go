package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RevCBH/refinery/internal/draft"
)

func sampleDraft() *draft.Spec {
	return &draft.Spec{
		Confidence: 0.8,
		Requirements: []draft.Requirement{
			{ID: "req-1", Content: "System must process payments"},
		},
		EdgeCases: []draft.EdgeCase{
			{ID: "ec-1", Description: "network timeout"},
			{ID: "ec-2", Description: "empty cart", Handled: true, Handling: "reject checkout"},
		},
		Contradictions: []draft.Contradiction{
			{ID: "c-1", Description: "speed vs durability"},
		},
		CompletenessGaps: []draft.CompletenessGap{
			{ID: "g-1", Description: "no monitoring requirements"},
		},
	}
}

func TestNew_SnapshotsOriginalAndCopiesState(t *testing.T) {
	spec := sampleDraft()
	sess := New(spec)

	require.Len(t, sess.ID, 26) // ULID
	assert.Equal(t, *spec, sess.OriginalSpec)
	assert.False(t, sess.Finalized)

	// Mutating the working state must not touch the original snapshot.
	sess.CurrentState.AppendRequirement(draft.Requirement{ID: "req-new", Content: "added later"})
	assert.Len(t, sess.OriginalSpec.Requirements, 1)
	assert.Len(t, sess.CurrentState.Requirements, 2)
}

func TestWorkingState_RemainingIssues(t *testing.T) {
	sess := New(sampleDraft())

	// 1 unresolved contradiction + 1 gap + 1 unhandled edge case.
	assert.Equal(t, 3, sess.CurrentState.RemainingIssues())

	sess.CurrentState.Contradictions[0].Resolved = true
	assert.Equal(t, 2, sess.CurrentState.RemainingIssues())

	sess.CurrentState.EdgeCases[0].Handled = true
	assert.Equal(t, 1, sess.CurrentState.RemainingIssues())

	sess.CurrentState.CompletenessGaps = nil
	assert.Equal(t, 0, sess.CurrentState.RemainingIssues())
}

func TestRecordIteration_FlattensDecisions(t *testing.T) {
	sess := New(sampleDraft())
	s := sampleSuggestion("s-1")

	it1 := Iteration{
		Number:               1,
		SuggestionsPresented: 2,
		Feedback: Feedback{Decisions: []Decision{
			NewDecision(s, ActionAccept, ""),
			NewDecision(s, ActionReject, ""),
		}},
		ChangesApplied: 1,
	}
	it2 := Iteration{
		Number:               2,
		SuggestionsPresented: 1,
		Feedback: Feedback{Decisions: []Decision{
			NewDecision(s, ActionAccept, ""),
		}},
		ChangesApplied: 1,
	}

	sess.RecordIteration(it1)
	sess.RecordIteration(it2)

	require.Len(t, sess.Iterations, 2)
	require.Len(t, sess.Decisions, 3)
	assert.InDelta(t, 2.0/3.0, sess.AcceptanceRate(), 1e-9)

	m := sess.Metrics()
	assert.Equal(t, 2, m.TotalIterations)
	assert.Equal(t, 3, m.TotalSuggestions)
	assert.Equal(t, 2, m.TotalChanges)
}

func TestAcceptanceRate_EmptySessionIsZero(t *testing.T) {
	sess := New(sampleDraft())
	assert.Zero(t, sess.AcceptanceRate())
}
