package approval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RevCBH/refinery/internal/approval"
	"github.com/RevCBH/refinery/internal/draft"
	"github.com/RevCBH/refinery/internal/session"
	"github.com/RevCBH/refinery/internal/suggest"
	"github.com/RevCBH/refinery/internal/testutil"
)

func batchOptions() approval.Options {
	opts := approval.DefaultOptions()
	opts.BatchMode = true
	opts.BatchThreshold = 2
	return opts
}

func contradictionSuggestion(id, contradictionID string, confidence float64) suggest.Suggestion {
	return suggest.Suggestion{
		ID:    id,
		Type:  suggest.TypeContradictionResolution,
		Title: "Resolve: " + id,
		Content: suggest.Content{
			Contradiction: &suggest.ContradictionPayload{
				ContradictionID: contradictionID,
				Strategy:        "unified_requirement",
				Resolution:      "merge both",
			},
		},
		Confidence: confidence,
		Impact:     draft.ImpactMedium,
		Effort:     draft.EffortMedium,
	}
}

func TestProcess_BatchAcceptAll(t *testing.T) {
	prompter := testutil.NewScriptedPrompter()
	prompter.QueueSelect(1) // accept all
	approver, _ := newTestApprover(batchOptions(), prompter)

	suggestions := []suggest.Suggestion{
		edgeSuggestion("a", 0.5),
		edgeSuggestion("b", 0.5),
		edgeSuggestion("c", 0.5),
	}

	feedback, err := approver.Process(suggestions, &session.WorkingState{})
	require.NoError(t, err)
	require.Len(t, feedback.Decisions, 3)
	for _, d := range feedback.Decisions {
		assert.Equal(t, session.ActionAccept, d.Action)
		assert.Equal(t, "Batch accepted", d.Reasoning)
	}
}

func TestProcess_SmartBatchSplitsOnConfidence(t *testing.T) {
	prompter := testutil.NewScriptedPrompter()
	prompter.QueueSelect(3) // smart batch
	approver, _ := newTestApprover(batchOptions(), prompter)

	suggestions := []suggest.Suggestion{
		edgeSuggestion("strong", 0.85),
		edgeSuggestion("weak", 0.55),
		edgeSuggestion("weaker", 0.40),
	}

	feedback, err := approver.Process(suggestions, &session.WorkingState{})
	require.NoError(t, err)
	require.Len(t, feedback.Decisions, 3)

	byID := map[string]session.Decision{}
	for _, d := range feedback.Decisions {
		byID[d.SuggestionID] = d
	}
	assert.Equal(t, session.ActionAccept, byID["strong"].Action)
	assert.Equal(t, session.ActionReject, byID["weak"].Action)
	assert.Equal(t, session.ActionReject, byID["weaker"].Action)
}

func TestProcess_HighSeverityOnlyUsesWorkingState(t *testing.T) {
	prompter := testutil.NewScriptedPrompter()
	prompter.QueueSelect(4) // accept high severity only
	approver, _ := newTestApprover(batchOptions(), prompter)

	state := &session.WorkingState{
		Contradictions: []draft.Contradiction{
			{ID: "c-hot", Severity: draft.SeverityCritical},
			{ID: "c-cold", Severity: draft.SeverityLow},
		},
	}
	suggestions := []suggest.Suggestion{
		contradictionSuggestion("s1", "c-hot", 0.7),
		contradictionSuggestion("s2", "c-cold", 0.7),
		contradictionSuggestion("s3", "c-hot", 0.6),
	}

	feedback, err := approver.Process(suggestions, state)
	require.NoError(t, err)
	require.Len(t, feedback.Decisions, 3)

	byID := map[string]session.Action{}
	for _, d := range feedback.Decisions {
		byID[d.SuggestionID] = d.Action
	}
	assert.Equal(t, session.ActionAccept, byID["s1"])
	assert.Equal(t, session.ActionReject, byID["s2"])
	assert.Equal(t, session.ActionAccept, byID["s3"])
}

func TestProcess_MixedGroupsReviewedInFixedOrder(t *testing.T) {
	prompter := testutil.NewScriptedPrompter()
	// Contradictions come first: accept all. Then edge cases: reject all.
	prompter.QueueSelect(1, 2)
	approver, _ := newTestApprover(batchOptions(), prompter)

	suggestions := []suggest.Suggestion{
		edgeSuggestion("edge1", 0.5),
		contradictionSuggestion("con1", "c-1", 0.7),
		edgeSuggestion("edge2", 0.5),
	}

	feedback, err := approver.Process(suggestions, &session.WorkingState{})
	require.NoError(t, err)
	require.Len(t, feedback.Decisions, 3)

	assert.Equal(t, "con1", feedback.Decisions[0].SuggestionID)
	assert.Equal(t, session.ActionAccept, feedback.Decisions[0].Action)
	assert.Equal(t, session.ActionReject, feedback.Decisions[1].Action)
	assert.Equal(t, session.ActionReject, feedback.Decisions[2].Action)
}
