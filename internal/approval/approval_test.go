package approval_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RevCBH/refinery/internal/approval"
	"github.com/RevCBH/refinery/internal/draft"
	"github.com/RevCBH/refinery/internal/present"
	"github.com/RevCBH/refinery/internal/session"
	"github.com/RevCBH/refinery/internal/suggest"
	"github.com/RevCBH/refinery/internal/testutil"
)

func edgeSuggestion(id string, confidence float64) suggest.Suggestion {
	return suggest.Suggestion{
		ID:          id,
		Type:        suggest.TypeEdgeCaseHandling,
		Title:       "Handle: " + id,
		Description: "do the thing",
		Content: suggest.Content{
			EdgeCase: &suggest.EdgeCasePayload{
				EdgeCaseID: "ec-" + id,
				Strategy:   "timeout_and_retry",
				Handling:   "retry with backoff",
			},
		},
		Confidence: confidence,
		Impact:     draft.ImpactHigh,
		Effort:     draft.EffortLow,
	}
}

func newTestApprover(opts approval.Options, prompter approval.Prompter) (*approval.Approver, *bytes.Buffer) {
	var buf bytes.Buffer
	renderer := present.NewPresenter(&buf, present.Styles{})
	return approval.New(opts, prompter, renderer), &buf
}

func TestProcess_EmptyInputShortCircuits(t *testing.T) {
	prompter := testutil.NewScriptedPrompter()
	approver, out := newTestApprover(approval.DefaultOptions(), prompter)

	feedback, err := approver.Process(nil, &session.WorkingState{})
	require.NoError(t, err)

	assert.Empty(t, feedback.Decisions)
	assert.Equal(t, 5, feedback.OverallSatisfaction)
	assert.False(t, feedback.WantsToContinue)
	assert.Zero(t, prompter.Asked(), "no prompts for an empty suggestion set")
	assert.Contains(t, out.String(), "No suggestions to review")
}

func TestProcess_AutoAcceptsHighConfidence(t *testing.T) {
	prompter := testutil.NewScriptedPrompter()
	approver, _ := newTestApprover(approval.DefaultOptions(), prompter)

	suggestions := []suggest.Suggestion{
		edgeSuggestion("auto", 0.95),
		edgeSuggestion("manual", 0.5),
	}

	feedback, err := approver.Process(suggestions, &session.WorkingState{})
	require.NoError(t, err)
	require.Len(t, feedback.Decisions, 2)

	auto := feedback.Decisions[0]
	assert.Equal(t, "auto", auto.SuggestionID)
	assert.Equal(t, session.ActionAccept, auto.Action)
	assert.Equal(t, "Auto-accepted due to high confidence", auto.Reasoning)

	// Defaults: select 0 => accept, then satisfaction 5, no continuation.
	manual := feedback.Decisions[1]
	assert.Equal(t, session.ActionAccept, manual.Action)
	assert.Equal(t, 5, feedback.OverallSatisfaction)
	assert.False(t, feedback.WantsToContinue)
}

func TestProcess_IndividualActions(t *testing.T) {
	prompter := testutil.NewScriptedPrompter()
	// reject, modify, custom, clarify
	prompter.QueueSelect(1, 2, 3, 4)
	prompter.QueueInput(
		"too risky",          // reject reason
		"log and retry",      // modify: handling
		"with jitter",        // modify: implementation
		"audit trail needed", // custom content
		"what is the SLA?",   // clarify
	)
	approver, _ := newTestApprover(approval.DefaultOptions(), prompter)

	suggestions := []suggest.Suggestion{
		edgeSuggestion("a", 0.5),
		edgeSuggestion("b", 0.5),
		edgeSuggestion("c", 0.5),
		edgeSuggestion("d", 0.5),
	}

	feedback, err := approver.Process(suggestions, &session.WorkingState{})
	require.NoError(t, err)
	require.Len(t, feedback.Decisions, 4)

	assert.Equal(t, session.ActionReject, feedback.Decisions[0].Action)
	assert.Equal(t, "too risky", feedback.Decisions[0].Reasoning)

	modify := feedback.Decisions[1]
	assert.Equal(t, session.ActionModify, modify.Action)
	require.NotNil(t, modify.Modification)
	assert.Equal(t, "log and retry", modify.Modification.EdgeCase.Handling)
	assert.Equal(t, "with jitter", modify.Modification.EdgeCase.Implementation)
	require.NoError(t, modify.Validate())

	custom := feedback.Decisions[2]
	assert.Equal(t, session.ActionCustom, custom.Action)
	assert.Equal(t, "audit trail needed", custom.CustomContent)
	require.NoError(t, custom.Validate())

	assert.Equal(t, session.ActionClarify, feedback.Decisions[3].Action)
	assert.Equal(t, "what is the SLA?", feedback.Decisions[3].Reasoning)
}

func TestProcess_QuickExitAfterRejectionStreak(t *testing.T) {
	prompter := testutil.NewScriptedPrompter()
	// Reject the first three individually; quick-exit confirm defaults true.
	prompter.QueueSelect(1, 1, 1)
	approver, _ := newTestApprover(approval.DefaultOptions(), prompter)

	suggestions := []suggest.Suggestion{
		edgeSuggestion("a", 0.5),
		edgeSuggestion("b", 0.5),
		edgeSuggestion("c", 0.5),
		edgeSuggestion("d", 0.5),
		edgeSuggestion("e", 0.5),
	}

	feedback, err := approver.Process(suggestions, &session.WorkingState{})
	require.NoError(t, err)
	require.Len(t, feedback.Decisions, 5)

	for _, d := range feedback.Decisions {
		assert.Equal(t, session.ActionReject, d.Action)
	}
	assert.Equal(t, "Applied via quick exit", feedback.Decisions[3].Reasoning)
	assert.Equal(t, "Applied via quick exit", feedback.Decisions[4].Reasoning)
}

func TestProcess_LowSatisfactionDefaultsToContinue(t *testing.T) {
	prompter := testutil.NewScriptedPrompter()
	prompter.QueueSelect(
		0, // accept the suggestion
		3, // satisfaction 2/5
	)
	approver, _ := newTestApprover(approval.DefaultOptions(), prompter)

	feedback, err := approver.Process([]suggest.Suggestion{edgeSuggestion("a", 0.5)}, &session.WorkingState{})
	require.NoError(t, err)

	assert.Equal(t, 2, feedback.OverallSatisfaction)
	// Unsatisfied users default to another iteration.
	assert.True(t, feedback.WantsToContinue)
}
