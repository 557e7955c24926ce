package refine

import (
	"fmt"

	"github.com/RevCBH/refinery/internal/draft"
	"github.com/RevCBH/refinery/internal/session"
	"github.com/RevCBH/refinery/internal/suggest"
)

// Apply folds a set of decisions into the working state and returns the
// number of changes applied. State changes are strictly additive for
// requirements; findings are closed in place (handled, resolved, or
// removed) so they stop generating suggestions.
//
// Compression refinements never mutate the state: the refined text lives
// in the decision history, but they still count as applied changes.
func Apply(state *session.WorkingState, decisions []session.Decision) int {
	var applied int

	for _, d := range decisions {
		if !d.Action.Applies() {
			continue
		}

		if d.Action == session.ActionCustom {
			state.AppendRequirement(draft.Requirement{
				ID:       "req-" + d.SuggestionID,
				Type:     "custom_addition",
				Content:  d.CustomContent,
				Priority: "medium",
				Source:   "user_custom",
			})
			applied++
			continue
		}

		content := d.Suggestion.Content
		if d.Action == session.ActionModify && d.Modification != nil {
			content = *d.Modification
		}

		switch {
		case content.EdgeCase != nil:
			applyEdgeCase(state, d, content.EdgeCase)
			applied++
		case content.Contradiction != nil:
			applyContradiction(state, d, content.Contradiction)
			applied++
		case content.Completeness != nil:
			applyCompleteness(state, d, content.Completeness)
			applied++
		case content.Compression != nil:
			applied++
		}
	}

	return applied
}

func applyEdgeCase(state *session.WorkingState, d session.Decision, p *suggest.EdgeCasePayload) {
	for i := range state.EdgeCases {
		if state.EdgeCases[i].ID == p.EdgeCaseID {
			state.EdgeCases[i].Handled = true
			state.EdgeCases[i].Handling = p.Handling
			break
		}
	}
	state.AppendRequirement(draft.Requirement{
		ID:         "req-" + d.SuggestionID,
		Type:       "edge_case_handling",
		Content:    fmt.Sprintf("Handle edge case %s: %s", p.EdgeCaseID, p.Handling),
		Priority:   "medium",
		Source:     "refinement_suggestion",
		Confidence: d.Suggestion.Confidence,
	})
}

func applyContradiction(state *session.WorkingState, d session.Decision, p *suggest.ContradictionPayload) {
	for i := range state.Contradictions {
		if state.Contradictions[i].ID == p.ContradictionID {
			state.Contradictions[i].Resolved = true
			state.Contradictions[i].Resolution = p.Resolution
			break
		}
	}
	state.AppendRequirement(draft.Requirement{
		ID:         "req-" + d.SuggestionID,
		Type:       "contradiction_resolution",
		Content:    p.Resolution,
		Priority:   "high",
		Source:     "refinement_suggestion",
		Confidence: d.Suggestion.Confidence,
	})
}

func applyCompleteness(state *session.WorkingState, d session.Decision, p *suggest.CompletenessPayload) {
	req := p.Requirement
	if req.ID == "" {
		req.ID = "req-" + d.SuggestionID
	}
	req.Source = "refinement_suggestion"
	if req.Confidence == 0 {
		req.Confidence = d.Suggestion.Confidence
	}
	state.AppendRequirement(req)

	// The gap is addressed; drop it so it stops counting as an open issue.
	for i := range state.CompletenessGaps {
		if state.CompletenessGaps[i].ID == p.GapID {
			state.CompletenessGaps = append(state.CompletenessGaps[:i], state.CompletenessGaps[i+1:]...)
			break
		}
	}
}
