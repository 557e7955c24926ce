package approval

import (
	"fmt"

	"github.com/RevCBH/refinery/internal/draft"
	"github.com/RevCBH/refinery/internal/session"
	"github.com/RevCBH/refinery/internal/suggest"
)

// batchGroupOrder fixes the presentation order of type groups so batch
// review is deterministic regardless of input ordering within groups.
var batchGroupOrder = []suggest.Type{
	suggest.TypeContradictionResolution,
	suggest.TypeEdgeCaseHandling,
	suggest.TypeCompletenessAddition,
	suggest.TypeCompressionRefinement,
}

var groupLabels = map[suggest.Type]string{
	suggest.TypeContradictionResolution: "Contradiction resolutions",
	suggest.TypeEdgeCaseHandling:        "Edge case handling",
	suggest.TypeCompletenessAddition:    "Completeness additions",
	suggest.TypeCompressionRefinement:   "Compression refinements",
}

// processBatches groups the manual set by suggestion type and reviews
// each group with batch actions, falling back to individual review on
// request.
func (a *Approver) processBatches(suggestions []suggest.Suggestion, state *session.WorkingState, stats *Stats) ([]session.Decision, error) {
	groups := make(map[suggest.Type][]suggest.Suggestion)
	for _, s := range suggestions {
		groups[s.Type] = append(groups[s.Type], s)
	}

	var decisions []session.Decision
	for _, t := range batchGroupOrder {
		group := groups[t]
		if len(group) == 0 {
			continue
		}

		a.renderer.BatchSummary(groupLabels[t], group)

		batch, err := a.decideBatch(t, group, state, stats)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, batch...)
	}
	return decisions, nil
}

// decideBatch offers the batch actions for one type group and fans the
// chosen action out to every suggestion in the group.
func (a *Approver) decideBatch(t suggest.Type, group []suggest.Suggestion, state *session.WorkingState, stats *Stats) ([]session.Decision, error) {
	options := []string{
		"Review individually",
		fmt.Sprintf("Accept all %d", len(group)),
		fmt.Sprintf("Reject all %d", len(group)),
		"Smart batch (accept high confidence only)",
	}
	switch t {
	case suggest.TypeEdgeCaseHandling:
		options = append(options, "Accept critical only")
	case suggest.TypeContradictionResolution:
		options = append(options, "Accept high severity only")
	}

	choice, err := a.prompter.Select("How should this group be handled?", options)
	if err != nil {
		return nil, err
	}

	switch choice {
	case 0:
		return a.processIndividually(group, stats)
	case 1:
		return a.fanOut(group, session.ActionAccept, "Batch accepted", stats), nil
	case 2:
		return a.fanOut(group, session.ActionReject, "Batch rejected", stats), nil
	case 3:
		return a.smartBatch(group, stats), nil
	default:
		switch t {
		case suggest.TypeEdgeCaseHandling:
			return a.criticalOnly(group, stats), nil
		default:
			return a.highSeverityOnly(group, state, stats), nil
		}
	}
}

func (a *Approver) fanOut(group []suggest.Suggestion, action session.Action, reasoning string, stats *Stats) []session.Decision {
	decisions := make([]session.Decision, 0, len(group))
	for _, s := range group {
		decisions = append(decisions, session.NewDecision(s, action, reasoning))
		stats.record(action, false)
	}
	return decisions
}

// smartBatch accepts suggestions at or above the smart-batch confidence
// threshold and rejects the rest.
func (a *Approver) smartBatch(group []suggest.Suggestion, stats *Stats) []session.Decision {
	decisions := make([]session.Decision, 0, len(group))
	for _, s := range group {
		if s.Confidence >= a.opts.SmartBatchThreshold {
			decisions = append(decisions, session.NewDecision(s, session.ActionAccept,
				fmt.Sprintf("High confidence (%.0f%%)", s.Confidence*100)))
			stats.record(session.ActionAccept, false)
		} else {
			decisions = append(decisions, session.NewDecision(s, session.ActionReject,
				fmt.Sprintf("Low confidence (%.0f%%)", s.Confidence*100)))
			stats.record(session.ActionReject, false)
		}
	}
	return decisions
}

// criticalOnly accepts high-impact edge case suggestions and rejects
// the rest.
func (a *Approver) criticalOnly(group []suggest.Suggestion, stats *Stats) []session.Decision {
	decisions := make([]session.Decision, 0, len(group))
	for _, s := range group {
		if s.Impact == draft.ImpactHigh {
			decisions = append(decisions, session.NewDecision(s, session.ActionAccept, "Critical impact"))
			stats.record(session.ActionAccept, false)
		} else {
			decisions = append(decisions, session.NewDecision(s, session.ActionReject, "Not critical"))
			stats.record(session.ActionReject, false)
		}
	}
	return decisions
}

// highSeverityOnly accepts contradiction resolutions whose underlying
// contradiction is high or critical severity, rejecting the rest. The
// severity is looked up from the working state; suggestions whose
// contradiction cannot be found are rejected.
func (a *Approver) highSeverityOnly(group []suggest.Suggestion, state *session.WorkingState, stats *Stats) []session.Decision {
	severities := make(map[string]draft.Severity, len(state.Contradictions))
	for _, c := range state.Contradictions {
		severities[c.ID] = c.Severity
	}

	decisions := make([]session.Decision, 0, len(group))
	for _, s := range group {
		var sev draft.Severity
		if s.Content.Contradiction != nil {
			sev = severities[s.Content.Contradiction.ContradictionID]
		}
		if sev == draft.SeverityHigh || sev == draft.SeverityCritical {
			decisions = append(decisions, session.NewDecision(s, session.ActionAccept, "High severity contradiction"))
			stats.record(session.ActionAccept, false)
		} else {
			decisions = append(decisions, session.NewDecision(s, session.ActionReject, "Lower severity"))
			stats.record(session.ActionReject, false)
		}
	}
	return decisions
}
