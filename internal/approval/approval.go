// Package approval drives the decision-collection protocol: it takes
// ranked suggestions, obtains one decision per suggestion from the user
// (or synthesizes one via auto-accept and batch actions), and returns
// the aggregated feedback for the iteration.
package approval

import (
	"fmt"

	"github.com/RevCBH/refinery/internal/session"
	"github.com/RevCBH/refinery/internal/suggest"
)

// Prompter obtains answers from the user. Implementations block until
// an answer is supplied; exactly one request is outstanding at a time.
type Prompter interface {
	// Select presents an enumerated choice set and returns the index of
	// the chosen option.
	Select(question string, options []string) (int, error)

	// Confirm asks a yes/no question with a suggested default. The
	// default is a UI nudge only; the returned answer is always
	// user-supplied.
	Confirm(question string, def bool) (bool, error)

	// Input requests free text, returning def when the user enters
	// nothing.
	Input(question, def string) (string, error)
}

// Renderer displays approval-process output. It is read-only with
// respect to all state.
type Renderer interface {
	Notice(msg string)
	SuggestionDetails(s suggest.Suggestion, index, total int)
	BatchSummary(group string, suggestions []suggest.Suggestion)
	AutoAccepted(suggestions []suggest.Suggestion)
	DecisionSummary(stats Stats)
}

// Options configures the approval policy.
type Options struct {
	// AutoAcceptThreshold routes suggestions at or above this confidence
	// straight to accept decisions without interaction.
	AutoAcceptThreshold float64

	// BatchMode groups large manual sets by suggestion type for batch
	// review once the manual group exceeds BatchThreshold.
	BatchMode      bool
	BatchThreshold int

	// Quick exit: after QuickExitMinDecisions individually processed
	// decisions, a rejection rate above QuickExitRejectionRate offers to
	// reject everything remaining in the batch.
	QuickExitMinDecisions  int
	QuickExitRejectionRate float64

	// SmartBatchThreshold is the confidence cut for the smart-batch
	// action (accept at or above, reject below).
	SmartBatchThreshold float64
}

// DefaultOptions returns the standard approval policy.
func DefaultOptions() Options {
	return Options{
		AutoAcceptThreshold:    0.9,
		BatchMode:              false,
		BatchThreshold:         10,
		QuickExitMinDecisions:  3,
		QuickExitRejectionRate: 0.7,
		SmartBatchThreshold:    0.8,
	}
}

// Stats counts decisions by outcome for one approval run.
type Stats struct {
	Total        int
	Accepted     int
	AutoAccepted int
	Rejected     int
	Modified     int
	Custom       int
	Clarified    int
}

func (st *Stats) record(a session.Action, auto bool) {
	switch a {
	case session.ActionAccept:
		if auto {
			st.AutoAccepted++
		} else {
			st.Accepted++
		}
	case session.ActionReject:
		st.Rejected++
	case session.ActionModify:
		st.Modified++
	case session.ActionCustom:
		st.Custom++
	case session.ActionClarify:
		st.Clarified++
	}
}

// processed counts decisions that express a clear verdict, the basis for
// the quick-exit rejection rate.
func (st *Stats) processed() int {
	return st.Accepted + st.Rejected + st.Modified
}

// Approver runs the approval process against a prompter and renderer.
type Approver struct {
	opts     Options
	prompter Prompter
	renderer Renderer
}

// New creates an approver.
func New(opts Options, prompter Prompter, renderer Renderer) *Approver {
	return &Approver{opts: opts, prompter: prompter, renderer: renderer}
}

// Process collects one decision per suggestion and the closing
// satisfaction/continuation answers. Empty input short-circuits to an
// automatically satisfied feedback without any prompt.
func (a *Approver) Process(suggestions []suggest.Suggestion, state *session.WorkingState) (session.Feedback, error) {
	if len(suggestions) == 0 {
		a.renderer.Notice("No suggestions to review - specification looks good")
		return session.Feedback{
			OverallSatisfaction: 5,
			AdditionalComments:  "No suggestions needed",
			WantsToContinue:     false,
		}, nil
	}

	var stats Stats
	stats.Total = len(suggestions)

	auto, manual := a.partition(suggestions)

	var decisions []session.Decision
	decisions = append(decisions, a.autoAccept(auto, &stats)...)

	if a.opts.BatchMode && len(manual) > a.opts.BatchThreshold {
		batched, err := a.processBatches(manual, state, &stats)
		if err != nil {
			return session.Feedback{}, err
		}
		decisions = append(decisions, batched...)
	} else {
		individual, err := a.processIndividually(manual, &stats)
		if err != nil {
			return session.Feedback{}, err
		}
		decisions = append(decisions, individual...)
	}

	a.renderer.DecisionSummary(stats)

	satisfaction, comments, cont, err := a.closingFeedback()
	if err != nil {
		return session.Feedback{}, err
	}

	return session.Feedback{
		Decisions:           decisions,
		OverallSatisfaction: satisfaction,
		AdditionalComments:  comments,
		WantsToContinue:     cont,
	}, nil
}

// partition splits suggestions into the auto-accept group and the
// manual review group, preserving rank order.
func (a *Approver) partition(suggestions []suggest.Suggestion) (auto, manual []suggest.Suggestion) {
	for _, s := range suggestions {
		if s.Confidence >= a.opts.AutoAcceptThreshold {
			auto = append(auto, s)
		} else {
			manual = append(manual, s)
		}
	}
	return auto, manual
}

// autoAccept records accept decisions for high-confidence suggestions
// with a fixed synthetic rationale.
func (a *Approver) autoAccept(suggestions []suggest.Suggestion, stats *Stats) []session.Decision {
	if len(suggestions) == 0 {
		return nil
	}

	a.renderer.AutoAccepted(suggestions)

	decisions := make([]session.Decision, 0, len(suggestions))
	for _, s := range suggestions {
		decisions = append(decisions, session.NewDecision(s, session.ActionAccept, "Auto-accepted due to high confidence"))
		stats.record(session.ActionAccept, true)
	}
	return decisions
}

var individualActions = []string{
	"Accept",
	"Reject",
	"Modify",
	"Add custom requirement",
	"Need more info",
}

// processIndividually reviews suggestions one at a time, offering quick
// exit once the user has rejected most of what they've seen.
func (a *Approver) processIndividually(suggestions []suggest.Suggestion, stats *Stats) ([]session.Decision, error) {
	var decisions []session.Decision

	for i, s := range suggestions {
		a.renderer.SuggestionDetails(s, i+1, len(suggestions))

		d, err := a.decideOne(s)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
		stats.record(d.Action, false)

		remaining := len(suggestions) - i - 1
		if remaining > 0 && a.shouldOfferQuickExit(stats) {
			exit, err := a.prompter.Confirm(
				fmt.Sprintf("Apply 'reject' to remaining %d suggestions?", remaining), true)
			if err != nil {
				return nil, err
			}
			if exit {
				for _, rest := range suggestions[i+1:] {
					decisions = append(decisions, session.NewDecision(rest, session.ActionReject, "Applied via quick exit"))
					stats.record(session.ActionReject, false)
				}
				break
			}
		}
	}

	return decisions, nil
}

func (a *Approver) shouldOfferQuickExit(stats *Stats) bool {
	processed := stats.processed()
	if processed < a.opts.QuickExitMinDecisions {
		return false
	}
	return float64(stats.Rejected)/float64(processed) > a.opts.QuickExitRejectionRate
}

// decideOne obtains a single decision for one suggestion.
func (a *Approver) decideOne(s suggest.Suggestion) (session.Decision, error) {
	choice, err := a.prompter.Select("What would you like to do?", individualActions)
	if err != nil {
		return session.Decision{}, err
	}

	switch choice {
	case 0: // accept
		return session.NewDecision(s, session.ActionAccept, "Accepted as suggested"), nil

	case 1: // reject
		reasoning, err := a.prompter.Input("Why reject? (optional)", "Not applicable")
		if err != nil {
			return session.Decision{}, err
		}
		return session.NewDecision(s, session.ActionReject, reasoning), nil

	case 2: // modify
		modified, err := a.collectModification(s)
		if err != nil {
			return session.Decision{}, err
		}
		return session.NewModifyDecision(s, modified, "Modified to better fit requirements"), nil

	case 3: // custom
		content, err := a.prompter.Input("Enter your custom requirement or note", "")
		if err != nil {
			return session.Decision{}, err
		}
		return session.NewCustomDecision(s, content, "Added custom requirement"), nil

	default: // clarify
		reasoning, err := a.prompter.Input("What clarification do you need?", "Need more information")
		if err != nil {
			return session.Decision{}, err
		}
		return session.NewDecision(s, session.ActionClarify, reasoning), nil
	}
}

// collectModification edits the suggestion's payload fields by type,
// returning the user-edited content.
func (a *Approver) collectModification(s suggest.Suggestion) (suggest.Content, error) {
	content := s.Content

	switch {
	case content.EdgeCase != nil:
		payload := *content.EdgeCase
		handling, err := a.prompter.Input("New handling strategy", payload.Handling)
		if err != nil {
			return suggest.Content{}, err
		}
		payload.Handling = handling
		impl, err := a.prompter.Input("Implementation details", payload.Implementation)
		if err != nil {
			return suggest.Content{}, err
		}
		payload.Implementation = impl
		content.EdgeCase = &payload

	case content.Contradiction != nil:
		payload := *content.Contradiction
		resolution, err := a.prompter.Input("New resolution approach", payload.Resolution)
		if err != nil {
			return suggest.Content{}, err
		}
		payload.Resolution = resolution
		content.Contradiction = &payload

	case content.Completeness != nil:
		payload := *content.Completeness
		reqContent, err := a.prompter.Input("Modified requirement", payload.Requirement.Content)
		if err != nil {
			return suggest.Content{}, err
		}
		payload.Requirement.Content = reqContent
		content.Completeness = &payload

	case content.Compression != nil:
		payload := *content.Compression
		refined, err := a.prompter.Input("Refined requirement text", payload.RefinedText)
		if err != nil {
			return suggest.Content{}, err
		}
		payload.RefinedText = refined
		content.Compression = &payload
	}

	return content, nil
}

var satisfactionOptions = []string{
	"Very satisfied (5/5)",
	"Satisfied (4/5)",
	"Neutral (3/5)",
	"Unsatisfied (2/5)",
	"Very unsatisfied (1/5)",
}

// closingFeedback collects the overall satisfaction score, optional
// comments, and the continuation preference. The continuation default
// follows satisfaction: satisfied users default to stopping.
func (a *Approver) closingFeedback() (satisfaction int, comments string, cont bool, err error) {
	choice, err := a.prompter.Select("How satisfied are you with the suggestions?", satisfactionOptions)
	if err != nil {
		return 0, "", false, err
	}
	satisfaction = 5 - choice

	comments, err = a.prompter.Input("Any additional comments or feedback? (optional)", "")
	if err != nil {
		return 0, "", false, err
	}

	if satisfaction >= 4 {
		cont, err = a.prompter.Confirm("Would you like to continue refining?", false)
	} else {
		cont, err = a.prompter.Confirm("Would you like another refinement iteration?", true)
	}
	if err != nil {
		return 0, "", false, err
	}

	return satisfaction, comments, cont, nil
}
