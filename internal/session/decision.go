package session

import (
	"fmt"
	"time"

	"github.com/RevCBH/refinery/internal/suggest"
)

// Action is what the user chose to do with a suggestion.
type Action string

const (
	ActionAccept  Action = "accept"
	ActionReject  Action = "reject"
	ActionModify  Action = "modify"
	ActionCustom  Action = "custom"
	ActionClarify Action = "clarify"
)

// ParseAction converts a string to Action with validation.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionAccept, ActionReject, ActionModify, ActionCustom, ActionClarify:
		return a, nil
	default:
		return "", fmt.Errorf("invalid decision action: %s", s)
	}
}

// Applies reports whether the action mutates the working state.
func (a Action) Applies() bool {
	return a == ActionAccept || a == ActionModify || a == ActionCustom
}

// Decision records one user decision on a suggestion, with a snapshot of
// the suggestion it was made against.
//
// Invariant: Modification is set iff Action is modify; CustomContent is
// set iff Action is custom. NewDecision and Validate enforce this.
type Decision struct {
	SuggestionID  string             `yaml:"suggestion_id"`
	Suggestion    suggest.Suggestion `yaml:"suggestion"`
	Action        Action             `yaml:"action"`
	Reasoning     string             `yaml:"reasoning,omitempty"`
	Modification  *suggest.Content   `yaml:"modification,omitempty"`
	CustomContent string             `yaml:"custom_content,omitempty"`
	Timestamp     time.Time          `yaml:"timestamp"`
}

// NewDecision creates a validated decision for a suggestion.
func NewDecision(s suggest.Suggestion, action Action, reasoning string) Decision {
	return Decision{
		SuggestionID: s.ID,
		Suggestion:   s,
		Action:       action,
		Reasoning:    reasoning,
		Timestamp:    time.Now(),
	}
}

// NewModifyDecision creates a modify decision carrying the user-edited
// content that replaces the suggestion's canonical content.
func NewModifyDecision(s suggest.Suggestion, modification suggest.Content, reasoning string) Decision {
	d := NewDecision(s, ActionModify, reasoning)
	d.Modification = &modification
	return d
}

// NewCustomDecision creates a custom decision carrying user-authored
// requirement text.
func NewCustomDecision(s suggest.Suggestion, customContent, reasoning string) Decision {
	d := NewDecision(s, ActionCustom, reasoning)
	d.CustomContent = customContent
	return d
}

// Validate checks the action-specific field invariants.
func (d *Decision) Validate() error {
	if _, err := ParseAction(string(d.Action)); err != nil {
		return err
	}
	if d.Action == ActionModify && d.Modification == nil {
		return fmt.Errorf("decision %s: modify action requires modification content", d.SuggestionID)
	}
	if d.Action != ActionModify && d.Modification != nil {
		return fmt.Errorf("decision %s: modification content only valid for modify action", d.SuggestionID)
	}
	if d.Action == ActionCustom && d.CustomContent == "" {
		return fmt.Errorf("decision %s: custom action requires custom content", d.SuggestionID)
	}
	if d.Action != ActionCustom && d.CustomContent != "" {
		return fmt.Errorf("decision %s: custom content only valid for custom action", d.SuggestionID)
	}
	return nil
}

// Feedback is the ordered set of decisions collected for one iteration,
// plus the closing satisfaction and continuation answers.
type Feedback struct {
	Decisions           []Decision `yaml:"decisions"`
	OverallSatisfaction int        `yaml:"overall_satisfaction,omitempty"` // 1-5, 0 when not collected
	AdditionalComments  string     `yaml:"additional_comments,omitempty"`
	WantsToContinue     bool       `yaml:"wants_to_continue"`
}

// AcceptanceRate is the share of decisions that were accepted or
// modified. An empty decision list rates 0.
func (f *Feedback) AcceptanceRate() float64 {
	if len(f.Decisions) == 0 {
		return 0
	}
	var accepted int
	for _, d := range f.Decisions {
		if d.Action == ActionAccept || d.Action == ActionModify {
			accepted++
		}
	}
	return float64(accepted) / float64(len(f.Decisions))
}
