package session

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/RevCBH/refinery/internal/draft"
	"github.com/RevCBH/refinery/internal/finalspec"
)

// WorkingState is the mutable working copy of the specification being
// refined. It is owned exclusively by the refinement loop; every other
// component reads it only.
type WorkingState struct {
	Requirements           []draft.Requirement           `yaml:"requirements"`
	EdgeCases              []draft.EdgeCase              `yaml:"edge_cases"`
	Contradictions         []draft.Contradiction         `yaml:"contradictions"`
	CompletenessGaps       []draft.CompletenessGap       `yaml:"completeness_gaps"`
	CompressedRequirements []draft.CompressedRequirement `yaml:"compressed_requirements"`
}

// Clone returns a deep copy of the state.
func (w *WorkingState) Clone() WorkingState {
	return WorkingState{
		Requirements:           append([]draft.Requirement(nil), w.Requirements...),
		EdgeCases:              append([]draft.EdgeCase(nil), w.EdgeCases...),
		Contradictions:         append([]draft.Contradiction(nil), w.Contradictions...),
		CompletenessGaps:       append([]draft.CompletenessGap(nil), w.CompletenessGaps...),
		CompressedRequirements: append([]draft.CompressedRequirement(nil), w.CompressedRequirements...),
	}
}

// AppendRequirement adds a requirement to the working state. All state
// changes are additive: conflicting or compressed originals are
// supplemented, never auto-deleted.
func (w *WorkingState) AppendRequirement(r draft.Requirement) {
	w.Requirements = append(w.Requirements, r)
}

// RemainingIssues counts open findings: unresolved contradictions,
// completeness gaps, and edge cases without a defined handling.
func (w *WorkingState) RemainingIssues() int {
	n := w.UnresolvedContradictions() + len(w.CompletenessGaps)
	for _, ec := range w.EdgeCases {
		if !ec.Handled {
			n++
		}
	}
	return n
}

// UnresolvedContradictions counts contradictions not yet marked resolved.
func (w *WorkingState) UnresolvedContradictions() int {
	var n int
	for _, c := range w.Contradictions {
		if !c.Resolved {
			n++
		}
	}
	return n
}

// Iteration records one completed pass of the refinement loop. It is
// immutable once appended to a session.
type Iteration struct {
	Number               int       `yaml:"iteration_number"` // 1-based, monotonic
	SuggestionsPresented int       `yaml:"suggestions_presented"`
	Feedback             Feedback  `yaml:"user_feedback"`
	ChangesApplied       int       `yaml:"changes_applied"`
	Timestamp            time.Time `yaml:"timestamp"`
	DurationSeconds      float64   `yaml:"duration_seconds,omitempty"`
}

// Metrics summarizes one iteration for display and logging.
type Metrics struct {
	Iteration      int
	Suggestions    int
	AcceptanceRate float64
	ChangesApplied int
	Satisfaction   int
	Duration       float64
}

// Metrics returns the key numbers for this iteration.
func (it *Iteration) Metrics() Metrics {
	return Metrics{
		Iteration:      it.Number,
		Suggestions:    it.SuggestionsPresented,
		AcceptanceRate: it.Feedback.AcceptanceRate(),
		ChangesApplied: it.ChangesApplied,
		Satisfaction:   it.Feedback.OverallSatisfaction,
		Duration:       it.DurationSeconds,
	}
}

// Session is the central aggregate for one refinement run: the original
// draft snapshot, the mutable working state, and the append-only
// iteration and decision histories. Once Finalized flips true the
// current state never changes again.
type Session struct {
	ID           string          `yaml:"session_id"`
	OriginalSpec draft.Spec      `yaml:"original_spec"`
	CurrentState WorkingState    `yaml:"current_state"`
	Iterations   []Iteration     `yaml:"iterations"`
	Decisions    []Decision      `yaml:"user_decisions"`
	Finalized    bool            `yaml:"is_finalized"`
	FinalSpec    *finalspec.Spec `yaml:"finalized_spec,omitempty"`
	CreatedAt    time.Time       `yaml:"created_at"`
	UpdatedAt    time.Time       `yaml:"updated_at"`
}

// New creates a session wrapping a draft specification. The draft is
// snapshotted as OriginalSpec and copied into the working state.
func New(spec *draft.Spec) *Session {
	now := time.Now()
	working := WorkingState{
		Requirements:           spec.Requirements,
		EdgeCases:              spec.EdgeCases,
		Contradictions:         spec.Contradictions,
		CompletenessGaps:       spec.CompletenessGaps,
		CompressedRequirements: spec.CompressedRequirements,
	}
	return &Session{
		ID:           ulid.Make().String(),
		OriginalSpec: *spec,
		CurrentState: working.Clone(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// RecordIteration appends an iteration and flattens its decisions into
// the session-wide decision history.
func (s *Session) RecordIteration(it Iteration) {
	s.Iterations = append(s.Iterations, it)
	s.Decisions = append(s.Decisions, it.Feedback.Decisions...)
	s.UpdatedAt = time.Now()
}

// AcceptanceRate is the cumulative share of accepted or modified
// decisions across the whole session.
func (s *Session) AcceptanceRate() float64 {
	if len(s.Decisions) == 0 {
		return 0
	}
	var accepted int
	for _, d := range s.Decisions {
		if d.Action == ActionAccept || d.Action == ActionModify {
			accepted++
		}
	}
	return float64(accepted) / float64(len(s.Decisions))
}

// Finalize freezes the session with its finalized specification.
func (s *Session) Finalize(spec *finalspec.Spec) {
	s.Finalized = true
	s.FinalSpec = spec
	s.UpdatedAt = time.Now()
}

// SessionMetrics summarizes the whole session.
type SessionMetrics struct {
	SessionID        string
	TotalIterations  int
	TotalSuggestions int
	TotalDecisions   int
	AcceptanceRate   float64
	TotalChanges     int
	Finalized        bool
}

// Metrics returns cumulative session metrics.
func (s *Session) Metrics() SessionMetrics {
	m := SessionMetrics{
		SessionID:       s.ID,
		TotalIterations: len(s.Iterations),
		TotalDecisions:  len(s.Decisions),
		AcceptanceRate:  s.AcceptanceRate(),
		Finalized:       s.Finalized,
	}
	for _, it := range s.Iterations {
		m.TotalSuggestions += it.SuggestionsPresented
		m.TotalChanges += it.ChangesApplied
	}
	return m
}
