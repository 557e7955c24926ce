// Package finalspec holds the terminal artifact of a refinement session:
// the user-approved specification, its derived readiness analyses, and
// export to downstream formats.
package finalspec

import (
	"time"

	"github.com/RevCBH/refinery/internal/draft"
)

// Spec is the finalized, user-approved specification ready for execution
// planning. It is immutable once created; readiness, blockers, and
// recommendations are computed on demand, never stored.
type Spec struct {
	Requirements           []draft.Requirement   `yaml:"requirements" json:"requirements"`
	ResolvedEdgeCases      []draft.EdgeCase      `yaml:"resolved_edge_cases" json:"resolved_edge_cases"`
	ResolvedContradictions []draft.Contradiction `yaml:"resolved_contradictions" json:"resolved_contradictions"`
	CompleteRequirementSet bool                  `yaml:"complete_requirement_set" json:"complete_requirement_set"`
	ConfidenceScore        float64               `yaml:"confidence_score" json:"confidence_score"`
	ApprovalTimestamp      time.Time             `yaml:"approval_timestamp" json:"approval_timestamp"`
	SessionID              string                `yaml:"refinement_session_id" json:"refinement_session_id"`
	TotalIterations        int                   `yaml:"total_iterations" json:"total_iterations"`
	UserAcceptanceRate     float64               `yaml:"user_acceptance_rate" json:"user_acceptance_rate"`
	ReadyForDispatch       bool                  `yaml:"ready_for_dispatch" json:"ready_for_dispatch"`
}

// unresolvedContradictions counts contradictions carried into the final
// spec without a resolution.
func (s *Spec) unresolvedContradictions() int {
	var n int
	for _, c := range s.ResolvedContradictions {
		if !c.Resolved {
			n++
		}
	}
	return n
}
