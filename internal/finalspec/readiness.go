package finalspec

import "fmt"

// Readiness is the advisory execution-readiness assessment for the
// downstream planning collaborator. It gates nothing inside refinery.
type Readiness struct {
	Ready           bool
	Score           float64
	Blockers        []string
	Recommendations []string
}

// ExecutionReadiness derives a readiness score from the confidence
// score, penalized for incompleteness, low acceptance, and unresolved
// contradictions. Ready requires score >= 0.8 and the dispatch flag.
func (s *Spec) ExecutionReadiness() Readiness {
	score := s.ConfidenceScore

	if !s.CompleteRequirementSet {
		score *= 0.8
	}
	if s.UserAcceptanceRate < 0.7 {
		score *= 0.9
	}
	if unresolved := s.unresolvedContradictions(); unresolved > 0 {
		score *= 1.0 - float64(unresolved)*0.1
	}

	return Readiness{
		Ready:           score >= 0.8 && s.ReadyForDispatch,
		Score:           score,
		Blockers:        s.blockers(),
		Recommendations: s.recommendations(),
	}
}

func (s *Spec) blockers() []string {
	var blockers []string

	if !s.CompleteRequirementSet {
		blockers = append(blockers, "Incomplete requirement set")
	}
	if s.ConfidenceScore < 0.6 {
		blockers = append(blockers, "Low confidence score")
	}
	if unresolved := s.unresolvedContradictions(); unresolved > 0 {
		blockers = append(blockers, fmt.Sprintf("%d unresolved contradictions", unresolved))
	}
	if s.UserAcceptanceRate < 0.5 {
		blockers = append(blockers, "Low user acceptance rate")
	}

	return blockers
}

func (s *Spec) recommendations() []string {
	var recs []string

	switch {
	case s.ConfidenceScore >= 0.9:
		recs = append(recs, "High confidence - proceed with full execution planning")
	case s.ConfidenceScore >= 0.8:
		recs = append(recs, "Good confidence - consider pilot implementation")
	default:
		recs = append(recs, "Consider additional refinement before execution")
	}

	if len(s.Requirements) > 50 {
		recs = append(recs, "Large specification - consider phased implementation")
	}
	if len(s.ResolvedEdgeCases) > 20 {
		recs = append(recs, "Many edge cases - prioritize robust error handling")
	}

	return recs
}
