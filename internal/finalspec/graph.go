package finalspec

import (
	"fmt"
	"strings"
	"time"

	"github.com/RevCBH/refinery/internal/draft"
)

// ExecutionGraph is the view of a finalized specification consumed by
// the execution planning collaborator.
type ExecutionGraph struct {
	Requirements   []draft.Requirement `yaml:"requirements" json:"requirements"`
	Constraints    GraphConstraints    `yaml:"constraints" json:"constraints"`
	Metadata       GraphMetadata       `yaml:"metadata" json:"metadata"`
	ExecutionHints GraphHints          `yaml:"execution_hints" json:"execution_hints"`
}

// GraphConstraints carries the resolved findings as planning constraints.
type GraphConstraints struct {
	EdgeCases      []draft.EdgeCase      `yaml:"edge_cases" json:"edge_cases"`
	ResolvedIssues []draft.Contradiction `yaml:"resolved_issues" json:"resolved_issues"`
}

// GraphMetadata identifies the refinement the graph came from.
type GraphMetadata struct {
	Confidence        float64   `yaml:"confidence" json:"confidence"`
	RefinementQuality float64   `yaml:"refinement_quality" json:"refinement_quality"`
	SpecificationID   string    `yaml:"specification_id" json:"specification_id"`
	FinalizedAt       time.Time `yaml:"finalized_at" json:"finalized_at"`
}

// GraphHints are advisory pointers for planning order and test focus.
type GraphHints struct {
	PriorityRequirements []draft.Requirement `yaml:"priority_requirements" json:"priority_requirements"`
	RiskAreas            []string            `yaml:"risk_areas" json:"risk_areas"`
	ValidationPoints     []string            `yaml:"validation_points" json:"validation_points"`
}

// ToExecutionGraph converts the finalized specification into the
// planning view.
func (s *Spec) ToExecutionGraph() ExecutionGraph {
	return ExecutionGraph{
		Requirements: s.Requirements,
		Constraints: GraphConstraints{
			EdgeCases:      s.ResolvedEdgeCases,
			ResolvedIssues: s.ResolvedContradictions,
		},
		Metadata: GraphMetadata{
			Confidence:        s.ConfidenceScore,
			RefinementQuality: s.UserAcceptanceRate,
			SpecificationID:   s.SessionID,
			FinalizedAt:       s.ApprovalTimestamp,
		},
		ExecutionHints: GraphHints{
			PriorityRequirements: s.priorityRequirements(),
			RiskAreas:            s.riskAreas(),
			ValidationPoints:     s.validationPoints(),
		},
	}
}

func (s *Spec) priorityRequirements() []draft.Requirement {
	var out []draft.Requirement
	for _, req := range s.Requirements {
		if req.Priority == "high" {
			out = append(out, req)
		}
	}
	return out
}

// riskAreas flags requirements with clustered edge cases and
// requirements added during refinement, both of which need extra
// validation downstream.
func (s *Spec) riskAreas() []string {
	var risks []string

	counts := make(map[string]int)
	var order []string
	for _, ec := range s.ResolvedEdgeCases {
		if ec.RelatedRequirement == "" {
			continue
		}
		if counts[ec.RelatedRequirement] == 0 {
			order = append(order, ec.RelatedRequirement)
		}
		counts[ec.RelatedRequirement]++
	}
	var clustered []string
	for _, req := range order {
		if counts[req] >= 3 {
			clustered = append(clustered, req)
		}
	}
	if len(clustered) > 0 {
		risks = append(risks, fmt.Sprintf("Requirements with many edge cases: %s", strings.Join(clustered, ", ")))
	}

	for _, req := range s.Requirements {
		if req.Source == "refinement_suggestion" || req.Source == "user_custom" {
			risks = append(risks, "Recently added/modified requirements need extra validation")
			break
		}
	}

	return risks
}

func (s *Spec) validationPoints() []string {
	var points []string

	for _, ec := range s.ResolvedEdgeCases {
		if ec.Handling != "" {
			points = append(points, "Edge case: "+ec.Description)
		}
	}
	for _, req := range s.Requirements {
		if req.Confidence >= 0.8 {
			points = append(points, "High-priority: "+req.Content)
		}
	}

	return points
}
