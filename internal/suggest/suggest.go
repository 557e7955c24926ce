package suggest

import (
	"fmt"

	"github.com/RevCBH/refinery/internal/draft"
)

// Type identifies the category of improvement a suggestion proposes.
type Type string

const (
	TypeEdgeCaseHandling        Type = "edge_case_handling"
	TypeContradictionResolution Type = "contradiction_resolution"
	TypeCompletenessAddition    Type = "completeness_addition"
	TypeCompressionRefinement   Type = "compression_refinement"
)

// ParseType converts a string to Type with validation.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeEdgeCaseHandling, TypeContradictionResolution,
		TypeCompletenessAddition, TypeCompressionRefinement:
		return t, nil
	default:
		return "", fmt.Errorf("invalid suggestion type: %s", s)
	}
}

// EdgeCasePayload is the content of an edge_case_handling suggestion.
type EdgeCasePayload struct {
	EdgeCaseID     string `yaml:"edge_case_id" json:"edge_case_id"`
	Strategy       string `yaml:"strategy" json:"strategy"`
	Handling       string `yaml:"handling" json:"handling"`
	Implementation string `yaml:"implementation,omitempty" json:"implementation,omitempty"`
}

// ContradictionPayload is the content of a contradiction_resolution suggestion.
type ContradictionPayload struct {
	ContradictionID      string   `yaml:"contradiction_id" json:"contradiction_id"`
	Strategy             string   `yaml:"strategy" json:"strategy"`
	Resolution           string   `yaml:"resolution" json:"resolution"`
	AffectedRequirements []string `yaml:"affected_requirements,omitempty" json:"affected_requirements,omitempty"`
}

// CompletenessPayload is the content of a completeness_addition suggestion.
type CompletenessPayload struct {
	GapID         string            `yaml:"gap_id" json:"gap_id"`
	Requirement   draft.Requirement `yaml:"requirement" json:"requirement"`
	Justification string            `yaml:"justification,omitempty" json:"justification,omitempty"`
}

// CompressionPayload is the content of a compression_refinement suggestion.
type CompressionPayload struct {
	CompressionID   string `yaml:"compression_id" json:"compression_id"`
	RefinedText     string `yaml:"refined_text" json:"refined_text"`
	ImprovementType string `yaml:"improvement_type,omitempty" json:"improvement_type,omitempty"`
	QualityGain     string `yaml:"quality_gain,omitempty" json:"quality_gain,omitempty"`
}

// Content is a tagged variant holding exactly one payload, keyed by the
// suggestion Type.
type Content struct {
	EdgeCase      *EdgeCasePayload      `yaml:"edge_case,omitempty" json:"edge_case,omitempty"`
	Contradiction *ContradictionPayload `yaml:"contradiction,omitempty" json:"contradiction,omitempty"`
	Completeness  *CompletenessPayload  `yaml:"completeness,omitempty" json:"completeness,omitempty"`
	Compression   *CompressionPayload   `yaml:"compression,omitempty" json:"compression,omitempty"`
}

// Suggestion is a single proposed change addressing one finding.
// Values are immutable once generated; Score and Rank are derived fields
// attached by Rank and are not part of the suggestion's identity.
type Suggestion struct {
	ID           string       `yaml:"id" json:"id"`
	Type         Type         `yaml:"type" json:"type"`
	Title        string       `yaml:"title" json:"title"`
	Description  string       `yaml:"description" json:"description"`
	Content      Content      `yaml:"content" json:"content"`
	Confidence   float64      `yaml:"confidence" json:"confidence"`
	Impact       draft.Impact `yaml:"impact" json:"impact"`
	Effort       draft.Effort `yaml:"effort" json:"effort"`
	Rationale    string       `yaml:"rationale,omitempty" json:"rationale,omitempty"`
	Examples     []string     `yaml:"examples,omitempty" json:"examples,omitempty"`
	RelatedItems []string     `yaml:"related_items,omitempty" json:"related_items,omitempty"`

	// Derived by Rank.
	Score         float64 `yaml:"score,omitempty" json:"score,omitempty"`
	Rank          int     `yaml:"rank,omitempty" json:"rank,omitempty"`
	RankRationale string  `yaml:"rank_rationale,omitempty" json:"rank_rationale,omitempty"`
}

// truncate shortens a finding description for use in suggestion titles.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
