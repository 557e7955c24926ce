package draft

import "fmt"

// Severity indicates how serious a finding is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ParseSeverity converts a string to Severity with validation.
// Empty string parses to SeverityMedium (default).
func ParseSeverity(s string) (Severity, error) {
	if s == "" {
		return SeverityMedium, nil
	}
	switch sev := Severity(s); sev {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return sev, nil
	default:
		return "", fmt.Errorf("invalid severity: %s", s)
	}
}

// Impact is the expected impact of a finding or suggestion.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Effort is the estimated effort to act on a suggestion.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// Requirement is a single specification requirement.
type Requirement struct {
	ID         string  `yaml:"id,omitempty" json:"id,omitempty"`
	Type       string  `yaml:"type,omitempty" json:"type,omitempty"`
	Content    string  `yaml:"content" json:"content"`
	Priority   string  `yaml:"priority,omitempty" json:"priority,omitempty"`
	Category   string  `yaml:"category,omitempty" json:"category,omitempty"`
	Source     string  `yaml:"source,omitempty" json:"source,omitempty"`
	Confidence float64 `yaml:"confidence,omitempty" json:"confidence,omitempty"`
}

// EdgeCase is an edge case identified by the upstream analysis engine.
type EdgeCase struct {
	ID          string   `yaml:"id" json:"id"`
	Category    string   `yaml:"category,omitempty" json:"category,omitempty"`
	Description string   `yaml:"description" json:"description"`
	Context     string   `yaml:"context,omitempty" json:"context,omitempty"`
	Impact      Impact   `yaml:"impact,omitempty" json:"impact,omitempty"`
	Severity    Severity `yaml:"severity,omitempty" json:"severity,omitempty"`
	Confidence  float64  `yaml:"confidence,omitempty" json:"confidence,omitempty"`

	// RelatedRequirement links back to the requirement this case stresses.
	RelatedRequirement string `yaml:"related_requirement,omitempty" json:"related_requirement,omitempty"`

	// Handled indicates a handling strategy has been defined.
	Handled  bool   `yaml:"handled" json:"handled"`
	Handling string `yaml:"handling,omitempty" json:"handling,omitempty"`
}

// Contradiction is a conflict between two requirements.
type Contradiction struct {
	ID                  string   `yaml:"id" json:"id"`
	Description         string   `yaml:"description" json:"description"`
	Requirement1        string   `yaml:"requirement_1,omitempty" json:"requirement_1,omitempty"`
	Requirement2        string   `yaml:"requirement_2,omitempty" json:"requirement_2,omitempty"`
	Explanation         string   `yaml:"explanation,omitempty" json:"explanation,omitempty"`
	Severity            Severity `yaml:"severity,omitempty" json:"severity,omitempty"`
	SuggestedResolution string   `yaml:"suggested_resolution,omitempty" json:"suggested_resolution,omitempty"`
	Confidence          float64  `yaml:"confidence,omitempty" json:"confidence,omitempty"`

	Resolved   bool   `yaml:"resolved" json:"resolved"`
	Resolution string `yaml:"resolution,omitempty" json:"resolution,omitempty"`
}

// CompletenessGap is a missing area of the requirement set.
type CompletenessGap struct {
	ID                   string   `yaml:"id" json:"id"`
	Category             string   `yaml:"category,omitempty" json:"category,omitempty"`
	Description          string   `yaml:"description" json:"description"`
	SuggestedRequirement string   `yaml:"suggested_requirement,omitempty" json:"suggested_requirement,omitempty"`
	Importance           Severity `yaml:"importance,omitempty" json:"importance,omitempty"`
	Confidence           float64  `yaml:"confidence,omitempty" json:"confidence,omitempty"`
}

// CompressedRequirement is a requirement produced by merging several
// originals into a more concise form.
type CompressedRequirement struct {
	ID                   string   `yaml:"id" json:"id"`
	CompressedText       string   `yaml:"compressed_text" json:"compressed_text"`
	OriginalRequirements []string `yaml:"original_requirements,omitempty" json:"original_requirements,omitempty"`
	CompressionRatio     float64  `yaml:"compression_ratio,omitempty" json:"compression_ratio,omitempty"`
	SemanticPreserved    bool     `yaml:"semantic_preserved" json:"semantic_preserved"`
	Confidence           float64  `yaml:"confidence,omitempty" json:"confidence,omitempty"`
}

// Spec is the draft specification consumed from the upstream analysis
// engine. It is treated as an opaque input: refinery never re-runs
// analysis, it only refines what the engine found.
type Spec struct {
	Summary                string                  `yaml:"summary,omitempty" json:"summary,omitempty"`
	Confidence             float64                 `yaml:"confidence,omitempty" json:"confidence,omitempty"`
	Requirements           []Requirement           `yaml:"requirements" json:"requirements"`
	EdgeCases              []EdgeCase              `yaml:"edge_cases" json:"edge_cases"`
	Contradictions         []Contradiction         `yaml:"contradictions" json:"contradictions"`
	CompletenessGaps       []CompletenessGap       `yaml:"completeness_gaps" json:"completeness_gaps"`
	CompressedRequirements []CompressedRequirement `yaml:"compressed_requirements" json:"compressed_requirements"`
}

// Validate checks confidence bounds across the draft.
func (s *Spec) Validate() error {
	if s.Confidence < 0 || s.Confidence > 1 {
		return fmt.Errorf("draft confidence %g outside [0,1]", s.Confidence)
	}
	for _, ec := range s.EdgeCases {
		if ec.Confidence < 0 || ec.Confidence > 1 {
			return fmt.Errorf("edge case %s: confidence %g outside [0,1]", ec.ID, ec.Confidence)
		}
	}
	for _, c := range s.Contradictions {
		if c.Confidence < 0 || c.Confidence > 1 {
			return fmt.Errorf("contradiction %s: confidence %g outside [0,1]", c.ID, c.Confidence)
		}
	}
	for _, g := range s.CompletenessGaps {
		if g.Confidence < 0 || g.Confidence > 1 {
			return fmt.Errorf("completeness gap %s: confidence %g outside [0,1]", g.ID, g.Confidence)
		}
	}
	for _, cr := range s.CompressedRequirements {
		if cr.CompressionRatio < 0 || cr.CompressionRatio > 1 {
			return fmt.Errorf("compressed requirement %s: compression ratio %g outside [0,1]", cr.ID, cr.CompressionRatio)
		}
	}
	return nil
}
