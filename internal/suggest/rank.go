package suggest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RevCBH/refinery/internal/draft"
)

// Ranking weights. Contradictions rank first (integrity), then edge
// cases (robustness), then completeness, then style-level compression.
const (
	weightConfidence = 0.3
	weightImpact     = 0.4
	weightEffort     = 0.2
	weightType       = 0.1
)

var impactWeights = map[draft.Impact]float64{
	draft.ImpactHigh:   1.0,
	draft.ImpactMedium: 0.6,
	draft.ImpactLow:    0.3,
}

// Lower effort scores higher.
var effortWeights = map[draft.Effort]float64{
	draft.EffortLow:    1.0,
	draft.EffortMedium: 0.7,
	draft.EffortHigh:   0.4,
}

var typeWeights = map[Type]float64{
	TypeContradictionResolution: 1.0,
	TypeEdgeCaseHandling:        0.8,
	TypeCompletenessAddition:    0.6,
	TypeCompressionRefinement:   0.4,
}

// Score computes the composite ranking score for a suggestion from its
// confidence, impact, effort, and type.
func Score(s Suggestion) float64 {
	impact, ok := impactWeights[s.Impact]
	if !ok {
		impact = impactWeights[draft.ImpactMedium]
	}
	effort, ok := effortWeights[s.Effort]
	if !ok {
		effort = effortWeights[draft.EffortMedium]
	}
	typ, ok := typeWeights[s.Type]
	if !ok {
		typ = typeWeights[TypeCompletenessAddition]
	}

	return s.Confidence*weightConfidence +
		impact*weightImpact +
		effort*weightEffort +
		typ*weightType
}

// Rank scores and sorts suggestions by descending score, attaching Score,
// Rank (1-based), and a human-readable rank rationale. Ties keep their
// original order. The input slice is not modified.
func Rank(suggestions []Suggestion) []Suggestion {
	ranked := make([]Suggestion, len(suggestions))
	copy(ranked, suggestions)

	for i := range ranked {
		ranked[i].Score = Score(ranked[i])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].RankRationale = rankRationale(ranked[i])
	}

	return ranked
}

func rankRationale(s Suggestion) string {
	var parts []string

	switch {
	case s.Confidence >= 0.8:
		parts = append(parts, "high confidence")
	case s.Confidence >= 0.6:
		parts = append(parts, "medium confidence")
	default:
		parts = append(parts, "lower confidence")
	}

	parts = append(parts, fmt.Sprintf("%s impact", s.Impact))
	parts = append(parts, fmt.Sprintf("%s effort", s.Effort))

	switch s.Type {
	case TypeContradictionResolution:
		parts = append(parts, "critical contradiction")
	case TypeEdgeCaseHandling:
		parts = append(parts, "important edge case")
	}

	return fmt.Sprintf("Ranked due to: %s (score: %.3f)", strings.Join(parts, ", "), s.Score)
}
