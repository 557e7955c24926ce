package finalspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RevCBH/refinery/internal/draft"
)

func readySpec() *Spec {
	return &Spec{
		Requirements: []draft.Requirement{
			{ID: "req-1", Content: "System must process payments", Priority: "high", Confidence: 0.9},
		},
		ResolvedEdgeCases: []draft.EdgeCase{
			{ID: "ec-1", Description: "network timeout", Handled: true, Handling: "retry with backoff"},
		},
		ResolvedContradictions: []draft.Contradiction{
			{ID: "c-1", Description: "speed vs durability", Resolved: true, Resolution: "durability wins"},
		},
		CompleteRequirementSet: true,
		ConfidenceScore:        0.9,
		SessionID:              "01TEST",
		TotalIterations:        3,
		UserAcceptanceRate:     0.8,
		ReadyForDispatch:       true,
	}
}

func TestExecutionReadiness_CleanSpecIsReady(t *testing.T) {
	r := readySpec().ExecutionReadiness()

	assert.True(t, r.Ready)
	assert.InDelta(t, 0.9, r.Score, 1e-9)
	assert.Empty(t, r.Blockers)
	require.NotEmpty(t, r.Recommendations)
	assert.Contains(t, r.Recommendations[0], "High confidence")
}

func TestExecutionReadiness_Penalties(t *testing.T) {
	s := readySpec()
	s.CompleteRequirementSet = false
	s.UserAcceptanceRate = 0.6
	s.ResolvedContradictions = append(s.ResolvedContradictions,
		draft.Contradiction{ID: "c-2", Description: "open conflict"},
		draft.Contradiction{ID: "c-3", Description: "another open conflict"})

	r := s.ExecutionReadiness()

	// 0.9 * 0.8 (incomplete) * 0.9 (acceptance < 0.7) * 0.8 (2 unresolved)
	assert.InDelta(t, 0.9*0.8*0.9*0.8, r.Score, 1e-9)
	assert.False(t, r.Ready)
	assert.Contains(t, r.Blockers, "Incomplete requirement set")
	assert.Contains(t, r.Blockers, "2 unresolved contradictions")
}

func TestExecutionReadiness_DispatchFlagGates(t *testing.T) {
	s := readySpec()
	s.ReadyForDispatch = false

	r := s.ExecutionReadiness()
	assert.False(t, r.Ready)
	assert.GreaterOrEqual(t, r.Score, 0.8)
}

func TestExecutionReadiness_LowEverythingBlocks(t *testing.T) {
	s := readySpec()
	s.ConfidenceScore = 0.5
	s.UserAcceptanceRate = 0.4

	r := s.ExecutionReadiness()
	assert.False(t, r.Ready)
	assert.Contains(t, r.Blockers, "Low confidence score")
	assert.Contains(t, r.Blockers, "Low user acceptance rate")
	assert.Contains(t, r.Recommendations[0], "additional refinement")
}
