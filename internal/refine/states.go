package refine

import "fmt"

// Phase represents the current state of a refinement session workflow
type Phase string

const (
	PhaseActive    Phase = "active"
	PhaseConverged Phase = "converged"
	PhaseFinalized Phase = "finalized"
	PhaseAbandoned Phase = "abandoned"
)

// ValidTransitions defines allowed phase transitions
var ValidTransitions = map[Phase][]Phase{
	PhaseActive:    {PhaseConverged, PhaseFinalized, PhaseAbandoned},
	PhaseConverged: {PhaseActive, PhaseFinalized, PhaseAbandoned},
	PhaseFinalized: {},
	PhaseAbandoned: {},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	validTargets, exists := ValidTransitions[from]
	if !exists {
		return false
	}

	for _, validTarget := range validTargets {
		if validTarget == to {
			return true
		}
	}

	return false
}

// ParsePhase converts a string to Phase with validation
func ParsePhase(s string) (Phase, error) {
	// Empty string should parse to PhaseActive (default state)
	if s == "" {
		return PhaseActive, nil
	}

	phase := Phase(s)

	_, exists := ValidTransitions[phase]
	if !exists {
		return "", fmt.Errorf("invalid refinement phase: %s", s)
	}

	return phase, nil
}

// IsTerminal returns true if the phase is a terminal state
func (p Phase) IsTerminal() bool {
	transitions, exists := ValidTransitions[p]
	if !exists {
		return false
	}

	return len(transitions) == 0
}
