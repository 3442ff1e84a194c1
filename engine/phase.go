package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned by Run and Reset from a phase that does not allow them
var ErrInvalidTransition = errors.New("invalid state transition")

// Phase is the run lifecycle state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
	// PhaseFailed ends a run on a fatal simulation error, no score is reported
	PhaseFailed
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseOver:
		return "Over"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// validTransitions is the complete edge set of the lifecycle
var validTransitions = map[Phase][]Phase{
	PhaseIdle:    {PhaseRunning},
	PhaseRunning: {PhaseOver, PhaseFailed},
	PhaseOver:    {PhaseIdle},
	PhaseFailed:  {PhaseIdle},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// TransitionError reports a rejected lifecycle operation
type TransitionError struct {
	From, To Phase
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Unwrap lets errors.Is match ErrInvalidTransition
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
