package engine

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseIdle, PhaseRunning, true},
		{PhaseRunning, PhaseOver, true},
		{PhaseOver, PhaseIdle, true},
		{PhaseRunning, PhaseFailed, true},
		{PhaseFailed, PhaseIdle, true},
		{PhaseIdle, PhaseFailed, false},
		{PhaseFailed, PhaseRunning, false},
		{PhaseOver, PhaseFailed, false},
		{PhaseIdle, PhaseOver, false},
		{PhaseIdle, PhaseIdle, false},
		{PhaseRunning, PhaseIdle, false},
		{PhaseRunning, PhaseRunning, false},
		{PhaseOver, PhaseRunning, false},
		{PhaseOver, PhaseOver, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseIdle.String() != "Idle" || PhaseRunning.String() != "Running" ||
		PhaseOver.String() != "Over" || PhaseFailed.String() != "Failed" {
		t.Error("Unexpected phase names")
	}
	if Phase(99).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %q", Phase(99).String())
	}
}

func TestTransitionError(t *testing.T) {
	var err error = &TransitionError{From: PhaseOver, To: PhaseRunning}
	if !errors.Is(err, ErrInvalidTransition) {
		t.Error("TransitionError should match ErrInvalidTransition")
	}
	if want := "invalid state transition: Over -> Running"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
