package engine

import (
	"math"
	"testing"

	"pathsig-go/internal/state"
)

func TestMapSignalNoDeadlock(t *testing.T) {
	got := mapSignal(state.SlightHigh, 0.7, 0)
	if math.Abs(got-0.21) > 1e-12 {
		t.Fatalf("mapSignal = %f, want 0.21", got)
	}
	if mapSignal(state.Neutral, 0.3, 0) != 0 {
		t.Fatalf("neutral target must map to 0")
	}
}

func TestMapSignalBlendsDeadlock(t *testing.T) {
	got := mapSignal(state.SlightHigh, 0.7, -0.09)
	want := 0.7*0.21 + 0.3*(-0.09)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("mapSignal = %f, want %f", got, want)
	}

	// A deadlock score pulls an otherwise flat signal in its direction.
	got = mapSignal(state.Neutral, 0.3, 0.5)
	if math.Abs(got-0.15) > 1e-12 {
		t.Fatalf("mapSignal = %f, want 0.15", got)
	}
}

func TestMapSignalClips(t *testing.T) {
	if got := mapSignal(state.ExtremeHigh, 1.0, 1.0); got != 1.0 {
		t.Fatalf("blend must clip at 1, got %f", got)
	}
	if got := mapSignal(state.ExtremeLow, 1.0, -1.0); got != -1.0 {
		t.Fatalf("blend must clip at -1, got %f", got)
	}
}
