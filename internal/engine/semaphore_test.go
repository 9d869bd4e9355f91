package engine

import (
	"testing"

	"pathsig-go/internal/state"
)

func TestNextSemaphoreDecaysTowardZero(t *testing.T) {
	e := newTestEngine()

	e.semaphore = 3
	if got := e.nextSemaphore(state.Neutral, state.Neutral, upReturns(10)); got != 2 {
		t.Fatalf("positive semaphore must decay by one, got %d", got)
	}

	e.semaphore = -2
	if got := e.nextSemaphore(state.High, state.High, upReturns(10)); got != -1 {
		t.Fatalf("negative semaphore must decay by one, got %d", got)
	}

	e.semaphore = 0
	if got := e.nextSemaphore(state.Low, state.Low, upReturns(10)); got != 0 {
		t.Fatalf("zero semaphore must stay put, got %d", got)
	}
}

func TestNextSemaphoreMomentumAgreement(t *testing.T) {
	e := newTestEngine()

	// Two ranks up with positive momentum: full two-step move.
	e.semaphore = 0
	if got := e.nextSemaphore(state.Neutral, state.High, upReturns(10)); got != 2 {
		t.Fatalf("agreeing momentum must move two, got %d", got)
	}

	// Four ranks up still caps at two.
	e.semaphore = 0
	if got := e.nextSemaphore(state.Neutral, state.ExtremeHigh, upReturns(10)); got != 2 {
		t.Fatalf("step must cap at two, got %d", got)
	}

	// Downward with negative momentum mirrors.
	e.semaphore = 0
	if got := e.nextSemaphore(state.Neutral, state.Low, negate(upReturns(10))); got != -2 {
		t.Fatalf("agreeing downward momentum must move minus two, got %d", got)
	}
}

func TestNextSemaphoreMomentumDisagreement(t *testing.T) {
	e := newTestEngine()

	// Upward transition against falling momentum: single step only.
	e.semaphore = 0
	if got := e.nextSemaphore(state.Neutral, state.High, negate(upReturns(10))); got != 1 {
		t.Fatalf("disagreeing momentum must move one, got %d", got)
	}

	e.semaphore = 0
	if got := e.nextSemaphore(state.Neutral, state.Low, upReturns(10)); got != -1 {
		t.Fatalf("disagreeing downward move must move minus one, got %d", got)
	}
}

func TestNextSemaphoreClamps(t *testing.T) {
	e := newTestEngine()

	e.semaphore = 5
	if got := e.nextSemaphore(state.Neutral, state.ExtremeHigh, upReturns(10)); got != 5 {
		t.Fatalf("semaphore must clamp at 5, got %d", got)
	}

	e.semaphore = -5
	if got := e.nextSemaphore(state.Neutral, state.ExtremeLow, negate(upReturns(10))); got != -5 {
		t.Fatalf("semaphore must clamp at -5, got %d", got)
	}
}

func TestSignSum(t *testing.T) {
	if signSum([]float64{1, -1, 2, 0, 3}) != 2 {
		t.Fatalf("unexpected sign sum")
	}
	if signSum(nil) != 0 {
		t.Fatalf("empty slice must sum to 0")
	}
}
