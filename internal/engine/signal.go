package engine

import "pathsig-go/internal/state"

// Blend factors applied when a deadlock is flagged: the base signal keeps
// most of the say, the expected breakout direction the rest.
const (
	signalWeight   = 0.7
	deadlockWeight = 0.3
)

// mapSignal converts the chosen target state and confidence into the final
// bounded signal, folding in the deadlock score when it is nonzero.
func mapSignal(target state.State, confidence, deadlock float64) float64 {
	sig := target.Value() * confidence
	if deadlock != 0 {
		sig = signalWeight*sig + deadlockWeight*deadlock
	}
	return clip(sig, -1, 1)
}
