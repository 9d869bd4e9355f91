// Package state discretizes prices into a small alphabet of market states.
package state

// State identifies one of nine z-score bands a price can occupy relative to
// its recent mean.
type State int

const (
	ExtremeLow State = iota
	VeryLow
	Low
	SlightLow
	Neutral
	SlightHigh
	High
	VeryHigh
	ExtremeHigh
)

// Count is the number of distinct market states.
const Count = 9

var names = [Count]string{
	"extreme_low", "very_low", "low", "slight_low", "neutral",
	"slight_high", "high", "very_high", "extreme_high",
}

// values maps each state onto the signal scale used by the mapper.
var values = [Count]float64{-1.0, -0.8, -0.6, -0.3, 0.0, 0.3, 0.6, 0.8, 1.0}

// String returns the canonical label for the state.
func (s State) String() string {
	if s < 0 || s >= Count {
		return "unknown"
	}
	return names[s]
}

// Valid reports whether s is one of the nine defined states.
func (s State) Valid() bool { return s >= 0 && s < Count }

// Value returns the fixed signal value in [-1, 1] assigned to the state.
func (s State) Value() float64 {
	if !s.Valid() {
		return 0
	}
	return values[s]
}

// Rank returns the integer offset of the state from Neutral, in [-4, 4].
// Used by the hysteresis controller to size semaphore moves.
func (s State) Rank() int { return int(s) - int(Neutral) }

// FromZ buckets a z-score into a state using the fixed band boundaries
// {-2, -1, -0.5, -0.25, 0.25, 0.5, 1, 2}.
func FromZ(z float64) State {
	switch {
	case z < -2.0:
		return ExtremeLow
	case z < -1.0:
		return VeryLow
	case z < -0.5:
		return Low
	case z < -0.25:
		return SlightLow
	case z < 0.25:
		return Neutral
	case z < 0.5:
		return SlightHigh
	case z < 1.0:
		return High
	case z < 2.0:
		return VeryHigh
	default:
		return ExtremeHigh
	}
}

// BullishTargets lists the states a bullish path search aims for.
func BullishTargets() []State { return []State{High, VeryHigh, ExtremeHigh} }

// BearishTargets lists the states a bearish path search aims for.
func BearishTargets() []State { return []State{Low, VeryLow, ExtremeLow} }
