// Package engine turns a candle history into one bounded trading signal by
// routing shortest-path searches over the market-state graph through a
// hysteresis-damped, multi-level decision policy.
package engine

import (
	"math"
	"sync"

	"github.com/rs/zerolog"

	"pathsig-go/internal/dijkstra"
	"pathsig-go/internal/graph"
	"pathsig-go/internal/market"
	"pathsig-go/internal/metrics"
	"pathsig-go/internal/state"
)

// Config groups the tunable knobs of the decision engine.
type Config struct {
	LookbackWindow      int     `yaml:"lookback_window"`
	RiskWeight          float64 `yaml:"risk_weight"`
	StateThreshold      float64 `yaml:"state_threshold"`
	StructureLevels     int     `yaml:"structure_levels"`
	DeadlockSensitivity float64 `yaml:"deadlock_sensitivity"`
}

// DefaultConfig returns the canonical parameter set.
func DefaultConfig() Config {
	return Config{
		LookbackWindow:      42,
		RiskWeight:          0.7,
		StateThreshold:      0.25,
		StructureLevels:     3,
		DeadlockSensitivity: 1.5,
	}
}

// normalized substitutes defaults for out-of-range values so a zero Config
// still behaves.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.LookbackWindow <= 0 {
		c.LookbackWindow = def.LookbackWindow
	}
	if c.RiskWeight <= 0 || c.RiskWeight > 1 {
		c.RiskWeight = def.RiskWeight
	}
	if c.StateThreshold <= 0 {
		c.StateThreshold = def.StateThreshold
	}
	if c.StructureLevels < 1 || c.StructureLevels > 3 {
		c.StructureLevels = def.StructureLevels
	}
	if c.DeadlockSensitivity <= 0 {
		c.DeadlockSensitivity = def.DeadlockSensitivity
	}
	return c
}

// Engine evaluates candle histories into signals. The semaphore is the only
// state carried across calls; the mutex serializes its read-then-write so a
// shared engine does not lose updates.
type Engine struct {
	cfg      Config
	disc     state.Discretizer
	builder  graph.Builder
	deadlock deadlockDetector
	log      zerolog.Logger

	mu        sync.Mutex
	semaphore int
	fitted    bool
}

// New constructs an engine with the supplied configuration and logger.
func New(cfg Config, log zerolog.Logger) *Engine {
	cfg = cfg.normalized()
	return &Engine{
		cfg:      cfg,
		disc:     state.NewDiscretizer(cfg.LookbackWindow),
		builder:  graph.NewBuilder(cfg.RiskWeight),
		deadlock: deadlockDetector{sensitivity: cfg.DeadlockSensitivity},
		log:      log,
	}
}

// Evaluate computes the signal for the supplied history. Fewer than
// LookbackWindow candles short-circuit to 0 and leave the engine unfitted.
// The result is always finite, in [-1, 1], rounded to 4 decimals.
func (e *Engine) Evaluate(candles []market.Candle) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	prices := market.Closes(candles)
	if len(prices) < e.cfg.LookbackWindow {
		e.fitted = false
		return 0.0
	}

	window := e.disc.Window(prices)
	states, current := e.disc.States(prices)

	var volWindow []float64
	if volumes := market.Volumes(candles); len(volumes) >= e.cfg.LookbackWindow {
		volWindow = volumes[len(volumes)-e.cfg.LookbackWindow:]
	}
	g := e.builder.Build(states, window, volWindow)

	returns := market.Returns(prices)

	// The policy reads the semaphore as it stood before this call; the
	// controller then advances it for the next one.
	target, confidence, level := e.decide(&g, current, returns)
	e.semaphore = e.nextSemaphore(current, target, returns)

	deadlock := sanitize(e.deadlock.score(window, current))
	sig := sanitize(mapSignal(target, confidence, deadlock))
	sig = round4(sig)

	e.fitted = true
	metrics.EvaluationsTotal.WithLabelValues(levelLabel(level)).Inc()
	if deadlock != 0 {
		metrics.DeadlocksTotal.Inc()
	}
	e.log.Debug().
		Str("state", current.String()).
		Str("target", target.String()).
		Int("level", level).
		Int("semaphore", e.semaphore).
		Float64("deadlock", deadlock).
		Float64("signal", sig).
		Msg("evaluated window")

	return sig
}

// Fitted reports whether the last Evaluate call had enough data to run the
// full pipeline.
func (e *Engine) Fitted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fitted
}

// Semaphore returns the current hysteresis counter, in [-5, 5].
func (e *Engine) Semaphore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.semaphore
}

// Reset clears the cross-call state, returning the engine to construction
// time behavior.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.semaphore = 0
	e.fitted = false
}

// solve is a seam for the solver so policy code reads uniformly.
func solve(g *graph.Graph, start state.State, targets []state.State) dijkstra.Result {
	return dijkstra.Solve(g, start, targets)
}

// sanitize replaces non-finite intermediates with 0 before they can reach
// the output.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func levelLabel(level int) string {
	switch level {
	case 3:
		return "structured"
	case 2:
		return "trend"
	default:
		return "neutral"
	}
}
