// Package metrics exposes Prometheus counters for the signal pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EvaluationsTotal counts engine evaluations by the decision level that
	// produced the target state (structured, trend, neutral).
	EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "evaluations_total", Help: "Engine evaluations by decision level"},
		[]string{"level"},
	)
	// DeadlocksTotal counts evaluations where the deadlock detector fired.
	DeadlocksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "deadlocks_total", Help: "Evaluations with a nonzero deadlock score"},
	)
	// SignalsTotal counts emitted signals by agent and sign.
	SignalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "signals_total", Help: "Signals emitted by agent and direction"},
		[]string{"agent", "direction"},
	)
)

func init() {
	prometheus.MustRegister(EvaluationsTotal, DeadlocksTotal, SignalsTotal)
}

// Direction buckets a signal value for the SignalsTotal label.
func Direction(signal float64) string {
	switch {
	case signal > 0:
		return "long"
	case signal < 0:
		return "short"
	default:
		return "flat"
	}
}

// Serve starts a background HTTP server exposing /metrics on addr.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
