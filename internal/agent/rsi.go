package agent

import (
	"math"

	talib "github.com/markcheno/go-talib"

	"pathsig-go/internal/market"
	"pathsig-go/internal/metrics"
)

// RSIReversion is a stateless reference collaborator: it fades RSI
// extremes, mapping distance from the 50 midline onto the signal scale.
type RSIReversion struct {
	period int
}

// NewRSIReversion builds the agent, defaulting to a 14-sample RSI.
func NewRSIReversion(period int) *RSIReversion {
	if period <= 0 {
		period = 14
	}
	return &RSIReversion{period: period}
}

// Name returns the identifier used in logs and metrics labels.
func (r *RSIReversion) Name() string { return "rsi_reversion" }

// Strategy maps the latest RSI into [-1, 1]; histories shorter than the
// RSI period yield 0.
func (r *RSIReversion) Strategy(candles []market.Candle) float64 {
	closes := market.Closes(candles)
	if len(closes) <= r.period {
		return 0.0
	}
	rsi := talib.Rsi(closes, r.period)
	latest := rsi[len(rsi)-1]
	if math.IsNaN(latest) || math.IsInf(latest, 0) {
		return 0.0
	}

	sig := (50.0 - latest) / 50.0
	if sig < -1 {
		sig = -1
	} else if sig > 1 {
		sig = 1
	}
	sig = math.Round(sig*10000) / 10000
	metrics.SignalsTotal.WithLabelValues(r.Name(), metrics.Direction(sig)).Inc()
	return sig
}
