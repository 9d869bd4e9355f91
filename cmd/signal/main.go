package main

import (
	"flag"
	"os"

	"pathsig-go/internal/agent"
	"pathsig-go/internal/config"
	"pathsig-go/internal/engine"
	"pathsig-go/internal/market"
	"pathsig-go/internal/metrics"
	"pathsig-go/internal/util"
)

func main() {
	configPath := flag.String("config", "internal/config/config.yaml", "path to YAML configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot := util.NewLogger("info")
		boot.Fatal().Err(err).Msg("load config")
	}
	log := util.NewLogger(cfg.App.LogLevel)

	if cfg.App.MetricsAddr != "" {
		_ = metrics.Serve(cfg.App.MetricsAddr)
		log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")
	}

	candles, err := market.LoadCSV(cfg.Data.CSVPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load candles")
	}
	log.Info().Str("symbol", cfg.Data.Symbol).Int("candles", len(candles)).Msg("history loaded")

	eng := engine.New(cfg.Engine, log)
	ag := agent.Build(cfg.Agent.Mode, agent.Deps{Engine: eng, RSIPeriod: cfg.Agent.RSIPeriod})
	log.Info().Str("agent", ag.Name()).Msg("walk-forward replay started")

	// Walk forward: evaluate the agent on each growing prefix of history,
	// the way the live system would see candles arrive.
	start := cfg.Engine.LookbackWindow
	if start <= 0 {
		start = engine.DefaultConfig().LookbackWindow
	}
	if start > len(candles) {
		log.Warn().Int("needed", start).Msg("not enough candles for one evaluation")
		os.Exit(1)
	}

	for i := start; i <= len(candles); i++ {
		sig := ag.Strategy(candles[:i])
		log.Info().
			Str("symbol", cfg.Data.Symbol).
			Int("bar", i-1).
			Float64("close", candles[i-1].Close).
			Float64("signal", sig).
			Msg("signal")
	}
	log.Info().Msg("replay finished")
}
