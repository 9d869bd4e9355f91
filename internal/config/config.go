// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pathsig-go/internal/engine"
)

// App captures process-wide runtime settings.
type App struct {
	Name        string `yaml:"name"`
	Env         string `yaml:"env"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Data describes where candle history is read from.
type Data struct {
	Symbol  string `yaml:"symbol"`
	CSVPath string `yaml:"csv_path"`
}

// Agent selects which agent implementation runs and its indicator knobs.
type Agent struct {
	Mode      string `yaml:"mode"`
	RSIPeriod int    `yaml:"rsi_period"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App    App           `yaml:"app"`
	Data   Data          `yaml:"data"`
	Agent  Agent         `yaml:"agent"`
	Engine engine.Config `yaml:"engine"`
}

// Load reads a YAML file from disk and hydrates a Config struct.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
