// Package config loads service configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Tsuesun/PoCForgeWeb/util"
	"gopkg.in/yaml.v2"
)

// Config holds the runtime settings for the service
type Config struct {
	Listen        string `yaml:"listen"`         // address the server binds to
	AnalyzeURL    string `yaml:"analyze_url"`    // base URL of the analysis endpoint the web client calls
	CORSOrigins   string `yaml:"cors_origins"`   // comma-separated allowed origins
	Fixtures      string `yaml:"fixtures"`       // optional path to a YAML fixture catalog
	LookbackHours int    `yaml:"lookback_hours"` // search window reported by the engine
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Listen:        ":8000",
		AnalyzeURL:    "http://localhost:8000",
		CORSOrigins:   "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173,http://127.0.0.1:3000",
		LookbackHours: 24,
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist, then applies environment overrides. The path itself
// may be overridden with POCFORGE_CONFIG.
func Load(path string) (*Config, error) {
	cfg := Default()

	path = util.GetEnvDefault("POCFORGE_CONFIG", path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg.Listen = util.GetEnvDefault("POCFORGE_LISTEN", cfg.Listen)
	cfg.AnalyzeURL = util.GetEnvDefault("POCFORGE_ANALYZE_URL", cfg.AnalyzeURL)
	cfg.CORSOrigins = util.GetEnvDefault("POCFORGE_CORS_ORIGINS", cfg.CORSOrigins)
	cfg.Fixtures = util.GetEnvDefault("POCFORGE_FIXTURES", cfg.Fixtures)
	if hours := util.GetEnvDefault("POCFORGE_LOOKBACK_HOURS", ""); hours != "" {
		parsed, err := strconv.Atoi(hours)
		if err != nil {
			return nil, fmt.Errorf("invalid POCFORGE_LOOKBACK_HOURS %q: %w", hours, err)
		}
		cfg.LookbackHours = parsed
	}

	return cfg, nil
}
