// package main provides the entry point for the PoCForge Web service: the
// analysis API (REST + GraphQL) and the server-rendered web client in one
// process.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/Tsuesun/PoCForgeWeb/client"
	"github.com/Tsuesun/PoCForgeWeb/forge"
	"github.com/Tsuesun/PoCForgeWeb/internal/api"
	"github.com/Tsuesun/PoCForgeWeb/internal/config"
	"github.com/Tsuesun/PoCForgeWeb/util"
)

var logger = util.InitLogger()

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Sugar().Fatalf("Failed to load config: %v", err)
	}

	engine := forge.New(cfg.LookbackHours)
	if cfg.Fixtures != "" {
		if err := engine.LoadFixtures(cfg.Fixtures); err != nil {
			logger.Sugar().Fatalf("Failed to load fixtures: %v", err)
		}
		logger.Sugar().Infof("Loaded fixture catalog from %s", cfg.Fixtures)
	}

	orch := client.New(cfg.AnalyzeURL)

	app, err := api.NewFiberApp(cfg, engine, orch)
	if err != nil {
		logger.Sugar().Fatalf("Failed to create app: %v", err)
	}

	// Confirm the analyze endpoint is reachable once the listener is up.
	// With the default config this probes our own /api/v1/health.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		err := orch.WaitReady(ctx, func(err error, d time.Duration) {
			logger.Sugar().Infof("Analysis endpoint not ready, retrying in %s: %v", d, err)
		})
		if err != nil {
			logger.Sugar().Warnf("Analysis endpoint %s is unreachable: %v", cfg.AnalyzeURL, err)
			return
		}
		logger.Sugar().Infof("Analysis endpoint %s is ready", cfg.AnalyzeURL)
	}()

	logger.Sugar().Infof("Starting PoCForge Web on %s", cfg.Listen)
	if err := app.Listen(cfg.Listen); err != nil {
		logger.Sugar().Fatalf("Server stopped: %v", err)
	}
}
