package main

import (
	"log/slog"
	"os"

	"github.com/doerfelverse/publisher-comb/app/catalog"
	"github.com/doerfelverse/publisher-comb/app/cfg"
	"github.com/doerfelverse/publisher-comb/app/publisher"
	"github.com/doerfelverse/publisher-comb/app/report"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	slog.Debug("Starting publisher extraction", "version", appCfg.Version, "data_file", appCfg.DataFile)

	doc, err := catalog.Load(appCfg.DataFile)
	if err != nil {
		slog.Error("Failed to load feed data", "error", err)
		os.Exit(1)
	}

	ruleset := publisher.DefaultRuleset()
	if appCfg.RulesFile != "" {
		ruleset, err = publisher.LoadRuleset(appCfg.RulesFile)
		if err != nil {
			slog.Error("Failed to load GUID rules", "error", err)
			os.Exit(1)
		}
	}

	reconciler := publisher.NewReconciler(ruleset)
	result := reconciler.Run(doc.Feeds)

	if appCfg.FeedCacheDir != "" {
		enricher := publisher.NewEnricher(appCfg.FeedCacheDir)
		if err := enricher.Run(result); err != nil {
			slog.Error("Failed to enrich from feed cache", "error", err)
			os.Exit(1)
		}
	}

	var mappings map[string]publisher.Mapping
	if !appCfg.NoMappings {
		mappings = publisher.NewMapper().Run(result)
	}

	// Logs go to stderr, the report itself to stdout
	writer := report.NewWriter(os.Stdout)
	writer.Run(result, mappings)
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
