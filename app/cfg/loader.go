package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Input configuration
	DataFile     string `long:"data-file" env:"DATA_FILE" default:"data/parsed-feeds.json" description:"Path to the parsed feeds JSON dump"`
	RulesFile    string `long:"rules-file" env:"RULES_FILE" description:"YAML file with GUID resolution rules (replaces the built-in rule table)"`
	FeedCacheDir string `long:"feed-cache-dir" env:"FEED_CACHE_DIR" description:"Directory with locally cached publisher feed XML files (optional)"`

	// Output configuration
	NoMappings bool `long:"no-mappings" env:"NO_MAPPINGS" description:"Suppress the human-readable URL mapping section"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DataFile:     raw.DataFile,
		RulesFile:    raw.RulesFile,
		FeedCacheDir: raw.FeedCacheDir,
		NoMappings:   raw.NoMappings,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
