package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server configuration
	Port string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`

	// Upstream fetch configuration
	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"feedgate/1.0" description:"User agent string for upstream feed requests"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"15" description:"Upstream fetch timeout in seconds"`
	CacheTTL     int    `long:"cache-ttl" env:"CACHE_TTL" default:"300" description:"Feed response cache TTL in seconds"`

	// Display heuristics configuration
	SourcesFile string `long:"sources-file" env:"SOURCES_FILE" description:"Path to source profiles YAML file (optional, built-in defaults apply when unset)"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
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
		Port:         raw.Port,
		UserAgent:    raw.UserAgent,
		FetchTimeout: raw.FetchTimeout,
		CacheTTL:     raw.CacheTTL,
		SourcesFile:  raw.SourcesFile,
		Timezone:     raw.Timezone,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	if cfg.FetchTimeout <= 0 {
		return nil, fmt.Errorf("fetch timeout must be positive, got %d", cfg.FetchTimeout)
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("cache TTL must be non-negative, got %d", cfg.CacheTTL)
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
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

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
