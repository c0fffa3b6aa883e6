package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Config is everything the front ends read from the command line and the
// environment. Gameplay tuning lives in prefabs/, not here.
type Config struct {
	Debug       bool
	BaseMonitor bool
	Money       int
	KeepMoney   bool
	Watch       bool
	Report      bool
	LogLevel    slog.Level
	LogFormat   string
	LogFile     string
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Load parses os.Args with environment fallbacks.
func Load(name string) (*Config, error) {
	return Parse(name, os.Args[1:], os.Getenv)
}

// Parse reads args into a Config. Log settings fall back to
// PORTRAIT_LOG_LEVEL and PORTRAIT_LOG_FORMAT when the flags are not given.
func Parse(name string, args []string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	cfg := &Config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.BoolVar(&cfg.Debug, "debug", false, "enable door markers, door editing and prefab hot reload")
	fs.BoolVar(&cfg.BaseMonitor, "m", false, "use base monitor instead of primary (for multi-monitor setups)")
	fs.IntVar(&cfg.Money, "money", -1, "starting money (negative uses prefabs/shops.yaml)")
	fs.BoolVar(&cfg.KeepMoney, "keep-money", true, "keep the remaining money when restarting after an ending")
	fs.BoolVar(&cfg.Watch, "watch", false, "reload prefabs when files under prefabs/ change (implied by -debug)")
	fs.BoolVar(&cfg.Report, "report", false, "print the perfect-ending feasibility report and exit")
	level := fs.String("log-level", getEnv(getenv, "PORTRAIT_LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", getEnv(getenv, "PORTRAIT_LOG_FORMAT", FormatText), "text or json")
	fs.StringVar(&cfg.LogFile, "log-file", "", "write logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	lvl, err := parseLogLevel(*level)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = lvl

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != FormatText && cfg.LogFormat != FormatJSON {
		return nil, fmt.Errorf("config: unknown log format %q", cfg.LogFormat)
	}
	if cfg.Debug {
		cfg.Watch = true
	}
	return cfg, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", level)
}

func getEnv(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}
