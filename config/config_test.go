package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, -1, cfg.Money)
				assert.True(t, cfg.KeepMoney)
				assert.False(t, cfg.Watch)
				assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
				assert.Equal(t, FormatText, cfg.LogFormat)
			},
		},
		{
			name: "debug_implies_watch",
			args: []string{"-debug"},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Debug)
				assert.True(t, cfg.Watch)
			},
		},
		{
			name: "flags",
			args: []string{"-money", "50", "-keep-money=false", "-report", "-log-level", "debug", "-log-format", "JSON"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 50, cfg.Money)
				assert.False(t, cfg.KeepMoney)
				assert.True(t, cfg.Report)
				assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
				assert.Equal(t, FormatJSON, cfg.LogFormat)
			},
		},
		{
			name: "env_fallback",
			env:  map[string]string{"PORTRAIT_LOG_LEVEL": "warn", "PORTRAIT_LOG_FORMAT": "json"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
				assert.Equal(t, FormatJSON, cfg.LogFormat)
			},
		},
		{
			name: "flag_beats_env",
			args: []string{"-log-level", "error"},
			env:  map[string]string{"PORTRAIT_LOG_LEVEL": "debug"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, slog.LevelError, cfg.LogLevel)
			},
		},
		{name: "bad_level", args: []string{"-log-level", "loud"}, wantErr: true},
		{name: "bad_format", args: []string{"-log-format", "xml"}, wantErr: true},
		{name: "unknown_flag", args: []string{"-fly"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			getenv := func(k string) string { return tc.env[k] }
			cfg, err := Parse("portraitquest", tc.args, getenv)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}
