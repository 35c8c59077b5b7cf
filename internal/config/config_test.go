package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morandi-studio/internal/logger"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:   "morandi defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero",
			mutate:  func(c *Config) { *c = Config{} },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:    "negative width",
			mutate:  func(c *Config) { c.WindowWidth = -1 },
			wantErr: true,
		},
		{
			name:    "zero rotation interval",
			mutate:  func(c *Config) { c.GIFRotate = 0 },
			wantErr: true,
		},
		{
			name:    "zero GIF size",
			mutate:  func(c *Config) { c.GIFSize = 0 },
			wantErr: true,
		},
		{
			name:   "empty GIF paths are allowed",
			mutate: func(c *Config) { c.GIFPath, c.GIFDir = "", "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MorandiDefaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg, err := load(GlassDefaults(), env.Options{
		Prefix: GlassPrefix,
		Environment: map[string]string{
			"GLASS_LOG_LEVEL":     "debug",
			"GLASS_JSON_LOGS":     "true",
			"GLASS_GIF_DIR":       "/tmp/gifs",
			"GLASS_GIF_ROTATE":    "2s",
			"GLASS_WINDOW_HEIGHT": "900",
			"MORANDI_GIF_PATH":    "ignored.gif",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, logger.DebugLevel, cfg.Level())
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, "/tmp/gifs", cfg.GIFDir)
	assert.Equal(t, 2*time.Second, cfg.GIFRotate)
	assert.Equal(t, 900, cfg.WindowHeight)
	assert.Equal(t, GlassDefaults().WindowWidth, cfg.WindowWidth)
	assert.Equal(t, GlassDefaults().GIFPath, cfg.GIFPath)
}

func TestLoad_EmptyEnvironmentKeepsDefaults(t *testing.T) {
	cfg, err := load(MorandiDefaults(), env.Options{Prefix: MorandiPrefix, Environment: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, MorandiDefaults(), *cfg)
	assert.Equal(t, logger.InfoLevel, cfg.Level())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "malformed duration", vars: map[string]string{"MORANDI_GIF_ROTATE": "soon"}},
		{name: "malformed integer", vars: map[string]string{"MORANDI_WINDOW_WIDTH": "wide"}},
		{name: "invalid value", vars: map[string]string{"MORANDI_WINDOW_WIDTH": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(MorandiDefaults(), env.Options{Prefix: MorandiPrefix, Environment: tt.vars})
			assert.Error(t, err)
		})
	}
}
