package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lander.yaml")
	body := "gravity: 1.62\nfuelMass: 1000\nsparkLifetime: 2.5\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1.62, cfg.Gravity)
	assert.Equal(t, 1000.0, cfg.FuelMass)
	assert.Equal(t, 2.5, cfg.SparkLifetime)
	// Everything not named keeps its default.
	assert.Equal(t, 5000.0, cfg.EmptyMass)
	assert.Equal(t, 30, cfg.TickRate)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tickRate: -5\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick rate")
}

func TestValidateRejectsBadConstants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero screen", func(c *Config) { c.ScreenWidth = 0 }},
		{"negative gravity", func(c *Config) { c.Gravity = -1 }},
		{"zero empty mass", func(c *Config) { c.EmptyMass = 0 }},
		{"negative fuel", func(c *Config) { c.FuelMass = -1 }},
		{"zero burn rate", func(c *Config) { c.MaxBurnRate = 0 }},
		{"throttle step above one", func(c *Config) { c.ThrottleStep = 1.5 }},
		{"zero spark lifetime", func(c *Config) { c.SparkLifetime = 0 }},
		{"negative max dt", func(c *Config) { c.MaxDeltaTime = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
