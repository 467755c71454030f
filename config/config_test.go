package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 100, cfg.Prover.MaxSteps)
	assert.Equal(t, 30*time.Second, cfg.Prover.Timeout)
	assert.Empty(t, cfg.Prover.Rules)
	assert.False(t, cfg.Prover.Introduction)
	assert.True(t, cfg.Prover.Refute)
	assert.False(t, cfg.Parser.Strict)
	assert.Equal(t, 256, cfg.Parser.CacheSize)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "no search",
			modify:  func(c *Config) { c.Prover.MaxSteps = 0 },
			wantErr: false,
		},
		{
			name:    "negative max steps",
			modify:  func(c *Config) { c.Prover.MaxSteps = -1 },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.Prover.Timeout = -time.Second },
			wantErr: true,
		},
		{
			name: "rules and introduction",
			modify: func(c *Config) {
				c.Prover.Rules = []string{"ModusPonens"}
				c.Prover.Introduction = true
			},
			wantErr: true,
		},
		{
			name:    "empty cache",
			modify:  func(c *Config) { c.Parser.CacheSize = 0 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
prover:
  max_steps: 20
  timeout: 5s
  rules:
    - ModusPonens
    - Simplification
parser:
  strict: true
log:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Prover.MaxSteps)
	assert.Equal(t, 5*time.Second, cfg.Prover.Timeout)
	assert.Equal(t, []string{"ModusPonens", "Simplification"}, cfg.Prover.Rules)
	assert.True(t, cfg.Prover.Refute, "unset fields keep their default")
	assert.True(t, cfg.Parser.Strict)
	assert.Equal(t, 256, cfg.Parser.CacheSize)
	level, err := cfg.Log.ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("prover: [not, a, map]"), 0644))
	_, err = LoadFromFile(configPath)
	assert.Error(t, err)
}
