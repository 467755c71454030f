// Package config provides configuration loading for the dcec prover.
package config

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration
type Config struct {
	Prover ProverConfig `yaml:"prover"`
	Parser ParserConfig `yaml:"parser"`
	Log    LogConfig    `yaml:"log"`
}

// ProverConfig configures proof search
type ProverConfig struct {
	// MaxSteps is the maximum number of search rounds (default: 100)
	MaxSteps int `yaml:"max_steps"`
	// Timeout is the wall-clock limit of a whole proof attempt (0 = none)
	Timeout time.Duration `yaml:"timeout"`
	// Rules lists the names of the rules to use, in order (empty = default rules)
	Rules []string `yaml:"rules"`
	// Introduction adds the unrestricted introduction rules to the default rules
	Introduction bool `yaml:"introduction"`
	// Refute enables the propositional disproof check on inconclusive searches
	Refute bool `yaml:"refute"`
}

// ParserConfig configures the formula builder
type ParserConfig struct {
	// Strict makes unknown symbols an error instead of declaring them
	Strict bool `yaml:"strict"`
	// CacheSize is the number of parsed formulas remembered (default: 256)
	CacheSize int `yaml:"cache_size"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: warn)
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Prover: ProverConfig{
			MaxSteps: 100,
			Timeout:  30 * time.Second,
			Refute:   true,
		},
		Parser: ParserConfig{
			CacheSize: 256,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Prover.MaxSteps < 0 {
		return fmt.Errorf("prover.max_steps must not be negative")
	}
	if c.Prover.Timeout < 0 {
		return fmt.Errorf("prover.timeout must not be negative")
	}
	if len(c.Prover.Rules) > 0 && c.Prover.Introduction {
		return fmt.Errorf("prover.introduction cannot be combined with an explicit prover.rules list")
	}
	if c.Parser.CacheSize <= 0 {
		return fmt.Errorf("parser.cache_size must be positive")
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	return nil
}

// ZapLevel returns the configured log level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return level, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
