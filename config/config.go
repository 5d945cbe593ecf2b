// Package config loads the YAML run configuration used by the climb CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/climb/evolve"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level configuration file.
type Config struct {
	// Seed for the engine's random source. 0 lets the CLI pick one and log it.
	Seed int64 `yaml:"seed"`

	Search  SearchConfig  `yaml:"search"`
	Phrase  PhraseConfig  `yaml:"phrase"`
	OneMax  OneMaxConfig  `yaml:"onemax"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig mirrors evolve.Config.
type SearchConfig struct {
	Verbose        bool   `yaml:"verbose"`
	MaxIterations  int    `yaml:"max_iterations"` // 0 = unbounded
	TimeLimit      string `yaml:"time_limit"`     // e.g. "30s"; empty = none
	ValidateScores bool   `yaml:"validate_scores"`
}

// PhraseConfig configures the string guesser.
type PhraseConfig struct {
	Target string `yaml:"target"`
	Genes  string `yaml:"genes"` // empty = phrase.DefaultGenes
}

// OneMaxConfig configures the bit-vector maximizer.
type OneMaxConfig struct {
	Size int `yaml:"size"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Phrase: PhraseConfig{
			Target: "Hello, world!",
		},
		OneMax: OneMaxConfig{
			Size: 10000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field ranges and parses duration and level strings.
func (c *Config) Validate() error {
	if c.Search.MaxIterations < 0 {
		return fmt.Errorf("%w: search.max_iterations cannot be negative (%d)", ErrInvalid, c.Search.MaxIterations)
	}
	if _, err := c.timeLimit(); err != nil {
		return err
	}
	if c.OneMax.Size <= 0 {
		return fmt.Errorf("%w: onemax.size must be positive (%d)", ErrInvalid, c.OneMax.Size)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// EngineConfig converts the search section to an evolve.Config.
func (c *Config) EngineConfig() (evolve.Config, error) {
	tl, err := c.timeLimit()
	if err != nil {
		return evolve.Config{}, err
	}

	return evolve.Config{
		Verbose:        c.Search.Verbose,
		MaxIterations:  c.Search.MaxIterations,
		TimeLimit:      tl,
		ValidateScores: c.Search.ValidateScores,
	}, nil
}

// LogLevel parses logging.level; empty means info.
func (c *Config) LogLevel() (zapcore.Level, error) {
	if c.Logging.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}

	return lvl, nil
}

func (c *Config) timeLimit() (time.Duration, error) {
	if c.Search.TimeLimit == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Search.TimeLimit)
	if err != nil {
		return 0, fmt.Errorf("%w: search.time_limit: %v", ErrInvalid, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: search.time_limit cannot be negative (%v)", ErrInvalid, d)
	}

	return d, nil
}
