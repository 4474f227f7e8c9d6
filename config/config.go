// Package config loads tally's YAML configuration.
//
// A missing file is not an error: Load falls back to Default. Unknown keys
// are rejected so typos surface early.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/tally/desk"
	"github.com/on-the-ground/tally/memo"
)

// CurrentVersion is the config schema version this build understands.
const CurrentVersion = 1

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

const defaultConfigYAML = `# tally configuration
version: 1

log:
  level: info

# Memo cache used by forecasts. policy: unbounded | lru | generational.
# capacity is required for bounded policies. scale is the fixed-point
# multiplier for cache keys (1000000 = micro-unit granularity).
cache:
  policy: unbounded
  capacity: 0
  scale: 1000000

desk:
  workers: 4
  buffer_size: 16
`

// LogConfig captures logging preferences.
type LogConfig struct {
	Level string `yaml:"level"`
}

// CacheConfig mirrors memo.Options.
type CacheConfig struct {
	Policy   string  `yaml:"policy"`
	Capacity int     `yaml:"capacity"`
	Scale    float64 `yaml:"scale"`
}

// DeskConfig mirrors desk.Options.
type DeskConfig struct {
	Workers    int `yaml:"workers"`
	BufferSize int `yaml:"buffer_size"`
}

// Config models the configuration file.
type Config struct {
	Version int         `yaml:"version"`
	Log     LogConfig   `yaml:"log"`
	Cache   CacheConfig `yaml:"cache"`
	Desk    DeskConfig  `yaml:"desk"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg, err := Parse([]byte(defaultConfigYAML))
	if err != nil {
		panic(fmt.Sprintf("config: default configuration does not parse: %v", err))
	}
	return cfg
}

// DefaultYAML returns the commented default configuration file.
func DefaultYAML() string {
	return defaultConfigYAML
}

// Parse decodes data over the defaults and validates the result. Keys
// omitted from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := builtin()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field against the component that consumes it.
func (c Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: %s %d is not supported", ErrInvalid, KeyVersion, c.Version)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, KeyLogLevel, err)
	}
	if _, err := c.MemoOptions(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, KeyCachePrefix, err)
	}
	if _, err := c.DeskOptions(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, KeyDeskPrefix, err)
	}
	return nil
}

// MemoOptions converts the cache section.
func (c Config) MemoOptions() (memo.Options, error) {
	policy, err := memo.ParsePolicy(c.Cache.Policy)
	if err != nil {
		return memo.Options{}, err
	}
	opts := memo.Options{
		Policy:   policy,
		Capacity: c.Cache.Capacity,
		Scale:    c.Cache.Scale,
	}
	return opts, opts.Validate()
}

// DeskOptions converts the desk section, with the cache section applied to
// every worker cache.
func (c Config) DeskOptions() (desk.Options, error) {
	cacheOpts, err := c.MemoOptions()
	if err != nil {
		return desk.Options{}, err
	}
	opts := desk.Options{
		Workers:    c.Desk.Workers,
		BufferSize: c.Desk.BufferSize,
		Cache:      cacheOpts,
	}
	return opts, opts.Validate()
}

func builtin() Config {
	return Config{
		Version: CurrentVersion,
		Log:     LogConfig{Level: "info"},
		Cache: CacheConfig{
			Policy: memo.Unbounded.String(),
			Scale:  memo.DefaultScale,
		},
		Desk: DeskConfig{Workers: 4, BufferSize: 16},
	}
}
