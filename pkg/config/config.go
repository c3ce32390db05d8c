// Package config loads keyscope settings from a TOML file.
//
// A missing file at the default location is not an error: [Default] values
// apply. Values present in the file override the defaults field by field.
//
//	[spectrogram]
//	fallback_width = 600
//	title = "Keyboard Acoustic Spectrogram"
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/keyscope/pkg/errors"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the full configuration.
type Config struct {
	Spectrogram Spectrogram `toml:"spectrogram"`
	Keyboard    Keyboard    `toml:"keyboard"`
	Output      Output      `toml:"output"`
	Cache       Cache       `toml:"cache"`
}

// Spectrogram configures the spectrogram renderer.
type Spectrogram struct {
	FallbackWidth float64 `toml:"fallback_width"`
	MaxHeight     float64 `toml:"max_height"`
	Aspect        float64 `toml:"aspect"`
	Title         string  `toml:"title"`
	FreqTicks     int     `toml:"freq_ticks"`
	TimeTicks     int     `toml:"time_ticks"`
	MaxHz         float64 `toml:"max_hz"`
}

// Keyboard configures the keyboard renderer.
type Keyboard struct {
	KeyUnit   float64 `toml:"key_unit"`
	Container string  `toml:"container"`
}

// Output configures the sinks.
type Output struct {
	Formats []string `toml:"formats"`
	Scale   float64  `toml:"scale"`
}

// Cache configures the artifact cache.
type Cache struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir,omitempty"`
	RedisURL string `toml:"redis_url,omitempty"`
	TTL      string `toml:"ttl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Spectrogram: Spectrogram{
			FallbackWidth: 600,
			MaxHeight:     400,
			Aspect:        0.6,
			Title:         "Keyboard Acoustic Spectrogram",
			FreqTicks:     8,
			TimeTicks:     6,
			MaxHz:         8000,
		},
		Keyboard: Keyboard{
			KeyUnit:   40,
			Container: "keyboardVisualization",
		},
		Output: Output{
			Formats: []string{"svg"},
			Scale:   2.0,
		},
		Cache: Cache{
			Backend: BackendFile,
			TTL:     "24h",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/keyscope/config.toml, falling back to
// ~/.config/keyscope/config.toml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "keyscope", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "keyscope", "config.toml"), nil
}

// Load reads the configuration at path over the defaults. An empty path
// means the default path, where a missing file is not an error; an
// explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeNotFound, err, "config %s", path)
		}
		return cfg, err
	}
	return Parse(data, cfg)
}

// Parse decodes TOML data over base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	md, err := toml.Decode(string(data), &base)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return base, base.Validate()
}

// Validate rejects values no renderer can use.
func (c Config) Validate() error {
	s := c.Spectrogram
	switch {
	case s.FallbackWidth <= 0:
		return invalid("spectrogram.fallback_width must be positive")
	case s.MaxHeight <= 0:
		return invalid("spectrogram.max_height must be positive")
	case s.Aspect <= 0:
		return invalid("spectrogram.aspect must be positive")
	case s.FreqTicks <= 0 || s.TimeTicks <= 0:
		return invalid("spectrogram tick counts must be positive")
	case s.MaxHz < 0:
		return invalid("spectrogram.max_hz must not be negative")
	case c.Keyboard.KeyUnit <= 0:
		return invalid("keyboard.key_unit must be positive")
	case c.Output.Scale <= 0:
		return invalid("output.scale must be positive")
	}
	if !slices.Contains([]string{BackendFile, BackendRedis, BackendNone}, c.Cache.Backend) {
		return invalid("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisURL == "" {
		return invalid("cache.redis_url is required for the redis backend")
	}
	if _, err := c.TTL(); err != nil {
		return invalid("cache.ttl: %v", err)
	}
	return nil
}

// TTL returns the parsed cache lifetime; an empty value means no expiry.
func (c Config) TTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Cache.TTL)
}

// Encode writes the configuration as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.Bytes(), nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}
