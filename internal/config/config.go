// Package config loads default settings for contrastfix.
//
// Settings are layered: built-in defaults, then the YAML config file, then
// CONTRASTFIX_* environment variables. Command-line flags are applied last
// by the cli package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/contrastfix/internal/contrast"
)

// Environment variables read by ApplyEnv.
const (
	EnvTarget   = "CONTRASTFIX_TARGET"
	EnvLock     = "CONTRASTFIX_LOCK"
	EnvFormat   = "CONTRASTFIX_FORMAT"
	EnvPreview  = "CONTRASTFIX_PREVIEW"
	EnvLogLevel = "CONTRASTFIX_LOG_LEVEL"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Target is a contrast ratio that can be written in YAML as a number or as
// a WCAG level name (aa-large, aa, aaa).
type Target float64

// UnmarshalYAML accepts either a number or a level name.
func (t *Target) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	ratio, err := contrast.ParseTarget(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = Target(ratio)
	return nil
}

// Config holds the defaults used by every command.
type Config struct {
	Target   Target `yaml:"target"`
	Lock     string `yaml:"lock"`
	Format   string `yaml:"format"`
	Preview  bool   `yaml:"preview"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Target:   Target(contrast.RankingThreshold),
		Lock:     "none",
		Format:   FormatTable,
		Preview:  false,
		LogLevel: "warn",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/contrastfix/config.yaml (or the
// platform equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "contrastfix", "config.yaml")
}

// Load builds a Config from defaults, the file at path and the environment.
// An empty path falls back to DefaultPath, which may be absent; an explicit
// path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// No config file is fine.
		default:
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables returned by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTarget); ok && v != "" {
		ratio, err := contrast.ParseTarget(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTarget, err)
		}
		c.Target = Target(ratio)
	}
	if v, ok := lookup(EnvLock); ok && v != "" {
		c.Lock = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvPreview); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPreview, err)
		}
		c.Preview = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if err := contrast.ValidateTarget(float64(c.Target)); err != nil {
		return err
	}
	if _, err := contrast.ParseLock(c.Lock); err != nil {
		return err
	}
	switch c.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("unsupported format: %s (supported: %s, %s)", c.Format, FormatTable, FormatJSON)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	return nil
}

// LockValue returns the parsed lock. Call after Validate.
func (c Config) LockValue() contrast.Lock {
	lock, _ := contrast.ParseLock(c.Lock)
	return lock
}

// Level returns the configured log level.
func (c Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}
