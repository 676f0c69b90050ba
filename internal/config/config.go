// Package config loads the kyopro CLI settings from an optional YAML file.
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds settings shared by every subcommand. Command-line flags
// override whatever the file sets.
type Config struct {
	// LogLevel is a logrus level name (panic, fatal, error, warn, info,
	// debug, trace).
	LogLevel string `yaml:"log_level"`

	// JSONLog forces the JSON formatter even on a terminal.
	JSONLog bool `yaml:"json_log"`

	// OneIndexed shifts every vertex id read from input down by one.
	OneIndexed bool `yaml:"one_indexed"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
	}
}

// Load reads path and overlays it on Default. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: read %s", path)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parse %s", path)
	}

	return cfg, nil
}

// Decode reads one YAML document from r into cfg. Unknown keys and bad
// log levels are errors. An empty document leaves cfg untouched.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return cfg.Validate()
}

// Validate checks that LogLevel names a logrus level.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(strings.TrimSpace(c.LogLevel))
	if err != nil {
		return log.InfoLevel, errors.Wrap(err, "config: log_level")
	}

	return lvl, nil
}
