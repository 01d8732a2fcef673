// Package config loads the lrtrack CLI settings from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
)

const (
	FormatLRB  = "lrb"
	FormatJSON = "json"

	OutputTable = "table"
	OutputYAML  = "yaml"
)

var (
	Formats = []string{FormatLRB, FormatJSON}
	Outputs = []string{OutputTable, OutputYAML}
)

type Logging struct {
	Level     string `toml:"level"`
	Colors    bool   `toml:"colors"`
	Timestamp bool   `toml:"timestamp"`
}

type Convert struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

type Inspect struct {
	Output string `toml:"output"`
}

type LRB struct {
	FormatVersion uint8 `toml:"format_version"`
}

type Config struct {
	Logging Logging `toml:"logging"`
	Convert Convert `toml:"convert"`
	Inspect Inspect `toml:"inspect"`
	LRB     LRB     `toml:"lrb"`
}

func Default() Config {
	return Config{
		Logging: Logging{
			Level:     "warn",
			Colors:    true,
			Timestamp: true,
		},
		Convert: Convert{
			From: FormatJSON,
			To:   FormatLRB,
		},
		Inspect: Inspect{
			Output: OutputTable,
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file leaves
// the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("open config: %w", err)
		default:
			defer file.Close()
			decoder := toml.NewDecoder(file)
			decoder.DisallowUnknownFields()
			if err := decoder.Decode(&cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if !slices.Contains(Formats, c.Convert.From) {
		return fmt.Errorf("convert.from: unknown format %q", c.Convert.From)
	}
	if !slices.Contains(Formats, c.Convert.To) {
		return fmt.Errorf("convert.to: unknown format %q", c.Convert.To)
	}
	if !slices.Contains(Outputs, c.Inspect.Output) {
		return fmt.Errorf("inspect.output: unknown output %q", c.Inspect.Output)
	}
	return nil
}

// LogLevel is the parsed logging level; Validate guarantees it parses
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// Encode renders c as TOML
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
