// Package config carries the one explicit configuration value the rest
// of the tool consumes. It is resolved once in the command shell from
// defaults, an optional .spellcast.yaml file and flags, in that order;
// nothing reads configuration ambiently.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColorMode controls when the renderers emit ANSI escape sequences.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto" // color only when stdout is a terminal
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Output mode names.
const (
	ModeList      = "list"
	ModeAugmented = "augmented"
)

// Config is the resolved tool configuration.
type Config struct {
	Backend     string   // aspell, languagetool or wordlist
	Command     string   // override for the checker binary
	BackendArgs []string // passed through to the checker verbatim
	OutputMode  string   // list or augmented
	Color       ColorMode
	Width       int    // visible column budget for suggestion wrapping
	Wordlist    string // word list path for the in-process backend
	ExitCode    bool   // exit non-zero when mistakes were found
}

// Default returns the configuration used when neither the file nor
// flags override anything.
func Default() Config {
	return Config{
		Backend:    "aspell",
		OutputMode: ModeAugmented,
		Color:      ColorAuto,
		Width:      80,
	}
}

// fileConfig mirrors the optional .spellcast.yaml.
type fileConfig struct {
	Backend    string `yaml:"backend"`
	Command    string `yaml:"command"`
	OutputMode string `yaml:"output_mode"`
	Color      string `yaml:"color"`
	Width      int    `yaml:"width"`
	Wordlist   string `yaml:"wordlist"`
}

// LoadFile merges the YAML file at path over c. A missing file is not an
// error; a malformed one is.
func LoadFile(path string, c *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var f fileConfig
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if f.Backend != "" {
		c.Backend = f.Backend
	}
	if f.Command != "" {
		c.Command = f.Command
	}
	if f.OutputMode != "" {
		c.OutputMode = f.OutputMode
	}
	if f.Color != "" {
		c.Color = ColorMode(f.Color)
	}
	if f.Width > 0 {
		c.Width = f.Width
	}
	if f.Wordlist != "" {
		c.Wordlist = f.Wordlist
	}
	return nil
}

// Validate rejects values outside the closed enumerations.
func (c *Config) Validate() error {
	switch c.OutputMode {
	case ModeList, ModeAugmented:
	default:
		return fmt.Errorf("unknown output mode %q (want %s or %s)", c.OutputMode, ModeList, ModeAugmented)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}
