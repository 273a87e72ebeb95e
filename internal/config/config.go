// Package config loads the optional YAML settings file of the labo
// command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings that can be given in a config file. Command
// line flags override them.
type Config struct {
	// Typecheck enables static checking before execution.
	Typecheck bool `yaml:"typecheck"`

	// Color selects coloured diagnostics: auto, always or never.
	Color string `yaml:"color"`

	// ASTFormat is the format of AST dumps: text or json.
	ASTFormat string `yaml:"ast_format"`

	// Trace logs the duration of each phase to stderr.
	Trace bool `yaml:"trace"`

	// HistoryFile is the REPL history file. A relative path is taken
	// relative to the user's home directory; empty disables history.
	HistoryFile string `yaml:"history_file"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Typecheck:   true,
		Color:       "auto",
		ASTFormat:   "text",
		HistoryFile: ".labo_history",
	}
}

// Load reads a config file. Keys missing from the file keep their default
// values; unknown keys are an error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	conf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return conf, nil
}

// Decode reads YAML settings from r on top of the defaults.
func Decode(r io.Reader) (*Config, error) {
	conf := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q (want auto, always or never)", c.Color)
	}
	switch c.ASTFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid ast_format %q (want text or json)", c.ASTFormat)
	}
	return nil
}
