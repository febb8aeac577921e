// Package config holds the settings of the ll1 command line and its
// interactive session, loaded from a TOML or YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/ll1/format"
)

// Format is the encoding of a configuration file.
type Format int

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks a format from the extension of path.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatUnknown
}

type Config struct {
	// Prompt is printed before each line read by the interactive session.
	Prompt string `toml:"prompt" yaml:"prompt"`
	// ExitKeyword ends the session. It is compared case-insensitively.
	ExitKeyword string `toml:"exit_keyword" yaml:"exit_keyword"`
	// Trace prints the stack/input/action table of every parse.
	Trace bool `toml:"trace" yaml:"trace"`
	Color bool `toml:"color" yaml:"color"`
	// Format names the tree encoder, see format.Names.
	Format      string `toml:"format" yaml:"format"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	// LogVerbosity is passed to commonlog.Configure; 0 logs errors only.
	LogVerbosity int    `toml:"log_verbosity" yaml:"log_verbosity"`
	LogFile      string `toml:"log_file" yaml:"log_file"`
}

func Default() *Config {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".ll1_history")
	}
	return &Config{
		Prompt:      "> ",
		ExitKeyword: "exit",
		Trace:       true,
		Color:       true,
		Format:      "tree",
		HistoryFile: history,
	}
}

// Load reads the file at path over Default. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := cfg.decode(data, DetectFormat(path)); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte, f Format) error {
	switch f {
	case FormatTOML:
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(c)
		return err
	case FormatYAML:
		err := yaml.NewDecoder(bytes.NewReader(data)).Decode(c)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return errors.New("unsupported file extension, want .toml, .yaml or .yml")
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ExitKeyword) == "" {
		return errors.New("exit_keyword must not be empty")
	}
	if !format.Valid(c.Format) {
		return fmt.Errorf("unknown format %q (available: %v)", c.Format, format.Names())
	}
	if c.LogVerbosity < 0 {
		return fmt.Errorf("log_verbosity must not be negative, got %d", c.LogVerbosity)
	}
	return nil
}
