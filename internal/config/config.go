// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/validator.v2"
	"gopkg.in/yaml.v3"

	"dicgen/internal/cli"
)

// Config mirrors the CLI surface so a run can be described in a YAML file.
// All fields are optional; explicit command-line flags take precedence.
type Config struct {
	Alphabet   string `yaml:"alphabet"`
	Init       string `yaml:"init"`
	End        string `yaml:"end"`
	File       string `yaml:"file"`
	Prefix     string `yaml:"prefix"`
	Suffix     string `yaml:"suffix"`
	BufferSize int    `yaml:"buffer_size" validate:"min=0"`
}

// Load reads and strictly decodes a YAML run file: unknown keys and
// constraint violations are errors, an empty file is an empty Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := validator.Validate(&c); err != nil {
		return nil, fmt.Errorf("config: validate %s: %w", path, err)
	}
	return &c, nil
}

// Merge fills Options fields that were not set on the command line.
func Merge(o *cli.Options, c *Config) {
	if !o.Changed("alphabet") && c.Alphabet != "" {
		o.Alphabet = c.Alphabet
	}
	if !o.Changed("init") && c.Init != "" {
		o.Init = c.Init
	}
	if !o.Changed("end") && c.End != "" {
		o.End = c.End
	}
	if !o.Changed("file") && c.File != "" {
		o.File = c.File
	}
	if !o.Changed("prefix") && c.Prefix != "" {
		o.Prefix = c.Prefix
	}
	if !o.Changed("suffix") && c.Suffix != "" {
		o.Suffix = c.Suffix
	}
	if !o.Changed("buffer") && c.BufferSize != 0 {
		o.Buffer = c.BufferSize
	}
}
