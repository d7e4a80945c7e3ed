// Package config defines the toml configuration for pairsum.
//
// See [Config] for the format of the file itself. Every field is optional;
// an empty file (or a missing one, see [Read]) describes reading text
// integers from stdin and printing to stdout.
package config

import (
	"bytes"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type Format string

const (
	// Whitespace-separated decimal integers.
	Text Format = "text"
	// 8-byte little-endian records.
	Binary Format = "binary"
)

// Config defines the format of the toml file.
type Config struct {
	Input  Input  `toml:"input"`
	Output Output `toml:"output"`
}

type Input struct {
	// Encoding of the input. Defaults to "text".
	Format Format `toml:"format"`
	// File to read. Empty or "-" means stdin.
	Path string `toml:"path"`
	// Fixed integers to read instead of any file. Takes precedence over
	// Path when non-empty.
	Values []int `toml:"values"`
}

type Output struct {
	// File to write the result to. Empty means stdout.
	Path string `toml:"path"`
	// Disable colored diagnostics.
	NoColor bool `toml:"no_color"`
}

// Validate fills in defaults and rejects unknown settings.
func (c *Config) Validate() error {
	switch c.Input.Format {
	case "":
		c.Input.Format = Text
	case Text, Binary:
	default:
		return errors.Errorf("unknown input format %q (want %q or %q)",
			c.Input.Format, Text, Binary)
	}
	return nil
}

// Parse decodes raw toml. Keys not defined by [Config] are an error.
func Parse(raw []byte) (c Config, err error) {
	d := toml.NewDecoder(bytes.NewReader(raw))
	d.DisallowUnknownFields()
	if err = d.Decode(&c); err != nil {
		return Config{}, err
	}
	err = c.Validate()
	return
}

// Read reads and parses the config file at path.
//
// A missing file is treated as an empty one.
func Read(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		contents = []byte{}
	} else if err != nil {
		return Config{}, errors.Wrapf(err, "config file %s could not be read", path)
	}
	c, err := Parse(contents)
	if err != nil {
		return Config{}, errors.Errorf("could not parse config %s:\n%v", path, err)
	}
	return c, nil
}
