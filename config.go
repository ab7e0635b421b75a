package simcom

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marionauta/simple-compiler/compiler/gen"
)

// Config carries the output options for a compilation run. The zero value
// is not usable directly; build one with NewConfig or LoadConfig.
type Config struct {
	// Indent is the indentation for struct fields.
	Indent string `yaml:"indent"`
	// Guard, when set, is the output file name an include-guard macro is
	// derived from.
	Guard string `yaml:"guard"`
	// Banner, when set, is emitted as a leading comment line.
	Banner string `yaml:"banner"`
}

// Option configures a compilation run.
type Option func(*Config) error

// WithIndent sets the indentation for struct fields.
func WithIndent(indent string) Option {
	return func(c *Config) error {
		if indent == "" {
			return NewConfigError("Indent", indent, "indent cannot be empty")
		}
		c.Indent = indent
		return nil
	}
}

// WithHeaderGuard wraps the output in an include guard derived from the
// given output file name.
func WithHeaderGuard(filename string) Option {
	return func(c *Config) error {
		if filename == "" {
			return NewConfigError("Guard", filename, "file name cannot be empty")
		}
		c.Guard = filename
		return nil
	}
}

// WithBanner adds a leading comment line to the output.
func WithBanner(banner string) Option {
	return func(c *Config) error {
		c.Banner = banner
		return nil
	}
}

// NewConfig builds a config from defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Indent: gen.DefaultIndent}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadConfig reads a project config file in YAML form. A missing file is
// not an error; the defaults apply.
func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{Indent: gen.DefaultIndent}, nil
	}
	if err != nil {
		return nil, err
	}
	c := &Config{Indent: gen.DefaultIndent}
	if err := yaml.Unmarshal(buf, c); err != nil {
		return nil, fmt.Errorf("simcom: read config %s: %w", path, err)
	}
	if c.Indent == "" {
		c.Indent = gen.DefaultIndent
	}
	return c, nil
}

// Options converts the config back into compile options, so a loaded
// project file and flag-driven options compose the same way.
func (c *Config) Options() []Option {
	opts := []Option{WithIndent(c.Indent)}
	if c.Guard != "" {
		opts = append(opts, WithHeaderGuard(c.Guard))
	}
	if c.Banner != "" {
		opts = append(opts, WithBanner(c.Banner))
	}
	return opts
}
