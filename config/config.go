// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpi/montecarlo"
)

// Environment variable names.
const (
	EnvPrecisionBits = "LVPI_PRECISION_BITS"
	EnvSeed          = "LVPI_SEED"
	EnvLogLevel      = "LVPI_LOG_LEVEL"
)

// Defaults.
const (
	DefaultPrecisionBits uint = 256
	DefaultLogLevel           = "warn"
)

// Sentinel errors of the config package.
var (
	// ErrUnknownFormat indicates a file extension that is neither TOML nor YAML.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid indicates a configuration that failed validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Format represents the configuration file format.
type Format int

const (
	// FormatTOML represents TOML format (default).
	FormatTOML Format = iota

	// FormatYAML represents YAML format.
	FormatYAML

	// FormatAuto detects the format from the file extension.
	FormatAuto
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds every tunable of the command line tools.
type Config struct {
	PrecisionBits uint   `toml:"precision_bits" yaml:"precision_bits"`
	Seed          int64  `toml:"seed" yaml:"seed"`
	LogLevel      string `toml:"log_level" yaml:"log_level"`
	Sweep         Sweep  `toml:"sweep" yaml:"sweep"`
}

// Sweep lists the parameter groups of a sweep run.
type Sweep struct {
	Groups []Group `toml:"groups" yaml:"groups"`
}

// Group is the cartesian product methods × precisions × counts.
type Group struct {
	Methods    []string `toml:"methods" yaml:"methods"`
	Precisions []uint   `toml:"precisions" yaml:"precisions"`
	Counts     []int    `toml:"counts" yaml:"counts"`
}

// Default returns the built-in configuration. Its sweep is a reduced
// version of the classic small experiment: the stochastic and quadrature
// methods at low widths with growing counts, and the series methods across
// widths.
func Default() Config {
	return Config{
		PrecisionBits: DefaultPrecisionBits,
		Seed:          montecarlo.DefaultSeed,
		LogLevel:      DefaultLogLevel,
		Sweep: Sweep{Groups: []Group{
			{
				Methods:    []string{"mc", "trap"},
				Precisions: []uint{64, 128, 256},
				Counts:     []int{10, 100, 1000, 10000},
			},
			{
				Methods:    []string{"atan", "atan2"},
				Precisions: []uint{64, 128, 256, 512, 1024},
				Counts:     []int{10, 100},
			},
		}},
	}
}

// Load reads path over Default, applies the environment and validates.
func Load(path string) (Config, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat is Load with an explicit format.
func LoadWithFormat(path string, format Format) (Config, error) {
	if format == FormatAuto {
		format = detectFormat(path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	// groups are replaced as a whole, never merged element-wise
	cfg := Default()
	cfg.Sweep.Groups = nil
	if err := decode(content, format, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Sweep.Groups == nil {
		cfg.Sweep.Groups = Default().Sweep.Groups
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	cfg.fillPrecisions()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// fillPrecisions gives every sweep group without precisions the single
// width PrecisionBits.
func (c *Config) fillPrecisions() {
	for i := range c.Sweep.Groups {
		if len(c.Sweep.Groups[i].Precisions) == 0 {
			c.Sweep.Groups[i].Precisions = []uint{c.PrecisionBits}
		}
	}
}

// FromEnv returns Default with the environment applied and validated.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from LVPI_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrecisionBits); ok {
		bits, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvPrecisionBits, v)
		}
		c.PrecisionBits = uint(bits)
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvSeed, v)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = strings.TrimSpace(v)
	}

	return nil
}

// Validate checks field ranges. Method names are checked by the consumer.
func (c Config) Validate() error {
	if c.PrecisionBits == 0 || c.PrecisionBits > big.MaxPrec {
		return fmt.Errorf("%w: precision_bits %d out of range", ErrInvalid, c.PrecisionBits)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	for i, g := range c.Sweep.Groups {
		if len(g.Methods) == 0 || len(g.Precisions) == 0 || len(g.Counts) == 0 {
			return fmt.Errorf("%w: sweep group %d is empty", ErrInvalid, i)
		}
		for _, p := range g.Precisions {
			if p == 0 || p > big.MaxPrec {
				return fmt.Errorf("%w: sweep group %d: precision %d", ErrInvalid, i, p)
			}
		}
		for _, n := range g.Counts {
			if n < 1 {
				return fmt.Errorf("%w: sweep group %d: count %d", ErrInvalid, i, n)
			}
		}
	}

	return nil
}

// Level returns the parsed log level; Validate guarantees it parses.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}

	return lvl
}

// detectFormat maps a file extension to a Format; TOML is the fallback.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatTOML
	}
}

// decode parses content into cfg, rejecting unknown keys.
func decode(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
