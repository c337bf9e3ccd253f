package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = "aoc.yaml"

const envPrefix = "AOC_"

// Format selects how answers and reports are printed.
type Format string

const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPlain, FormatTable:
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q, expected plain or table", s)
}

// Config holds the settings shared by every command.
type Config struct {
	// Input is the input file path template; see Runner.InputPath.
	Input   string        `koanf:"input"`
	Trace   bool          `koanf:"trace"`
	Timeout time.Duration `koanf:"timeout"`
	Format  string        `koanf:"format"`
	Jobs    int           `koanf:"jobs"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

func defaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"input":   DefaultInputPath,
		"trace":   false,
		"timeout": "0s",
		"format":  string(FormatPlain),
		"jobs":    runtime.GOMAXPROCS(0),
	}
}

// LoadConfig layers, from lowest to highest precedence: defaults, the config
// file, AOC_* environment variables, and flags explicitly set in flags.
// An explicitly named cfgFile must exist; the default one is optional.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultConfig(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// AOC_INPUT -> input
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Input == "" {
		errs = append(errs, errors.New("input path must not be empty"))
	}
	if cfg.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout %v must not be negative", cfg.Timeout))
	}
	if _, err := ParseFormat(cfg.Format); err != nil {
		errs = append(errs, err)
	}
	if cfg.Jobs < 1 {
		errs = append(errs, fmt.Errorf("jobs %d must be at least 1", cfg.Jobs))
	}
	return errors.Join(errs...)
}

// RunnerOptions translates the config into Runner options; logfn receives
// trace output when tracing is enabled.
func (cfg *Config) RunnerOptions(logfn func(mess string, args ...interface{})) []RunnerOption {
	format, _ := ParseFormat(cfg.Format)
	opts := []RunnerOption{
		WithInputPath(cfg.Input),
		WithFormat(format),
	}
	if cfg.Trace {
		opts = append(opts, WithLogf(logfn))
	}
	return opts
}
