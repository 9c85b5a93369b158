package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"life-cycles/internal/report"
	"life-cycles/internal/search"
)

// EnvPrefix prefixes environment overrides, e.g. CYCLES_WIDTH.
const EnvPrefix = "CYCLES"

// Config represents the command-line parameters for the application.
type Config struct {
	Width            int
	Height           int
	Workers          int
	MaxSteps         int
	Format           string
	LogLevel         string
	ProgressInterval time.Duration

	// File is an optional YAML config file layered under flags and env.
	File string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := search.DefaultConfig()
	return &Config{
		Width:            def.Width,
		Height:           def.Height,
		Workers:          0,
		MaxSteps:         0,
		Format:           string(report.FormatText),
		LogLevel:         "info",
		ProgressInterval: def.ProgressInterval,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel search shards (0 = one per CPU)")
	fs.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "step limit per trajectory (0 = 2^cells+1)")
	fs.StringVar(&c.Format, "format", c.Format, "report format: text, yaml or json")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.DurationVar(&c.ProgressInterval, "progress-interval", c.ProgressInterval, "time between progress logs (0 disables)")
	fs.StringVar(&c.File, "config", c.File, "optional YAML config file")
}

var flagKeys = map[string]string{
	"width":             "width",
	"height":            "height",
	"workers":           "workers",
	"max_steps":         "max-steps",
	"format":            "format",
	"log_level":         "log-level",
	"progress_interval": "progress-interval",
}

// Resolve layers defaults, the optional config file, CYCLES_* environment
// variables and explicitly set flags, in increasing precedence, and stores
// the result in c.
func (c *Config) Resolve(v *viper.Viper, fs *pflag.FlagSet) error {
	defaults := NewConfig()
	v.SetDefault("width", defaults.Width)
	v.SetDefault("height", defaults.Height)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("max_steps", defaults.MaxSteps)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("progress_interval", defaults.ProgressInterval)

	for key, name := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if c.File != "" {
		v.SetConfigFile(c.File)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", c.File, err)
		}
	}

	c.Width = v.GetInt("width")
	c.Height = v.GetInt("height")
	c.Workers = v.GetInt("workers")
	c.MaxSteps = v.GetInt("max_steps")
	c.Format = v.GetString("format")
	c.LogLevel = v.GetString("log_level")
	c.ProgressInterval = v.GetDuration("progress_interval")
	return c.Validate()
}

// Search converts the config into search settings.
func (c *Config) Search() search.Config {
	return search.Config{
		Width:            c.Width,
		Height:           c.Height,
		Workers:          c.Workers,
		MaxSteps:         c.MaxSteps,
		ProgressInterval: c.ProgressInterval,
	}
}

// Validate reports every problem with the config at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Search().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if c.ProgressInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: progress interval %s", search.ErrInvalidConfig, c.ProgressInterval))
	}
	return errors.Join(errs...)
}
