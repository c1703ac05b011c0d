// Package config loads the turnpath command configuration.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML file,
// TURNPATH_* environment variables and explicitly set command-line flags.
// Nested keys map to env names with '_' (log.level → TURNPATH_LOG_LEVEL).
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "TURNPATH"

// MinCanvas is the smallest accepted SVG canvas side in pixels.
const MinCanvas = 100

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full command configuration.
type Config struct {
	Input            string        `mapstructure:"input"`
	TimeLimit        time.Duration `mapstructure:"time_limit"`
	MaxIterations    int64         `mapstructure:"max_iterations"`
	Workers          int           `mapstructure:"workers"`
	OutDir           string        `mapstructure:"out_dir"`
	Label            string        `mapstructure:"label"`
	ProgressInterval time.Duration `mapstructure:"progress_interval"`
	RenderInterval   time.Duration `mapstructure:"render_interval"`
	CanvasWidth      int           `mapstructure:"canvas_width"`
	CanvasHeight     int           `mapstructure:"canvas_height"`
	Log              LogConfig     `mapstructure:"log"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxIterations:    -1,
		Workers:          runtime.NumCPU(),
		OutDir:           "out",
		ProgressInterval: 5 * time.Second,
		RenderInterval:   time.Second,
		CanvasWidth:      1080,
		CanvasHeight:     720,
		Log:              LogConfig{Level: "info", Format: "text"},
	}
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"input":             "input",
	"time-limit":        "time_limit",
	"max-iterations":    "max_iterations",
	"workers":           "workers",
	"out-dir":           "out_dir",
	"label":             "label",
	"progress-interval": "progress_interval",
	"render-interval":   "render_interval",
	"canvas-width":      "canvas_width",
	"canvas-height":     "canvas_height",
	"log-level":         "log.level",
	"log-format":        "log.format",
}

// Load reads the configuration. An empty path skips the file; a non-empty
// path must exist. flags may be nil; only flags present in flagKeys are bound.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("input", d.Input)
	v.SetDefault("time_limit", d.TimeLimit)
	v.SetDefault("max_iterations", d.MaxIterations)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("out_dir", d.OutDir)
	v.SetDefault("label", d.Label)
	v.SetDefault("progress_interval", d.ProgressInterval)
	v.SetDefault("render_interval", d.RenderInterval)
	v.SetDefault("canvas_width", d.CanvasWidth)
	v.SetDefault("canvas_height", d.CanvasHeight)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks ranges. It does not require Input, so a config can be
// loaded before the input is known.
func (c *Config) Validate() error {
	var errs []error
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers=%d, want >= 1: %w", c.Workers, ErrInvalid))
	}
	if c.MaxIterations < -1 {
		errs = append(errs, fmt.Errorf("max_iterations=%d, want >= -1: %w", c.MaxIterations, ErrInvalid))
	}
	if c.TimeLimit < 0 {
		errs = append(errs, fmt.Errorf("time_limit=%s, want >= 0: %w", c.TimeLimit, ErrInvalid))
	}
	if c.ProgressInterval < 0 {
		errs = append(errs, fmt.Errorf("progress_interval=%s, want >= 0: %w", c.ProgressInterval, ErrInvalid))
	}
	if c.RenderInterval < 0 {
		errs = append(errs, fmt.Errorf("render_interval=%s, want >= 0: %w", c.RenderInterval, ErrInvalid))
	}
	if c.CanvasWidth < MinCanvas || c.CanvasHeight < MinCanvas {
		errs = append(errs, fmt.Errorf("canvas=%dx%d, want both >= %d: %w",
			c.CanvasWidth, c.CanvasHeight, MinCanvas, ErrInvalid))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format=%q, want text or json: %w", c.Log.Format, ErrInvalid))
	}

	return errors.Join(errs...)
}
