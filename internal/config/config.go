// Package config resolves run settings from defaults, an optional YAML file,
// HOTSPOT_* environment variables and command line flags, in rising order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dm/hotspot/internal/model"
	"github.com/dm/hotspot/internal/snapshot"
)

// EnvPrefix is prepended to every environment override, e.g. HOTSPOT_REPORT.
const EnvPrefix = "HOTSPOT"

// DefaultCaptureTimeout bounds a whole capture. Shard level stats of a large
// cluster take a while to render.
const DefaultCaptureTimeout = 60 * time.Second

// Config holds the settings of one invocation.
type Config struct {
	Report      string         `mapstructure:"report"`
	Size        int            `mapstructure:"size"`
	Dir         string         `mapstructure:"dir"`
	OutDir      string         `mapstructure:"out_dir"`
	Interactive bool           `mapstructure:"interactive"`
	Files       snapshot.Files `mapstructure:"files"`
	Log         LogConfig      `mapstructure:"log"`
	Capture     CaptureConfig  `mapstructure:"capture"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CaptureConfig holds the settings of the capture subcommand.
type CaptureConfig struct {
	Phase    string        `mapstructure:"phase"`
	Insecure bool          `mapstructure:"insecure"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// flagKeys maps command line flag names to config keys. Flags missing from
// the flag set being bound are skipped.
var flagKeys = map[string]string{
	"report":      "report",
	"size":        "size",
	"dir":         "dir",
	"out-dir":     "out_dir",
	"interactive": "interactive",
	"log-level":   "log.level",
	"log-format":  "log.format",
	"phase":       "capture.phase",
	"insecure":    "capture.insecure",
	"timeout":     "capture.timeout",
}

// Load resolves the configuration. configFile may be empty, in which case
// hotspot.yaml is looked up in the working directory and its absence is not
// an error. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("hotspot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("report", string(model.MetricIndex))
	v.SetDefault("size", 10)
	v.SetDefault("dir", ".")
	v.SetDefault("out_dir", ".")
	v.SetDefault("interactive", false)

	files := snapshot.DefaultFiles()
	v.SetDefault("files.shard_stats_begin", files.ShardStatsBegin)
	v.SetDefault("files.shard_stats_end", files.ShardStatsEnd)
	v.SetDefault("files.node_stats_begin", files.NodeStatsBegin)
	v.SetDefault("files.node_stats_end", files.NodeStatsEnd)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("capture.phase", string(snapshot.PhaseBegin))
	v.SetDefault("capture.insecure", false)
	v.SetDefault("capture.timeout", DefaultCaptureTimeout)
}

// Metric returns the parsed report metric.
func (c *Config) Metric() (model.Metric, error) {
	return model.ParseMetric(c.Report)
}

// Validate checks the analysis settings.
func (c *Config) Validate() error {
	if _, err := c.Metric(); err != nil {
		return err
	}
	if c.Size < 1 {
		return fmt.Errorf("size must be at least 1, got %d", c.Size)
	}
	if err := c.Files.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// ValidateCapture checks the capture settings.
func (c *Config) ValidateCapture() error {
	if _, err := snapshot.ParsePhase(c.Capture.Phase); err != nil {
		return err
	}
	if c.Capture.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Capture.Timeout)
	}
	if err := c.Files.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// Validate checks the log format. The level is checked when the logger is
// built.
func (l LogConfig) Validate() error {
	switch l.Format {
	case "console", "json":
		return nil
	}
	return fmt.Errorf("invalid log format %q (want console or json)", l.Format)
}
