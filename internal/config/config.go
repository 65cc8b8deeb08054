// Package config loads BMI tracker settings from an optional file and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jwulff/bmi-go/internal/render"
)

// EnvPrefix prefixes environment overrides, e.g. BMI_DB_PATH.
const EnvPrefix = "BMI"

// Config holds every setting.
type Config struct {
	DB    DBConfig    `mapstructure:"db"`
	Chart ChartConfig `mapstructure:"chart"`
	Log   LogConfig   `mapstructure:"log"`
}

// DBConfig locates the record store.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// ChartConfig controls the trend chart output.
type ChartConfig struct {
	Output string `mapstructure:"output"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.path", "bmi_data.db")
	v.SetDefault("chart.output", "bmi_trend.png")
	v.SetDefault("chart.width", 128)
	v.SetDefault("chart.height", 64)
	v.SetDefault("log.level", "warn")
}

// Load reads configuration. With an explicit path that file must exist;
// otherwise bmi.yaml is looked up in the working directory and in
// $HOME/.config/bmi, and a missing file just means defaults.
// Environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("bmi")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "bmi"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c *Config) Validate() error {
	if c.DB.Path == "" {
		return errors.New("db.path must not be empty")
	}
	if c.Chart.Output == "" {
		return errors.New("chart.output must not be empty")
	}
	if c.Chart.Width < render.MinFrameWidth || c.Chart.Height < render.MinFrameHeight {
		return fmt.Errorf("chart size %dx%d is below the %dx%d minimum",
			c.Chart.Width, c.Chart.Height, render.MinFrameWidth, render.MinFrameHeight)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", l.Level, err)
	}
	return level, nil
}
