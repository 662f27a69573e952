// Package config resolves tool settings from defaults, an optional YAML
// config file, FIRE_-prefixed environment variables, and bound command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/couchcryptid/fire-data-analysis/internal/domain"
)

const dateLayout = "2006-01-02"

// Settings holds all tool configuration for one run.
type Settings struct {
	InputPath    string `mapstructure:"input"`
	OutputDir    string `mapstructure:"output-dir"`
	YearlyChart  string `mapstructure:"yearly-chart"`
	MonthlyChart string `mapstructure:"monthly-chart"`
	HeatmapChart string `mapstructure:"heatmap-chart"`

	SpanStart string `mapstructure:"span-start"`
	SpanEnd   string `mapstructure:"span-end"`

	LogLevel    string `mapstructure:"log-level"`
	LogFormat   string `mapstructure:"log-format"`
	MetricsFile string `mapstructure:"metrics-file"`
}

// SetDefaults installs the default value for every known key. Defaults also
// make the keys visible to viper's env binding.
func SetDefaults(v *viper.Viper) {
	span := domain.DefaultSpan()

	v.SetDefault("input", "")
	v.SetDefault("output-dir", ".")
	v.SetDefault("yearly-chart", "fires_per_year.png")
	v.SetDefault("monthly-chart", "fires_per_month.png")
	v.SetDefault("heatmap-chart", "fires_heatmap.png")
	v.SetDefault("span-start", span.Start.Format(dateLayout))
	v.SetDefault("span-end", span.End.Format(dateLayout))
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "json")
	v.SetDefault("metrics-file", "")
	v.SetDefault("config", "")
}

// Load builds validated Settings from the given viper instance.
func Load(v *viper.Viper) (*Settings, error) {
	SetDefaults(v)
	v.SetEnvPrefix("FIRE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the settings for structural problems before the pipeline
// starts.
func (s *Settings) Validate() error {
	if s.InputPath == "" {
		return errors.New("input CSV path is required")
	}
	if _, err := s.Span(); err != nil {
		return err
	}
	switch s.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("log-format must be json or text, got %q", s.LogFormat)
	}
	return nil
}

// Span parses the configured acceptance span.
func (s *Settings) Span() (domain.Span, error) {
	start, err := time.Parse(dateLayout, s.SpanStart)
	if err != nil {
		return domain.Span{}, fmt.Errorf("invalid span-start: %w", err)
	}
	end, err := time.Parse(dateLayout, s.SpanEnd)
	if err != nil {
		return domain.Span{}, fmt.Errorf("invalid span-end: %w", err)
	}
	if end.Before(start) {
		return domain.Span{}, fmt.Errorf("span-end %s precedes span-start %s", s.SpanEnd, s.SpanStart)
	}
	return domain.Span{Start: start, End: end}, nil
}

// ChartPath resolves a chart filename against the output directory. Absolute
// chart paths are used as-is.
func (s *Settings) ChartPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.OutputDir, name)
}
