package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("input", "fire_archive.csv")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "fire_archive.csv", cfg.InputPath)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "fires_per_year.png", cfg.YearlyChart)
	assert.Equal(t, "fires_per_month.png", cfg.MonthlyChart)
	assert.Equal(t, "fires_heatmap.png", cfg.HeatmapChart)
	assert.Equal(t, "2000-11-01", cfg.SpanStart)
	assert.Equal(t, "2025-01-16", cfg.SpanEnd)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("FIRE_INPUT", "archive.csv")
	t.Setenv("FIRE_OUTPUT_DIR", "/tmp/charts")
	t.Setenv("FIRE_LOG_LEVEL", "debug")
	t.Setenv("FIRE_LOG_FORMAT", "text")
	t.Setenv("FIRE_SPAN_START", "2010-01-01")
	t.Setenv("FIRE_SPAN_END", "2020-12-31")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "archive.csv", cfg.InputPath)
	assert.Equal(t, "/tmp/charts", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)

	span, err := cfg.Span()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC), span.Start)
	assert.Equal(t, time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC), span.End)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fire.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"input: from-file.csv\noutput-dir: charts\nlog-format: text\n",
	), 0o644))

	v := viper.New()
	v.Set("config", path)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "from-file.csv", cfg.InputPath)
	assert.Equal(t, "charts", cfg.OutputDir)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_MissingInput(t *testing.T) {
	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input CSV path")
}

func TestLoad_InvalidSpan(t *testing.T) {
	t.Run("unparseable start", func(t *testing.T) {
		v := viper.New()
		v.Set("input", "a.csv")
		v.Set("span-start", "November 2000")

		_, err := Load(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "span-start")
	})

	t.Run("end before start", func(t *testing.T) {
		v := viper.New()
		v.Set("input", "a.csv")
		v.Set("span-start", "2020-01-01")
		v.Set("span-end", "2019-01-01")

		_, err := Load(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "precedes")
	})
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	v := viper.New()
	v.Set("input", "a.csv")
	v.Set("log-format", "xml")

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log-format")
}

func TestSettings_ChartPath(t *testing.T) {
	s := &Settings{OutputDir: "/data/charts"}

	assert.Equal(t, filepath.Join("/data/charts", "a.png"), s.ChartPath("a.png"))
	assert.Equal(t, "/abs/b.png", s.ChartPath("/abs/b.png"))
}
