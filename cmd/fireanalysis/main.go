// Command fireanalysis runs the FIRMS fire archive analysis pipeline: it
// loads a MODIS C6.1 CSV export, cleans it, aggregates fire counts by year
// and month, and renders three PNG charts.
//
// Usage:
//
//	fireanalysis --input fire_archive.csv --output-dir charts
//	fireanalysis fire_archive.csv
//
// Settings can also come from FIRE_-prefixed environment variables or a YAML
// config file passed with --config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/couchcryptid/fire-data-analysis/internal/chart"
	"github.com/couchcryptid/fire-data-analysis/internal/config"
	"github.com/couchcryptid/fire-data-analysis/internal/observability"
	"github.com/couchcryptid/fire-data-analysis/internal/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "fireanalysis [input.csv]",
		Short:         "Analyze a FIRMS MODIS fire archive CSV and render summary charts",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("input", args[0])
			}
			settings, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), settings)
		},
	}

	flags := root.Flags()
	flags.StringP("input", "i", "", "path to the FIRMS CSV export")
	flags.StringP("output-dir", "o", ".", "directory for rendered charts")
	flags.String("yearly-chart", "fires_per_year.png", "yearly line chart filename")
	flags.String("monthly-chart", "fires_per_month.png", "monthly average bar chart filename")
	flags.String("heatmap-chart", "fires_heatmap.png", "year-by-month heatmap filename")
	flags.String("span-start", "", "earliest accepted acquisition date (YYYY-MM-DD)")
	flags.String("span-end", "", "latest accepted acquisition date (YYYY-MM-DD)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "json", "log format: json or text")
	flags.String("metrics-file", "", "write run metrics in Prometheus text format to this file")
	flags.String("config", "", "path to a YAML config file")

	cobra.CheckErr(v.BindPFlags(flags))
	return root
}

func run(ctx context.Context, settings *config.Settings) error {
	logger := observability.NewLogger(settings.LogLevel, settings.LogFormat)
	metrics := observability.NewMetrics()

	span, err := settings.Span()
	if err != nil {
		return err
	}

	p := pipeline.New(
		pipeline.CSVLoader{},
		pipeline.SpanCleaner{Span: span},
		pipeline.Aggregator{},
		chart.NewPNGRenderer(),
		logger,
		metrics,
		pipeline.Options{
			InputPath:   settings.InputPath,
			YearlyPath:  settings.ChartPath(settings.YearlyChart),
			MonthlyPath: settings.ChartPath(settings.MonthlyChart),
			HeatmapPath: settings.ChartPath(settings.HeatmapChart),
		},
	)

	runErr := p.Run(ctx)

	if settings.MetricsFile != "" {
		if err := writeMetrics(metrics, settings.MetricsFile); err != nil {
			logger.Error("write metrics file failed", "path", settings.MetricsFile, "error", err)
		}
	}
	return runErr
}

func writeMetrics(metrics *observability.Metrics, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := metrics.WriteTextfile(f); err != nil {
		return err
	}
	return f.Close()
}
