// Package pipeline orchestrates the load → clean → summarize → render run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/fire-data-analysis/internal/domain"
	"github.com/couchcryptid/fire-data-analysis/internal/observability"
	"github.com/couchcryptid/fire-data-analysis/internal/summary"
)

// Loader reads the raw CSV export into memory.
type Loader interface {
	Load(path string) (*domain.RawDataset, error)
}

// Cleaner filters and parses raw rows into fire events.
type Cleaner interface {
	Clean(dataset *domain.RawDataset) ([]domain.FireEvent, error)
}

// Summarizer aggregates cleaned events into the chart inputs.
type Summarizer interface {
	Summarize(events []domain.FireEvent) (*summary.Result, error)
}

// Renderer writes the three summary charts. Implementations must treat each
// chart independently: one failure must not prevent the others.
type Renderer interface {
	YearlyLine(ys *summary.YearlySummary, path string) error
	MonthlyBar(ma summary.MonthlyAverage, path string) error
	Heatmap(hm *summary.HeatmapMatrix, path string) error
}

// Options carries the file paths for one run.
type Options struct {
	InputPath   string
	YearlyPath  string
	MonthlyPath string
	HeatmapPath string
}

// Pipeline runs the four stages strictly in sequence. Each stage consumes the
// previous stage's output; nothing is shared or mutated across stages.
type Pipeline struct {
	loader     Loader
	cleaner    Cleaner
	summarizer Summarizer
	renderer   Renderer
	logger     *slog.Logger
	metrics    *observability.Metrics
	opts       Options
}

// New creates a Pipeline with the given stages and observability.
func New(l Loader, c Cleaner, s Summarizer, r Renderer, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Pipeline {
	return &Pipeline{
		loader:     l,
		cleaner:    c,
		summarizer: s,
		renderer:   r,
		logger:     logger,
		metrics:    metrics,
		opts:       opts,
	}
}

// Run executes one complete analysis pass. Structural failures (unreadable
// file, missing schema column, empty cleaned dataset) abort immediately.
// Render failures are collected: every chart is attempted and the joined
// errors are returned at the end.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	p.logger.Info("pipeline started", "input", p.opts.InputPath)

	dataset, err := p.load()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	events, err := p.clean(dataset)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	result, err := p.summarize(events)
	if err != nil {
		return err
	}

	renderErr := p.render(result)

	p.logger.Info("pipeline finished",
		"elapsed", time.Since(start),
		"generated_at", domain.Now(),
		"rows", dataset.Len(),
		"events", len(events),
	)
	return renderErr
}

func (p *Pipeline) load() (*domain.RawDataset, error) {
	defer p.observeStage("load", time.Now())

	dataset, err := p.loader.Load(p.opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("load stage: %w", err)
	}
	p.metrics.RowsLoaded.Add(float64(dataset.Len()))
	p.logger.Info("input loaded", "rows", dataset.Len(), "columns", len(dataset.Columns))
	return dataset, nil
}

func (p *Pipeline) clean(dataset *domain.RawDataset) ([]domain.FireEvent, error) {
	defer p.observeStage("clean", time.Now())

	events, err := p.cleaner.Clean(dataset)
	if err != nil {
		return nil, fmt.Errorf("clean stage: %w", err)
	}

	dropped := dataset.Len() - len(events)
	p.metrics.RowsKept.Add(float64(len(events)))
	p.metrics.RowsDropped.Add(float64(dropped))
	p.logger.Info("dataset cleaned", "kept", len(events), "dropped", dropped)
	return events, nil
}

func (p *Pipeline) summarize(events []domain.FireEvent) (*summary.Result, error) {
	defer p.observeStage("summarize", time.Now())

	result, err := p.summarizer.Summarize(events)
	if err != nil {
		return nil, fmt.Errorf("summarize stage: %w", err)
	}
	p.logger.Info("dataset summarized",
		"first_year", result.Yearly.StartYear,
		"years", result.Yearly.Len(),
		"total", result.Heatmap.Total(),
	)
	return result, nil
}

func (p *Pipeline) render(result *summary.Result) error {
	defer p.observeStage("render", time.Now())

	jobs := []struct {
		name string
		path string
		fn   func() error
	}{
		{"yearly_line", p.opts.YearlyPath, func() error {
			return p.renderer.YearlyLine(result.Yearly, p.opts.YearlyPath)
		}},
		{"monthly_bar", p.opts.MonthlyPath, func() error {
			return p.renderer.MonthlyBar(result.Monthly, p.opts.MonthlyPath)
		}},
		{"heatmap", p.opts.HeatmapPath, func() error {
			return p.renderer.Heatmap(result.Heatmap, p.opts.HeatmapPath)
		}},
	}

	var errs []error
	for _, job := range jobs {
		if err := job.fn(); err != nil {
			p.logger.Error("render failed", "chart", job.name, "error", err)
			p.metrics.RenderErrors.Inc()
			errs = append(errs, err)
			continue
		}
		p.metrics.ChartsRendered.WithLabelValues(job.name).Inc()
		p.logger.Info("chart written", "chart", job.name, "path", job.path)
	}
	return errors.Join(errs...)
}

func (p *Pipeline) observeStage(stage string, start time.Time) {
	p.metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
