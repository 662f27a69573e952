// Package chart renders aggregated fire statistics to PNG files using
// gonum/plot. Each renderer is independent and overwrites any existing file
// at its output path.
package chart

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/fire-data-analysis/internal/summary"
)

var errEmptySummary = errors.New("empty summary")

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// RenderError reports a failed chart render: an empty summary or an
// unwritable output path. A failure in one chart does not affect the others.
type RenderError struct {
	Chart string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s chart: %v", e.Chart, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// PNGRenderer writes the three summary charts as PNG images.
type PNGRenderer struct {
	Width  vg.Length
	Height vg.Length
}

// NewPNGRenderer returns a renderer with the default 12×6 inch canvas.
// The heatmap uses extra height to keep year rows readable.
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{Width: 12 * vg.Inch, Height: 6 * vg.Inch}
}

// YearlyLine renders fire counts per year as a line chart with point
// markers, x ascending by year.
func (r *PNGRenderer) YearlyLine(ys *summary.YearlySummary, path string) error {
	const chart = "yearly_line"
	if ys == nil || ys.Len() == 0 {
		return &RenderError{Chart: chart, Err: errEmptySummary}
	}

	pts := make(plotter.XYs, ys.Len())
	for i := range pts {
		year := ys.YearAt(i)
		pts[i].X = float64(year)
		pts[i].Y = float64(ys.Count(year))
	}

	p := plot.New()
	p.Title.Text = "Number of Fires per Year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Fires"
	p.X.Tick.Marker = yearTicks(ys.StartYear, ys.Len())
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return &RenderError{Chart: chart, Err: err}
	}
	line.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)
	p.Add(line, points)

	if err := p.Save(r.Width, r.Height, path); err != nil {
		return &RenderError{Chart: chart, Err: err}
	}
	return nil
}

// MonthlyBar renders the average number of fires per month as a bar chart,
// months in calendar order.
func (r *PNGRenderer) MonthlyBar(ma summary.MonthlyAverage, path string) error {
	const chart = "monthly_bar"

	p := plot.New()
	p.Title.Text = "Average Number of Fires per Month"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Average Monthly Fires"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	bars, err := plotter.NewBarChart(plotter.Values(ma[:]), vg.Points(24))
	if err != nil {
		return &RenderError{Chart: chart, Err: err}
	}
	bars.Color = plotutil.Color(1)
	p.Add(bars)
	p.NominalX(monthLabels[:]...)

	if err := p.Save(r.Width, r.Height, path); err != nil {
		return &RenderError{Chart: chart, Err: err}
	}
	return nil
}

// Heatmap renders the year × month count matrix as a color-intensity grid,
// years ascending bottom to top, months 1-12 left to right.
func (r *PNGRenderer) Heatmap(hm *summary.HeatmapMatrix, path string) error {
	const chart = "heatmap"
	if hm == nil || hm.Total() == 0 {
		return &RenderError{Chart: chart, Err: errEmptySummary}
	}

	p := plot.New()
	p.Title.Text = "Monthly Fire Events by Year"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Year"

	heat := plotter.NewHeatMap(heatGrid{hm}, palette.Heat(12, 1))
	p.Add(heat)

	ticks := make(plot.ConstantTicks, 12)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: monthLabels[i]}
	}
	p.X.Tick.Marker = ticks
	years, _ := hm.Dims()
	p.Y.Tick.Marker = yearTicks(hm.YearAt(0), years)

	if err := p.Save(r.Width, r.Height+2*vg.Inch, path); err != nil {
		return &RenderError{Chart: chart, Err: err}
	}
	return nil
}

// heatGrid adapts a HeatmapMatrix to the plotter.GridXYZ interface.
// X is the month number, Y the year, Z the count.
type heatGrid struct {
	hm *summary.HeatmapMatrix
}

func (g heatGrid) Dims() (c, r int) {
	years, months := g.hm.Dims()
	return months, years
}

func (g heatGrid) Z(c, r int) float64 { return g.hm.Cell(r, c) }
func (g heatGrid) X(c int) float64    { return float64(c + 1) }
func (g heatGrid) Y(r int) float64    { return float64(g.hm.YearAt(r)) }

// yearTicks labels every year for short ranges and progressively fewer for
// longer ones so axis labels stay legible across a 25-year archive.
func yearTicks(startYear, n int) plot.ConstantTicks {
	step := 1
	switch {
	case n > 30:
		step = 5
	case n > 15:
		step = 2
	}

	ticks := make(plot.ConstantTicks, 0, n)
	for i := 0; i < n; i += step {
		year := startYear + i
		ticks = append(ticks, plot.Tick{Value: float64(year), Label: strconv.Itoa(year)})
	}
	return ticks
}
