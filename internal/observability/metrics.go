package observability

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the Prometheus counters and histograms for one pipeline run.
// Each Metrics value owns a private registry, so runs and tests never collide
// on registration.
type Metrics struct {
	RowsLoaded  prometheus.Counter
	RowsKept    prometheus.Counter
	RowsDropped prometheus.Counter

	ChartsRendered *prometheus.CounterVec // label: chart
	RenderErrors   prometheus.Counter
	StageDuration  *prometheus.HistogramVec // label: stage

	registry *prometheus.Registry
}

// NewMetrics creates and registers all pipeline metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_analysis",
			Name:      "rows_loaded_total",
			Help:      "Total rows read from the input CSV, excluding the header.",
		}),
		RowsKept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_analysis",
			Name:      "rows_kept_total",
			Help:      "Rows that survived cleaning.",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_analysis",
			Name:      "rows_dropped_total",
			Help:      "Rows discarded for missing, unparseable, or out-of-span dates.",
		}),
		ChartsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fire_analysis",
			Name:      "charts_rendered_total",
			Help:      "Charts written successfully, by chart name.",
		}, []string{"chart"}),
		RenderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_analysis",
			Name:      "render_errors_total",
			Help:      "Chart renders that failed.",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fire_analysis",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"stage"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RowsLoaded,
		m.RowsKept,
		m.RowsDropped,
		m.ChartsRendered,
		m.RenderErrors,
		m.StageDuration,
	)

	return m
}

// WriteTextfile writes all registered metrics in the Prometheus text
// exposition format. A batch run has no scrape endpoint, so the run's metrics
// can instead be dropped where the node_exporter textfile collector picks
// them up.
func (m *Metrics) WriteTextfile(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, f := range families {
		if err := enc.Encode(f); err != nil {
			return err
		}
	}
	return nil
}
