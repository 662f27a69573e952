package pipeline

import (
	"github.com/couchcryptid/fire-data-analysis/internal/domain"
	"github.com/couchcryptid/fire-data-analysis/internal/ingest"
	"github.com/couchcryptid/fire-data-analysis/internal/summary"
)

// CSVLoader implements Loader on top of the ingest package.
type CSVLoader struct{}

func (CSVLoader) Load(path string) (*domain.RawDataset, error) {
	return ingest.LoadCSV(path)
}

// SpanCleaner implements Cleaner using domain parsing with a fixed
// acceptance span.
type SpanCleaner struct {
	Span domain.Span
}

func (c SpanCleaner) Clean(dataset *domain.RawDataset) ([]domain.FireEvent, error) {
	return domain.Clean(dataset, c.Span)
}

// Aggregator implements Summarizer via the summary package.
type Aggregator struct{}

func (Aggregator) Summarize(events []domain.FireEvent) (*summary.Result, error) {
	return summary.Summarize(events)
}
