// Package ingest reads FIRMS CSV exports from disk into memory.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/couchcryptid/fire-data-analysis/internal/domain"
)

// LoadError reports a file-level failure: the input is missing, unreadable,
// or not parseable as delimited text. Row-level data quality is not checked
// here; that is the cleaner's job.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadCSV reads an entire FIRMS CSV export into memory. It returns either a
// fully loaded dataset or a *LoadError, never a partial dataset. Ragged rows
// (a field count differing from the header) make the whole file unparseable.
func LoadCSV(path string) (*domain.RawDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &LoadError{Path: path, Err: errors.New("no header row")}
	}

	return &domain.RawDataset{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}
