// Package summary aggregates cleaned fire events along temporal dimensions.
package summary

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/couchcryptid/fire-data-analysis/internal/domain"
)

// ErrEmptyDataset is returned when there are no events to aggregate. It
// distinguishes "no data" from a legitimate summary of zero counts.
var ErrEmptyDataset = errors.New("summary: empty dataset")

// YearlySummary holds fire counts for a contiguous ascending range of years.
// Years between the first and last observed detection are zero-filled so the
// yearly line chart has no gaps.
type YearlySummary struct {
	StartYear int
	Counts    []int
}

// Len returns the number of years covered.
func (s *YearlySummary) Len() int { return len(s.Counts) }

// YearAt returns the i-th year in ascending order.
func (s *YearlySummary) YearAt(i int) int { return s.StartYear + i }

// Count returns the fire count for a year, or 0 for years outside the range.
func (s *YearlySummary) Count(year int) int {
	i := year - s.StartYear
	if i < 0 || i >= len(s.Counts) {
		return 0
	}
	return s.Counts[i]
}

// MonthlyAverage maps calendar months (index 0 = January) to the mean
// per-year count of fires in that month. A month with no detections in some
// observed year contributes 0 for that year rather than shrinking the
// denominator.
type MonthlyAverage [12]float64

// Month returns the average for a calendar month.
func (a MonthlyAverage) Month(m time.Month) float64 { return a[int(m)-1] }

// HeatmapMatrix is a year × month cross-tabulation of fire counts, rows
// ascending by year, twelve month columns, zero-filled for absent pairs.
type HeatmapMatrix struct {
	StartYear int
	counts    *mat.Dense
}

// Dims returns the matrix dimensions as (years, months).
func (h *HeatmapMatrix) Dims() (years, months int) {
	return h.counts.Dims()
}

// YearAt returns the year of row r.
func (h *HeatmapMatrix) YearAt(r int) int { return h.StartYear + r }

// Cell returns the count at row r (year index) and column c (month index,
// 0 = January).
func (h *HeatmapMatrix) Cell(r, c int) float64 { return h.counts.At(r, c) }

// Count returns the number of fires in a given year and month, or 0 when the
// year is outside the matrix range.
func (h *HeatmapMatrix) Count(year int, month time.Month) float64 {
	r := year - h.StartYear
	years, _ := h.counts.Dims()
	if r < 0 || r >= years {
		return 0
	}
	return h.counts.At(r, int(month)-1)
}

// Total returns the sum of every cell, which equals the number of events the
// matrix was built from.
func (h *HeatmapMatrix) Total() float64 { return mat.Sum(h.counts) }

// Equal reports whether two matrices cover the same years with identical
// counts. Satisfies the go-cmp Equal convention.
func (h *HeatmapMatrix) Equal(other *HeatmapMatrix) bool {
	return h.StartYear == other.StartYear && mat.Equal(h.counts, other.counts)
}

// Result bundles the three aggregations produced from one cleaned dataset.
type Result struct {
	Yearly  *YearlySummary
	Monthly MonthlyAverage
	Heatmap *HeatmapMatrix
}

// Summarize computes yearly counts, monthly averages, and the year × month
// matrix for a cleaned dataset. It is pure: deterministic, no I/O. An empty
// dataset fails with ErrEmptyDataset.
func Summarize(events []domain.FireEvent) (*Result, error) {
	if len(events) == 0 {
		return nil, ErrEmptyDataset
	}

	minYear, maxYear := events[0].Year(), events[0].Year()
	observed := make(map[int]bool, 8)
	for _, e := range events {
		y := e.Year()
		observed[y] = true
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}

	years := maxYear - minYear + 1
	counts := mat.NewDense(years, 12, nil)
	for _, e := range events {
		r, c := e.Year()-minYear, int(e.Month())-1
		counts.Set(r, c, counts.At(r, c)+1)
	}

	yearly := &YearlySummary{StartYear: minYear, Counts: make([]int, years)}
	for r := range years {
		var total float64
		for c := range 12 {
			total += counts.At(r, c)
		}
		yearly.Counts[r] = int(total)
	}

	// Average over observed years only: a gap year with no detections at all
	// is treated as unobserved, matching the archive's year coverage, while a
	// fire-free month inside an observed year still counts as zero.
	var monthly MonthlyAverage
	perYear := make([]float64, 0, len(observed))
	for c := range 12 {
		perYear = perYear[:0]
		for y := minYear; y <= maxYear; y++ {
			if observed[y] {
				perYear = append(perYear, counts.At(y-minYear, c))
			}
		}
		monthly[c] = stat.Mean(perYear, nil)
	}

	return &Result{
		Yearly:  yearly,
		Monthly: monthly,
		Heatmap: &HeatmapMatrix{StartYear: minYear, counts: counts},
	}, nil
}
