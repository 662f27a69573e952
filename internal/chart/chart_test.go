package chart

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fire-data-analysis/internal/domain"
	"github.com/couchcryptid/fire-data-analysis/internal/summary"
)

func testResult(t *testing.T) *summary.Result {
	t.Helper()
	dates := []string{"2020-01-05", "2020-01-20", "2020-07-04", "2021-06-01", "2022-08-19"}
	events := make([]domain.FireEvent, 0, len(dates))
	for _, d := range dates {
		date, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		events = append(events, domain.FireEvent{AcqDate: date})
	}
	res, err := summary.Summarize(events)
	require.NoError(t, err)
	return res
}

// assertPNG checks that a non-trivial PNG was written to path.
func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	header := make([]byte, 8)
	_, err = io.ReadFull(f, header)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, header)
}

func TestPNGRenderer_YearlyLine(t *testing.T) {
	res := testResult(t)
	path := filepath.Join(t.TempDir(), "fires_per_year.png")

	require.NoError(t, NewPNGRenderer().YearlyLine(res.Yearly, path))
	assertPNG(t, path)
}

func TestPNGRenderer_MonthlyBar(t *testing.T) {
	res := testResult(t)
	path := filepath.Join(t.TempDir(), "fires_per_month.png")

	require.NoError(t, NewPNGRenderer().MonthlyBar(res.Monthly, path))
	assertPNG(t, path)
}

func TestPNGRenderer_Heatmap(t *testing.T) {
	res := testResult(t)
	path := filepath.Join(t.TempDir(), "fires_heatmap.png")

	require.NoError(t, NewPNGRenderer().Heatmap(res.Heatmap, path))
	assertPNG(t, path)
}

func TestPNGRenderer_OverwritesExistingFile(t *testing.T) {
	res := testResult(t)
	path := filepath.Join(t.TempDir(), "fires_per_year.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, NewPNGRenderer().YearlyLine(res.Yearly, path))
	assertPNG(t, path)
}

func TestPNGRenderer_EmptySummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	r := NewPNGRenderer()

	var renderErr *RenderError
	require.ErrorAs(t, r.YearlyLine(nil, path), &renderErr)
	assert.Equal(t, "yearly_line", renderErr.Chart)

	require.ErrorAs(t, r.YearlyLine(&summary.YearlySummary{}, path), &renderErr)
	require.ErrorAs(t, r.Heatmap(nil, path), &renderErr)
	assert.Equal(t, "heatmap", renderErr.Chart)

	assert.NoFileExists(t, path)
}

func TestPNGRenderer_UnwritablePath(t *testing.T) {
	res := testResult(t)
	path := filepath.Join(t.TempDir(), "missing-dir", "out.png")
	r := NewPNGRenderer()

	var renderErr *RenderError
	require.ErrorAs(t, r.YearlyLine(res.Yearly, path), &renderErr)
	require.ErrorAs(t, r.MonthlyBar(res.Monthly, path), &renderErr)
	require.ErrorAs(t, r.Heatmap(res.Heatmap, path), &renderErr)
}
