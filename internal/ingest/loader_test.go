package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, "fires.csv",
			"latitude,longitude,acq_date,acq_time\n"+
				"42.708,19.374,2021-07-15,1045\n"+
				"42.431,18.701,2021-07-16,0930\n")

		dataset, err := LoadCSV(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"latitude", "longitude", "acq_date", "acq_time"}, dataset.Columns)
		assert.Equal(t, 2, dataset.Len())
		assert.Equal(t, []string{"42.708", "19.374", "2021-07-15", "1045"}, dataset.Rows[0])
	})

	t.Run("header only", func(t *testing.T) {
		path := writeFile(t, "empty.csv", "latitude,longitude,acq_date,acq_time\n")

		dataset, err := LoadCSV(path)
		require.NoError(t, err)
		assert.Equal(t, 0, dataset.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("ragged rows", func(t *testing.T) {
		path := writeFile(t, "ragged.csv",
			"latitude,longitude,acq_date\n42.708,19.374,2021-07-15\n42.431,18.701\n")

		_, err := LoadCSV(path)
		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, path, loadErr.Path)
	})

	t.Run("zero-byte file", func(t *testing.T) {
		path := writeFile(t, "zero.csv", "")

		_, err := LoadCSV(path)
		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
	})
}
