package domain

import "time"

// FIRMS CSV column names. Only ColumnAcqDate is required; every other column
// is optional passthrough.
const (
	ColumnLatitude   = "latitude"
	ColumnLongitude  = "longitude"
	ColumnBrightness = "brightness"
	ColumnScan       = "scan"
	ColumnTrack      = "track"
	ColumnAcqDate    = "acq_date"
	ColumnAcqTime    = "acq_time"
	ColumnSatellite  = "satellite"
	ColumnInstrument = "instrument"
	ColumnConfidence = "confidence"
	ColumnVersion    = "version"
	ColumnBrightT31  = "bright_t31"
	ColumnFRP        = "frp"
	ColumnDayNight   = "daynight"
	ColumnType       = "type"
)

// RawFireRecord mirrors one row of a FIRMS MODIS C6.1 CSV export. All fields
// are kept as strings exactly as they appear in the file; only AcqDate and
// AcqTime are interpreted downstream.
type RawFireRecord struct {
	Latitude   string
	Longitude  string
	Brightness string
	Scan       string
	Track      string
	AcqDate    string
	AcqTime    string
	Satellite  string
	Instrument string
	Confidence string
	Version    string
	BrightT31  string
	FRP        string
	DayNight   string
	Type       string
}

// RawDataset is an in-memory CSV table: the header row plus all data rows,
// in file order. Produced whole by the loader, consumed by Clean.
type RawDataset struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows (excluding the header).
func (d *RawDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// ColumnIndex returns the position of a named column in the header.
func (d *RawDataset) ColumnIndex(name string) (int, bool) {
	for i, c := range d.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// FireEvent is the parsed representation of a single detection. AcqDate is
// the acquisition calendar date at UTC midnight. The time of day is optional
// in the source data; HasTime reports whether Hour and Minute are meaningful.
type FireEvent struct {
	AcqDate time.Time
	HasTime bool
	Hour    int
	Minute  int

	// Raw carries the original row, including sensor columns the analysis
	// does not interpret.
	Raw RawFireRecord
}

// Year returns the acquisition year.
func (e FireEvent) Year() int { return e.AcqDate.Year() }

// Month returns the acquisition calendar month.
func (e FireEvent) Month() time.Month { return e.AcqDate.Month() }
