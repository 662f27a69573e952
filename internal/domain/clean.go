package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// acqDateLayout is the FIRMS acquisition date format.
const acqDateLayout = "2006-01-02"

// Span is the inclusive date range covered by the archive. Detections dated
// outside the span are treated as corrupt rows and dropped.
type Span struct {
	Start time.Time
	End   time.Time
}

// DefaultSpan returns the declared range of the MODIS C6.1 archive download:
// 2000-11-01 through 2025-01-16.
func DefaultSpan() Span {
	return Span{
		Start: time.Date(2000, time.November, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC),
	}
}

// Contains reports whether t falls within the span, inclusive on both ends.
func (s Span) Contains(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End)
}

// SchemaError reports a structurally invalid dataset, such as a required
// column missing from the header. Unlike row-level parse failures, a schema
// error aborts the run.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q missing from input schema", e.Column)
}

// ParseRawRecord converts a raw CSV row into a FireEvent. A missing or
// malformed acquisition date is an error; a malformed acquisition time only
// leaves the event without a time of day.
func ParseRawRecord(raw RawFireRecord) (FireEvent, error) {
	dateStr := strings.TrimSpace(raw.AcqDate)
	if dateStr == "" {
		return FireEvent{}, fmt.Errorf("acq_date is empty")
	}
	date, err := time.Parse(acqDateLayout, dateStr)
	if err != nil {
		return FireEvent{}, fmt.Errorf("parse acq_date %q: %w", raw.AcqDate, err)
	}

	event := FireEvent{AcqDate: date, Raw: raw}
	if hour, minute, ok := parseHHMM(raw.AcqTime); ok {
		event.HasTime = true
		event.Hour = hour
		event.Minute = minute
	}
	return event, nil
}

// parseHHMM parses a FIRMS acquisition time ("HHMM", 24-hour UTC). Exports
// drop leading zeros, so shorter values are zero-padded: "705" → 07:05.
func parseHHMM(hhmm string) (hour, minute int, ok bool) {
	hhmm = strings.TrimSpace(hhmm)
	if hhmm == "" || len(hhmm) > 4 {
		return 0, 0, false
	}
	for len(hhmm) < 4 {
		hhmm = "0" + hhmm
	}

	hour, errH := strconv.Atoi(hhmm[:2])
	minute, errM := strconv.Atoi(hhmm[2:])
	if errH != nil || errM != nil || hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// Clean validates and parses a raw dataset into fire events. It fails with a
// *SchemaError before looking at any row if the acq_date column is absent.
// Individual rows with missing, unparseable, or out-of-span dates are dropped
// silently; the surviving events keep their input order. Cleaning an already
// clean dataset drops nothing.
func Clean(dataset *RawDataset, span Span) ([]FireEvent, error) {
	if _, ok := dataset.ColumnIndex(ColumnAcqDate); !ok {
		return nil, &SchemaError{Column: ColumnAcqDate}
	}

	events := make([]FireEvent, 0, dataset.Len())
	for _, row := range dataset.Rows {
		event, err := ParseRawRecord(rowToRecord(dataset, row))
		if err != nil {
			continue
		}
		if !span.Contains(event.AcqDate) {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

// rowToRecord maps a positional CSV row onto the named FIRMS columns.
// Columns absent from the header, or rows too short to cover a column,
// yield empty fields.
func rowToRecord(dataset *RawDataset, row []string) RawFireRecord {
	field := func(name string) string {
		i, ok := dataset.ColumnIndex(name)
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	return RawFireRecord{
		Latitude:   field(ColumnLatitude),
		Longitude:  field(ColumnLongitude),
		Brightness: field(ColumnBrightness),
		Scan:       field(ColumnScan),
		Track:      field(ColumnTrack),
		AcqDate:    field(ColumnAcqDate),
		AcqTime:    field(ColumnAcqTime),
		Satellite:  field(ColumnSatellite),
		Instrument: field(ColumnInstrument),
		Confidence: field(ColumnConfidence),
		Version:    field(ColumnVersion),
		BrightT31:  field(ColumnBrightT31),
		FRP:        field(ColumnFRP),
		DayNight:   field(ColumnDayNight),
		Type:       field(ColumnType),
	}
}
