// Command genfixture writes a synthetic FIRMS-style CSV fixture for demos
// and manual pipeline runs. Rows follow the MODIS C6.1 archive schema with
// acquisition dates inside the declared span, weighted toward the summer
// fire season. The -dirty flag appends rows with missing, malformed, or
// out-of-span dates to exercise the cleaner.
//
// Usage:
//
//	go run ./cmd/genfixture -out testdata/fire_archive.csv -rows 500 -seed 42 -dirty 10
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/fire-data-analysis/internal/domain"
)

var header = []string{
	domain.ColumnLatitude, domain.ColumnLongitude, domain.ColumnBrightness,
	domain.ColumnScan, domain.ColumnTrack, domain.ColumnAcqDate,
	domain.ColumnAcqTime, domain.ColumnSatellite, domain.ColumnInstrument,
	domain.ColumnConfidence, domain.ColumnVersion, domain.ColumnBrightT31,
	domain.ColumnFRP, domain.ColumnDayNight, domain.ColumnType,
}

// monthWeights roughly follows the Mediterranean fire season: most
// detections in July and August, few in winter.
var monthWeights = [12]int{1, 1, 2, 2, 3, 5, 10, 12, 6, 3, 1, 1}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output CSV path")
	rows := flag.Int("rows", 500, "number of valid detection rows")
	dirty := flag.Int("dirty", 0, "number of invalid rows to append")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	rng := rand.New(rand.NewSource(*seed))
	span := domain.DefaultSpan()

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}

	for range *rows {
		if err := w.Write(validRow(rng, span)); err != nil {
			return err
		}
	}
	for i := range *dirty {
		if err := w.Write(dirtyRow(rng, i)); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Printf("wrote %d valid and %d dirty rows to %s", *rows, *dirty, *out)
	return nil
}

func validRow(rng *rand.Rand, span domain.Span) []string {
	date := randomDate(rng, span)
	sat := "Terra"
	if rng.Intn(2) == 0 {
		sat = "Aqua"
	}
	daynight := "D"
	if rng.Intn(4) == 0 {
		daynight = "N"
	}

	return []string{
		// Montenegro bounding box.
		fmt.Sprintf("%.4f", 41.8+rng.Float64()*1.8),
		fmt.Sprintf("%.4f", 18.4+rng.Float64()*2.0),
		fmt.Sprintf("%.1f", 300+rng.Float64()*100),
		fmt.Sprintf("%.1f", 1.0+rng.Float64()*3),
		fmt.Sprintf("%.1f", 1.0+rng.Float64()),
		date.Format("2006-01-02"),
		fmt.Sprintf("%02d%02d", rng.Intn(24), rng.Intn(60)),
		sat,
		"MODIS",
		strconv.Itoa(30 + rng.Intn(71)),
		"6.1",
		fmt.Sprintf("%.1f", 280+rng.Float64()*30),
		fmt.Sprintf("%.1f", rng.Float64()*80),
		daynight,
		"0",
	}
}

func dirtyRow(rng *rand.Rand, i int) []string {
	row := validRow(rng, domain.DefaultSpan())
	dateIdx := 5

	switch i % 3 {
	case 0:
		row[dateIdx] = ""
	case 1:
		row[dateIdx] = "31-12-1999"
	case 2:
		row[dateIdx] = "1999-12-31"
	}
	return row
}

// randomDate draws a day inside the span with month frequencies following
// monthWeights. Rejection sampling keeps the result within the span's ragged
// first and last months.
func randomDate(rng *rand.Rand, span domain.Span) time.Time {
	var totalWeight int
	for _, w := range monthWeights {
		totalWeight += w
	}

	for {
		year := span.Start.Year() + rng.Intn(span.End.Year()-span.Start.Year()+1)

		pick := rng.Intn(totalWeight)
		month := time.January
		for m, w := range monthWeights {
			if pick < w {
				month = time.Month(m + 1)
				break
			}
			pick -= w
		}

		day := 1 + rng.Intn(28)
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if span.Contains(date) {
			return date
		}
	}
}
