// Package domain models NASA FIRMS MODIS fire detection data.
//
// # Data Source
//
// Fire detections come from a FIRMS (Fire Information for Resource Management
// System) archive download of MODIS Collection 6.1 active fire data, exported
// as CSV from https://firms.modaps.eosdis.nasa.gov. The archive used by this
// tool covers a single area of interest (Montenegro) from 2000-11-01 through
// 2025-01-16, the full operational record of the MODIS instruments to date.
//
// # FIRMS CSV Conventions
//
// Column layout (MODIS C6.1 archive export):
//
//	latitude, longitude  WGS-84 center of the 1 km fire pixel.
//	brightness           Channel 21/22 brightness temperature (Kelvin).
//	scan, track          Pixel size along scan and track (km).
//	acq_date             Acquisition date, "YYYY-MM-DD", UTC.
//	acq_time             Acquisition time, "HHMM" 24-hour UTC. Leading zeros
//	                     are dropped by some exports: "705" means 07:05 and
//	                     "5" means 00:05, so values are zero-padded to four
//	                     digits before parsing.
//	satellite            "Terra" or "Aqua" (older exports: "T" / "A").
//	instrument           Always "MODIS" for this product.
//	confidence           Detection confidence, 0-100.
//	version              Collection and source, e.g. "6.1NRT", "6.1".
//	bright_t31           Channel 31 brightness temperature (Kelvin).
//	frp                  Fire radiative power (MW).
//	daynight             "D" (daytime) or "N" (nighttime) overpass.
//	type                 Inferred hot spot type: 0 presumed vegetation fire,
//	                     1 active volcano, 2 other static land source,
//	                     3 offshore.
//
// Only acq_date and acq_time drive the analysis. All other columns are
// carried through on [FireEvent.Raw] without interpretation.
//
// # Cleaning Policy
//
// Row-level problems are never fatal: a row whose acq_date is missing,
// unparseable, or outside the archive span is dropped and the remaining rows
// are kept in their original order. A missing or unparseable acq_time leaves
// the event without a time of day but does not drop the row. The only fatal
// condition at this layer is a structurally invalid input, i.e. the acq_date
// column absent from the header, reported as [*SchemaError].
package domain
