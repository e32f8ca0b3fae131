package gis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DmsToDd parses a degrees-minutes-seconds string such as
// "52 39 27.2531 N" into decimal degrees. The string carries four
// whitespace-separated fields: degrees, minutes, seconds, and a
// hemisphere letter from N, S, E, W. Southern and western hemispheres
// negate the result. Malformed input fails with ErrParse.
func DmsToDd(dms string) (float64, error) {
	parts := strings.Fields(dms)
	if len(parts) != 4 {
		return 0, errors.Wrapf(ErrParse, "want 4 fields, got %d in %q", len(parts), dms)
	}
	deg, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "degrees %q", parts[0])
	}
	min, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "minutes %q", parts[1])
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "seconds %q", parts[2])
	}
	dd := deg + min/60 + sec/3600
	switch parts[3] {
	case "N", "E":
	case "S", "W":
		dd = -dd
	default:
		return 0, errors.Wrapf(ErrParse, "hemisphere %q", parts[3])
	}
	return dd, nil
}

// DdToDms formats decimal degrees as a degrees-minutes-seconds string.
// Degrees are zero-padded to 2 digits for latitudes and 3 for longitudes,
// seconds are rounded to 4 decimal places, and the hemisphere letter
// follows the sign (non-negative values get N or E). Degree and minute
// fields truncate, so DdToDms(51.5, Latitude) is "51 30 0.0 N".
func DdToDms(dd float64, axis Axis) string {
	abs := math.Abs(dd)
	deg := int(abs)
	min := int((abs - float64(deg)) * 60)
	sec := (abs - float64(deg) - float64(min)/60) * 3600

	var degStr, suffix string
	switch axis {
	case Latitude:
		degStr = fmt.Sprintf("%02d", deg)
		suffix = "N"
		if dd < 0 {
			suffix = "S"
		}
	case Longitude:
		degStr = fmt.Sprintf("%03d", deg)
		suffix = "E"
		if dd < 0 {
			suffix = "W"
		}
	default:
		panic("gis: DdToDms called with invalid axis")
	}

	return fmt.Sprintf("%s %d %s %s", degStr, min, formatSeconds(sec), suffix)
}

// LatDdToDms formats a latitude in decimal degrees as DMS.
func LatDdToDms(dd float64) string {
	return DdToDms(dd, Latitude)
}

// LonDdToDms formats a longitude in decimal degrees as DMS.
func LonDdToDms(dd float64) string {
	return DdToDms(dd, Longitude)
}

// LatLonDdToDms formats a coordinate pair as DMS strings.
func LatLonDdToDms(lat, lon float64) (string, string) {
	return DdToDms(lat, Latitude), DdToDms(lon, Longitude)
}

// formatSeconds rounds to 4 decimal places and prints the shortest
// representation that keeps at least one decimal, so whole values come
// out as "0.0" rather than "0".
func formatSeconds(sec float64) string {
	rounded := math.Round(sec*1e4) / 1e4
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
