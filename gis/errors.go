package gis

import "github.com/pkg/errors"

// Failures wrap exactly one of these sentinels, so callers can classify
// with errors.Is regardless of the context added at the failure site.
var (
	// ErrParse reports a malformed angle string.
	ErrParse = errors.New("gis: malformed angle string")

	// ErrInvalidEllipsoid reports an unknown reference ellipsoid.
	ErrInvalidEllipsoid = errors.New("gis: unknown reference ellipsoid")

	// ErrDataLoad reports a missing or corrupt geoid grid resource.
	ErrDataLoad = errors.New("gis: geoid grid load failed")

	// ErrOutOfRange reports a coordinate outside the domain of an
	// operation, such as a geoid lookup beyond the grid's coverage.
	ErrOutOfRange = errors.New("gis: coordinate out of range")

	// ErrConvergence reports an iterative solution that failed to
	// converge within its iteration bound.
	ErrConvergence = errors.New("gis: iteration failed to converge")
)
