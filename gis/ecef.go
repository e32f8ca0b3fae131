package gis

import (
	"math"

	"github.com/pkg/errors"
)

// Cartesian is an Earth-Centered Earth-Fixed position in meters.
type Cartesian struct {
	X, Y, Z float64
}

// LatLonHeightToECEF converts a geodetic position to ECEF Cartesian
// coordinates.
//
// Param lat, lon is the geodetic position.
// Param height is the ellipsoidal height (meters).
// Param unit is the angular unit of lat and lon.
// Param id names the reference ellipsoid of the input.
//
// An unknown ellipsoid fails with ErrInvalidEllipsoid.
func LatLonHeightToECEF(lat, lon, height float64, unit AngleUnit, id EllipsoidID) (Cartesian, error) {
	ell, err := LookupEllipsoid(id)
	if err != nil {
		return Cartesian{}, err
	}
	if unit == Degrees {
		lat = DegToRad(lat)
		lon = DegToRad(lon)
	}

	a := ell.SemiMajor
	e2 := Eccentricity1(a, ell.SemiMinor)

	// Transverse radius of curvature.
	sinLat := math.Sin(lat)
	v := a / math.Sqrt(1-e2*sinLat*sinLat)

	return Cartesian{
		X: (v + height) * math.Cos(lat) * math.Cos(lon),
		Y: (v + height) * math.Cos(lat) * math.Sin(lon),
		Z: ((1-e2)*v + height) * sinLat,
	}, nil
}

// DmsToECEF converts a geodetic position given as degrees-minutes-seconds
// strings to ECEF Cartesian coordinates.
//
// Param latDms, lonDms are DMS strings in the DmsToDd format.
// Param height is the ellipsoidal height (meters).
// Param id names the reference ellipsoid of the input.
func DmsToECEF(latDms, lonDms string, height float64, id EllipsoidID) (Cartesian, error) {
	lat, err := DmsToDd(latDms)
	if err != nil {
		return Cartesian{}, errors.Wrap(err, "latitude")
	}
	lon, err := DmsToDd(lonDms)
	if err != nil {
		return Cartesian{}, errors.Wrap(err, "longitude")
	}
	return LatLonHeightToECEF(lat, lon, height, Degrees, id)
}

// CartesianToLatLon converts an ECEF Cartesian position to geodetic
// latitude, longitude (decimal degrees), and ellipsoidal height (meters).
//
// Param c is the ECEF position.
// Param id names the reference ellipsoid of the output.
//
// The conversion is the closed-form reduced-latitude method: an auxiliary
// angle β seeds a single correction to the geodetic latitude, which is
// accurate to well under a millimeter for terrestrial points. Positions on
// the polar axis (x = y = 0) have no defined longitude and fail with
// ErrOutOfRange; an unknown ellipsoid fails with ErrInvalidEllipsoid.
func CartesianToLatLon(c Cartesian, id EllipsoidID) (lat, lon, height float64, err error) {
	ell, err := LookupEllipsoid(id)
	if err != nil {
		return 0, 0, 0, err
	}
	a, b := ell.SemiMajor, ell.SemiMinor
	e2 := Eccentricity1(a, b)
	e22 := Eccentricity2(a, b)

	p := math.Hypot(c.X, c.Y)
	if p == 0 {
		return 0, 0, 0, errors.Wrap(ErrOutOfRange, "point on the polar axis")
	}
	r := math.Hypot(p, c.Z)

	tanBeta := ((b * c.Z) / (a * p)) * ((1 + e22) * (b / r))
	beta := math.Atan(tanBeta)
	sinBeta := math.Sin(beta)
	cosBeta := math.Cos(beta)

	tanLat := (c.Z + e22*b*sinBeta*sinBeta*sinBeta) /
		(p - e2*a*cosBeta*cosBeta*cosBeta)
	latRad := math.Atan(tanLat)
	lonRad := math.Atan2(c.Y, c.X)

	sinLat := math.Sin(latRad)
	v := a / math.Sqrt(1-e2*sinLat*sinLat)
	height = p*math.Cos(latRad) + c.Z*sinLat - (a*a)/v

	return RadToDeg(latRad), RadToDeg(lonRad), height, nil
}
