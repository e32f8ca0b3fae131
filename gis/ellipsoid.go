package gis

import "github.com/pkg/errors"

// Ellipsoid holds the defining semi-axes of a reference ellipsoid.
type Ellipsoid struct {
	SemiMajor float64 // equatorial radius (meters)
	SemiMinor float64 // polar radius (meters)
}

// EllipsoidID names a reference ellipsoid from the catalog.
type EllipsoidID int

const (
	// Airy1830 is the ellipsoid of the OSGB36 datum.
	Airy1830 EllipsoidID = iota + 1
	// WGS84 is the GPS ellipsoid, also known as EPSG:4326.
	WGS84
)

func (id EllipsoidID) String() string {
	switch id {
	case Airy1830:
		return "Airy1830"
	case WGS84:
		return "WGS84"
	}
	return "EllipsoidID(unknown)"
}

var ellipsoids = map[EllipsoidID]Ellipsoid{
	Airy1830: {SemiMajor: 6377563.396, SemiMinor: 6356256.909},
	WGS84:    {SemiMajor: 6378137.000, SemiMinor: 6356752.3141},
}

// LookupEllipsoid returns the catalog parameters for id. Unknown ids fail
// with ErrInvalidEllipsoid.
func LookupEllipsoid(id EllipsoidID) (Ellipsoid, error) {
	e, ok := ellipsoids[id]
	if !ok {
		return Ellipsoid{}, errors.Wrapf(ErrInvalidEllipsoid, "id %d", int(id))
	}
	return e, nil
}

// Eccentricity1 returns the first eccentricity squared of an ellipsoid
// with semi-major axis a and semi-minor axis b.
func Eccentricity1(a, b float64) float64 {
	return (a*a - b*b) / (a * a)
}

// Eccentricity2 returns the second eccentricity squared.
func Eccentricity2(a, b float64) float64 {
	return (a*a - b*b) / (b * b)
}
