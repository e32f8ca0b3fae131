// OSGB36 national grid projection, after the series expansions published
// in appendix C of "A guide to coordinate systems in Great Britain".

package gis

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
)

// Projection constants: central-meridian scale factor, true origin
// (49°N 2°W), and the false origin offsets in meters.
const (
	gridScaleF0   = 0.9996012717
	gridOriginLat = 49 * math.Pi / 180
	gridOriginLon = -2 * math.Pi / 180
	gridOriginE   = 400000.0
	gridOriginN   = -100000.0
)

// Lettered extent of the grid: 7 by 13 of the 100 km squares.
const (
	gridMaxEasting  = 700000.0
	gridMaxNorthing = 1300000.0
)

const maxArcIterations = 20

// GridCoord is a national grid position in meters east and north of the
// false origin.
type GridCoord struct {
	Easting  float64
	Northing float64
}

// LatLonToGridEastNorth projects an OSGB36 geodetic position onto the
// national grid. Positions referenced to WGS84 need the datum shift
// (ECEF plus HelmertTransform) applied first; a raw WGS84 position fed
// straight in comes out around a hundred meters adrift.
func LatLonToGridEastNorth(ll s2.LatLng) GridCoord {
	airy := ellipsoids[Airy1830]
	a := airy.SemiMajor
	e2 := Eccentricity1(a, airy.SemiMinor)

	lat := ll.Lat.Radians()
	lon := ll.Lng.Radians()

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	tanLat := math.Tan(lat)
	cos3 := cosLat * cosLat * cosLat

	v := a * gridScaleF0 / math.Sqrt(1-e2*sinLat*sinLat)
	rho := a * gridScaleF0 * (1 - e2) * math.Pow(1-e2*sinLat*sinLat, -1.5)
	eta2 := v/rho - 1

	I := meridionalArc(lat) + gridOriginN
	II := (v / 2) * sinLat * cosLat
	III := (v / 24) * sinLat * cos3 * (5 - tanLat*tanLat + 9*eta2)
	IIIA := (v / 720) * sinLat * Cos5(lat) * (61 - 58*Tan2(lat) + Tan4(lat))
	IV := v * cosLat
	V := (v / 6) * cos3 * (v/rho - tanLat*tanLat)
	VI := (v / 120) * Cos5(lat) * (5 - 18*Tan2(lat) + Tan4(lat) + 14*eta2 - 58*Tan2(lat)*eta2)

	dLon := lon - gridOriginLon
	dLon2 := dLon * dLon
	dLon3 := dLon2 * dLon
	dLon4 := dLon2 * dLon2
	dLon5 := dLon4 * dLon
	dLon6 := dLon3 * dLon3

	return GridCoord{
		Easting:  gridOriginE + IV*dLon + V*dLon3 + VI*dLon5,
		Northing: I + II*dLon2 + III*dLon4 + IIIA*dLon6,
	}
}

// GridEastNorthToLatLon converts a national grid position back to an
// OSGB36 geodetic position.
//
// The meridional-arc latitude is refined iteratively to within 0.01 mm
// before the inverse series terms are applied. ErrConvergence reports a
// refinement that has not settled within its iteration bound, which does
// not happen for coordinates anywhere near the grid.
func GridEastNorthToLatLon(gc GridCoord) (s2.LatLng, error) {
	airy := ellipsoids[Airy1830]
	a := airy.SemiMajor
	e2 := Eccentricity1(a, airy.SemiMinor)

	lat := (gc.Northing-gridOriginN)/(a*gridScaleF0) + gridOriginLat
	m := meridionalArc(lat)
	for i := 0; math.Abs(gc.Northing-gridOriginN-m) >= 1e-5; i++ {
		if i == maxArcIterations {
			return s2.LatLng{}, errors.Wrapf(ErrConvergence,
				"meridional arc after %d iterations", maxArcIterations)
		}
		lat += (gc.Northing - gridOriginN - m) / (a * gridScaleF0)
		m = meridionalArc(lat)
	}

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	tanLat := math.Tan(lat)
	secLat := 1 / cosLat

	v := a * gridScaleF0 / math.Sqrt(1-e2*sinLat*sinLat)
	rho := a * gridScaleF0 * (1 - e2) * math.Pow(1-e2*sinLat*sinLat, -1.5)
	eta2 := v/rho - 1

	tan2 := tanLat * tanLat
	tan4 := tan2 * tan2
	tan6 := tan4 * tan2
	v3 := v * v * v
	v5 := v3 * v * v
	v7 := v5 * v * v

	VII := tanLat / (2 * rho * v)
	VIII := tanLat / (24 * rho * v3) * (5 + 3*tan2 + eta2 - 9*tan2*eta2)
	IX := tanLat / (720 * rho * v5) * (61 + 90*tan2 + 45*tan4)
	X := secLat / v
	XI := secLat / (6 * v3) * (v/rho + 2*tan2)
	XII := secLat / (120 * v5) * (5 + 28*tan2 + 24*tan4)
	XIIA := secLat / (5040 * v7) * (61 + 662*tan2 + 1320*tan4 + 720*tan6)

	dE := gc.Easting - gridOriginE
	dE2 := dE * dE
	dE3 := dE2 * dE
	dE4 := dE2 * dE2
	dE5 := dE4 * dE
	dE6 := dE3 * dE3
	dE7 := dE6 * dE

	return s2.LatLng{
		Lat: s1.Angle(lat - VII*dE2 + VIII*dE4 - IX*dE6),
		Lng: s1.Angle(gridOriginLon + X*dE - XI*dE3 + XII*dE5 - XIIA*dE7),
	}, nil
}

// GridRef formats the coordinate as a national grid reference such as
// "TG 51409 13177": the 100 km square letter pair, then easting and
// northing digit groups. digits is the total digit count across both
// groups, even and between 2 and 10; 10 gives 1 m resolution. Coordinates
// outside the lettered grid extent fail with ErrOutOfRange.
func (gc GridCoord) GridRef(digits int) (string, error) {
	if digits%2 != 0 || digits < 2 || digits > 10 {
		return "", errors.Wrapf(ErrOutOfRange, "grid reference digits %d", digits)
	}
	if gc.Easting < 0 || gc.Easting >= gridMaxEasting ||
		gc.Northing < 0 || gc.Northing >= gridMaxNorthing {
		return "", errors.Wrapf(ErrOutOfRange,
			"(%.0f, %.0f) outside the lettered grid", gc.Easting, gc.Northing)
	}

	e100km := int(gc.Easting / 100000)
	n100km := int(gc.Northing / 100000)

	l1 := (19 - n100km) - (19-n100km)%5 + (e100km+10)/5
	l2 := ((19-n100km)*5)%25 + e100km%5

	// The letter I is skipped.
	if l1 > 7 {
		l1++
	}
	if l2 > 7 {
		l2++
	}
	letters := string([]byte{'A' + byte(l1), 'A' + byte(l2)})

	width := digits / 2
	scale := math.Pow(10, float64(5-width))
	e := int(math.Mod(gc.Easting, 100000) / scale)
	n := int(math.Mod(gc.Northing, 100000) / scale)

	return fmt.Sprintf("%s %0*d %0*d", letters, width, e, width, n), nil
}

// meridionalArc returns the developed meridian arc length from the true
// origin latitude to lat on the Airy ellipsoid, scaled by the
// central-meridian factor.
func meridionalArc(lat float64) float64 {
	airy := ellipsoids[Airy1830]
	a, b := airy.SemiMajor, airy.SemiMinor

	n := (a - b) / (a + b)
	n2 := n * n
	n3 := n2 * n

	dLat := lat - gridOriginLat
	sLat := lat + gridOriginLat

	m1 := (1 + n + (5.0/4.0)*n2 + (5.0/4.0)*n3) * dLat
	m2 := (3*n + 3*n2 + (21.0/8.0)*n3) * math.Sin(dLat) * math.Cos(sLat)
	m3 := ((15.0/8.0)*n2+(15.0/8.0)*n3)*math.Sin(2*dLat)*math.Cos(2*sLat) -
		(35.0/24.0)*n3*math.Sin(3*dLat)*math.Cos(3*sLat)

	return b * gridScaleF0 * (m1 - m2 + m3)
}
