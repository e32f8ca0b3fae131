package gis

import "math"

// Approximate WGS84 to OSGB36/ODN transform parameters, from section 6.6
// of "A guide to coordinate systems in Great Britain" (v2.3). The single
// national set is quoted at about 5 m accuracy.
const (
	helmertTx = -446.448 // m
	helmertTy = 125.157  // m
	helmertTz = -542.060 // m

	helmertS = 20.4894 // ppm

	helmertRx = -0.1502 // arcsec
	helmertRy = -0.2470 // arcsec
	helmertRz = -0.8421 // arcsec
)

// HelmertTransform shifts an ECEF position from the WGS84 datum to
// OSGB36/ODN by the fixed 7-parameter similarity transform (three
// translations, one scale, three rotations). Rotations are small enough
// that the linearized form is used.
func HelmertTransform(c Cartesian) Cartesian {
	rx := (helmertRx / (3600 * 180)) * math.Pi
	ry := (helmertRy / (3600 * 180)) * math.Pi
	rz := (helmertRz / (3600 * 180)) * math.Pi
	s := 1 + helmertS*1e-6

	return Cartesian{
		X: helmertTx + s*(c.X-rz*c.Y+ry*c.Z),
		Y: helmertTy + s*(rz*c.X+c.Y-rx*c.Z),
		Z: helmertTz + s*(-ry*c.X+rx*c.Y+c.Z),
	}
}
