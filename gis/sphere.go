// Great-circle routines on a spherical earth, from the latitude/longitude
// formulas at www.movable-type.co.uk/scripts/latlong.html.

package gis

import "math"

// earthRadius is the WGS84 equatorial radius (meters). The spherical
// routines below treat the earth as a globe of this radius; there is no
// single correct sphere for an ellipsoidal earth, so their results carry
// the usual great-circle approximation error.
const earthRadius = 6378137.0

// DistanceBetween returns the great-circle distance between two points.
//
// Param lat1, lon1 are the coordinates of point 1.
// Param lat2, lon2 are the coordinates of point 2.
// Param unit is the angular unit of all four coordinates.
//
// The distance is in meters, by the haversine formula on the earthRadius
// sphere. Expect around 0.1-0.3% deviation from ellipsoidal figures.
func DistanceBetween(lat1, lon1, lat2, lon2 float64, unit AngleUnit) float64 {
	if unit == Degrees {
		lat1 = DegToRad(lat1)
		lon1 = DegToRad(lon1)
		lat2 = DegToRad(lat2)
		lon2 = DegToRad(lon2)
	}
	Δφ := lat2 - lat1
	Δλ := lon2 - lon1
	sΔφ2 := math.Sin(Δφ / 2)
	sΔλ2 := math.Sin(Δλ / 2)
	a := sΔφ2*sΔφ2 + math.Cos(lat1)*math.Cos(lat2)*sΔλ2*sΔλ2
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}

// BearingBetween returns the initial bearing from point 1 to point 2.
//
// Param lat1, lon1 are the coordinates of point 1.
// Param lat2, lon2 are the coordinates of point 2.
// Param unit is the angular unit of all four coordinates.
//
// The bearing is measured clockwise from north and returned in decimal
// degrees in the range (-180,180], whatever the input unit.
func BearingBetween(lat1, lon1, lat2, lon2 float64, unit AngleUnit) float64 {
	if unit == Degrees {
		lat1 = DegToRad(lat1)
		lon1 = DegToRad(lon1)
		lat2 = DegToRad(lat2)
		lon2 = DegToRad(lon2)
	}
	Δλ := lon2 - lon1
	y := math.Sin(Δλ) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(Δλ)
	return RadToDeg(math.Atan2(y, x))
}

// Extrapolate projects a start point along an initial bearing for a given
// distance and returns the destination.
//
// Param lat, lon is the start point.
// Param bearing is the initial bearing, clockwise from north.
// Param distance is how far to travel (meters).
// Param unit is the angular unit of lat, lon, and bearing.
//
// The destination is returned in decimal degrees whatever the input unit.
// The longitude is not renormalized, so a zero distance returns the start
// point unchanged.
func Extrapolate(lat, lon, bearing, distance float64, unit AngleUnit) (lat2, lon2 float64) {
	δ := distance / earthRadius
	if unit == Degrees {
		lat = DegToRad(lat)
		lon = DegToRad(lon)
		bearing = DegToRad(bearing)
	}
	φ2 := math.Asin(math.Sin(lat)*math.Cos(δ) +
		math.Cos(lat)*math.Sin(δ)*math.Cos(bearing))
	λ2 := lon + math.Atan2(
		math.Sin(bearing)*math.Sin(δ)*math.Cos(lat),
		math.Cos(δ)-math.Sin(lat)*math.Sin(φ2))
	return RadToDeg(φ2), RadToDeg(λ2)
}
