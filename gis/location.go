package gis

import "github.com/golang/geo/s2"

// Location bundles one coordinate pair with a display name and the
// signedness convention the stored values use. Accessors convert between
// conventions on the way out, so a Location loaded from unsigned data
// still hands back ISO 6709 signed values when asked.
type Location struct {
	Name                 string
	ReferenceEllipsoid   EllipsoidID
	lat, lon             float64
	latSigned, lonSigned bool
}

// NewLocation returns a Location holding a signed-convention coordinate
// pair, referenced to WGS84.
func NewLocation(lat, lon float64) *Location {
	return &Location{
		ReferenceEllipsoid: WGS84,
		lat:                lat,
		lon:                lon,
		latSigned:          true,
		lonSigned:          true,
	}
}

// SetName sets the display name.
func (l *Location) SetName(name string) {
	l.Name = name
}

// SetLatLon replaces the stored coordinate pair, recording whether each
// value follows the signed or unsigned convention.
func (l *Location) SetLatLon(lat, lon float64, latSigned, lonSigned bool) {
	l.lat = lat
	l.lon = lon
	l.latSigned = latSigned
	l.lonSigned = lonSigned
}

// Lat returns the latitude in the requested convention. Signed latitudes
// run 90 to -90; the unsigned form runs 180 to 0 with zero on the south
// pole, so converting shifts the value by 90 degrees.
func (l *Location) Lat(signed bool) float64 {
	if signed {
		if l.latSigned {
			return l.lat
		}
		return l.lat - 90
	}
	if l.latSigned {
		return l.lat + 90
	}
	return l.lat
}

// Lon returns the longitude in the requested convention. The zero point
// is shared by both conventions, so the conversion is a full-rotation
// shift regardless of how the value was stored.
func (l *Location) Lon(signed bool) float64 {
	return ConvertAngle(l.lon, signed)
}

// LatLon returns both coordinates in the requested convention.
func (l *Location) LatLon(signed bool) (float64, float64) {
	return l.Lat(signed), l.Lon(signed)
}

// LatLng returns the signed coordinate pair as an s2.LatLng.
func (l *Location) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(l.Lat(true), l.Lon(true))
}
