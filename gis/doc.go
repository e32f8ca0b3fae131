// Package gis converts between geodetic representations: latitude and
// longitude in decimal degrees or degrees-minutes-seconds, Earth-Centered
// Earth-Fixed Cartesian coordinates, OSGB36 national grid eastings and
// northings, and geoid heights interpolated from a gridded model.
//
// Angular conventions follow ISO 6709: signed latitudes run -90..90 and
// signed longitudes -180..180. The unsigned forms shift latitude's zero to
// the south pole (0..180) and wrap longitude to 0..360.
package gis
