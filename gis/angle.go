package gis

import "math"

// AngleUnit selects the unit of angular inputs.
type AngleUnit int

const (
	// Degrees marks angles given in decimal degrees.
	Degrees AngleUnit = iota
	// Radians marks angles given in radians.
	Radians
)

// Axis distinguishes latitude from longitude where the two follow
// different formatting conventions.
type Axis int

const (
	// Latitude formats with 2-digit degrees and N/S hemispheres.
	Latitude Axis = iota + 1
	// Longitude formats with 3-digit degrees and E/W hemispheres.
	Longitude
)

// DegToRad converts decimal degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// RadToDeg converts radians to decimal degrees.
func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// ConvertAngle converts a longitude-style angle between the signed
// (-180..180) and unsigned (0..360) conventions. The zero point does not
// move, so the conversion is a single full-rotation shift: a signed
// result subtracts 360 from inputs of 180 or more, an unsigned result
// adds 360 to negative inputs, and anything else passes through.
// Applying the same target signedness twice is a no-op.
func ConvertAngle(angle float64, signed bool) float64 {
	if signed && angle >= 180 {
		return angle - 360
	}
	if !signed && angle < 0 {
		return angle + 360
	}
	return angle
}

// Cos5 returns cos(x) to the fifth power.
func Cos5(x float64) float64 {
	c := math.Cos(x)
	return c * c * c * c * c
}

// Tan2 returns tan(x) squared.
func Tan2(x float64) float64 {
	t := math.Tan(x)
	return t * t
}

// Tan4 returns tan(x) to the fourth power.
func Tan4(x float64) float64 {
	t := math.Tan(x)
	return t * t * t * t
}
