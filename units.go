package chuck

import "math"

// Lengths are stored in meters, angles in radians and forces in newtons.
// Literals authored in other units are converted once when the model is built.

const (
	pi        = math.Pi
	tolerance = 1e-9
)

// Meters returns a length in meters.
func Meters(v float64) float64 { return v }

// Millimeters converts millimeters to meters.
func Millimeters(v float64) float64 { return v * 1e-3 }

// Centimeters converts centimeters to meters.
func Centimeters(v float64) float64 { return v * 1e-2 }

// Radians returns an angle in radians.
func Radians(v float64) float64 { return v }

// Degrees converts degrees to radians.
func Degrees(v float64) float64 { return (pi / 180) * v }

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 { return (180 / pi) * radians }

// Newtons returns a force in newtons.
func Newtons(v float64) float64 { return v }

// NormalizeDegrees maps an angle in degrees to [0, 360).
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		// -tiny + 360 rounds up to 360.
		d = 0
	}
	return d
}
