package chuck

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Polar is a point in the plane given by its distance to the origin
// and its angle to the X axis in degrees.
type Polar struct {
	R   float64
	Deg float64
}

// CartesianToPolar returns the radius and angle in degrees of (x, y).
// The angle lies in (-180, 180].
func CartesianToPolar(x, y float64) (radius, angle float64) {
	if !finite(x, y) {
		precondition("non-finite coordinate")
	}
	angle = ToDegrees(math.Atan2(y, x))
	if angle == -180 {
		angle = 180
	}
	return math.Hypot(x, y), angle
}

// PolarToCartesian is the inverse of CartesianToPolar.
func PolarToCartesian(radius, angle float64) (x, y float64) {
	if !finite(radius, angle) {
		precondition("non-finite polar coordinate")
	}
	sin, cos := math.Sincos(Degrees(angle))
	return radius * cos, radius * sin
}

// ToPolar converts a vector to polar form.
func ToPolar(v r2.Vec) Polar {
	r, deg := CartesianToPolar(v.X, v.Y)
	return Polar{R: r, Deg: deg}
}

// Vec returns the cartesian form of p.
func (p Polar) Vec() r2.Vec {
	x, y := PolarToCartesian(p.R, p.Deg)
	return r2.Vec{X: x, Y: y}
}

// ProjectRadial moves p along its polar angle about the Z axis onto
// the cylinder of the given radius. The Z component is kept.
// Points on the Z axis are projected along +X.
func ProjectRadial(p r3.Vec, radius float64) r3.Vec {
	if radius < 0 {
		precondition("negative radius")
	}
	_, phi := CartesianToPolar(p.X, p.Y)
	x, y := PolarToCartesian(radius, phi)
	return r3.Vec{X: x, Y: y, Z: p.Z}
}
