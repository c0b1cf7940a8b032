package chuck

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Principal axes.
var (
	OX = r3.Vec{X: 1}
	OY = r3.Vec{Y: 1}
	OZ = r3.Vec{Z: 1}
)

// RotationMatrix returns the matrix of a counter-clockwise rotation by theta
// radians about axis following the right-hand rule. axis need not be
// normalized but must be non-zero.
func RotationMatrix(axis r3.Vec, theta float64) *r3.Mat {
	if !finiteVec(axis) || !finite(theta) {
		precondition("non-finite rotation argument")
	}
	n := r3.Norm(axis)
	if n == 0 {
		precondition("zero length rotation axis")
	}
	axis = r3.Scale(1/n, axis)
	// Euler-Rodrigues parameters.
	sin, a := math.Sincos(theta / 2)
	b, c, d := -axis.X*sin, -axis.Y*sin, -axis.Z*sin
	aa, bb, cc, dd := a*a, b*b, c*c, d*d
	bc, ad, ac, ab, bd, cd := b*c, a*d, a*c, a*b, b*d, c*d
	return r3.NewMat([]float64{
		aa + bb - cc - dd, 2 * (bc + ad), 2 * (bd - ac),
		2 * (bc - ad), aa + cc - bb - dd, 2 * (cd + ab),
		2 * (bd + ac), 2 * (cd - ab), aa + dd - bb - cc,
	})
}

// RotatePoint rotates p counter-clockwise by theta radians about an axis
// through the origin.
func RotatePoint(p, axis r3.Vec, theta float64) r3.Vec {
	if !finiteVec(p) {
		precondition("non-finite point")
	}
	return RotationMatrix(axis, theta).MulVec(p)
}
