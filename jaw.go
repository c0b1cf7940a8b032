package chuck

import "gonum.org/v1/gonum/spatial/r3"

// JawAngularOffset returns the angular offset in degrees of the jaw with
// 1-based index among jawCount evenly spaced jaws. The first jaw sits at 0
// and the rest follow clockwise, matching a radial pattern with a total
// angle of -360 degrees.
func JawAngularOffset(index, jawCount int) float64 {
	if jawCount <= 0 {
		precondition("non-positive jaw count")
	}
	if index < 1 || index > jawCount {
		precondition("jaw index out of range")
	}
	return 360 / float64(jawCount) * float64(1-index)
}

// JawAnchorPoints rotates the template points, defined in the frame of the
// unrotated first jaw, by offset degrees about axis.
func JawAnchorPoints(template []r3.Vec, offset float64, axis r3.Vec) []r3.Vec {
	m := RotationMatrix(axis, Degrees(offset))
	placed := make([]r3.Vec, len(template))
	for i, p := range template {
		if !finiteVec(p) {
			precondition("non-finite template point")
		}
		placed[i] = m.MulVec(p)
	}
	return placed
}

// JawPlacement locates one jaw of a radial pattern.
type JawPlacement struct {
	// Index is 1-based.
	Index int
	// Offset is the angular offset in degrees.
	Offset float64
	// Anchors are the template points rotated into place, in template order.
	Anchors []r3.Vec
}

// PlaceJaws computes the placement of every jaw of an evenly spaced pattern.
// Placements are independent of each other.
func PlaceJaws(template []r3.Vec, jawCount int, axis r3.Vec) []JawPlacement {
	if jawCount <= 0 {
		precondition("non-positive jaw count")
	}
	placements := make([]JawPlacement, jawCount)
	for i := range placements {
		offset := JawAngularOffset(i+1, jawCount)
		placements[i] = JawPlacement{
			Index:   i + 1,
			Offset:  offset,
			Anchors: JawAnchorPoints(template, offset, axis),
		}
	}
	return placements
}
