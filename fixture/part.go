package fixture

import (
	"fmt"
	"math"

	"github.com/turninig/chuck"
	"github.com/turninig/chuck/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is a cutting plane given by three points, the form the host's
// partition by three points command takes.
type Plane struct {
	Points [3]r3.Vec
}

// Normal returns the unit normal of the plane. It is the zero vector
// when the three points are collinear.
func (pl Plane) Normal() r3.Vec {
	n := r3.Cross(r3.Sub(pl.Points[1], pl.Points[0]), r3.Sub(pl.Points[2], pl.Points[0]))
	l := r3.Norm(n)
	if l < 1e-12 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// coincident reports whether pl and other describe the same plane.
func (pl Plane) coincident(other Plane) bool {
	n, m := pl.Normal(), other.Normal()
	if r3.Norm(r3.Cross(n, m)) > 1e-9 {
		return false
	}
	return math.Abs(r3.Dot(n, r3.Sub(other.Points[0], pl.Points[0]))) < 1e-9
}

// PartitionResult is the outcome of one attempted cell partition.
type PartitionResult struct {
	Index int
	Plane Plane
	// Redundant is set when the plane coincides with an earlier one and
	// therefore cuts nothing. The host rejects such partitions.
	Redundant bool
}

// partition turns candidate planes into results. Collinear definition
// points are an error, repeated planes are marked redundant.
func partition(planes []Plane) ([]PartitionResult, error) {
	results := make([]PartitionResult, len(planes))
	for i, pl := range planes {
		if pl.Normal() == (r3.Vec{}) {
			return nil, fmt.Errorf("partition %d: plane points are collinear", i)
		}
		results[i] = PartitionResult{Index: i, Plane: pl}
		for _, prev := range results[:i] {
			if !prev.Redundant && prev.Plane.coincident(pl) {
				results[i].Redundant = true
				break
			}
		}
	}
	return results, nil
}

// Workpiece is the thin-walled tube being clamped. Its axis is Z and it
// spans z in [0, Length].
type Workpiece struct {
	Name       string
	Length     float64
	Inner      float64
	Outer      float64
	Partitions int
	Section    Section
	Mesh       MeshControls
}

// Partition returns the cutting planes through the workpiece axis, one
// every 360/Partitions degrees.
func (w Workpiece) Partition() ([]PartitionResult, error) {
	planes := make([]Plane, w.Partitions)
	for p := range planes {
		angle := float64(p) * 360 / float64(w.Partitions)
		planes[p] = Plane{Points: [3]r3.Vec{
			{},
			chuck.OZ,
			chuck.RotatePoint(chuck.OY, chuck.OZ, chuck.Degrees(angle)),
		}}
	}
	return partition(planes)
}

// Volume returns the material volume of the tube.
func (w Workpiece) Volume() float64 {
	return math.Pi * (w.Outer*w.Outer - w.Inner*w.Inner) * w.Length
}

// Jaw is a rectangular clamping jaw. In its part frame it spans
// x in ±Length/2, y in ±Height/2 and z in [0, Width].
type Jaw struct {
	Name    string
	Length  float64
	Width   float64
	Height  float64
	Section Section
	Mesh    MeshControls
}

// Partition splits the jaw in four through its mid planes y=0 and x=0 so
// that contact, support and load regions can be picked individually.
func (j Jaw) Partition() ([]PartitionResult, error) {
	return partition([]Plane{
		{Points: [3]r3.Vec{{}, chuck.OX, chuck.OZ}},
		{Points: [3]r3.Vec{{}, chuck.OY, chuck.OZ}},
	})
}

// Bounds returns the jaw's part frame bounding box.
func (j Jaw) Bounds() d3.Box {
	return d3.Box{
		Min: r3.Vec{X: -j.Length / 2, Y: -j.Height / 2},
		Max: r3.Vec{X: j.Length / 2, Y: j.Height / 2, Z: j.Width},
	}
}
