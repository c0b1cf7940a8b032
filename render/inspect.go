package render

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/hschendel/stl"
)

// MeshStats summarizes a triangle mesh of the fixture.
type MeshStats struct {
	Triangles int
	Min, Max  stl.Vec3
	// Radial extent of the vertices about the Z axis.
	RMin, RMax float32
}

// InspectSTL reads an ASCII or binary STL file and summarizes it.
func InspectSTL(path string) (MeshStats, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return MeshStats{}, err
	}
	return Inspect(solid)
}

// Inspect summarizes the triangles of solid.
func Inspect(solid *stl.Solid) (MeshStats, error) {
	if solid == nil || len(solid.Triangles) == 0 {
		return MeshStats{}, errors.New("solid has no triangles")
	}
	ms := MeshStats{
		Triangles: len(solid.Triangles),
		RMin:      math32.Inf(1),
		RMax:      math32.Inf(-1),
	}
	for i := range ms.Min {
		ms.Min[i] = math32.Inf(1)
		ms.Max[i] = math32.Inf(-1)
	}
	for _, t := range solid.Triangles {
		for _, v := range t.Vertices {
			for i := range v {
				ms.Min[i] = math32.Min(ms.Min[i], v[i])
				ms.Max[i] = math32.Max(ms.Max[i], v[i])
			}
			r := math32.Hypot(v[0], v[1])
			ms.RMin = math32.Min(ms.RMin, r)
			ms.RMax = math32.Max(ms.RMax, r)
		}
	}
	return ms, nil
}

// Size returns the extent of the mesh along each axis.
func (ms MeshStats) Size() stl.Vec3 {
	return stl.Vec3{ms.Max[0] - ms.Min[0], ms.Max[1] - ms.Min[1], ms.Max[2] - ms.Min[2]}
}
