package render

import (
	"errors"
	"fmt"
	"os"

	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"github.com/turninig/chuck"
	"github.com/turninig/chuck/fixture"
)

// Solid returns the signed distance function of the assembled fixture:
// the workpiece tube standing on the XY plane and every jaw of the pattern.
func Solid(m *fixture.Model) (sdf.SDF3, error) {
	if m == nil {
		return nil, errors.New("nil model")
	}
	wp := m.Workpiece
	outer, err := sdf.Cylinder3D(wp.Length, wp.Outer, 0)
	if err != nil {
		return nil, fmt.Errorf("workpiece: %w", err)
	}
	// The bore is longer than the tube so it cuts through both ends.
	bore, err := sdf.Cylinder3D(1.1*wp.Length, wp.Inner, 0)
	if err != nil {
		return nil, fmt.Errorf("workpiece bore: %w", err)
	}
	tube := sdf.Transform3D(sdf.Difference3D(outer, bore), sdf.Translate3d(sdf.V3{Z: wp.Length / 2}))

	jaw := m.Jaw
	box, err := sdf.Box3D(sdf.V3{X: jaw.Length, Y: jaw.Width, Z: jaw.Height}, 0)
	if err != nil {
		return nil, fmt.Errorf("jaw: %w", err)
	}
	// Seat the first jaw on the workpiece surface, the others follow by rotation.
	seat := sdf.Translate3d(sdf.V3{Y: wp.Outer + jaw.Width/2, Z: jaw.Height / 2})
	solids := []sdf.SDF3{tube}
	for _, j := range m.Jaws {
		solids = append(solids, sdf.Transform3D(box, sdf.RotateZ(chuck.Degrees(j.Offset)).Mul(seat)))
	}
	return sdf.Union3D(solids...), nil
}

// CreateSTL renders the fixture as an STL file using marching cubes over an
// octree with meshCells cells along the longest side of the model.
func CreateSTL(path string, m *fixture.Model, meshCells int) error {
	if meshCells < 2 {
		return errors.New("meshCells must be 2 or larger")
	}
	s, err := Solid(m)
	if err != nil {
		return err
	}
	// sdfx reports write errors on stdout only, so check the result ourselves.
	os.Remove(path)
	sdfxrender.ToSTL(s, meshCells, path, &sdfxrender.MarchingCubesOctree{})
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stl not written: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("empty stl file %s", path)
	}
	return nil
}
