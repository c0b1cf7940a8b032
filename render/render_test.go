package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	"github.com/hschendel/stl"
	"github.com/turninig/chuck/fixture"
	"gonum.org/v1/gonum/spatial/r3"
)

func v3(x, y, z float64) sdf.V3 { return sdf.V3{X: x, Y: y, Z: z} }

func defaultModel(t testing.TB) *fixture.Model {
	m, err := fixture.NewModel(fixture.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestInspect(t *testing.T) {
	solid := &stl.Solid{
		Name: "probe",
		Triangles: []stl.Triangle{
			{Vertices: [3]stl.Vec3{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}},
			{Vertices: [3]stl.Vec3{{-3, -4, 1}, {0, 2, 0}, {0, 0, 3}}},
		},
	}
	ms, err := Inspect(solid)
	if err != nil {
		t.Fatal(err)
	}
	if ms.Triangles != 2 {
		t.Errorf("got %d triangles", ms.Triangles)
	}
	if ms.Min != (stl.Vec3{-3, -4, 0}) || ms.Max != (stl.Vec3{1, 2, 3}) {
		t.Errorf("bounds %v %v", ms.Min, ms.Max)
	}
	if ms.RMin != 0 || ms.RMax != 5 {
		t.Errorf("radial extent [%v, %v], want [0, 5]", ms.RMin, ms.RMax)
	}
	if ms.Size() != (stl.Vec3{4, 6, 3}) {
		t.Errorf("size %v", ms.Size())
	}
	if _, err := Inspect(&stl.Solid{}); err == nil {
		t.Error("expected error for empty solid")
	}
}

func TestInspectSTLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.stl")
	solid := &stl.Solid{Triangles: []stl.Triangle{
		{Normal: stl.Vec3{0, 0, 1}, Vertices: [3]stl.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}},
	}}
	if err := solid.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	ms, err := InspectSTL(path)
	if err != nil {
		t.Fatal(err)
	}
	if ms.Triangles != 1 || ms.RMax != 1 {
		t.Errorf("unexpected stats %+v", ms)
	}
	if _, err := InspectSTL(filepath.Join(t.TempDir(), "missing.stl")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPlacementPlot(t *testing.T) {
	m := defaultModel(t)
	for _, ext := range []string{".png", ".svg"} {
		path := filepath.Join(t.TempDir(), "placement"+ext)
		if err := PlacementPlot(m, path); err != nil {
			t.Fatal(err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}

func TestCircle(t *testing.T) {
	pts := circle(2, 8)
	if len(pts) != 9 {
		t.Fatalf("got %d points", len(pts))
	}
	for _, p := range pts {
		if r := math.Hypot(p.X, p.Y); math.Abs(r-2) > 1e-12 {
			t.Errorf("point %v off circle", p)
		}
	}
	if math.Hypot(pts[0].X-pts[8].X, pts[0].Y-pts[8].Y) > 1e-12 {
		t.Error("circle not closed")
	}
}

func TestSolid(t *testing.T) {
	m := defaultModel(t)
	s, err := Solid(m)
	if err != nil {
		t.Fatal(err)
	}
	wp := m.Workpiece
	mid := (wp.Inner + wp.Outer) / 2
	// Inside the tube wall, in the bore and inside every jaw.
	if d := s.Evaluate(v3(mid, 0, wp.Length/2)); d >= 0 {
		t.Errorf("tube wall evaluates to %g", d)
	}
	if d := s.Evaluate(v3(0, 0, wp.Length/2)); d <= 0 {
		t.Errorf("bore evaluates to %g", d)
	}
	for _, j := range m.Jaws {
		c := m.JawToAssembly(r3.Vec{Z: m.Jaw.Width / 2}, j.Offset)
		if d := s.Evaluate(v3(c.X, c.Y, c.Z)); d >= 0 {
			t.Errorf("%s centre evaluates to %g", j.Name, d)
		}
	}
	if _, err := Solid(nil); err == nil {
		t.Error("expected error for nil model")
	}
}

func TestCreateSTL(t *testing.T) {
	if testing.Short() {
		t.Skip("marching cubes render is slow")
	}
	m := defaultModel(t)
	dir := t.TempDir()
	stlPath := filepath.Join(dir, "fixture.stl")
	const cells = 200
	if err := CreateSTL(stlPath, m, cells); err != nil {
		t.Fatal(err)
	}
	ms, err := InspectSTL(stlPath)
	if err != nil {
		t.Fatal(err)
	}
	// Outermost jaw corners.
	wantR := math.Hypot(m.Jaw.Length/2, m.Workpiece.Outer+m.Jaw.Width)
	cell := float32(1.01 * 2 * wantR / cells)
	if math.Abs(float64(ms.RMax)-wantR) > float64(2*cell) {
		t.Errorf("radial extent %v, want %v", ms.RMax, wantR)
	}
	pngPath := filepath.Join(dir, "fixture.png")
	view := DefaultView
	view.Width, view.Height = 160, 90
	if err := STLToPNG(stlPath, pngPath, view); err != nil {
		t.Fatal(err)
	}
	if err := CreateSTL(stlPath, m, 1); err == nil {
		t.Error("expected error for too few cells")
	}
}
