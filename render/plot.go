package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/turninig/chuck"
	"github.com/turninig/chuck/fixture"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const mmPerMeter = 1e3

var (
	workpieceColor = color.RGBA{R: 70, G: 110, B: 160, A: 255}
	jawColor       = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	contactColor   = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	supportColor   = color.RGBA{R: 40, G: 150, B: 60, A: 255}
	loadColor      = color.RGBA{R: 230, G: 140, B: 0, A: 255}
)

// PlacementPlot draws a top view of the fixture in millimeters: the
// workpiece section, every jaw footprint and the anchor points used to
// locate faces. The format follows the file extension (png, svg, pdf).
func PlacementPlot(m *fixture.Model, path string) error {
	p, err := placementPlot(m)
	if err != nil {
		return err
	}
	const size = 6 * vg.Inch
	return p.Save(size, size, path)
}

func placementPlot(m *fixture.Model) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %d jaws, top view", m.Name, len(m.Jaws))
	p.X.Label.Text = "x [mm]"
	p.Y.Label.Text = "y [mm]"
	p.Add(plotter.NewGrid())

	for _, r := range []float64{m.Workpiece.Outer, m.Workpiece.Inner} {
		l, err := plotter.NewLine(circle(r*mmPerMeter, 180))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = workpieceColor
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
	}

	// Jaw footprint in the part frame, walked around its bottom face.
	L, W := m.Jaw.Length, m.Jaw.Width
	footprint := []r3.Vec{
		{X: -L / 2}, {X: L / 2}, {X: L / 2, Z: W}, {X: -L / 2, Z: W}, {X: -L / 2},
	}
	var (
		contacts, supports, loads plotter.XYs
		labels                    plotter.XYLabels
	)
	for _, j := range m.Jaws {
		outline := make(plotter.XYs, len(footprint))
		for i, v := range footprint {
			outline[i] = xy(m.JawToAssembly(v, j.Offset))
		}
		l, err := plotter.NewLine(outline)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = jawColor
		p.Add(l)
		for _, a := range j.Master.Anchors {
			contacts = append(contacts, xy(a))
		}
		for _, a := range j.Support.Anchors {
			supports = append(supports, xy(a))
		}
		loads = append(loads, xy(j.Load.Vertex))
		labels.XYs = append(labels.XYs, xy(r3.Scale(1.15, j.Load.Vertex)))
		labels.Labels = append(labels.Labels, fmt.Sprintf("%s (%g°)", j.Name, chuck.NormalizeDegrees(j.Offset)))
	}
	for _, group := range []struct {
		name  string
		pts   plotter.XYs
		color color.Color
		shape draw.GlyphDrawer
	}{
		{"contact", contacts, contactColor, draw.CircleGlyph{}},
		{"support", supports, supportColor, draw.BoxGlyph{}},
		{"load", loads, loadColor, draw.TriangleGlyph{}},
	} {
		s, err := plotter.NewScatter(group.pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = group.color
		s.GlyphStyle.Shape = group.shape
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(group.name, s)
	}
	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(lbl)

	// Equal axes so the workpiece stays round.
	b := m.Bounds()
	extent := 1.3 * mmPerMeter * math.Max(
		math.Max(math.Abs(b.Min.X), math.Abs(b.Max.X)),
		math.Max(math.Abs(b.Min.Y), math.Abs(b.Max.Y)),
	)
	p.X.Min, p.X.Max = -extent, extent
	p.Y.Min, p.Y.Max = -extent, extent
	return p, nil
}

func xy(v r3.Vec) plotter.XY {
	return plotter.XY{X: v.X * mmPerMeter, Y: v.Y * mmPerMeter}
}

func circle(radius float64, n int) plotter.XYs {
	pts := make(plotter.XYs, n+1)
	for i := range pts {
		x, y := chuck.PolarToCartesian(radius, 360*float64(i)/float64(n))
		pts[i] = plotter.XY{X: x, Y: y}
	}
	return pts
}
