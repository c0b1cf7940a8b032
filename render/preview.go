package render

import (
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/turninig/chuck/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera of a preview image. Positions are given for
// the model scaled into the bi-unit cube.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eye       r3.Vec
	Near, Far float64
	// Output size in pixels.
	Width, Height int
	// Supersample renders at this multiple of the output size and
	// downsamples for antialiasing. Values below 1 are taken as 1.
	Supersample int
}

// DefaultView is an isometric view of the fixture.
var DefaultView = View{
	Up:          r3.Vec{Z: 1},
	Eye:         d3.Elem(2.4),
	Near:        1,
	Far:         10,
	Width:       768,
	Height:      432,
	Supersample: 2,
}

// STLToPNG renders a shaded image of an STL file.
func STLToPNG(stlName, pngName string, view View) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const fovy = 30 // vertical field of view in degrees
	scale := view.Supersample
	if scale < 1 {
		scale = 1
	}
	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#8C9AA6") // steel grey
	)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	image := context.Image()
	if scale > 1 {
		image = resize.Resize(uint(view.Width), uint(view.Height), image, resize.Bilinear)
	}
	return fauxgl.SavePNG(pngName, image)
}
