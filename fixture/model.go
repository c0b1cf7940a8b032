package fixture

import (
	"fmt"
	"runtime/debug"

	"github.com/turninig/chuck"
	"github.com/turninig/chuck/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// InitialStep is the name of the host's base step, present in every model.
const InitialStep = "Initial"

// DOF is a nodal degree of freedom.
type DOF int

const (
	U1 DOF = iota + 1
	U2
	U3
	UR1
	UR2
	UR3
)

func (d DOF) String() string {
	switch d {
	case U1, U2, U3:
		return fmt.Sprintf("u%d", int(d))
	case UR1, UR2, UR3:
		return fmt.Sprintf("ur%d", int(d-U3))
	}
	return fmt.Sprintf("DOF(%d)", int(d))
}

// CSYS is a cartesian datum coordinate system defined by three points:
// its origin, a point on its X axis and a point in its XY plane.
type CSYS struct {
	Name                   string
	Origin, Point1, Point2 r3.Vec
	// Orthonormal axes derived from the points.
	X, Y, Z r3.Vec
}

func newCSYS(name string, origin, point1, point2 r3.Vec) CSYS {
	x := r3.Unit(r3.Sub(point1, origin))
	v := r3.Sub(point2, origin)
	y := r3.Unit(r3.Sub(v, r3.Scale(r3.Dot(x, v), x)))
	return CSYS{
		Name:   name,
		Origin: origin,
		Point1: point1,
		Point2: point2,
		X:      x,
		Y:      y,
		Z:      r3.Cross(x, y),
	}
}

// Global returns the global components of a direction given in c.
func (c CSYS) Global(local r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(local.X, c.X), r3.Scale(local.Y, c.Y)), r3.Scale(local.Z, c.Z))
}

// Surface is a named set of faces of an instance, located by anchor points
// lying on the faces. All marks a surface made of every face of the instance.
type Surface struct {
	Name     string
	Instance string
	All      bool
	Anchors  []r3.Vec
}

// InteractionProperty is the contact property shared by all jaw contacts.
type InteractionProperty struct {
	Name            string
	Tangential      string
	Normal          string
	AllowSeparation bool
	Enforcement     string
}

// Contact is a surface to surface contact pair.
type Contact struct {
	Name     string
	Step     string
	Master   string
	Slave    string
	Sliding  string
	Property string
}

// DisplacementBC fixes degrees of freedom of a face set in a local CSYS.
type DisplacementBC struct {
	Name    string
	Step    string
	Set     string
	Anchors []r3.Vec
	Fixed   []DOF
	CSYS    string
}

// ConcentratedForce loads a single vertex along the first axis of a CSYS.
type ConcentratedForce struct {
	Name   string
	Step   string
	Set    string
	Vertex r3.Vec
	CF1    float64
	CSYS   string
}

// Step is an analysis step.
type Step struct {
	Name      string
	Previous  string
	Procedure string
}

// JawInstance is one jaw of the radial pattern.
type JawInstance struct {
	chuck.JawPlacement
	Name string
	CSYS CSYS
	// Master is the jaw face in contact with the workpiece.
	Master Surface
	// Slave is the workpiece side of the contact.
	Slave   Surface
	Support DisplacementBC
	Load    ConcentratedForce
}

// Force returns the global force vector applied to the jaw.
func (j JawInstance) Force() r3.Vec {
	return r3.Scale(j.Load.CF1, j.CSYS.X)
}

// Model is a complete fixture model ready to be exported. It is built once
// by NewModel and not modified afterwards.
type Model struct {
	Name      string
	Params    Params
	Materials []Material
	Sections  []Section
	Workpiece Workpiece
	Jaw       Jaw

	WorkpiecePartitions []PartitionResult
	JawPartitions       []PartitionResult

	Property InteractionProperty
	Steps    []Step
	Jaws     []JawInstance
	// Surfaces lists every surface created in the assembly in creation order.
	Surfaces []Surface
	Contacts []Contact
	BCs      []DisplacementBC
	Loads    []ConcentratedForce

	lookup *anchorTree
}

type buildErr struct {
	panicObj interface{}
	stack    string
}

func (e *buildErr) Error() string {
	return fmt.Sprintf("building fixture model: %v", e.panicObj)
}

func (e *buildErr) Unwrap() error {
	err, _ := e.panicObj.(error)
	return err
}

// NewModel validates p and builds the fixture model it describes.
func NewModel(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return catchBuild(func() (*Model, error) { return build(p) })
}

// catchBuild runs fn and returns panics raised by it as a *buildErr.
func catchBuild(fn func() (*Model, error)) (m *Model, err error) {
	defer func() {
		if a := recover(); a != nil {
			m = nil
			err = &buildErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return fn()
}

// Template point indices in the frame of the first, unrotated jaw.
const (
	tplContact = 0 // four points, one per contact face quarter
	tplSupport = 4 // two points on the bottom face halves
	tplLoad    = 6 // outer face centre vertex
	tplOrigin  = 7 // CSYS origin
	tplPoint2  = 8 // CSYS XY plane point
	tplCount   = 9
)

func jawTemplate(p Params) []r3.Vec {
	L, W, H, R := p.JawLength, p.JawWidth, p.JawHeight, p.OuterRadius
	t := make([]r3.Vec, tplCount)
	t[tplContact+0] = r3.Vec{X: 0.25 * L, Y: R, Z: 0.25 * H}
	t[tplContact+1] = r3.Vec{X: -0.25 * L, Y: R, Z: 0.25 * H}
	t[tplContact+2] = r3.Vec{X: 0.25 * L, Y: R, Z: 0.75 * H}
	t[tplContact+3] = r3.Vec{X: -0.25 * L, Y: R, Z: 0.75 * H}
	t[tplSupport+0] = r3.Vec{X: 0.25 * L, Y: R + 0.5*W}
	t[tplSupport+1] = r3.Vec{X: -0.25 * L, Y: R + 0.5*W}
	t[tplLoad] = r3.Vec{Y: R + W, Z: 0.5 * H}
	t[tplOrigin] = r3.Vec{Y: R}
	t[tplPoint2] = r3.Vec{X: 1, Y: R}
	return t
}

func build(p Params) (*Model, error) {
	m := &Model{
		Name:      "Model-1",
		Params:    p,
		Materials: []Material{p.JawMaterial},
	}
	if p.WorkpieceMaterial.Name != p.JawMaterial.Name {
		m.Materials = append(m.Materials, p.WorkpieceMaterial)
	}
	jawSection := Section{Name: p.JawMaterial.Name + "-section", Material: p.JawMaterial.Name}
	m.Sections = []Section{jawSection}
	wpSection := Section{Name: p.WorkpieceMaterial.Name + "-section", Material: p.WorkpieceMaterial.Name}
	if wpSection != jawSection {
		m.Sections = append(m.Sections, wpSection)
	}

	m.Workpiece = Workpiece{
		Name:       "Workpiece",
		Length:     p.WorkpieceLength,
		Inner:      p.InnerRadius,
		Outer:      p.OuterRadius,
		Partitions: p.Partitions,
		Section:    wpSection,
		Mesh:       p.WorkpieceMesh,
	}
	m.Jaw = Jaw{
		Name:    "Jaw",
		Length:  p.JawLength,
		Width:   p.JawWidth,
		Height:  p.JawHeight,
		Section: jawSection,
		Mesh:    p.JawMesh,
	}
	var err error
	m.WorkpiecePartitions, err = m.Workpiece.Partition()
	if err != nil {
		return nil, fmt.Errorf("workpiece: %w", err)
	}
	m.JawPartitions, err = m.Jaw.Partition()
	if err != nil {
		return nil, fmt.Errorf("jaw: %w", err)
	}

	m.Property = InteractionProperty{
		Name:            "Interaction-Property",
		Tangential:      "ROUGH",
		Normal:          "HARD",
		AllowSeparation: false,
		Enforcement:     "PENALTY",
	}
	load := Step{Name: "Step-1", Previous: InitialStep, Procedure: "Static"}
	m.Steps = []Step{load}

	var fullSlave Surface
	if p.Contact == ContactFull {
		fullSlave = Surface{Name: m.Jaw.Name + "_slave_surf", Instance: m.Workpiece.Name, All: true}
		m.Surfaces = append(m.Surfaces, fullSlave)
	}
	template := jawTemplate(p)
	for _, pl := range chuck.PlaceJaws(template, p.JawCount, chuck.OZ) {
		name := fmt.Sprintf("%s-rad-%d", m.Jaw.Name, pl.Index)
		a := pl.Anchors
		j := JawInstance{
			JawPlacement: pl,
			Name:         name,
			CSYS:         newCSYS(name+"_CSYS", a[tplOrigin], r3.Vec{}, a[tplPoint2]),
			Master: Surface{
				Name:     name + "_master_surf",
				Instance: name,
				Anchors:  a[tplContact:tplSupport],
			},
			Slave: fullSlave,
		}
		if p.Contact == ContactPerJaw {
			slave := Surface{Name: name + "_slave_surf", Instance: m.Workpiece.Name}
			for _, c := range j.Master.Anchors {
				slave.Anchors = append(slave.Anchors, chuck.ProjectRadial(c, p.OuterRadius))
			}
			j.Slave = slave
		}
		j.Support = DisplacementBC{
			Name:    "BC-" + name,
			Step:    InitialStep,
			Set:     "Jaw_BS_set-" + name,
			Anchors: a[tplSupport:tplLoad],
			Fixed:   []DOF{U2, U3},
			CSYS:    j.CSYS.Name,
		}
		j.Load = ConcentratedForce{
			Name:   "Load-" + name,
			Step:   load.Name,
			Set:    "Jaw-force-region-" + name,
			Vertex: a[tplLoad],
			CF1:    p.JawForce,
			CSYS:   j.CSYS.Name,
		}
		m.Surfaces = append(m.Surfaces, j.Master)
		if p.Contact == ContactPerJaw {
			m.Surfaces = append(m.Surfaces, j.Slave)
		}
		m.Contacts = append(m.Contacts, Contact{
			Name:     "Interaction-" + name,
			Step:     InitialStep,
			Master:   j.Master.Name,
			Slave:    j.Slave.Name,
			Sliding:  "FINITE",
			Property: m.Property.Name,
		})
		m.BCs = append(m.BCs, j.Support)
		m.Loads = append(m.Loads, j.Load)
		m.Jaws = append(m.Jaws, j)
	}
	m.lookup = newAnchorTree(m.regions())
	return m, nil
}

// JawToAssembly maps a point from the jaw part frame to the assembly frame
// of the jaw placed at offset degrees. The part is turned -90 degrees about
// X so its extrusion points outwards, lifted onto the workpiece surface and
// then rotated about the workpiece axis.
func (m *Model) JawToAssembly(p r3.Vec, offset float64) r3.Vec {
	p = chuck.RotatePoint(p, chuck.OX, chuck.Degrees(-90))
	p = r3.Add(p, r3.Vec{Y: m.Workpiece.Outer, Z: 0.5 * m.Jaw.Height})
	return chuck.RotatePoint(p, chuck.OZ, chuck.Degrees(offset))
}

// JawCorners returns the eight corners of every placed jaw.
func (m *Model) JawCorners() [][]r3.Vec {
	local := m.Jaw.Bounds().Vertices()
	corners := make([][]r3.Vec, len(m.Jaws))
	for i, j := range m.Jaws {
		corners[i] = make([]r3.Vec, len(local))
		for k, v := range local {
			corners[i][k] = m.JawToAssembly(v, j.Offset)
		}
	}
	return corners
}

// Bounds returns the bounding box of the assembly.
func (m *Model) Bounds() d3.Box {
	R := m.Workpiece.Outer
	b := d3.Box{
		Min: r3.Vec{X: -R, Y: -R},
		Max: r3.Vec{X: R, Y: R, Z: m.Workpiece.Length},
	}
	for _, c := range m.JawCorners() {
		b = b.Extend(d3.BoxOf(c))
	}
	return b
}

// Step returns the step with the given name.
func (m *Model) Step(name string) (Step, bool) {
	for _, s := range m.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return Step{}, false
}
