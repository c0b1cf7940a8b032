package fixture

import (
	"math"

	"github.com/turninig/chuck/internal/d3"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// RegionKind tells what an anchor point locates.
type RegionKind int

const (
	RegionContact RegionKind = iota + 1 // jaw master contact face
	RegionSlave                         // workpiece slave contact face
	RegionSupport                       // jaw face held by a boundary condition
	RegionLoad                          // loaded jaw vertex
)

func (k RegionKind) String() string {
	switch k {
	case RegionContact:
		return "contact"
	case RegionSlave:
		return "slave"
	case RegionSupport:
		return "support"
	case RegionLoad:
		return "load"
	}
	return "unknown"
}

// Region is a face or vertex of the assembly located by an anchor point.
type Region struct {
	Kind     RegionKind
	Instance string
	Owner    string // surface, set or load the region belongs to
	Point    r3.Vec
}

func (m *Model) regions() []Region {
	var rs []Region
	add := func(kind RegionKind, instance, owner string, pts ...r3.Vec) {
		for _, p := range pts {
			rs = append(rs, Region{Kind: kind, Instance: instance, Owner: owner, Point: p})
		}
	}
	for _, j := range m.Jaws {
		add(RegionContact, j.Name, j.Master.Name, j.Master.Anchors...)
		if !j.Slave.All {
			add(RegionSlave, j.Slave.Instance, j.Slave.Name, j.Slave.Anchors...)
		}
		add(RegionSupport, j.Name, j.Support.Set, j.Support.Anchors...)
		add(RegionLoad, j.Name, j.Load.Set, j.Load.Vertex)
	}
	return rs
}

// Regions returns every anchored region of the model.
func (m *Model) Regions() []Region {
	return m.regions()
}

// FindAt returns the anchored region nearest to p and its distance to p,
// the way the host resolves faces and vertices from coordinates.
func (m *Model) FindAt(p r3.Vec) (Region, float64) {
	if m.lookup == nil || m.lookup.tree.Root == nil {
		return Region{}, math.Inf(1)
	}
	got, dist2 := m.lookup.tree.Nearest(&anchor{Region: Region{Point: p}})
	return got.(*anchor).Region, math.Sqrt(dist2)
}

type anchorTree struct {
	tree *kdtree.Tree
}

func newAnchorTree(rs []Region) *anchorTree {
	as := make(anchors, len(rs))
	for i := range rs {
		as[i].Region = rs[i]
	}
	if len(as) == 0 {
		return &anchorTree{tree: &kdtree.Tree{}}
	}
	return &anchorTree{tree: kdtree.New(as, true)}
}

type anchor struct {
	Region
}

func (a *anchor) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(*anchor)
	switch d {
	case 0:
		return a.Point.X - q.Point.X
	case 1:
		return a.Point.Y - q.Point.Y
	case 2:
		return a.Point.Z - q.Point.Z
	}
	panic("unreachable")
}

func (a *anchor) Dims() int { return 3 }

func (a *anchor) Distance(c kdtree.Comparable) float64 {
	q := c.(*anchor)
	return r3.Norm2(r3.Sub(a.Point, q.Point))
}

type anchors []anchor

func (as anchors) Index(i int) kdtree.Comparable { return &as[i] }

func (as anchors) Len() int { return len(as) }

func (as anchors) Pivot(d kdtree.Dim) int {
	p := anchorPlane{dim: d, anchors: as}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

func (as anchors) Slice(start, end int) kdtree.Interface { return as[start:end] }

// Bounds implements the kdtree.Bounder interface.
func (as anchors) Bounds() *kdtree.Bounding {
	s := make(d3.Set, len(as))
	for i := range as {
		s[i] = as[i].Point
	}
	return &kdtree.Bounding{
		Min: &anchor{Region: Region{Point: s.Min()}},
		Max: &anchor{Region: Region{Point: s.Max()}},
	}
}

type anchorPlane struct {
	dim     kdtree.Dim
	anchors anchors
}

func (p anchorPlane) Less(i, j int) bool {
	return p.anchors[i].Compare(&p.anchors[j], p.dim) < 0
}

func (p anchorPlane) Swap(i, j int) {
	p.anchors[i], p.anchors[j] = p.anchors[j], p.anchors[i]
}

func (p anchorPlane) Len() int { return len(p.anchors) }

func (p anchorPlane) Slice(start, end int) kdtree.SortSlicer {
	p.anchors = p.anchors[start:end]
	return p
}
