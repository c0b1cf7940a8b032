package fixture

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/titanous/json5"
	"github.com/turninig/chuck"
)

// ContactMode selects how the workpiece side of each jaw contact is chosen.
type ContactMode string

const (
	// ContactFull uses the whole workpiece surface as slave for every jaw.
	ContactFull ContactMode = "full"
	// ContactPerJaw uses only the workpiece faces under each jaw.
	ContactPerJaw ContactMode = "per-jaw"
)

// Params are the inputs of a fixture model. Lengths are in meters and
// forces in newtons.
type Params struct {
	JawCount int
	// Partitions is the number of cutting planes through the workpiece axis.
	Partitions int

	WorkpieceLength float64
	InnerRadius     float64
	OuterRadius     float64

	JawLength float64 // tangential
	JawWidth  float64 // radial
	JawHeight float64 // axial
	JawForce  float64

	WorkpieceMesh MeshControls
	JawMesh       MeshControls
	Contact       ContactMode

	WorkpieceMaterial Material
	JawMaterial       Material
}

// DefaultParams returns the reference three-jaw configuration: a 68mm
// aluminum tube with 4.5mm wall clamped by 15mm steel jaws at 1kN each.
func DefaultParams() Params {
	const jaws = 3
	return Params{
		JawCount:          jaws,
		Partitions:        jaws,
		WorkpieceLength:   chuck.Millimeters(60),
		InnerRadius:       chuck.Millimeters(59. / 2),
		OuterRadius:       chuck.Millimeters(68. / 2),
		JawLength:         chuck.Millimeters(15),
		JawWidth:          chuck.Millimeters(15),
		JawHeight:         chuck.Millimeters(15),
		JawForce:          chuck.Newtons(1000),
		WorkpieceMesh:     DefaultMesh(),
		JawMesh:           DefaultMesh(),
		Contact:           ContactFull,
		WorkpieceMaterial: Aluminum,
		JawMaterial:       Steel,
	}
}

// Validate checks the parameters describe a buildable model.
func (p Params) Validate() error {
	if p.JawCount <= 0 {
		return errors.New("jaw count must be positive")
	}
	if p.Partitions < 0 {
		return errors.New("negative partition count")
	}
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"workpiece length", p.WorkpieceLength},
		{"inner radius", p.InnerRadius},
		{"outer radius", p.OuterRadius},
		{"jaw length", p.JawLength},
		{"jaw width", p.JawWidth},
		{"jaw height", p.JawHeight},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) || v.val <= 0 {
			return fmt.Errorf("%s must be positive and finite, got %g", v.name, v.val)
		}
	}
	if p.InnerRadius >= p.OuterRadius {
		return errors.New("inner radius must be smaller than outer radius")
	}
	if math.IsNaN(p.JawForce) || math.IsInf(p.JawForce, 0) {
		return errors.New("jaw force must be finite")
	}
	if p.JawHeight > p.WorkpieceLength {
		return errors.New("jaw height exceeds workpiece length")
	}
	// Neighbouring jaws must not overlap along the workpiece surface.
	if math.Atan2(0.5*p.JawLength, p.OuterRadius) >= math.Pi/float64(p.JawCount) {
		return errors.New("jaws overlap: jaw length too large for jaw count")
	}
	switch p.Contact {
	case ContactFull, ContactPerJaw:
	default:
		return fmt.Errorf("unknown contact mode %q", p.Contact)
	}
	if err := p.WorkpieceMesh.validate(); err != nil {
		return fmt.Errorf("workpiece: %w", err)
	}
	if err := p.JawMesh.validate(); err != nil {
		return fmt.Errorf("jaw: %w", err)
	}
	if err := p.WorkpieceMaterial.validate(); err != nil {
		return err
	}
	if err := p.JawMaterial.validate(); err != nil {
		return err
	}
	if p.WorkpieceMaterial.Name == p.JawMaterial.Name && p.WorkpieceMaterial != p.JawMaterial {
		return fmt.Errorf("two different materials named %q", p.JawMaterial.Name)
	}
	return nil
}

// paramsFile is the on-disk form of Params. Lengths are authored in
// millimeters. Absent fields keep their default value.
type paramsFile struct {
	JawCount        *int         `json:"jawCount"`
	Partitions      *int         `json:"partitions"`
	WorkpieceLength *float64     `json:"workpieceLength"`
	InnerDiameter   *float64     `json:"innerDiameter"`
	OuterDiameter   *float64     `json:"outerDiameter"`
	JawLength       *float64     `json:"jawLength"`
	JawWidth        *float64     `json:"jawWidth"`
	JawHeight       *float64     `json:"jawHeight"`
	JawForce        *float64     `json:"jawForce"`
	MeshSize        *float64     `json:"meshSize"`
	Contact         *ContactMode `json:"contact"`
	Workpiece       *Material    `json:"workpieceMaterial"`
	Jaw             *Material    `json:"jawMaterial"`
}

// ParseParams overlays JSON5 encoded parameters onto base.
func ParseParams(data []byte, base Params) (Params, error) {
	// Materials decode onto copies of the base records so partial
	// objects override single properties.
	wp, jaw := base.WorkpieceMaterial, base.JawMaterial
	wp.JohnsonCook = cloneJC(wp.JohnsonCook)
	jaw.JohnsonCook = cloneJC(jaw.JohnsonCook)
	f := paramsFile{Workpiece: &wp, Jaw: &jaw}
	if err := json5.Unmarshal(data, &f); err != nil {
		return Params{}, fmt.Errorf("parsing parameters: %w", err)
	}
	p := base
	partitionsSet := f.Partitions != nil
	if f.JawCount != nil {
		p.JawCount = *f.JawCount
		if !partitionsSet {
			p.Partitions = p.JawCount
		}
	}
	if partitionsSet {
		p.Partitions = *f.Partitions
	}
	mm := func(dst *float64, src *float64, scale float64) {
		if src != nil {
			*dst = chuck.Millimeters(*src) * scale
		}
	}
	mm(&p.WorkpieceLength, f.WorkpieceLength, 1)
	mm(&p.InnerRadius, f.InnerDiameter, 0.5)
	mm(&p.OuterRadius, f.OuterDiameter, 0.5)
	mm(&p.JawLength, f.JawLength, 1)
	mm(&p.JawWidth, f.JawWidth, 1)
	mm(&p.JawHeight, f.JawHeight, 1)
	if f.MeshSize != nil {
		size := chuck.Millimeters(*f.MeshSize)
		p.WorkpieceMesh.Size = size
		p.JawMesh.Size = size
	}
	if f.JawForce != nil {
		p.JawForce = chuck.Newtons(*f.JawForce)
	}
	if f.Contact != nil {
		p.Contact = *f.Contact
	}
	p.WorkpieceMaterial = wp
	p.JawMaterial = jaw
	return p, p.Validate()
}

func cloneJC(jc *JohnsonCook) *JohnsonCook {
	if jc == nil {
		return nil
	}
	c := *jc
	return &c
}

// LoadParams reads a JSON5 parameter file and overlays it onto DefaultParams.
func LoadParams(path string) (Params, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Params{}, err
	}
	p, err := ParseParams(b, DefaultParams())
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
