package fixture

import (
	"errors"
	"math"
)

// MeshControls are the seeding and meshing settings applied to a part.
type MeshControls struct {
	Size            float64 // global seed size in meters
	DeviationFactor float64
	MinSizeFactor   float64
	Technique       string
	Algorithm       string
}

// DefaultMesh returns the sweep mesh controls of the reference model.
func DefaultMesh() MeshControls {
	return MeshControls{
		Size:            0.0015,
		DeviationFactor: 0.1,
		MinSizeFactor:   0.1,
		Technique:       "SWEEP",
		Algorithm:       "MEDIAL_AXIS",
	}
}

// Seeds returns the number of seeds placed along an edge of the given length.
// At least one seed is always placed.
func (mc MeshControls) Seeds(edge float64) int {
	if edge <= 0 {
		return 1
	}
	n := int(math.Ceil(edge/mc.Size - 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}

func (mc MeshControls) validate() error {
	switch {
	case !(mc.Size > 0):
		return errors.New("mesh seed size must be positive")
	case mc.DeviationFactor <= 0 || mc.DeviationFactor >= 1:
		return errors.New("mesh deviation factor outside (0, 1)")
	case mc.MinSizeFactor <= 0 || mc.MinSizeFactor >= 1:
		return errors.New("mesh min size factor outside (0, 1)")
	}
	return nil
}
