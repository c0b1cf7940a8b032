package fixture

import "errors"

// Material is a linear elastic material. Young's modulus is in Pa and the
// density in kg/m^3. Density and JohnsonCook are only required by explicit
// dynamics analyses and may be left zero.
type Material struct {
	Name    string  `json:"name"`
	Young   float64 `json:"young"`
	Poisson float64 `json:"poisson"`
	Density float64 `json:"density"`
	// JohnsonCook plasticity and damage, nil for purely elastic materials.
	JohnsonCook *JohnsonCook `json:"johnsonCook"`
}

// JohnsonCook holds Johnson-Cook hardening and damage initiation constants.
type JohnsonCook struct {
	// Hardening A + B*eps^N, A and B in Pa.
	A float64 `json:"a"`
	B float64 `json:"b"`
	N float64 `json:"n"`
	// Damage initiation.
	D1            float64 `json:"d1"`
	D2            float64 `json:"d2"`
	D3            float64 `json:"d3"`
	RefStrainRate float64 `json:"refStrainRate"` // 1/s
	DispAtFailure float64 `json:"dispAtFailure"` // m, displacement based damage evolution
}

// Section is a homogeneous solid section made of a single material.
type Section struct {
	Name     string
	Material string
}

func (m Material) validate() error {
	switch {
	case m.Name == "":
		return errors.New("material without name")
	case m.Young <= 0:
		return errors.New("material " + m.Name + ": Young's modulus must be positive")
	case m.Poisson <= -1 || m.Poisson >= 0.5:
		return errors.New("material " + m.Name + ": Poisson ratio outside (-1, 0.5)")
	case m.Density < 0:
		return errors.New("material " + m.Name + ": negative density")
	case m.JohnsonCook != nil && m.Density == 0:
		return errors.New("material " + m.Name + ": Johnson-Cook data requires a density")
	}
	return nil
}

// Steel is the jaw material of the reference model. The modulus is kept as
// authored in the reference model.
var Steel = Material{Name: "Steel", Young: 210e15, Poisson: 0.29}

// Aluminum is the workpiece material of the reference model.
var Aluminum = Material{Name: "Aluminum", Young: 0.7e9, Poisson: 0.28}
