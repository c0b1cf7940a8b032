package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	const src = `{
	// four jaws around an 80mm tube
	jawCount: 4,
	outerDiameter: 80,
	innerDiameter: 76,
	jawForce: 2500,
	meshSize: 2,
	contact: "per-jaw",
	jawMaterial: {name: "Tool steel", young: 210e9, poisson: 0.3},
}`
	p, err := ParseParams([]byte(src), DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 4, p.JawCount)
	assert.Equal(t, 4, p.Partitions, "partitions follow the jaw count unless given")
	assert.InDelta(t, 0.040, p.OuterRadius, 1e-12)
	assert.InDelta(t, 0.038, p.InnerRadius, 1e-12)
	assert.InDelta(t, 0.002, p.WorkpieceMesh.Size, 1e-12)
	assert.Equal(t, 2500.0, p.JawForce)
	assert.Equal(t, ContactPerJaw, p.Contact)
	assert.Equal(t, "Tool steel", p.JawMaterial.Name)
	assert.Equal(t, DefaultParams().JawLength, p.JawLength)
}

func TestParseParamsErrors(t *testing.T) {
	_, err := ParseParams([]byte(`{jawCount: `), DefaultParams())
	assert.Error(t, err)
	_, err = ParseParams([]byte(`{innerDiameter: 100}`), DefaultParams())
	assert.Error(t, err, "inner radius larger than outer radius")
}

func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{partitions: 6}`), 0o644))
	p, err := LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Partitions)
	assert.Equal(t, 3, p.JawCount)

	_, err = LoadParams(filepath.Join(t.TempDir(), "missing.json5"))
	assert.Error(t, err)
}

func TestParseParamsPartialMaterial(t *testing.T) {
	p, err := ParseParams([]byte(`{jawMaterial: {young: 200e9}}`), DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, "Steel", p.JawMaterial.Name)
	assert.Equal(t, 200e9, p.JawMaterial.Young)
	assert.Equal(t, Steel.Poisson, p.JawMaterial.Poisson)
	assert.Equal(t, Aluminum, p.WorkpieceMaterial)
}

func TestParseParamsJohnsonCook(t *testing.T) {
	const src = `{
	workpieceMaterial: {
		density: 2700,
		johnsonCook: {a: 324e6, b: 114e6, n: 0.42, d1: -0.77, d2: 1.45, d3: -0.47, refStrainRate: 1, dispAtFailure: 1e-4},
	},
}`
	p, err := ParseParams([]byte(src), DefaultParams())
	require.NoError(t, err)
	wp := p.WorkpieceMaterial
	assert.Equal(t, "Aluminum", wp.Name)
	assert.Equal(t, 2700.0, wp.Density)
	require.NotNil(t, wp.JohnsonCook)
	assert.Equal(t, JohnsonCook{A: 324e6, B: 114e6, N: 0.42, D1: -0.77, D2: 1.45, D3: -0.47, RefStrainRate: 1, DispAtFailure: 1e-4}, *wp.JohnsonCook)

	// Overlaying onto a base with Johnson-Cook data must not alias it.
	again, err := ParseParams([]byte(`{workpieceMaterial: {johnsonCook: {a: 1}}}`), p)
	require.NoError(t, err)
	assert.Equal(t, 1.0, again.WorkpieceMaterial.JohnsonCook.A)
	assert.Equal(t, 324e6, p.WorkpieceMaterial.JohnsonCook.A)
	assert.Equal(t, 114e6, again.WorkpieceMaterial.JohnsonCook.B)
}
