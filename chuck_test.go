package chuck

import (
	"math"
	"math/rand"
	"testing"

	"github.com/turninig/chuck/internal/d3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestUnits(t *testing.T) {
	if got := Millimeters(68); !scalar.EqualWithinAbs(got, 0.068, 1e-12) {
		t.Errorf("Millimeters(68) = %v", got)
	}
	if got := Centimeters(3.4); !scalar.EqualWithinAbs(got, 0.034, 1e-12) {
		t.Errorf("Centimeters(3.4) = %v", got)
	}
	if got := Degrees(180); !scalar.EqualWithinAbs(got, math.Pi, 1e-12) {
		t.Errorf("Degrees(180) = %v", got)
	}
	if Meters(1.5) != 1.5 || Radians(2) != 2 || Newtons(1000) != 1000 {
		t.Error("identity conversions changed their argument")
	}
	if got := ToDegrees(Degrees(-240)); !scalar.EqualWithinAbs(got, -240, 1e-12) {
		t.Errorf("ToDegrees(Degrees(-240)) = %v", got)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	for _, test := range []struct {
		in, want float64
	}{
		{0, 0}, {-120, 240}, {-240, 120}, {360, 0}, {725, 5}, {-1e-18, 0},
	} {
		got := NormalizeDegrees(test.in)
		if !scalar.EqualWithinAbs(got, test.want, 1e-12) {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", test.in, got, test.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDegrees(%v) = %v out of range", test.in, got)
		}
	}
}

func TestPolarRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		x, y := 200*(rng.Float64()-0.5), 200*(rng.Float64()-0.5)
		if x == 0 && y == 0 {
			continue
		}
		r, phi := CartesianToPolar(x, y)
		if r < 0 || phi <= -180 || phi > 180 {
			t.Fatalf("CartesianToPolar(%g, %g) = (%g, %g) out of range", x, y, r, phi)
		}
		gx, gy := PolarToCartesian(r, phi)
		if !scalar.EqualWithinAbs(gx, x, 1e-9) || !scalar.EqualWithinAbs(gy, y, 1e-9) {
			t.Fatalf("round trip of (%g, %g) gave (%g, %g)", x, y, gx, gy)
		}
	}
}

func TestPolarAngleRange(t *testing.T) {
	_, phi := CartesianToPolar(-1, 0)
	if phi != 180 {
		t.Errorf("angle of -X axis = %v, want 180", phi)
	}
	_, phi = CartesianToPolar(-1, math.Copysign(0, -1))
	if phi != 180 {
		t.Errorf("angle of -X axis from below = %v, want 180", phi)
	}
	p := ToPolar(r2.Vec{X: 0, Y: 2})
	if p.R != 2 || p.Deg != 90 {
		t.Errorf("ToPolar(0,2) = %+v", p)
	}
	v := p.Vec()
	if !scalar.EqualWithinAbs(v.X, 0, 1e-15) || !scalar.EqualWithinAbs(v.Y, 2, 1e-15) {
		t.Errorf("Polar.Vec = %v", v)
	}
}

func TestProjectRadial(t *testing.T) {
	got := ProjectRadial(r3.Vec{X: 3, Y: 4, Z: 7}, 10)
	want := r3.Vec{X: 6, Y: 8, Z: 7}
	if !d3.EqualWithin(got, want, 1e-12) {
		t.Errorf("ProjectRadial = %v, want %v", got, want)
	}
}

func TestRotateIdentity(t *testing.T) {
	p := r3.Vec{X: 0.25, Y: -3, Z: 8}
	for _, axis := range []r3.Vec{OX, OY, OZ, {X: 1, Y: 2, Z: 3}} {
		if got := RotatePoint(p, axis, 0); got != p {
			t.Errorf("zero rotation about %v moved %v to %v", axis, p, got)
		}
	}
}

func TestRotateCounterClockwise(t *testing.T) {
	got := RotatePoint(OX, OZ, Degrees(90))
	if !d3.EqualWithin(got, OY, 1e-15) {
		t.Errorf("X rotated 90 degrees about Z = %v, want %v", got, OY)
	}
	got = RotatePoint(OY, OX, Degrees(90))
	if !d3.EqualWithin(got, OZ, 1e-15) {
		t.Errorf("Y rotated 90 degrees about X = %v, want %v", got, OZ)
	}
	// Unnormalized axis.
	got = RotatePoint(OZ, r3.Vec{Y: 5}, Degrees(90))
	if !d3.EqualWithin(got, OX, 1e-15) {
		t.Errorf("Z rotated 90 degrees about 5Y = %v, want %v", got, OX)
	}
}

func TestRotateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	randVec := func() r3.Vec {
		return r3.Vec{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1, Z: 2*rng.Float64() - 1}
	}
	for i := 0; i < 1000; i++ {
		p := r3.Scale(10, randVec())
		axis := randVec()
		if r3.Norm(axis) < 1e-6 {
			continue
		}
		theta := 4 * math.Pi * (rng.Float64() - 0.5)
		q := RotatePoint(p, axis, theta)
		if back := RotatePoint(q, axis, -theta); !d3.EqualWithin(back, p, 1e-9) {
			t.Fatalf("rotating %v by %g and back gave %v", p, theta, back)
		}
		if !scalar.EqualWithinAbs(r3.Norm(q), r3.Norm(p), 1e-9) {
			t.Fatalf("rotation changed norm %g -> %g", r3.Norm(p), r3.Norm(q))
		}
		// Distance to the axis is preserved.
		u := r3.Unit(axis)
		dp := r3.Norm(r3.Cross(u, p))
		dq := r3.Norm(r3.Cross(u, q))
		if !scalar.EqualWithinAbs(dp, dq, 1e-9) {
			t.Fatalf("rotation changed distance to axis %g -> %g", dp, dq)
		}
	}
}

func TestRotationMatrixOrthonormal(t *testing.T) {
	m := RotationMatrix(r3.Vec{X: 1, Y: -2, Z: 0.5}, 1.234)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var dot float64
			for k := 0; k < 3; k++ {
				dot += m.At(i, k) * m.At(j, k)
			}
			want := 0.0
			if i == j {
				want = 1
			}
			if !scalar.EqualWithinAbs(dot, want, 1e-12) {
				t.Errorf("R*R^T[%d,%d] = %g, want %g", i, j, dot, want)
			}
		}
	}
}

func TestPreconditions(t *testing.T) {
	for name, f := range map[string]func(){
		"zero axis":      func() { RotatePoint(OX, r3.Vec{}, 1) },
		"nan point":      func() { RotatePoint(r3.Vec{X: math.NaN()}, OZ, 1) },
		"inf angle":      func() { RotatePoint(OX, OZ, math.Inf(1)) },
		"zero jaw count": func() { JawAngularOffset(1, 0) },
		"index too big":  func() { JawAngularOffset(4, 3) },
		"index zero":     func() { JawAngularOffset(0, 3) },
		"nan polar":      func() { CartesianToPolar(math.NaN(), 0) },
		"negative place": func() { PlaceJaws(nil, -1, OZ) },
	} {
		func() {
			defer func() {
				a := recover()
				if a == nil {
					t.Errorf("%s: expected panic", name)
					return
				}
				if _, ok := a.(*PreconditionError); !ok {
					t.Errorf("%s: panic value %T is not a *PreconditionError", name, a)
				}
			}()
			f()
		}()
	}
}
