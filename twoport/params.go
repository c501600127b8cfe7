package twoport

import (
	"math"
	"math/cmplx"

	"cascadix"
)

// S is a scattering-parameter bundle referenced to a reference impedance
// that the bundle itself does not record.
type S struct {
	S11, S12, S21, S22 complex128
}

// Determinant returns S11*S22 - S12*S21.
func (s S) Determinant() complex128 { return s.S11*s.S22 - s.S12*s.S21 }

// ReturnLossDB returns -20*log10(|S11|), +Inf at a perfect match.
func (s S) ReturnLossDB() float64 { return -20 * math.Log10(cmplx.Abs(s.S11)) }

// InsertionLossDB returns -20*log10(|S21|).
func (s S) InsertionLossDB() float64 { return -20 * math.Log10(cmplx.Abs(s.S21)) }

// VSWR returns (1+|S11|)/(1-|S11|), +Inf as |S11| -> 1.
func (s S) VSWR() float64 {
	mag := cmplx.Abs(s.S11)
	return (1 + mag) / (1 - mag)
}

// Z is an impedance-parameter bundle.
type Z struct {
	Z11, Z12, Z21, Z22 complex128
}

// Determinant returns Z11*Z22 - Z12*Z21.
func (z Z) Determinant() complex128 { return z.Z11*z.Z22 - z.Z12*z.Z21 }

// Y is an admittance-parameter bundle.
type Y struct {
	Y11, Y12, Y21, Y22 complex128
}

// Determinant returns Y11*Y22 - Y12*Y21.
func (y Y) Determinant() complex128 { return y.Y11*y.Y22 - y.Y12*y.Y21 }

// ToS converts to S-parameters at a real reference impedance.
func (t T) ToS(z0 float64) (S, error) {
	return t.ToSComplex(complex(z0, 0))
}

// ToSComplex converts to S-parameters at a (possibly complex) reference
// impedance.
func (t T) ToSComplex(z0 complex128) (S, error) {
	den := t.a + t.b/z0 + t.c*z0 + t.d
	if cmplx.Abs(den) < cascadix.DenominatorGuard {
		return S{}, cascadix.NewError(cascadix.Singular, "ToS", nil)
	}
	det := t.Determinant()
	return S{
		S11: (t.a + t.b/z0 - t.c*z0 - t.d) / den,
		S12: 2 * det / den,
		S21: 2 / den,
		S22: (-t.a + t.b/z0 - t.c*z0 + t.d) / den,
	}, nil
}

// ToZ converts to Z-parameters; requires |C| >= DenominatorGuard.
func (t T) ToZ() (Z, error) {
	if cmplx.Abs(t.c) < cascadix.DenominatorGuard {
		return Z{}, cascadix.NewError(cascadix.Singular, "ToZ", nil)
	}
	det := t.Determinant()
	return Z{
		Z11: t.a / t.c,
		Z12: det / t.c,
		Z21: 1 / t.c,
		Z22: t.d / t.c,
	}, nil
}

// ToY converts to Y-parameters; requires |B| >= DenominatorGuard.
func (t T) ToY() (Y, error) {
	if cmplx.Abs(t.b) < cascadix.DenominatorGuard {
		return Y{}, cascadix.NewError(cascadix.Singular, "ToY", nil)
	}
	det := t.Determinant()
	return Y{
		Y11: t.d / t.b,
		Y12: -det / t.b,
		Y21: -1 / t.b,
		Y22: t.a / t.b,
	}, nil
}

// FromS builds a two-port from an S-parameter bundle at a real reference
// impedance.
func FromS(s S, z0 float64) (T, error) {
	return FromSComplex(s, complex(z0, 0))
}

// FromSComplex builds a two-port from an S-parameter bundle at a
// (possibly complex) reference impedance. Requires |S21| >= DenominatorGuard.
func FromSComplex(s S, z0 complex128) (T, error) {
	if cmplx.Abs(s.S21) < cascadix.DenominatorGuard {
		return T{}, cascadix.NewError(cascadix.Singular, "FromS", nil)
	}
	den := 2 * s.S21
	cross := s.S12 * s.S21
	a := ((1+s.S11)*(1-s.S22) + cross) / den
	b := z0 * ((1+s.S11)*(1+s.S22) - cross) / den
	c := ((1-s.S11)*(1-s.S22) - cross) / (den * z0)
	d := ((1-s.S11)*(1+s.S22) + cross) / den
	return New(a, b, c, d), nil
}
