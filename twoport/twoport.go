// Package twoport implements the ABCD (chain) matrix algebra that every
// other package in this module builds on: construction, cascade
// composition, parameter conversions, and terminal quantities.
package twoport

import (
	"math"
	"math/cmplx"

	"cascadix"
)

// T is an immutable ABCD (chain) two-port value. It relates port-1
// voltage/current to port-2 voltage/current by
//
//	[V1, I1]^T = [[A, B], [C, D]] * [V2, -I2]^T
//
// T carries no notion of reciprocity or passivity — those are queries,
// not invariants, per the type's contract.
type T struct {
	a, b, c, d complex128
}

// New builds a two-port from its four ABCD entries.
func New(a, b, c, d complex128) T {
	return T{a: a, b: b, c: c, d: d}
}

// Identity returns the two-sided unit of cascade composition.
func Identity() T {
	return T{a: 1, b: 0, c: 0, d: 1}
}

func (t T) A() complex128 { return t.a }
func (t T) B() complex128 { return t.b }
func (t T) C() complex128 { return t.c }
func (t T) D() complex128 { return t.d }

// Determinant returns A*D - B*C.
func (t T) Determinant() complex128 {
	return t.a*t.d - t.b*t.c
}

// Cascade composes t followed by other: t ⊗ other. Cascade is
// associative up to floating-point rounding and is not commutative.
func (t T) Cascade(other T) T {
	return T{
		a: t.a*other.a + t.b*other.c,
		b: t.a*other.b + t.b*other.d,
		c: t.c*other.a + t.d*other.c,
		d: t.c*other.b + t.d*other.d,
	}
}

// Cascade composes a sequence of two-ports left to right; Cascade() with
// no arguments returns the identity.
func Cascade(ts ...T) T {
	result := Identity()
	for _, t := range ts {
		result = result.Cascade(t)
	}
	return result
}

// IsReciprocal reports whether |det - 1| < tolerance.
func (t T) IsReciprocal(tolerance float64) bool {
	return cmplx.Abs(t.Determinant()-1) < tolerance
}

// IsSymmetric reports whether |A - D| < tolerance.
func (t T) IsSymmetric(tolerance float64) bool {
	return cmplx.Abs(t.a-t.d) < tolerance
}

// IsLossless reports whether A, D are purely real, B, C are purely
// imaginary, and |det| - 1 is within tolerance in absolute value.
func (t T) IsLossless(tolerance float64) bool {
	return math.Abs(imag(t.a)) < tolerance &&
		math.Abs(imag(t.d)) < tolerance &&
		math.Abs(real(t.b)) < tolerance &&
		math.Abs(real(t.c)) < tolerance &&
		math.Abs(cmplx.Abs(t.Determinant())-1) < tolerance
}

// InputImpedance returns Zin = (A*Zload + B) / (C*Zload + D).
func (t T) InputImpedance(zLoad complex128) (complex128, error) {
	den := t.c*zLoad + t.d
	if cmplx.Abs(den) < cascadix.DenominatorGuard {
		return 0, cascadix.NewError(cascadix.Singular, "InputImpedance", nil)
	}
	return (t.a*zLoad + t.b) / den, nil
}

// OutputImpedance returns Zout = (D*Zsource + B) / (C*Zsource + A).
func (t T) OutputImpedance(zSource complex128) (complex128, error) {
	den := t.c*zSource + t.a
	if cmplx.Abs(den) < cascadix.DenominatorGuard {
		return 0, cascadix.NewError(cascadix.Singular, "OutputImpedance", nil)
	}
	return (t.d*zSource + t.b) / den, nil
}

// CharacteristicImpedance returns sqrt(B/C), defined only for symmetric
// networks.
func (t T) CharacteristicImpedance() (complex128, error) {
	if !t.IsSymmetric(cascadix.DefaultTolerance) {
		return 0, cascadix.NewError(cascadix.Nonsymmetric, "CharacteristicImpedance", nil)
	}
	if cmplx.Abs(t.c) < cascadix.DenominatorGuard {
		return 0, cascadix.NewError(cascadix.Singular, "CharacteristicImpedance", nil)
	}
	return cmplx.Sqrt(t.b / t.c), nil
}

// VoltageGain returns V2/V1 = 1 / (A + B/Zload).
func (t T) VoltageGain(zLoad complex128) (complex128, error) {
	den := t.a + t.b/zLoad
	if cmplx.Abs(den) < cascadix.DenominatorGuard {
		return 0, cascadix.NewError(cascadix.Singular, "VoltageGain", nil)
	}
	return 1 / den, nil
}

// CurrentGain returns I2/I1 = 1 / (C*Zload + D).
func (t T) CurrentGain(zLoad complex128) (complex128, error) {
	den := t.c*zLoad + t.d
	if cmplx.Abs(den) < cascadix.DenominatorGuard {
		return 0, cascadix.NewError(cascadix.Singular, "CurrentGain", nil)
	}
	return 1 / den, nil
}

// PowerGain returns the transducer power gain delivered to zLoad from a
// source zSource, assuming real port impedances for the power ratio.
func (t T) PowerGain(zSource, zLoad complex128) (float64, error) {
	vg, err := t.VoltageGain(zLoad)
	if err != nil {
		return 0, err
	}
	zIn, err := t.InputImpedance(zLoad)
	if err != nil {
		return 0, err
	}
	if cmplx.Abs(zSource+zIn) < cascadix.DenominatorGuard {
		return 0, cascadix.NewError(cascadix.Singular, "PowerGain", nil)
	}
	v1OverVs := zIn / (zSource + zIn)
	totalVg := v1OverVs * vg
	mag := cmplx.Abs(totalVg)
	return 4 * mag * mag * real(zSource) / real(zLoad), nil
}
