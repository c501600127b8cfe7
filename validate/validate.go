// Package validate holds the small numeric guards shared by twoport,
// components, sweep and smithchart: denominator checks, clamps, and sweep
// descriptor sanity checks. None of it is specific to one algebraic layer,
// so it lives apart from all of them.
package validate

import (
	"math"
	"math/cmplx"

	"cascadix"
)

// NearZero reports whether |v| is below cascadix.DenominatorGuard.
func NearZero(v complex128) bool {
	return cmplx.Abs(v) < cascadix.DenominatorGuard
}

// ClampUnit clamps a real value to [-1, 1].
func ClampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampUnitDisk clamps a complex value coordinate-wise to the [-1,1]x[-1,1]
// square that contains the closed unit disk. This is the Smith-chart
// output guarantee: every emitted coordinate lands in [-1, 1] regardless
// of how degenerate the impedance that produced it was.
func ClampUnitDisk(z complex128) complex128 {
	return complex(ClampUnit(real(z)), ClampUnit(imag(z)))
}

// SweepParams bundles the fields common to both sweep descriptors so a
// single check can validate either one.
type SweepParams struct {
	Start, Stop float64
	NumPoints   int
	Log         bool
}

// CheckSweep validates a sweep descriptor: num_points < 2, start == stop
// with more than one point, or non-positive start under a log
// distribution are all rejected as InvalidSweep.
func CheckSweep(op string, p SweepParams) error {
	if p.NumPoints < 2 {
		return cascadix.Kindf(cascadix.InvalidSweep, op, "num_points must be >= 2, got %d", p.NumPoints)
	}
	if p.Start == p.Stop {
		return cascadix.Kindf(cascadix.InvalidSweep, op, "start == stop (%v) with num_points > 1", p.Start)
	}
	if p.Log && p.Start <= 0 {
		return cascadix.Kindf(cascadix.InvalidSweep, op, "log sweep requires start > 0, got %v", p.Start)
	}
	return nil
}

// CheckFrequency validates a single frequency value used by a reactive
// component constructor that needs omega > 0.
func CheckFrequency(op string, freqHz float64) error {
	if freqHz <= 0 {
		return cascadix.Kindf(cascadix.InvalidComponent, op, "frequency must be > 0, got %v", freqHz)
	}
	return nil
}

// CheckPositive validates that a physical component value (R, L, C) is
// strictly positive.
func CheckPositive(op, name string, v float64) error {
	if v <= 0 {
		return cascadix.Kindf(cascadix.InvalidComponent, op, "%s must be > 0, got %v", name, v)
	}
	return nil
}

// CheckNonNegative validates that a value (e.g. a series resistance that
// may legitimately be zero) is not negative.
func CheckNonNegative(op, name string, v float64) error {
	if v < 0 {
		return cascadix.Kindf(cascadix.InvalidComponent, op, "%s must be >= 0, got %v", name, v)
	}
	return nil
}

// trigDenominatorGuard is the floor below which sin or cos of betaL counts
// as zero. It sits above DenominatorGuard because betaL is itself rounded:
// sin(math.Pi) is about 1.2e-16 and cos(math.Pi/2) about 6.1e-17, never
// exactly zero.
const trigDenominatorGuard = 1e-12

// CheckTrigDenominator reports a Singular error if |denom| (sin or cos of
// betaL, depending on which stub expression is being evaluated) has
// collapsed below trigDenominatorGuard, which is the condition under
// which cot/tan explode to infinity at the stub's resonant grid points.
func CheckTrigDenominator(op string, denom float64) error {
	if math.Abs(denom) < trigDenominatorGuard {
		return cascadix.NewError(cascadix.Singular, op, nil)
	}
	return nil
}
