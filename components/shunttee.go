package components

import (
	"math/cmplx"

	"cascadix"
	"cascadix/twoport"
)

// VeryLargeImpedance stands in for an open termination.
const VeryLargeImpedance = 1e12

// ShuntTee computes z = n.InputImpedance(zTerm), maps it to an admittance
// (saturating to a very large admittance rather than dividing by zero when
// |z| is negligible, which is treated as a near-short), and returns the
// shunt-admittance two-port [[1,0],[y,1]].
func ShuntTee(n twoport.T, zTerm complex128) (twoport.T, error) {
	z, err := n.InputImpedance(zTerm)
	if err != nil {
		return twoport.T{}, err
	}
	var y complex128
	if cmplx.Abs(z) < cascadix.DenominatorGuard {
		y = complex(1/cascadix.DenominatorGuard, 0)
	} else {
		y = 1 / z
	}
	return ShuntY(y), nil
}

// ShortTerminated is ShuntTee with zTerm = 0.
func ShortTerminated(n twoport.T) (twoport.T, error) {
	return ShuntTee(n, 0)
}

// OpenTerminated is ShuntTee with zTerm a very large real impedance.
func OpenTerminated(n twoport.T) (twoport.T, error) {
	return ShuntTee(n, complex(VeryLargeImpedance, 0))
}

// MatchTerminated is ShuntTee with zTerm = z0 (real).
func MatchTerminated(n twoport.T, z0 float64) (twoport.T, error) {
	return ShuntTee(n, complex(z0, 0))
}
