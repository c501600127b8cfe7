// Package components is the closed library of ABCD-producing constructors:
// series/shunt R, L, C, the ideal transformer, series/shunt RLC, the
// transmission-line family (lossy, complex Z0, stubs), and the shunt-tee
// helper. Every constructor returns a twoport.T; component "kind" exists
// only at the point of construction, not as a type that flows through the
// algebra.
package components

import (
	"math"

	"cascadix"
	"cascadix/twoport"
)

// SeriesZ returns the two-port for an arbitrary series impedance z.
func SeriesZ(z complex128) twoport.T {
	return twoport.New(1, z, 0, 1)
}

// ShuntY returns the two-port for an arbitrary shunt admittance y.
func ShuntY(y complex128) twoport.T {
	return twoport.New(1, 0, y, 1)
}

// SeriesR returns a series resistor, R >= 0.
func SeriesR(r float64) (twoport.T, error) {
	if r < 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "SeriesR", "R must be >= 0, got %v", r)
	}
	return SeriesZ(complex(r, 0)), nil
}

// SeriesL returns a series inductor Z = j*omega*L, L > 0, freqHz > 0.
func SeriesL(l, freqHz float64) (twoport.T, error) {
	if l <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "SeriesL", "L must be > 0, got %v", l)
	}
	if freqHz <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "SeriesL", "frequency must be > 0, got %v", freqHz)
	}
	omega := 2 * math.Pi * freqHz
	return SeriesZ(complex(0, omega*l)), nil
}

// SeriesC returns a series capacitor Z = 1/(j*omega*C), C > 0, freqHz > 0.
func SeriesC(c, freqHz float64) (twoport.T, error) {
	if c <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "SeriesC", "C must be > 0, got %v", c)
	}
	if freqHz <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "SeriesC", "frequency must be > 0, got %v", freqHz)
	}
	omega := 2 * math.Pi * freqHz
	return SeriesZ(complex(0, -1/(omega*c))), nil
}

// ShuntR returns a shunt resistor Y = 1/R, R > 0.
func ShuntR(r float64) (twoport.T, error) {
	if r <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "ShuntR", "R must be > 0, got %v", r)
	}
	return ShuntY(complex(1/r, 0)), nil
}

// ShuntL returns a shunt inductor Y = -j/(omega*L), L > 0, freqHz > 0.
func ShuntL(l, freqHz float64) (twoport.T, error) {
	if l <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "ShuntL", "L must be > 0, got %v", l)
	}
	if freqHz <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "ShuntL", "frequency must be > 0, got %v", freqHz)
	}
	omega := 2 * math.Pi * freqHz
	return ShuntY(complex(0, -1/(omega*l))), nil
}

// ShuntC returns a shunt capacitor Y = j*omega*C, C > 0.
func ShuntC(c, freqHz float64) (twoport.T, error) {
	if c <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "ShuntC", "C must be > 0, got %v", c)
	}
	if freqHz <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "ShuntC", "frequency must be > 0, got %v", freqHz)
	}
	omega := 2 * math.Pi * freqHz
	return ShuntY(complex(0, omega*c)), nil
}

// IdealTransformer returns an ideal transformer with turns ratio n > 0.
func IdealTransformer(n float64) (twoport.T, error) {
	if n <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "IdealTransformer", "turns ratio must be > 0, got %v", n)
	}
	return twoport.New(complex(n, 0), 0, 0, complex(1/n, 0)), nil
}

// TransformerImpedanceRatio returns n^2, the impedance transformation
// ratio of an ideal transformer with turns ratio n.
func TransformerImpedanceRatio(n float64) float64 { return n * n }

// SeriesRLC returns a series R+jwL-j/(wC) impedance, R,L,C > 0.
func SeriesRLC(r, l, c, freqHz float64) (twoport.T, error) {
	if err := checkRLC("SeriesRLC", r, l, c, freqHz); err != nil {
		return twoport.T{}, err
	}
	omega := 2 * math.Pi * freqHz
	zTotal := complex(r, omega*l-1/(omega*c))
	return SeriesZ(zTotal), nil
}

// ShuntRLC returns a parallel (shunt-to-ground) R||L||C admittance,
// R,L,C > 0.
func ShuntRLC(r, l, c, freqHz float64) (twoport.T, error) {
	if err := checkRLC("ShuntRLC", r, l, c, freqHz); err != nil {
		return twoport.T{}, err
	}
	omega := 2 * math.Pi * freqHz
	yTotal := complex(1/r, omega*c-1/(omega*l))
	return ShuntY(yTotal), nil
}

// RLCResonantFrequency returns 1/(2*pi*sqrt(L*C)), the series/shunt RLC
// resonant frequency.
func RLCResonantFrequency(l, c float64) float64 {
	return 1 / (2 * math.Pi * math.Sqrt(l*c))
}

// SeriesRLCQFactor returns the Q factor of a series RLC section.
func SeriesRLCQFactor(r, l, c float64) float64 {
	return (1 / r) * math.Sqrt(l/c)
}

// ShuntRLCQFactor returns the Q factor of a shunt RLC section.
func ShuntRLCQFactor(r, l, c float64) float64 {
	return r * math.Sqrt(c/l)
}

func checkRLC(op string, r, l, c, freqHz float64) error {
	if r <= 0 {
		return cascadix.Kindf(cascadix.InvalidComponent, op, "R must be > 0, got %v", r)
	}
	if l <= 0 {
		return cascadix.Kindf(cascadix.InvalidComponent, op, "L must be > 0, got %v", l)
	}
	if c <= 0 {
		return cascadix.Kindf(cascadix.InvalidComponent, op, "C must be > 0, got %v", c)
	}
	if freqHz <= 0 {
		return cascadix.Kindf(cascadix.InvalidComponent, op, "frequency must be > 0, got %v", freqHz)
	}
	return nil
}
