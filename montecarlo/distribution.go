// Package montecarlo implements tolerance sampling over a component
// library network, componentwise statistics, a temperature sweep, and a
// correlated-variable extension via CorrelationMatrix.
package montecarlo

import (
	"math"
	"math/rand"

	"cascadix"
	"gonum.org/v1/gonum/stat/distuv"

	"cascadix/sweep"
)

// Distribution selects the sampling law for a toleranced component.
type Distribution int

const (
	Uniform Distribution = iota
	Gaussian
	Triangular
)

func (d Distribution) String() string {
	switch d {
	case Uniform:
		return "uniform"
	case Gaussian:
		return "gaussian"
	case Triangular:
		return "triangular"
	default:
		return "unknown"
	}
}

// ComponentTolerance describes one toleranced component in the network:
// its kind (for network reconstruction), its nominal value, a fractional
// tolerance (0.1 = ±10%), the sampling law, and an optional temperature
// coefficient in ppm/°C used by AnalyzeTemperature.
type ComponentTolerance struct {
	Kind                  sweep.ComponentKind
	NominalValue          float64
	Tolerance             float64
	Distribution          Distribution
	TemperatureCoeffPPMPC float64
}

// GenerateValue draws one sample from rng according to c's distribution,
// clamped to [nominal*(1-tol), nominal*(1+tol)] and then floored at
// nominal*0.01 so a wide tolerance (>= 1.0) can never hand a non-positive
// value to a component constructor.
//
// Gaussian uses sigma = nominal*tolerance/3 (tolerance is treated as a
// 3-sigma band) and then clamps; triangular uses the closed-form inverse
// CDF of a symmetric triangular distribution peaked at nominal, which
// gonum's stat/distuv package does not provide directly.
func (c ComponentTolerance) GenerateValue(rng *rand.Rand) (float64, error) {
	if c.Tolerance < 0 {
		return 0, cascadix.Kindf(cascadix.InvalidDistribution, "ComponentTolerance.GenerateValue", "tolerance must be >= 0, got %v", c.Tolerance)
	}
	switch c.Distribution {
	case Uniform:
		u := distuv.Uniform{Min: 0, Max: 1, Src: rng}.Rand()
		return c.valueFromUniform(u)
	case Gaussian:
		z := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}.Rand()
		return c.valueFromStandardNormal(z)
	case Triangular:
		u := distuv.Uniform{Min: 0, Max: 1, Src: rng}.Rand()
		return c.valueFromUniform(u)
	default:
		return 0, cascadix.Kindf(cascadix.InvalidDistribution, "ComponentTolerance.GenerateValue", "unknown distribution %v", c.Distribution)
	}
}

// valueFromStandardNormal maps a standard-normal quantile z to a sampled
// component value under c's distribution, via a Gaussian copula: z is
// used directly for Gaussian, and mapped through the standard normal CDF
// to a uniform variate for Uniform/Triangular. This is what lets
// Analyzer.Analyze draw correlated samples across components of mixed
// distributions by correlating standard normals and pushing each through
// its own marginal here.
func (c ComponentTolerance) valueFromStandardNormal(z float64) (float64, error) {
	switch c.Distribution {
	case Gaussian:
		minVal := c.NominalValue * (1 - c.Tolerance)
		maxVal := c.NominalValue * (1 + c.Tolerance)
		sigma := (c.NominalValue * c.Tolerance) / 3.0
		v := c.NominalValue + z*sigma
		if v < minVal {
			v = minVal
		}
		if v > maxVal {
			v = maxVal
		}
		return c.floored(v), nil
	case Uniform, Triangular:
		u := 0.5 * (1 + math.Erf(z/math.Sqrt2))
		return c.valueFromUniform(u)
	default:
		return 0, cascadix.Kindf(cascadix.InvalidDistribution, "ComponentTolerance.valueFromStandardNormal", "unknown distribution %v", c.Distribution)
	}
}

// valueFromUniform maps a uniform variate u in [0,1] to a sampled
// component value under c's Uniform or Triangular distribution.
func (c ComponentTolerance) valueFromUniform(u float64) (float64, error) {
	minVal := c.NominalValue * (1 - c.Tolerance)
	maxVal := c.NominalValue * (1 + c.Tolerance)

	switch c.Distribution {
	case Uniform:
		return c.floored(minVal + u*(maxVal-minVal)), nil
	case Triangular:
		if u < 0.5 {
			return c.floored(minVal + math.Sqrt(u*2.0)*(c.NominalValue-minVal)), nil
		}
		return c.floored(maxVal - math.Sqrt((1.0-u)*2.0)*(maxVal-c.NominalValue)), nil
	default:
		return 0, cascadix.Kindf(cascadix.InvalidDistribution, "ComponentTolerance.valueFromUniform", "unknown distribution %v", c.Distribution)
	}
}

// floored snaps v up to nominal*0.01 so a wide tolerance (>= 1.0) can
// never hand a non-positive value to a component constructor.
func (c ComponentTolerance) floored(v float64) float64 {
	floor := c.NominalValue * 0.01
	if v < floor {
		return floor
	}
	return v
}
