// Package smithchart converts impedances and network sweeps into Smith
// chart points: a bilinear impedance-to-reflection-coefficient mapping
// with adaptive point-density interpolation along a trace, plus the
// constant-resistance/-reactance/-conductance/-susceptance/-VSWR circle
// geometry a chart renderer draws behind the trace.
package smithchart

import (
	"math"
	"math/cmplx"

	"cascadix/sweep"
	"cascadix/twoport"
	"cascadix/validate"
)

// ImpedanceToReflection maps an impedance to its reflection coefficient
// Gamma = (Z - Z0) / (Z + Z0) at a real reference impedance z0.
func ImpedanceToReflection(z complex128, z0 float64) complex128 {
	zRef := complex(z0, 0)
	return (z - zRef) / (z + zRef)
}

// ReflectionToImpedance is the inverse bilinear map Z = Z0*(1+Gamma)/(1-Gamma).
func ReflectionToImpedance(gamma complex128, z0 float64) complex128 {
	zRef := complex(z0, 0)
	return zRef * (1 + gamma) / (1 - gamma)
}

// NormalizeImpedance returns z/z0, impedance expressed in units of the
// reference impedance.
func NormalizeImpedance(z complex128, z0 float64) complex128 {
	return z / complex(z0, 0)
}

// Config tunes the adaptive point-spacing policy. The defaults mirror a
// densely but not excessively sampled chart: points bunch up near the
// rim, where the chart's angular resolution per unit length is highest.
type Config struct {
	MinSpacing       float64
	MaxSpacing       float64
	EdgeBoostFactor  float64
	AdaptiveSampling bool
	EdgeThreshold    float64
}

// DefaultConfig returns the baseline adaptive-sampling configuration.
func DefaultConfig() Config {
	return Config{
		MinSpacing:       0.003,
		MaxSpacing:       0.015,
		EdgeBoostFactor:  4.0,
		AdaptiveSampling: true,
		EdgeThreshold:    0.7,
	}
}

const maxInterpolationPoints = 20

// Generator produces Smith-chart point streams under a fixed Config.
type Generator struct {
	Config Config
}

// NewGenerator constructs a Generator with the given Config.
func NewGenerator(cfg Config) *Generator { return &Generator{Config: cfg} }

// Point is one emitted Smith-chart coordinate, clamped to [-1,1] on both
// axes.
type Point struct {
	Re, Im float64
}

// calculatePointSpacing returns the target spacing near gamma: large near
// the chart center, shrinking hyperbolically past EdgeThreshold with
// EdgeBoostFactor controlling how aggressively it shrinks toward the rim.
func (g *Generator) calculatePointSpacing(gamma complex128) float64 {
	radius := cmplx.Abs(gamma)
	cfg := g.Config
	if radius < cfg.EdgeThreshold {
		t := radius / cfg.EdgeThreshold
		return cfg.MaxSpacing - t*(cfg.MaxSpacing-cfg.MinSpacing)
	}
	edgeFactor := (radius - cfg.EdgeThreshold) / (1.0 - cfg.EdgeThreshold)
	return cfg.MinSpacing / (1.0 + cfg.EdgeBoostFactor*edgeFactor)
}

func (g *Generator) shouldInterpolate(gamma1, gamma2 complex128) bool {
	distance := cmplx.Abs(gamma2 - gamma1)
	avgSpacing := (g.calculatePointSpacing(gamma1) + g.calculatePointSpacing(gamma2)) * 0.5
	return distance > avgSpacing
}

func (g *Generator) calculateInterpolationCount(gamma1, gamma2 complex128) int {
	distance := cmplx.Abs(gamma2 - gamma1)
	avgSpacing := (g.calculatePointSpacing(gamma1) + g.calculatePointSpacing(gamma2)) * 0.5
	count := int(math.Ceil(distance/avgSpacing)) - 1
	if count < 0 {
		return 0
	}
	if count > maxInterpolationPoints {
		return maxInterpolationPoints
	}
	return count
}

func (g *Generator) interpolateSegment(gamma1, gamma2 complex128, out []Point) []Point {
	count := g.calculateInterpolationCount(gamma1, gamma2)
	for i := 1; i <= count; i++ {
		t := float64(i) / float64(count+1)
		interp := gamma1 + complex(t, 0)*(gamma2-gamma1)
		out = appendPoint(out, interp)
	}
	return out
}

func appendPoint(out []Point, gamma complex128) []Point {
	clamped := validate.ClampUnitDisk(gamma)
	return append(out, Point{Re: real(clamped), Im: imag(clamped)})
}

// appendWithAdaptiveInterpolation appends gamma to out, first inserting
// interpolated points between prev and gamma if adaptive sampling is on
// and the gap between them exceeds the local target spacing. first
// should be true only for the very first point of a trace.
func (g *Generator) appendWithAdaptiveInterpolation(out []Point, prev, gamma complex128, first bool) []Point {
	if !first && g.Config.AdaptiveSampling && g.shouldInterpolate(prev, gamma) {
		out = g.interpolateSegment(prev, gamma, out)
	}
	return appendPoint(out, gamma)
}

// FromBuilderSweep sweeps a network builder over frequencies, computing
// the input impedance under loadImpedance at each frequency and mapping
// it to a Smith-chart point, with adaptive interpolation between
// consecutive frequency points.
func (g *Generator) FromBuilderSweep(builder sweep.NetworkBuilder, frequencies sweep.FrequencySweep, loadImpedance complex128, z0Reference float64) ([]Point, error) {
	freqs := frequencies.Values()
	points := make([]Point, 0, len(freqs)*2)

	var prevGamma complex128
	for i, f := range freqs {
		network, err := builder(f)
		if err != nil {
			return nil, err
		}
		zin, err := network.InputImpedance(loadImpedance)
		if err != nil {
			return nil, err
		}
		gamma := ImpedanceToReflection(zin, z0Reference)
		points = g.appendWithAdaptiveInterpolation(points, prevGamma, gamma, i == 0)
		prevGamma = gamma
	}
	return points, nil
}

// FromFixedNetworkSweep evaluates one frequency-independent two-port
// network once under loadImpedance and emits the same Smith-chart point
// once per sample of frequencies, matching the point count a frequency
// sweep over a varying network would produce.
func (g *Generator) FromFixedNetworkSweep(network twoport.T, frequencies sweep.FrequencySweep, loadImpedance complex128, z0Reference float64) ([]Point, error) {
	zin, err := network.InputImpedance(loadImpedance)
	if err != nil {
		return nil, err
	}
	gamma := ImpedanceToReflection(zin, z0Reference)

	numPoints := len(frequencies.Values())
	points := make([]Point, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		points = appendPoint(points, gamma)
	}
	return points, nil
}

// FromImpedances maps a slice of impedances directly to Smith-chart
// points, with no interpolation (the point cloud from a Monte Carlo run
// has no meaningful trace ordering to interpolate along).
func (g *Generator) FromImpedances(impedances []complex128, z0Reference float64) []Point {
	points := make([]Point, 0, len(impedances))
	for _, z := range impedances {
		points = appendPoint(points, ImpedanceToReflection(z, z0Reference))
	}
	return points
}

// FromS11Series treats each input value as an already-normalized
// reflection coefficient and emits it directly, with adaptive
// interpolation between consecutive samples.
func (g *Generator) FromS11Series(s11 []complex128) []Point {
	points := make([]Point, 0, len(s11)*2)
	var prev complex128
	for i, gamma := range s11 {
		points = g.appendWithAdaptiveInterpolation(points, prev, gamma, i == 0)
		prev = gamma
	}
	return points
}
