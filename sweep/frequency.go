// Package sweep implements the frequency sweep and component-value sweep
// descriptors and executors: lazy value enumeration over a linear or log
// axis, and the network-builder evaluation loop that turns a value vector
// into parallel result arrays.
package sweep

import (
	"math"
	"math/cmplx"

	"cascadix"
	"cascadix/twoport"
	"cascadix/validate"
)

// Distribution is the sample-spacing axis of a sweep.
type Distribution int

const (
	Linear Distribution = iota
	Log
)

func (d Distribution) String() string {
	if d == Log {
		return "log"
	}
	return "linear"
}

// FrequencySweep describes a frequency axis: start_hz > 0 when Distribution
// is Log, NumPoints >= 2 (a single-point sweep has no prev/next neighbor
// for generators that need one).
type FrequencySweep struct {
	StartHz      float64
	StopHz       float64
	NumPoints    int
	Distribution Distribution
}

// NewFrequencySweep validates and constructs a FrequencySweep.
func NewFrequencySweep(startHz, stopHz float64, numPoints int, dist Distribution) (FrequencySweep, error) {
	fs := FrequencySweep{StartHz: startHz, StopHz: stopHz, NumPoints: numPoints, Distribution: dist}
	if err := validate.CheckSweep("NewFrequencySweep", validate.SweepParams{
		Start: startHz, Stop: stopHz, NumPoints: numPoints, Log: dist == Log,
	}); err != nil {
		return FrequencySweep{}, err
	}
	if startHz <= 0 {
		return FrequencySweep{}, cascadix.Kindf(cascadix.InvalidSweep, "NewFrequencySweep", "frequency must be > 0, got %v", startHz)
	}
	return fs, nil
}

// Values enumerates the NumPoints frequency samples.
func (fs FrequencySweep) Values() []float64 {
	values := make([]float64, 0, fs.NumPoints)
	if fs.Distribution == Linear {
		step := (fs.StopHz - fs.StartHz) / float64(fs.NumPoints-1)
		for i := 0; i < fs.NumPoints; i++ {
			values = append(values, fs.StartHz+float64(i)*step)
		}
		return values
	}
	logStart := math.Log10(fs.StartHz)
	logStop := math.Log10(fs.StopHz)
	logStep := (logStop - logStart) / float64(fs.NumPoints-1)
	for i := 0; i < fs.NumPoints; i++ {
		values = append(values, math.Pow(10, logStart+float64(i)*logStep))
	}
	return values
}

// NetworkBuilder constructs a two-port for a given frequency in Hz.
type NetworkBuilder func(freqHz float64) (twoport.T, error)

// Result holds the parallel output arrays of a frequency sweep, in sweep
// order.
type Result struct {
	FrequenciesHz  []float64
	S              []twoport.S
	ZIn            []complex128
	ZOut           []complex128
	S11dB          []float64
	S21dB          []float64
	VSWR           []float64
	S11AngleDeg    []float64
	S21AngleDeg    []float64
}

// PerformSweep evaluates builder at each frequency, collecting S-parameters
// and input/output impedances under zLoad/zSource referenced to z0. The
// first error from builder (or from a parameter conversion) propagates
// immediately with the remainder of the sweep abandoned — no partial
// result is returned.
func PerformSweep(builder NetworkBuilder, fs FrequencySweep, z0, zLoad, zSource complex128) (*Result, error) {
	freqs := fs.Values()
	n := len(freqs)
	res := &Result{
		FrequenciesHz: freqs,
		S:             make([]twoport.S, 0, n),
		ZIn:           make([]complex128, 0, n),
		ZOut:          make([]complex128, 0, n),
		S11dB:         make([]float64, 0, n),
		S21dB:         make([]float64, 0, n),
		VSWR:          make([]float64, 0, n),
		S11AngleDeg:   make([]float64, 0, n),
		S21AngleDeg:   make([]float64, 0, n),
	}

	for _, f := range freqs {
		network, err := builder(f)
		if err != nil {
			return nil, cascadix.Kindf(errKindOrSingular(err), "PerformSweep", "builder failed at frequency %v Hz: %w", f, err)
		}
		s, err := network.ToSComplex(z0)
		if err != nil {
			return nil, cascadix.Kindf(errKindOrSingular(err), "PerformSweep", "ToS failed at frequency %v Hz: %w", f, err)
		}
		zin, err := network.InputImpedance(zLoad)
		if err != nil {
			return nil, cascadix.Kindf(errKindOrSingular(err), "PerformSweep", "InputImpedance failed at frequency %v Hz: %w", f, err)
		}
		zout, err := network.OutputImpedance(zSource)
		if err != nil {
			return nil, cascadix.Kindf(errKindOrSingular(err), "PerformSweep", "OutputImpedance failed at frequency %v Hz: %w", f, err)
		}

		res.S = append(res.S, s)
		res.ZIn = append(res.ZIn, zin)
		res.ZOut = append(res.ZOut, zout)
		res.S11dB = append(res.S11dB, dB(s.S11))
		res.S21dB = append(res.S21dB, dB(s.S21))
		res.VSWR = append(res.VSWR, s.VSWR())
		res.S11AngleDeg = append(res.S11AngleDeg, angleDeg(s.S11))
		res.S21AngleDeg = append(res.S21AngleDeg, angleDeg(s.S21))
	}

	return res, nil
}

func dB(c complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(c))
}

func angleDeg(c complex128) float64 {
	return cmplx.Phase(c) * 180 / math.Pi
}

func errKindOrSingular(err error) cascadix.ErrorKind {
	if k, ok := cascadix.KindOf(err); ok {
		return k
	}
	return cascadix.Singular
}
