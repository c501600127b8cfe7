package components

import (
	"math"
	"math/cmplx"

	"cascadix"
	"cascadix/twoport"
	"cascadix/validate"
)

// TransmissionLineParams describes a length of transmission line. Z0 may
// be complex; VelocityFactor defaults physically to (0,1]; AlphaNpPerM is
// the attenuation constant in nepers/meter (0 for lossless).
type TransmissionLineParams struct {
	LengthM        float64
	Z0             complex128
	FreqHz         float64
	VelocityFactor float64
	AlphaNpPerM    float64
}

// TransmissionLine returns the ABCD matrix of a (possibly lossy, possibly
// complex-Z0) transmission line:
//
//	[[cosh(gamma*l), Z0*sinh(gamma*l)], [sinh(gamma*l)/Z0, cosh(gamma*l)]]
//
// with gamma = alpha + j*beta, beta = omega*sqrt(mu0*eps0)/vf.
func TransmissionLine(p TransmissionLineParams) (twoport.T, error) {
	vf := p.VelocityFactor
	if vf == 0 {
		vf = 1.0
	}
	if vf <= 0 || vf > 1 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "TransmissionLine", "velocity factor must be in (0,1], got %v", vf)
	}
	if p.FreqHz <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "TransmissionLine", "frequency must be > 0, got %v", p.FreqHz)
	}
	omega := 2 * math.Pi * p.FreqHz
	beta := omega * math.Sqrt(cascadix.Mu0*cascadix.Eps0) / vf
	gamma := complex(p.AlphaNpPerM, beta)
	gammaL := gamma * complex(p.LengthM, 0)

	coshGL := cmplx.Cosh(gammaL)
	sinhGL := cmplx.Sinh(gammaL)

	return twoport.New(
		coshGL,
		p.Z0*sinhGL,
		sinhGL/p.Z0,
		coshGL,
	), nil
}

// TransmissionLineReal is the convenience constructor for a real
// characteristic impedance and a loss figure in dB/m, converted to
// alpha = loss_db_per_m * ln(10)/20.
func TransmissionLineReal(lengthM, z0Real, freqHz, velocityFactor, lossDBPerM float64) (twoport.T, error) {
	alpha := lossDBPerM * math.Log(10) / 20
	return TransmissionLine(TransmissionLineParams{
		LengthM:        lengthM,
		Z0:             complex(z0Real, 0),
		FreqHz:         freqHz,
		VelocityFactor: velocityFactor,
		AlphaNpPerM:    alpha,
	})
}

// TransmissionLineFromElectricalLength builds a lossless line of the given
// electrical length in degrees at the given frequency.
func TransmissionLineFromElectricalLength(thetaDegrees, z0Real, freqHz, velocityFactor float64) (twoport.T, error) {
	if velocityFactor == 0 {
		velocityFactor = 1.0
	}
	wavelength := cascadix.C0 / (freqHz * velocityFactor)
	length := (thetaDegrees / 360.0) * wavelength
	return TransmissionLineReal(length, z0Real, freqHz, velocityFactor, 0)
}

// TransmissionLineLossy builds a lossy line with a complex characteristic
// impedance and an explicit attenuation constant in nepers/meter.
func TransmissionLineLossy(lengthM float64, z0 complex128, freqHz, alphaNpPerM, velocityFactor float64) (twoport.T, error) {
	return TransmissionLine(TransmissionLineParams{
		LengthM:        lengthM,
		Z0:             z0,
		FreqHz:         freqHz,
		VelocityFactor: velocityFactor,
		AlphaNpPerM:    alphaNpPerM,
	})
}

// ElectricalLengthDegrees returns the electrical length, in degrees, of a
// physical length at a given frequency and velocity factor.
func ElectricalLengthDegrees(lengthM, freqHz, velocityFactor float64) float64 {
	wavelength := cascadix.C0 / (freqHz * velocityFactor)
	return (lengthM / wavelength) * 360.0
}

// --- Transmission-line stubs ---
//
// All four variants produce a series-impedance or shunt-admittance ABCD
// from the lossless open/short stub input expressions. betaL is the
// electrical length beta*l in radians; z0 is the stub's characteristic
// impedance.

// SeriesOpenStub returns a series Z = -j*Z0*cot(betaL) stub. Singular at
// betaL = k*pi.
func SeriesOpenStub(betaL, z0 float64) (twoport.T, error) {
	s := math.Sin(betaL)
	if err := validate.CheckTrigDenominator("SeriesOpenStub", s); err != nil {
		return twoport.T{}, err
	}
	cot := math.Cos(betaL) / s
	return SeriesZ(complex(0, -z0*cot)), nil
}

// SeriesShortStub returns a series Z = j*Z0*tan(betaL) stub. Singular at
// betaL = (k+1/2)*pi.
func SeriesShortStub(betaL, z0 float64) (twoport.T, error) {
	c := math.Cos(betaL)
	if err := validate.CheckTrigDenominator("SeriesShortStub", c); err != nil {
		return twoport.T{}, err
	}
	tan := math.Sin(betaL) / c
	return SeriesZ(complex(0, z0*tan)), nil
}

// ShuntOpenStub returns a shunt Y = j*tan(betaL)/Z0 stub. Singular at
// betaL = (k+1/2)*pi.
func ShuntOpenStub(betaL, z0 float64) (twoport.T, error) {
	c := math.Cos(betaL)
	if err := validate.CheckTrigDenominator("ShuntOpenStub", c); err != nil {
		return twoport.T{}, err
	}
	tan := math.Sin(betaL) / c
	return ShuntY(complex(0, tan/z0)), nil
}

// ShuntShortStub returns a shunt Y = -j*cot(betaL)/Z0 stub. Singular at
// betaL = k*pi.
func ShuntShortStub(betaL, z0 float64) (twoport.T, error) {
	s := math.Sin(betaL)
	if err := validate.CheckTrigDenominator("ShuntShortStub", s); err != nil {
		return twoport.T{}, err
	}
	cot := math.Cos(betaL) / s
	return ShuntY(complex(0, -cot/z0)), nil
}
