// Package factory provides a handful of worked-example network builders:
// a Butterworth low-pass prototype, Pi/T attenuators, an L-match section,
// and a quarter-wave transformer.
package factory

import (
	"math"

	"cascadix"
	"cascadix/components"
	"cascadix/twoport"
)

// ButterworthLC3 builds a third-order Butterworth LC low-pass prototype
// (L1=L3=0.7654*Z0/wc, C2=1.8478/(Z0*wc)) scaled to cutoffHz and a real
// reference impedance z0: series L, shunt C, series L. The element
// impedances are evaluated at cutoffHz, so the result describes the filter
// at that one frequency.
func ButterworthLC3(cutoffHz, z0 float64) (twoport.T, error) {
	if cutoffHz <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "ButterworthLC3", "cutoff frequency must be > 0, got %v", cutoffHz)
	}
	if z0 <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "ButterworthLC3", "z0 must be > 0, got %v", z0)
	}
	omegaC := 2 * math.Pi * cutoffHz
	l := 0.7654 * z0 / omegaC
	c := 1.8478 / (omegaC * z0)

	l1, err := components.SeriesL(l, cutoffHz)
	if err != nil {
		return twoport.T{}, err
	}
	c2, err := components.ShuntC(c, cutoffHz)
	if err != nil {
		return twoport.T{}, err
	}
	l3, err := components.SeriesL(l, cutoffHz)
	if err != nil {
		return twoport.T{}, err
	}
	return twoport.Cascade(l1, c2, l3), nil
}

// attenuatorK converts an attenuation figure in dB to the linear voltage
// ratio K = 10^(dB/20) the Pi/T resistor formulas are expressed in.
func attenuatorK(attenuationDB float64) (float64, error) {
	if attenuationDB <= 0 {
		return 0, cascadix.Kindf(cascadix.InvalidComponent, "attenuatorK", "attenuation must be > 0 dB, got %v", attenuationDB)
	}
	return math.Pow(10, attenuationDB/20), nil
}

// PiAttenuator builds a symmetric, matched Pi-network resistive
// attenuator: shunt R, series R, shunt R.
func PiAttenuator(attenuationDB, z0 float64) (twoport.T, error) {
	k, err := attenuatorK(attenuationDB)
	if err != nil {
		return twoport.T{}, err
	}
	rSeries := z0 * (k*k - 1) / (2 * k)
	rShunt := z0 * (k + 1) / (k - 1)

	shunt1, err := components.ShuntR(rShunt)
	if err != nil {
		return twoport.T{}, err
	}
	series, err := components.SeriesR(rSeries)
	if err != nil {
		return twoport.T{}, err
	}
	shunt2, err := components.ShuntR(rShunt)
	if err != nil {
		return twoport.T{}, err
	}
	return twoport.Cascade(shunt1, series, shunt2), nil
}

// TAttenuator builds a symmetric, matched T-network resistive attenuator:
// series R, shunt R, series R.
func TAttenuator(attenuationDB, z0 float64) (twoport.T, error) {
	k, err := attenuatorK(attenuationDB)
	if err != nil {
		return twoport.T{}, err
	}
	rSeries := z0 * (k - 1) / (k + 1)
	rShunt := z0 * 2 * k / (k*k - 1)

	series1, err := components.SeriesR(rSeries)
	if err != nil {
		return twoport.T{}, err
	}
	shunt, err := components.ShuntR(rShunt)
	if err != nil {
		return twoport.T{}, err
	}
	series2, err := components.SeriesR(rSeries)
	if err != nil {
		return twoport.T{}, err
	}
	return twoport.Cascade(series1, shunt, series2), nil
}

// LMatch builds a two-element reactive L-match network between a real
// source impedance zSource and a real load impedance zLoad at freqHz.
// highpass selects a series-C/shunt-L topology instead of the default
// series-L/shunt-C lowpass topology. zSource and zLoad must differ.
func LMatch(zSource, zLoad, freqHz float64, highpass bool) (twoport.T, error) {
	if zSource <= 0 || zLoad <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "LMatch", "source and load impedances must be > 0, got %v and %v", zSource, zLoad)
	}
	if zSource == zLoad {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "LMatch", "source and load impedances must differ, both %v", zSource)
	}
	if freqHz <= 0 {
		return twoport.T{}, cascadix.Kindf(cascadix.InvalidComponent, "LMatch", "frequency must be > 0, got %v", freqHz)
	}

	sign := 1.0
	if highpass {
		sign = -1.0
	}

	var low, high float64
	sourceIsLow := zSource < zLoad
	if sourceIsLow {
		low, high = zSource, zLoad
	} else {
		low, high = zLoad, zSource
	}
	q := math.Sqrt(high/low - 1)
	xSeries := q * low
	bShunt := q / high

	seriesNet := components.SeriesZ(complex(0, sign*xSeries))
	shuntNet := components.ShuntY(complex(0, sign*bShunt))

	if sourceIsLow {
		return twoport.Cascade(seriesNet, shuntNet), nil
	}
	return twoport.Cascade(shuntNet, seriesNet), nil
}

// QuarterWaveLine builds a lossless quarter-wave transmission line of
// characteristic impedance z0 at freqHz, the classic impedance inverter:
// Zin = z0^2 / Zload.
func QuarterWaveLine(z0, freqHz float64) (twoport.T, error) {
	return components.TransmissionLineFromElectricalLength(90.0, z0, freqHz, 1.0)
}
