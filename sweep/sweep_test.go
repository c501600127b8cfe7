package sweep

import (
	"math"
	"testing"

	"cascadix/components"
	"cascadix/twoport"
)

func butterworthLC3Builder(cutoffHz, z0 float64) NetworkBuilder {
	// Third-order Butterworth LC low-pass: L1=L3=0.7654*Z0/wc,
	// C2=1.8478/(Z0*wc).
	omegaC := 2 * math.Pi * cutoffHz
	l := 0.7654 * z0 / omegaC
	c := 1.8478 / (omegaC * z0)
	return func(freqHz float64) (twoport.T, error) {
		seriesL1, err := components.SeriesL(l, freqHz)
		if err != nil {
			return twoport.T{}, err
		}
		shuntC, err := components.ShuntC(c, freqHz)
		if err != nil {
			return twoport.T{}, err
		}
		seriesL2, err := components.SeriesL(l, freqHz)
		if err != nil {
			return twoport.T{}, err
		}
		return twoport.Cascade(seriesL1, shuntC, seriesL2), nil
	}
}

func TestButterworthLC3LowPassSweep(t *testing.T) {
	cutoff := 1e9
	z0 := 50.0
	fs, err := NewFrequencySweep(1e8, 1e10, 21, Log)
	if err != nil {
		t.Fatalf("NewFrequencySweep: %s", err)
	}
	res, err := PerformSweep(butterworthLC3Builder(cutoff, z0), fs, complex(z0, 0), complex(z0, 0), complex(z0, 0))
	if err != nil {
		t.Fatalf("PerformSweep: %s", err)
	}
	if len(res.FrequenciesHz) != 21 {
		t.Fatalf("expected 21 points, got %d", len(res.FrequenciesHz))
	}
	// passband point well below cutoff should show low insertion loss.
	lowIdx := 0
	if res.S21dB[lowIdx] < -1 {
		t.Errorf("expected near-passband insertion loss close to 0dB at low end, got %v", res.S21dB[lowIdx])
	}
	// stopband point well above cutoff should be attenuated relative to
	// the passband.
	highIdx := len(res.S21dB) - 1
	if res.S21dB[highIdx] >= res.S21dB[lowIdx] {
		t.Errorf("expected more attenuation at high frequency end: low=%v high=%v", res.S21dB[lowIdx], res.S21dB[highIdx])
	}
}

func TestFrequencySweepLinearValues(t *testing.T) {
	fs, err := NewFrequencySweep(1e6, 2e6, 3, Linear)
	if err != nil {
		t.Fatalf("NewFrequencySweep: %s", err)
	}
	vals := fs.Values()
	want := []float64{1e6, 1.5e6, 2e6}
	for i, w := range want {
		if math.Abs(vals[i]-w) > 1 {
			t.Errorf("vals[%d] = %v, want %v", i, vals[i], w)
		}
	}
}

func TestFrequencySweepLogValues(t *testing.T) {
	fs, err := NewFrequencySweep(1e6, 1e8, 3, Log)
	if err != nil {
		t.Fatalf("NewFrequencySweep: %s", err)
	}
	vals := fs.Values()
	if math.Abs(vals[1]-1e7) > 1 {
		t.Errorf("midpoint of a log sweep over two decades should be 1e7, got %v", vals[1])
	}
}

func TestFrequencySweepInvalidNumPoints(t *testing.T) {
	if _, err := NewFrequencySweep(1e6, 2e6, 1, Linear); err == nil {
		t.Fatal("expected InvalidSweep for num_points < 2")
	}
}

func TestFrequencySweepInvalidLogStart(t *testing.T) {
	if _, err := NewFrequencySweep(0, 2e6, 10, Log); err == nil {
		t.Fatal("expected InvalidSweep for non-positive log start")
	}
}

func componentSweepBuilder(kind ComponentKind, value, freqHz, z0Real, vf float64) (twoport.T, error) {
	switch kind {
	case SeriesR:
		return components.SeriesR(value)
	case SeriesL:
		return components.SeriesL(value, freqHz)
	case SeriesC:
		return components.SeriesC(value, freqHz)
	case ShuntR:
		return components.ShuntR(value)
	case ShuntL:
		return components.ShuntL(value, freqHz)
	case ShuntC:
		return components.ShuntC(value, freqHz)
	case TransmissionLineLength:
		return components.TransmissionLineReal(value, z0Real, freqHz, vf, 0)
	default:
		return twoport.T{}, nil
	}
}

func TestPerformComponentSweepSeriesR(t *testing.T) {
	cs := ComponentSweep{
		Kind:       SeriesR,
		StartValue: 10,
		StopValue:  100,
		NumPoints:  10,
		FreqHz:     1e9,
	}
	res, err := PerformComponentSweep(cs, componentSweepBuilder, twoport.Identity(), twoport.Identity(), 50, complex(50, 0))
	if err != nil {
		t.Fatalf("PerformComponentSweep: %s", err)
	}
	if len(res.Values) != 10 {
		t.Fatalf("expected 10 points, got %d", len(res.Values))
	}
	// increasing series resistance between a 50 ohm source and load
	// should monotonically worsen the return loss (raise |S11|).
	for i := 1; i < len(res.S); i++ {
		prevMag := res.S[i-1].ReturnLossDB()
		curMag := res.S[i].ReturnLossDB()
		if curMag >= prevMag {
			t.Errorf("expected return loss to worsen (decrease) monotonically with series R, index %d: prev=%v cur=%v", i, prevMag, curMag)
		}
	}
}

func TestCalculateArcRange(t *testing.T) {
	r, err := CalculateArcRange(SeriesR, 50, 1e9, 0.2, 50, componentSweepBuilder)
	if err != nil {
		t.Fatalf("CalculateArcRange: %s", err)
	}
	if r.ValueMin != 40 || r.ValueMax != 60 {
		t.Errorf("got [%v,%v], want [40,60]", r.ValueMin, r.ValueMax)
	}
	if real(r.ZStart) >= real(r.ZStop) {
		t.Errorf("expected increasing series R to raise Zin: start=%v stop=%v", r.ZStart, r.ZStop)
	}
}

func TestComponentKindFromName(t *testing.T) {
	k, err := ComponentKindFromName("shunt_c")
	if err != nil {
		t.Fatalf("ComponentKindFromName: %s", err)
	}
	if k != ShuntC {
		t.Errorf("got %v, want ShuntC", k)
	}
	if _, err := ComponentKindFromName("not_a_kind"); err == nil {
		t.Fatal("expected InvalidComponent for unknown kind name")
	}
}
