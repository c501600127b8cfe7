package factory

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestButterworthLC3CutoffAttenuation(t *testing.T) {
	cutoff := 1e9
	z0 := 50.0
	net, err := ButterworthLC3(cutoff, z0)
	if err != nil {
		t.Fatalf("ButterworthLC3: %s", err)
	}
	s, err := net.ToS(z0)
	if err != nil {
		t.Fatalf("ToS: %s", err)
	}
	// at the design cutoff a 3rd-order Butterworth low-pass has dropped
	// 3dB from its passband gain.
	if math.Abs(s.InsertionLossDB()-3.0) > 0.5 {
		t.Errorf("expected ~3dB insertion loss at cutoff, got %v", s.InsertionLossDB())
	}
}

func TestPiAttenuatorMatchedAndCorrectLoss(t *testing.T) {
	z0 := 50.0
	net, err := PiAttenuator(10, z0)
	if err != nil {
		t.Fatalf("PiAttenuator: %s", err)
	}
	s, err := net.ToS(z0)
	if err != nil {
		t.Fatalf("ToS: %s", err)
	}
	if cmplx.Abs(s.S11) > 1e-6 {
		t.Errorf("matched attenuator should have S11 ~ 0, got %v", s.S11)
	}
	if math.Abs(s.InsertionLossDB()-10.0) > 0.1 {
		t.Errorf("expected 10dB insertion loss, got %v", s.InsertionLossDB())
	}
}

func TestTAttenuatorMatchedAndCorrectLoss(t *testing.T) {
	z0 := 50.0
	net, err := TAttenuator(6, z0)
	if err != nil {
		t.Fatalf("TAttenuator: %s", err)
	}
	s, err := net.ToS(z0)
	if err != nil {
		t.Fatalf("ToS: %s", err)
	}
	if cmplx.Abs(s.S11) > 1e-6 {
		t.Errorf("matched attenuator should have S11 ~ 0, got %v", s.S11)
	}
	if math.Abs(s.InsertionLossDB()-6.0) > 0.1 {
		t.Errorf("expected 6dB insertion loss, got %v", s.InsertionLossDB())
	}
}

func TestAttenuatorInvalidNonPositiveDB(t *testing.T) {
	if _, err := PiAttenuator(0, 50); err == nil {
		t.Fatal("expected InvalidComponent for non-positive attenuation")
	}
}

func TestLMatchAchievesPerfectMatch(t *testing.T) {
	zSource, zLoad, freq := 50.0, 200.0, 1e9
	net, err := LMatch(zSource, zLoad, freq, false)
	if err != nil {
		t.Fatalf("LMatch: %s", err)
	}
	zin, err := net.InputImpedance(complex(zLoad, 0))
	if err != nil {
		t.Fatalf("InputImpedance: %s", err)
	}
	if math.Abs(real(zin)-zSource) > 1 || math.Abs(imag(zin)) > 1 {
		t.Errorf("Zin = %v, want ~%v+j0", zin, zSource)
	}
}

func TestLMatchHighpassAlsoMatches(t *testing.T) {
	zSource, zLoad, freq := 75.0, 25.0, 2.4e9
	net, err := LMatch(zSource, zLoad, freq, true)
	if err != nil {
		t.Fatalf("LMatch: %s", err)
	}
	zin, err := net.InputImpedance(complex(zLoad, 0))
	if err != nil {
		t.Fatalf("InputImpedance: %s", err)
	}
	if math.Abs(real(zin)-zSource) > 1 || math.Abs(imag(zin)) > 1 {
		t.Errorf("Zin = %v, want ~%v+j0", zin, zSource)
	}
}

func TestLMatchRejectsEqualImpedances(t *testing.T) {
	if _, err := LMatch(50, 50, 1e9, false); err == nil {
		t.Fatal("expected InvalidComponent when source equals load")
	}
}

func TestQuarterWaveLineImpedanceInversion(t *testing.T) {
	z0, freq := 50.0, 1e9
	net, err := QuarterWaveLine(z0, freq)
	if err != nil {
		t.Fatalf("QuarterWaveLine: %s", err)
	}
	zin, err := net.InputImpedance(complex(200, 0))
	if err != nil {
		t.Fatalf("InputImpedance: %s", err)
	}
	want := z0 * z0 / 200.0
	if math.Abs(real(zin)-want) > 1 {
		t.Errorf("Zin = %v, want ~%v", zin, want)
	}
}
