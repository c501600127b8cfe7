package twoport

import (
	"math/cmplx"
	"testing"
)

func approxEqual(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) < tol
}

func TestIdentityIsTwoSidedUnit(t *testing.T) {
	r := New(2, 3, 0.5, 1.2)
	if got := Identity().Cascade(r); !approxEqual(got.A(), r.A(), 1e-12) || !approxEqual(got.B(), r.B(), 1e-12) {
		t.Fatalf("identity * r != r: got %v, want %v", got, r)
	}
	if got := r.Cascade(Identity()); !approxEqual(got.A(), r.A(), 1e-12) || !approxEqual(got.D(), r.D(), 1e-12) {
		t.Fatalf("r * identity != r: got %v, want %v", got, r)
	}
}

func TestCascadeAssociative(t *testing.T) {
	t1 := New(1, 2, 0.1, 1)
	t2 := New(0.5, 1, 0.2, 2)
	t3 := New(2, 0.5, 0.05, 1.5)

	left := t1.Cascade(t2).Cascade(t3)
	right := t1.Cascade(t2.Cascade(t3))

	if !approxEqual(left.A(), right.A(), 1e-10) ||
		!approxEqual(left.B(), right.B(), 1e-10) ||
		!approxEqual(left.C(), right.C(), 1e-10) ||
		!approxEqual(left.D(), right.D(), 1e-10) {
		t.Errorf("cascade not associative: left %v, right %v", left, right)
	}
}

func TestSeriesResistor50OhmAt50Ohm(t *testing.T) {
	r := New(1, 50, 0, 1) // series 50 ohm resistor ABCD
	s, err := r.ToS(50)
	if err != nil {
		t.Fatalf("ToS failed: %s", err)
	}
	want11 := complex(1.0/3.0, 0)
	want21 := complex(2.0/3.0, 0)
	if !approxEqual(s.S11, want11, 1e-6) {
		t.Errorf("S11 = %v, want %v", s.S11, want11)
	}
	if !approxEqual(s.S21, want21, 1e-6) {
		t.Errorf("S21 = %v, want %v", s.S21, want21)
	}
	if !approxEqual(s.S12, s.S21, 1e-10) {
		t.Errorf("S12 != S21 for reciprocal network: %v vs %v", s.S12, s.S21)
	}
	if !approxEqual(s.S22, s.S11, 1e-10) {
		t.Errorf("S22 != S11 for symmetric network: %v vs %v", s.S22, s.S11)
	}
	rl := s.ReturnLossDB()
	if rl < 9.5 || rl > 9.6 {
		t.Errorf("return loss = %.4f dB, want ~9.542", rl)
	}
	if vswr := s.VSWR(); vswr < 1.999 || vswr > 2.001 {
		t.Errorf("VSWR = %.4f, want 2.0", vswr)
	}
}

func TestShuntResistor100OhmAt50Ohm(t *testing.T) {
	r := New(1, 0, 1.0/100.0, 1) // shunt 100 ohm resistor
	s, err := r.ToS(50)
	if err != nil {
		t.Fatalf("ToS failed: %s", err)
	}
	if !approxEqual(s.S11, complex(-0.2, 0), 1e-6) {
		t.Errorf("S11 = %v, want -0.2", s.S11)
	}
	if !approxEqual(s.S21, complex(0.8, 0), 1e-6) {
		t.Errorf("S21 = %v, want 0.8", s.S21)
	}
}

func TestReciprocalDeterminantUnity(t *testing.T) {
	r := New(1, 75, 0, 1)
	if !r.IsReciprocal(1e-10) {
		t.Errorf("series impedance network should be reciprocal, det=%v", r.Determinant())
	}
}

func TestSymmetricTSection(t *testing.T) {
	seriesZ := New(1, 25, 0, 1)
	shuntY := New(1, 0, 0.01, 1)
	tsection := seriesZ.Cascade(shuntY).Cascade(seriesZ)
	if !tsection.IsSymmetric(1e-10) {
		t.Errorf("symmetric T-section failed IsSymmetric: A=%v D=%v", tsection.A(), tsection.D())
	}
}

func TestSToABCDRoundTrip(t *testing.T) {
	orig := New(1.5, complex(0, 40), complex(0, 0.01), 0.9)
	s, err := orig.ToS(50)
	if err != nil {
		t.Fatalf("ToS: %s", err)
	}
	back, err := FromS(s, 50)
	if err != nil {
		t.Fatalf("FromS: %s", err)
	}
	if !approxEqual(back.A(), orig.A(), 1e-10) || !approxEqual(back.B(), orig.B(), 1e-10) ||
		!approxEqual(back.C(), orig.C(), 1e-10) || !approxEqual(back.D(), orig.D(), 1e-10) {
		t.Errorf("round trip mismatch: got %v, want %v", back, orig)
	}
}

func TestSToABCDRoundTripComplexZ0(t *testing.T) {
	orig := New(1.2, complex(10, 20), complex(0.001, 0.002), 0.8)
	z0 := complex(45, -5)
	s, err := orig.ToSComplex(z0)
	if err != nil {
		t.Fatalf("ToSComplex: %s", err)
	}
	back, err := FromSComplex(s, z0)
	if err != nil {
		t.Fatalf("FromSComplex: %s", err)
	}
	if !approxEqual(back.A(), orig.A(), 1e-9) || !approxEqual(back.D(), orig.D(), 1e-9) {
		t.Errorf("complex z0 round trip mismatch: got %v, want %v", back, orig)
	}
}

func TestInputImpedanceSingular(t *testing.T) {
	// C*Zload + D == 0 exactly: choose C=1, D=0, Zload=0
	r := New(1, 0, 1, 0)
	_, err := r.InputImpedance(0)
	if err == nil {
		t.Fatal("expected Singular error, got nil")
	}
}

func TestCharacteristicImpedanceNonsymmetric(t *testing.T) {
	r := New(2, 0, 0, 1) // A != D
	_, err := r.CharacteristicImpedance()
	if err == nil {
		t.Fatal("expected Nonsymmetric error, got nil")
	}
}

func TestQuarterWaveLineLoadedWith100Ohm(t *testing.T) {
	// beta*l = pi/2 => cosh(j*pi/2) = cos(pi/2) = 0, sinh(j*pi/2) = j*sin(pi/2) = j
	z0 := 50.0
	a := complex(0, 0)
	b := complex(0, z0) // j*Z0
	c := complex(0, 1.0/z0)
	d := complex(0, 0)
	line := New(a, b, c, d)
	if !line.IsReciprocal(1e-6) {
		t.Errorf("quarter wave line should be reciprocal, det=%v", line.Determinant())
	}
	zin, err := line.InputImpedance(100)
	if err != nil {
		t.Fatalf("InputImpedance: %s", err)
	}
	want := complex(25, 0)
	if !approxEqual(zin, want, 1) {
		t.Errorf("Zin = %v, want ~25", zin)
	}
}
