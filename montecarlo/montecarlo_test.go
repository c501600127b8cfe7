package montecarlo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cascadix/sweep"
)

func TestAnalyzeSeriesRSmallToleranceStaysWellMatched(t *testing.T) {
	analyzer := NewAnalyzer(1000, 42)
	analyzer.AddComponent(ComponentTolerance{
		Kind:         sweep.SeriesR,
		NominalValue: 5,
		Tolerance:    0.05,
		Distribution: Gaussian,
	})

	results, err := analyzer.Analyze(1e9, 50, complex(50, 0))
	require.NoError(t, err)
	require.Len(t, results.Impedances, 1000)

	// a small series resistor between a matched 50 ohm source and load
	// perturbs the input impedance only slightly off 55 ohm, so nearly
	// every sample should still clear VSWR < 2.0.
	assert.InDelta(t, 55.0, real(results.MeanImpedance), 1.0)
	assert.Greater(t, results.YieldPercent, 90.0)
}

func TestAnalyzeDeterministicWithFixedSeed(t *testing.T) {
	build := func() (*Results, error) {
		a := NewAnalyzer(200, 7)
		a.AddComponent(ComponentTolerance{
			Kind: sweep.SeriesC, NominalValue: 10e-12, Tolerance: 0.1, Distribution: Uniform,
		})
		return a.Analyze(1e9, 50, complex(50, 0))
	}
	r1, err := build()
	require.NoError(t, err)
	r2, err := build()
	require.NoError(t, err)
	assert.Equal(t, r1.Impedances, r2.Impedances)
}

func TestComponentToleranceDistributionsStayWithinBounds(t *testing.T) {
	nominal, tol := 100.0, 0.2
	minVal, maxVal := nominal*(1-tol), nominal*(1+tol)
	for _, dist := range []Distribution{Uniform, Gaussian, Triangular} {
		ct := ComponentTolerance{Kind: sweep.SeriesR, NominalValue: nominal, Tolerance: tol, Distribution: dist}
		a := NewAnalyzer(1, 1)
		for i := 0; i < 500; i++ {
			v, err := ct.GenerateValue(a.rng)
			require.NoError(t, err)
			if v < minVal-1e-9 || v > maxVal+1e-9 {
				t.Fatalf("%v sample %v outside [%v, %v]", dist, v, minVal, maxVal)
			}
		}
	}
}

func TestAnalyzeTemperatureSweep(t *testing.T) {
	analyzer := NewAnalyzer(400, 11)
	analyzer.AddComponent(ComponentTolerance{
		Kind: sweep.SeriesR, NominalValue: 50, Tolerance: 0.02, Distribution: Uniform,
		TemperatureCoeffPPMPC: 100,
	})
	results, err := analyzer.AnalyzeTemperature(1e9, -40, 85, 5, 50, complex(50, 0))
	require.NoError(t, err)
	if results.NumSamples == 0 {
		t.Fatal("expected nonzero combined samples across temperature steps")
	}
}

func TestResultsPercentileAndSmithCoordinates(t *testing.T) {
	analyzer := NewAnalyzer(100, 3)
	analyzer.AddComponent(ComponentTolerance{
		Kind: sweep.SeriesR, NominalValue: 50, Tolerance: 0.1, Distribution: Gaussian,
	})
	results, err := analyzer.Analyze(1e9, 50, complex(50, 0))
	require.NoError(t, err)

	median := results.PercentileImpedance(50)
	if real(median) <= 0 {
		t.Errorf("median impedance should have positive resistance, got %v", median)
	}

	coords := results.SmithCoordinates(50)
	require.Len(t, coords, 200)
	for _, v := range coords {
		if math.Abs(float64(v)) > 1.001 {
			t.Errorf("smith coordinate %v outside [-1,1]", v)
		}
	}
}

func TestCorrelationMatrixIdentityPassesThrough(t *testing.T) {
	cm := NewCorrelationMatrix(2)
	out, err := cm.GenerateCorrelated([]float64{1, -1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out[0], 1e-9)
	assert.InDelta(t, -1.0, out[1], 1e-9)
}

func TestCorrelationMatrixAppliesCorrelation(t *testing.T) {
	cm := NewCorrelationMatrix(2)
	cm.SetCorrelation(0, 1, 0.5)
	out, err := cm.GenerateCorrelated([]float64{1, 0})
	require.NoError(t, err)
	// a positive cross-correlation should make the correlated second
	// component move with the first, rather than staying at zero.
	if out[1] == 0 {
		t.Errorf("expected correlated second sample to move away from 0, got %v", out[1])
	}
}

func TestCorrelationMatrixWrongLength(t *testing.T) {
	cm := NewCorrelationMatrix(3)
	if _, err := cm.GenerateCorrelated([]float64{1, 2}); err == nil {
		t.Fatal("expected InvalidDistribution for mismatched vector length")
	}
}

func TestAnalyzeWithCorrelationMatrixMovesComponentsTogether(t *testing.T) {
	analyzer := NewAnalyzer(500, 99)
	analyzer.AddComponent(ComponentTolerance{
		Kind: sweep.SeriesR, NominalValue: 50, Tolerance: 0.2, Distribution: Gaussian,
	})
	analyzer.AddComponent(ComponentTolerance{
		Kind: sweep.SeriesR, NominalValue: 50, Tolerance: 0.2, Distribution: Gaussian,
	})
	cm := NewCorrelationMatrix(2)
	cm.SetCorrelation(0, 1, 0.95)
	analyzer.SetCorrelationMatrix(cm)

	results, err := analyzer.Analyze(1e9, 50, complex(50, 0))
	require.NoError(t, err)
	require.Len(t, results.ComponentValues, 500)

	// with a strong positive correlation the two series resistors should
	// deviate from their nominal value in the same direction far more
	// often than independent draws would.
	agree := 0
	for _, sample := range results.ComponentValues {
		if (sample[0]-50 > 0) == (sample[1]-50 > 0) {
			agree++
		}
	}
	assert.Greater(t, agree, 400)
}

func TestGenerateValueFloorsAtOnePercentForWideTolerance(t *testing.T) {
	for _, dist := range []Distribution{Uniform, Gaussian, Triangular} {
		ct := ComponentTolerance{Kind: sweep.SeriesR, NominalValue: 100, Tolerance: 1.5, Distribution: dist}
		a := NewAnalyzer(1, 5)
		for i := 0; i < 500; i++ {
			v, err := ct.GenerateValue(a.rng)
			require.NoError(t, err)
			if v < 1.0-1e-9 {
				t.Fatalf("%v sample %v fell below the 1%% floor of nominal", dist, v)
			}
		}
	}
}
