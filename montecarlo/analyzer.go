package montecarlo

import (
	"math"
	"math/cmplx"
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"cascadix"
	"cascadix/components"
	"cascadix/sweep"
	"cascadix/twoport"
)

func defaultSeed() int64 { return time.Now().UnixNano() }

// Results collects one Monte Carlo run's per-sample component values,
// input impedances, and S-parameters, plus the derived statistics
// computed by calculateStatistics.
type Results struct {
	NumSamples      int
	ComponentValues [][]float64 // [sample][component]
	Impedances      []complex128
	SParams         []twoport.S

	MeanImpedance complex128
	StdImpedance  complex128
	YieldPercent  float64
}

// PercentileImpedance returns the impedance at the given percentile
// (0-100) of the sample set ranked by magnitude.
func (r *Results) PercentileImpedance(percentile float64) complex128 {
	if len(r.Impedances) == 0 {
		return 0
	}
	sorted := append([]complex128(nil), r.Impedances...)
	sort.Slice(sorted, func(i, j int) bool { return cmplx.Abs(sorted[i]) < cmplx.Abs(sorted[j]) })
	index := int(percentile * float64(len(sorted)) / 100.0)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}

// VSWRDistribution returns the per-sample VSWR values in sample order.
func (r *Results) VSWRDistribution() []float64 {
	out := make([]float64, len(r.SParams))
	for i, s := range r.SParams {
		out[i] = s.VSWR()
	}
	return out
}

// FlattenedImpedances returns [re0, im0, re1, im1, ...] in sample order,
// the layout a downstream plotting or GPU consumer expects.
func (r *Results) FlattenedImpedances() []float32 {
	flat := make([]float32, 0, len(r.Impedances)*2)
	for _, z := range r.Impedances {
		flat = append(flat, float32(real(z)), float32(imag(z)))
	}
	return flat
}

// SmithCoordinates returns the reflection-coefficient coordinates
// [re0, im0, re1, im1, ...] of each sampled impedance normalized to z0.
func (r *Results) SmithCoordinates(z0 float64) []float32 {
	coords := make([]float32, 0, len(r.Impedances)*2)
	for _, z := range r.Impedances {
		zNorm := z / complex(z0, 0)
		gamma := (zNorm - 1) / (zNorm + 1)
		coords = append(coords, float32(real(gamma)), float32(imag(gamma)))
	}
	return coords
}

// Analyzer runs tolerance-sampled networks through the component library
// and accumulates statistics. NumSamples and Seed are fixed at
// construction so a run is reproducible; a zero seed draws entropy from
// the runtime clock instead.
type Analyzer struct {
	NumSamples  int
	rng         *rand.Rand
	components  []ComponentTolerance
	correlation *CorrelationMatrix
}

// NewAnalyzer constructs an Analyzer with a fixed sample count and seed.
// A zero seed seeds from the current time, trading reproducibility for a
// fresh draw every run.
func NewAnalyzer(numSamples int, seed int64) *Analyzer {
	if seed == 0 {
		seed = defaultSeed()
	}
	return &Analyzer{
		NumSamples: numSamples,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// AddComponent registers a toleranced component in the network, in the
// order it should be cascaded.
func (a *Analyzer) AddComponent(c ComponentTolerance) {
	a.components = append(a.components, c)
}

// SetCorrelationMatrix installs the correlation matrix Analyze draws
// component samples through. m's size must match the number of
// components registered with AddComponent by the time Analyze runs; pass
// nil to go back to independent sampling.
func (a *Analyzer) SetCorrelationMatrix(m *CorrelationMatrix) {
	a.correlation = m
}

// Analyze draws NumSamples networks, cascading each sampled component in
// registration order, and returns the accumulated results with
// statistics computed. If a correlation matrix has been installed via
// SetCorrelationMatrix, components are sampled jointly: one standard
// normal per component is drawn, correlated through the matrix's
// Cholesky factor, and each component's value is derived from its
// correlated standard normal rather than an independent draw.
func (a *Analyzer) Analyze(freqHz, z0System float64, zLoad complex128) (*Results, error) {
	if freqHz <= 0 {
		for _, comp := range a.components {
			if comp.Kind != sweep.SeriesR && comp.Kind != sweep.ShuntR {
				return nil, cascadix.Kindf(cascadix.InvalidDistribution, "Analyze", "frequency must be > 0 for %v, got %v", comp.Kind, freqHz)
			}
		}
	}
	results := &Results{
		NumSamples:      a.NumSamples,
		ComponentValues: make([][]float64, 0, a.NumSamples),
		Impedances:      make([]complex128, 0, a.NumSamples),
		SParams:         make([]twoport.S, 0, a.NumSamples),
	}

	for i := 0; i < a.NumSamples; i++ {
		values := make([]float64, len(a.components))
		network := twoport.Identity()

		var correlatedZ []float64
		if a.correlation != nil {
			independent := make([]float64, len(a.components))
			for j := range a.components {
				independent[j] = distuv.Normal{Mu: 0, Sigma: 1, Src: a.rng}.Rand()
			}
			var err error
			correlatedZ, err = a.correlation.GenerateCorrelated(independent)
			if err != nil {
				return nil, err
			}
		}

		for j, comp := range a.components {
			var v float64
			var err error
			if correlatedZ != nil {
				v, err = comp.valueFromStandardNormal(correlatedZ[j])
			} else {
				v, err = comp.GenerateValue(a.rng)
			}
			if err != nil {
				return nil, err
			}
			values[j] = v
			componentNetwork, err := buildComponentNetwork(comp.Kind, v, freqHz)
			if err != nil {
				return nil, err
			}
			network = network.Cascade(componentNetwork)
		}
		results.ComponentValues = append(results.ComponentValues, values)

		zin, err := network.InputImpedance(zLoad)
		if err != nil {
			return nil, err
		}
		results.Impedances = append(results.Impedances, zin)

		s, err := network.ToS(z0System)
		if err != nil {
			return nil, err
		}
		results.SParams = append(results.SParams, s)
	}

	calculateStatistics(results)
	return results, nil
}

// AnalyzeTemperature runs Analyze at tempSteps evenly-spaced temperatures
// between tempMin and tempMax, adjusting each component's nominal value
// by its temperature coefficient before sampling, and concatenates the
// per-temperature impedance samples into one combined Results with
// NumSamples/tempSteps samples per step, rounded up.
func (a *Analyzer) AnalyzeTemperature(freqHz, tempMin, tempMax float64, tempSteps int, z0System float64, zLoad complex128) (*Results, error) {
	if tempSteps < 2 {
		return nil, cascadix.Kindf(cascadix.InvalidDistribution, "AnalyzeTemperature", "temp_steps must be >= 2, got %d", tempSteps)
	}
	combined := &Results{}
	tempStep := (tempMax - tempMin) / float64(tempSteps-1)
	samplesPerStep := (a.NumSamples + tempSteps - 1) / tempSteps
	if samplesPerStep < 1 {
		samplesPerStep = 1
	}

	for t := 0; t < tempSteps; t++ {
		temp := tempMin + float64(t)*tempStep
		subAnalyzer := &Analyzer{
			NumSamples:  samplesPerStep,
			rng:         rand.New(rand.NewSource(a.rng.Int63())),
			correlation: a.correlation,
		}
		for _, comp := range a.components {
			tempFactor := 1.0 + comp.TemperatureCoeffPPMPC*(temp-25.0)/1e6
			adjusted := comp
			adjusted.NominalValue = comp.NominalValue * tempFactor
			subAnalyzer.AddComponent(adjusted)
		}
		stepResults, err := subAnalyzer.Analyze(freqHz, z0System, zLoad)
		if err != nil {
			return nil, err
		}
		combined.Impedances = append(combined.Impedances, stepResults.Impedances...)
		combined.SParams = append(combined.SParams, stepResults.SParams...)
		combined.ComponentValues = append(combined.ComponentValues, stepResults.ComponentValues...)
	}

	combined.NumSamples = len(combined.Impedances)
	calculateStatistics(combined)
	return combined, nil
}

// calculateStatistics computes the mean impedance, the componentwise
// (real, imaginary separately, not complex modulus) standard deviation,
// and the yield rate of samples meeting VSWR < 2.0.
func calculateStatistics(r *Results) {
	if len(r.Impedances) == 0 {
		return
	}
	var sum complex128
	for _, z := range r.Impedances {
		sum += z
	}
	n := float64(len(r.Impedances))
	r.MeanImpedance = sum / complex(n, 0)

	var sumSqRe, sumSqIm float64
	for _, z := range r.Impedances {
		diff := z - r.MeanImpedance
		sumSqRe += real(diff) * real(diff)
		sumSqIm += imag(diff) * imag(diff)
	}
	denom := n - 1
	if denom < 1 {
		denom = 1
	}
	r.StdImpedance = complex(math.Sqrt(sumSqRe/denom), math.Sqrt(sumSqIm/denom))

	passCount := 0
	for _, s := range r.SParams {
		if s.VSWR() < 2.0 {
			passCount++
		}
	}
	r.YieldPercent = 100.0 * float64(passCount) / n
}

// buildComponentNetwork dispatches a tolerance-sampled value to the
// matching components constructor. TransmissionLineLength uses a fixed
// 50 ohm characteristic impedance and unity velocity factor.
func buildComponentNetwork(kind sweep.ComponentKind, value, freqHz float64) (twoport.T, error) {
	switch kind {
	case sweep.SeriesR:
		return components.SeriesR(value)
	case sweep.SeriesL:
		return components.SeriesL(value, freqHz)
	case sweep.SeriesC:
		return components.SeriesC(value, freqHz)
	case sweep.ShuntR:
		return components.ShuntR(value)
	case sweep.ShuntL:
		return components.ShuntL(value, freqHz)
	case sweep.ShuntC:
		return components.ShuntC(value, freqHz)
	case sweep.TransmissionLineLength:
		return components.TransmissionLineReal(value, 50.0, freqHz, 1.0, 0)
	default:
		return twoport.Identity(), nil
	}
}
