package sweep

import (
	"math"

	"cascadix"
	"cascadix/twoport"
	"cascadix/validate"
)

// ComponentKind names the value-swept component type. Only the kinds that
// have a single free parameter (the swept value) are represented; a
// transmission line's length is what's swept, at a fixed characteristic
// impedance and frequency carried alongside the sweep.
type ComponentKind int

const (
	SeriesR ComponentKind = iota
	SeriesL
	SeriesC
	ShuntR
	ShuntL
	ShuntC
	TransmissionLineLength
)

func (k ComponentKind) String() string {
	switch k {
	case SeriesR:
		return "series_r"
	case SeriesL:
		return "series_l"
	case SeriesC:
		return "series_c"
	case ShuntR:
		return "shunt_r"
	case ShuntL:
		return "shunt_l"
	case ShuntC:
		return "shunt_c"
	case TransmissionLineLength:
		return "transmission_line"
	default:
		return "unknown"
	}
}

// ComponentKindFromName looks up a ComponentKind by its String() form, for
// callers that describe a sweep target by name (config files, CLI flags).
func ComponentKindFromName(name string) (ComponentKind, error) {
	kinds := []ComponentKind{SeriesR, SeriesL, SeriesC, ShuntR, ShuntL, ShuntC, TransmissionLineLength}
	for _, k := range kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, cascadix.Kindf(cascadix.InvalidComponent, "ComponentKindFromName", "unknown component kind %q", name)
}

// ComponentSweep describes a sweep over a single component's value, at a
// fixed frequency. For TransmissionLineLength, Z0Real and VelocityFactor
// are used in place of the reactive-element formulas.
type ComponentSweep struct {
	Kind           ComponentKind
	StartValue     float64
	StopValue      float64
	NumPoints      int
	Distribution   Distribution
	FreqHz         float64
	Z0Real         float64
	VelocityFactor float64
}

// Values enumerates the NumPoints component-value samples.
func (cs ComponentSweep) Values() ([]float64, error) {
	if err := validate.CheckSweep("ComponentSweep.Values", validate.SweepParams{
		Start: cs.StartValue, Stop: cs.StopValue, NumPoints: cs.NumPoints, Log: cs.Distribution == Log,
	}); err != nil {
		return nil, err
	}
	values := make([]float64, 0, cs.NumPoints)
	if cs.Distribution == Linear {
		step := (cs.StopValue - cs.StartValue) / float64(cs.NumPoints-1)
		for i := 0; i < cs.NumPoints; i++ {
			values = append(values, cs.StartValue+float64(i)*step)
		}
		return values, nil
	}
	logStart := math.Log10(cs.StartValue)
	logStop := math.Log10(cs.StopValue)
	logStep := (logStop - logStart) / float64(cs.NumPoints-1)
	for i := 0; i < cs.NumPoints; i++ {
		values = append(values, math.Pow(10, logStart+float64(i)*logStep))
	}
	return values, nil
}

// ComponentBuilder builds the two-port for the component at a specific
// swept value, dispatching on Kind. The caller supplies the constructor closures
// so this package does not need to import components directly and create
// an import cycle risk as the component library grows.
type ComponentBuilder func(kind ComponentKind, value float64, freqHz, z0Real, velocityFactor float64) (twoport.T, error)

// ComponentResult holds the parallel output arrays of a component-value
// sweep: input impedance, input admittance, S-parameters, and reflection
// coefficient at each swept value.
type ComponentResult struct {
	Values                []float64
	ZIn                   []complex128
	YIn                   []complex128
	S                     []twoport.S
	ReflectionCoefficient []complex128
}

// PerformComponentSweep evaluates build at each swept component value,
// cascading it between the fixed before/after two-ports (either of which
// may be twoport.Identity() when unused), and computes input impedance,
// input admittance, S-parameters and the reflection coefficient at z0Real
// under load zLoad.
func PerformComponentSweep(cs ComponentSweep, build ComponentBuilder, before, after twoport.T, z0Real float64, zLoad complex128) (*ComponentResult, error) {
	values, err := cs.Values()
	if err != nil {
		return nil, err
	}
	n := len(values)
	res := &ComponentResult{
		Values:                values,
		ZIn:                   make([]complex128, 0, n),
		YIn:                   make([]complex128, 0, n),
		S:                     make([]twoport.S, 0, n),
		ReflectionCoefficient: make([]complex128, 0, n),
	}

	for _, v := range values {
		component, err := build(cs.Kind, v, cs.FreqHz, cs.Z0Real, cs.VelocityFactor)
		if err != nil {
			return nil, cascadix.Kindf(errKindOrSingular(err), "PerformComponentSweep", "builder failed at value %v: %w", v, err)
		}
		network := twoport.Cascade(before, component, after)

		zin, err := network.InputImpedance(zLoad)
		if err != nil {
			return nil, cascadix.Kindf(errKindOrSingular(err), "PerformComponentSweep", "InputImpedance failed at value %v: %w", v, err)
		}
		var yin complex128
		if validate.NearZero(zin) {
			yin = complex(1/cascadix.DenominatorGuard, 0)
		} else {
			yin = 1 / zin
		}
		s, err := network.ToS(z0Real)
		if err != nil {
			return nil, cascadix.Kindf(errKindOrSingular(err), "PerformComponentSweep", "ToS failed at value %v: %w", v, err)
		}
		gamma := (zin - complex(z0Real, 0)) / (zin + complex(z0Real, 0))

		res.ZIn = append(res.ZIn, zin)
		res.YIn = append(res.YIn, yin)
		res.S = append(res.S, s)
		res.ReflectionCoefficient = append(res.ReflectionCoefficient, gamma)
	}

	return res, nil
}
