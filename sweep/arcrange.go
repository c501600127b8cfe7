package sweep

// ArcRange is the impedance/reflection-coefficient endpoint pair of a
// ±tolerance excursion around a nominal component value, used to size a
// Smith-chart arc annotation without running a full sweep.
type ArcRange struct {
	ValueMin, ValueMax   float64
	ZStart, ZStop        complex128
	GammaStart, GammaStop complex128
}

// CalculateArcRange builds the two-point sweep endpoints ±tolerance
// around nominalValue (20% by default), evaluates the input impedance at
// each endpoint through build, and maps both to Smith-chart reflection
// coefficients at z0System.
func CalculateArcRange(kind ComponentKind, nominalValue, freqHz, tolerance, z0System float64, build ComponentBuilder) (ArcRange, error) {
	if tolerance <= 0 {
		tolerance = 0.2
	}
	r := ArcRange{
		ValueMin: nominalValue * (1.0 - tolerance),
		ValueMax: nominalValue * (1.0 + tolerance),
	}

	netMin, err := build(kind, r.ValueMin, freqHz, 50.0, 1.0)
	if err != nil {
		return ArcRange{}, err
	}
	netMax, err := build(kind, r.ValueMax, freqHz, 50.0, 1.0)
	if err != nil {
		return ArcRange{}, err
	}

	zLoad := complex(z0System, 0)
	r.ZStart, err = netMin.InputImpedance(zLoad)
	if err != nil {
		return ArcRange{}, err
	}
	r.ZStop, err = netMax.InputImpedance(zLoad)
	if err != nil {
		return ArcRange{}, err
	}

	r.GammaStart = reflectionOf(r.ZStart, z0System)
	r.GammaStop = reflectionOf(r.ZStop, z0System)
	return r, nil
}

func reflectionOf(z complex128, z0System float64) complex128 {
	zNorm := z / complex(z0System, 0)
	return (zNorm - 1) / (zNorm + 1)
}
