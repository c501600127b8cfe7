package smithchart

// FromImpedancesDirect is an alias of FromImpedances for callers coming
// from impedance data that is already known to need no frequency-axis
// interpolation (e.g. a pre-flattened data set from another tool).
func (g *Generator) FromImpedancesDirect(impedances []complex128, z0Reference float64) []Point {
	return g.FromImpedances(impedances, z0Reference)
}

// TraceMeta is the renderer-facing description of a trace: how a
// consumer (an HTML/PNG exporter, say) should draw the Points slice it
// accompanies. It carries no algebra of its own.
type TraceMeta struct {
	Kind        string
	RGBA        [4]float64
	LineWidth   float64
	Opacity     float64
	ShowMarkers bool
	Label       string
}

// PointStream is the flattened, renderer-friendly form of a []Point: Re/Im
// pairs packed into XY, with an optional parallel Value (e.g. frequency
// or swept component value) used for colormaps or tooltips.
type PointStream struct {
	XY    []float64
	Value []float64
	Meta  TraceMeta
}

// NewPointStream flattens points into a PointStream, pairing each with
// the corresponding entry of values (e.g. a frequency/value axis) when
// provided; values may be nil or shorter than points, in which case
// Value is left shorter than XY/2.
func NewPointStream(points []Point, values []float64, meta TraceMeta) PointStream {
	xy := make([]float64, 0, len(points)*2)
	for _, p := range points {
		xy = append(xy, p.Re, p.Im)
	}
	return PointStream{XY: xy, Value: values, Meta: meta}
}
