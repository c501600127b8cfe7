package smithchart

import (
	"cascadix/sweep"
	"cascadix/twoport"
)

// MeshBuilder constructs the two-port network to evaluate at one
// (frequency, component-value) grid node.
type MeshBuilder func(freqHz, value float64) (twoport.T, error)

// GridPoint is one node of a frequency x component-value mesh, carrying
// the (f, value) coordinate that produced it, the resulting input
// impedance, and its mapped Smith-chart point.
type GridPoint struct {
	FreqHz, Value float64
	ZIn           complex128
	Gamma         Point
}

// Triangle indexes three GridPoints (by position in the flattened Mesh
// slice) forming one cell of the triangulated overlay.
type Triangle [3]int

// Mesh is a 2-D frequency x component-value grid mapped into the Gamma
// plane via a MeshBuilder, plus its Delaunay-free regular triangulation
// (each quad cell split along one diagonal), for renderers that want
// shaded cells rather than bare constant-R/X curve families. NR is the
// number of frequency rows, NC the number of component-value columns.
type Mesh struct {
	Points    []GridPoint
	Triangles []Triangle
	NR, NC    int
}

// GenerateMesh evaluates builder at every (frequency, value) pair of
// frequencies x values, in row-major (frequency-major) order, and maps
// each resulting input impedance under loadImpedance to a Smith-chart
// point at z0Reference.
func GenerateMesh(builder MeshBuilder, frequencies sweep.FrequencySweep, values sweep.ComponentSweep, loadImpedance complex128, z0Reference float64) (Mesh, error) {
	freqs := frequencies.Values()
	vals, err := values.Values()
	if err != nil {
		return Mesh{}, err
	}
	nr, nc := len(freqs), len(vals)

	points := make([]GridPoint, 0, nr*nc)
	for _, f := range freqs {
		for _, v := range vals {
			network, err := builder(f, v)
			if err != nil {
				return Mesh{}, err
			}
			zin, err := network.InputImpedance(loadImpedance)
			if err != nil {
				return Mesh{}, err
			}
			gamma := ImpedanceToReflection(zin, z0Reference)
			points = append(points, GridPoint{
				FreqHz: f,
				Value:  v,
				ZIn:    zin,
				Gamma:  Point{Re: clampAxis(real(gamma)), Im: clampAxis(imag(gamma))},
			})
		}
	}

	triangles := make([]Triangle, 0, 2*(nr-1)*(nc-1))
	index := func(i, j int) int { return i*nc + j }
	for i := 0; i < nr-1; i++ {
		for j := 0; j < nc-1; j++ {
			a := index(i, j)
			b := index(i+1, j)
			c := index(i, j+1)
			d := index(i+1, j+1)
			triangles = append(triangles, Triangle{a, b, c}, Triangle{b, d, c})
		}
	}

	return Mesh{Points: points, Triangles: triangles, NR: nr, NC: nc}, nil
}

func clampAxis(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
