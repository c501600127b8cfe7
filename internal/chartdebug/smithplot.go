package chartdebug

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"cascadix/smithchart"
)

// SaveSmithScatter renders a smithchart.Point stream as a PNG scatter
// plot over the [-1,1]x[-1,1] reflection-coefficient plane and writes it
// to path.
func SaveSmithScatter(points []smithchart.Point, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Re(Gamma)"
	p.Y.Label.Text = "Im(Gamma)"
	p.X.Min, p.X.Max = -1.05, 1.05
	p.Y.Min, p.Y.Max = -1.05, 1.05

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.Re, Y: pt.Im}
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("chartdebug: building scatter: %w", err)
	}
	p.Add(scatter)

	rim, err := unitCircleLine(200)
	if err != nil {
		return fmt.Errorf("chartdebug: building rim: %w", err)
	}
	p.Add(rim)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("chartdebug: saving %s: %w", path, err)
	}
	return nil
}

func unitCircleLine(n int) (*plotter.Line, error) {
	xys := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		xys[i] = plotter.XY{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return plotter.NewLine(xys)
}
