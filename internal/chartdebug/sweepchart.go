// Package chartdebug renders sweep and Smith-chart results for visual
// inspection: an HTML line-chart dashboard via go-echarts, and a PNG
// scatter plot of a Smith-chart point stream via gonum/plot.
package chartdebug

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"cascadix/sweep"
)

// SweepCharts renders a frequency-sweep Result as an HTML page with
// insertion-loss/return-loss and VSWR line charts.
type SweepCharts struct {
	Result *sweep.Result
	Title  string
}

// Render writes the HTML dashboard to w.
func (sc *SweepCharts) Render(w io.Writer) error {
	freqLabels := make([]string, len(sc.Result.FrequenciesHz))
	for i, f := range sc.Result.FrequenciesHz {
		freqLabels[i] = fmt.Sprintf("%.3g", f)
	}

	lossChart := charts.NewLine()
	lossChart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    sc.Title,
			Subtitle: "S11 / S21 magnitude vs frequency",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Frequency (Hz)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "dB", Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)
	lossChart.SetXAxis(freqLabels).
		AddSeries("S11 (dB)", toLineData(sc.Result.S11dB)).
		AddSeries("S21 (dB)", toLineData(sc.Result.S21dB))
	lossChart.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	vswrChart := charts.NewLine()
	vswrChart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: "VSWR"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Frequency (Hz)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "VSWR", Scale: opts.Bool(true)}),
	)
	vswrChart.SetXAxis(freqLabels).
		AddSeries("VSWR", toLineData(sc.Result.VSWR))

	page := components.NewPage()
	page.AddCharts(lossChart, vswrChart)
	return page.Render(w)
}

func toLineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}
