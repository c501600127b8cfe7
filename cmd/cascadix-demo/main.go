// Command cascadix-demo exercises a frequency sweep, a Monte Carlo
// tolerance analysis, and Smith-chart point generation end to end over a
// third-order Butterworth low-pass prototype, writing an HTML sweep
// dashboard and a PNG Smith-chart scatter to the working directory.
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"cascadix/components"
	"cascadix/internal/chartdebug"
	"cascadix/montecarlo"
	"cascadix/smithchart"
	"cascadix/sweep"
	"cascadix/twoport"
)

func main() {
	cutoff := 1.0e9
	z0 := 50.0

	fs, err := sweep.NewFrequencySweep(1e8, 1e10, 81, sweep.Log)
	if err != nil {
		log.Fatal(err)
	}

	omegaC := 2 * math.Pi * cutoff
	l := 0.7654 * z0 / omegaC
	c := 1.8478 / (omegaC * z0)
	builder := func(freqHz float64) (twoport.T, error) {
		l1, err := components.SeriesL(l, freqHz)
		if err != nil {
			return twoport.T{}, err
		}
		c2, err := components.ShuntC(c, freqHz)
		if err != nil {
			return twoport.T{}, err
		}
		l3, err := components.SeriesL(l, freqHz)
		if err != nil {
			return twoport.T{}, err
		}
		return twoport.Cascade(l1, c2, l3), nil
	}

	sweepResult, err := sweep.PerformSweep(builder, fs, complex(z0, 0), complex(z0, 0), complex(z0, 0))
	if err != nil {
		log.Fatal(err)
	}
	mid := len(sweepResult.S21dB) / 2
	fmt.Printf("swept %d points, S21 at midband ~ %.2f dB\n", len(sweepResult.FrequenciesHz), sweepResult.S21dB[mid])

	if f, err := os.Create("sweep.html"); err != nil {
		log.Println("create sweep.html:", err)
	} else {
		defer f.Close()
		sc := &chartdebug.SweepCharts{Result: sweepResult, Title: "Butterworth LC3 low-pass"}
		if err := sc.Render(f); err != nil {
			log.Println("render sweep chart:", err)
		}
	}

	analyzer := montecarlo.NewAnalyzer(1000, 42)
	analyzer.AddComponent(montecarlo.ComponentTolerance{
		Kind:         sweep.SeriesL,
		NominalValue: z0 / (2 * math.Pi * cutoff),
		Tolerance:    0.05,
		Distribution: montecarlo.Gaussian,
	})
	mcResults, err := analyzer.Analyze(cutoff, z0, complex(z0, 0))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("monte carlo yield (VSWR < 2.0): %.1f%%\n", mcResults.YieldPercent)

	gen := smithchart.NewGenerator(smithchart.DefaultConfig())
	points := gen.FromImpedances(mcResults.Impedances, z0)
	if err := chartdebug.SaveSmithScatter(points, "Monte Carlo impedance spread", "smith.png"); err != nil {
		log.Println("render smith chart:", err)
	}
}
