// Tuning search - finds animation constants that settle a step response
// quickly without overshoot.
//
// Usage: go run ./cmd/tune --output results/
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/animvec/anim"
	"github.com/pthm-cable/animvec/config"
	"github.com/pthm-cable/animvec/telemetry"
)

// Parameter bounds for the search.
var bounds = [3][2]float64{
	{100, 10000}, // acceleration
	{1, 3},       // acceleration modifier
	{1, 10},      // drag input
}

// clampParams keeps a candidate inside the bounds.
func clampParams(x []float64) [3]float64 {
	var out [3]float64
	for i := range out {
		v := x[i]
		if v < bounds[i][0] {
			v = bounds[i][0]
		}
		if v > bounds[i][1] {
			v = bounds[i][1]
		}
		out[i] = v
	}
	return out
}

// evaluate runs a step response under the candidate tuning and scores it.
// Lower is better: settle time in seconds, plus heavy penalties for
// overshoot and for never settling.
func evaluate(p [3]float64, target float64, maxTicks int) float64 {
	v := anim.NewTuned(1, anim.Tuning{
		Acceleration:         p[0],
		AccelerationModifier: p[1],
		Drag:                 p[2],
	})
	v.SetTarget(0, target)

	recorder := telemetry.NewRecorder(0, 1)
	dt := 1.0 / 60.0
	for i := 0; i < maxTicks; i++ {
		v.Tick(dt)
		recorder.Record(v, dt)
	}

	stats := telemetry.Summarize(recorder.Samples(), target*0.005)
	cost := stats.SettleTime
	if cost < 0 {
		cost = float64(maxTicks) * dt * 10 // never settled
	}
	cost += stats.MaxOvershoot * 100
	cost += stats.FinalError
	return cost
}

func main() {
	outputDir := flag.String("output", "", "Output directory for results")
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	target := flag.Float64("target", 100, "Step-response target distance")
	maxTicks := flag.Int("max-ticks", 1200, "Ticks per evaluation")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()

	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()
	logWriter.Write([]string{"eval", "cost", "acceleration", "modifier", "drag"})

	evalCount := 0
	bestCost := 1e18
	var bestParams [3]float64

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			p := clampParams(x)
			cost := evaluate(p, *target, *maxTicks)
			evalCount++

			if cost < bestCost {
				bestCost = cost
				bestParams = p
			}
			logWriter.Write([]string{
				fmt.Sprintf("%d", evalCount),
				fmt.Sprintf("%.6f", cost),
				fmt.Sprintf("%.2f", p[0]),
				fmt.Sprintf("%.4f", p[1]),
				fmt.Sprintf("%.4f", p[2]),
			})
			logWriter.Flush()
			return cost
		},
	}

	initX := []float64{
		baseCfg.Animation.Acceleration,
		baseCfg.Animation.AccelerationModifier,
		baseCfg.Animation.Drag,
	}

	fmt.Printf("Starting Nelder-Mead search from accel=%.0f mod=%.2f drag=%.1f\n",
		initX[0], initX[1], initX[2])

	result, err := optimize.Minimize(problem, initX, nil, &optimize.NelderMead{})
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}
	if result != nil && bestCost >= 1e18 {
		bestParams = clampParams(result.X)
	}

	fmt.Printf("\nSearch complete after %d evaluations\n", evalCount)
	fmt.Printf("Best cost: %.4f\n", bestCost)
	fmt.Printf("Best parameters:\n")
	fmt.Printf("  acceleration:          %.2f\n", bestParams[0])
	fmt.Printf("  acceleration_modifier: %.4f\n", bestParams[1])
	fmt.Printf("  drag:                  %.4f\n", bestParams[2])

	// Save the winning tuning as a loadable config
	bestCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to reload config: %v", err)
	}
	bestCfg.Animation.Acceleration = bestParams[0]
	bestCfg.Animation.AccelerationModifier = bestParams[1]
	bestCfg.Animation.Drag = bestParams[2]

	outPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(outPath); err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("\nBest config saved to: %s\n", outPath)
	}
}
