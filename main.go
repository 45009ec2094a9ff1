package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/animvec/anim"
	"github.com/pthm-cable/animvec/config"
	"github.com/pthm-cable/animvec/game"
	"github.com/pthm-cable/animvec/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run a step-response experiment without graphics")
	outputDir := flag.String("output-dir", "", "Output directory for CSV traces and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 600, "Headless run length in ticks")
	target := flag.Float64("target", 100, "Headless step-response target")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// The configured tuning becomes the construction-time default for
	// every animator that does not override it.
	anim.SetDefaults(anim.Tuning{
		Acceleration:         cfg.Animation.Acceleration,
		AccelerationModifier: cfg.Animation.AccelerationModifier,
		Drag:                 cfg.Animation.Drag,
	})

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *headless {
		if err := runHeadless(cfg, *outputDir, *maxTicks, *target); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "animvec demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGame(game.Options{Seed: rngSeed})
	slog.Info("starting demo", "seed", rngSeed, "widgets", cfg.Demo.Widgets)

	for !rl.WindowShouldClose() {
		g.HandleInput()
		g.Update(float64(rl.GetFrameTime()))
		g.Draw()
	}
}

// runHeadless runs a single-axis step response under the configured
// tuning and writes the trace and summary to the output directory.
func runHeadless(cfg *config.Config, outputDir string, maxTicks int, target float64) error {
	out, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := out.WriteConfig(cfg); err != nil {
		return err
	}

	v := anim.New(1)
	v.SetTarget(0, target)

	stride := cfg.Telemetry.SampleStride
	recorder := telemetry.NewRecorder(0, stride)

	dt := 1.0 / float64(cfg.Screen.TargetFPS)
	for i := 0; i < maxTicks; i++ {
		v.Tick(dt)
		recorder.Record(v, dt)
	}

	stats := telemetry.Summarize(recorder.Samples(), 0.5)
	if err := out.WriteTrace(recorder.Samples()); err != nil {
		return err
	}
	if err := out.WriteStats(stats); err != nil {
		return err
	}

	slog.Info("step response complete",
		"target", target,
		"ticks", stats.Ticks,
		"settle_time", stats.SettleTime,
		"final_error", stats.FinalError,
		"max_overshoot", stats.MaxOvershoot,
	)
	return nil
}
