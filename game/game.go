// Package game drives the widget animation showcase.
package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/animvec/anim"
	"github.com/pthm-cable/animvec/components"
	"github.com/pthm-cable/animvec/config"
	"github.com/pthm-cable/animvec/systems"
)

// Options configures a game instance.
type Options struct {
	Seed int64
}

// Game holds the demo state: the ECS world of animated widgets and the
// systems that drive them.
type Game struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Widget, components.Wander]
	filter *ecs.Filter1[components.Widget]

	animate *systems.AnimateSystem
	wander  *systems.WanderSystem

	rng *rand.Rand

	frozen bool
	panel  *TuningPanel

	width, height float64
}

// NewGame creates a game instance from the loaded configuration.
func NewGame(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:  world,
		mapper: ecs.NewMap2[components.Widget, components.Wander](world),
		filter: ecs.NewFilter1[components.Widget](world),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		width:  float64(cfg.Screen.Width),
		height: float64(cfg.Screen.Height),
	}

	bounds := systems.Bounds{
		Width:  g.width,
		Height: g.height,
		Margin: cfg.Demo.Margin,
	}
	g.animate = systems.NewAnimateSystem(world)
	g.wander = systems.NewWanderSystem(world, bounds, cfg.Demo.MinSize, cfg.Demo.MaxSize, g.rng)
	g.panel = NewTuningPanel(cfg)

	g.spawnWidgets(cfg)
	return g
}

// spawnWidgets populates the world with randomly placed widgets.
func (g *Game) spawnWidgets(cfg *config.Config) {
	for i := 0; i < cfg.Demo.Widgets; i++ {
		size := cfg.Demo.MinSize + g.rng.Float64()*(cfg.Demo.MaxSize-cfg.Demo.MinSize)
		motion := anim.NewFrom([]float64{
			g.rng.Float64() * g.width,
			g.rng.Float64() * g.height,
			size,
		})
		tint := anim.NewFrom([]float64{
			40 + g.rng.Float64()*215,
			40 + g.rng.Float64()*215,
			40 + g.rng.Float64()*215,
		})

		widget := &components.Widget{Motion: motion, Tint: tint}
		wander := &components.Wander{
			// Staggered so the first retargets don't fire in lockstep
			Countdown: g.rng.Float64() * cfg.Demo.RetargetInterval,
			Interval:  cfg.Demo.RetargetInterval,
		}
		g.mapper.NewEntity(widget, wander)
	}
}

// Update advances the demo by one frame of length dt. A zero dt (first
// frame, or a minimized window) is skipped.
func (g *Game) Update(dt float64) {
	if dt <= 0 {
		return
	}
	g.wander.Update(dt)
	g.animate.Update(dt)
}

// applyTuning pushes the panel's tuning onto every widget animator.
func (g *Game) applyTuning(t anim.Tuning) {
	query := g.filter.Query()
	for query.Next() {
		w := query.Get()
		for _, v := range []*anim.Vec{w.Motion, w.Tint} {
			v.SetAcceleration(t.Acceleration)
			v.SetAccelerationModifier(t.AccelerationModifier)
			v.SetDrag(t.Drag)
		}
	}
}

// retargetAll points every widget at the given position, keeping each
// widget's size and color targets.
func (g *Game) retargetAll(x, y float64) {
	query := g.filter.Query()
	for query.Next() {
		w := query.Get()
		w.Motion.SetLoose(false)
		w.Motion.SetTarget(components.AxisX, x)
		w.Motion.SetTarget(components.AxisY, y)
	}
}
