package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/animvec/components"
)

// Bounds represents the demo screen bounds.
type Bounds struct {
	Width, Height float64
	Margin        float64 // Random targets stay this far from the edges
}

// WanderSystem periodically assigns new random targets to tethered
// widgets and bounces loose widgets off the screen edges.
type WanderSystem struct {
	filter  ecs.Filter2[components.Widget, components.Wander]
	bounds  Bounds
	rng     *rand.Rand
	minSize float64
	maxSize float64
}

// NewWanderSystem creates a new wander system.
func NewWanderSystem(w *ecs.World, bounds Bounds, minSize, maxSize float64, rng *rand.Rand) *WanderSystem {
	return &WanderSystem{
		filter:  *ecs.NewFilter2[components.Widget, components.Wander](w),
		bounds:  bounds,
		rng:     rng,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Update runs the wander system.
func (s *WanderSystem) Update(dt float64) {
	query := s.filter.Query()
	for query.Next() {
		widget, wander := query.Get()

		if widget.Motion.Loose() {
			s.bounce(widget)
			continue
		}

		wander.Countdown -= dt
		if wander.Countdown > 0 {
			continue
		}
		// Jittered interval so the widgets don't all move at once
		wander.Countdown = wander.Interval * (0.5 + s.rng.Float64())
		s.Retarget(widget)
	}
}

// Retarget assigns a new random position, size and color target.
func (s *WanderSystem) Retarget(widget *components.Widget) {
	m := s.bounds.Margin
	widget.Motion.SetTarget(components.AxisX, m+s.rng.Float64()*(s.bounds.Width-2*m))
	widget.Motion.SetTarget(components.AxisY, m+s.rng.Float64()*(s.bounds.Height-2*m))
	widget.Motion.SetTarget(components.AxisSize, s.minSize+s.rng.Float64()*(s.maxSize-s.minSize))

	widget.Tint.SetTarget(components.AxisR, 40+s.rng.Float64()*215)
	widget.Tint.SetTarget(components.AxisG, 40+s.rng.Float64()*215)
	widget.Tint.SetTarget(components.AxisB, 40+s.rng.Float64()*215)
}

// Scatter flings every widget into loose flight with a random velocity
// kick; the widgets coast and slow under drag until gathered again.
func (s *WanderSystem) Scatter(speed float64) {
	query := s.filter.Query()
	for query.Next() {
		widget, _ := query.Get()
		angle := s.rng.Float64() * 2 * math.Pi
		widget.Motion.SetLoose(true)
		widget.Motion.SetChange(components.AxisX, math.Cos(angle)*speed)
		widget.Motion.SetChange(components.AxisY, math.Sin(angle)*speed)
	}
}

// Gather tethers every widget again and gives each a fresh target.
func (s *WanderSystem) Gather() {
	query := s.filter.Query()
	for query.Next() {
		widget, wander := query.Get()
		widget.Motion.SetLoose(false)
		wander.Countdown = 0
		s.Retarget(widget)
	}
}

// SetFrozen stops or resumes all widget animation in place.
func (s *WanderSystem) SetFrozen(frozen bool) {
	query := s.filter.Query()
	for query.Next() {
		widget, _ := query.Get()
		widget.Motion.SetAnimate(!frozen)
		widget.Tint.SetAnimate(!frozen)
	}
}

// bounce reflects a loose widget's velocity at the screen edges.
func (s *WanderSystem) bounce(widget *components.Widget) {
	x := widget.Motion.Value(components.AxisX)
	y := widget.Motion.Value(components.AxisY)
	vx := widget.Motion.Change(components.AxisX)
	vy := widget.Motion.Change(components.AxisY)

	if (x < 0 && vx < 0) || (x > s.bounds.Width && vx > 0) {
		widget.Motion.SetChange(components.AxisX, -vx)
	}
	if (y < 0 && vy < 0) || (y > s.bounds.Height && vy > 0) {
		widget.Motion.SetChange(components.AxisY, -vy)
	}
}
