// Package anim implements drag-and-acceleration based value animation.
//
// A Vec animates a fixed-length vector of values uniformly toward a target
// vector, so multiple attributes of a widget (position, size, color
// channels) move in unison without discontinuities. The caller supplies a
// delta time once per frame via Tick and reads back the current values.
package anim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vec is a vector of values animated uniformly toward per-axis targets.
//
// In the default tethered mode, the velocity is re-derived every tick to
// point at the current target, driven by a bounded acceleration curve and
// slowed by exponential drag, and never overshoots. In loose mode the
// values coast freely under drag with no pull toward a target. A Vec is
// not safe for concurrent use.
type Vec struct {
	values []float64
	target []float64
	change []float64

	// Reused per tick to avoid allocating in the frame loop.
	scratch []float64

	animate      bool
	loose        bool
	recordChange bool

	accel    float64
	accelMod float64
	drag     float64 // stored decay factor in (0, 1]
}

// New creates an animator of the given length with all values, targets and
// rates at zero, tuned with the package defaults.
func New(length int) *Vec {
	return NewTuned(length, Tuning{})
}

// NewTuned creates an animator of the given length with the given tuning.
// Zero tuning fields fall back to the package defaults.
func NewTuned(length int, t Tuning) *Vec {
	v := &Vec{
		values:       make([]float64, length),
		target:       make([]float64, length),
		change:       make([]float64, length),
		scratch:      make([]float64, length),
		animate:      true,
		recordChange: true,
	}
	t = t.resolve()
	v.SetAcceleration(t.Acceleration)
	v.SetAccelerationModifier(t.AccelerationModifier)
	v.SetDrag(t.Drag)
	return v
}

// NewFrom creates an animator initialized from the given vector, with the
// target equal to the initial values.
func NewFrom(vector []float64) *Vec {
	return NewFromTuned(vector, Tuning{})
}

// NewFromTuned creates an animator initialized from the given vector with
// the given tuning.
func NewFromTuned(vector []float64, t Tuning) *Vec {
	v := NewTuned(len(vector), t)
	copy(v.values, vector)
	copy(v.target, vector)
	return v
}

// Tick advances the animation by one frame of length dt. Call once per
// frame with the frame's delta time in seconds.
func (v *Vec) Tick(dt float64) {
	if v.animate {
		if v.loose {
			v.tickLoose(dt)
		} else {
			v.tickTethered(dt)
		}
		floats.AddScaled(v.values, dt, v.change)
		return
	}

	// Instant mode: snap to target. With recordChange set, keep a
	// plausible exit velocity so a later resume looks continuous instead
	// of starting from rest.
	if v.recordChange {
		estimate := v.scratch
		floats.SubTo(estimate, v.target, v.values)
		floats.Scale(1/dt, estimate)
		if floats.Dot(estimate, estimate) > floats.Dot(v.change, v.change) {
			copy(v.change, estimate)
		} else {
			const keep, blend = 1.0 / 3, 2.0 / 3
			floats.Scale(keep, v.change)
			floats.AddScaled(v.change, blend, estimate)
		}
	} else {
		zero(v.change)
	}
	copy(v.values, v.target)
}

// tickLoose decays the change vector under drag and keeps the target on
// the coast-to point of the current trajectory, so a switch back to
// tethered mode is seamless.
func (v *Vec) tickLoose(dt float64) {
	if v.drag >= 1 {
		// Infinite drag stops the trajectory on the spot.
		zero(v.change)
		copy(v.target, v.values)
		return
	}
	floats.Scale(math.Pow(v.drag, dt), v.change)
	floats.AddScaledTo(v.target, v.values, -1/math.Log(v.drag), v.change)
}

// tickTethered projects the N-dimensional state onto the 1-D distance to
// target, solves the scalar rate, and rescales it back along the current
// target direction. Re-deriving the direction every frame makes the
// velocity re-orient continuously when the target moves.
func (v *Vec) tickTethered(dt float64) {
	diff := v.scratch
	floats.SubTo(diff, v.target, v.values)
	dist := floats.Norm(diff, 2)
	if dist == 0 {
		dist = minDistance
	}

	// Signed scalar component of the change vector along the difference
	// direction; zero when either vector degenerates.
	cd := floats.Dot(v.change, diff)
	dd := floats.Dot(diff, diff)
	magC := math.Sqrt(floats.Dot(v.change, v.change))
	var rate float64
	if den := dd * magC; den != 0 {
		rate = cd * math.Abs(cd) / den
	}

	rate = nextRate(rate, dist, v.accel, v.accelMod, v.drag, dt)

	floats.ScaleTo(v.change, rate/dist, diff)
}

// Jump immediately snaps all values to their targets and zeroes the rates.
func (v *Vec) Jump() {
	copy(v.values, v.target)
	zero(v.change)
}

// JumpAxis snaps a single axis to its target and zeroes its rate.
func (v *Vec) JumpAxis(axis int) {
	v.values[axis] = v.target[axis]
	v.change[axis] = 0
}

// CapChange clamps the magnitude of every axis rate to at most limit,
// preserving sign.
func (v *Vec) CapChange(limit float64) {
	for i, c := range v.change {
		if math.Abs(c) > limit {
			v.change[i] = math.Copysign(limit, c)
		}
	}
}

// CapChangeAxis clamps the magnitude of a single axis rate to at most
// limit, preserving sign.
func (v *Vec) CapChangeAxis(limit float64, axis int) {
	if math.Abs(v.change[axis]) > limit {
		v.change[axis] = math.Copysign(limit, v.change[axis])
	}
}

// CopyAxisFrom splices one axis's full (value, target, rate) state from
// another animator, which may have a different length.
func (v *Vec) CopyAxisFrom(src *Vec, axis, srcAxis int) {
	v.values[axis] = src.values[srcAxis]
	v.target[axis] = src.target[srcAxis]
	v.change[axis] = src.change[srcAxis]
}

// DistanceToTarget returns the Euclidean distance between the current
// values and the target.
func (v *Vec) DistanceToTarget() float64 {
	floats.SubTo(v.scratch, v.target, v.values)
	return floats.Norm(v.scratch, 2)
}

// Len returns the number of animated axes.
func (v *Vec) Len() int {
	return len(v.values)
}

// Value returns the current value of an axis.
func (v *Vec) Value(axis int) float64 {
	return v.values[axis]
}

// Target returns the target value of an axis.
func (v *Vec) Target(axis int) float64 {
	return v.target[axis]
}

// Change returns the current rate of change of an axis, in value units per
// second.
func (v *Vec) Change(axis int) float64 {
	return v.change[axis]
}

// SetTarget sets the target value of an axis. The current value is left
// untouched; the animation drives it over on subsequent ticks.
func (v *Vec) SetTarget(axis int, value float64) {
	v.target[axis] = value
}

// SetChange overrides the current rate of change of an axis.
func (v *Vec) SetChange(axis int, value float64) {
	v.change[axis] = value
}

// X returns the current value of axis 0.
func (v *Vec) X() float64 { return v.values[0] }

// Y returns the current value of axis 1.
func (v *Vec) Y() float64 { return v.values[1] }

// Z returns the current value of axis 2.
func (v *Vec) Z() float64 { return v.values[2] }

// SetX sets the target of axis 0.
func (v *Vec) SetX(value float64) { v.target[0] = value }

// SetY sets the target of axis 1.
func (v *Vec) SetY(value float64) { v.target[1] = value }

// SetZ sets the target of axis 2.
func (v *Vec) SetZ(value float64) { v.target[2] = value }

// Animate reports whether ticking animates toward the target. When false,
// Tick snaps values to the target instantly.
func (v *Vec) Animate() bool {
	return v.animate
}

// SetAnimate enables or disables animation. Disabling freezes the vector
// in place: the rates are zeroed and the target snaps to the current
// values immediately, before any Tick runs.
func (v *Vec) SetAnimate(animate bool) {
	v.animate = animate
	if !animate {
		zero(v.change)
		copy(v.target, v.values)
	}
}

// Loose reports whether the values are left to move freely under drag.
func (v *Vec) Loose() bool {
	return v.loose
}

// SetLoose switches between tethered animation toward the target (false)
// and free drag-only movement (true).
func (v *Vec) SetLoose(loose bool) {
	v.loose = loose
}

// RecordChange reports whether instant-mode ticks estimate an exit
// velocity from the jump instead of zeroing the rates.
func (v *Vec) RecordChange() bool {
	return v.recordChange
}

// SetRecordChange controls the instant-mode rate estimate.
func (v *Vec) SetRecordChange(record bool) {
	v.recordChange = record
}

// Acceleration returns how quickly the values accelerate or change
// direction.
func (v *Vec) Acceleration() float64 {
	return v.accel
}

// SetAcceleration sets the acceleration. Non-positive input clamps to 0,
// leaving drag as the only dynamic.
func (v *Vec) SetAcceleration(value float64) {
	if value > 0 {
		v.accel = value
	} else {
		v.accel = 0
	}
}

// AccelerationModifier returns the acceleration curve shape exponent.
func (v *Vec) AccelerationModifier() float64 {
	return v.accelMod
}

// SetAccelerationModifier sets the curve shape exponent. Non-positive
// input clamps to 0, which disables the acceleration curve.
func (v *Vec) SetAccelerationModifier(value float64) {
	if value > 0 {
		v.accelMod = value
	} else {
		v.accelMod = 0
	}
}

// Drag returns the drag in input form, such that the stored decay factor
// is 10^-Drag.
func (v *Vec) Drag() float64 {
	return -math.Log10(v.drag)
}

// SetDrag sets the drag from input form. Non-positive input clamps the
// stored decay factor to 1, which stops movement instantly.
func (v *Vec) SetDrag(value float64) {
	if value > 0 {
		v.drag = math.Pow(10, -value)
	} else {
		v.drag = 1
	}
}

// String renders the animator state for debugging.
func (v *Vec) String() string {
	return fmt.Sprintf(
		"Values:  %v\nTarget:  %v\nChange:  %v\nAnimate: %v\nLoose:   %v",
		v.values, v.target, v.change, v.animate, v.loose,
	)
}

func zero(s []float64) {
	for i := range s {
		s[i] = 0
	}
}
