package anim

// Tuning holds the constants that shape an animation. Zero-valued fields
// fall back to the package defaults at construction time.
type Tuning struct {
	// Acceleration is how quickly values accelerate or change direction.
	Acceleration float64
	// AccelerationModifier shapes the acceleration curve. 1 corresponds to
	// a circular curve; the higher the value, the closer the curve gets to
	// a parabola (slower start, steeper middle).
	AccelerationModifier float64
	// Drag slows the movement of the values. The decay curve equates
	// approximately to 10^(-Drag*x); the stored decay factor is 10^-Drag.
	Drag float64
}

// defaultTuning is applied to animators that do not override a value at
// construction. Set once at startup, read at construction time only.
var defaultTuning = Tuning{
	Acceleration:         3000,
	AccelerationModifier: 1.3,
	Drag:                 7,
}

// Defaults returns the process-wide default tuning.
func Defaults() Tuning {
	return defaultTuning
}

// SetDefaults replaces the process-wide default tuning. Call once during
// startup, before constructing animators; existing animators are not
// affected.
func SetDefaults(t Tuning) {
	defaultTuning = t
}

// resolve fills zero fields from the defaults.
func (t Tuning) resolve() Tuning {
	if t.Acceleration == 0 {
		t.Acceleration = defaultTuning.Acceleration
	}
	if t.AccelerationModifier == 0 {
		t.AccelerationModifier = defaultTuning.AccelerationModifier
	}
	if t.Drag == 0 {
		t.Drag = defaultTuning.Drag
	}
	return t
}
