// Package components defines ECS components for the demo widgets.
package components

import "github.com/pthm-cable/animvec/anim"

// Motion axis indices for the widget motion animator.
const (
	AxisX = iota
	AxisY
	AxisSize
	MotionAxes
)

// Tint axis indices for the widget color animator.
const (
	AxisR = iota
	AxisG
	AxisB
	TintAxes
)

// Widget is an animated on-screen rectangle. Position and size share one
// animator so they move in unison; color runs on its own.
type Widget struct {
	Motion *anim.Vec // AxisX, AxisY, AxisSize
	Tint   *anim.Vec // AxisR, AxisG, AxisB in [0, 255]
}

// Wander schedules periodic retargeting for a widget.
type Wander struct {
	Countdown float64 // Seconds until the next retarget
	Interval  float64 // Seconds between retargets
}
