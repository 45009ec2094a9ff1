// Package systems contains ECS systems for the widget demo.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/animvec/components"
)

// AnimateSystem ticks every widget's animators each frame.
type AnimateSystem struct {
	filter ecs.Filter1[components.Widget]
}

// NewAnimateSystem creates a new animate system.
func NewAnimateSystem(w *ecs.World) *AnimateSystem {
	return &AnimateSystem{
		filter: *ecs.NewFilter1[components.Widget](w),
	}
}

// Update advances all widget animations by dt seconds.
func (s *AnimateSystem) Update(dt float64) {
	query := s.filter.Query()
	for query.Next() {
		widget := query.Get()
		widget.Motion.Tick(dt)
		widget.Tint.Tick(dt)
	}
}
