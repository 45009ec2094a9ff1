package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/animvec/config"
)

// HandleInput processes a frame's worth of input.
func (g *Game) HandleInput() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		g.retargetAll(float64(pos.X), float64(pos.Y))
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		g.wander.Scatter(config.Cfg().Demo.ScatterSpeed)
	case rl.IsKeyPressed(rl.KeyG):
		g.wander.Gather()
	case rl.IsKeyPressed(rl.KeyF):
		g.frozen = !g.frozen
		g.wander.SetFrozen(g.frozen)
	case rl.IsKeyPressed(rl.KeyTab):
		g.panel.Toggle()
	}
}
