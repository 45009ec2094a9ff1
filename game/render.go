package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/animvec/components"
)

// Draw renders the demo frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 26, 32, 255))

	query := g.filter.Query()
	for query.Next() {
		w := query.Get()

		x := float32(w.Motion.Value(components.AxisX))
		y := float32(w.Motion.Value(components.AxisY))
		size := float32(w.Motion.Value(components.AxisSize))

		color := rl.NewColor(
			clampByte(w.Tint.Value(components.AxisR)),
			clampByte(w.Tint.Value(components.AxisG)),
			clampByte(w.Tint.Value(components.AxisB)),
			255,
		)

		rect := rl.Rectangle{
			X:      x - size/2,
			Y:      y - size/2,
			Width:  size,
			Height: size,
		}
		rl.DrawRectangleRounded(rect, 0.3, 8, color)

		// Target marker while the widget is still on its way
		if !w.Motion.Loose() && w.Motion.DistanceToTarget() > 1 {
			tx := float32(w.Motion.Target(components.AxisX))
			ty := float32(w.Motion.Target(components.AxisY))
			rl.DrawCircleLines(int32(tx), int32(ty), 4, rl.Fade(color, 0.5))
		}
	}

	g.drawHUD()
	if g.panel.Draw(int32(g.width)) {
		g.applyTuning(g.panel.Tuning())
	}

	rl.EndDrawing()
}

// drawHUD renders the status line and key help.
func (g *Game) drawHUD() {
	status := fmt.Sprintf("FPS %d", rl.GetFPS())
	if g.frozen {
		status += "  [frozen]"
	}
	rl.DrawText(status, 15, 15, 18, rl.RayWhite)
	rl.DrawText(
		"click: retarget   space: scatter   g: gather   f: freeze   tab: tuning",
		15, int32(g.height)-30, 16, rl.Gray,
	)
}

// clampByte converts an animated color channel to a display byte.
func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
