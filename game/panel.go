package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/animvec/anim"
	"github.com/pthm-cable/animvec/config"
)

const panelWidth = 260

// TuningPanel exposes the animation tuning as live sliders.
type TuningPanel struct {
	visible bool

	acceleration float32
	modifier     float32
	drag         float32
}

// NewTuningPanel creates a panel seeded from the configuration.
func NewTuningPanel(cfg *config.Config) *TuningPanel {
	return &TuningPanel{
		acceleration: float32(cfg.Animation.Acceleration),
		modifier:     float32(cfg.Animation.AccelerationModifier),
		drag:         float32(cfg.Animation.Drag),
	}
}

// Toggle switches panel visibility.
func (p *TuningPanel) Toggle() {
	p.visible = !p.visible
}

// Tuning returns the panel's current values.
func (p *TuningPanel) Tuning() anim.Tuning {
	return anim.Tuning{
		Acceleration:         float64(p.acceleration),
		AccelerationModifier: float64(p.modifier),
		Drag:                 float64(p.drag),
	}
}

// Draw renders the sliders and reports whether any value changed this
// frame.
func (p *TuningPanel) Draw(screenWidth int32) bool {
	if !p.visible {
		return false
	}

	x := float32(screenWidth - panelWidth - 15)
	y := float32(15)
	w := float32(panelWidth)

	rl.DrawRectangle(int32(x)-10, int32(y)-10, panelWidth+20, 200, rl.Fade(rl.Black, 0.6))
	rl.DrawText("Animation Tuning", int32(x), int32(y), 18, rl.White)
	y += 30

	changed := false

	rl.DrawText("Acceleration", int32(x), int32(y), 14, rl.LightGray)
	y += 18
	newAccel := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w - 60, Height: 20},
		"100", "10000",
		p.acceleration, 100, 10000,
	)
	rl.DrawText(fmt.Sprintf("%.0f", p.acceleration), int32(x+w-50), int32(y+2), 16, rl.White)
	if newAccel != p.acceleration {
		p.acceleration = newAccel
		changed = true
	}
	y += 32

	rl.DrawText("Curve shape (1 = circular)", int32(x), int32(y), 14, rl.LightGray)
	y += 18
	newMod := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w - 60, Height: 20},
		"1.0", "3.0",
		p.modifier, 1.0, 3.0,
	)
	rl.DrawText(fmt.Sprintf("%.2f", p.modifier), int32(x+w-50), int32(y+2), 16, rl.White)
	if newMod != p.modifier {
		p.modifier = newMod
		changed = true
	}
	y += 32

	rl.DrawText("Drag", int32(x), int32(y), 14, rl.LightGray)
	y += 18
	newDrag := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w - 60, Height: 20},
		"1", "10",
		p.drag, 1, 10,
	)
	rl.DrawText(fmt.Sprintf("%.1f", p.drag), int32(x+w-50), int32(y+2), 16, rl.White)
	if newDrag != p.drag {
		p.drag = newDrag
		changed = true
	}

	return changed
}
