package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay draws the top-right FPS counter and step count. Hidden unless Show is set.
type Overlay struct {
	Show        bool
	stepsText   string
	frameCount  uint32
	lastFpsText string
}

// New returns an overlay reporting steps boxes, visible when show is true.
func New(show bool, steps int) *Overlay {
	return &Overlay{Show: show, stepsText: fmt.Sprintf("Steps: %d", steps)}
}

// Draw renders the overlay in screen space. Call after the 3D scene.
func (d *Overlay) Draw() {
	if !d.Show {
		return
	}
	d.frameCount++
	if d.lastFpsText == "" || d.frameCount%updateInterval == 0 {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range []string{d.lastFpsText, d.stepsText} {
		x := screenW - rl.MeasureText(text, fontSize) - padding
		rl.DrawText(text, x, y, fontSize, rl.Green)
		y += lineHeight
	}
}
