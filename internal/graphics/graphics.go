package graphics

import (
	"stepped-pyramid/internal/viewerconfig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and drives the frame loop until the user closes it. Each frame it calls
// update (input, camera), then clears to black and calls draw between BeginDrawing and EndDrawing.
// The window is closed on every return path, including a panic inside update or draw.
func Run(win viewerconfig.Window, update, draw func()) {
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(win.FPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
