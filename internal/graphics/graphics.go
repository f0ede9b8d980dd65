package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "Property walkthrough"
	targetFPS    = 60
)

// Run starts the window and main loop. Each frame it calls update with the frame's
// elapsed seconds (input and navigation), then clears the screen and calls draw (scene
// and overlay). This keeps the graphics layer separate from navigation logic.
// Close via the window button; ESC releases the pointer instead of quitting.
func Run(update func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC exits mouse look, not the program
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 28, 34, 255))
		draw()
		rl.EndDrawing()
	}
}
