package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the viewer window.
type Window struct {
	Title      string
	Width      int32
	Height     int32
	Background rl.Color
}

// DefaultWindow is a resizable 1280x800 window with the viewer's slate background.
func DefaultWindow() Window {
	return Window{
		Title:      "Gripper Viewer",
		Width:      1280,
		Height:     800,
		Background: rl.NewColor(15, 23, 42, 255),
	}
}

// Loop is driven by Run. Setup runs once the GL context exists and Teardown runs before it is
// destroyed, so both may create or free GPU resources.
type Loop interface {
	Setup()
	Update()
	Draw()
	Teardown()
}

// Size returns the current render size in pixels.
func Size() (width, height float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// Run opens the window and runs the main loop. Each frame it calls Update (input and applying
// finished loads), then clears the screen and calls Draw. ESC is left to the console; the window
// closes through its close button.
func Run(win Window, loop Loop) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)
	loop.Setup()
	defer loop.Teardown()

	for !rl.WindowShouldClose() {
		loop.Update()

		rl.BeginDrawing()
		rl.ClearBackground(win.Background)
		loop.Draw()
		rl.EndDrawing()
	}
}
