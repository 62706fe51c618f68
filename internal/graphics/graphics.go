package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configure the window opened by Run.
type Options struct {
	Width, Height int32
	Title         string
	TargetFPS     int32
	Background    rl.Color
	// OnResize is called with the new size whenever the user resizes the window.
	OnResize func(width, height int32)
	// OnInit runs once after the window and GL context exist, before the first frame.
	OnInit func()
	// OnClose runs once after the last frame, while the GL context is still alive.
	OnClose func()
}

// Run opens a resizable window and drives the frame loop until it is closed. Each frame it calls
// update with the frame time in seconds, then clears to Background and calls draw.
// ESC does not close the window; it is left to the UI.
func Run(opts Options, update func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}
	if opts.OnInit != nil {
		opts.OnInit()
	}
	if opts.OnClose != nil {
		defer opts.OnClose()
	}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && opts.OnResize != nil {
			opts.OnResize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		}
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(opts.Background)
		draw()
		rl.EndDrawing()
	}
}
