// Package input polls raylib's keyboard and mouse once per frame and turns them into
// viewer events. It is the only place that reads raw device state.
package input

import (
	"box-viewer/internal/camera"
	"box-viewer/internal/ui"
	"box-viewer/internal/viewer"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// movementKeys maps raylib key codes to the names camera.Keys understands.
var movementKeys = []struct {
	code int32
	name string
}{
	{rl.KeyW, "w"},
	{rl.KeyA, "a"},
	{rl.KeyS, "s"},
	{rl.KeyD, "d"},
}

// Poller tracks drag state across frames so a drag that starts on the list never orbits the camera.
type Poller struct {
	dragging bool
}

// Poll gathers this frame's input. Clicks and arrow keys go to list first; a selection change
// is returned as (value, true). Pointer input over the list does not reach the orbit controls.
func (p *Poller) Poll(dt float32, list *ui.List) (viewer.Frame, string, bool) {
	var (
		selected string
		changed  bool
	)
	mouse := rl.GetMousePosition()
	overList := list.Hit(mouse.X, mouse.Y)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		selected, changed = list.Click(mouse.X, mouse.Y)
		p.dragging = !overList
	}
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		p.dragging = false
	}
	if list.Focused() {
		if v, ok := p.step(list); ok {
			selected, changed = v, true
		}
		if rl.IsKeyPressed(rl.KeyEscape) {
			list.Blur()
		}
	}

	f := viewer.Frame{
		DT:      dt,
		Focused: list.Focused(),
		Keys:    keyEvents(),
		Orbit:   camera.OrbitInput{ViewportHeight: float32(rl.GetScreenHeight())},
	}
	delta := rl.GetMouseDelta()
	if p.dragging {
		f.Orbit.Rotate = mgl32.Vec2{delta.X, delta.Y}
	}
	if !overList {
		if rl.IsMouseButtonDown(rl.MouseRightButton) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
			f.Orbit.Pan = mgl32.Vec2{delta.X, delta.Y}
		}
		f.Orbit.Wheel = rl.GetMouseWheelMove()
	}
	return f, selected, changed
}

func (p *Poller) step(list *ui.List) (string, bool) {
	switch {
	case rl.IsKeyPressed(rl.KeyDown):
		return list.Step(1)
	case rl.IsKeyPressed(rl.KeyUp):
		return list.Step(-1)
	}
	return "", false
}

// keyEvents reports movement keys that went down or up since the last frame.
func keyEvents() []viewer.KeyEvent {
	var evs []viewer.KeyEvent
	for _, k := range movementKeys {
		if rl.IsKeyPressed(k.code) {
			evs = append(evs, viewer.KeyEvent{Key: k.name, Down: true})
		}
		if rl.IsKeyReleased(k.code) {
			evs = append(evs, viewer.KeyEvent{Key: k.name, Down: false})
		}
	}
	return evs
}
