package debug

import (
	"fmt"

	"box-viewer/internal/camera"
	"box-viewer/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInterval is how many frames the overlay text is kept before it is rebuilt.
const updateInterval = 30

// Debug draws optional overlays in the top-right corner: FPS and the camera position.
type Debug struct {
	ShowFPS    bool
	Color      rl.Color
	FontSize   int32
	Padding    int32
	frameCount uint32
	fpsText    string
	camText    string
}

// New returns a Debug with the FPS overlay set to show, styled by st (the "overlay" rule).
func New(show bool, st ui.Style) *Debug {
	c := st.Color
	return &Debug{
		ShowFPS:  show,
		Color:    rl.NewColor(c.R, c.G, c.B, c.A),
		FontSize: st.FontSize,
		Padding:  st.Padding,
	}
}

// Draw renders the overlay for this frame. pose is the camera shown under the FPS line.
func (d *Debug) Draw(pose camera.Pose) {
	if !d.ShowFPS {
		return
	}
	d.frameCount++
	if d.frameCount%updateInterval == 1 || d.fpsText == "" {
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		p := pose.Position
		d.camText = fmt.Sprintf("Cam: %.2f, %.2f, %.2f", p.X(), p.Y(), p.Z())
	}
	screenW := int32(rl.GetScreenWidth())
	y := d.Padding
	for _, text := range []string{d.fpsText, d.camText} {
		w := rl.MeasureText(text, d.FontSize)
		rl.DrawText(text, screenW-w-d.Padding, y, d.FontSize, d.Color)
		y += d.FontSize + 4
	}
}
