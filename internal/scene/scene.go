package scene

import (
	"fmt"
	"unsafe"

	"box-viewer/internal/camera"
	"box-viewer/internal/highlight"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Background is the clear color behind the model (#eeeeee).
var Background = rl.NewColor(0xee, 0xee, 0xee, 255)

// axesLength matches the optional orientation helper: 5 units per axis.
const axesLength = 5

// Scene owns the GPU side of the viewer: the camera, the loaded model and the highlight cube.
// All methods must run on the window's thread, after InitWindow.
type Scene struct {
	Camera   rl.Camera3D
	ShowAxes bool

	model       rl.Model
	modelLoaded bool
	lit         rl.Shader
	cube        *cubeRenderer
}

// New returns a scene with a perspective camera of the given vertical field of view, placed at
// the default pose. GPU resources are created lazily on first use.
func New(fovy float32) *Scene {
	s := &Scene{}
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	s.SetPose(camera.DefaultPose())
	return s
}

// SetPose copies the viewer camera into the raylib camera.
func (s *Scene) SetPose(p camera.Pose) {
	s.Camera.Position = vec3(p.Position)
	s.Camera.Target = vec3(p.Target)
	s.Camera.Up = vec3(p.Up)
}

// AttachModel uploads the model at path and adds it to the scene, replacing any previous one.
// The model's materials are switched to the scene's lit shader.
func (s *Scene) AttachModel(path string) error {
	m := rl.LoadModel(path)
	if !rl.IsModelValid(m) {
		return fmt.Errorf("load model %s: no valid meshes", path)
	}
	if s.modelLoaded {
		rl.UnloadModel(s.model)
	}
	s.ensureLit()
	if rl.IsShaderValid(s.lit) {
		mats := unsafe.Slice(m.Materials, m.MaterialCount)
		for i := range mats {
			mats[i].Shader = s.lit
		}
	}
	s.model = m
	s.modelLoaded = true
	return nil
}

func (s *Scene) ensureLit() {
	if rl.IsShaderValid(s.lit) {
		return
	}
	s.lit = loadLitShader()
	setLightUniforms(s.lit)
}

// Draw renders the model and then the highlight (nil draws none). The highlight is drawn last
// so its transparency blends over the model.
func (s *Scene) Draw(h *highlight.Box) {
	rl.BeginMode3D(s.Camera)
	if s.modelLoaded {
		rl.DrawModel(s.model, rl.NewVector3(0, 0, 0), 1, rl.White)
	}
	if s.ShowAxes {
		drawAxes()
	}
	if h != nil {
		if s.cube == nil {
			s.cube = newCubeRenderer()
		}
		s.cube.draw(h.Matrix())
	}
	rl.EndMode3D()
}

// Unload releases every GPU resource the scene created.
func (s *Scene) Unload() {
	if s.modelLoaded {
		rl.UnloadModel(s.model)
		s.modelLoaded = false
	}
	if s.cube != nil {
		s.cube.unload()
		s.cube = nil
	}
	if rl.IsShaderValid(s.lit) {
		rl.UnloadShader(s.lit)
	}
}

// drawAxes draws X (red), Y (green) and Z (blue) from the origin.
func drawAxes() {
	origin := rl.NewVector3(0, 0, 0)
	rl.DrawLine3D(origin, rl.NewVector3(axesLength, 0, 0), rl.Red)
	rl.DrawLine3D(origin, rl.NewVector3(0, axesLength, 0), rl.Green)
	rl.DrawLine3D(origin, rl.NewVector3(0, 0, axesLength), rl.Blue)
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// matrix converts a column-major mgl32 matrix to raylib's layout (M0..M3 is the first column).
func matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
