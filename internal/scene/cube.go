package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// highlightColor is yellow at 60% opacity.
var highlightColor = rl.NewColor(255, 255, 0, 153)

// cubeRenderer draws the unit highlight cube with an unlit, alpha-blended material.
type cubeRenderer struct {
	mesh rl.Mesh
	mtl  rl.Material
}

func newCubeRenderer() *cubeRenderer {
	c := &cubeRenderer{
		mesh: rl.GenMeshCube(1, 1, 1),
		mtl:  rl.LoadMaterialDefault(),
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = highlightColor
	}
	return c
}

// draw renders the cube with model matrix m. Depth writes are off so the model behind stays visible.
func (c *cubeRenderer) draw(m mgl32.Mat4) {
	rl.BeginBlendMode(rl.BlendAlpha)
	rl.DisableDepthMask()
	rl.DrawMesh(c.mesh, c.mtl, matrix(m))
	rl.EnableDepthMask()
	rl.EndBlendMode()
}

func (c *cubeRenderer) unload() {
	rl.UnloadMesh(&c.mesh)
	rl.UnloadMaterial(c.mtl)
}
