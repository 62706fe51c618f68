package highlight

import (
	"testing"

	"box-viewer/internal/boxes"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFromBox(t *testing.T) {
	h := FromBox(boxes.Box{
		ID:       "A1",
		Location: [3]float32{1, 2, 3},
		Scale:    [3]float32{1, 1, 1},
		Rotation: [3]float32{0.1, 0.2, 0.3},
	})

	assert.Equal(t, "A1", h.BoxID)
	assert.Equal(t, mgl32.Vec3{1, 3, -2}, h.Position)
	assert.Equal(t, mgl32.Vec3{2, 2.05, 2}, h.Scale)
	assert.Equal(t, mgl32.Vec3{0.1, 0.3, 0.2}, h.Rotation)
}

func TestFromBoxAxisSwap(t *testing.T) {
	h := FromBox(boxes.Box{Scale: [3]float32{1, 2, 3}})
	// Blender Z drives height, Blender Y drives depth.
	assert.Equal(t, mgl32.Vec3{2, 6.05, 4}, h.Scale)
}

func TestFromBoxDeterministic(t *testing.T) {
	b := boxes.Box{ID: "x", Location: [3]float32{-4, 5, 0.5}, Scale: [3]float32{0.3, 0.2, 0.1}}
	assert.Equal(t, FromBox(b), FromBox(b))
}

func TestMatrix(t *testing.T) {
	h := Box{
		Position: mgl32.Vec3{1, 3, -2},
		Scale:    mgl32.Vec3{2, 4, 6},
	}
	m := h.Matrix()

	// No rotation: translation in the last column, scale on the diagonal.
	assert.Equal(t, mgl32.Vec3{1, 3, -2}, m.Col(3).Vec3())
	assert.InDelta(t, 2, m.At(0, 0), 1e-6)
	assert.InDelta(t, 4, m.At(1, 1), 1e-6)
	assert.InDelta(t, 6, m.At(2, 2), 1e-6)

	// Corner of the unit cube lands at position + scale/2.
	corner := m.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3()
	assert.True(t, corner.ApproxEqual(mgl32.Vec3{2, 5, 1}), "corner %v", corner)
}

func TestMatrixRotationOrder(t *testing.T) {
	// Rz is applied first: +X turns to +Y under Z=90°, then X=90° maps +Y to +Z.
	h := Box{
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.Vec3{mgl32.DegToRad(90), 0, mgl32.DegToRad(90)},
	}
	p := h.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.InDelta(t, 0, p.X(), 1e-5, "got %v", p)
	assert.InDelta(t, 0, p.Y(), 1e-5, "got %v", p)
	assert.InDelta(t, 1, p.Z(), 1e-5, "got %v", p)
}
