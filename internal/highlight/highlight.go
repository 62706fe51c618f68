package highlight

import (
	"box-viewer/internal/boxes"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ScaleFactor turns Blender half-extents into full cube sizes.
	ScaleFactor = 2
	// ThicknessEpsilon is added to the vertical size so flat boxes stay visible.
	ThicknessEpsilon = 0.05
)

// Box is the render transform of the single highlight cube, in the viewer's Y-up frame.
// Rotation holds Euler angles in radians applied in X, Y, Z order.
type Box struct {
	BoxID    string
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3
}

// FromBox converts a Blender-space (Z-up) box into a viewer-space (Y-up) highlight.
// Blender Z becomes Y and Blender Y becomes -Z. The rotation components are reordered
// as (x, z, y) to match the export; that reorder and the epsilon are kept as-is.
func FromBox(b boxes.Box) Box {
	return Box{
		BoxID:    b.ID,
		Position: Position(b.Location),
		Scale: mgl32.Vec3{
			b.Scale[0] * ScaleFactor,
			b.Scale[2]*ScaleFactor + ThicknessEpsilon,
			b.Scale[1] * ScaleFactor,
		},
		Rotation: mgl32.Vec3{b.Rotation[0], b.Rotation[2], b.Rotation[1]},
	}
}

// Position converts a Blender location to viewer space: (x, z, -y).
func Position(loc [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{loc[0], loc[2], -loc[1]}
}

// Matrix returns the model matrix T * Rx * Ry * Rz * S for a unit cube centered on the origin.
func (h Box) Matrix() mgl32.Mat4 {
	t := mgl32.Translate3D(h.Position.X(), h.Position.Y(), h.Position.Z())
	rx := mgl32.HomogRotate3DX(h.Rotation.X())
	ry := mgl32.HomogRotate3DY(h.Rotation.Y())
	rz := mgl32.HomogRotate3DZ(h.Rotation.Z())
	s := mgl32.Scale3D(h.Scale.X(), h.Scale.Y(), h.Scale.Z())
	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}
