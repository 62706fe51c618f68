// Package camera holds the viewer's camera state and everything that moves it:
// the fly-to transition, orbit controls and WASD movement. It has no raylib dependency;
// the scene converts a Pose to rl.Camera3D when drawing.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Pose is where the camera is, what it orbits around, and which way is up.
type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

// DefaultPose is the start-up camera: one unit in front of the origin, looking at it, Y up.
func DefaultPose() Pose {
	return Pose{
		Position: mgl32.Vec3{0, 0, 1},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
	}
}

// Forward returns the unit view direction (Target - Position), or zero when they coincide.
func (p Pose) Forward() mgl32.Vec3 {
	return normalize(p.Target.Sub(p.Position))
}

// normalize returns v scaled to unit length, leaving a zero vector as zero instead of NaN.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// lerp returns a + (b-a)*t.
func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
