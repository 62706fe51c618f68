package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// minPolar keeps the camera off the poles so Up never lines up with the view direction.
	minPolar = 1e-6
	// minRadius stops zoom from passing through the target.
	minRadius = 0.01
	// settle is the residue below which damped motion counts as stopped.
	settle = 1e-6
)

// OrbitInput is one frame of pointer input for the orbit controls, in screen pixels.
type OrbitInput struct {
	Rotate         mgl32.Vec2 // drag delta with the rotate button held
	Pan            mgl32.Vec2 // drag delta with a pan button held
	Wheel          float32    // wheel movement; positive zooms in
	ViewportHeight float32
}

// Orbit rotates the camera around Pose.Target (left drag), pans the target (right or
// middle drag) and dollies toward it (wheel). Motion is inertial: input accumulates into
// deltas that Update applies a fraction of each frame and then decays.
type Orbit struct {
	Fovy          float32 // vertical field of view in degrees, for pan scaling
	RotateSpeed   float32
	PanSpeed      float32
	ZoomSpeed     float32
	DampingFactor float32 // 0 disables damping

	dTheta float32
	dPhi   float32
	pan    mgl32.Vec3
	scale  float32
}

// NewOrbit returns orbit controls with the viewer's tuning: half-speed rotate, pan and zoom, damping 0.1.
func NewOrbit(fovy float32) *Orbit {
	return &Orbit{
		Fovy:          fovy,
		RotateSpeed:   0.5,
		PanSpeed:      0.5,
		ZoomSpeed:     0.5,
		DampingFactor: 0.1,
		scale:         1,
	}
}

// Handle folds one frame of pointer input into the pending deltas. Call before Update.
func (o *Orbit) Handle(in OrbitInput, pose Pose) {
	h := in.ViewportHeight
	if h <= 0 {
		h = 1
	}
	if in.Rotate.X() != 0 || in.Rotate.Y() != 0 {
		o.dTheta -= 2 * math32.Pi * in.Rotate.X() / h * o.RotateSpeed
		o.dPhi -= 2 * math32.Pi * in.Rotate.Y() / h * o.RotateSpeed
	}
	if in.Pan.X() != 0 || in.Pan.Y() != 0 {
		o.addPan(in.Pan, h, pose)
	}
	if in.Wheel != 0 {
		step := math32.Pow(0.95, o.ZoomSpeed)
		if in.Wheel > 0 {
			o.scale *= step
		} else {
			o.scale /= step
		}
	}
}

// addPan converts a pixel drag into a world-space target offset, scaled so the point under
// the cursor at the target's depth follows the pointer.
func (o *Orbit) addPan(delta mgl32.Vec2, height float32, pose Pose) {
	offset := pose.Position.Sub(pose.Target)
	dist := offset.Len() * math32.Tan(mgl32.DegToRad(o.Fovy)/2)
	forward := normalize(offset.Mul(-1))
	right := normalize(forward.Cross(pose.Up))
	up := right.Cross(forward)

	left := right.Mul(-2 * delta.X() * dist / height * o.PanSpeed)
	upMove := up.Mul(2 * delta.Y() * dist / height * o.PanSpeed)
	o.pan = o.pan.Add(left).Add(upMove)
}

// Idle reports whether Update would leave the pose unchanged.
func (o *Orbit) Idle() bool {
	return math32.Abs(o.dTheta) < settle && math32.Abs(o.dPhi) < settle &&
		o.pan.Len() < settle && o.scale == 1
}

// Update applies pending motion to pose. With nothing pending the pose is left exactly as it
// is, so a finished fly-to transition keeps its destination bit-for-bit.
func (o *Orbit) Update(pose *Pose) {
	if o.scale == 0 {
		o.scale = 1
	}
	if o.Idle() {
		o.dTheta, o.dPhi, o.pan = 0, 0, mgl32.Vec3{}
		return
	}
	k := o.DampingFactor
	if k <= 0 {
		k = 1
	}

	offset := pose.Position.Sub(pose.Target)
	radius := offset.Len()
	theta := math32.Atan2(offset.X(), offset.Z())
	phi := float32(0)
	if radius > 0 {
		phi = math32.Acos(math32.Max(-1, math32.Min(1, offset.Y()/radius)))
	}

	theta += o.dTheta * k
	phi += o.dPhi * k
	phi = math32.Max(minPolar, math32.Min(math32.Pi-minPolar, phi))
	radius = math32.Max(minRadius, radius*o.scale)

	pose.Target = pose.Target.Add(o.pan.Mul(k))
	sinPhi := math32.Sin(phi) * radius
	pose.Position = pose.Target.Add(mgl32.Vec3{
		sinPhi * math32.Sin(theta),
		math32.Cos(phi) * radius,
		sinPhi * math32.Cos(theta),
	})

	if o.DampingFactor > 0 {
		o.dTheta *= 1 - k
		o.dPhi *= 1 - k
		o.pan = o.pan.Mul(1 - k)
	} else {
		o.dTheta, o.dPhi, o.pan = 0, 0, mgl32.Vec3{}
	}
	o.scale = 1
}
