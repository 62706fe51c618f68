package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FlyDistance is how far the camera stops from the target it flies to.
	FlyDistance = 2.5
	// FlyDuration is the length of a fly-to animation, in seconds.
	FlyDuration = 0.7
)

// Transition animates the camera position and orbit target from one pose to another.
// A nil *Transition means the camera is idle.
type Transition struct {
	FromPos    mgl32.Vec3
	ToPos      mgl32.Vec3
	FromTarget mgl32.Vec3
	ToTarget   mgl32.Vec3
	Duration   float32
	Elapsed    float32
}

// LookAt starts a transition from the current pose to a point FlyDistance in front of target,
// on the ray from the scene origin through target. The camera ends up between the origin and
// the target, looking outward at it. A target at the origin is approached with zero offset.
func LookAt(from Pose, target mgl32.Vec3) *Transition {
	dir := normalize(target)
	return &Transition{
		FromPos:    from.Position,
		ToPos:      target.Sub(dir.Mul(FlyDistance)),
		FromTarget: from.Target,
		ToTarget:   target,
		Duration:   FlyDuration,
	}
}

// Ease is the ease-in-out curve used by transitions: 2t² below one half, -1+(4-2t)t above.
// t is clamped to [0, 1].
func Ease(t float32) float32 {
	t = math32.Max(0, math32.Min(t, 1))
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Progress returns the normalized elapsed time, clamped to [0, 1].
func (tr *Transition) Progress() float32 {
	if tr.Duration <= 0 {
		return 1
	}
	return math32.Min(tr.Elapsed/tr.Duration, 1)
}

// Advance adds dt seconds and writes the interpolated position and target into pose.
// On the final step pose is set exactly to the destination and Advance returns true;
// the caller drops the transition then.
func (tr *Transition) Advance(dt float32, pose *Pose) bool {
	tr.Elapsed += dt
	t := tr.Progress()
	if t >= 1 {
		pose.Position = tr.ToPos
		pose.Target = tr.ToTarget
		return true
	}
	e := Ease(t)
	pose.Position = lerp(tr.FromPos, tr.ToPos, e)
	pose.Target = lerp(tr.FromTarget, tr.ToTarget, e)
	return false
}
