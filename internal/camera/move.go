package camera

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// MoveStep is how far one frame of a held movement key moves the camera.
const MoveStep = 0.05

// Keys records which of the w/a/s/d movement keys are held.
type Keys struct {
	W, A, S, D bool
}

// Press marks key as held. It is ignored while a text-input-like widget has focus,
// so typing into the UI never moves the camera. Non-movement keys are ignored.
func (k *Keys) Press(key string, focused bool) {
	if focused {
		return
	}
	k.set(key, true)
}

// Release marks key as no longer held. Releases always apply, even with UI focus,
// so a key pressed before focus moved cannot stay stuck.
func (k *Keys) Release(key string) {
	k.set(key, false)
}

// Any reports whether a movement key is held.
func (k Keys) Any() bool {
	return k.W || k.A || k.S || k.D
}

func (k *Keys) set(key string, held bool) {
	switch strings.ToLower(key) {
	case "w":
		k.W = held
	case "a":
		k.A = held
	case "s":
		k.S = held
	case "d":
		k.D = held
	}
}

// Move shifts pose.Position one step per held key. Forward is the view direction flattened
// onto the horizontal plane; right is Up × forward. The target does not move, so the orbit
// controls re-aim around it on their next update.
func Move(pose *Pose, keys Keys) {
	if !keys.Any() {
		return
	}
	forward := pose.Forward()
	forward = normalize(mgl32.Vec3{forward.X(), 0, forward.Z()})
	right := normalize(pose.Up.Cross(forward))

	if keys.W {
		pose.Position = pose.Position.Add(forward.Mul(MoveStep))
	}
	if keys.S {
		pose.Position = pose.Position.Add(forward.Mul(-MoveStep))
	}
	if keys.A {
		pose.Position = pose.Position.Add(right.Mul(MoveStep))
	}
	if keys.D {
		pose.Position = pose.Position.Add(right.Mul(-MoveStep))
	}
}
