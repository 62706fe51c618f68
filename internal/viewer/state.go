// Package viewer holds the application state shared by the frame loop: the loaded boxes,
// the current selection and its highlight, the camera and any fly-to in progress.
// Everything here is plain data plus per-frame logic so it can be driven without a window.
package viewer

import (
	"fmt"

	"box-viewer/internal/boxes"
	"box-viewer/internal/camera"
	"box-viewer/internal/highlight"
)

// Option is one entry of the box selection list.
type Option struct {
	Value string // box ID
	Label string
}

// KeyEvent is a key going down or up.
type KeyEvent struct {
	Key  string
	Down bool
}

// Frame is the input gathered for one tick of the frame loop.
type Frame struct {
	DT      float32 // seconds since the previous frame
	Keys    []KeyEvent
	Focused bool // a text-input-like widget has keyboard focus
	Orbit   camera.OrbitInput
}

// State is the viewer's mutable state. It must only be touched from the frame loop.
type State struct {
	Boxes      []boxes.Box
	Selected   string
	Highlight  *highlight.Box
	Transition *camera.Transition
	Keys       camera.Keys
	Camera     camera.Pose
	Orbit      *camera.Orbit

	// Revision changes every time Boxes is replaced, so the list widget knows to repopulate.
	Revision int
}

// New returns an empty state with the default camera. fovy is the camera's vertical field of view in degrees.
func New(fovy float32) *State {
	return &State{
		Camera: camera.DefaultPose(),
		Orbit:  camera.NewOrbit(fovy),
	}
}

// ApplyBoxes installs a load result. A failed result leaves the state untouched and returns the error.
// On success the list is replaced and a box is selected without moving the camera: the previous
// selection when it survived the reload, otherwise the first box. An empty set clears the highlight.
func (s *State) ApplyBoxes(res boxes.Result) error {
	if res.Err != nil {
		return res.Err
	}
	s.Boxes = res.Boxes
	s.Revision++

	if len(s.Boxes) == 0 {
		s.Selected = ""
		s.Highlight = nil
		return nil
	}
	b, ok := boxes.Find(s.Boxes, s.Selected)
	if !ok {
		b = s.Boxes[0]
	}
	s.setHighlight(b)
	return nil
}

// Options returns the selection list entries in box order.
func (s *State) Options() []Option {
	out := make([]Option, len(s.Boxes))
	for i, b := range s.Boxes {
		out[i] = Option{Value: b.ID, Label: b.Label()}
	}
	return out
}

// Select highlights the box with the given ID and starts flying the camera to it, replacing any
// transition already running. Unknown IDs are ignored and return an error.
func (s *State) Select(id string) error {
	b, ok := boxes.Find(s.Boxes, id)
	if !ok {
		return fmt.Errorf("select box: unknown boxId %q", id)
	}
	s.setHighlight(b)
	s.Transition = camera.LookAt(s.Camera, highlight.Position(b.Location))
	return nil
}

func (s *State) setHighlight(b boxes.Box) {
	h := highlight.FromBox(b)
	s.Selected = b.ID
	s.Highlight = &h
}

// HandleKey applies one key event to the held-key set.
func (s *State) HandleKey(ev KeyEvent, focused bool) {
	if ev.Down {
		s.Keys.Press(ev.Key, focused)
		return
	}
	s.Keys.Release(ev.Key)
}

// Animating reports whether a fly-to transition is in progress.
func (s *State) Animating() bool {
	return s.Transition != nil
}

// Update runs one frame: key events, WASD movement, the fly-to transition if any, then the orbit controls.
func (s *State) Update(f Frame) {
	for _, ev := range f.Keys {
		s.HandleKey(ev, f.Focused)
	}
	s.Orbit.Handle(f.Orbit, s.Camera)

	camera.Move(&s.Camera, s.Keys)

	if s.Transition != nil {
		if s.Transition.Advance(f.DT, &s.Camera) {
			s.Transition = nil
		}
	}
	s.Orbit.Update(&s.Camera)
}
