// Package model inspects the viewer's glTF asset before it is handed to the renderer.
// Inspection runs off the render thread; the GPU upload itself happens in the scene.
package model

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

// Info summarizes a glTF document.
type Info struct {
	Path      string
	Generator string
	Nodes     int
	Meshes    int
	Materials int
	// Min and Max bound every POSITION accessor in mesh-local space (node transforms are not applied).
	// HasBounds is false when no accessor carries min/max.
	Min, Max  mgl32.Vec3
	HasBounds bool
}

// Result is the outcome of inspecting a model: Info on success, or the error that failed it.
type Result struct {
	Info Info
	Err  error
}

// Inspect opens the glTF or GLB file at path and collects its Info.
func Inspect(path string) (Info, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open model %s: %w", path, err)
	}
	info := Info{
		Path:      path,
		Generator: doc.Asset.Generator,
		Nodes:     len(doc.Nodes),
		Meshes:    len(doc.Meshes),
		Materials: len(doc.Materials),
	}
	if info.Meshes == 0 {
		return info, fmt.Errorf("open model %s: no meshes", path)
	}

	lo := mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	hi := mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, m := range doc.Meshes {
		for _, p := range m.Primitives {
			idx, ok := p.Attributes[gltf.POSITION]
			if !ok || int(idx) >= len(doc.Accessors) {
				continue
			}
			acc := doc.Accessors[idx]
			if len(acc.Min) < 3 || len(acc.Max) < 3 {
				continue
			}
			for i := 0; i < 3; i++ {
				lo[i] = min(lo[i], float32(acc.Min[i]))
				hi[i] = max(hi[i], float32(acc.Max[i]))
			}
			info.HasBounds = true
		}
	}
	if info.HasBounds {
		info.Min, info.Max = lo, hi
	}
	return info, nil
}

// InspectAsync runs Inspect on a goroutine and delivers the Result on the returned channel.
// A non-nil resolve turns path into a local file first.
func InspectAsync(path string, resolve func(string) (string, error)) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		local := path
		if resolve != nil {
			var err error
			if local, err = resolve(path); err != nil {
				out <- Result{Info: Info{Path: path}, Err: err}
				return
			}
		}
		info, err := Inspect(local)
		out <- Result{Info: info, Err: err}
	}()
	return out
}

// Size returns the extent of the bounds, or zero when there are none.
func (i Info) Size() mgl32.Vec3 {
	if !i.HasBounds {
		return mgl32.Vec3{}
	}
	return i.Max.Sub(i.Min)
}

// String is the one-line summary written to the log once a model loads.
func (i Info) String() string {
	s := fmt.Sprintf("%s: %d nodes, %d meshes, %d materials", i.Path, i.Nodes, i.Meshes, i.Materials)
	if i.HasBounds {
		sz := i.Size()
		s += fmt.Sprintf(", size %.2f x %.2f x %.2f", sz.X(), sz.Y(), sz.Z())
	}
	return s
}
