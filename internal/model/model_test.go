package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTriangle saves a one-triangle GLB and returns its path.
func writeTriangle(t *testing.T) string {
	t.Helper()
	doc := gltf.NewDocument()
	doc.Asset.Generator = "box-viewer test"

	pos := modeler.WritePosition(doc, [][3]float32{{-1, 0, 0}, {1, 0, 0}, {0, 2, -3}})
	prim := &gltf.Primitive{
		Attributes: map[string]uint32{gltf.POSITION: uint32(pos)},
	}
	doc.Meshes = []*gltf.Mesh{{Name: "tri", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))

	path := filepath.Join(t.TempDir(), "tri.glb")
	require.NoError(t, gltf.SaveBinary(doc, path))
	return path
}

func TestInspect(t *testing.T) {
	path := writeTriangle(t)
	info, err := Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, path, info.Path)
	assert.Equal(t, "box-viewer test", info.Generator)
	assert.Equal(t, 1, info.Nodes)
	assert.Equal(t, 1, info.Meshes)
	require.True(t, info.HasBounds)
	assert.Equal(t, mgl32.Vec3{-1, 0, -3}, info.Min)
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, info.Max)
	assert.Equal(t, mgl32.Vec3{2, 2, 3}, info.Size())
	assert.Contains(t, info.String(), "size 2.00 x 2.00 x 3.00")
}

func TestInspectMissing(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing.glb"))
	assert.Error(t, err)
}

func TestInspectGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.glb")
	require.NoError(t, os.WriteFile(path, []byte("not a model"), 0644))
	_, err := Inspect(path)
	assert.Error(t, err)
}

func TestInspectAsync(t *testing.T) {
	path := writeTriangle(t)
	select {
	case res := <-InspectAsync(path, nil):
		require.NoError(t, res.Err)
		assert.Equal(t, 1, res.Info.Meshes)
	case <-time.After(5 * time.Second):
		t.Fatal("InspectAsync did not deliver a result")
	}
}

func TestSizeWithoutBounds(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{}, Info{}.Size())
	assert.NotContains(t, Info{Path: "x.glb"}.String(), "size")
}

func waitLoader(t *testing.T, l *Loader) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !l.Poll() {
		require.True(t, time.Now().Before(deadline), "loader never delivered")
		time.Sleep(time.Millisecond)
	}
}

func TestLoaderOnLoad(t *testing.T) {
	var got Info
	var failed error
	l := &Loader{
		OnLoad:  func(i Info) error { got = i; return nil },
		OnError: func(err error) { failed = err },
	}
	assert.False(t, l.Poll(), "nothing started")

	path := writeTriangle(t)
	l.Start(path)
	assert.True(t, l.Pending())
	waitLoader(t, l)

	assert.False(t, l.Pending())
	assert.Equal(t, path, got.Path)
	assert.NoError(t, failed)
}

func TestLoaderRoutesErrors(t *testing.T) {
	var failed error
	loaded := false
	l := &Loader{
		OnLoad:  func(Info) error { loaded = true; return nil },
		OnError: func(err error) { failed = err },
	}
	l.Start(filepath.Join(t.TempDir(), "missing.glb"))
	waitLoader(t, l)
	assert.Error(t, failed)
	assert.False(t, loaded)

	upload := errors.New("gpu upload failed")
	failed = nil
	l.OnLoad = func(Info) error { return upload }
	l.Start(writeTriangle(t))
	waitLoader(t, l)
	assert.ErrorIs(t, failed, upload)
}

func TestLoaderResolve(t *testing.T) {
	local := writeTriangle(t)
	var got Info
	var failed error
	l := &Loader{
		Resolve: func(p string) (string, error) {
			if p == "remote.glb" {
				return local, nil
			}
			return "", errors.New("no such asset")
		},
		OnLoad:  func(i Info) error { got = i; return nil },
		OnError: func(err error) { failed = err },
	}
	l.Start("remote.glb")
	waitLoader(t, l)
	require.NoError(t, failed)
	assert.Equal(t, local, got.Path)

	l.Start("other.glb")
	waitLoader(t, l)
	assert.ErrorContains(t, failed, "no such asset")
}
