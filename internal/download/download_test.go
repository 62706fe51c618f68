package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://localhost/boxCoords.json"))
	assert.True(t, IsURL(" HTTPS://example.com/kammerl.glb"))
	assert.False(t, IsURL("public/kammerl.glb"))
	assert.False(t, IsURL("file:///tmp/x.glb"))
}

func TestResolveLocalPath(t *testing.T) {
	got, err := Resolve(context.Background(), "public/kammerl.glb", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "public/kammerl.glb", got)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/boxCoords.json":
			w.Write([]byte(`{"boxes":[]}`))
		case "/attach":
			w.Header().Set("Content-Disposition", `attachment; filename="model v2.glb"`)
			w.Write([]byte("glb"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	dir := t.TempDir()

	path, err := Resolve(context.Background(), srv.URL+"/boxCoords.json?v=1", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "boxCoords.json"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"boxes":[]}`, string(data))

	path, err = Fetch(context.Background(), srv.URL+"/attach", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "model_v2.glb"), path)

	_, err = Fetch(context.Background(), srv.URL+"/missing.glb", dir)
	assert.ErrorContains(t, err, "HTTP 404")
	_, statErr := os.Stat(filepath.Join(dir, "missing.glb"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetchCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Fetch(ctx, srv.URL+"/a.json", t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "kammerl.glb", filenameFromURL("https://host/a/kammerl.glb#top"))
	assert.Equal(t, "", filenameFromURL("https://host"))
	assert.Equal(t, "x.json", filenameFromContentDisposition(`attachment; filename*=UTF-8''x.json`))
	assert.Equal(t, "download", sanitizeFilename("..."))
	assert.Equal(t, "a_b.glb", sanitizeFilename("a b.glb"))
}

func TestFetchBoundedByContext(t *testing.T) {
	assert.Zero(t, Client.Timeout)

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := Fetch(ctx, srv.URL+"/slow.glb", t.TempDir())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
