// Package download fetches the viewer's assets when they are configured as http(s) URLs.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// CacheDir is where fetched assets are stored, relative to the working directory.
const CacheDir = "cache"

const userAgent = "box-viewer/1.0"

// Client is used for every fetch. It has no timeout; a fetch is bounded only by its context.
var Client = &http.Client{}

// IsURL reports whether s is an http or https URL rather than a local path.
func IsURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Resolve returns a local path for pathOrURL: local paths are returned unchanged, URLs are
// downloaded into destDir first. Each call fetches again so reloads see fresh data.
func Resolve(ctx context.Context, pathOrURL, destDir string) (string, error) {
	if !IsURL(pathOrURL) {
		return pathOrURL, nil
	}
	return Fetch(ctx, pathOrURL, destDir)
}

// Fetch downloads rawURL into destDir and returns the saved path. The file name comes from
// Content-Disposition, else the URL path. destDir is created if needed.
func Fetch(ctx context.Context, rawURL, destDir string) (savedPath string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: HTTP %d", rawURL, resp.StatusCode)
	}

	name := filenameFromContentDisposition(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = filenameFromURL(rawURL)
	}
	savedPath = filepath.Join(destDir, sanitizeFilename(name))
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}

	// Write to a temp file and rename so a watcher or reader never sees a partial asset.
	tmp, err := os.CreateTemp(destDir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}
	_, copyErr := io.Copy(tmp, resp.Body)
	closeErr := tmp.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("download %s: %w", rawURL, copyErr)
	}
	if err := os.Rename(tmp.Name(), savedPath); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}
	return savedPath, nil
}

func filenameFromContentDisposition(cd string) string {
	cd = strings.TrimSpace(cd)
	// filename="..."; or filename*=UTF-8''...
	if i := strings.Index(cd, "filename*=UTF-8''"); i >= 0 {
		s := cd[i+len("filename*=UTF-8''"):]
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		return strings.Trim(s, "\"")
	}
	if i := strings.Index(cd, "filename="); i >= 0 {
		s := cd[i+len("filename="):]
		if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
			s = s[:j]
		}
		return strings.Trim(s, "\" ")
	}
	return ""
}

func filenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}
	return base
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeFilename(name string) string {
	name = safeNameRe.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	if name == "" {
		return "download"
	}
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
