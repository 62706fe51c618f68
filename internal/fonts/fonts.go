// Package fonts locates TTF/OTF files for the HUD under the assets directory.
package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Exts are the extensions treated as font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate font directories relative to the process cwd, in search order.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns the font files under dir as slash-separated paths relative to dir.
// A missing dir yields no files and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and drops spaces, dashes and underscores so "Open Sans" matches "OpenSans-Regular".
func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// Find resolves name to a font file. An existing file path is returned as is; otherwise
// dirs are scanned for a file whose relative path contains name, preferring a "Regular" face.
func Find(name string, dirs ...string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", os.ErrNotExist
	}
	if st, err := os.Stat(name); err == nil && !st.IsDir() && isFont(name) {
		return name, nil
	}
	if len(dirs) == 0 {
		dirs = BaseDirs()
	}
	want := normalize(strings.TrimSuffix(name, filepath.Ext(name)))
	var matches []string
	for _, dir := range dirs {
		list, err := ScanDir(dir)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), want) {
				matches = append(matches, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
