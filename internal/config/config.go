package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Path is the viewer config file, relative to the process working directory.
const Path = "config/viewer.yaml"

// Window holds the initial window geometry. The window stays resizable.
type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
}

// Prefs holds the viewer's preferences. Missing keys keep their Default values.
type Prefs struct {
	ModelPath  string  `yaml:"model_path"`
	BoxesPath  string  `yaml:"boxes_path"`
	LogPath    string  `yaml:"log_path"`
	Font       string  `yaml:"font"` // file path or family name under assets/fonts; empty = raylib default
	Window     Window  `yaml:"window"`
	Fovy       float32 `yaml:"fovy"`
	TargetFPS  int32   `yaml:"target_fps"`
	ShowFPS    bool    `yaml:"show_fps"`
	ShowAxes   bool    `yaml:"show_axes"`
	WatchBoxes bool    `yaml:"watch_boxes"`
}

// Default returns the stock preferences: the kammerl model, boxCoords.json, a 1280x720 window, fovy 75.
func Default() Prefs {
	return Prefs{
		ModelPath: "public/kammerl.glb",
		BoxesPath: "boxCoords.json",
		LogPath:   "logs/viewer.txt",
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Box viewer",
		},
		Fovy:       75,
		TargetFPS:  60,
		ShowFPS:    false,
		WatchBoxes: true,
	}
}

// Load reads preferences from path on top of Default(). A missing file is not an error.
// A file that fails to parse returns Default() together with the parse error so the caller can log it.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return p, nil
}

// Save writes p to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureFile writes Default() to path when no file exists there, so a first run leaves an
// editable config behind. It reports whether it created the file.
func EnsureFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		return false, err
	}
	if err := Save(path, Default()); err != nil {
		return false, fmt.Errorf("write config %s: %w", path, err)
	}
	return true, nil
}

// Environment variables that override file values.
const (
	EnvModelPath = "VIEWER_MODEL_PATH"
	EnvBoxesPath = "VIEWER_BOXES_PATH"
	EnvShowFPS   = "VIEWER_SHOW_FPS"
)

// ApplyEnv overrides fields from the environment through lookup (usually os.LookupEnv).
// Unparseable booleans are ignored.
func (p *Prefs) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvModelPath); ok && v != "" {
		p.ModelPath = v
	}
	if v, ok := lookup(EnvBoxesPath); ok && v != "" {
		p.BoxesPath = v
	}
	if v, ok := lookup(EnvShowFPS); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.ShowFPS = b
		}
	}
}
