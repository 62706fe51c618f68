package main

import (
	"os"

	"box-viewer/internal/config"
	"box-viewer/internal/env"
	"box-viewer/internal/graphics"
	"box-viewer/internal/logger"
	"box-viewer/internal/scene"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "VIEWER_CONFIG"

func main() {
	envErr := env.Load(".env")

	path := config.Path
	if v, ok := os.LookupEnv(EnvConfigPath); ok && v != "" {
		path = v
	}
	created, ensureErr := config.EnsureFile(path)
	prefs, cfgErr := config.Load(path)
	prefs.ApplyEnv(os.LookupEnv)

	log := logger.New(prefs.LogPath)
	if envErr != nil {
		log.Errorf("%v", envErr)
	}
	if ensureErr != nil {
		log.Errorf("%v", ensureErr)
	}
	if created {
		log.Infof("wrote default config %s", path)
	}
	if cfgErr != nil {
		log.Errorf("%v", cfgErr)
	}

	a := newApp(prefs, log)
	graphics.Run(graphics.Options{
		Width:      prefs.Window.Width,
		Height:     prefs.Window.Height,
		Title:      prefs.Window.Title,
		TargetFPS:  prefs.TargetFPS,
		Background: scene.Background,
		OnInit:     a.init,
		OnResize:   a.resize,
		OnClose:    a.close,
	}, a.update, a.draw)
}
