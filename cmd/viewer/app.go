package main

import (
	"context"

	"box-viewer/internal/boxes"
	"box-viewer/internal/config"
	"box-viewer/internal/debug"
	"box-viewer/internal/download"
	"box-viewer/internal/fonts"
	"box-viewer/internal/hud"
	"box-viewer/internal/input"
	"box-viewer/internal/logger"
	"box-viewer/internal/model"
	"box-viewer/internal/scene"
	"box-viewer/internal/ui"
	"box-viewer/internal/viewer"
)

// List geometry in pixels from the top-left corner.
const (
	listX, listY    = 10, 10
	listW, listRowH = 260, 28
)

const boxResultsBuffer = 4

type app struct {
	prefs config.Prefs
	log   *logger.Logger

	state  *viewer.State
	list   *ui.List
	poller input.Poller
	hud    *hud.HUD
	scene  *scene.Scene
	debug  *debug.Debug
	models model.Loader

	boxLoad    <-chan boxes.Result
	boxResults chan boxes.Result
	ctx        context.Context
	cancel     context.CancelFunc
	revision   int
	failed     bool
}

func newApp(prefs config.Prefs, log *logger.Logger) *app {
	sheet := ui.DefaultStylesheet()
	a := &app{
		prefs:      prefs,
		log:        log,
		state:      viewer.New(prefs.Fovy),
		list:       ui.NewList(listX, listY, listW, listRowH),
		hud:        hud.New(sheet),
		scene:      scene.New(prefs.Fovy),
		debug:      debug.New(prefs.ShowFPS, sheet.Resolve("overlay", "")),
		boxResults: make(chan boxes.Result, boxResultsBuffer),
	}
	a.scene.ShowAxes = prefs.ShowAxes
	a.models = model.Loader{Resolve: a.resolve, OnLoad: a.attachModel, OnError: a.fail}
	return a
}

// init starts the background loaders once the window exists.
func (a *app) init() {
	if a.prefs.Font != "" {
		path, err := fonts.Find(a.prefs.Font)
		if err == nil {
			err = a.hud.LoadFont(path)
		}
		if err != nil {
			a.log.Errorf("font %s: %v", a.prefs.Font, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.ctx, a.cancel = ctx, cancel

	a.models.Start(a.prefs.ModelPath)
	a.log.Infof("loading model %s", a.prefs.ModelPath)

	path := a.prefs.BoxesPath
	a.boxLoad = boxes.LoadAsync(ctx, path, func(ctx context.Context, p string) (string, error) {
		return download.Resolve(ctx, p, download.CacheDir)
	})
	if a.prefs.WatchBoxes && !download.IsURL(path) {
		go func() {
			if err := boxes.Watch(ctx, path, a.boxResults); err != nil {
				a.log.Errorf("%v", err)
			}
		}()
	}
}

// resolve turns a configured asset location into a local file, downloading URLs into the cache.
func (a *app) resolve(path string) (string, error) {
	return download.Resolve(a.ctx, path, download.CacheDir)
}

func (a *app) attachModel(info model.Info) error {
	if err := a.scene.AttachModel(info.Path); err != nil {
		return err
	}
	a.log.Infof("model loaded: %s", info)
	return nil
}

func (a *app) fail(err error) {
	a.failed = true
	a.log.Errorf("%v", err)
}

func (a *app) update(dt float32) {
	a.models.Poll()
	a.drainBoxes()

	frame, value, changed := a.poller.Poll(dt, a.list)
	if changed {
		if err := a.state.Select(value); err != nil {
			a.fail(err)
		} else {
			a.log.Infof("selected box %s", value)
		}
	}
	a.state.Update(frame)
	a.scene.SetPose(a.state.Camera)
}

// drainBoxes applies the initial load and any watcher reloads that arrived since the last frame.
func (a *app) drainBoxes() {
	if a.boxLoad != nil {
		select {
		case res := <-a.boxLoad:
			a.boxLoad = nil
			a.applyBoxes(res)
		default:
		}
	}
	for {
		select {
		case res := <-a.boxResults:
			a.applyBoxes(res)
		default:
			a.syncList()
			return
		}
	}
}

func (a *app) applyBoxes(res boxes.Result) {
	if err := a.state.ApplyBoxes(res); err != nil {
		a.fail(err)
		return
	}
	a.failed = false
	a.log.Infof("loaded %d boxes from %s", len(res.Boxes), res.Path)
}

// syncList repopulates the list widget after the box set changed.
func (a *app) syncList() {
	if a.state.Revision == a.revision {
		return
	}
	a.revision = a.state.Revision
	opts := a.state.Options()
	items := make([]ui.Item, len(opts))
	for i, o := range opts {
		items[i] = ui.Item{Value: o.Value, Label: o.Label}
	}
	a.list.SetItems(items, a.state.Selected)
}

func (a *app) draw() {
	a.scene.Draw(a.state.Highlight)
	a.hud.DrawList(a.list)
	a.hud.DrawStatus(a.log.Last(3), a.failed)
	a.debug.Draw(a.state.Camera)
}

func (a *app) resize(width, height int32) {
	a.log.Infof("viewport resized to %dx%d", width, height)
}

func (a *app) close() {
	if a.cancel != nil {
		a.cancel()
	}
	a.hud.Unload()
	a.scene.Unload()
}
