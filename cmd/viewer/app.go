package main

import (
	"context"
	"io"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"gripper-viewer/internal/assets"
	"gripper-viewer/internal/commands"
	"gripper-viewer/internal/debug"
	"gripper-viewer/internal/fonts"
	"gripper-viewer/internal/geom"
	"gripper-viewer/internal/graphics"
	"gripper-viewer/internal/hud"
	"gripper-viewer/internal/logger"
	"gripper-viewer/internal/render"
	"gripper-viewer/internal/scene"
	"gripper-viewer/internal/terminal"
	"gripper-viewer/internal/ui"
	"gripper-viewer/internal/viewer"
	"gripper-viewer/internal/viewerconfig"
	"gripper-viewer/internal/watch"
)

const (
	// Radians per pixel of drag, relative to window height (a full-height drag is one turn).
	dragTurn = 2 * math32.Pi
	// Zoom factor per wheel notch.
	wheelZoom = 0.95
)

// app owns every piece of the interactive viewer and implements graphics.Loop.
type app struct {
	opts *options
	log  *logger.Logger
	v    *viewer.Viewer
	src  assets.Source

	registry *render.Registry
	scene    *scene.Scene
	ui       *ui.Engine
	panel    *ui.Panel
	label    *ui.PartLabel
	nodes    []*ui.Node
	hud      *hud.HUD
	term     *terminal.Terminal
	dbg      *debug.Debug

	watcher   *watch.Watcher
	stopWatch context.CancelFunc
	dragging  bool
	lastGen   uint64
	startSize string
}

func newApp(opts *options, log *logger.Logger, startSize string) (*app, error) {
	src, err := opts.source()
	if err != nil {
		return nil, err
	}
	prefs := opts.prefs
	v, err := viewer.New(viewer.Options{
		Catalog:        opts.cat,
		Source:         src,
		Format:         prefs.MeshFormat,
		Log:            log,
		MaxConcurrency: prefs.MaxConcurrency,
		MinDistance:    prefs.MinDistance,
		MaxDistance:    prefs.MaxDistance,
	})
	if err != nil {
		closeSource(src)
		return nil, err
	}
	v.SetOpenness(prefs.Openness)

	a := &app{
		opts:      opts,
		log:       log,
		v:         v,
		src:       src,
		registry:  render.NewRegistry(),
		ui:        ui.New(),
		panel:     ui.NewPanel(),
		label:     ui.NewPartLabel(),
		dbg:       debug.New(),
		startSize: startSize,
	}
	a.scene = scene.New(a.registry)
	a.scene.SetGridVisible(prefs.GridVisible)
	a.dbg.SetShowFPS(prefs.ShowFPS)

	reg := commands.NewRegistry()
	commands.RegisterViewer(reg, commands.Bindings{
		Viewer: v,
		SetGrid: func(visible bool) {
			a.scene.SetGridVisible(visible)
			a.opts.prefs.GridVisible = visible
		},
		SetFPS: func(visible bool) {
			a.dbg.SetShowFPS(visible)
			a.opts.prefs.ShowFPS = visible
		},
		Changed: a.changed,
	})
	a.term = terminal.New(log, reg)
	a.hud = hud.New(v)

	if prefs.Watch {
		a.startWatcher()
	}
	return a, nil
}

func closeSource(src assets.Source) {
	if c, ok := src.(io.Closer); ok {
		_ = c.Close()
	}
}

func (a *app) startWatcher() {
	if a.opts.prefs.AssetURL != "" || assets.IsZip(a.opts.prefs.AssetRoot) {
		a.log.Warnf("watch: assets are not in a directory, nothing to watch")
		return
	}
	w, err := watch.New(a.opts.prefs.AssetRoot, a.opts.cat.Sizes, a.log)
	if err != nil {
		a.log.Errorf("watch: %v", err)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.watcher, a.stopWatch = w, cancel
	go w.Run(ctx)
}

// changed runs after a console command touched viewer state.
func (a *app) changed() {
	a.hud.Sync()
}

func (a *app) Setup() {
	if a.opts.prefs.Font != "" {
		if font, path, ok := fonts.Load(a.opts.prefs.Font); ok {
			a.ui.SetFont(font)
			a.term.SetFont(font)
			a.dbg.SetFont(font)
			a.log.Infof("font: %s", path)
		} else {
			a.log.Warnf("font %q not found, using the default", a.opts.prefs.Font)
		}
	}
	a.v.RequestVariant(a.startSize)
	a.hud.Sync()
}

func (a *app) Update() {
	if a.term.Update() {
		a.hud.Sync()
	}
	if !a.term.IsOpen() {
		a.handleKeys()
	}
	a.handlePointer()
	a.hud.Apply()
	a.pollWatcher()

	a.v.Update()
	a.v.Orbit().Step()

	if gen := a.v.Generation(); gen != a.lastGen {
		a.lastGen = gen
		a.hud.Sync()
	}
}

func (a *app) handleKeys() {
	i := a.v.SizeIndex()
	next := i
	switch {
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		next = a.v.Catalog().ClampIndex(i - 1)
	case rl.IsKeyPressed(rl.KeyRightBracket):
		next = a.v.Catalog().ClampIndex(i + 1)
	}
	if next != i {
		a.v.SelectIndex(next)
	}
}

func (a *app) overlayContains(p rl.Vector2) bool {
	return a.hud.Contains(p) || a.ui.Contains(p) || a.term.Contains(p)
}

func (a *app) handlePointer() {
	mouse := rl.GetMousePosition()
	w, h := graphics.Size()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.dragging = !a.overlayContains(mouse)
		if a.dragging && w > 0 && h > 0 {
			a.v.Pick(geom.NDCFromScreen(mouse, w, h), w/h)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) && !a.overlayContains(mouse) {
		a.v.ClearPick()
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.dragging = false
	}
	if a.dragging && h > 0 {
		if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
			a.v.Orbit().Rotate(-dragTurn*d.X/h, dragTurn*d.Y/h)
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !a.overlayContains(mouse) {
		a.v.Orbit().Zoom(math32.Pow(wheelZoom, wheel))
	}
}

func (a *app) pollWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case size := <-a.watcher.Changes():
			if size == a.v.Variant() {
				a.log.Infof("assets for size %s changed, reloading", size)
				a.v.Reload()
			}
		default:
			return
		}
	}
}

func (a *app) Draw() {
	a.scene.Draw(a.v)

	w, h := graphics.Size()
	r := a.v.Readout()
	pick := a.v.PickState()
	pos, visible := a.v.LabelPosition(w, h)
	a.nodes = a.panel.AppendNodes(a.nodes[:0], ui.Readout{
		SizeLabel: r.SizeLabel,
		Size:      r.Size,
		Pad:       r.Pad,
		Openness:  r.Openness,
		Warning:   r.Warning,
	})
	a.nodes = a.label.AppendNodes(a.nodes, pick.Label, pos.X, pos.Y, visible)
	a.ui.SetNodes(a.nodes)
	a.ui.Draw()

	a.hud.Draw()
	a.term.Draw()
	a.dbg.Draw(a.v.Status())
}

// Close releases what newApp started when the window never opens.
func (a *app) Close() {
	if a.stopWatch != nil {
		a.stopWatch()
		_ = a.watcher.Close()
	}
	a.v.Close()
	closeSource(a.src)
}

// Teardown frees GPU meshes while the context is alive, stops background work and saves the
// size, openness and overlay toggles.
func (a *app) Teardown() {
	a.Close()
	a.registry.Close()
	err := a.opts.saveChoices(viewerconfig.Choices{
		DefaultSize: a.v.Variant(),
		Openness:    a.v.OpennessPercent(),
		GridVisible: a.opts.prefs.GridVisible,
		ShowFPS:     a.opts.prefs.ShowFPS,
	})
	if err != nil {
		a.log.Errorf("save preferences: %v", err)
	}
}
