package commands

import (
	"fmt"

	"gripper-viewer/internal/catalog"
)

// Controls is the part of the viewer the console drives.
type Controls interface {
	Catalog() catalog.Catalog
	SelectIndex(i int) uint64
	RequestVariant(size string) uint64
	SetOpenness(percent int)
	Reload() uint64
}

// Bindings connects viewer commands to the application. Nil funcs disable their command.
type Bindings struct {
	Viewer  Controls
	SetGrid func(visible bool)
	SetFPS  func(visible bool)
	// Changed is called after any command changed viewer state (e.g. to sync sliders and save prefs).
	Changed func()
}

func (b Bindings) changed() {
	if b.Changed != nil {
		b.Changed()
	}
}

// RegisterViewer adds size, open, reload, grid and fps. Grid and fps are skipped when their
// binding is nil; "help" is answered by the console itself.
func RegisterViewer(r *Registry, b Bindings) {
	sizeFS := NewFlagSet("size")
	index := sizeFS.Int("index", -1, "size index")
	value := sizeFS.String("value", "", "size token, e.g. 1.7")
	r.Register("size", "--index N | --value 1.7", sizeFS, func() error {
		switch {
		case sizeFS.Changed("value"):
			if b.Viewer.Catalog().IndexOf(*value) < 0 {
				return fmt.Errorf("size: unknown size %q", *value)
			}
			b.Viewer.RequestVariant(*value)
		case sizeFS.Changed("index"):
			b.Viewer.SelectIndex(*index)
		default:
			return fmt.Errorf("size: --index or --value is required")
		}
		b.changed()
		return nil
	})

	openFS := NewFlagSet("open")
	percent := openFS.Int("value", 0, "openness 0..100")
	r.Register("open", "--value 0..100", openFS, func() error {
		if !openFS.Changed("value") {
			return fmt.Errorf("open: --value is required")
		}
		if *percent < 0 || *percent > 100 {
			return fmt.Errorf("open: value %d out of range 0..100", *percent)
		}
		b.Viewer.SetOpenness(*percent)
		b.changed()
		return nil
	})

	r.Register("reload", "", NewFlagSet("reload"), func() error {
		b.Viewer.Reload()
		b.changed()
		return nil
	})

	if b.SetGrid != nil {
		registerToggle(r, "grid", b.SetGrid, b.changed)
	}
	if b.SetFPS != nil {
		registerToggle(r, "fps", b.SetFPS, b.changed)
	}
}

// registerToggle adds a command taking --show or --hide.
func registerToggle(r *Registry, name string, set func(bool), changed func()) {
	fs := NewFlagSet(name)
	show := fs.Bool("show", false, "show "+name)
	hide := fs.Bool("hide", false, "hide "+name)
	r.Register(name, "--show | --hide", fs, func() error {
		if *show == *hide {
			return fmt.Errorf("%s: use exactly one of --show or --hide", name)
		}
		set(*show)
		changed()
		return nil
	})
}
