package viewer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gripper-viewer/internal/assets"
	"gripper-viewer/internal/catalog"
	"gripper-viewer/internal/concurrent"
	"gripper-viewer/internal/dimensions"
	"gripper-viewer/internal/geom"
	"gripper-viewer/internal/logger"
	"gripper-viewer/internal/meshio"
)

// FrameDistanceFactor scales the largest assembly dimension into the camera's diagonal offset.
const FrameDistanceFactor = 2.2

// Options configures a Viewer.
type Options struct {
	Catalog        catalog.Catalog
	Source         assets.Source
	Format         string
	Log            *logger.Logger
	MaxConcurrency int
	MinDistance    float32
	MaxDistance    float32
}

// Readout is the text shown in the side panel.
type Readout struct {
	SizeLabel string
	Size      string
	Pad       string
	Openness  string
	Warning   string
}

// Status summarizes the current request for overlays and the inspect command.
type Status struct {
	Generation uint64
	Variant    string
	Loading    bool
	Loaded     int
	Failed     int
	Total      int
	Dropped    int
}

// Viewer owns all state of the assembly viewer. Every method except Close must be called from the
// goroutine that runs the frame loop; background loads only post events that Update applies.
type Viewer struct {
	cat    catalog.Catalog
	src    assets.Source
	format string
	log    *logger.Logger
	runner *concurrent.Runner[catalog.PartSpec, partResult]

	ctx    context.Context
	cancel context.CancelFunc
	events chan event

	generation atomic.Uint64

	sizeIndex   int
	variant     string
	loading     bool
	dimsPending bool
	failed      int
	total       int
	dropped     int

	assembly     *Assembly
	camera       *Orbit
	modelSize    rl.Vector3
	fingers      FingerGroups
	openDistance float32
	openness     float32
	pick         PickState
	readout      Readout
}

// New creates a Viewer. No variant is requested until RequestVariant or SelectIndex is called.
func New(opts Options) (*Viewer, error) {
	if opts.Source == nil {
		return nil, errors.New("viewer: asset source is required")
	}
	cat := opts.Catalog.Clone()
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}
	format := opts.Format
	if format == "" {
		format = meshio.FormatOBJ
	}
	if format != meshio.FormatOBJ && format != meshio.FormatSTL {
		return nil, fmt.Errorf("viewer: unknown mesh format %q", format)
	}
	log := opts.Log
	if log == nil {
		log = logger.NewMemory()
	}
	minD, maxD := opts.MinDistance, opts.MaxDistance
	if minD <= 0 {
		minD = 0.5
	}
	if maxD < minD {
		maxD = max(minD, 20)
	}

	ctx, cancel := context.WithCancel(context.Background())
	v := &Viewer{
		cat:       cat,
		src:       opts.Source,
		format:    format,
		log:       log,
		runner:    concurrent.NewRunner[catalog.PartSpec, partResult](concurrent.RunnerConfig{MaxConcurrency: opts.MaxConcurrency}),
		ctx:       ctx,
		cancel:    cancel,
		events:    make(chan event, 2*len(cat.Parts)+8),
		sizeIndex: cat.StartIndex(),
		assembly:  NewAssembly(),
		camera:    NewOrbit(minD, maxD),
		readout: Readout{
			Size:     "--",
			Pad:      dimensions.UnavailablePad,
			Openness: OpennessLabel(0),
		},
	}
	return v, nil
}

// Close stops background work. Loads still in flight finish without being applied.
func (v *Viewer) Close() {
	v.cancel()
}

// Catalog returns the viewer's private copy of the catalog.
func (v *Viewer) Catalog() catalog.Catalog {
	return v.cat
}

// SelectIndex requests the size at index i, clamped to the catalog's range.
func (v *Viewer) SelectIndex(i int) uint64 {
	v.sizeIndex = v.cat.ClampIndex(i)
	return v.RequestVariant(v.cat.Sizes[v.sizeIndex])
}

// SizeIndex returns the selected size index.
func (v *Viewer) SizeIndex() int {
	return v.sizeIndex
}

// Reload requests the current variant again.
func (v *Viewer) Reload() uint64 {
	if v.variant == "" {
		return v.SelectIndex(v.sizeIndex)
	}
	return v.RequestVariant(v.variant)
}

// RequestVariant starts loading every part of size. Any earlier request becomes stale: its results
// are still produced but never applied. The assembly is cleared before this returns.
func (v *Viewer) RequestVariant(size string) uint64 {
	gen := v.generation.Add(1)
	if i := v.cat.IndexOf(size); i >= 0 {
		v.sizeIndex = i
	}
	v.variant = size
	v.ClearPick()
	v.assembly.Clear()
	v.fingers = FingerGroups{}
	v.openDistance = 0
	v.loading = true
	v.dimsPending = false
	v.failed = 0
	v.total = len(v.cat.Parts)
	v.readout.SizeLabel = size + "x"
	v.readout.Warning = ""

	parts := make([]catalog.PartSpec, len(v.cat.Parts))
	copy(parts, v.cat.Parts)
	go v.loadVariant(gen, size, parts)
	return gen
}

// Variant returns the most recently requested size.
func (v *Viewer) Variant() string {
	return v.variant
}

// Generation returns the current request token.
func (v *Viewer) Generation() uint64 {
	return v.generation.Load()
}

func (v *Viewer) stale(gen uint64) bool {
	return gen != v.generation.Load()
}

// Busy reports whether the current request still has part loads or a dimensions fetch outstanding.
func (v *Viewer) Busy() bool {
	return v.loading || v.dimsPending
}

// Update applies every completed background result. It never blocks and returns the number of
// events handled, stale ones included.
func (v *Viewer) Update() int {
	n := 0
	for {
		select {
		case e := <-v.events:
			v.apply(e)
			n++
		default:
			return n
		}
	}
}

// Settle applies results until the current request is fully settled or ctx is done.
func (v *Viewer) Settle(ctx context.Context) error {
	for v.Busy() {
		select {
		case e := <-v.events:
			v.apply(e)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (v *Viewer) apply(e event) {
	if v.stale(e.gen()) {
		v.dropped++
		return
	}
	switch e := e.(type) {
	case partLoaded:
		v.assembly.Add(newLoadedPart(e.spec, e.variant, e.geometry))
	case partFailed:
		v.failed++
		v.log.Infof("%v", e.err)
	case variantSettled:
		v.loading = false
		v.settle(e)
	case dimensionsFetched:
		v.dimsPending = false
		v.applyDimensions(e)
	}
}

// settle runs once every part load of the current request has finished.
func (v *Viewer) settle(e variantSettled) {
	v.frame()
	v.assembly.SnapshotBase()
	v.fingers = deriveFingers(v.cat, v.assembly)
	v.openDistance = measureOpenDistance(v.assembly, v.fingers)
	v.ApplyOpenness(v.openness)

	v.dimsPending = true
	go v.fetchDimensions(e.generation, e.variant)

	if v.failed > 0 {
		v.readout.Warning = fmt.Sprintf("Size %s missing %d part(s).", e.variant, v.failed)
		v.log.Warnf("%s", v.readout.Warning)
	}
}

// frame centers the assembly on the origin and puts the camera on the (1, 1, 1) diagonal.
func (v *Viewer) frame() {
	box, ok := v.assembly.WorldBounds()
	if !ok {
		return
	}
	size := geom.Size(box)
	v.modelSize = size
	v.assembly.Offset = rl.Vector3Subtract(v.assembly.Offset, geom.Center(box))
	v.readout.Size = fmt.Sprintf("%.1f x %.1f x %.1f", size.X, size.Y, size.Z)

	d := geom.MaxDim(box) * FrameDistanceFactor
	if d <= 0 {
		return
	}
	v.camera.Frame(rl.NewVector3(d, d, d), rl.Vector3{})
}

func (v *Viewer) applyDimensions(e dimensionsFetched) {
	if e.err != nil {
		v.log.Infof("size %s: %v", e.variant, e.err)
		v.readout.Size = dimensions.UnavailableSize
		v.readout.Pad = dimensions.UnavailablePad
		return
	}
	v.readout.Size = e.dims.SizeReadout()
	v.readout.Pad = e.dims.PadReadout()
}

// Assembly returns the current assembly.
func (v *Viewer) Assembly() *Assembly {
	return v.assembly
}

// Orbit returns the camera controller.
func (v *Viewer) Orbit() *Orbit {
	return v.camera
}

// Camera returns the current raylib camera.
func (v *Viewer) Camera() rl.Camera3D {
	return v.camera.Camera()
}

// ModelSize returns the size of the assembly box recorded by the last framing.
func (v *Viewer) ModelSize() rl.Vector3 {
	return v.modelSize
}

// Readout returns the panel text.
func (v *Viewer) Readout() Readout {
	return v.readout
}

// Status returns load counters for the current request.
func (v *Viewer) Status() Status {
	return Status{
		Generation: v.generation.Load(),
		Variant:    v.variant,
		Loading:    v.Busy(),
		Loaded:     v.assembly.Len(),
		Failed:     v.failed,
		Total:      v.total,
		Dropped:    v.dropped,
	}
}
