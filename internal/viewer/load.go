package viewer

import (
	"fmt"

	"gripper-viewer/internal/assets"
	"gripper-viewer/internal/catalog"
	"gripper-viewer/internal/concurrent"
	"gripper-viewer/internal/dimensions"
	"gripper-viewer/internal/meshio"
)

// event is a background result waiting for Update. Every event carries the generation of the
// request that produced it.
type event interface {
	gen() uint64
}

type partLoaded struct {
	generation uint64
	variant    string
	spec       catalog.PartSpec
	geometry   *meshio.Geometry
}

type partFailed struct {
	generation uint64
	err        error
}

type variantSettled struct {
	generation uint64
	variant    string
}

type dimensionsFetched struct {
	generation uint64
	variant    string
	dims       dimensions.Dimensions
	err        error
}

func (e partLoaded) gen() uint64        { return e.generation }
func (e partFailed) gen() uint64        { return e.generation }
func (e variantSettled) gen() uint64    { return e.generation }
func (e dimensionsFetched) gen() uint64 { return e.generation }

type partResult struct {
	geometry *meshio.Geometry
	err      error
	skipped  bool
}

// post hands an event to the frame loop. It gives up once the viewer is closed.
func (v *Viewer) post(e event) {
	select {
	case v.events <- e:
	case <-v.ctx.Done():
	}
}

// loadVariant loads every part concurrently, posts each outcome, then posts the settled marker.
func (v *Viewer) loadVariant(gen uint64, size string, parts []catalog.PartSpec) {
	v.runner.RunWithCallback(parts, func(p catalog.PartSpec) partResult {
		return v.loadPart(gen, size, p)
	}, func(o concurrent.Outcome[catalog.PartSpec, partResult]) {
		switch {
		case o.Result.skipped:
		case o.Result.err != nil:
			v.post(partFailed{generation: gen, err: o.Result.err})
		default:
			v.post(partLoaded{generation: gen, variant: size, spec: o.Item, geometry: o.Result.geometry})
		}
	})
	v.post(variantSettled{generation: gen, variant: size})
}

// loadPart fetches and decodes one mesh. Work for a superseded request is skipped where that is
// cheap to notice; Update discards whatever still gets through.
func (v *Viewer) loadPart(gen uint64, size string, p catalog.PartSpec) partResult {
	if v.stale(gen) {
		return partResult{skipped: true}
	}
	rc, err := v.src.Open(v.ctx, assets.MeshPath(size, p.File, v.format))
	if err != nil {
		return partResult{err: &PartError{Part: p.File, Variant: size, Err: err}}
	}
	defer rc.Close()
	if v.stale(gen) {
		return partResult{skipped: true}
	}
	g, err := meshio.Decode(v.format, p.File, rc)
	if err != nil {
		return partResult{err: &PartError{Part: p.File, Variant: size, Err: err}}
	}
	return partResult{geometry: g}
}

func (v *Viewer) fetchDimensions(gen uint64, size string) {
	e := dimensionsFetched{generation: gen, variant: size}
	data, err := assets.ReadAll(v.ctx, v.src, assets.DimensionsPath(size))
	if err != nil {
		e.err = fmt.Errorf("%w: %v", ErrDimensionsFetchFailed, err)
		v.post(e)
		return
	}
	d, err := dimensions.Parse(string(data))
	if err != nil {
		e.err = fmt.Errorf("%w: %v", ErrDimensionsParseFailed, err)
		v.post(e)
		return
	}
	e.dims = d
	v.post(e)
}
