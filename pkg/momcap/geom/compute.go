package geom

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech"
)

// Compute derives the full geometry for one capacitor, dispatching over the
// closed variant set. Identical inputs always produce bit-identical results.
// Impossible parameter combinations come back as a *GeometryError naming the
// offending field; nothing is ever clamped or corrected silently.
func Compute(p Params, t *tech.Profile) (*Result, error) {
	if err := checkCommon(p); err != nil {
		return nil, err
	}
	switch p.Kind {
	case Interdigit:
		return computeInterdigit(p, t)
	case Alternating:
		return computeAlternating(p, t)
	case Sandwich:
		return computeSandwich(p, t)
	default:
		return nil, &GeometryError{p.Kind, "shape", "unknown shape variant"}
	}
}

func checkCommon(p Params) error {
	switch {
	case p.Height <= 0:
		return &GeometryError{p.Kind, "height", fmt.Sprintf("must be > 0, got %g", p.Height)}
	case p.Spacing <= 0:
		return &GeometryError{p.Kind, "spacing", fmt.Sprintf("must be > 0, got %g", p.Spacing)}
	case p.FingerWidth <= 0:
		return &GeometryError{p.Kind, "finger_width", fmt.Sprintf("must be > 0, got %g", p.FingerWidth)}
	case p.FrameWidth <= 0:
		return &GeometryError{p.Kind, "frame_width", fmt.Sprintf("must be > 0, got %g", p.FrameWidth)}
	case len(p.Layers) == 0:
		return &GeometryError{p.Kind, "layers", "stack is empty"}
	}
	return nil
}

// dims holds the snapped spans shared by every variant.
type dims struct {
	n      int
	wf     float64 // quantized finger width
	wfr    float64 // quantized frame width
	s      float64
	h      float64
	field  float64 // fingers plus inner gaps
	totalW float64
	totalH float64
	railY  float64 // centerline of the top/bottom rails
}

func deriveDims(p Params, t *tech.Profile) dims {
	wf := Snap(t.QuantizeWidth(p.FingerWidth))
	wfr := Snap(t.QuantizeWidth(p.FrameWidth))
	s := Snap(p.Spacing)
	h := Snap(p.Height)
	n := p.Fingers
	field := Snap(float64(n)*wf + float64(n-1)*s)
	return dims{
		n:      n,
		wf:     wf,
		wfr:    wfr,
		s:      s,
		h:      h,
		field:  field,
		totalW: Snap(field + 2*s + 2*wfr),
		totalH: Snap(h + 2*s + 2*wfr),
		railY:  Snap(h/2 + s + wfr/2),
	}
}

// checkDims rejects parameters that vanish once snapped to the grid.
func checkDims(p Params, d dims) error {
	if d.s <= 0 {
		return &GeometryError{p.Kind, "spacing", fmt.Sprintf("%g snaps below the manufacturing grid", p.Spacing)}
	}
	if d.h <= 0 {
		return &GeometryError{p.Kind, "height", fmt.Sprintf("%g snaps below the manufacturing grid", p.Height)}
	}
	return nil
}

// stackLayers reverses the caller's top-to-bottom stack into the bottom-up
// order the renderer walks.
func stackLayers(layers []string) []string {
	out := make([]string, len(layers))
	for i, layer := range layers {
		out[len(layers)-1-i] = layer
	}
	return out
}

func baseResult(p Params, t *tech.Profile, d dims) *Result {
	return &Result{
		Kind:         p.Kind,
		Layers:       stackLayers(p.Layers),
		HalfWidth:    Snap(d.totalW / 2),
		HalfHeight:   Snap(d.totalH / 2),
		TotalWidth:   d.totalW,
		TotalHeight:  d.totalH,
		ActiveHeight: d.h,
		Spacing:      d.s,
		FingerWidth:  d.wf,
		FrameWidth:   d.wfr,
		FingerCount:  p.Fingers,
		ViaPitch:     Snap(t.ViaPitch),
	}
}

// fingerCenters computes the centerline X of every finger, left to right.
func fingerCenters(d dims) []float64 {
	xs := make([]float64, d.n)
	start := -d.field/2 + d.wf/2
	pitch := d.wf + d.s
	for i := range xs {
		xs[i] = Snap(start + float64(i)*pitch)
	}
	return xs
}
