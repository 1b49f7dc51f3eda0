package geom

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech"
)

// computeSandwich builds the tri-layer shape: solid plates on the outer two
// layers and the interdigit comb notched into the frame ring on the middle
// layer. Vias exist only on the bottom-facing pair, stitching the ring to
// the bottom plate; the top plate is joined in upper routing.
func computeSandwich(p Params, t *tech.Profile) (*Result, error) {
	if len(p.Layers) != 3 {
		return nil, &GeometryError{p.Kind, "layers", fmt.Sprintf("needs exactly 3 stack layers, got %d", len(p.Layers))}
	}
	if p.Fingers < 3 || p.Fingers%2 == 0 {
		return nil, &GeometryError{p.Kind, "fingers", fmt.Sprintf("needs an odd count >= 3, got %d", p.Fingers)}
	}
	d := deriveDims(p, t)
	if err := checkDims(p, d); err != nil {
		return nil, err
	}
	wb := d.wf
	if d.h-wb <= 0 {
		return nil, &GeometryError{p.Kind, "height",
			fmt.Sprintf("active height %g leaves no span for frame stubs around a %g bar", d.h, wb)}
	}

	r := baseResult(p, t, d)
	r.BarWidth = wb
	r.FingerX = fingerCenters(d)

	// middle layer carries the comb; the plates sandwich it
	combFeatures(r, d, 1)

	halfW := Snap(d.totalW / 2)
	halfH := Snap(d.totalH / 2)
	r.Plates = []Plate{
		{"bottom-plate", 0, -halfW, -halfH, halfW, halfH, TerminalMinus},
		{"top-plate", 2, -halfW, -halfH, halfW, halfH, TerminalMinus},
	}

	railY := Snap(d.railY)
	r.Vias = []ViaArray{
		{"bottom-rail", 0, 0, -railY, t.ViaFit(d.wfr), t.ViaFit(d.totalW)},
		{"top-rail", 0, 0, railY, t.ViaFit(d.wfr), t.ViaFit(d.totalW)},
	}

	r.Pins = [2]Pin{
		{TerminalPlus, 1, 0, 0, "PLUS"},
		{TerminalMinus, 2, 0, railY, "MINUS"},
	}
	r.Spacings = []NamedSpacing{
		// enclosed notch gaps carry a stricter shape floor
		{"notch-clearance", d.s, 2 * t.MinSpacing},
		{"finger-to-frame", d.s, 0},
		{"finger-to-bar", d.s, 0},
	}
	r.Widths = []NamedWidth{
		{"finger_width", d.wf, true},
		{"frame_width", d.wfr, true},
		{"bar_width", wb, true},
	}
	return r, nil
}
