package geom

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech"
)

// computeInterdigit builds the frame + fingers + middle-bar shape. A
// horizontal bar across the center carries the even-indexed fingers (PLUS);
// the odd-indexed fingers hang from the frame rails (MINUS) as two segments
// each, stopping one spacing short of the bar. The frame closes into a ring
// through the shield side bars.
func computeInterdigit(p Params, t *tech.Profile) (*Result, error) {
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
			fmt.Sprintf("active height %g leaves no span for frame fingers around a %g bar", d.h, wb)}
	}

	r := baseResult(p, t, d)
	r.BarWidth = wb
	r.FingerX = fingerCenters(d)

	combFeatures(r, d, AllLayers)

	for li := 0; li < len(r.Layers)-1; li++ {
		r.Vias = append(r.Vias,
			ViaArray{"bottom-rail", li, 0, Snap(-d.railY), t.ViaFit(d.wfr), t.ViaFit(d.totalW)},
			ViaArray{"middle-bar", li, 0, 0, t.ViaFit(wb), t.ViaFit(d.field)},
			ViaArray{"top-rail", li, 0, Snap(d.railY), t.ViaFit(d.wfr), t.ViaFit(d.totalW)},
		)
	}

	top := r.TopLayer()
	r.Pins = [2]Pin{
		{TerminalPlus, top, 0, 0, "PLUS"},
		{TerminalMinus, top, 0, Snap(d.railY), "MINUS"},
	}
	r.Spacings = []NamedSpacing{
		{"finger-to-finger", d.s, 0},
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

// combFeatures appends the interdigit comb - rails, shield side bars, middle
// bar and fingers - on the given layer selector. The sandwich variant reuses
// it for its middle layer.
func combFeatures(r *Result, d dims, layer int) {
	wb := d.wf
	halfW := Snap(d.totalW / 2)
	halfField := Snap(d.field / 2)
	railY := Snap(d.railY)
	innerY := Snap(d.h/2 + d.s)

	r.HBars = append(r.HBars,
		HBar{"bottom-rail", layer, -railY, d.wfr, -halfW, halfW, false, TerminalMinus},
		HBar{"top-rail", layer, railY, d.wfr, -halfW, halfW, false, TerminalMinus},
		HBar{"middle-bar", layer, 0, wb, -halfField, halfField, false, TerminalPlus},
	)

	shieldX := Snap(d.totalW/2 - d.wfr/2)
	r.VBars = append(r.VBars,
		VBar{"shield-left", layer, -shieldX, d.wfr, -innerY, innerY, true, TerminalMinus},
		VBar{"shield-right", layer, shieldX, d.wfr, -innerY, innerY, true, TerminalMinus},
	)

	tipY := Snap(wb/2 + d.s)
	halfH := Snap(d.h / 2)
	for i, x := range r.FingerX {
		if i%2 == 0 {
			r.VBars = append(r.VBars,
				VBar{fmt.Sprintf("finger-%d", i), layer, x, d.wf, -halfH, halfH, false, TerminalPlus})
		} else {
			r.VBars = append(r.VBars,
				VBar{fmt.Sprintf("finger-%d-upper", i), layer, x, d.wf, tipY, innerY, false, TerminalMinus},
				VBar{fmt.Sprintf("finger-%d-lower", i), layer, x, d.wf, -innerY, -tipY, false, TerminalMinus},
			)
		}
	}
}
