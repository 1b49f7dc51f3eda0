package geom

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech"
)

// computeAlternating builds the alternating-height-finger shape. There is no
// middle bar: the top rail is PLUS, the bottom rail MINUS, and fingers hang
// from them alternately, each tip stopping one spacing short of the opposite
// rail. The shield side bars float next to both rails.
func computeAlternating(p Params, t *tech.Profile) (*Result, error) {
	if p.Fingers < 2 || p.Fingers%2 != 0 {
		return nil, &GeometryError{p.Kind, "fingers", fmt.Sprintf("needs an even count >= 2, got %d", p.Fingers)}
	}
	d := deriveDims(p, t)
	if err := checkDims(p, d); err != nil {
		return nil, err
	}

	r := baseResult(p, t, d)
	r.FingerX = fingerCenters(d)

	halfField := Snap(d.field / 2)
	railY := Snap(d.railY)
	halfH := Snap(d.h / 2)
	innerY := Snap(d.h/2 + d.s)
	halfTotalH := Snap(d.totalH / 2)

	r.HBars = append(r.HBars,
		HBar{"bottom-rail", AllLayers, -railY, d.wfr, -halfField, halfField, false, TerminalMinus},
		HBar{"top-rail", AllLayers, railY, d.wfr, -halfField, halfField, false, TerminalPlus},
	)

	shieldX := Snap(d.totalW/2 - d.wfr/2)
	r.VBars = append(r.VBars,
		VBar{"shield-left", AllLayers, -shieldX, d.wfr, -halfTotalH, halfTotalH, true, TerminalShield},
		VBar{"shield-right", AllLayers, shieldX, d.wfr, -halfTotalH, halfTotalH, true, TerminalShield},
	)

	for i, x := range r.FingerX {
		if i%2 == 0 {
			// top-connected, tip reaches down to the active floor
			r.VBars = append(r.VBars,
				VBar{fmt.Sprintf("finger-%d", i), AllLayers, x, d.wf, -halfH, innerY, false, TerminalPlus})
		} else {
			r.VBars = append(r.VBars,
				VBar{fmt.Sprintf("finger-%d", i), AllLayers, x, d.wf, -innerY, halfH, false, TerminalMinus})
		}
	}

	for li := 0; li < len(r.Layers)-1; li++ {
		r.Vias = append(r.Vias,
			ViaArray{"bottom-rail", li, 0, -railY, t.ViaFit(d.wfr), t.ViaFit(d.field)},
			ViaArray{"top-rail", li, 0, railY, t.ViaFit(d.wfr), t.ViaFit(d.field)},
		)
	}

	top := r.TopLayer()
	r.Pins = [2]Pin{
		{TerminalPlus, top, 0, railY, "PLUS"},
		{TerminalMinus, top, 0, -railY, "MINUS"},
	}
	r.Spacings = []NamedSpacing{
		{"finger-to-finger", d.s, 0},
		{"finger-tip-to-rail", d.s, 0},
		{"finger-to-shield", d.s, 0},
	}
	r.Widths = []NamedWidth{
		{"finger_width", d.wf, true},
		{"frame_width", d.wfr, true},
	}
	return r, nil
}
