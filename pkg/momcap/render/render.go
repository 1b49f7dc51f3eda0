package render

import (
	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/geom"
)

// Label styling shared by both terminal markers.
const (
	LabelAlign  = "center"
	LabelOrient = "r0"
	LabelSize   = 0.2
)

// Render flattens a computed geometry into the ordered primitive sequence:
// layers bottom to top, per layer plates, then bars, then the via arrays up
// to the next layer; after the top layer the two terminal labels. The
// output is flat and complete - nothing is deferred.
//
// includeShield=false omits shield-flagged bars and changes nothing else;
// every other primitive keeps bit-identical coordinates.
//
// The geometry is expected to arrive grid-snapped; the first unsnapped
// numeric aborts with a *RenderError.
func Render(r *geom.Result, p geom.Params, includeShield bool) ([]Primitive, error) {
	if err := checkSnapped(r); err != nil {
		return nil, err
	}

	var prims []Primitive
	for li := range r.Layers {
		layer := r.Layers[li]

		for _, pl := range r.Plates {
			if pl.Layer != li {
				continue
			}
			prims = append(prims, Rect{
				Layer: layer,
				Min:   Point{pl.MinX, pl.MinY},
				Max:   Point{pl.MaxX, pl.MaxY},
			})
		}

		for _, b := range r.HBars {
			if !onLayer(b.Layer, li) || (b.Shield && !includeShield) {
				continue
			}
			prims = append(prims, Path{
				Layer:  layer,
				Points: []Point{{b.X0, b.Y}, {b.X1, b.Y}},
				Width:  b.Width,
				End:    EndTruncate,
				Shield: b.Shield,
			})
		}
		for _, b := range r.VBars {
			if !onLayer(b.Layer, li) || (b.Shield && !includeShield) {
				continue
			}
			prims = append(prims, Path{
				Layer:  layer,
				Points: []Point{{b.X, b.Y0}, {b.X, b.Y1}},
				Width:  b.Width,
				End:    EndTruncate,
				Shield: b.Shield,
			})
		}

		for _, v := range r.Vias {
			if v.Lower != li {
				continue
			}
			prims = append(prims, Via{
				Pair:   r.ViaPair(v),
				Origin: Point{v.X, v.Y},
				Rows:   v.Rows,
				Cols:   v.Cols,
				Pitch:  r.ViaPitch,
			})
		}
	}

	for _, pin := range r.Pins {
		prims = append(prims, Label{
			Layer:  r.Layers[pin.Layer],
			At:     Point{pin.X, pin.Y},
			Text:   pin.Text,
			Align:  LabelAlign,
			Orient: LabelOrient,
			Size:   LabelSize,
		})
	}
	return prims, nil
}

func onLayer(sel, li int) bool {
	return sel == geom.AllLayers || sel == li
}

// checkSnapped walks every numeric the primitives will carry and rejects
// the first one off the manufacturing grid.
func checkSnapped(r *geom.Result) error {
	check := func(field string, v float64) *RenderError {
		if !geom.IsSnapped(v) {
			return &RenderError{field, v}
		}
		return nil
	}
	for _, b := range r.HBars {
		for _, c := range []struct {
			field string
			v     float64
		}{{b.Name + ".y", b.Y}, {b.Name + ".width", b.Width}, {b.Name + ".x0", b.X0}, {b.Name + ".x1", b.X1}} {
			if err := check(c.field, c.v); err != nil {
				return err
			}
		}
	}
	for _, b := range r.VBars {
		for _, c := range []struct {
			field string
			v     float64
		}{{b.Name + ".x", b.X}, {b.Name + ".width", b.Width}, {b.Name + ".y0", b.Y0}, {b.Name + ".y1", b.Y1}} {
			if err := check(c.field, c.v); err != nil {
				return err
			}
		}
	}
	for _, pl := range r.Plates {
		for _, c := range []struct {
			field string
			v     float64
		}{{pl.Name + ".minx", pl.MinX}, {pl.Name + ".miny", pl.MinY}, {pl.Name + ".maxx", pl.MaxX}, {pl.Name + ".maxy", pl.MaxY}} {
			if err := check(c.field, c.v); err != nil {
				return err
			}
		}
	}
	for _, v := range r.Vias {
		if err := check(v.Name+".x", v.X); err != nil {
			return err
		}
		if err := check(v.Name+".y", v.Y); err != nil {
			return err
		}
	}
	for _, pin := range r.Pins {
		if err := check("pin."+pin.Text+".x", pin.X); err != nil {
			return err
		}
		if err := check("pin."+pin.Text+".y", pin.Y); err != nil {
			return err
		}
	}
	if err := check("via_pitch", r.ViaPitch); err != nil {
		return err
	}
	return nil
}
