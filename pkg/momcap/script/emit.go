// Package script serializes primitive sequences into the s-expression
// command stream the host CAD bridge executes. The vocabulary is closed:
// cell, path, rect, via, label, place-array, save, close. No loops,
// conditionals or user-defined procedures ever appear; every numeric
// literal goes through the shared grid formatter, so the downstream
// executor never sees a malformed value.
package script

import (
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/geom"
	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/mosaic"
	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/render"
)

// Emit writes one complete cell script: header, every primitive in render
// order, save, close.
func Emit(w io.Writer, cell string, prims []render.Primitive) error {
	e := &emitter{w: w}
	e.header(cell)
	for _, p := range prims {
		e.primitive(p)
	}
	e.footer()
	return e.err
}

// EmitArray writes an array-assembly script: the unit cell's primitives
// followed by one place-array command per mosaic region. Each region
// instantiates once with its own row/column counts and pitch - never one
// placement per cell.
func EmitArray(w io.Writer, cell string, prims []render.Primitive, regions []mosaic.Region) error {
	e := &emitter{w: w}
	e.header(cell)
	for _, p := range prims {
		e.primitive(p)
	}
	for _, r := range regions {
		e.printf("(place-array %q (origin %s %s) (rows %d) (cols %d) (pitch %s %s))\n",
			cell,
			coord(float64(r.ColStart)*r.Pitch.X), coord(float64(r.RowStart)*r.Pitch.Y),
			r.Rows(), r.Cols(),
			coord(r.Pitch.X), coord(r.Pitch.Y))
	}
	e.footer()
	return e.err
}

// coord is the single numeric formatter: grid multiple, fixed decimals.
func coord(v float64) string { return geom.FormatCoord(v) }

type emitter struct {
	w   io.Writer
	err error
}

func (e *emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *emitter) header(cell string) {
	e.printf("(cell %q (grid %s))\n", cell, coord(geom.GridUnit))
}

func (e *emitter) footer() {
	e.printf("(save)\n(close)\n")
}

func (e *emitter) primitive(p render.Primitive) {
	switch p := p.(type) {
	case render.Path:
		e.printf("(path %q %s %s (", p.Layer, coord(p.Width), p.End)
		for i, pt := range p.Points {
			if i > 0 {
				e.printf(" ")
			}
			e.printf("(%s %s)", coord(pt.X), coord(pt.Y))
		}
		e.printf("))\n")
	case render.Rect:
		e.printf("(rect %q (%s %s) (%s %s))\n", p.Layer,
			coord(p.Min.X), coord(p.Min.Y), coord(p.Max.X), coord(p.Max.Y))
	case render.Via:
		e.printf("(via %q (%s %s) (rows %d) (cols %d) (pitch %s %s))\n",
			p.Pair, coord(p.Origin.X), coord(p.Origin.Y), p.Rows, p.Cols,
			coord(p.Pitch), coord(p.Pitch))
	case render.Label:
		e.printf("(label %q (%s %s) %q (align %s) (orient %s) %s)\n",
			p.Layer, coord(p.At.X), coord(p.At.Y), p.Text, p.Align, p.Orient,
			coord(p.Size))
	default:
		e.err = fmt.Errorf("script: unknown primitive %T", p)
	}
}
