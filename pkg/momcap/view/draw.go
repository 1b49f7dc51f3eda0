package view

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/render"
)

// Draw paints a primitive sequence through the camera. layerOf maps a
// layer name to its stack position (bottom = 0) for color selection; the
// render order already runs bottom to top, so later primitives paint over
// earlier ones the way the physical stack does.
func Draw(ops *op.Ops, cam *Camera, prims []render.Primitive, layerOf map[string]int) {
	for _, p := range prims {
		switch p := p.(type) {
		case render.Rect:
			fillWorldRect(ops, cam, p.Min.X, p.Min.Y, p.Max.X, p.Max.Y, PlateColor(layerOf[p.Layer]))
		case render.Path:
			col := StackColor(layerOf[p.Layer])
			if p.Shield {
				col = ColorShield
			}
			drawPath(ops, cam, p, col)
		case render.Via:
			drawVia(ops, cam, p)
		case render.Label:
			drawLabel(ops, cam, p)
		}
	}
}

// drawPath strokes each segment of a polyline at its true width. Capacitor
// paths are axis-aligned, so every segment is a world-space rectangle.
func drawPath(ops *op.Ops, cam *Camera, p render.Path, col color.NRGBA) {
	half := p.Width / 2
	for i := 1; i < len(p.Points); i++ {
		a, b := p.Points[i-1], p.Points[i]
		x0, x1 := minMax(a.X, b.X)
		y0, y1 := minMax(a.Y, b.Y)
		if p.End == render.EndExtend {
			if a.Y == b.Y {
				x0, x1 = x0-half, x1+half
			} else {
				y0, y1 = y0-half, y1+half
			}
		}
		if a.Y == b.Y {
			fillWorldRect(ops, cam, x0, y0-half, x1, y1+half, col)
		} else {
			fillWorldRect(ops, cam, x0-half, y0, x1+half, y1, col)
		}
	}
}

// drawVia paints the via array as its cell grid: one small square per via.
func drawVia(ops *op.Ops, cam *Camera, v render.Via) {
	size := v.Pitch * 0.5
	startX := v.Origin.X - float64(v.Cols-1)*v.Pitch/2
	startY := v.Origin.Y - float64(v.Rows-1)*v.Pitch/2
	for r := 0; r < v.Rows; r++ {
		for c := 0; c < v.Cols; c++ {
			cx := startX + float64(c)*v.Pitch
			cy := startY + float64(r)*v.Pitch
			fillWorldRect(ops, cam, cx-size/2, cy-size/2, cx+size/2, cy+size/2, ColorVia)
		}
	}
}

// drawLabel paints a cross marker at the terminal position.
func drawLabel(ops *op.Ops, cam *Camera, l render.Label) {
	arm := l.Size
	bar := l.Size / 5
	fillWorldRect(ops, cam, l.At.X-arm, l.At.Y-bar, l.At.X+arm, l.At.Y+bar, ColorLabel)
	fillWorldRect(ops, cam, l.At.X-bar, l.At.Y-arm, l.At.X+bar, l.At.Y+arm, ColorLabel)
}

// fillWorldRect fills an axis-aligned world rectangle on screen.
func fillWorldRect(ops *op.Ops, cam *Camera, x0, y0, x1, y1 float64, col color.NRGBA) {
	// World Y up flips to screen Y down, so the top-left screen corner is
	// the world top-left (x0, y1).
	sx0, sy0 := cam.WorldToScreen(x0, y1)
	sx1, sy1 := cam.WorldToScreen(x1, y0)

	var path clip.Path
	path.Begin(ops)
	path.MoveTo(f32.Pt(float32(sx0), float32(sy0)))
	path.LineTo(f32.Pt(float32(sx1), float32(sy0)))
	path.LineTo(f32.Pt(float32(sx1), float32(sy1)))
	path.LineTo(f32.Pt(float32(sx0), float32(sy1)))
	path.Close()
	paint.FillShape(ops, col, clip.Outline{Path: path.End()}.Op())
}

func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
