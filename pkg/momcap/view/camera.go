// Package view draws a rendered primitive sequence on a gio canvas for
// interactive inspection: world-micrometer camera, per-stack-layer colors,
// translucent plates, true-width paths.
package view

import "github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/render"

// Box is an axis-aligned world-space bounding box, micrometers.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the box width.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the box height.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// IsEmpty reports whether the box has no area.
func (b Box) IsEmpty() bool { return b.Width() <= 0 || b.Height() <= 0 }

// Expand grows the box to include a point.
func (b *Box) Expand(x, y float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Bounds computes the world-space extent of a primitive sequence, widths
// included.
func Bounds(prims []render.Primitive) Box {
	const big = 1e18
	b := Box{MinX: big, MinY: big, MaxX: -big, MaxY: -big}
	for _, p := range prims {
		switch p := p.(type) {
		case render.Path:
			half := p.Width / 2
			for _, pt := range p.Points {
				b.Expand(pt.X-half, pt.Y-half)
				b.Expand(pt.X+half, pt.Y+half)
			}
		case render.Rect:
			b.Expand(p.Min.X, p.Min.Y)
			b.Expand(p.Max.X, p.Max.Y)
		case render.Via:
			hw := float64(p.Cols-1) * p.Pitch / 2
			hh := float64(p.Rows-1) * p.Pitch / 2
			b.Expand(p.Origin.X-hw, p.Origin.Y-hh)
			b.Expand(p.Origin.X+hw, p.Origin.Y+hh)
		case render.Label:
			b.Expand(p.At.X-p.Size, p.At.Y-p.Size)
			b.Expand(p.At.X+p.Size, p.At.Y+p.Size)
		}
	}
	if b.MinX > b.MaxX {
		return Box{}
	}
	return b
}

// Camera is a viewport onto the capacitor: world coordinates are
// micrometers with Y increasing upward, screen coordinates are pixels with
// Y increasing downward.
type Camera struct {
	// Center position in world coordinates.
	CenterX float64
	CenterY float64

	// Zoom level, pixels per micrometer.
	Zoom float64

	// Screen dimensions, pixels.
	ScreenWidth  int
	ScreenHeight int
}

// Zoom limits. A capacitor is a few tens of micrometers across, so the
// useful range sits well above the PCB-scale defaults.
const (
	minZoom = 1.0
	maxZoom = 10000.0
)

// NewCamera creates a camera with default settings.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         50.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts world coordinates to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	sx := (x-c.CenterX)*c.Zoom + float64(c.ScreenWidth)/2.0
	sy := (y-c.CenterY)*c.Zoom + float64(c.ScreenHeight)/2.0
	// World Y grows upward, screen Y grows downward.
	sy = float64(c.ScreenHeight) - sy
	return sx, sy
}

// ScreenToWorld converts screen pixels to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	y := float64(c.ScreenHeight) - sy
	wx := (sx-float64(c.ScreenWidth)/2.0)/c.Zoom + c.CenterX
	wy := (y-float64(c.ScreenHeight)/2.0)/c.Zoom + c.CenterY
	return wx, wy
}

// Pan moves the camera by screen pixel offsets.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY += deltaY / c.Zoom
}

// ZoomAt zooms in or out keeping the world point under the cursor
// stationary. factor > 1 zooms in.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	wx, wy := c.ScreenToWorld(screenX, screenY)

	c.Zoom *= factor
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
	if c.Zoom > maxZoom {
		c.Zoom = maxZoom
	}

	nx, ny := c.ScreenToWorld(screenX, screenY)
	c.CenterX += wx - nx
	c.CenterY += wy - ny
}

// Fit adjusts the camera to show the whole box with a margin.
func (c *Camera) Fit(b Box) {
	if b.IsEmpty() {
		return
	}
	c.CenterX = (b.MinX + b.MaxX) / 2.0
	c.CenterY = (b.MinY + b.MaxY) / 2.0

	zoomX := float64(c.ScreenWidth) * 0.9 / b.Width()
	zoomY := float64(c.ScreenHeight) * 0.9 / b.Height()
	if zoomX < zoomY {
		c.Zoom = zoomX
	} else {
		c.Zoom = zoomY
	}
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
	if c.Zoom > maxZoom {
		c.Zoom = maxZoom
	}
}

// UpdateScreenSize updates the camera when the window is resized.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}
