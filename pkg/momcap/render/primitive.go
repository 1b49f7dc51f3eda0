// Package render flattens a computed capacitor geometry into the ordered
// primitive sequence the script emitter and the preview viewer consume.
package render

import "fmt"

// Point is a grid-snapped coordinate pair, micrometers.
type Point struct {
	X float64
	Y float64
}

// EndStyle selects how a path terminates at its endpoints.
type EndStyle int

const (
	// EndTruncate cuts the path square at each endpoint.
	EndTruncate EndStyle = iota
	// EndExtend continues the path half a width past each endpoint.
	EndExtend
)

func (e EndStyle) String() string {
	if e == EndExtend {
		return "extend"
	}
	return "truncate"
}

// Primitive is one drawing command. The set is closed: Path, Via, Label
// and Rect are the only implementations, and the script emitter
// type-switches over exactly these four.
type Primitive interface {
	isPrimitive()
}

// Path is a fixed-width polyline on one layer.
type Path struct {
	Layer  string
	Points []Point
	Width  float64
	End    EndStyle
	// Shield marks frame segments subject to the include-shield toggle.
	Shield bool
}

// Via is a rows x cols array of vertical connections between the adjacent
// layer pair named by Pair, centered on Origin.
type Via struct {
	Pair       string
	Origin     Point
	Rows, Cols int
	Pitch      float64
}

// Label is a terminal marker on one layer.
type Label struct {
	Layer  string
	At     Point
	Text   string
	Align  string
	Orient string
	Size   float64
}

// Rect is a solid filled rectangle; only the sandwich plates produce one.
type Rect struct {
	Layer string
	Min   Point
	Max   Point
}

func (Path) isPrimitive()  {}
func (Via) isPrimitive()   {}
func (Label) isPrimitive() {}
func (Rect) isPrimitive()  {}

// RenderError reports an internal invariant breach: an unsnapped numeric
// reached the renderer. It always indicates a defect upstream, never an
// expected condition.
type RenderError struct {
	Field string
	Value float64
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %s = %v is not on the manufacturing grid", e.Field, e.Value)
}
