// Package geom derives capacitor geometry from shape parameters and a
// technology profile: one pure builder per shape variant, a validator that
// collects every rule violation in one pass, and the manufacturing-grid
// snapping shared by the whole pipeline.
package geom

import (
	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech"
)

// Terminal identifies which net a feature belongs to.
type Terminal int

const (
	// TerminalPlus is the positive capacitor terminal.
	TerminalPlus Terminal = iota
	// TerminalMinus is the negative capacitor terminal.
	TerminalMinus
	// TerminalShield marks floating shield features tied to neither pin.
	TerminalShield
)

func (t Terminal) String() string {
	switch t {
	case TerminalPlus:
		return "PLUS"
	case TerminalMinus:
		return "MINUS"
	case TerminalShield:
		return "SHIELD"
	default:
		return "?"
	}
}

// AllLayers marks a feature replicated on every layer of the stack.
const AllLayers = -1

// HBar is a horizontal bar: a path of the given width whose centerline runs
// at Y from X0 to X1.
type HBar struct {
	Name   string
	Layer  int // index into Result.Layers, or AllLayers
	Y      float64
	Width  float64
	X0, X1 float64
	Shield bool
	Term   Terminal
}

// Length returns the bar's run along its axis.
func (b HBar) Length() float64 { return b.X1 - b.X0 }

// Area returns the drawn metal area of the bar.
func (b HBar) Area() float64 { return b.Length() * b.Width }

// VBar is a vertical bar: a path of the given width whose centerline runs
// at X from Y0 to Y1. Fingers and shield side bars are VBars.
type VBar struct {
	Name   string
	Layer  int // index into Result.Layers, or AllLayers
	X      float64
	Width  float64
	Y0, Y1 float64
	Shield bool
	Term   Terminal
}

// Length returns the bar's run along its axis.
func (b VBar) Length() float64 { return b.Y1 - b.Y0 }

// Area returns the drawn metal area of the bar.
func (b VBar) Area() float64 { return b.Length() * b.Width }

// Plate is a solid rectangle; only the sandwich variant produces plates.
type Plate struct {
	Name       string
	Layer      int
	MinX, MinY float64
	MaxX, MaxY float64
	Term       Terminal
}

// Area returns the plate area.
func (p Plate) Area() float64 { return (p.MaxX - p.MinX) * (p.MaxY - p.MinY) }

// ViaArray is a rows x cols grid of vias joining stack layer Lower to
// Lower+1, centered on (X, Y) and pitched at Result.ViaPitch.
type ViaArray struct {
	Name  string
	Lower int // index into Result.Layers
	X, Y  float64
	Rows  int
	Cols  int
}

// Pin is a labeled terminal position.
type Pin struct {
	Term  Terminal
	Layer int // index into Result.Layers
	X, Y  float64
	Text  string
}

// NamedSpacing is a spacing the shape guarantees by construction. Floor is
// a shape-declared minimum stricter than the technology rule; 0 defers to
// the technology minimum alone.
type NamedSpacing struct {
	Name  string
	Value float64
	Floor float64
}

// NamedWidth is a drawn width subject to the width and quantization rules.
type NamedWidth struct {
	Name      string
	Value     float64
	Quantized bool
}

// Result is the derived geometry for one capacitor. It is produced by
// Compute, consumed by the validator and renderer, and never mutated after
// creation. Every numeric field is snapped to the manufacturing grid.
type Result struct {
	Kind   Kind
	Layers []string // bottom -> top

	HalfWidth    float64
	HalfHeight   float64
	TotalWidth   float64
	TotalHeight  float64
	ActiveHeight float64
	Spacing      float64

	FingerWidth float64 // quantized
	FrameWidth  float64 // quantized
	BarWidth    float64 // quantized; 0 when the variant has no middle bar
	FingerCount int
	FingerX     []float64

	ViaPitch float64

	HBars  []HBar
	VBars  []VBar
	Plates []Plate
	Vias   []ViaArray
	Pins   [2]Pin // PLUS, then MINUS

	Spacings []NamedSpacing
	Widths   []NamedWidth
}

// ViaPair returns the stable layer-pair identifier for a via array.
func (r *Result) ViaPair(v ViaArray) string {
	return tech.ViaPairID(r.Layers[v.Lower], r.Layers[v.Lower+1])
}

// TopLayer returns the index of the highest stack layer.
func (r *Result) TopLayer() int { return len(r.Layers) - 1 }
