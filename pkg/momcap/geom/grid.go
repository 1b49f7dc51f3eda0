package geom

import (
	"math"
	"strconv"
)

// GridUnit is the manufacturing grid every emitted coordinate snaps to,
// in micrometers.
const GridUnit = 0.005

// CoordDecimals is the fixed number of decimal places used whenever a
// numeric is serialized for the host tool.
const CoordDecimals = 3

// snapEps tolerates float noise when testing grid membership.
const snapEps = 1e-6

// Snap rounds a value to the manufacturing grid: round(v/GridUnit)*GridUnit.
// Snapping and formatting live here and nowhere else; builders, renderer,
// emitter and viewer all share these definitions.
func Snap(v float64) float64 {
	r := math.Round(v/GridUnit) * GridUnit
	if r == 0 {
		return 0
	}
	return r
}

// IsSnapped reports whether v already sits on the manufacturing grid.
func IsSnapped(v float64) bool {
	return math.Abs(v-Snap(v)) <= snapEps
}

// FormatCoord serializes a grid value with the fixed decimal precision the
// downstream script executor requires.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(Snap(v), 'f', CoordDecimals, 64)
}
