// Package mosaic compresses a grid of repeated unit-cell placements into a
// small set of rectangular instancing regions. A full array becomes one
// region; holes cost a handful of extra regions instead of one placement
// per cell.
package mosaic

import (
	"fmt"
	"strings"
)

// Pitch is the center-to-center step between adjacent cells, micrometers.
type Pitch struct {
	X float64
	Y float64
}

// Grid is a read-only occupancy matrix over (row, column) with a per-cell
// placement pitch. Input slices are deep-copied at construction and the
// grid is never mutated afterwards.
type Grid struct {
	rows, cols int
	occupied   [][]bool
	pitch      [][]Pitch
}

// New builds a grid with uniform pitch from an occupancy matrix. The matrix
// must be non-empty and rectangular.
func New(occupied [][]bool, pitch Pitch) (*Grid, error) {
	perCell := make([][]Pitch, len(occupied))
	for i, row := range occupied {
		perCell[i] = make([]Pitch, len(row))
		for j := range row {
			perCell[i][j] = pitch
		}
	}
	return NewWithPitch(occupied, perCell)
}

// NewWithPitch builds a grid with an explicit per-cell pitch matrix, for
// arrays mixing cell variants of different sizes.
func NewWithPitch(occupied [][]bool, pitch [][]Pitch) (*Grid, error) {
	if len(occupied) == 0 || len(occupied[0]) == 0 {
		return nil, fmt.Errorf("mosaic: grid must have at least one row and one column")
	}
	cols := len(occupied[0])
	if len(pitch) != len(occupied) {
		return nil, fmt.Errorf("mosaic: pitch matrix has %d rows, occupancy has %d", len(pitch), len(occupied))
	}
	g := &Grid{rows: len(occupied), cols: cols}
	g.occupied = make([][]bool, g.rows)
	g.pitch = make([][]Pitch, g.rows)
	for i, row := range occupied {
		if len(row) != cols {
			return nil, fmt.Errorf("mosaic: row %d has %d columns, expected %d", i, len(row), cols)
		}
		if len(pitch[i]) != cols {
			return nil, fmt.Errorf("mosaic: pitch row %d has %d columns, expected %d", i, len(pitch[i]), cols)
		}
		g.occupied[i] = append([]bool(nil), row...)
		g.pitch[i] = append([]Pitch(nil), pitch[i]...)
	}
	return g, nil
}

// FromPattern builds a uniform-pitch grid from ASCII art: one string per
// row, '#' for occupied, '.' for empty.
func FromPattern(lines []string, pitch Pitch) (*Grid, error) {
	occupied := make([][]bool, len(lines))
	for i, line := range lines {
		row := make([]bool, len(line))
		for j, c := range line {
			switch c {
			case '#':
				row[j] = true
			case '.':
			default:
				return nil, fmt.Errorf("mosaic: row %d: unexpected character %q (want '#' or '.')", i, c)
			}
		}
		occupied[i] = row
	}
	return New(occupied, pitch)
}

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid) Cols() int { return g.cols }

// Occupied reports whether the cell at (row, col) holds a placement.
func (g *Grid) Occupied(row, col int) bool { return g.occupied[row][col] }

// CellPitch returns the pitch of the cell at (row, col).
func (g *Grid) CellPitch(row, col int) Pitch { return g.pitch[row][col] }

// OccupiedCount returns the number of placements in the grid.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, row := range g.occupied {
		for _, occ := range row {
			if occ {
				n++
			}
		}
	}
	return n
}

// String renders the occupancy as the same ASCII art FromPattern reads.
func (g *Grid) String() string {
	var b strings.Builder
	for i, row := range g.occupied {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, occ := range row {
			if occ {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
