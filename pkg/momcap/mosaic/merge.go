package mosaic

// Region is a rectangular span of occupied cells instantiated as a single
// repeated placement. Row and column bounds are inclusive.
type Region struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
	Pitch            Pitch
}

// Rows returns the number of placement rows the region covers.
func (r Region) Rows() int { return r.RowEnd - r.RowStart + 1 }

// Cols returns the number of placement columns the region covers.
func (r Region) Cols() int { return r.ColEnd - r.ColStart + 1 }

// Cells returns the number of placements the region replaces.
func (r Region) Cells() int { return r.Rows() * r.Cols() }

// segment is one maximal horizontal run of occupied, identically-pitched
// cells inside a single row.
type segment struct {
	row      int
	c0, c1   int // inclusive column span
	pitch    Pitch
	consumed bool
}

// Merge computes a disjoint set of regions whose union is exactly the
// occupied cells. Two greedy passes: row-wise run detection, then vertical
// stacking of runs with identical column span and pitch. The result is
// deterministic and ordered row-major (RowStart, then ColStart).
func Merge(g *Grid) []Region {
	segs := rowSegments(g)

	var regions []Region
	for i := range segs {
		if segs[i].consumed {
			continue
		}
		s := &segs[i]
		s.consumed = true
		end := s.row
		// extend downward while the next row holds an identical segment
		for j := i + 1; j < len(segs); j++ {
			n := &segs[j]
			if n.row <= end {
				continue
			}
			if n.row > end+1 {
				break
			}
			if n.consumed || n.c0 != s.c0 || n.c1 != s.c1 || n.pitch != s.pitch {
				continue
			}
			n.consumed = true
			end = n.row
		}
		regions = append(regions, Region{
			RowStart: s.row, RowEnd: end,
			ColStart: s.c0, ColEnd: s.c1,
			Pitch: s.pitch,
		})
	}
	return regions
}

// rowSegments runs pass 1: scan each row left to right and cut it into
// maximal occupied runs, splitting whenever the pitch changes. Output is
// naturally row-major.
func rowSegments(g *Grid) []segment {
	var segs []segment
	for row := 0; row < g.Rows(); row++ {
		col := 0
		for col < g.Cols() {
			if !g.Occupied(row, col) {
				col++
				continue
			}
			start := col
			pitch := g.CellPitch(row, col)
			for col < g.Cols() && g.Occupied(row, col) && g.CellPitch(row, col) == pitch {
				col++
			}
			segs = append(segs, segment{row: row, c0: start, c1: col - 1, pitch: pitch})
		}
	}
	return segs
}
