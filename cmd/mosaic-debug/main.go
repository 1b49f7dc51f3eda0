// mosaic-debug reads an ASCII occupancy pattern ('#' occupied, '.' empty,
// one row per line) and prints the merged instancing regions, for checking
// how a given hole pattern decomposes.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/mosaic"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: mosaic-debug <pattern_file>")
		os.Exit(1)
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	grid, err := mosaic.FromPattern(lines, mosaic.Pitch{X: 1, Y: 1})
	if err != nil {
		fmt.Printf("Error building grid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Grid: %dx%d, %d occupied cells\n\n", grid.Rows(), grid.Cols(), grid.OccupiedCount())
	fmt.Println(grid)

	regions := mosaic.Merge(grid)
	fmt.Printf("\nMerged into %d region(s):\n", len(regions))
	covered := 0
	for i, r := range regions {
		fmt.Printf("  %2d: rows %d-%d, cols %d-%d (%dx%d = %d cells)\n",
			i+1, r.RowStart, r.RowEnd, r.ColStart, r.ColEnd, r.Rows(), r.Cols(), r.Cells())
		covered += r.Cells()
	}
	fmt.Printf("\n%d cells covered by %d placements instead of %d\n",
		covered, len(regions), grid.OccupiedCount())
}
