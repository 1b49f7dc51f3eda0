// script-debug re-parses an emitted layout script and prints its command
// statistics. Useful when the host bridge rejects a script: every command
// must come from the closed operation set, so anything unexpected here is
// an emitter bug.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/chewxy/sexp"
)

// closedOps is the full command vocabulary the emitter may produce.
var closedOps = map[string]bool{
	"cell":        true,
	"path":        true,
	"rect":        true,
	"via":         true,
	"label":       true,
	"place-array": true,
	"save":        true,
	"close":       true,
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: script-debug <script_file>")
		os.Exit(1)
	}

	filename := os.Args[1]
	file, err := os.Open(filename)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	sexps, err := sexp.Parse(file)
	if err != nil {
		fmt.Printf("Error parsing script: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Parsed %d commands from %s\n\n", len(sexps), filename)

	opCounts := make(map[string]int)
	layerCounts := make(map[string]int)
	unknown := 0
	for _, s := range sexps {
		op, layer := commandParts(fmt.Sprintf("%v", s))
		opCounts[op]++
		if !closedOps[op] {
			unknown++
			fmt.Printf("! command %d uses %q, outside the closed op set\n", opCounts[op], op)
		}
		if layer != "" {
			layerCounts[layer]++
		}
	}

	fmt.Printf("%-14s %s\n", "Command", "Count")
	fmt.Println("─────────────────────")
	for _, op := range sortedKeys(opCounts) {
		fmt.Printf("%-14s %5d\n", op, opCounts[op])
	}

	if len(layerCounts) > 0 {
		fmt.Printf("\n%-14s %s\n", "Layer/Pair", "Count")
		fmt.Println("─────────────────────")
		for _, layer := range sortedKeys(layerCounts) {
			fmt.Printf("%-14s %5d\n", layer, layerCounts[layer])
		}
	}

	if unknown > 0 {
		fmt.Printf("\n%d command(s) outside the closed op set\n", unknown)
		os.Exit(1)
	}
	fmt.Println("\n✓ Script uses only the closed op set")
}

// commandParts extracts the operation name and, when present, the quoted
// layer (or via pair) argument from a command's printed form.
func commandParts(printed string) (op, layer string) {
	trimmed := strings.TrimSpace(printed)
	trimmed = strings.TrimPrefix(trimmed, "(")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return "", ""
	}
	op = strings.TrimSuffix(fields[0], ")")
	if len(fields) > 1 && strings.HasPrefix(fields[1], `"`) {
		layer = strings.Trim(fields[1], `")`)
	}
	return op, layer
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
