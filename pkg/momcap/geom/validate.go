package geom

import (
	"fmt"
	"math"
	"strings"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech"
)

// Tag classifies a validation violation.
type Tag string

const (
	SpacingTooSmall      Tag = "spacing-too-small"
	WidthTooSmall        Tag = "width-too-small"
	QuantizationMismatch Tag = "quantization-mismatch"
	LayerNotAllowed      Tag = "layer-not-allowed"
	LayersNotAdjacent    Tag = "layers-not-adjacent"
	ParityViolation      Tag = "parity-violation"
	HeightExceedsCeiling Tag = "height-exceeds-ceiling"
	AreaTooSmall         Tag = "area-too-small"
)

// Violation is one broken rule. Violations are recoverable: the caller may
// adjust parameters and resubmit.
type Violation struct {
	Tag    Tag
	Field  string
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Tag, v.Field, v.Detail)
}

// Outcome is the verdict on one geometry: accepted, or the ordered list of
// everything wrong with it.
type Outcome struct {
	Violations []Violation
}

// Accepted reports whether the geometry passed every check.
func (o Outcome) Accepted() bool { return len(o.Violations) == 0 }

// Summary formats the outcome, one violation per line.
func (o Outcome) Summary() string {
	if o.Accepted() {
		return "accepted"
	}
	lines := make([]string, len(o.Violations))
	for i, v := range o.Violations {
		lines[i] = v.String()
	}
	return strings.Join(lines, "\n")
}

// Validate runs every rule against a computed geometry and collects all
// violations in one pass. No check short-circuits another, so the caller
// sees every problem at once.
func Validate(r *Result, p Params, t *tech.Profile) Outcome {
	var out Outcome
	add := func(tag Tag, field, detail string) {
		out.Violations = append(out.Violations, Violation{tag, field, detail})
	}

	// 1. spacings, honoring shape-declared floors
	for _, sp := range r.Spacings {
		min := t.MinSpacing
		if sp.Floor > min {
			min = sp.Floor
		}
		if sp.Value < min-snapEps {
			add(SpacingTooSmall, sp.Name, fmt.Sprintf("%g is below the minimum %g", sp.Value, min))
		}
	}

	// 2. widths
	for _, w := range r.Widths {
		if w.Value < t.MinWidth-snapEps {
			add(WidthTooSmall, w.Name, fmt.Sprintf("%g is below the minimum %g", w.Value, t.MinWidth))
		}
	}

	// 3. quantization, grid-exact
	for _, w := range r.Widths {
		if w.Quantized && !t.IsQuantized(w.Value) {
			add(QuantizationMismatch, w.Name,
				fmt.Sprintf("%g is not %g + n*%g", w.Value, t.WidthQuantBase, t.WidthQuantStep))
		}
	}

	// 4. layer legality and low-parasitic exclusions
	for _, layer := range r.Layers {
		if t.LayerIndex(layer) < 0 {
			add(LayerNotAllowed, "layers", fmt.Sprintf("%q is not an allowed layer", layer))
			continue
		}
		if p.LowParasitic && t.Excluded(layer) {
			add(LayerNotAllowed, "layers", fmt.Sprintf("%q is excluded in low-parasitic mode", layer))
		}
	}

	// 5. via layer adjacency
	checked := make(map[int]bool)
	for _, v := range r.Vias {
		if checked[v.Lower] {
			continue
		}
		checked[v.Lower] = true
		lower, upper := r.Layers[v.Lower], r.Layers[v.Lower+1]
		il, iu := t.LayerIndex(lower), t.LayerIndex(upper)
		if il < 0 || iu < 0 {
			continue // already reported by check 4
		}
		if !t.AdjacentLayers(lower, upper) {
			d := il - iu
			if d < 0 {
				d = -d
			}
			add(LayersNotAdjacent, "layers",
				fmt.Sprintf("%s and %s are %d positions apart", lower, upper, d))
		}
	}

	// 6. finger parity and minimum per variant
	switch r.Kind {
	case Interdigit, Sandwich:
		if r.FingerCount < 3 || r.FingerCount%2 == 0 {
			add(ParityViolation, "fingers",
				fmt.Sprintf("%s needs an odd count >= 3, got %d", r.Kind, r.FingerCount))
		}
	case Alternating:
		if r.FingerCount < 2 || r.FingerCount%2 != 0 {
			add(ParityViolation, "fingers",
				fmt.Sprintf("%s needs an even count >= 2, got %d", r.Kind, r.FingerCount))
		}
	}

	// 7. height ceiling
	if p.MaxHeight > 0 && r.TotalHeight > p.MaxHeight+snapEps {
		add(HeightExceedsCeiling, "max_height",
			fmt.Sprintf("total height %g exceeds the ceiling %g", r.TotalHeight, p.MaxHeight))
	}

	// 8. minimum polygon area
	if t.MinArea > 0 {
		name, area := r.smallestFeature()
		if area < t.MinArea-snapEps {
			add(AreaTooSmall, name, fmt.Sprintf("area %g is below the minimum %g", area, t.MinArea))
		}
	}

	return out
}

// smallestFeature returns the smallest drawn feature and its area - for the
// interdigit comb that is usually a frame finger segment.
func (r *Result) smallestFeature() (string, float64) {
	name, area := "", math.MaxFloat64
	for _, b := range r.HBars {
		if a := b.Area(); a < area {
			name, area = b.Name, a
		}
	}
	for _, b := range r.VBars {
		if a := b.Area(); a < area {
			name, area = b.Name, a
		}
	}
	for _, pl := range r.Plates {
		if a := pl.Area(); a < area {
			name, area = pl.Name, a
		}
	}
	if name == "" {
		return "none", 0
	}
	return name, area
}
