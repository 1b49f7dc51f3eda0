// Package tech defines the technology profile consumed by the capacitor
// geometry compiler: process constants, layer naming rules, and the width
// quantization and via-fit helpers shared by every shape builder.
package tech

import (
	"fmt"
	"math"
	"regexp"
)

// NamingStyle selects the layer naming convention a profile uses.
type NamingStyle string

const (
	// NamingWord matches spelled-out layer names such as "Metal1" or "TopMetal2".
	NamingWord NamingStyle = "word"
	// NamingLetter matches compact layer names such as "M1" or "TM2".
	NamingLetter NamingStyle = "letter"
)

var (
	wordLayerPattern   = regexp.MustCompile(`^[A-Z][a-z][A-Za-z]*[0-9]+$`)
	letterLayerPattern = regexp.MustCompile(`^[A-Z]{1,3}[0-9]+$`)
)

// Matches reports whether a layer name follows the naming style.
func (s NamingStyle) Matches(name string) bool {
	switch s {
	case NamingWord:
		return wordLayerPattern.MatchString(name)
	case NamingLetter:
		return letterLayerPattern.MatchString(name)
	default:
		return false
	}
}

// ConfigError reports a malformed technology profile. It is fatal for the
// compilation run; profiles are never repaired or retried automatically.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("technology profile: %s: %s", e.Field, e.Reason)
}

// Profile is the immutable record of process constants for one technology
// node. All distances are micrometers. A Profile is created once per node
// (built-in table or .tech file) and must not be modified afterwards; use
// Clone when a caller needs a private copy.
type Profile struct {
	// Name identifies the node, e.g. "ot130".
	Name string
	// MinSpacing is the minimum metal-to-metal spacing.
	MinSpacing float64
	// MinWidth is the minimum drawn metal width.
	MinWidth float64
	// MinArea is the minimum polygon area; 0 means the node has no area rule.
	MinArea float64
	// ViaPitch is the center-to-center step between vias in an array.
	ViaPitch float64
	// ViaMargin is the slack added to a span before dividing by ViaPitch.
	ViaMargin float64
	// WidthQuantBase and WidthQuantStep define the legal finger and bar
	// widths: base + n*step for non-negative integer n.
	WidthQuantBase float64
	WidthQuantStep float64
	// AllowedLayers lists the routable metal layers, lowest first.
	AllowedLayers []string
	// NamingStyle is the convention every AllowedLayers entry must follow.
	NamingStyle NamingStyle
	// LowParasiticExcluded lists layers that must not carry capacitor plates
	// when low-parasitic mode is requested.
	LowParasiticExcluded []string
}

// quantEps absorbs float rounding when comparing micrometer values.
const quantEps = 1e-6

// IsWellFormed validates the profile once at load time. It returns a
// *ConfigError naming the offending field, or nil.
func (p *Profile) IsWellFormed() error {
	positive := []struct {
		field string
		value float64
	}{
		{"min_spacing", p.MinSpacing},
		{"min_width", p.MinWidth},
		{"via_pitch", p.ViaPitch},
		{"width_quant_base", p.WidthQuantBase},
		{"width_quant_step", p.WidthQuantStep},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return &ConfigError{f.field, fmt.Sprintf("must be > 0, got %g", f.value)}
		}
	}
	if p.MinArea < 0 {
		return &ConfigError{"min_area", fmt.Sprintf("must be >= 0, got %g", p.MinArea)}
	}
	if p.ViaMargin < 0 {
		return &ConfigError{"via_margin", fmt.Sprintf("must be >= 0, got %g", p.ViaMargin)}
	}
	if p.NamingStyle != NamingWord && p.NamingStyle != NamingLetter {
		return &ConfigError{"naming_style", fmt.Sprintf("unknown style %q", string(p.NamingStyle))}
	}
	if len(p.AllowedLayers) == 0 {
		return &ConfigError{"layers", "at least one layer is required"}
	}
	seen := make(map[string]bool, len(p.AllowedLayers))
	for _, layer := range p.AllowedLayers {
		if !p.NamingStyle.Matches(layer) {
			return &ConfigError{"layers", fmt.Sprintf("%q does not follow %s naming", layer, string(p.NamingStyle))}
		}
		if seen[layer] {
			return &ConfigError{"layers", fmt.Sprintf("duplicate layer %q", layer)}
		}
		seen[layer] = true
	}
	for _, layer := range p.LowParasiticExcluded {
		if p.LayerIndex(layer) < 0 {
			return &ConfigError{"low_parasitic_excluded", fmt.Sprintf("%q is not an allowed layer", layer)}
		}
	}
	return nil
}

// QuantizeWidth rounds a requested width up to the nearest legal value
// base + n*step. Requests at or below the base map to the base; quantizing
// an already-quantized width returns it unchanged.
func (p *Profile) QuantizeWidth(w float64) float64 {
	if w <= p.WidthQuantBase+quantEps {
		return p.WidthQuantBase
	}
	n := math.Ceil((w - p.WidthQuantBase)/p.WidthQuantStep - quantEps)
	return p.WidthQuantBase + n*p.WidthQuantStep
}

// IsQuantized reports whether w sits exactly on the quantized width sequence.
func (p *Profile) IsQuantized(w float64) bool {
	if w < p.WidthQuantBase-quantEps {
		return false
	}
	n := math.Round((w - p.WidthQuantBase) / p.WidthQuantStep)
	return math.Abs(p.WidthQuantBase+n*p.WidthQuantStep-w) <= quantEps
}

// ViaFit returns how many via rows or columns fit across a span:
// max(1, floor((span + margin) / pitch)).
func (p *Profile) ViaFit(span float64) int {
	n := int(math.Floor((span+p.ViaMargin)/p.ViaPitch + quantEps))
	if n < 1 {
		return 1
	}
	return n
}

// LayerIndex returns the position of a layer in AllowedLayers, or -1.
func (p *Profile) LayerIndex(name string) int {
	for i, layer := range p.AllowedLayers {
		if layer == name {
			return i
		}
	}
	return -1
}

// AdjacentLayers reports whether two layers can be joined by a via: both
// allowed and exactly one position apart in the stack.
func (p *Profile) AdjacentLayers(a, b string) bool {
	ia, ib := p.LayerIndex(a), p.LayerIndex(b)
	if ia < 0 || ib < 0 {
		return false
	}
	d := ia - ib
	if d < 0 {
		d = -d
	}
	return d == 1
}

// Excluded reports whether a layer is barred from carrying plates in
// low-parasitic mode.
func (p *Profile) Excluded(name string) bool {
	for _, layer := range p.LowParasiticExcluded {
		if layer == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hold a profile without sharing
// slices with the built-in table.
func (p *Profile) Clone() *Profile {
	c := *p
	c.AllowedLayers = append([]string(nil), p.AllowedLayers...)
	c.LowParasiticExcluded = append([]string(nil), p.LowParasiticExcluded...)
	return &c
}

// ViaPairID is the stable identifier for the via between two adjacent
// layers, lower layer first, e.g. "Metal1-Metal2".
func ViaPairID(lower, upper string) string {
	return lower + "-" + upper
}
