package tech

import (
	"fmt"
	"sort"
	"strings"
)

// builtins is the in-memory table of reference nodes shipped with the tool.
var builtins = make(map[string]*Profile)

func register(p *Profile) {
	builtins[p.Name] = p
}

func init() {
	// Generic 130nm-class stack, spelled-out layer names. The quantization
	// pair (0.38/0.52) with via pitch 0.52 steps the via row count by one
	// per width step.
	register(&Profile{
		Name:                 "ot130",
		MinSpacing:           0.21,
		MinWidth:             0.21,
		MinArea:              0.10,
		ViaPitch:             0.52,
		ViaMargin:            0.14,
		WidthQuantBase:       0.38,
		WidthQuantStep:       0.52,
		AllowedLayers:        []string{"Metal1", "Metal2", "Metal3", "Metal4", "Metal5"},
		NamingStyle:          NamingWord,
		LowParasiticExcluded: []string{"Metal1"},
	})

	// Generic 65nm-class stack, compact layer names, tighter rules.
	register(&Profile{
		Name:                 "ot65",
		MinSpacing:           0.10,
		MinWidth:             0.10,
		MinArea:              0.04,
		ViaPitch:             0.26,
		ViaMargin:            0.07,
		WidthQuantBase:       0.19,
		WidthQuantStep:       0.26,
		AllowedLayers:        []string{"M1", "M2", "M3", "M4", "M5", "M6", "M7", "M8"},
		NamingStyle:          NamingLetter,
		LowParasiticExcluded: []string{"M1", "M2"},
	})
}

// Builtin returns a copy of the named built-in profile.
func Builtin(name string) (*Profile, error) {
	if p, ok := builtins[name]; ok {
		return p.Clone(), nil
	}
	return nil, fmt.Errorf("tech: no built-in profile %q (have %s)", name, strings.Join(BuiltinNames(), ", "))
}

// BuiltinNames lists the built-in profile names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
