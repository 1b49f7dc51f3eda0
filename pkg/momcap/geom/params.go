package geom

import "fmt"

// Kind discriminates the closed set of capacitor shape variants.
type Kind int

const (
	// Interdigit is the frame + fingers + middle-bar shape; odd finger count.
	Interdigit Kind = iota
	// Alternating is the alternating-height-finger shape; even count, no bar.
	Alternating
	// Sandwich is the tri-layer shape: solid outer plates, notched core.
	Sandwich
)

func (k Kind) String() string {
	switch k {
	case Interdigit:
		return "interdigit"
	case Alternating:
		return "alternating"
	case Sandwich:
		return "sandwich"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps the job-file shape names onto the variant set.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "interdigit":
		return Interdigit, nil
	case "alternating":
		return Alternating, nil
	case "sandwich":
		return Sandwich, nil
	default:
		return 0, fmt.Errorf("unknown shape %q (want interdigit, alternating or sandwich)", s)
	}
}

// Params are the caller-owned primary dimensions for one capacitor, passed
// by value into Compute. Distances are micrometers.
type Params struct {
	Kind    Kind
	Fingers int
	// Height is the active-region height (finger overlap zone).
	Height float64
	// FingerWidth and FrameWidth are requests; the builder rounds them up
	// to the technology's quantized width sequence.
	FingerWidth float64
	FrameWidth  float64
	Spacing     float64
	// Layers is the stack top to bottom, the way designers write it.
	Layers []string
	// MaxHeight caps the total occupied height; 0 means no ceiling.
	MaxHeight float64
	// LowParasitic requests keeping plates off the substrate-facing layers.
	LowParasitic bool
}

// GeometryError reports a structurally impossible parameter set: the shape
// cannot be built and the offending field is named. Builders never guess a
// corrected value.
type GeometryError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s geometry: %s: %s", e.Kind, e.Field, e.Reason)
}
