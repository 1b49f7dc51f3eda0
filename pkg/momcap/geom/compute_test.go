package geom

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech"
)

func testProfile(t *testing.T) *tech.Profile {
	t.Helper()
	p, err := tech.Builtin("ot130")
	if err != nil {
		t.Fatalf("Failed to load built-in profile: %v", err)
	}
	return p
}

func interdigitParams() Params {
	return Params{
		Kind:        Interdigit,
		Fingers:     5,
		Height:      6.0,
		FingerWidth: 0.38,
		FrameWidth:  0.9,
		Spacing:     0.42,
		Layers:      []string{"Metal5", "Metal4", "Metal3"},
	}
}

func TestInterdigitFingerParity(t *testing.T) {
	profile := testProfile(t)
	for _, n := range []int{2, 4, 6} {
		p := interdigitParams()
		p.Fingers = n
		if _, err := Compute(p, profile); err == nil {
			t.Errorf("Expected %d fingers to be rejected for interdigit", n)
		}
	}
	for _, n := range []int{3, 5, 7} {
		p := interdigitParams()
		p.Fingers = n
		if _, err := Compute(p, profile); err != nil {
			t.Errorf("Expected %d fingers to be accepted for interdigit: %v", n, err)
		}
	}
}

func TestAlternatingFingerParity(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	p.Kind = Alternating
	for _, n := range []int{1, 3, 5} {
		p.Fingers = n
		if _, err := Compute(p, profile); err == nil {
			t.Errorf("Expected %d fingers to be rejected for alternating", n)
		}
	}
	for _, n := range []int{2, 4, 6} {
		p.Fingers = n
		if _, err := Compute(p, profile); err != nil {
			t.Errorf("Expected %d fingers to be accepted for alternating: %v", n, err)
		}
	}
}

func TestSandwichNeedsThreeLayers(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	p.Kind = Sandwich
	if _, err := Compute(p, profile); err != nil {
		t.Fatalf("Expected 3-layer sandwich to compute: %v", err)
	}
	p.Layers = []string{"Metal5", "Metal4"}
	_, err := Compute(p, profile)
	var ge *GeometryError
	if !errors.As(err, &ge) {
		t.Fatalf("Expected *GeometryError for a 2-layer sandwich, got %v", err)
	}
	if ge.Field != "layers" {
		t.Errorf("Expected offending field 'layers', got %q", ge.Field)
	}
}

func TestHeightInvariant(t *testing.T) {
	profile := testProfile(t)
	for _, kind := range []Kind{Interdigit, Alternating, Sandwich} {
		p := interdigitParams()
		p.Kind = kind
		if kind == Alternating {
			p.Fingers = 4
		}
		r, err := Compute(p, profile)
		if err != nil {
			t.Fatalf("%s: failed to compute: %v", kind, err)
		}
		want := r.ActiveHeight + 2*r.Spacing + 2*r.FrameWidth
		if math.Abs(r.TotalHeight-want) > 1e-9 {
			t.Errorf("%s: TotalHeight = %g, expected h + 2s + 2*frame = %g", kind, r.TotalHeight, want)
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	a, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	b, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Identical inputs produced different results")
	}
}

func TestComputeSnapsEverything(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	// deliberately off-grid requests
	p.Height = 6.0013
	p.Spacing = 0.4201
	p.FingerWidth = 0.377
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	check := func(name string, v float64) {
		if !IsSnapped(v) {
			t.Errorf("%s = %v is off the manufacturing grid", name, v)
		}
	}
	check("TotalWidth", r.TotalWidth)
	check("TotalHeight", r.TotalHeight)
	check("HalfWidth", r.HalfWidth)
	check("HalfHeight", r.HalfHeight)
	for i, x := range r.FingerX {
		if !IsSnapped(x) {
			t.Errorf("FingerX[%d] = %v is off the manufacturing grid", i, x)
		}
	}
	for _, b := range r.VBars {
		check(b.Name+".x", b.X)
		check(b.Name+".y0", b.Y0)
		check(b.Name+".y1", b.Y1)
	}
	for _, b := range r.HBars {
		check(b.Name+".y", b.Y)
		check(b.Name+".x0", b.X0)
		check(b.Name+".x1", b.X1)
	}
}

func TestFingerCentersAreSymmetric(t *testing.T) {
	profile := testProfile(t)
	r, err := Compute(interdigitParams(), profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	n := len(r.FingerX)
	if n != 5 {
		t.Fatalf("Expected 5 finger centers, got %d", n)
	}
	for i := 0; i < n/2; i++ {
		if math.Abs(r.FingerX[i]+r.FingerX[n-1-i]) > 1e-9 {
			t.Errorf("Fingers %d and %d are not mirrored: %g vs %g", i, n-1-i, r.FingerX[i], r.FingerX[n-1-i])
		}
	}
	if math.Abs(r.FingerX[n/2]) > 1e-9 {
		t.Errorf("Center finger sits at %g, expected 0", r.FingerX[n/2])
	}
}

func TestLayersNormalizedBottomUp(t *testing.T) {
	profile := testProfile(t)
	r, err := Compute(interdigitParams(), profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	want := []string{"Metal3", "Metal4", "Metal5"}
	if !reflect.DeepEqual(r.Layers, want) {
		t.Errorf("Expected bottom-up stack %v, got %v", want, r.Layers)
	}
}

func TestInterdigitViaRowsPerPair(t *testing.T) {
	profile := testProfile(t)
	r, err := Compute(interdigitParams(), profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	// 3 layers -> 2 adjacent pairs, 3 via arrays each
	if len(r.Vias) != 6 {
		t.Fatalf("Expected 6 via arrays (2 pairs x 3 rows), got %d", len(r.Vias))
	}
	// frame width 0.9 = base + step, so rail via arrays carry 2 rows
	for _, v := range r.Vias {
		if v.Name == "middle-bar" {
			if v.Rows != 1 {
				t.Errorf("middle-bar: expected 1 via row for width 0.38, got %d", v.Rows)
			}
		} else if v.Rows != 2 {
			t.Errorf("%s: expected 2 via rows for width 0.90, got %d", v.Name, v.Rows)
		}
	}
}

func TestGeometryErrorsNameTheField(t *testing.T) {
	profile := testProfile(t)
	cases := []struct {
		name   string
		mutate func(*Params)
		field  string
	}{
		{"zero height", func(p *Params) { p.Height = 0 }, "height"},
		{"negative spacing", func(p *Params) { p.Spacing = -1 }, "spacing"},
		{"zero finger width", func(p *Params) { p.FingerWidth = 0 }, "finger_width"},
		{"zero frame width", func(p *Params) { p.FrameWidth = 0 }, "frame_width"},
		{"empty stack", func(p *Params) { p.Layers = nil }, "layers"},
		{"bar swallows fingers", func(p *Params) { p.Height = 0.3 }, "height"},
	}
	for _, tc := range cases {
		p := interdigitParams()
		tc.mutate(&p)
		_, err := Compute(p, profile)
		var ge *GeometryError
		if !errors.As(err, &ge) {
			t.Errorf("%s: expected *GeometryError, got %v", tc.name, err)
			continue
		}
		if ge.Field != tc.field {
			t.Errorf("%s: expected field %q, got %q", tc.name, tc.field, ge.Field)
		}
	}
}

func TestSandwichPlatesAndVias(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	p.Kind = Sandwich
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	if len(r.Plates) != 2 {
		t.Fatalf("Expected 2 plates, got %d", len(r.Plates))
	}
	for _, pl := range r.Plates {
		if pl.MaxX-pl.MinX != r.TotalWidth || pl.MaxY-pl.MinY != r.TotalHeight {
			t.Errorf("%s does not span the full footprint", pl.Name)
		}
	}
	// vias only on the bottom-facing pair
	for _, v := range r.Vias {
		if v.Lower != 0 {
			t.Errorf("%s joins pair %d, expected vias only on the bottom pair", v.Name, v.Lower)
		}
	}
	// the notch clearance declares a stricter floor
	found := false
	for _, sp := range r.Spacings {
		if sp.Name == "notch-clearance" {
			found = true
			if sp.Floor != 2*profile.MinSpacing {
				t.Errorf("notch-clearance floor = %g, expected %g", sp.Floor, 2*profile.MinSpacing)
			}
		}
	}
	if !found {
		t.Error("Sandwich result is missing the notch-clearance spacing record")
	}
}
