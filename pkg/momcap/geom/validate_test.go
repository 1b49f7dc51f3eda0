package geom

import (
	"testing"
)

func hasTag(o Outcome, tag Tag) bool {
	for _, v := range o.Violations {
		if v.Tag == tag {
			return true
		}
	}
	return false
}

func TestValidateAcceptsGoodGeometry(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	o := Validate(r, p, profile)
	if !o.Accepted() {
		t.Fatalf("Expected acceptance, got:\n%s", o.Summary())
	}
}

func TestValidateSpacingTooSmall(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	p.Spacing = 0.15 // below ot130's 0.21 minimum
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	o := Validate(r, p, profile)
	if !hasTag(o, SpacingTooSmall) {
		t.Errorf("Expected spacing-too-small, got:\n%s", o.Summary())
	}
}

func TestValidateShapeFloorStricterThanTech(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	p.Kind = Sandwich
	p.Spacing = 0.30 // above min_spacing 0.21, below the 0.42 notch floor
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	o := Validate(r, p, profile)
	if !hasTag(o, SpacingTooSmall) {
		t.Errorf("Expected the notch-clearance floor to reject 0.30, got:\n%s", o.Summary())
	}
}

func TestValidateQuantizationMismatch(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	// simulate a builder defect: a width off the quantized sequence
	r.Widths[0].Value = 0.50
	o := Validate(r, p, profile)
	if !hasTag(o, QuantizationMismatch) {
		t.Errorf("Expected quantization-mismatch, got:\n%s", o.Summary())
	}
}

func TestValidateLayerNotAllowed(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	p.Layers = []string{"Metal5", "Metal4", "Metal9"}
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	o := Validate(r, p, profile)
	if !hasTag(o, LayerNotAllowed) {
		t.Errorf("Expected layer-not-allowed, got:\n%s", o.Summary())
	}
}

func TestValidateLowParasiticExclusion(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	p.Layers = []string{"Metal3", "Metal2", "Metal1"}
	p.LowParasitic = true
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	o := Validate(r, p, profile)
	if !hasTag(o, LayerNotAllowed) {
		t.Errorf("Expected Metal1 to be rejected in low-parasitic mode, got:\n%s", o.Summary())
	}
	// without the flag the same stack is fine
	p.LowParasitic = false
	o = Validate(r, p, profile)
	if !o.Accepted() {
		t.Errorf("Expected acceptance without low-parasitic mode, got:\n%s", o.Summary())
	}
}

func TestValidateLayersNotAdjacent(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	p.Layers = []string{"Metal5", "Metal3", "Metal1"} // gaps of 2
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	o := Validate(r, p, profile)
	if !hasTag(o, LayersNotAdjacent) {
		t.Errorf("Expected layers-not-adjacent, got:\n%s", o.Summary())
	}
	if hasTag(o, LayerNotAllowed) {
		t.Errorf("All layers are allowed; got:\n%s", o.Summary())
	}
}

func TestValidateParityOnTamperedResult(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	r.FingerCount = 4
	o := Validate(r, p, profile)
	if !hasTag(o, ParityViolation) {
		t.Errorf("Expected parity-violation, got:\n%s", o.Summary())
	}
}

func TestValidateHeightCeiling(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	p.MaxHeight = 5.0 // total is 8.64
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	o := Validate(r, p, profile)
	if !hasTag(o, HeightExceedsCeiling) {
		t.Errorf("Expected height-exceeds-ceiling, got:\n%s", o.Summary())
	}
	p.MaxHeight = 10.0
	o = Validate(r, p, profile)
	if hasTag(o, HeightExceedsCeiling) {
		t.Errorf("Ceiling 10.0 should admit total height %g", r.TotalHeight)
	}
}

func TestValidateAreaTooSmall(t *testing.T) {
	profile := testProfile(t)
	strict := profile.Clone()
	strict.MinArea = 5.0
	p := interdigitParams()
	r, err := Compute(p, strict)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	o := Validate(r, p, strict)
	if !hasTag(o, AreaTooSmall) {
		t.Errorf("Expected area-too-small under a 5.0 um2 rule, got:\n%s", o.Summary())
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	profile := testProfile(t)
	p := interdigitParams()
	p.Spacing = 0.15
	p.Layers = []string{"Metal5", "Metal3", "Metal9"}
	p.MaxHeight = 3.0
	r, err := Compute(p, profile)
	if err != nil {
		t.Fatalf("Failed to compute: %v", err)
	}
	o := Validate(r, p, profile)
	for _, tag := range []Tag{SpacingTooSmall, LayerNotAllowed, HeightExceedsCeiling} {
		if !hasTag(o, tag) {
			t.Errorf("Expected %s in the collected violations, got:\n%s", tag, o.Summary())
		}
	}
	if len(o.Violations) < 3 {
		t.Errorf("Expected at least 3 violations collected in one pass, got %d", len(o.Violations))
	}
}
