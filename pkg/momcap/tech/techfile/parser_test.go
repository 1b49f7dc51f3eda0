package techfile

import (
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech"
)

const demoProfile = `
-- demo technology profile
technology "demo130" {
  min_spacing       0.21
  min_width         0.21
  min_area          0.10
  via_pitch         0.52
  via_margin        0.14
  width_quant_base  0.38
  width_quant_step  0.52
  naming_style      word
  layers            Metal1, Metal2, Metal3, Metal4, Metal5
  low_parasitic_excluded  Metal1
}
`

func TestParseBasicProfile(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString(demoProfile)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if len(file.Technologies) != 1 {
		t.Fatalf("Expected 1 technology block, got %d", len(file.Technologies))
	}

	block := file.Technologies[0]
	if block.GetName() != "demo130" {
		t.Errorf("Expected technology name 'demo130', got '%s'", block.GetName())
	}
	if len(block.Settings) != 11 {
		t.Errorf("Expected 11 settings, got %d", len(block.Settings))
	}

	spacing := block.GetSetting("min_spacing")
	if spacing == nil {
		t.Fatal("Expected min_spacing setting")
	}
	if n, ok := spacing.Values[0].Number(); !ok || n != 0.21 {
		t.Errorf("Expected min_spacing 0.21, got %v", n)
	}

	layers := block.GetSetting("layers")
	if layers == nil {
		t.Fatal("Expected layers setting")
	}
	if len(layers.Values) != 5 {
		t.Fatalf("Expected 5 layer values, got %d", len(layers.Values))
	}
	if name, ok := layers.Values[2].Text(); !ok || name != "Metal3" {
		t.Errorf("Expected third layer 'Metal3', got '%s'", name)
	}
}

func TestParseMultipleTechnologies(t *testing.T) {
	input := `
technology "a90" {
  min_spacing 0.14
}
technology "a130" {
  min_spacing 0.21
}
`
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(file.Technologies) != 2 {
		t.Fatalf("Expected 2 technology blocks, got %d", len(file.Technologies))
	}
	if file.Technologies[1].GetName() != "a130" {
		t.Errorf("Expected second block 'a130', got '%s'", file.Technologies[1].GetName())
	}
}

func TestParseErrors(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	cases := []struct {
		name  string
		input string
	}{
		{"missing name", `technology { min_spacing 0.21 }`},
		{"missing close brace", `technology "x" { min_spacing 0.21`},
		{"value without key", `technology "x" { 0.21 }`},
	}
	for _, tc := range cases {
		if _, err := parser.ParseString(tc.input); err == nil {
			t.Errorf("%s: expected parse error, got nil", tc.name)
		}
	}
}

func TestParseFileTestdata(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	file, err := parser.ParseFile("testdata/demo130.tech")
	if err != nil {
		t.Fatalf("Failed to parse testdata file: %v", err)
	}
	profiles, err := Bind(file)
	if err != nil {
		t.Fatalf("Failed to bind testdata file: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "demo130" {
		t.Fatalf("Expected single profile 'demo130', got %+v", profiles)
	}
}

func TestBindProfile(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	file, err := parser.ParseString(demoProfile)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	profiles, err := Bind(file)
	if err != nil {
		t.Fatalf("Failed to bind: %v", err)
	}
	p := profiles[0]

	if p.Name != "demo130" {
		t.Errorf("Expected name 'demo130', got '%s'", p.Name)
	}
	if p.MinSpacing != 0.21 || p.MinWidth != 0.21 || p.MinArea != 0.10 {
		t.Errorf("Unexpected minima: spacing=%g width=%g area=%g", p.MinSpacing, p.MinWidth, p.MinArea)
	}
	if p.ViaPitch != 0.52 || p.ViaMargin != 0.14 {
		t.Errorf("Unexpected via rules: pitch=%g margin=%g", p.ViaPitch, p.ViaMargin)
	}
	if p.WidthQuantBase != 0.38 || p.WidthQuantStep != 0.52 {
		t.Errorf("Unexpected quantization: base=%g step=%g", p.WidthQuantBase, p.WidthQuantStep)
	}
	if p.NamingStyle != tech.NamingWord {
		t.Errorf("Expected word naming style, got '%s'", p.NamingStyle)
	}
	if len(p.AllowedLayers) != 5 || p.AllowedLayers[4] != "Metal5" {
		t.Errorf("Unexpected layers: %v", p.AllowedLayers)
	}
	if len(p.LowParasiticExcluded) != 1 || p.LowParasiticExcluded[0] != "Metal1" {
		t.Errorf("Unexpected exclusions: %v", p.LowParasiticExcluded)
	}
}

func TestBindRejections(t *testing.T) {
	cases := []struct {
		name  string
		input string
		field string
	}{
		{
			"unknown setting",
			`technology "x" { grid_unit 0.005 }`,
			"grid_unit",
		},
		{
			"duplicate setting",
			`technology "x" { min_spacing 0.21  min_spacing 0.22 }`,
			"min_spacing",
		},
		{
			"too many values",
			`technology "x" { min_spacing 0.21, 0.22 }`,
			"min_spacing",
		},
		{
			"name where number expected",
			`technology "x" { via_pitch tight }`,
			"via_pitch",
		},
		{
			"number where name expected",
			`technology "x" { layers 5 }`,
			"layers",
		},
	}
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	for _, tc := range cases {
		file, err := parser.ParseString(tc.input)
		if err != nil {
			t.Errorf("%s: unexpected parse error: %v", tc.name, err)
			continue
		}
		_, err = Bind(file)
		if err == nil {
			t.Errorf("%s: expected bind error, got nil", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.field) {
			t.Errorf("%s: error %q does not name field %q", tc.name, err, tc.field)
		}
	}
}

func TestBindChecksWellFormedness(t *testing.T) {
	input := `
technology "broken" {
  min_spacing       0.21
  min_width         0.21
  via_pitch         0.52
  width_quant_base  0.38
  width_quant_step  0.52
  naming_style      word
  layers            Metal1, M2
}
`
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if _, err := Bind(file); err == nil {
		t.Fatal("Expected well-formedness error for mixed layer naming")
	}
}
