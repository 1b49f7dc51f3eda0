// Package job loads YAML compilation requests: which technology, which
// shape, which dimensions, and optionally which array to assemble. Unknown
// keys are rejected so a typo never silently drops a constraint.
package job

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/geom"
	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/mosaic"
)

// Array describes an optional array-assembly request.
type Array struct {
	Rows   int      `yaml:"rows"`
	Cols   int      `yaml:"cols"`
	PitchX float64  `yaml:"pitch_x"`
	PitchY float64  `yaml:"pitch_y"`
	Skip   [][2]int `yaml:"skip"`
}

// Spec is one compilation request as written in a job file.
type Spec struct {
	Technology   string   `yaml:"technology"`
	Cell         string   `yaml:"cell"`
	Shape        string   `yaml:"shape"`
	Fingers      int      `yaml:"fingers"`
	Height       float64  `yaml:"height"`
	FingerWidth  float64  `yaml:"finger_width"`
	FrameWidth   float64  `yaml:"frame_width"`
	Spacing      float64  `yaml:"spacing"`
	Layers       []string `yaml:"layers"`
	MaxHeight    float64  `yaml:"max_height"`
	LowParasitic bool     `yaml:"low_parasitic"`
	Shield       *bool    `yaml:"shield"`
	Array        *Array   `yaml:"array"`
}

// Load reads and decodes a job file. Decoding is strict: unknown keys are
// errors. Defaults are applied after decode, then the spec is validated.
func Load(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job file: %w", err)
	}
	defer f.Close()

	var spec Spec
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%s: parsing job YAML: %w", path, err)
	}
	spec.applyDefaults()
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &spec, nil
}

func (s *Spec) applyDefaults() {
	if s.Cell == "" {
		s.Cell = "momcap"
	}
	if s.Shield == nil {
		on := true
		s.Shield = &on
	}
}

func (s *Spec) validate() error {
	if s.Technology == "" {
		return fmt.Errorf("technology is required")
	}
	if s.Shape == "" {
		return fmt.Errorf("shape is required")
	}
	if _, err := geom.ParseKind(s.Shape); err != nil {
		return err
	}
	if len(s.Layers) == 0 {
		return fmt.Errorf("layers is required")
	}
	if a := s.Array; a != nil {
		if a.Rows <= 0 || a.Cols <= 0 {
			return fmt.Errorf("array: rows and cols must be > 0, got %dx%d", a.Rows, a.Cols)
		}
		if a.PitchX <= 0 || a.PitchY <= 0 {
			return fmt.Errorf("array: pitch_x and pitch_y must be > 0, got %g/%g", a.PitchX, a.PitchY)
		}
		for _, sk := range a.Skip {
			if sk[0] < 0 || sk[0] >= a.Rows || sk[1] < 0 || sk[1] >= a.Cols {
				return fmt.Errorf("array: skip cell [%d, %d] is outside the %dx%d grid", sk[0], sk[1], a.Rows, a.Cols)
			}
		}
	}
	return nil
}

// IncludeShield reports whether the shield should be emitted.
func (s *Spec) IncludeShield() bool { return s.Shield == nil || *s.Shield }

// Params converts the request into builder parameters. The shape name is
// already validated, so the conversion cannot fail here.
func (s *Spec) Params() geom.Params {
	kind, _ := geom.ParseKind(s.Shape)
	return geom.Params{
		Kind:         kind,
		Fingers:      s.Fingers,
		Height:       s.Height,
		FingerWidth:  s.FingerWidth,
		FrameWidth:   s.FrameWidth,
		Spacing:      s.Spacing,
		Layers:       append([]string(nil), s.Layers...),
		MaxHeight:    s.MaxHeight,
		LowParasitic: s.LowParasitic,
	}
}

// Grid expands the array block into an occupancy grid: every cell occupied
// except the skip list. Returns nil when the job has no array.
func (s *Spec) Grid() (*mosaic.Grid, error) {
	a := s.Array
	if a == nil {
		return nil, nil
	}
	occupied := make([][]bool, a.Rows)
	for i := range occupied {
		occupied[i] = make([]bool, a.Cols)
		for j := range occupied[i] {
			occupied[i][j] = true
		}
	}
	for _, sk := range a.Skip {
		occupied[sk[0]][sk[1]] = false
	}
	return mosaic.New(occupied, mosaic.Pitch{X: a.PitchX, Y: a.PitchY})
}
