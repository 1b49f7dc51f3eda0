package techfile

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech"
)

// Bind converts a parsed file into technology profiles. Unknown settings,
// wrong arities and malformed values are *tech.ConfigError; every bound
// profile passes IsWellFormed before it is returned.
func Bind(f *File) ([]*tech.Profile, error) {
	if len(f.Technologies) == 0 {
		return nil, &tech.ConfigError{Field: "technology", Reason: "file declares no technology block"}
	}
	profiles := make([]*tech.Profile, 0, len(f.Technologies))
	for _, block := range f.Technologies {
		p, err := bindTechnology(block)
		if err != nil {
			return nil, fmt.Errorf("technology %q: %w", block.GetName(), err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func bindTechnology(block *Technology) (*tech.Profile, error) {
	p := &tech.Profile{Name: block.GetName()}
	seen := make(map[string]bool, len(block.Settings))
	for _, s := range block.Settings {
		if seen[s.Key] {
			return nil, &tech.ConfigError{Field: s.Key, Reason: "duplicate setting"}
		}
		seen[s.Key] = true
		if err := bindSetting(p, s); err != nil {
			return nil, err
		}
	}
	if err := p.IsWellFormed(); err != nil {
		return nil, err
	}
	return p, nil
}

func bindSetting(p *tech.Profile, s *Setting) error {
	switch s.Key {
	case "min_spacing":
		return bindNumber(s, &p.MinSpacing)
	case "min_width":
		return bindNumber(s, &p.MinWidth)
	case "min_area":
		return bindNumber(s, &p.MinArea)
	case "via_pitch":
		return bindNumber(s, &p.ViaPitch)
	case "via_margin":
		return bindNumber(s, &p.ViaMargin)
	case "width_quant_base":
		return bindNumber(s, &p.WidthQuantBase)
	case "width_quant_step":
		return bindNumber(s, &p.WidthQuantStep)
	case "naming_style":
		style, err := bindText(s)
		if err != nil {
			return err
		}
		p.NamingStyle = tech.NamingStyle(style)
		return nil
	case "layers":
		names, err := bindTextList(s)
		if err != nil {
			return err
		}
		p.AllowedLayers = names
		return nil
	case "low_parasitic_excluded":
		names, err := bindTextList(s)
		if err != nil {
			return err
		}
		p.LowParasiticExcluded = names
		return nil
	default:
		return &tech.ConfigError{Field: s.Key, Reason: "unknown setting"}
	}
}

func bindNumber(s *Setting, dst *float64) error {
	if len(s.Values) != 1 {
		return &tech.ConfigError{Field: s.Key, Reason: fmt.Sprintf("expected one value, got %d", len(s.Values))}
	}
	n, ok := s.Values[0].Number()
	if !ok {
		return &tech.ConfigError{Field: s.Key, Reason: "expected a number"}
	}
	*dst = n
	return nil
}

func bindText(s *Setting) (string, error) {
	if len(s.Values) != 1 {
		return "", &tech.ConfigError{Field: s.Key, Reason: fmt.Sprintf("expected one value, got %d", len(s.Values))}
	}
	text, ok := s.Values[0].Text()
	if !ok {
		return "", &tech.ConfigError{Field: s.Key, Reason: "expected a name"}
	}
	return text, nil
}

func bindTextList(s *Setting) ([]string, error) {
	names := make([]string, 0, len(s.Values))
	for _, v := range s.Values {
		text, ok := v.Text()
		if !ok {
			return nil, &tech.ConfigError{Field: s.Key, Reason: "expected layer names"}
		}
		names = append(names, text)
	}
	return names, nil
}
