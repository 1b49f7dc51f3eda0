package techfile

import "strings"

// File represents a complete .tech file
// A file holds one or more technology blocks
type File struct {
	Technologies []*Technology `parser:"@@*"`
}

// Technology represents one technology block
// Example: technology "ot130" { min_spacing 0.21 ... }
type Technology struct {
	Name     string     `parser:"KwTechnology @String LBrace"`
	Settings []*Setting `parser:"@@* RBrace"`
}

// Setting represents one key followed by comma-separated values
// Example: layers Metal1, Metal2, Metal3
type Setting struct {
	Key    string   `parser:"@Ident"`
	Values []*Value `parser:"@@ ( Comma @@ )*"`
}

// Value represents a single scalar setting value
type Value struct {
	Real  *float64 `parser:"  @Real"`
	Int   *int     `parser:"| @Integer"`
	Ident *string  `parser:"| @Ident"`
	Str   *string  `parser:"| @String"`
}

// GetName returns the block name with quotes stripped
func (t *Technology) GetName() string {
	return unquote(t.Name)
}

// GetSetting returns the first setting with the given key, or nil
func (t *Technology) GetSetting(key string) *Setting {
	for _, s := range t.Settings {
		if s.Key == key {
			return s
		}
	}
	return nil
}

// Number returns the numeric value regardless of lexical form
func (v *Value) Number() (float64, bool) {
	switch {
	case v.Real != nil:
		return *v.Real, true
	case v.Int != nil:
		return float64(*v.Int), true
	default:
		return 0, false
	}
}

// Text returns the identifier or unquoted string form
func (v *Value) Text() (string, bool) {
	switch {
	case v.Ident != nil:
		return *v.Ident, true
	case v.Str != nil:
		return unquote(*v.Str), true
	default:
		return "", false
	}
}

func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}
