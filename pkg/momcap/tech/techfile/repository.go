package techfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/OpenTraceLab/OpenTraceCap/pkg/momcap/tech"
)

// Resolver maps a technology reference - a built-in name, a .tech file path,
// or a bare name found on the search path - to a loaded profile.
type Resolver struct {
	dirs []string
}

// NewResolver builds a resolver from explicit directories, the
// colon-separated OTC_TECH_PATH variable, and the working directory,
// searched in that order.
func NewResolver(dirs ...string) *Resolver {
	all := append([]string(nil), dirs...)
	if env := os.Getenv("OTC_TECH_PATH"); env != "" {
		for _, dir := range strings.Split(env, ":") {
			if dir != "" {
				all = append(all, dir)
			}
		}
	}
	all = append(all, ".")
	return &Resolver{dirs: all}
}

// Resolve loads a profile. Built-in names win; otherwise the reference is
// tried as a .tech file path, then as <ref>.tech across the search
// directories. When a file holds several technology blocks the block named
// like the reference is preferred.
func (r *Resolver) Resolve(ref string) (*tech.Profile, error) {
	if p, err := tech.Builtin(ref); err == nil {
		return p, nil
	}
	if strings.HasSuffix(ref, ".tech") {
		return loadFile(ref, "")
	}
	for _, dir := range r.dirs {
		path := filepath.Join(dir, ref+".tech")
		if _, err := os.Stat(path); err == nil {
			return loadFile(path, ref)
		}
	}
	// last resort: a block named like the reference inside any .tech file
	for _, dir := range r.dirs {
		matches, _ := filepath.Glob(filepath.Join(dir, "*.tech"))
		for _, path := range matches {
			if p, err := loadFile(path, ref); err == nil {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("techfile: cannot resolve technology %q (not a built-in, no %s.tech on the search path)", ref, ref)
}

// List returns every resolvable technology name: the built-ins plus the
// blocks of each .tech file on the search path. Files that fail to parse
// are skipped; `tech info` surfaces their errors.
func (r *Resolver) List() []string {
	seen := make(map[string]bool)
	for _, name := range tech.BuiltinNames() {
		seen[name] = true
	}
	parser, err := NewParser()
	if err == nil {
		for _, dir := range r.dirs {
			matches, _ := filepath.Glob(filepath.Join(dir, "*.tech"))
			for _, path := range matches {
				file, err := parser.ParseFile(path)
				if err != nil {
					continue
				}
				for _, block := range file.Technologies {
					seen[block.GetName()] = true
				}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadFile(path, want string) (*tech.Profile, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	profiles, err := Bind(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if want != "" {
		for _, p := range profiles {
			if p.Name == want {
				return p, nil
			}
		}
		return nil, fmt.Errorf("techfile: no technology %q in %s", want, path)
	}
	if len(profiles) > 1 {
		return nil, fmt.Errorf("techfile: %s holds %d technologies, refer to one by name", path, len(profiles))
	}
	return profiles[0], nil
}
