package ink

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// profileFile is the on-disk layout:
//
//	[[profile]]
//	name = "soft"
//	base_width = 3.0
//	...
//
// A profile may name a preset in "extends"; unspecified keys then keep the
// preset's values.
type profileFile struct {
	Profile []profileEntry `toml:"profile"`
}

type profileEntry struct {
	Extends string `toml:"extends"`
	StrokeProfile
}

// LoadProfiles decodes every [[profile]] table from r and validates it.
// Unknown keys are an error.
func LoadProfiles(r io.Reader) ([]StrokeProfile, error) {
	var raw struct {
		Profile []toml.Primitive `toml:"profile"`
	}
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("ink: decode profiles: %w", err)
	}

	out := make([]StrokeProfile, 0, len(raw.Profile))
	for i, prim := range raw.Profile {
		var head struct {
			Extends string `toml:"extends"`
		}
		if err := md.PrimitiveDecode(prim, &head); err != nil {
			return nil, fmt.Errorf("ink: profile %d: %w", i, err)
		}
		entry := profileEntry{StrokeProfile: DefaultProfile()}
		if head.Extends != "" {
			base, ok := Preset(head.Extends)
			if !ok {
				return nil, fmt.Errorf("ink: profile %d: unknown preset %q", i, head.Extends)
			}
			entry.StrokeProfile = base
		}
		if err := md.PrimitiveDecode(prim, &entry); err != nil {
			return nil, fmt.Errorf("ink: profile %d: %w", i, err)
		}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("ink: profile %d (%s): %w", i, entry.Name, err)
		}
		out = append(out, entry.StrokeProfile)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("ink: unknown profile keys: %s", strings.Join(keys, ", "))
	}
	return out, nil
}

// LoadProfileFile reads profiles from a TOML file.
func LoadProfileFile(path string) ([]StrokeProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ink: open profiles: %w", err)
	}
	defer f.Close()
	return LoadProfiles(f)
}

// FindProfile returns the profile called name from profiles, falling back
// to the built-in presets.
func FindProfile(profiles []StrokeProfile, name string) (StrokeProfile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Preset(name)
}
