package ink

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const profilesTOML = `
[[profile]]
name = "soft"
base_width = 3.0
min_width = 1.0
max_width = 9.0
pressure_curve = 2.0
smoothing = 0.8

[[profile]]
name = "fat-marker"
extends = "marker"
max_width = 16.0
opacity = 0.4
`

func TestLoadProfiles(t *testing.T) {
	profiles, err := LoadProfiles(strings.NewReader(profilesTOML))
	if err != nil {
		t.Fatalf("LoadProfiles() = %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}

	soft := profiles[0]
	if soft.Name != "soft" || soft.BaseWidth != 3 || soft.PressureCurve != 2 || soft.Smoothing != 0.8 {
		t.Errorf("soft = %+v", soft)
	}
	// Unset keys keep the default profile's values.
	if !soft.PressureEnabled || soft.PressureSensitivity != DefaultProfile().PressureSensitivity {
		t.Errorf("soft lost defaults: %+v", soft)
	}

	fat := profiles[1]
	marker, _ := Preset("marker")
	if fat.Name != "fat-marker" || fat.MaxWidth != 16 || fat.Opacity != 0.4 {
		t.Errorf("fat-marker = %+v", fat)
	}
	if fat.BaseWidth != marker.BaseWidth || fat.Smoothing != marker.Smoothing {
		t.Errorf("fat-marker did not inherit from marker: %+v", fat)
	}
}

func TestLoadProfiles_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"syntax", "[[profile]\nname = 1", "decode profiles"},
		{"unknown key", "[[profile]]\nname = \"x\"\nbase_widht = 2.0", "base_widht"},
		{"unknown preset", "[[profile]]\nname = \"x\"\nextends = \"quill\"", "unknown preset"},
		{"invalid", "[[profile]]\nname = \"x\"\nopacity = 3.0", "opacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProfiles(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("LoadProfiles() = nil error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	_, err := LoadProfiles(strings.NewReader("[[profile]]\nname = \"x\"\nmin_width = 9.0"))
	if !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("validation error does not wrap ErrInvalidProfile: %v", err)
	}
}

func TestLoadProfileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.toml")
	if err := os.WriteFile(path, []byte(profilesTOML), 0o600); err != nil {
		t.Fatal(err)
	}
	profiles, err := LoadProfileFile(path)
	if err != nil {
		t.Fatalf("LoadProfileFile() = %v", err)
	}
	if p, ok := FindProfile(profiles, "soft"); !ok || p.BaseWidth != 3 {
		t.Errorf("FindProfile(soft) = %+v, %v", p, ok)
	}
	if p, ok := FindProfile(profiles, "pencil"); !ok || p.Name != "pencil" {
		t.Errorf("FindProfile did not fall back to presets: %+v", p)
	}
	if _, ok := FindProfile(profiles, "nope"); ok {
		t.Error("FindProfile found an unknown name")
	}

	if _, err := LoadProfileFile(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}
