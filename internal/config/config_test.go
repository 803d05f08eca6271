package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bgsbgsbgs42/SpaghettificationApp/internal/astro"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Object != "blackhole" {
		t.Errorf("expected object blackhole, got %s", cfg.Object)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateMassBounds(t *testing.T) {
	tests := []struct {
		object string
		mass   float64
		ok     bool
	}{
		{"blackhole", 3, true},
		{"blackhole", 100, true},
		{"blackhole", 2.9, false},
		{"blackhole", 101, false},
		{"neutronstar", 1, true},
		{"neutronstar", 2.5, true},
		{"neutronstar", 0.9, false},
		{"neutronstar", 3, false},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Object = tt.object
		cfg.MassSolar = tt.mass

		err := cfg.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s %g: unexpected error: %v", tt.object, tt.mass, err)
		}
		if !tt.ok && !errors.Is(err, ErrMassOutOfRange) {
			t.Errorf("%s %g: expected ErrMassOutOfRange, got %v", tt.object, tt.mass, err)
		}
	}
}

func TestValidateUnknownObject(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Object = "wormhole"

	if err := cfg.Validate(); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("expected ErrUnknownObject, got %v", err)
	}
}

func TestValidateTiming(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dt = 0
	if err := cfg.Validate(); !errors.Is(err, ErrBadTiming) {
		t.Errorf("expected ErrBadTiming for zero dt, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Duration = -1
	if err := cfg.Validate(); !errors.Is(err, ErrBadTiming) {
		t.Errorf("expected ErrBadTiming for negative duration, got %v", err)
	}
}

func TestValidateDistances(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Approach.StartKm = 0
	if err := cfg.Validate(); !errors.Is(err, ErrBadDistance) {
		t.Errorf("expected ErrBadDistance for zero start, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Approach.FloorKm = -5
	if err := cfg.Validate(); !errors.Is(err, ErrBadDistance) {
		t.Errorf("expected ErrBadDistance for negative floor, got %v", err)
	}
}

func TestValidateScript(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Script = []ScriptCue{{At: 0, Do: "trigger"}, {At: 3, Do: "stop"}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid script rejected: %v", err)
	}

	cfg.Script = []ScriptCue{{At: 1, Do: "detonate"}}
	if err := cfg.Validate(); !errors.Is(err, ErrBadScript) {
		t.Errorf("expected ErrBadScript for unknown action, got %v", err)
	}

	cfg.Script = []ScriptCue{{At: -1, Do: "trigger"}}
	if err := cfg.Validate(); !errors.Is(err, ErrBadScript) {
		t.Errorf("expected ErrBadScript for negative time, got %v", err)
	}
}

func TestKind(t *testing.T) {
	cfg := DefaultConfig()
	kind, err := cfg.Kind()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != astro.BlackHole {
		t.Errorf("expected BlackHole, got %v", kind)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("blackhole", "hover")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Approach.StartKm != 100 {
		t.Errorf("expected start 100, got %f", cfg.Approach.StartKm)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("blackhole", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "hover"); cfg != nil {
		t.Error("expected nil for nonexistent object")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("blackhole")
	if len(presets) == 0 {
		t.Error("expected presets for blackhole")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent object")
	}
}

func TestPresetsValidate(t *testing.T) {
	for object, byName := range Presets {
		for name, cfg := range byName {
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s/%s does not validate: %v", object, name, err)
			}
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	cfg := DefaultConfig()
	cfg.Object = "neutronstar"
	cfg.MassSolar = 2.0
	cfg.Profile = "freefall"
	cfg.Script = []ScriptCue{{At: 1.5, Do: "trigger"}}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Object != "neutronstar" || loaded.MassSolar != 2.0 {
		t.Errorf("round trip lost object fields: %+v", loaded)
	}
	if len(loaded.Script) != 1 || loaded.Script[0].Do != "trigger" {
		t.Errorf("round trip lost script: %+v", loaded.Script)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	if err := os.WriteFile(path, []byte("object: neutronstar\nmass_solar: 1.4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Dt != DefaultDt {
		t.Errorf("expected default dt to survive partial file, got %f", cfg.Dt)
	}
	if cfg.Object != "neutronstar" {
		t.Errorf("expected file value to win, got %s", cfg.Object)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Object: "neutronstar"}
	cfg.ApplyDefaults()

	if cfg.MassSolar != astro.DefaultMass(astro.NeutronStar) {
		t.Errorf("expected default star mass, got %f", cfg.MassSolar)
	}
	if cfg.Dt != DefaultDt || cfg.Duration != DefaultDuration {
		t.Errorf("expected default timing, got dt=%f duration=%f", cfg.Dt, cfg.Duration)
	}
	if cfg.Profile != "hold" || cfg.Integrator != "rk4" {
		t.Errorf("expected default names, got %s/%s", cfg.Profile, cfg.Integrator)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestApplyDefaultsKeepsExplicit(t *testing.T) {
	cfg := &Config{Object: "blackhole", MassSolar: 42, Dt: 0.5}
	cfg.ApplyDefaults()

	if cfg.MassSolar != 42 {
		t.Errorf("explicit mass overwritten: %f", cfg.MassSolar)
	}
	if cfg.Dt != 0.5 {
		t.Errorf("explicit dt overwritten: %f", cfg.Dt)
	}
}
