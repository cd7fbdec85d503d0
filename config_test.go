package wheel

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `
items:
  - label: Gold
    weight: 1
    background_color: "#e9c46a"
  - label: Silver
    weight: 2
    value: prize-silver
  - label: Nothing
rotation: 45
pointer_angle: 90
resistance: -80
max_speed: 500
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}

	if len(cfg.Items) != 3 {
		t.Fatalf("parsed %d items, want 3", len(cfg.Items))
	}
	if cfg.Items[0].Weight == nil || *cfg.Items[0].Weight != 1 {
		t.Errorf("item 0 weight = %v, want 1", cfg.Items[0].Weight)
	}
	if cfg.Items[2].Weight != nil {
		t.Errorf("item 2 weight = %v, want absent", *cfg.Items[2].Weight)
	}
	if cfg.Resistance == nil || *cfg.Resistance != -80 {
		t.Errorf("resistance = %v, want -80", cfg.Resistance)
	}
}

func TestParseConfig_RejectsUnknownFields(t *testing.T) {
	_, err := ParseConfig(strings.NewReader("items: []\nspin_speed: 12\n"))
	if err == nil {
		t.Fatal("ParseConfig accepted an unknown field")
	}
}

func TestConfig_Wheel(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	w, err := cfg.Wheel()
	if err != nil {
		t.Fatalf("Config.Wheel() = %v", err)
	}

	if got := w.Rotation(); got != 45 {
		t.Errorf("rotation = %v, want 45", got)
	}
	if got := w.PointerAngle(); got != 90 {
		t.Errorf("pointer angle = %v, want 90", got)
	}
	if w.resistance != -80 || w.maxSpeed != 500 {
		t.Errorf("physics = (%v, %v), want (-80, 500)", w.resistance, w.maxSpeed)
	}

	// The absent weight defaults to 1, so the shares are 1:2:1.
	slices := w.Slices()
	if got := slices[1].Size(); math.Abs(got-180) > 1e-9 {
		t.Errorf("item 1 spans %v degrees, want 180", got)
	}
	if got, err := w.Item(1); err != nil || got.Value != "prize-silver" {
		t.Errorf("Item(1) = (%+v, %v), want value prize-silver", got, err)
	}
}

func TestConfig_Wheel_RejectsExplicitZeroWeight(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader("items:\n  - label: broken\n    weight: 0\n"))
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	if _, err := cfg.Wheel(); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Config.Wheel() = %v, want ErrInvalidWeight", err)
	}
}

func TestConfig_Wheel_ExtraOptionsWin(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig() = %v", err)
	}
	w, err := cfg.Wheel(WithMaxSpeed(1000))
	if err != nil {
		t.Fatalf("Config.Wheel() = %v", err)
	}
	if w.maxSpeed != 1000 {
		t.Errorf("maxSpeed = %v, want the caller override 1000", w.maxSpeed)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if len(cfg.Items) != 3 {
		t.Errorf("loaded %d items, want 3", len(cfg.Items))
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig on a missing file returned nil error")
	}
}
