package config

import (
	"os"
	"path/filepath"
	"testing"

	"tweakpanel/internal/tweak"
)

func TestLoadOptionalMissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOptional(filepath.Join(dir, "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if r.Step != tweak.DefaultStep {
		t.Fatalf("expected default step %v, got %v", tweak.DefaultStep, r.Step)
	}
	if !r.PanelOpen || r.PanelWidth != defaultPanelWidth || r.PanelHeight != defaultPanelHeight {
		t.Fatalf("unexpected panel defaults: %+v", r)
	}
	if r.Scope != tweak.ScopeInstance {
		t.Fatalf("expected instance scope, got %v", r.Scope)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panel.yaml")
	data := []byte(`step: 2.5
panel:
  width: 300
  open: false
sections:
  disabled: [gravity, " pump "]
baselines: type
sim:
  spawn_delay: "5"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if r.Step != 2.5 {
		t.Errorf("expected step 2.5, got %v", r.Step)
	}
	if r.PanelWidth != 300 || r.PanelHeight != defaultPanelHeight || r.PanelOpen {
		t.Errorf("unexpected panel config: %+v", r)
	}
	if len(r.Disabled) != 2 || r.Disabled[0] != "gravity" || r.Disabled[1] != "pump" {
		t.Errorf("unexpected disabled sections: %v", r.Disabled)
	}
	if r.Scope != tweak.ScopeType {
		t.Errorf("expected type scope, got %v", r.Scope)
	}
	if r.Sim["spawn_delay"] != "5" {
		t.Errorf("expected sim option to pass through, got %v", r.Sim)
	}
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		step    float64
	}{
		{name: "negative step clamps", yaml: "step: -3", step: 0},
		{name: "zero step kept", yaml: "step: 0", step: 0},
		{name: "unknown scope", yaml: "baselines: forever", wantErr: true},
		{name: "negative width", yaml: "panel:\n  width: -1", wantErr: true},
		{name: "empty document", yaml: "", step: tweak.DefaultStep},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			r, err := cfg.Resolve()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", r)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve failed: %v", err)
			}
			if r.Step != tc.step {
				t.Fatalf("expected step %v, got %v", tc.step, r.Step)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("step: [unterminated")); err == nil {
		t.Fatal("expected parse error")
	}
}
