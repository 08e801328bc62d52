package studio

import (
	"bytes"
	"context"
	"image/png"
	"path/filepath"
	"testing"
	"time"

	"github.com/patternmaker/patternmaker/internal/pattern"
	"github.com/patternmaker/patternmaker/internal/typeid"
)

func newTestStudio(t *testing.T) *Studio {
	t.Helper()
	return New(Options{
		OutputDir: t.TempDir(),
		Seed:      1,
		Now:       func() time.Time { return time.UnixMilli(42) },
	})
}

func TestNewStudio(t *testing.T) {
	s := newTestStudio(t)
	if err := typeid.Validate(s.ID(), typeid.PrefixStudio); err != nil {
		t.Errorf("bad studio id: %v", err)
	}
	if s.Config() != pattern.Default() {
		t.Errorf("expected default config, got %+v", s.Config())
	}
	if s.Painted() {
		t.Error("nothing should be painted before the first render")
	}
}

func TestExportBeforeRenderIsNoop(t *testing.T) {
	s := newTestStudio(t)

	path, err := s.ExportPNG()
	if err != nil || path != "" {
		t.Errorf("expected no-op, got %q, %v", path, err)
	}
	_, data, ok, err := s.EncodePNG()
	if err != nil || ok || data != nil {
		t.Errorf("expected no-op encode, got ok=%v err=%v", ok, err)
	}
}

func TestUpdateRepaintsAndExports(t *testing.T) {
	s := newTestStudio(t)

	hex := pattern.FamilyHexagon
	cfg := s.Update(pattern.Delta{Family: &hex})
	if cfg.Family != pattern.FamilyHexagon {
		t.Fatalf("expected hexagon, got %s", cfg.Family)
	}
	if !s.Painted() {
		t.Fatal("update should repaint")
	}

	path, err := s.ExportPNG()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(path) != "pattern-hexagon-42.png" {
		t.Errorf("unexpected export name %q", path)
	}

	name, data, ok, err := s.EncodePNG()
	if err != nil || !ok {
		t.Fatalf("encode: ok=%v err=%v", ok, err)
	}
	if name != "pattern-hexagon-42.png" {
		t.Errorf("unexpected name %q", name)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("invalid png: %v", err)
	}
}

func TestSetConfigClamps(t *testing.T) {
	s := newTestStudio(t)
	cfg := pattern.Default()
	cfg.Size = 1000
	cfg.Rotation = 720

	got := s.SetConfig(cfg)
	if got.Size != pattern.MaxSize || got.Rotation != 0 {
		t.Errorf("expected clamped config, got %+v", got)
	}
	if s.Config() != got {
		t.Error("current config should be the clamped value")
	}
}

func TestApplyPrompt(t *testing.T) {
	s := newTestStudio(t)
	before := s.Config()

	cfg, applied, err := s.ApplyPrompt(context.Background(), "large blue hexagons with tight spacing")
	if err != nil || !applied {
		t.Fatalf("expected prompt to apply, got applied=%v err=%v", applied, err)
	}

	want := before
	want.Family = pattern.FamilyHexagon
	want.Size = 80
	want.Spacing = 2
	want.Color2 = "#0000FF"
	if cfg != want {
		t.Errorf("expected %+v, got %+v", want, cfg)
	}
}

func TestApplyEmptyPromptIsNoop(t *testing.T) {
	s := newTestStudio(t)
	before := s.Config()

	cfg, applied, err := s.ApplyPrompt(context.Background(), "   ")
	if err != nil || applied {
		t.Errorf("expected silent no-op, got applied=%v err=%v", applied, err)
	}
	if cfg != before || s.Config() != before {
		t.Error("empty prompt changed the config")
	}
	if s.Painted() {
		t.Error("empty prompt should not render")
	}
}

func TestRandomizeHundredTimes(t *testing.T) {
	s := newTestStudio(t)
	for i := 0; i < 100; i++ {
		cfg := s.Randomize()
		if err := cfg.Validate(); err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
	}
}

func TestRenderJSONIsStable(t *testing.T) {
	s := newTestStudio(t)
	a, err := s.RenderJSON()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, _ := s.RenderJSON()
	if a != b {
		t.Error("repeated renders of the same config differ")
	}
}

func TestExportSVG(t *testing.T) {
	s := newTestStudio(t)
	path, err := s.ExportSVG()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(path) != "pattern-grid-42.svg" {
		t.Errorf("unexpected name %q", path)
	}
}
