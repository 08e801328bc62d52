package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patternmaker/patternmaker/internal/config"
	"github.com/patternmaker/patternmaker/internal/pattern"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := &config.Config{Width: 200, Height: 100, OutputDir: t.TempDir(), Seed: 7}
	cmd := newRootCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFamiliesCommand(t *testing.T) {
	out, err := execute(t, "families")
	if err != nil {
		t.Fatalf("families: %v", err)
	}
	lines := strings.Fields(out)
	if len(lines) != len(pattern.Families) {
		t.Fatalf("expected %d families, got %v", len(pattern.Families), lines)
	}
	if lines[0] != "grid" || lines[len(lines)-1] != "spirals" {
		t.Errorf("unexpected order %v", lines)
	}
}

func TestInterpretCommand(t *testing.T) {
	out, err := execute(t, "interpret", "small", "red", "stars")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	var d pattern.Delta
	if err := json.Unmarshal([]byte(out), &d); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if d.Family == nil || *d.Family != pattern.FamilyStars {
		t.Errorf("expected stars, got %v", d.Family)
	}
	if d.Size == nil || *d.Size != 30 {
		t.Errorf("expected size 30, got %v", d.Size)
	}
	if d.Spacing != nil {
		t.Errorf("spacing should be untouched, got %v", *d.Spacing)
	}
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		prefix string
		ext    string
	}{
		{"default png", []string{"render"}, "pattern-grid-", ".png"},
		{"bare invocation", nil, "pattern-grid-", ".png"},
		{"svg with type", []string{"render", "--type", "Spirals", "--format", "svg"}, "pattern-spirals-", ".svg"},
		{"prompt", []string{"render", "--prompt", "wavy lines"}, "pattern-waves-", ".png"},
		{"flag beats prompt", []string{"render", "--prompt", "stars", "--type", "diamonds"}, "pattern-diamonds-", ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			path := strings.TrimSpace(out)
			base := filepath.Base(path)
			if !strings.HasPrefix(base, tt.prefix) || filepath.Ext(base) != tt.ext {
				t.Errorf("unexpected output %q", base)
			}
			if info, err := os.Stat(path); err != nil || info.Size() == 0 {
				t.Errorf("missing output file %q: %v", path, err)
			}
		})
	}
}

func TestRenderCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"render", "--format", "gif"}},
		{"bad family", []string{"render", "--type", "blobs"}},
		{"bad color", []string{"render", "--color1", "#GG0000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
