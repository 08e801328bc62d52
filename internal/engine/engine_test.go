package engine

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/patternmaker/patternmaker/internal/pattern"
)

func TestFrameStructure(t *testing.T) {
	cfg := pattern.Default()
	cfg.Rotation = 30
	cfg.Scale = 1.5

	cmds := Frame(cfg, 800, 600)
	if len(cmds) < 4 {
		t.Fatalf("frame too short: %d commands", len(cmds))
	}

	if cmds[0].Op != OpClear || cmds[0].Fill != Background {
		t.Errorf("frame should start by clearing to white, got %+v", cmds[0])
	}
	if cmds[1].Op != OpSave {
		t.Errorf("expected save, got %s", cmds[1].Op)
	}
	want := CenterTransform(800, 600, 30, 1.5).ToSlice()
	if cmds[2].Op != OpTransform || !reflect.DeepEqual(cmds[2].Transform, want) {
		t.Errorf("expected centered transform %v, got %+v", want, cmds[2])
	}
	if last := cmds[len(cmds)-1]; last.Op != OpRestore {
		t.Errorf("frame should end with restore, got %s", last.Op)
	}

	body := cmds[3 : len(cmds)-1]
	if !reflect.DeepEqual(body, Generate(cfg, 800, 600)) {
		t.Error("frame body should be the untransformed generator output")
	}
}

func TestFrameIsIdempotent(t *testing.T) {
	for _, f := range pattern.Families {
		t.Run(string(f), func(t *testing.T) {
			cfg := pattern.Default()
			cfg.Family = f
			cfg.Rotation = 45
			a := Frame(cfg, 800, 600)
			b := Frame(cfg, 800, 600)
			if !reflect.DeepEqual(a, b) {
				t.Error("rendering the same config twice differed")
			}
		})
	}
}

func TestWithTransformRestoresOnPanic(t *testing.T) {
	var l DisplayList

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected the panic to propagate")
			}
		}()
		withTransform(&l, Scale(2, 2), func() {
			l.fill(rectPath(0, 0, 1, 1), "#FF0000", 1)
			panic("generator failed")
		})
	}()

	cmds := l.Commands()
	if cmds[len(cmds)-1].Op != OpRestore {
		t.Fatalf("expected trailing restore, got %s", cmds[len(cmds)-1].Op)
	}

	depth := 0
	for _, c := range cmds {
		switch c.Op {
		case OpSave:
			depth++
		case OpRestore:
			depth--
		}
	}
	if depth != 0 {
		t.Errorf("unbalanced save/restore, depth %d", depth)
	}
}

func TestBoundsHonoursTransform(t *testing.T) {
	cfg := pattern.Default()
	cfg.Scale = 2

	plain := Bounds(Generate(cfg, 800, 600))
	scaled := Bounds(Frame(cfg, 800, 600))
	if scaled.Width <= plain.Width*1.9 {
		t.Errorf("expected scaled frame to be about twice as wide: %v vs %v", scaled.Width, plain.Width)
	}

	cfg.Scale = 1
	if Bounds(Frame(cfg, 800, 600)) != plain {
		t.Error("neutral transform changed bounds")
	}
}

func TestEngineApplyAndRender(t *testing.T) {
	e := NewEngine(0, 0)
	if w, h := e.Size(); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("expected default size, got %vx%v", w, h)
	}

	stars := pattern.FamilyStars
	cfg := e.Apply(pattern.Delta{Family: &stars})
	if cfg.Family != pattern.FamilyStars || e.Config().Family != pattern.FamilyStars {
		t.Errorf("Apply did not update family: %+v", cfg)
	}
	if cfg.Size != pattern.Default().Size {
		t.Error("Apply touched an absent field")
	}

	var decoded []DrawCommand
	if err := json.Unmarshal([]byte(e.RenderJSON()), &decoded); err != nil {
		t.Fatalf("render JSON invalid: %v", err)
	}
	if len(decoded) != len(e.Render()) {
		t.Errorf("JSON has %d commands, render has %d", len(decoded), len(e.Render()))
	}
	if decoded[0].Op != OpClear {
		t.Errorf("expected clear first, got %s", decoded[0].Op)
	}
	if got := decoded[3].Path[0].Op(); got != "M" {
		t.Errorf("expected decoded path to start with M, got %q", got)
	}
}

func TestSetConfigReplacesWholesale(t *testing.T) {
	e := NewEngine(800, 600)
	next := pattern.Default()
	next.Family = pattern.FamilySpirals
	next.Color1 = "#000000"
	e.SetConfig(next)
	if e.Config() != next {
		t.Errorf("expected %+v, got %+v", next, e.Config())
	}
}
