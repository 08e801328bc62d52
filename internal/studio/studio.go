// Package studio holds the single current pattern configuration together
// with the surface it is drawn on, and redraws on every change.
package studio

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/patternmaker/patternmaker/internal/engine"
	"github.com/patternmaker/patternmaker/internal/export"
	"github.com/patternmaker/patternmaker/internal/pattern"
	"github.com/patternmaker/patternmaker/internal/prompt"
	"github.com/patternmaker/patternmaker/internal/raster"
	"github.com/patternmaker/patternmaker/internal/typeid"
)

// Options configures a Studio. Zero values fall back to an 800x600
// surface, no prompt delay, the working directory and a time based seed.
type Options struct {
	Width       int
	Height      int
	PromptDelay time.Duration
	OutputDir   string
	Seed        uint64
	Now         func() time.Time
}

// Studio owns the current config. Every change replaces the config
// wholesale and repaints the surface synchronously. The mutex only
// serialises callers; last write wins.
type Studio struct {
	mu          sync.Mutex
	id          string
	engine      *engine.Engine
	surface     *raster.Surface
	interpreter *prompt.Interpreter
	exporter    *export.Exporter
	rng         *rand.Rand
}

// New creates a studio holding the default config. Nothing is painted
// until the first Render or change.
func New(opts Options) *Studio {
	if opts.Width <= 0 {
		opts.Width = engine.DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = engine.DefaultHeight
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	s := &Studio{
		id:          typeid.NewStudioID(),
		engine:      engine.NewEngine(float64(opts.Width), float64(opts.Height)),
		surface:     raster.NewSurface(opts.Width, opts.Height),
		interpreter: prompt.NewInterpreter(opts.PromptDelay),
		exporter:    export.NewExporter(opts.OutputDir, opts.Now),
		rng:         pattern.NewRand(opts.Seed),
	}
	slog.Debug("studio created", "studio", s.id, "width", opts.Width, "height", opts.Height)
	return s
}

// ID returns the studio's identifier.
func (s *Studio) ID() string {
	return s.id
}

// Config returns the current config.
func (s *Studio) Config() pattern.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Config()
}

// SetConfig clamps cfg into the control bounds, makes it current and
// repaints.
func (s *Studio) SetConfig(cfg pattern.Config) pattern.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(cfg)
}

// Update merges d onto the current config, then behaves like SetConfig.
func (s *Studio) Update(d pattern.Delta) pattern.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(s.engine.Config().Apply(d))
}

// Randomize replaces the config with a random one.
func (s *Studio) Randomize() pattern.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(pattern.Random(s.rng))
}

// ApplyPrompt interprets text and merges the result. A blank prompt
// changes nothing and reports applied = false. The studio is not locked
// while the interpreter waits, so a concurrent edit can land first and
// then be overwritten by the prompt's fields.
func (s *Studio) ApplyPrompt(ctx context.Context, text string) (cfg pattern.Config, applied bool, err error) {
	d, err := s.interpreter.Interpret(ctx, text)
	if errors.Is(err, prompt.ErrEmptyPrompt) {
		return s.Config(), false, nil
	}
	if err != nil {
		return s.Config(), false, err
	}

	slog.Info("prompt applied", "studio", s.id, "prompt", text)
	return s.Update(d), true, nil
}

func (s *Studio) replaceLocked(cfg pattern.Config) pattern.Config {
	cfg = cfg.Clamp()
	s.engine.SetConfig(cfg)
	s.renderLocked()
	return cfg
}

// Render repaints the surface from the current config and returns the
// commands it executed.
func (s *Studio) Render() []engine.DrawCommand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked()
}

func (s *Studio) renderLocked() []engine.DrawCommand {
	cmds := s.engine.Render()
	s.surface.Paint(cmds)
	cfg := s.engine.Config()
	slog.Debug("rendered", "studio", s.id, "type", cfg.Family, "commands", len(cmds))
	return cmds
}

// RenderJSON repaints and returns the commands as JSON for a browser
// Canvas2D.
func (s *Studio) RenderJSON() (string, error) {
	return engine.DrawCommandsToJSON(s.Render())
}

// Painted reports whether the surface has been drawn yet.
func (s *Studio) Painted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.Painted()
}

// EncodePNG returns the export name and PNG bytes of the surface. ok is
// false before the first render.
func (s *Studio) EncodePNG() (name string, data []byte, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exporter.EncodePNG(s.surface, s.engine.Config().Family)
}

// ExportPNG writes the surface to the output directory. Before the first
// render it is a no-op returning "".
func (s *Studio) ExportPNG() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exporter.PNG(s.surface, s.engine.Config().Family)
}

// ExportSVG writes the current config as an SVG document.
func (s *Studio) ExportSVG() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, h := s.surface.Size()
	return s.exporter.SVG(s.engine.Config(), w, h)
}
