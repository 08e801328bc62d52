package engine

import (
	"github.com/patternmaker/patternmaker/internal/pattern"
)

// Default surface size in logical units.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// withTransform brackets draw between a save and a restore with m applied.
// The restore is deferred so it is emitted however draw returns.
func withTransform(l *DisplayList, m Matrix2D, draw func()) {
	l.save()
	defer l.restore()
	l.transform(m)
	draw()
}

// Frame builds the complete command list for one frame: clear to white,
// then the selected generator inside the centered rotate and scale
// transform.
func Frame(cfg pattern.Config, width, height float64) []DrawCommand {
	var l DisplayList
	l.clear(Background)
	withTransform(&l, CenterTransform(width, height, cfg.Rotation, cfg.Scale), func() {
		generate(&l, cfg, width, height)
	})
	return l.Commands()
}

// Engine owns the current configuration and the surface dimensions. Every
// Render recomputes the frame from scratch.
type Engine struct {
	cfg    pattern.Config
	width  float64
	height float64
}

// NewEngine creates an engine for a width x height surface holding the
// default configuration.
func NewEngine(width, height float64) *Engine {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Engine{
		cfg:    pattern.Default(),
		width:  width,
		height: height,
	}
}

// --- Commands ---

// SetConfig replaces the current configuration.
func (e *Engine) SetConfig(cfg pattern.Config) {
	e.cfg = cfg
}

// Apply merges d onto the current configuration and returns the result.
func (e *Engine) Apply(d pattern.Delta) pattern.Config {
	e.cfg = e.cfg.Apply(d)
	return e.cfg
}

// --- Queries ---

// Config returns the current configuration.
func (e *Engine) Config() pattern.Config {
	return e.cfg
}

// Size returns the surface dimensions.
func (e *Engine) Size() (float64, float64) {
	return e.width, e.height
}

// Render returns the draw commands for the current configuration.
func (e *Engine) Render() []DrawCommand {
	return Frame(e.cfg, e.width, e.height)
}

// RenderJSON returns the draw commands for the current configuration as JSON.
func (e *Engine) RenderJSON() string {
	result, _ := DrawCommandsToJSON(e.Render())
	return result
}
