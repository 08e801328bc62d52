package engine

import (
	"encoding/json"

	"github.com/patternmaker/patternmaker/internal/pattern"
)

// Draw command operations.
const (
	OpClear     = "clear"
	OpSave      = "save"
	OpTransform = "transform"
	OpPath      = "path"
	OpRestore   = "restore"
)

// Outline is the stroke color of every filled primitive.
const Outline pattern.Color = "#000000"

// Background is the color a frame is cleared to.
const Background pattern.Color = "#FFFFFF"

// DrawCommand is a single drawing operation. A frame is a list of these in
// painter's order; surfaces (raster, SVG, a browser Canvas2D) execute them
// front to back.
type DrawCommand struct {
	Op          string        `json:"op"`
	Transform   []float64     `json:"transform,omitempty"` // [a, b, c, d, e, f], multiplied onto the current transform
	Path        []PathCommand `json:"path,omitempty"`
	Fill        pattern.Color `json:"fill,omitempty"`
	Stroke      pattern.Color `json:"stroke,omitempty"`
	StrokeWidth float64       `json:"strokeWidth,omitempty"`
}

// PathCommand is a single path segment in Canvas2D form:
// ["M", x, y], ["L", x, y], ["C", x1, y1, x2, y2, x, y], ["Z"].
type PathCommand []interface{}

func moveTo(x, y float64) PathCommand { return PathCommand{"M", x, y} }
func lineTo(x, y float64) PathCommand { return PathCommand{"L", x, y} }
func closePath() PathCommand          { return PathCommand{"Z"} }

func cubicTo(x1, y1, x2, y2, x, y float64) PathCommand {
	return PathCommand{"C", x1, y1, x2, y2, x, y}
}

// Op returns the segment's operator, or "" for a malformed segment.
func (p PathCommand) Op() string {
	if len(p) == 0 {
		return ""
	}
	op, _ := p[0].(string)
	return op
}

// Points returns the segment's coordinates as (x, y) pairs.
func (p PathCommand) Points() [][2]float64 {
	if len(p) < 3 {
		return nil
	}
	pts := make([][2]float64, 0, (len(p)-1)/2)
	for i := 1; i+1 < len(p); i += 2 {
		pts = append(pts, [2]float64{toFloat64(p[i]), toFloat64(p[i+1])})
	}
	return pts
}

// DisplayList accumulates draw commands for one frame.
type DisplayList struct {
	commands []DrawCommand
}

// Commands returns the accumulated commands.
func (l *DisplayList) Commands() []DrawCommand {
	return l.commands
}

func (l *DisplayList) clear(c pattern.Color) {
	l.commands = append(l.commands, DrawCommand{Op: OpClear, Fill: c})
}

func (l *DisplayList) save() {
	l.commands = append(l.commands, DrawCommand{Op: OpSave})
}

func (l *DisplayList) restore() {
	l.commands = append(l.commands, DrawCommand{Op: OpRestore})
}

func (l *DisplayList) transform(m Matrix2D) {
	l.commands = append(l.commands, DrawCommand{Op: OpTransform, Transform: m.ToSlice()})
}

// fill emits a filled shape outlined in black. A zero stroke width leaves
// the outline off.
func (l *DisplayList) fill(path []PathCommand, c pattern.Color, strokeWidth float64) {
	cmd := DrawCommand{Op: OpPath, Path: path, Fill: c}
	if strokeWidth > 0 {
		cmd.Stroke = Outline
		cmd.StrokeWidth = strokeWidth
	}
	l.commands = append(l.commands, cmd)
}

// stroke emits an unfilled line.
func (l *DisplayList) stroke(path []PathCommand, c pattern.Color, strokeWidth float64) {
	if strokeWidth <= 0 {
		return
	}
	l.commands = append(l.commands, DrawCommand{Op: OpPath, Path: path, Stroke: c, StrokeWidth: strokeWidth})
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

// toFloat64 converts a path operand to float64. Operands decoded from JSON
// arrive as float64; those built in Go may be ints.
func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
