// Package raster executes draw command lists onto an in-memory RGBA surface.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/patternmaker/patternmaker/internal/engine"
)

// ErrNotMounted is returned when a surface is read before anything has
// been painted on it.
var ErrNotMounted = errors.New("surface not painted yet")

// Surface is a fixed-size raster canvas.
type Surface struct {
	dc      *gg.Context
	width   int
	height  int
	painted bool
}

// NewSurface allocates a width x height surface.
func NewSurface(width, height int) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetLineCapButt()
	return &Surface{dc: dc, width: width, height: height}
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Painted reports whether Paint has run at least once.
func (s *Surface) Painted() bool {
	return s != nil && s.painted
}

// Paint executes commands in order. save and restore bracket both the
// drawing state and the transform stack, and any save left open when the
// list ends is unwound.
func (s *Surface) Paint(commands []engine.DrawCommand) {
	current := engine.Identity()
	var stack []engine.Matrix2D
	defer func() {
		for range stack {
			s.dc.Pop()
		}
	}()

	for _, cmd := range commands {
		switch cmd.Op {
		case engine.OpClear:
			s.dc.SetColor(cmd.Fill.RGBA())
			s.dc.Clear()

		case engine.OpSave:
			s.dc.Push()
			stack = append(stack, current)

		case engine.OpRestore:
			if n := len(stack); n > 0 {
				current = stack[n-1]
				stack = stack[:n-1]
				s.dc.Pop()
			}

		case engine.OpTransform:
			if len(cmd.Transform) == 6 {
				var m engine.Matrix2D
				copy(m[:], cmd.Transform)
				current = current.Multiply(m)
			}

		case engine.OpPath:
			s.drawPath(cmd, current)
		}
	}

	s.painted = true
}

// drawPath maps the path through m itself rather than through the gg
// matrix, so arbitrary affine matrices from the command list apply exactly.
func (s *Surface) drawPath(cmd engine.DrawCommand, m engine.Matrix2D) {
	dc := s.dc
	dc.ClearPath()

	for _, seg := range cmd.Path {
		pts := seg.Points()
		switch seg.Op() {
		case "M":
			if len(pts) >= 1 {
				x, y := m.TransformPoint(pts[0][0], pts[0][1])
				dc.MoveTo(x, y)
			}
		case "L":
			if len(pts) >= 1 {
				x, y := m.TransformPoint(pts[0][0], pts[0][1])
				dc.LineTo(x, y)
			}
		case "C":
			if len(pts) >= 3 {
				x1, y1 := m.TransformPoint(pts[0][0], pts[0][1])
				x2, y2 := m.TransformPoint(pts[1][0], pts[1][1])
				x, y := m.TransformPoint(pts[2][0], pts[2][1])
				dc.CubicTo(x1, y1, x2, y2, x, y)
			}
		case "Z":
			dc.ClosePath()
		}
	}

	stroke := cmd.Stroke != "" && cmd.StrokeWidth > 0
	if cmd.Fill != "" {
		dc.SetColor(cmd.Fill.RGBA())
		if stroke {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if stroke {
		dc.SetColor(cmd.Stroke.RGBA())
		dc.SetLineWidth(cmd.StrokeWidth * m.LineScale())
		dc.Stroke()
	}
	dc.ClearPath()
}

// Image returns the surface contents.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the surface contents as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if !s.Painted() {
		return ErrNotMounted
	}
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
