package engine

import "math"

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains checks if a point is inside the rect.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Inset grows (negative d) or shrinks the rect on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// PathBounds computes the bounding box of a path after transform, taking
// Bézier control points as part of the hull.
func PathBounds(path []PathCommand, transform Matrix2D) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, cmd := range path {
		switch cmd.Op() {
		case "M", "L", "C":
			for _, p := range cmd.Points() {
				wx, wy := transform.TransformPoint(p[0], p[1])
				minX = math.Min(minX, wx)
				maxX = math.Max(maxX, wx)
				minY = math.Min(minY, wy)
				maxY = math.Max(maxY, wy)
			}
		}
	}

	if math.IsInf(minX, 1) {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Bounds returns the combined bounding box of every path in a command list,
// honouring save, transform and restore. Clears are not geometry and are
// ignored.
func Bounds(commands []DrawCommand) Rect {
	current := Identity()
	var stack []Matrix2D
	var result Rect

	for _, cmd := range commands {
		switch cmd.Op {
		case OpSave:
			stack = append(stack, current)
		case OpRestore:
			if n := len(stack); n > 0 {
				current = stack[n-1]
				stack = stack[:n-1]
			}
		case OpTransform:
			if len(cmd.Transform) == 6 {
				var m Matrix2D
				copy(m[:], cmd.Transform)
				current = current.Multiply(m)
			}
		case OpPath:
			result = result.Union(PathBounds(cmd.Path, current))
		}
	}

	return result
}
