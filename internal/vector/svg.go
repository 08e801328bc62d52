// Package vector executes draw command lists as an SVG document.
package vector

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/patternmaker/patternmaker/internal/engine"
)

// Write renders commands as a width x height SVG document. save opens a
// nesting level; each transform inside it opens a <g transform="matrix(...)">
// that the matching restore closes.
func Write(w io.Writer, width, height int, commands []engine.DrawCommand) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)

	// groups[i] counts the <g> elements opened at save depth i.
	groups := []int{0}
	for _, cmd := range commands {
		switch cmd.Op {
		case engine.OpClear:
			canvas.Rect(0, 0, width, height, "fill:"+cmd.Fill.String())

		case engine.OpSave:
			groups = append(groups, 0)

		case engine.OpTransform:
			if len(cmd.Transform) == 6 {
				canvas.Gtransform(matrixAttr(cmd.Transform))
				groups[len(groups)-1]++
			}

		case engine.OpRestore:
			if len(groups) > 1 {
				closeGroups(canvas, groups[len(groups)-1])
				groups = groups[:len(groups)-1]
			}

		case engine.OpPath:
			if d := pathData(cmd.Path); d != "" {
				canvas.Path(d, pathStyle(cmd))
			}
		}
	}
	for _, n := range groups {
		closeGroups(canvas, n)
	}
	canvas.End()

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func closeGroups(canvas *svg.SVG, n int) {
	for i := 0; i < n; i++ {
		canvas.Gend()
	}
}

func matrixAttr(m []float64) string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = formatFloat(v)
	}
	return "matrix(" + strings.Join(parts, " ") + ")"
}

func pathData(path []engine.PathCommand) string {
	var sb strings.Builder
	for _, seg := range path {
		op := seg.Op()
		switch op {
		case "M", "L", "C":
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(op)
			for _, p := range seg.Points() {
				sb.WriteByte(' ')
				sb.WriteString(formatFloat(p[0]))
				sb.WriteByte(',')
				sb.WriteString(formatFloat(p[1]))
			}
		case "Z":
			sb.WriteString(" Z")
		}
	}
	return sb.String()
}

func pathStyle(cmd engine.DrawCommand) string {
	fill := "none"
	if cmd.Fill != "" {
		fill = cmd.Fill.String()
	}
	if cmd.Stroke == "" || cmd.StrokeWidth <= 0 {
		return "fill:" + fill + ";stroke:none"
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%s", fill, cmd.Stroke, formatFloat(cmd.StrokeWidth))
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
