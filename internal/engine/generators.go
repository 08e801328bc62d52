package engine

import (
	"math"

	"github.com/patternmaker/patternmaker/internal/pattern"
)

const (
	waveSampleStep = 20.0
	spiralTurns    = 3
	spiralStep     = 0.1
	starSpikes     = 5
	starInnerRatio = 2.5

	// bezierCircle is 4 * (sqrt(2) - 1) / 3, the control point distance for
	// a quarter circle of radius 1.
	bezierCircle = 0.5522847498
)

// Generate emits the untransformed tiling for cfg over a width x height
// surface. Unknown families and non-positive cell sizes produce nothing.
func Generate(cfg pattern.Config, width, height float64) []DrawCommand {
	var l DisplayList
	generate(&l, cfg, width, height)
	return l.Commands()
}

func generate(l *DisplayList, cfg pattern.Config, width, height float64) {
	if cfg.Size <= 0 || cfg.Spacing < 0 {
		return
	}

	switch cfg.Family {
	case pattern.FamilyGrid:
		drawGrid(l, cfg, width, height)
	case pattern.FamilyHexagon:
		drawHexagons(l, cfg, width, height)
	case pattern.FamilyCircles:
		drawCircles(l, cfg, width, height)
	case pattern.FamilyWaves:
		drawWaves(l, cfg, width, height)
	case pattern.FamilyTriangles:
		drawTriangles(l, cfg, width, height)
	case pattern.FamilyStars:
		drawStars(l, cfg, width, height)
	case pattern.FamilyDiamonds:
		drawDiamonds(l, cfg, width, height)
	case pattern.FamilySpirals:
		drawSpirals(l, cfg, width, height)
	}
}

// parityColor picks color1 where (x + y) is a multiple of twice the step.
func parityColor(cfg pattern.Config, x, y, step float64) pattern.Color {
	if math.Mod(x+y, step*2) == 0 {
		return cfg.Color1
	}
	return cfg.Color2
}

func drawGrid(l *DisplayList, cfg pattern.Config, width, height float64) {
	step := cfg.Step()
	for x := 0.0; x < width; x += step {
		for y := 0.0; y < height; y += step {
			l.fill(rectPath(x, y, cfg.Size, cfg.Size), parityColor(cfg, x, y, step), cfg.StrokeWidth)
		}
	}
}

func rectPath(x, y, w, h float64) []PathCommand {
	return []PathCommand{
		moveTo(x, y),
		lineTo(x+w, y),
		lineTo(x+w, y+h),
		lineTo(x, y+h),
		closePath(),
	}
}

// drawHexagons lays hexagons out in row pairs: color1 on the first row,
// color2 one row height plus spacing below it. Odd row pairs shift right by
// half a step.
func drawHexagons(l *DisplayList, cfg pattern.Config, width, height float64) {
	radius := cfg.Size / 2
	rowHeight := radius * math.Sqrt(3)
	step := radius*3/2 + cfg.Spacing
	pitch := rowHeight*2 + cfg.Spacing

	for x := 0.0; x < width+radius; x += step {
		row := 0
		for y := 0.0; y < height+rowHeight; y += pitch {
			offsetX := 0.0
			if row%2 == 1 {
				offsetX = step / 2
			}
			l.fill(hexagonPath(x+offsetX, y, radius), cfg.Color1, cfg.StrokeWidth)
			l.fill(hexagonPath(x+offsetX, y+rowHeight+cfg.Spacing, radius), cfg.Color2, cfg.StrokeWidth)
			row++
		}
	}
}

func hexagonPath(cx, cy, radius float64) []PathCommand {
	path := make([]PathCommand, 0, 7)
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3 * float64(i)
		hx := cx + radius*math.Cos(angle)
		hy := cy + radius*math.Sin(angle)
		if i == 0 {
			path = append(path, moveTo(hx, hy))
		} else {
			path = append(path, lineTo(hx, hy))
		}
	}
	return append(path, closePath())
}

func drawCircles(l *DisplayList, cfg pattern.Config, width, height float64) {
	step := cfg.Step()
	radius := cfg.Size / 2

	for x := radius; x < width; x += step {
		for y := radius; y < height; y += step {
			l.fill(circlePath(x, y, radius), parityColor(cfg, x, y, step), cfg.StrokeWidth)
		}
	}
}

// circlePath approximates a circle with four cubic Béziers.
func circlePath(cx, cy, r float64) []PathCommand {
	k := r * bezierCircle
	return []PathCommand{
		moveTo(cx+r, cy),
		cubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r),
		cubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy),
		cubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r),
		cubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy),
		closePath(),
	}
}

// drawWaves strokes a sine line in color1 and a cosine line in color2 per
// band. Both start with a moveTo at x = 0 on the band's baseline.
func drawWaves(l *DisplayList, cfg pattern.Config, width, height float64) {
	amplitude := cfg.Size / 2
	wavelength := cfg.Size + cfg.Spacing

	for y := 0.0; y < height; y += amplitude*2 + cfg.Spacing {
		sine := []PathCommand{moveTo(0, y)}
		for x := 0.0; x <= width; x += waveSampleStep {
			sine = append(sine, lineTo(x, y+amplitude*math.Sin(x/wavelength*math.Pi*2)))
		}
		l.stroke(sine, cfg.Color1, cfg.StrokeWidth)

		base := y + amplitude + cfg.Spacing/2
		cosine := []PathCommand{moveTo(0, base)}
		for x := 0.0; x <= width; x += waveSampleStep {
			cosine = append(cosine, lineTo(x, base+amplitude*math.Cos(x/wavelength*math.Pi*2)))
		}
		l.stroke(cosine, cfg.Color2, cfg.StrokeWidth)
	}
}

// drawTriangles alternates up (color1) and down (color2) triangles on the
// parity of the column and row indices.
func drawTriangles(l *DisplayList, cfg pattern.Config, width, height float64) {
	step := cfg.Step()
	triHeight := cfg.Size * math.Sqrt(3) / 2
	size := cfg.Size

	for i, x := 0, 0.0; x < width; i, x = i+1, x+step {
		for j, y := 0, 0.0; y < height; j, y = j+1, y+triHeight+cfg.Spacing {
			if (i+j)%2 == 0 {
				l.fill([]PathCommand{
					moveTo(x+size/2, y),
					lineTo(x, y+triHeight),
					lineTo(x+size, y+triHeight),
					closePath(),
				}, cfg.Color1, cfg.StrokeWidth)
			} else {
				l.fill([]PathCommand{
					moveTo(x, y),
					lineTo(x+size, y),
					lineTo(x+size/2, y+triHeight),
					closePath(),
				}, cfg.Color2, cfg.StrokeWidth)
			}
		}
	}
}

func drawStars(l *DisplayList, cfg pattern.Config, width, height float64) {
	step := cfg.Step()
	outer := cfg.Size / 2
	inner := outer / starInnerRatio

	for x := outer; x < width; x += step {
		for y := outer; y < height; y += step {
			l.fill(starPath(x, y, starSpikes, outer, inner), parityColor(cfg, x, y, step), cfg.StrokeWidth)
		}
	}
}

// starPath walks outer and inner vertices alternately, starting at the top.
func starPath(cx, cy float64, spikes int, outer, inner float64) []PathCommand {
	rot := math.Pi / 2 * 3
	step := math.Pi / float64(spikes)

	path := make([]PathCommand, 0, spikes*2+3)
	path = append(path, moveTo(cx, cy-outer))
	for i := 0; i < spikes; i++ {
		path = append(path, lineTo(cx+math.Cos(rot)*outer, cy+math.Sin(rot)*outer))
		rot += step
		path = append(path, lineTo(cx+math.Cos(rot)*inner, cy+math.Sin(rot)*inner))
		rot += step
	}
	return append(path, lineTo(cx, cy-outer), closePath())
}

func drawDiamonds(l *DisplayList, cfg pattern.Config, width, height float64) {
	step := cfg.Step()
	s := cfg.Size

	for x := 0.0; x < width; x += step {
		for y := 0.0; y < height; y += step {
			l.fill([]PathCommand{
				moveTo(x+s/2, y),
				lineTo(x+s, y+s/2),
				lineTo(x+s/2, y+s),
				lineTo(x, y+s/2),
				closePath(),
			}, parityColor(cfg, x, y, step), cfg.StrokeWidth)
		}
	}
}

func drawSpirals(l *DisplayList, cfg pattern.Config, width, height float64) {
	step := cfg.Step()
	maxRadius := cfg.Size / 2

	for x := cfg.Size / 2; x < width; x += step {
		for y := cfg.Size / 2; y < height; y += step {
			l.stroke(spiralPath(x, y, maxRadius), parityColor(cfg, x, y, step), cfg.StrokeWidth)
		}
	}
}

// spiralPath samples an Archimedean spiral whose radius grows linearly from
// zero to maxRadius over spiralTurns full turns.
func spiralPath(cx, cy, maxRadius float64) []PathCommand {
	sweep := spiralTurns * math.Pi * 2
	var path []PathCommand
	for i := 0; ; i++ {
		angle := float64(i) * spiralStep
		if angle >= sweep {
			break
		}
		radius := angle / sweep * maxRadius
		sx := cx + radius*math.Cos(angle)
		sy := cy + radius*math.Sin(angle)
		if i == 0 {
			path = append(path, moveTo(sx, sy))
		} else {
			path = append(path, lineTo(sx, sy))
		}
	}
	return path
}
