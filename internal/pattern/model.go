package pattern

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrUnknownFamily = errors.New("unknown pattern family")
	ErrOutOfRange    = errors.New("value out of range")
)

type Family string

const (
	FamilyGrid      Family = "grid"
	FamilyHexagon   Family = "hexagon"
	FamilyCircles   Family = "circles"
	FamilyWaves     Family = "waves"
	FamilyTriangles Family = "triangles"
	FamilyStars     Family = "stars"
	FamilyDiamonds  Family = "diamonds"
	FamilySpirals   Family = "spirals"
)

// Families lists every family in selector order.
var Families = []Family{
	FamilyGrid,
	FamilyHexagon,
	FamilyCircles,
	FamilyWaves,
	FamilyTriangles,
	FamilyStars,
	FamilyDiamonds,
	FamilySpirals,
}

// ParseFamily resolves a family name case-insensitively.
func ParseFamily(s string) (Family, error) {
	name := Family(strings.ToLower(strings.TrimSpace(s)))
	for _, f := range Families {
		if f == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// Control bounds, as exposed by the input controls.
const (
	MinSize        = 20.0
	MaxSize        = 100.0
	MinSpacing     = 0.0
	MaxSpacing     = 30.0
	MinStrokeWidth = 0.5
	MaxStrokeWidth = 5.0
	StrokeStep     = 0.5
	MinRotation    = 0.0
	MaxRotation    = 360.0
	MinScale       = 0.5
	MaxScale       = 2.0
)

// Config is the full parameter set for one rendered frame. A Config is a
// value: edits produce a new Config through Apply, never partial mutation.
type Config struct {
	Family      Family  `json:"type"`
	Size        float64 `json:"size"`
	Spacing     float64 `json:"spacing"`
	Color1      Color   `json:"color1"`
	Color2      Color   `json:"color2"`
	StrokeWidth float64 `json:"strokeWidth"`
	Rotation    float64 `json:"rotation"`
	Scale       float64 `json:"scale"`
}

// Default returns the startup configuration.
func Default() Config {
	return Config{
		Family:      FamilyGrid,
		Size:        50,
		Spacing:     10,
		Color1:      "#FF6B6B",
		Color2:      "#4ECDC4",
		StrokeWidth: 2,
		Rotation:    0,
		Scale:       1,
	}
}

// Step is the repeat distance between adjacent tiles.
func (c Config) Step() float64 {
	return c.Size + c.Spacing
}

// Delta is a partial Config. Nil fields are left untouched by Apply.
type Delta struct {
	Family      *Family  `json:"type,omitempty"`
	Size        *float64 `json:"size,omitempty"`
	Spacing     *float64 `json:"spacing,omitempty"`
	Color1      *Color   `json:"color1,omitempty"`
	Color2      *Color   `json:"color2,omitempty"`
	StrokeWidth *float64 `json:"strokeWidth,omitempty"`
	Rotation    *float64 `json:"rotation,omitempty"`
	Scale       *float64 `json:"scale,omitempty"`
}

// IsEmpty reports whether the delta changes nothing.
func (d Delta) IsEmpty() bool {
	return d == Delta{}
}

// Apply returns c with every non-nil field of d copied over it.
func (c Config) Apply(d Delta) Config {
	if d.Family != nil {
		c.Family = *d.Family
	}
	if d.Size != nil {
		c.Size = *d.Size
	}
	if d.Spacing != nil {
		c.Spacing = *d.Spacing
	}
	if d.Color1 != nil {
		c.Color1 = *d.Color1
	}
	if d.Color2 != nil {
		c.Color2 = *d.Color2
	}
	if d.StrokeWidth != nil {
		c.StrokeWidth = *d.StrokeWidth
	}
	if d.Rotation != nil {
		c.Rotation = *d.Rotation
	}
	if d.Scale != nil {
		c.Scale = *d.Scale
	}
	return c
}

// Validate checks every field against the control bounds and returns all
// violations joined together.
func (c Config) Validate() error {
	var errs []error

	if _, err := ParseFamily(string(c.Family)); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs,
		checkRange("size", c.Size, MinSize, MaxSize),
		checkRange("spacing", c.Spacing, MinSpacing, MaxSpacing),
		checkRange("strokeWidth", c.StrokeWidth, MinStrokeWidth, MaxStrokeWidth),
		checkRange("rotation", c.Rotation, MinRotation, MaxRotation),
		checkRange("scale", c.Scale, MinScale, MaxScale),
	)
	if _, err := ParseColor(string(c.Color1)); err != nil {
		errs = append(errs, fmt.Errorf("color1: %w", err))
	}
	if _, err := ParseColor(string(c.Color2)); err != nil {
		errs = append(errs, fmt.Errorf("color2: %w", err))
	}

	return errors.Join(errs...)
}

func checkRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%s %v not in [%v, %v]: %w", field, v, lo, hi, ErrOutOfRange)
	}
	return nil
}

// Clamp pulls every numeric field back into the control bounds. Rotation is
// normalised into [0, 360) and stroke width snapped to its slider step.
// Unknown families and unparsable colors fall back to the defaults.
func (c Config) Clamp() Config {
	def := Default()

	if _, err := ParseFamily(string(c.Family)); err != nil {
		c.Family = def.Family
	} else {
		c.Family = Family(strings.ToLower(string(c.Family)))
	}
	if col, err := ParseColor(string(c.Color1)); err == nil {
		c.Color1 = col
	} else {
		c.Color1 = def.Color1
	}
	if col, err := ParseColor(string(c.Color2)); err == nil {
		c.Color2 = col
	} else {
		c.Color2 = def.Color2
	}

	c.Size = clampFloat(c.Size, MinSize, MaxSize, def.Size)
	c.Spacing = clampFloat(c.Spacing, MinSpacing, MaxSpacing, def.Spacing)
	c.StrokeWidth = clampFloat(math.Round(c.StrokeWidth/StrokeStep)*StrokeStep, MinStrokeWidth, MaxStrokeWidth, def.StrokeWidth)
	c.Scale = clampFloat(c.Scale, MinScale, MaxScale, def.Scale)

	if math.IsNaN(c.Rotation) || math.IsInf(c.Rotation, 0) {
		c.Rotation = def.Rotation
	}
	c.Rotation = math.Mod(c.Rotation, 360)
	if c.Rotation < 0 {
		c.Rotation += 360
	}

	return c
}

func clampFloat(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Max(lo, math.Min(hi, v))
}
