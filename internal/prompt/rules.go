package prompt

import (
	"strings"

	"github.com/patternmaker/patternmaker/internal/pattern"
)

// Field names the config field a rule writes.
type Field string

const (
	FieldFamily      Field = "type"
	FieldSize        Field = "size"
	FieldSpacing     Field = "spacing"
	FieldColor1      Field = "color1"
	FieldColor2      Field = "color2"
	FieldRotation    Field = "rotation"
	FieldStrokeWidth Field = "strokeWidth"
)

// firstMatchWins reports whether later rules for the field are skipped once
// one has matched. Color rules all apply in table order, so a later color
// overwrites an earlier one in the same slot.
func (f Field) firstMatchWins() bool {
	return f != FieldColor1 && f != FieldColor2
}

// Value holds whichever of the three value kinds the rule's Field takes.
type Value struct {
	Family pattern.Family
	Number float64
	Color  pattern.Color
}

// Rule matches when any of Keywords occurs in the lower-cased prompt, With
// (if set) also occurs, and Without (if set) does not.
type Rule struct {
	Field    Field
	Keywords []string
	With     string
	Without  string
	Value    Value
}

// Matches tests the rule against already lower-cased text.
func (r Rule) Matches(text string) bool {
	if r.With != "" && !strings.Contains(text, r.With) {
		return false
	}
	if r.Without != "" && strings.Contains(text, r.Without) {
		return false
	}
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func (r Rule) apply(d *pattern.Delta) {
	switch r.Field {
	case FieldFamily:
		f := r.Value.Family
		d.Family = &f
	case FieldSize:
		v := r.Value.Number
		d.Size = &v
	case FieldSpacing:
		v := r.Value.Number
		d.Spacing = &v
	case FieldColor1:
		c := r.Value.Color
		d.Color1 = &c
	case FieldColor2:
		c := r.Value.Color
		d.Color2 = &c
	case FieldRotation:
		v := r.Value.Number
		d.Rotation = &v
	case FieldStrokeWidth:
		v := r.Value.Number
		d.StrokeWidth = &v
	}
}

func family(f pattern.Family) Value { return Value{Family: f} }
func number(v float64) Value        { return Value{Number: v} }
func color(c pattern.Color) Value   { return Value{Color: c} }

// Rules is the keyword table. Order is behaviour: within a first-match
// field the earliest matching rule wins, and color rules overwrite in order.
var Rules = []Rule{
	{Field: FieldFamily, Keywords: []string{"grid", "square"}, Value: family(pattern.FamilyGrid)},
	{Field: FieldFamily, Keywords: []string{"hex"}, Value: family(pattern.FamilyHexagon)},
	{Field: FieldFamily, Keywords: []string{"circle", "dot"}, Value: family(pattern.FamilyCircles)},
	{Field: FieldFamily, Keywords: []string{"wave", "wavy"}, Value: family(pattern.FamilyWaves)},
	{Field: FieldFamily, Keywords: []string{"triangle"}, Value: family(pattern.FamilyTriangles)},
	{Field: FieldFamily, Keywords: []string{"star"}, Value: family(pattern.FamilyStars)},
	{Field: FieldFamily, Keywords: []string{"diamond"}, Value: family(pattern.FamilyDiamonds)},
	{Field: FieldFamily, Keywords: []string{"spiral"}, Value: family(pattern.FamilySpirals)},

	{Field: FieldSize, Keywords: []string{"small"}, Value: number(30)},
	{Field: FieldSize, Keywords: []string{"large", "big"}, Value: number(80)},
	{Field: FieldSize, Keywords: []string{"medium"}, Value: number(50)},

	{Field: FieldSpacing, Keywords: []string{"tight", "close"}, Value: number(2)},
	{Field: FieldSpacing, Keywords: []string{"loose", "far"}, Value: number(20)},

	{Field: FieldColor1, Keywords: []string{"red"}, Value: color("#FF0000")},
	{Field: FieldColor2, Keywords: []string{"blue"}, Value: color("#0000FF")},
	{Field: FieldColor2, Keywords: []string{"green"}, With: "red", Value: color("#00FF00")},
	{Field: FieldColor1, Keywords: []string{"green"}, Without: "red", Value: color("#00FF00")},
	{Field: FieldColor1, Keywords: []string{"yellow"}, Value: color("#FFD700")},
	{Field: FieldColor1, Keywords: []string{"purple"}, Value: color("#9B59B6")},
	{Field: FieldColor1, Keywords: []string{"orange"}, Value: color("#FF8C00")},
	{Field: FieldColor1, Keywords: []string{"pink"}, Value: color("#FF69B4")},
	{Field: FieldColor1, Keywords: []string{"black"}, Value: color("#000000")},

	{Field: FieldRotation, Keywords: []string{"rotate", "diagonal"}, Value: number(45)},

	{Field: FieldStrokeWidth, Keywords: []string{"thick"}, Value: number(4)},
	{Field: FieldStrokeWidth, Keywords: []string{"thin"}, Value: number(1)},
}

// Parse maps a prompt onto a partial config using Rules. Fields no rule
// matched stay nil.
func Parse(text string) pattern.Delta {
	lower := strings.ToLower(text)

	var d pattern.Delta
	matched := make(map[Field]bool)
	for _, r := range Rules {
		if r.Field.firstMatchWins() && matched[r.Field] {
			continue
		}
		if !r.Matches(lower) {
			continue
		}
		r.apply(&d)
		matched[r.Field] = true
	}
	return d
}
