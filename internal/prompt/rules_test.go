package prompt

import (
	"reflect"
	"testing"

	"github.com/patternmaker/patternmaker/internal/pattern"
)

func famPtr(f pattern.Family) *pattern.Family { return &f }
func numPtr(v float64) *float64              { return &v }
func colPtr(c pattern.Color) *pattern.Color  { return &c }

func TestParseScenarios(t *testing.T) {
	tests := []struct {
		prompt string
		want   pattern.Delta
	}{
		{
			prompt: "large blue hexagons with tight spacing",
			want: pattern.Delta{
				Family:  famPtr(pattern.FamilyHexagon),
				Size:    numPtr(80),
				Spacing: numPtr(2),
				Color2:  colPtr("#0000FF"),
			},
		},
		{
			prompt: "red stars rotated 45 degrees",
			want: pattern.Delta{
				Family:   famPtr(pattern.FamilyStars),
				Color1:   colPtr("#FF0000"),
				Rotation: numPtr(45),
			},
		},
		{
			prompt: "green and red thin grid",
			want: pattern.Delta{
				Family:      famPtr(pattern.FamilyGrid),
				Color1:      colPtr("#FF0000"),
				Color2:      colPtr("#00FF00"),
				StrokeWidth: numPtr(1),
			},
		},
		{
			prompt: "GREEN Waves",
			want: pattern.Delta{
				Family: famPtr(pattern.FamilyWaves),
				Color1: colPtr("#00FF00"),
			},
		},
		{
			prompt: "an abstract mood",
			want:   pattern.Delta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			got := Parse(tt.prompt)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %s, got %s", describe(tt.want), describe(got))
			}
		})
	}
}

func TestParseOrdering(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		check  func(pattern.Delta) bool
	}{
		{
			name:   "first family rule wins",
			prompt: "stars on a grid",
			check:  func(d pattern.Delta) bool { return *d.Family == pattern.FamilyGrid },
		},
		{
			name:   "first size rule wins",
			prompt: "small but also large",
			check:  func(d pattern.Delta) bool { return *d.Size == 30 },
		},
		{
			name:   "first stroke rule wins",
			prompt: "thin and thick",
			check:  func(d pattern.Delta) bool { return *d.StrokeWidth == 4 },
		},
		{
			name:   "later color overwrites earlier",
			prompt: "red then yellow",
			check:  func(d pattern.Delta) bool { return *d.Color1 == "#FFD700" },
		},
		{
			name:   "black is checked last",
			prompt: "pink and black",
			check:  func(d pattern.Delta) bool { return *d.Color1 == "#000000" },
		},
		{
			name:   "diagonal rotates",
			prompt: "diagonal diamonds",
			check: func(d pattern.Delta) bool {
				return *d.Rotation == 45 && *d.Family == pattern.FamilyDiamonds
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.prompt); !tt.check(got) {
				t.Errorf("unexpected delta %s", describe(got))
			}
		})
	}
}

func TestRuleTableValuesAreValid(t *testing.T) {
	base := pattern.Default()
	for i, r := range Rules {
		var d pattern.Delta
		r.apply(&d)
		if d.IsEmpty() {
			t.Errorf("rule %d (%s) writes nothing", i, r.Field)
			continue
		}
		if err := base.Apply(d).Validate(); err != nil {
			t.Errorf("rule %d (%s) yields invalid config: %v", i, r.Field, err)
		}
	}
}

func TestRuleMatches(t *testing.T) {
	r := Rule{Keywords: []string{"green"}, With: "red", Without: "blue"}
	tests := map[string]bool{
		"green":          false,
		"green red":      true,
		"green red blue": false,
		"red":            false,
	}
	for text, want := range tests {
		if got := r.Matches(text); got != want {
			t.Errorf("Matches(%q): expected %v, got %v", text, want, got)
		}
	}
}

func describe(d pattern.Delta) string {
	s := "{"
	if d.Family != nil {
		s += " type=" + string(*d.Family)
	}
	if d.Size != nil {
		s += " size=" + ftoa(*d.Size)
	}
	if d.Spacing != nil {
		s += " spacing=" + ftoa(*d.Spacing)
	}
	if d.Color1 != nil {
		s += " color1=" + string(*d.Color1)
	}
	if d.Color2 != nil {
		s += " color2=" + string(*d.Color2)
	}
	if d.StrokeWidth != nil {
		s += " strokeWidth=" + ftoa(*d.StrokeWidth)
	}
	if d.Rotation != nil {
		s += " rotation=" + ftoa(*d.Rotation)
	}
	if d.Scale != nil {
		s += " scale=" + ftoa(*d.Scale)
	}
	return s + " }"
}
