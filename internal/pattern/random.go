package pattern

import "math/rand/v2"

// Palette is the set of colors Random draws from.
var Palette = []Color{
	"#FF6B6B",
	"#4ECDC4",
	"#45B7D1",
	"#F7DC6F",
	"#BB8FCE",
	"#85C1E2",
	"#F8B739",
	"#52B788",
}

// Random returns a fresh configuration drawn from the ranges the randomize
// control uses. Every result passes Validate.
func Random(rng *rand.Rand) Config {
	return Config{
		Family:      Families[rng.IntN(len(Families))],
		Size:        float64(rng.IntN(60) + 30),
		Spacing:     float64(rng.IntN(20) + 5),
		Color1:      Palette[rng.IntN(len(Palette))],
		Color2:      Palette[rng.IntN(len(Palette))],
		StrokeWidth: float64(rng.IntN(3) + 1),
		Rotation:    float64(rng.IntN(360)),
		Scale:       rng.Float64()*0.5 + 0.75,
	}
}

// NewRand returns a PCG source seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
