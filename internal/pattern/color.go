package pattern

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidColor = errors.New("invalid color")

// Color is a "#RRGGBB" hex string, upper case once normalised.
type Color string

// ParseColor accepts "#rgb" or "#rrggbb" in any case and returns the
// normalised upper-case six digit form.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	return Color(strings.ToUpper(c.Hex())), nil
}

// RGBA converts the color for raster surfaces. Unparsable values render
// as opaque black.
func (c Color) RGBA() color.RGBA {
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b := cc.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func (c Color) String() string {
	return string(c)
}
