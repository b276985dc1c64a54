package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/swiv/internal/pixel"
)

// RGBAColor is a colour with 8-bit components including alpha.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor is a colour in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult describes one sampled pixel in several notations.
type ColorResult struct {
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Hex  string    `json:"hex"` // "#RRGGBB", alpha omitted
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`
}

// SampleColor reads the pixel at (x, y) of a packed width x height buffer,
// such as the output of Composite.
func SampleColor(buf []uint32, width, height, x, y int) (*ColorResult, error) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return nil, fmt.Errorf("coordinates (%d,%d) outside %dx%d surface", x, y, width, height)
	}
	i := y*width + x
	if i >= len(buf) {
		return nil, fmt.Errorf("coordinates (%d,%d) beyond buffer of %d pixels", x, y, len(buf))
	}

	p := pixel.FromARGB(buf[i])
	c := colorful.Color{
		R: float64(p.R()) / 255,
		G: float64(p.G()) / 255,
		B: float64(p.B()) / 255,
	}
	h, s, l := c.Hsl()

	return &ColorResult{
		X:    x,
		Y:    y,
		Hex:  fmt.Sprintf("#%02X%02X%02X", p.R(), p.G(), p.B()),
		RGBA: RGBAColor{R: p.R(), G: p.G(), B: p.B(), A: p.A()},
		HSL:  HSLColor{H: int(h) % 360, S: int(s*100 + 0.5), L: int(l*100 + 0.5)},
	}, nil
}
