// Package pixel defines the ARGB pixel value used throughout the viewer and the
// small set of per-pixel operations the render pipeline is built from.
package pixel

import (
	"image/color"
	"math"
)

// Common packed colours.
const (
	White uint32 = 0xFFFFFFFF
	Black uint32 = 0xFF000000
	Gray  uint32 = 0xFF808080
)

// Pixel is an immutable 8-bit-per-channel ARGB value.
//
// The packed form is computed once at construction so render loops can copy it
// straight into a frame buffer.
type Pixel struct {
	a, r, g, b uint8
	argb       uint32
}

// New builds a pixel from its four channels.
func New(a, r, g, b uint8) Pixel {
	return Pixel{a: a, r: r, g: g, b: b, argb: Pack(a, r, g, b)}
}

// RGB builds a fully opaque pixel.
func RGB(r, g, b uint8) Pixel {
	return New(0xFF, r, g, b)
}

// FromARGB unpacks a 32-bit ARGB value.
func FromARGB(argb uint32) Pixel {
	return Pixel{
		a:    uint8(argb >> 24),
		r:    uint8(argb >> 16),
		g:    uint8(argb >> 8),
		b:    uint8(argb),
		argb: argb,
	}
}

// Pack concatenates the channels into a single ARGB word.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func (p Pixel) A() uint8 { return p.a }
func (p Pixel) R() uint8 { return p.r }
func (p Pixel) G() uint8 { return p.g }
func (p Pixel) B() uint8 { return p.b }

// ARGB returns the packed value.
func (p Pixel) ARGB() uint32 { return p.argb }

// NRGBA converts to the standard library's non-premultiplied colour.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.r, G: p.g, B: p.b, A: p.a}
}

// FromNRGBA is the inverse of NRGBA.
func FromNRGBA(c color.NRGBA) Pixel {
	return New(c.A, c.R, c.G, c.B)
}

// Blend linearly interpolates every channel towards other. A weight of 0
// returns p, 1 returns other; results are rounded to the nearest integer.
func (p Pixel) Blend(other Pixel, weight float32) Pixel {
	return New(
		lerp(p.a, other.a, weight),
		lerp(p.r, other.r, weight),
		lerp(p.g, other.g, weight),
		lerp(p.b, other.b, weight),
	)
}

func lerp(a, b uint8, weight float32) uint8 {
	v := float64(float32(a)*(1-weight) + float32(b)*weight)
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
