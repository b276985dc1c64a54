package toolbar

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Coverage is one rasterized pixel of a glyph run. Value is in [0, 1].
type Coverage struct {
	X, Y  int
	Value float64
}

// Rasterizer turns text into per-pixel coverage. Origin is the top-left
// corner of the text's line box; size is the em height in pixels.
type Rasterizer interface {
	RenderGlyphs(text string, size float64, origin image.Point) []Coverage
}

// FontRasterizer rasterizes with an OpenType font at 72 DPI, so one point
// equals one pixel. Faces are cached per size.
type FontRasterizer struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontRasterizer parses the given OpenType/TrueType data. Nil data
// selects the bundled Go Regular font.
func NewFontRasterizer(data []byte) (*FontRasterizer, error) {
	if data == nil {
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontRasterizer{font: f, faces: make(map[float64]font.Face)}, nil
}

func (r *FontRasterizer) face(size float64) (font.Face, error) {
	if face, ok := r.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	r.faces[size] = face
	return face, nil
}

// RenderGlyphs lays text out on a single line and returns every pixel with
// non-zero coverage. An unusable size yields nil.
func (r *FontRasterizer) RenderGlyphs(text string, size float64, origin image.Point) []Coverage {
	if size <= 0 {
		return nil
	}
	face, err := r.face(size)
	if err != nil {
		return nil
	}

	dot := fixed.P(origin.X, origin.Y)
	dot.Y += face.Metrics().Ascent

	var out []Coverage
	prev := rune(-1)
	for _, ch := range text {
		if prev >= 0 {
			dot.X += face.Kern(prev, ch)
		}
		prev = ch

		dr, mask, maskp, advance, ok := face.Glyph(dot, ch)
		if !ok {
			continue
		}
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			for x := dr.Min.X; x < dr.Max.X; x++ {
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				if a == 0 {
					continue
				}
				out = append(out, Coverage{X: x, Y: y, Value: float64(a) / 0xFFFF})
			}
		}
		dot.X += advance
	}
	return out
}

// Close releases the cached faces.
func (r *FontRasterizer) Close() error {
	for size, face := range r.faces {
		face.Close()
		delete(r.faces, size)
	}
	return nil
}
