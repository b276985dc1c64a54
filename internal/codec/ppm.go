package codec

import (
	"strconv"

	"github.com/ironsheep/swiv/internal/imaging"
	"github.com/ironsheep/swiv/internal/pixel"
)

const (
	ppmMagic    = "P6"
	ppmMaxValue = 255
)

// headerScanner splits a netpbm header into whitespace-delimited tokens,
// skipping '#' comments through the end of their line.
type headerScanner struct {
	data []byte
	pos  int
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// next returns the next token and consumes the single whitespace byte that
// terminates it.
func (s *headerScanner) next() (string, bool) {
	start := -1
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		switch {
		case c == '#':
			if start >= 0 {
				return string(s.data[start:s.pos]), true
			}
			s.skipLine()
		case isSpace(c):
			s.pos++
			if start >= 0 {
				return string(s.data[start : s.pos-1]), true
			}
		default:
			if start < 0 {
				start = s.pos
			}
			s.pos++
		}
	}
	if start >= 0 {
		return string(s.data[start:]), true
	}
	return "", false
}

func (s *headerScanner) skipLine() {
	for s.pos < len(s.data) && s.data[s.pos] != '\n' {
		s.pos++
	}
}

func (s *headerScanner) nextInt(field string) (int, error) {
	tok, ok := s.next()
	if !ok {
		return 0, formatErr("ppm", ErrTruncated, "missing %s", field)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, formatErr("ppm", ErrMalformed, "invalid %s %q", field, tok)
	}
	return n, nil
}

// DecodePPM decodes a binary PPM ("P6") with a max channel value of 255.
// The raster that follows the header must be exactly width*height R,G,B
// triplets; decoded pixels are fully opaque.
func DecodePPM(data []byte) (*imaging.Image, error) {
	s := &headerScanner{data: data}

	magic, ok := s.next()
	if !ok {
		return nil, formatErr("ppm", ErrTruncated, "empty file")
	}
	if magic != ppmMagic {
		return nil, formatErr("ppm", ErrMagic, "got %q, want %q", magic, ppmMagic)
	}

	width, err := s.nextInt("width")
	if err != nil {
		return nil, err
	}
	height, err := s.nextInt("height")
	if err != nil {
		return nil, err
	}
	maxValue, err := s.nextInt("max channel value")
	if err != nil {
		return nil, err
	}

	if width <= 0 || height <= 0 {
		return nil, formatErr("ppm", ErrDimensions, "%dx%d", width, height)
	}
	if maxValue != ppmMaxValue {
		return nil, formatErr("ppm", ErrUnsupported, "max channel value %d, only %d is supported", maxValue, ppmMaxValue)
	}

	raster := data[s.pos:]
	have := int64(len(raster))
	if int64(width) > have || int64(height) > have {
		return nil, formatErr("ppm", ErrTruncated, "%dx%d raster cannot fit in %d bytes", width, height, have)
	}
	need := int64(width) * int64(height) * 3
	switch {
	case have < need:
		return nil, formatErr("ppm", ErrTruncated, "raster needs %d bytes, %d available", need, have)
	case have > need:
		return nil, formatErr("ppm", ErrPixelCount, "raster has %d bytes, %dx%d needs %d", have, width, height, need)
	}

	pixels := make([]pixel.Pixel, width*height)
	for i := range pixels {
		rgb := raster[i*3 : i*3+3]
		pixels[i] = pixel.RGB(rgb[0], rgb[1], rgb[2])
	}

	return imaging.New(width, height, pixels)
}
