package pixel

// Transform maps one pixel to another. Transforms never touch alpha.
type Transform func(Pixel) Pixel

// Pipeline is an ordered list of transforms applied left to right.
type Pipeline []Transform

// Apply runs p through every transform in order.
func (pl Pipeline) Apply(p Pixel) Pixel {
	for _, t := range pl {
		p = t(p)
	}
	return p
}

// Grayscale replaces every colour channel with the pixel's luma
// (0.299 R + 0.587 G + 0.114 B), truncated.
func Grayscale(p Pixel) Pixel {
	luma := 0.299*float32(p.r) + 0.587*float32(p.g) + 0.114*float32(p.b)
	gray := uint8(luma)
	return New(p.a, gray, gray, gray)
}

// Invert flips each colour channel (255 - c).
func Invert(p Pixel) Pixel {
	return New(p.a, 255-p.r, 255-p.g, 255-p.b)
}
