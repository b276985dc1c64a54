package render

// Frame is the logical canvas: the resampled image before it is placed on
// the display surface. Buffer holds Width*Height packed ARGB pixels,
// row-major.
//
// Resample is the only writer of Buffer contents; Resize only changes shape.
type Frame struct {
	Width      int
	Height     int
	Background uint32
	Buffer     []uint32
}

// NewFrame returns a frame of the given size filled with background.
func NewFrame(width, height int, background uint32) *Frame {
	f := &Frame{Background: background}
	f.Resize(width, height)
	return f
}

// Resize changes the frame's dimensions. Existing buffer contents are kept
// up to the new length and any new cells are filled with the background.
// It reports whether anything changed; resizing to the current shape is a
// no-op. Negative sizes are treated as 0.
func (f *Frame) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	n := width * height
	if width == f.Width && height == f.Height && len(f.Buffer) == n {
		return false
	}

	buf := make([]uint32, n)
	kept := copy(buf, f.Buffer)
	for i := kept; i < n; i++ {
		buf[i] = f.Background
	}

	f.Width, f.Height, f.Buffer = width, height, buf
	return true
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c uint32) {
	for i := range f.Buffer {
		f.Buffer[i] = c
	}
}

// At returns the pixel at (x, y), or the background when out of range.
func (f *Frame) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return f.Background
	}
	i := y*f.Width + x
	if i >= len(f.Buffer) {
		return f.Background
	}
	return f.Buffer[i]
}
