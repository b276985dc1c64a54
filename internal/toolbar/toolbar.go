// Package toolbar draws the strip along the bottom edge of the viewer window.
//
// The strip holds a single toggle button in its left 40x40 corner with a
// caption next to it. It owns its own packed ARGB buffer, which the
// compositor copies onto the surface as-is.
package toolbar

import (
	"image"

	"github.com/ironsheep/swiv/internal/pixel"
)

// Height is the fixed strip height in pixels.
const Height = 40

const (
	buttonSize  = 40
	buttonInset = 5

	captionX    = 50
	captionY    = 5
	captionSize = 24

	captionPressed  = "Inverted"
	captionReleased = "Normal"
)

var (
	stripColor   = pixel.FromARGB(pixel.White)
	hoverColor   = pixel.FromARGB(pixel.Gray)
	pressedColor = pixel.FromARGB(pixel.Black)
	captionColor = pixel.FromARGB(pixel.Black)
)

// Toolbar is the strip buffer plus the button's toggle state. The buffer
// always holds Width()*Height pixels.
type Toolbar struct {
	width      int
	buffer     []uint32
	pressed    bool
	rasterizer Rasterizer
}

// New returns a white strip of the given width. A nil rasterizer draws no
// captions.
func New(width int, rasterizer Rasterizer) *Toolbar {
	tb := &Toolbar{rasterizer: rasterizer}
	tb.Update(width)
	return tb
}

// Width returns the strip width in pixels.
func (tb *Toolbar) Width() int { return tb.width }

// Buffer returns the strip pixels. The slice is owned by the toolbar and is
// replaced by Update.
func (tb *Toolbar) Buffer() []uint32 { return tb.buffer }

// Pressed reports whether the button is toggled on.
func (tb *Toolbar) Pressed() bool { return tb.pressed }

// Caption returns the label for the current button state.
func (tb *Toolbar) Caption() string {
	if tb.pressed {
		return captionPressed
	}
	return captionReleased
}

// Update reallocates the strip for a new width, filled white. The button
// state is kept but nothing is drawn; call Reset or Repaint afterwards.
func (tb *Toolbar) Update(width int) {
	tb.width = max(width, 0)
	tb.buffer = make([]uint32, tb.width*Height)
	tb.fill(stripColor)
}

// Reset paints the strip white and draws the caption.
func (tb *Toolbar) Reset() {
	tb.fill(stripColor)
	tb.drawCaption(tb.Caption())
}

// Repaint redraws the strip for its current state: Reset plus the pressed
// square when the button is on.
func (tb *Toolbar) Repaint() {
	tb.Reset()
	if tb.pressed {
		tb.fillInset(pressedColor)
	}
}

// Hit reports whether the surface coordinate (x, y) falls on the button for
// a surface of the given height.
func Hit(x, y, surfaceHeight int) bool {
	if y < surfaceHeight-Height || y >= surfaceHeight {
		return false
	}
	return x >= 0 && x < buttonSize
}

// OnHover highlights the button when the pointer is over it. It reports
// false, drawing nothing, when the pointer misses or the button is pressed.
func (tb *Toolbar) OnHover(x, y, surfaceHeight int) bool {
	if tb.pressed || !Hit(x, y, surfaceHeight) {
		return false
	}
	tb.Reset()
	tb.fillInset(hoverColor)
	return true
}

// OnClick toggles the button when (x, y) hits it and redraws the strip with
// the new caption and a black (pressed) or gray (released) square.
func (tb *Toolbar) OnClick(x, y, surfaceHeight int) bool {
	if !Hit(x, y, surfaceHeight) {
		return false
	}
	tb.pressed = !tb.pressed
	tb.Reset()
	if tb.pressed {
		tb.fillInset(pressedColor)
	} else {
		tb.fillInset(hoverColor)
	}
	return true
}

// SetPressed forces the button state and repaints.
func (tb *Toolbar) SetPressed(pressed bool) {
	tb.pressed = pressed
	tb.Repaint()
}

func (tb *Toolbar) fill(p pixel.Pixel) {
	v := p.ARGB()
	for i := range tb.buffer {
		tb.buffer[i] = v
	}
}

func (tb *Toolbar) fillInset(p pixel.Pixel) {
	v := p.ARGB()
	for y := buttonInset; y < buttonSize-buttonInset; y++ {
		for x := buttonInset; x < buttonSize-buttonInset && x < tb.width; x++ {
			tb.buffer[y*tb.width+x] = v
		}
	}
}

func (tb *Toolbar) drawCaption(text string) {
	if tb.rasterizer == nil {
		return
	}
	for _, c := range tb.rasterizer.RenderGlyphs(text, captionSize, image.Pt(captionX, captionY)) {
		if c.Value <= 0 || c.X < 0 || c.Y < 0 || c.X >= tb.width || c.Y >= Height {
			continue
		}
		i := c.Y*tb.width + c.X
		bg := pixel.FromARGB(tb.buffer[i])
		tb.buffer[i] = bg.Blend(captionColor, float32(min(c.Value, 1))).ARGB()
	}
}
