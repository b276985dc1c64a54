package render

import (
	"testing"

	"github.com/ironsheep/swiv/internal/pixel"
)

const (
	bg  uint32 = 0xFF101010
	fg uint32 = 0xFFAA0000
	bar uint32 = 0xFFFFFFFF
)

func solidFrame(width, height int, c uint32) *Frame {
	f := NewFrame(width, height, pixel.Black)
	f.Fill(c)
	return f
}

func solidStrip(n int, c uint32) []uint32 {
	s := make([]uint32, n)
	for i := range s {
		s[i] = c
	}
	return s
}

func TestComposite_CentresFrame(t *testing.T) {
	out := Composite(4, 4, solidFrame(2, 2, fg), nil, bg)

	want := []uint32{
		bg, bg, bg, bg,
		bg, fg, fg, bg,
		bg, fg, fg, bg,
		bg, bg, bg, bg,
	}
	assertBuffer(t, out, want)
}

func TestComposite_OddSlackTruncates(t *testing.T) {
	// 3-wide surface, 2-wide frame: slack of 1 halves to 0.
	out := Composite(3, 1, solidFrame(2, 1, fg), nil, bg)
	assertBuffer(t, out, []uint32{fg, fg, bg})
}

func TestComposite_ClipsOversizedFrame(t *testing.T) {
	f := NewFrame(3, 3, pixel.Black)
	for i := range f.Buffer {
		f.Buffer[i] = uint32(i)
	}

	out := Composite(2, 2, f, nil, bg)

	assertBuffer(t, out, []uint32{0, 1, 3, 4})
}

func TestComposite_ToolbarAtBottom(t *testing.T) {
	out := Composite(3, 3, solidFrame(1, 1, fg), solidStrip(3, bar), bg)

	want := []uint32{
		bg, bg, bg,
		bg, fg, bg,
		bar, bar, bar,
	}
	assertBuffer(t, out, want)
}

func TestComposite_ToolbarOverdrawsFrame(t *testing.T) {
	out := Composite(2, 2, solidFrame(2, 2, fg), solidStrip(2, bar), bg)
	assertBuffer(t, out, []uint32{fg, fg, bar, bar})
}

func TestComposite_SkipsMismatchedToolbar(t *testing.T) {
	tests := []struct {
		name  string
		strip []uint32
	}{
		{"partial row", solidStrip(5, bar)},
		{"taller than surface", solidStrip(12, bar)},
		{"shorter than a row", solidStrip(2, bar)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Composite(3, 3, nil, tt.strip, bg)
			for i, v := range out {
				if v != bg {
					t.Fatalf("pixel %d: got %#08x, want background", i, v)
				}
			}
		})
	}
}

func TestComposite_ShortFrameBufferSkipsRows(t *testing.T) {
	f := &Frame{Width: 2, Height: 2, Buffer: []uint32{fg, fg, fg}}

	out := Composite(2, 2, f, nil, bg)

	assertBuffer(t, out, []uint32{fg, fg, bg, bg})
}

func TestComposite_ZeroSurface(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		out := Composite(dims[0], dims[1], solidFrame(2, 2, fg), solidStrip(4, bar), bg)
		if len(out) != 0 {
			t.Errorf("%dx%d: got %d pixels, want 0", dims[0], dims[1], len(out))
		}
	}
}

func FuzzComposite(f *testing.F) {
	f.Add(4, 4, 2, 2, 4, 0)
	f.Add(1, 1, 10, 10, 0, 3)
	f.Add(7, 3, 0, 5, 21, 1)

	f.Fuzz(func(t *testing.T, sw, sh, fw, fh, barLen, bufDelta int) {
		// Keep allocations bounded.
		sw, sh = sw%257, sh%257
		fw, fh = fw%257, fh%257
		barLen = barLen % 4096
		if barLen < 0 {
			barLen = -barLen
		}

		frame := NewFrame(fw, fh, pixel.Black)
		if d := bufDelta % 16; d < 0 && -d <= len(frame.Buffer) {
			frame.Buffer = frame.Buffer[:len(frame.Buffer)+d]
		}

		out := Composite(sw, sh, frame, solidStrip(barLen, bar), bg)

		want := 0
		if sw > 0 && sh > 0 {
			want = sw * sh
		}
		if len(out) != want {
			t.Fatalf("got %d pixels, want %d", len(out), want)
		}
	})
}
