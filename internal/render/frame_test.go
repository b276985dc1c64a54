package render

import (
	"testing"

	"github.com/ironsheep/swiv/internal/pixel"
)

func TestNewFrame(t *testing.T) {
	f := NewFrame(3, 2, pixel.Gray)

	if f.Width != 3 || f.Height != 2 {
		t.Fatalf("got %dx%d, want 3x2", f.Width, f.Height)
	}
	if len(f.Buffer) != 6 {
		t.Fatalf("buffer length: got %d, want 6", len(f.Buffer))
	}
	for i, v := range f.Buffer {
		if v != pixel.Gray {
			t.Errorf("pixel %d: got %#08x, want background", i, v)
		}
	}
}

func TestFrame_Resize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantChanged   bool
		wantLen       int
	}{
		{"same size", 2, 2, false, 4},
		{"grow", 3, 3, true, 9},
		{"shrink", 1, 2, true, 2},
		{"same area different shape", 4, 1, true, 4},
		{"negative", -5, 3, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(2, 2, pixel.Black)
			f.Buffer[0] = pixel.White

			changed := f.Resize(tt.width, tt.height)

			if changed != tt.wantChanged {
				t.Errorf("changed: got %v, want %v", changed, tt.wantChanged)
			}
			if len(f.Buffer) != tt.wantLen {
				t.Errorf("buffer length: got %d, want %d", len(f.Buffer), tt.wantLen)
			}
			if f.Width*f.Height != len(f.Buffer) {
				t.Errorf("dims %dx%d disagree with length %d", f.Width, f.Height, len(f.Buffer))
			}
			if tt.wantLen > 0 && f.Buffer[0] != pixel.White {
				t.Errorf("prefix not kept: got %#08x", f.Buffer[0])
			}
		})
	}
}

func TestFrame_ResizePadsWithBackground(t *testing.T) {
	f := NewFrame(1, 1, pixel.Gray)
	f.Buffer[0] = pixel.White
	f.Background = pixel.Black

	f.Resize(2, 2)

	want := []uint32{pixel.White, pixel.Black, pixel.Black, pixel.Black}
	assertBuffer(t, f.Buffer, want)
}

func TestFrame_AtAndFill(t *testing.T) {
	f := NewFrame(2, 2, pixel.Gray)
	f.Fill(pixel.White)

	if got := f.At(1, 1); got != pixel.White {
		t.Errorf("At(1,1): got %#08x, want white", got)
	}
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := f.At(pt[0], pt[1]); got != pixel.Gray {
			t.Errorf("At(%d,%d): got %#08x, want background", pt[0], pt[1], got)
		}
	}
}
