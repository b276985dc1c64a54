package viewer

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestSnapshot_PNG(t *testing.T) {
	v := New(Config{Width: 64, Height: 48})
	if err := v.Load(writePPM(t, 2, 2, 0xFF, 0, 0)); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "shot.png")

	if err := v.Snapshot(path); err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("invalid png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("size: got %dx%d, want 64x48", b.Dx(), b.Dy())
	}
	r, g, b, _ := img.At(32, 4).RGBA()
	if r != 0xFFFF || g != 0 || b != 0 {
		t.Errorf("centre: got %x %x %x, want red", r, g, b)
	}
}

func TestSnapshot_BMP(t *testing.T) {
	v := New(Config{Width: 10, Height: 50})
	path := filepath.Join(t.TempDir(), "shot.BMP")

	if err := v.Snapshot(path); err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := bmp.Decode(f); err != nil {
		t.Errorf("invalid bmp: %v", err)
	}
}

func TestSnapshot_Errors(t *testing.T) {
	v := New(Config{Width: 10, Height: 10})
	if err := v.Snapshot(filepath.Join(t.TempDir(), "shot.gif")); err == nil {
		t.Error("expected error for unsupported extension")
	}

	v.Resize(0, 10)
	if err := v.Snapshot(filepath.Join(t.TempDir(), "shot.png")); err == nil {
		t.Error("expected error for empty surface")
	}
}

func TestSnapshotEncoder(t *testing.T) {
	for _, name := range []string{"a.png", "a.jpg", "a.JPEG", "a.bmp"} {
		if _, err := SnapshotEncoder(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := SnapshotEncoder("noext"); err == nil {
		t.Error("expected error without extension")
	}
}
