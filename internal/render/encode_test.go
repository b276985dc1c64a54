package render

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"
)

func TestToNRGBA(t *testing.T) {
	nrgba := ToNRGBA([]uint32{0xFF112233, 0x80445566}, 2, 1)

	want := []uint8{0x11, 0x22, 0x33, 0xFF, 0x44, 0x55, 0x66, 0x80}
	if !bytes.Equal(nrgba.Pix, want) {
		t.Errorf("Pix: got %v, want %v", nrgba.Pix, want)
	}
}

func TestToNRGBA_ShortBuffer(t *testing.T) {
	nrgba := ToNRGBA([]uint32{0xFFFFFFFF}, 2, 1)
	if nrgba.Pix[7] != 0 {
		t.Errorf("missing pixel should be transparent, alpha = %d", nrgba.Pix[7])
	}
}

func TestEncodePNG(t *testing.T) {
	buf := []uint32{0xFFFF0000, 0xFF00FF00, 0xFF0000FF, 0xFFFFFFFF}

	encoded, err := EncodePNG(buf, 2, 2)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if encoded.MimeType != "image/png" {
		t.Errorf("mime type: got %q", encoded.MimeType)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("invalid png: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("decoded size: got %dx%d, want 2x2", b.Dx(), b.Dy())
	}
	r, g, b, _ := decoded.At(1, 0).RGBA()
	if r != 0 || g != 0xFFFF || b != 0 {
		t.Errorf("pixel (1,0): got %x %x %x, want green", r, g, b)
	}
}

func TestEncodePNG_Empty(t *testing.T) {
	if _, err := EncodePNG(nil, 0, 3); err == nil {
		t.Error("expected error for empty buffer")
	}
}
