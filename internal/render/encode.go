package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	imgproc "github.com/disintegration/imaging"
)

// EncodedImage contains a rendered buffer encoded as base64 PNG.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// ToNRGBA converts a packed ARGB buffer to an *image.NRGBA. Missing
// trailing pixels (a buffer shorter than width*height) are left transparent.
func ToNRGBA(buf []uint32, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	for i, argb := range buf {
		if i >= width*height {
			break
		}
		p := img.Pix[i*4 : i*4+4]
		p[0] = uint8(argb >> 16)
		p[1] = uint8(argb >> 8)
		p[2] = uint8(argb)
		p[3] = uint8(argb >> 24)
	}
	return img
}

// EncodePNG encodes a packed ARGB buffer as base64 PNG.
func EncodePNG(buf []uint32, width, height int) (*EncodedImage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("cannot encode empty %dx%d buffer", width, height)
	}

	var out bytes.Buffer
	if err := imgproc.Encode(&out, ToNRGBA(buf, width, height), imgproc.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(out.Bytes()),
		MimeType:    "image/png",
	}, nil
}
