package codec

import (
	"encoding/binary"

	"github.com/ironsheep/swiv/internal/imaging"
	"github.com/ironsheep/swiv/internal/pixel"
)

const (
	bmpMagic      = "BM"
	bmpHeaderSize = 54
	bmpTrueColor  = 24
	bmpRGB        = 0 // BI_RGB, no compression
)

// bmpHeader mirrors the BITMAPFILEHEADER + BITMAPINFOHEADER fields the
// decoder reads.
type bmpHeader struct {
	FileSize        uint32 // 0x02
	DataOffset      uint32 // 0x0A
	Width           int32  // 0x12
	Height          int32  // 0x16
	Planes          uint16 // 0x1A
	BitsPerPixel    uint16 // 0x1C
	Compression     uint32 // 0x1E
	ImageSize       uint32 // 0x22
	ColorsUsed      uint32 // 0x2E
	ImportantColors uint32 // 0x32
}

func readBMPHeader(data []byte) (bmpHeader, error) {
	if len(data) < len(bmpMagic) {
		return bmpHeader{}, formatErr("bmp", ErrTruncated, "file is %d bytes", len(data))
	}
	if string(data[:2]) != bmpMagic {
		return bmpHeader{}, formatErr("bmp", ErrMagic, "got %q, want %q", data[:2], bmpMagic)
	}
	if len(data) < bmpHeaderSize {
		return bmpHeader{}, formatErr("bmp", ErrTruncated, "header needs %d bytes, file has %d", bmpHeaderSize, len(data))
	}

	le := binary.LittleEndian
	return bmpHeader{
		FileSize:        le.Uint32(data[0x02:]),
		DataOffset:      le.Uint32(data[0x0A:]),
		Width:           int32(le.Uint32(data[0x12:])),
		Height:          int32(le.Uint32(data[0x16:])),
		Planes:          le.Uint16(data[0x1A:]),
		BitsPerPixel:    le.Uint16(data[0x1C:]),
		Compression:     le.Uint32(data[0x1E:]),
		ImageSize:       le.Uint32(data[0x22:]),
		ColorsUsed:      le.Uint32(data[0x2E:]),
		ImportantColors: le.Uint32(data[0x32:]),
	}, nil
}

// DecodeBMP decodes an uncompressed 24-bit BMP. Rows are stored bottom-up in
// B,G,R order and padded to a multiple of four bytes; the returned image is
// top-down and fully opaque.
//
// Every other bit depth and any compression are reported as ErrUnsupported.
func DecodeBMP(data []byte) (*imaging.Image, error) {
	h, err := readBMPHeader(data)
	if err != nil {
		return nil, err
	}
	if h.BitsPerPixel != bmpTrueColor {
		return nil, formatErr("bmp", ErrUnsupported, "%d bits per pixel", h.BitsPerPixel)
	}
	if h.Compression != bmpRGB {
		return nil, formatErr("bmp", ErrUnsupported, "compression type %d", h.Compression)
	}
	if h.Width <= 0 || h.Height <= 0 {
		return nil, formatErr("bmp", ErrDimensions, "%dx%d", h.Width, h.Height)
	}

	width, height := int(h.Width), int(h.Height)
	offset := int64(h.DataOffset)
	size := int64(len(data))
	if offset < bmpHeaderSize || offset > size {
		return nil, formatErr("bmp", ErrMalformed, "pixel data offset %d outside file of %d bytes", offset, size)
	}

	rowBytes := int64(width) * 3
	if rowBytes > size {
		return nil, formatErr("bmp", ErrTruncated, "row of %d bytes exceeds file size %d", rowBytes, size)
	}
	stride := (rowBytes + 3) &^ 3
	// The final row's padding is not required to be present.
	if need := stride*int64(height-1) + rowBytes; offset+need > size {
		return nil, formatErr("bmp", ErrTruncated, "raster needs %d bytes, %d available", need, size-offset)
	}

	pixels := make([]pixel.Pixel, width*height)
	for row := 0; row < height; row++ {
		start := offset + int64(row)*stride
		src := data[start : start+rowBytes]
		y := height - 1 - row
		dst := pixels[y*width : (y+1)*width]
		for x := range dst {
			bgr := src[x*3 : x*3+3]
			dst[x] = pixel.RGB(bgr[2], bgr[1], bgr[0])
		}
	}

	return imaging.New(width, height, pixels)
}
