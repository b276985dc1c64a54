package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/swiv/internal/pixel"
)

// Image is a decoded raster plus the display state the viewer toggles on it.
//
// Pixel data is fixed at construction. Grayscale, inversion and rotation are
// applied when the image is sampled, never baked into storage, so toggling a
// flag twice always restores the original rendering.
//
// An Image has a single owner: display-state setters must not be called
// concurrently with sampling.
//
// Image implements image.Image over the stored (unrotated, untransformed)
// pixels so it can be handed to standard library and third-party encoders.
type Image struct {
	width  int
	height int
	pixels []pixel.Pixel

	lockedAspect bool
	grayscale    bool
	inverted     bool
	rotation     Rotation
}

// New wraps row-major pixel data. The slice is owned by the returned Image.
//
// # Errors
//
//   - width or height is negative
//   - len(pixels) != width*height
func New(width, height int, pixels []pixel.Pixel) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("pixel count %d does not match %dx%d", len(pixels), width, height)
	}
	return &Image{
		width:        width,
		height:       height,
		pixels:       pixels,
		lockedAspect: true,
	}, nil
}

// NewSolid creates a width x height image filled with a single colour. It is
// the fallback shown when no file is loaded. Negative sizes are treated as 0.
func NewSolid(width, height int, fill pixel.Pixel) *Image {
	width, height = max(width, 0), max(height, 0)
	pixels := make([]pixel.Pixel, width*height)
	for i := range pixels {
		pixels[i] = fill
	}
	return &Image{
		width:        width,
		height:       height,
		pixels:       pixels,
		lockedAspect: true,
	}
}

// Width returns the stored width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the stored height in pixels.
func (img *Image) Height() int { return img.height }

// Empty reports whether the image has no pixels.
func (img *Image) Empty() bool { return img.width == 0 || img.height == 0 }

// Pixel returns the stored pixel at (x, y). Coordinates must be in range.
func (img *Image) Pixel(x, y int) pixel.Pixel {
	return img.pixels[y*img.width+x]
}

// EffectiveSize returns the displayed width and height, which trade places
// for 90 and 270 degree rotations.
func (img *Image) EffectiveSize() (int, int) {
	if img.rotation.SwapsAxes() {
		return img.height, img.width
	}
	return img.width, img.height
}

// SourceCoords maps a coordinate in effective (rotated) space to the stored
// pixel it displays. (x, y) must lie inside EffectiveSize.
func (img *Image) SourceCoords(x, y int) (int, int) {
	switch img.rotation {
	case Rotate90:
		return y, img.height - 1 - x
	case Rotate180:
		return img.width - 1 - x, img.height - 1 - y
	case Rotate270:
		return img.width - 1 - y, x
	default:
		return x, y
	}
}

// RotatedPixel returns the stored pixel displayed at effective (x, y).
func (img *Image) RotatedPixel(x, y int) pixel.Pixel {
	sx, sy := img.SourceCoords(x, y)
	return img.pixels[sy*img.width+sx]
}

// Transforms returns the display transforms currently enabled, in the order
// they must be applied: grayscale first, then inversion.
func (img *Image) Transforms() pixel.Pipeline {
	var pl pixel.Pipeline
	if img.grayscale {
		pl = append(pl, pixel.Grayscale)
	}
	if img.inverted {
		pl = append(pl, pixel.Invert)
	}
	return pl
}

// LockedAspectRatio reports whether resampling preserves width:height.
func (img *Image) LockedAspectRatio() bool { return img.lockedAspect }

// SetLockedAspectRatio enables or disables aspect locking.
func (img *Image) SetLockedAspectRatio(locked bool) { img.lockedAspect = locked }

// Grayscale reports whether the grayscale transform is enabled.
func (img *Image) Grayscale() bool { return img.grayscale }

// SetGrayscale enables or disables the grayscale transform.
func (img *Image) SetGrayscale(on bool) { img.grayscale = on }

// Inverted reports whether the inversion transform is enabled.
func (img *Image) Inverted() bool { return img.inverted }

// SetInverted enables or disables the inversion transform.
func (img *Image) SetInverted(on bool) { img.inverted = on }

// Rotation returns the current orientation.
func (img *Image) Rotation() Rotation { return img.rotation }

// SetRotation replaces the current orientation.
func (img *Image) SetRotation(r Rotation) { img.rotation = r.Add(0) }

// Rotate turns the image by quarterTurns clockwise (negative for
// counter-clockwise) and returns the new orientation.
func (img *Image) Rotate(quarterTurns int) Rotation {
	img.rotation = img.rotation.Add(quarterTurns)
	return img.rotation
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle { return image.Rect(0, 0, img.width, img.height) }

// At implements image.Image, returning the stored pixel without display
// transforms. Out-of-range coordinates yield transparent black.
func (img *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= img.width || y >= img.height {
		return color.NRGBA{}
	}
	return img.Pixel(x, y).NRGBA()
}
