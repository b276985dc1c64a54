package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	imgproc "github.com/disintegration/imaging"

	"github.com/ironsheep/swiv/internal/imaging"
	"github.com/ironsheep/swiv/internal/pixel"
)

// Mode selects the resampling algorithm.
type Mode int

const (
	// ModeNearest picks the closest source pixel. Used while a resize is in
	// progress.
	ModeNearest Mode = iota
	// ModeBilinear blends the four surrounding source pixels.
	ModeBilinear
	// ModeLanczos delegates to a Lanczos-3 filter for the highest quality.
	ModeLanczos
)

func (m Mode) String() string {
	switch m {
	case ModeNearest:
		return "nearest"
	case ModeBilinear:
		return "bilinear"
	case ModeLanczos:
		return "lanczos"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts a mode name as printed by String. "fast" and "smooth"
// are accepted as aliases for nearest and bilinear.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "nearest", "fast":
		return ModeNearest, nil
	case "bilinear", "smooth":
		return ModeBilinear, nil
	case "lanczos":
		return ModeLanczos, nil
	default:
		return ModeNearest, fmt.Errorf("unknown resample mode %q", s)
	}
}

// FitSize computes the destination size for a srcW x srcH image requested at
// targetW x targetH. With locked set the source aspect ratio is preserved and
// the result fits inside the target with at least one axis touching it;
// otherwise the target is returned unchanged. Neither axis drops below 1.
func FitSize(srcW, srcH, targetW, targetH int, locked bool) (int, int) {
	if !locked || srcW <= 0 || srcH <= 0 {
		return targetW, targetH
	}
	scale := math.Min(float64(targetW)/float64(srcW), float64(targetH)/float64(srcH))
	w := int(math.Round(float64(srcW) * scale))
	h := int(math.Round(float64(srcH) * scale))
	return min(max(w, 1), targetW), min(max(h, 1), targetH)
}

// Resample renders img into f at targetW x targetH (reduced to the image's
// aspect ratio when it is locked). Rotation, grayscale and inversion are all
// applied while sampling.
//
// An empty source leaves f untouched. A non-positive target empties f.
func Resample(f *Frame, img *imaging.Image, targetW, targetH int, mode Mode) {
	if img == nil || img.Empty() {
		return
	}
	if targetW <= 0 || targetH <= 0 {
		f.Resize(0, 0)
		return
	}

	ew, eh := img.EffectiveSize()
	dstW, dstH := FitSize(ew, eh, targetW, targetH, img.LockedAspectRatio())
	f.Resize(dstW, dstH)

	switch mode {
	case ModeBilinear:
		resampleBilinear(f, img)
	case ModeLanczos:
		resampleLanczos(f, img)
	default:
		resampleNearest(f, img)
	}
}

// clampIndex floors v and clamps it into [0, n-1].
func clampIndex(v float64, n int) int {
	i := int(math.Floor(v))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

func resampleNearest(f *Frame, img *imaging.Image) {
	ew, eh := img.EffectiveSize()
	xRatio := float64(ew) / float64(f.Width)
	yRatio := float64(eh) / float64(f.Height)
	transforms := img.Transforms()

	for dy := 0; dy < f.Height; dy++ {
		sy := clampIndex(float64(dy)*yRatio, eh)
		row := f.Buffer[dy*f.Width : (dy+1)*f.Width]
		for dx := range row {
			sx := clampIndex(float64(dx)*xRatio, ew)
			row[dx] = transforms.Apply(img.RotatedPixel(sx, sy)).ARGB()
		}
	}
}

// quarterSinCos returns the exact sine and cosine of a multiple of 90
// degrees; math.Sincos leaves residue around zero that would upset floor().
func quarterSinCos(radians float64) (float64, float64) {
	sin, cos := math.Sincos(radians)
	return math.Round(sin), math.Round(cos)
}

func resampleBilinear(f *Frame, img *imaging.Image) {
	w, h := img.Width(), img.Height()
	ew, eh := img.EffectiveSize()
	xRatio := float64(ew) / float64(f.Width)
	yRatio := float64(eh) / float64(f.Height)
	transforms := img.Transforms()

	// Sample points are computed in effective space relative to its centre,
	// rotated back by -rotation and re-anchored on the stored image centre.
	sin, cos := quarterSinCos(-img.Rotation().Radians())
	effCX, effCY := float64(ew-1)/2, float64(eh-1)/2
	srcCX, srcCY := float64(w-1)/2, float64(h-1)/2

	sample := func(x, y int) pixel.Pixel {
		return transforms.Apply(img.Pixel(x, y))
	}

	for dy := 0; dy < f.Height; dy++ {
		oy := (float64(dy)+0.5)*yRatio - 0.5 - effCY
		row := f.Buffer[dy*f.Width : (dy+1)*f.Width]
		for dx := range row {
			ox := (float64(dx)+0.5)*xRatio - 0.5 - effCX

			sx := srcCX + ox*cos - oy*sin
			sy := srcCY + ox*sin + oy*cos

			fx, fy := math.Floor(sx), math.Floor(sy)
			wx, wy := float32(sx-fx), float32(sy-fy)
			x0, x1 := clampIndex(fx, w), clampIndex(fx+1, w)
			y0, y1 := clampIndex(fy, h), clampIndex(fy+1, h)

			top := sample(x0, y0).Blend(sample(x1, y0), wx)
			bottom := sample(x0, y1).Blend(sample(x1, y1), wx)
			row[dx] = top.Blend(bottom, wy).ARGB()
		}
	}
}

func resampleLanczos(f *Frame, img *imaging.Image) {
	var src image.Image = img

	// Transforms run before filtering, matching the other modes.
	if transforms := img.Transforms(); len(transforms) > 0 {
		src = imgproc.AdjustFunc(src, func(c color.NRGBA) color.NRGBA {
			return transforms.Apply(pixel.FromNRGBA(c)).NRGBA()
		})
	}

	// The library rotates counter-clockwise.
	switch img.Rotation() {
	case imaging.Rotate90:
		src = imgproc.Rotate270(src)
	case imaging.Rotate180:
		src = imgproc.Rotate180(src)
	case imaging.Rotate270:
		src = imgproc.Rotate90(src)
	}

	out := imgproc.Resize(src, f.Width, f.Height, imgproc.Lanczos)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			i := out.PixOffset(x, y)
			p := out.Pix[i : i+4]
			f.Buffer[y*f.Width+x] = pixel.Pack(p[3], p[0], p[1], p[2])
		}
	}
}
