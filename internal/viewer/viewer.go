// Package viewer is the host-side glue around the render pipeline.
//
// A Viewer owns the current image, the resampled frame and the toolbar, and
// turns host events (load, resize, pointer, click, key toggles) into
// pipeline calls. Render returns the composited surface buffer ready to be
// presented.
//
// A Viewer is not safe for concurrent use; the host serializes all calls.
package viewer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ironsheep/swiv/internal/codec"
	"github.com/ironsheep/swiv/internal/imaging"
	"github.com/ironsheep/swiv/internal/pixel"
	"github.com/ironsheep/swiv/internal/render"
	"github.com/ironsheep/swiv/internal/toolbar"
)

// Default surface size when the host does not provide one.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Config holds the settings a Viewer starts with. Zero values select the
// defaults.
type Config struct {
	Width      int
	Height     int
	Background uint32
	// Mode is the resampling mode used once a resize settles. Interactive
	// resizes always use nearest.
	Mode       render.Mode
	Rasterizer toolbar.Rasterizer
	Logger     *slog.Logger
}

// Viewer drives the decode, resample and composite pipeline for one window.
type Viewer struct {
	img  *imaging.Image
	info *codec.Info

	frame   *render.Frame
	toolbar *toolbar.Toolbar

	surfaceW, surfaceH int
	background         uint32
	mode               render.Mode
	hovering           bool

	log *slog.Logger
}

// New creates a viewer showing a solid fill of the background colour.
func New(cfg Config) *Viewer {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Background == 0 {
		cfg.Background = pixel.Black
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	v := &Viewer{
		surfaceW:   cfg.Width,
		surfaceH:   cfg.Height,
		background: cfg.Background,
		mode:       cfg.Mode,
		frame:      render.NewFrame(0, 0, cfg.Background),
		toolbar:    toolbar.New(cfg.Width, cfg.Rasterizer),
		log:        cfg.Logger,
	}
	v.toolbar.Repaint()
	v.SetImage(v.fallback(), nil)
	return v
}

// fallback is the image shown when nothing is loaded: one background
// coloured pixel, stretched to fill the canvas.
func (v *Viewer) fallback() *imaging.Image {
	img := imaging.NewSolid(1, 1, pixel.FromARGB(v.background))
	img.SetLockedAspectRatio(false)
	return img
}

// Load decodes the file at path and makes it the current image. On failure
// the previous image stays on screen and the error is returned.
func (v *Viewer) Load(path string) error {
	img, info, err := codec.Load(path)
	if err != nil {
		v.log.Warn("could not load image, keeping current", "path", path, "error", err)
		return err
	}
	v.log.Info("loaded image", "path", path, "format", info.Format, "width", info.Width, "height", info.Height)
	v.SetImage(img, info)
	return nil
}

// SetImage replaces the current image. The toolbar button follows the new
// image's inversion flag. A nil image selects the solid fallback.
func (v *Viewer) SetImage(img *imaging.Image, info *codec.Info) {
	if img == nil {
		img, info = v.fallback(), nil
	}
	v.img, v.info = img, info
	if v.toolbar.Pressed() != img.Inverted() {
		v.toolbar.SetPressed(img.Inverted())
	}
	v.Settle()
}

// Image returns the current image.
func (v *Viewer) Image() *imaging.Image { return v.img }

// Info returns the metadata of the loaded file, or nil for the fallback.
func (v *Viewer) Info() *codec.Info { return v.info }

// Frame returns the canvas produced by the last resample.
func (v *Viewer) Frame() *render.Frame { return v.frame }

// Toolbar returns the toolbar strip.
func (v *Viewer) Toolbar() *toolbar.Toolbar { return v.toolbar }

// SurfaceSize returns the current surface dimensions.
func (v *Viewer) SurfaceSize() (int, int) { return v.surfaceW, v.surfaceH }

// Mode returns the settle resampling mode.
func (v *Viewer) Mode() render.Mode { return v.mode }

// SetMode changes the settle resampling mode and re-renders.
func (v *Viewer) SetMode(m render.Mode) {
	v.mode = m
	v.Settle()
}

// Resize handles an interactive surface resize: the toolbar is rebuilt and
// the frame is refilled with the fast nearest mode. The host calls Settle
// once resizing stops. It reports whether the size changed.
func (v *Viewer) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if width == v.surfaceW && height == v.surfaceH {
		return false
	}
	v.surfaceW, v.surfaceH = width, height
	v.toolbar.Update(width)
	v.toolbar.Repaint()
	v.hovering = false
	v.resample(render.ModeNearest)
	return true
}

// Settle re-renders the frame with the configured quality mode.
func (v *Viewer) Settle() {
	v.resample(v.mode)
}

func (v *Viewer) resample(mode render.Mode) {
	w, h := v.surfaceW, v.surfaceH
	render.Resample(v.frame, v.img, w, h, mode)
	v.log.Debug("resampled",
		"mode", mode,
		"target", fmt.Sprintf("%dx%d", w, h),
		"frame", fmt.Sprintf("%dx%d", v.frame.Width, v.frame.Height),
		"rotation", v.img.Rotation())
}

// PointerMoved updates the toolbar hover state. It reports whether the
// toolbar changed and needs a redraw.
func (v *Viewer) PointerMoved(x, y int) bool {
	hover := v.toolbar.OnHover(x, y, v.surfaceH)
	left := v.hovering && !hover
	v.hovering = hover
	if left {
		v.toolbar.Repaint()
	}
	return hover || left
}

// Click forwards a pointer press to the toolbar. A hit toggles the button,
// which toggles image inversion. It reports whether anything changed.
func (v *Viewer) Click(x, y int) bool {
	if !v.toolbar.OnClick(x, y, v.surfaceH) {
		return false
	}
	v.hovering = false
	v.img.SetInverted(v.toolbar.Pressed())
	v.log.Debug("toolbar toggled", "inverted", v.img.Inverted())
	v.Settle()
	return true
}

// Rotate turns the image by a number of clockwise quarter turns.
func (v *Viewer) Rotate(quarterTurns int) imaging.Rotation {
	r := v.img.Rotate(quarterTurns)
	v.Settle()
	return r
}

// SetInverted sets image inversion and keeps the toolbar button in step.
func (v *Viewer) SetInverted(on bool) {
	v.img.SetInverted(on)
	v.toolbar.SetPressed(on)
	v.hovering = false
	v.Settle()
}

// SetGrayscale sets the grayscale flag.
func (v *Viewer) SetGrayscale(on bool) {
	v.img.SetGrayscale(on)
	v.Settle()
}

// SetLockedAspectRatio sets whether resampling preserves the aspect ratio.
func (v *Viewer) SetLockedAspectRatio(locked bool) {
	v.img.SetLockedAspectRatio(locked)
	v.Settle()
}

// Render composites the frame and toolbar into a surface-sized buffer.
func (v *Viewer) Render() []uint32 {
	return render.Composite(v.surfaceW, v.surfaceH, v.frame, v.toolbar.Buffer(), v.background)
}

// Sample returns the colour of the composited surface at (x, y).
func (v *Viewer) Sample(x, y int) (*render.ColorResult, error) {
	return render.SampleColor(v.Render(), v.surfaceW, v.surfaceH, x, y)
}
