package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/swiv/internal/render"
	"github.com/ironsheep/swiv/internal/server"
	"github.com/ironsheep/swiv/internal/toolbar"
	"github.com/ironsheep/swiv/internal/viewer"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type cli struct {
	LogLevel string `help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info" env:"SWIV_LOG_LEVEL"`

	Render  renderCmd  `cmd:"" help:"Decode an image, render it headless and write the window contents to a file"`
	Serve   serveCmd   `cmd:"" help:"Run the viewer as an MCP server over stdin/stdout"`
	Version versionCmd `cmd:"" help:"Print version information"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	log *slog.Logger
}

// ViewerFlags are shared by the commands that build a viewer.
type ViewerFlags struct {
	Image      string `help:"BMP (24-bit) or PPM (P6) file to display" placeholder:"FILE"`
	Background string `help:"Window background as hex RGB (0xRRGGBB, #RRGGBB)" default:"0x000000" env:"SWIV_BACKGROUND"`
	Width      int    `help:"Window width" default:"800"`
	Height     int    `help:"Window height" default:"600"`
	Mode       string `help:"Resample mode once a resize settles" enum:"nearest,bilinear,lanczos" default:"bilinear" env:"SWIV_MODE"`

	BackgroundColor uint32      `kong:"-"`
	ResampleMode    render.Mode `kong:"-"`
}

func (f *ViewerFlags) parse() error {
	switch {
	case f.Width <= 0:
		return fmt.Errorf("invalid window width: %d", f.Width)
	case f.Height <= 0:
		return fmt.Errorf("invalid window height: %d", f.Height)
	}

	var err error
	if f.BackgroundColor, err = viewer.ParseColor(f.Background); err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	if f.ResampleMode, err = render.ParseMode(f.Mode); err != nil {
		return err
	}
	return nil
}

// newViewer builds the viewer and loads the image, if any. A file that cannot
// be loaded is logged and the solid background is shown instead.
func (f *ViewerFlags) newViewer(log *slog.Logger) (*viewer.Viewer, func()) {
	cleanup := func() {}
	var r toolbar.Rasterizer
	if fr, err := toolbar.NewFontRasterizer(nil); err != nil {
		log.Warn("toolbar captions disabled", "error", err)
	} else {
		r = fr
		cleanup = func() { fr.Close() }
	}

	v := viewer.New(viewer.Config{
		Width:      f.Width,
		Height:     f.Height,
		Background: f.BackgroundColor,
		Mode:       f.ResampleMode,
		Rasterizer: r,
		Logger:     log,
	})
	if f.Image != "" {
		if err := v.Load(f.Image); err != nil {
			log.Error("could not create image, using default window", "file", f.Image, "error", err)
		}
	}
	return v, cleanup
}

type renderCmd struct {
	ViewerFlags `embed:""`

	Color    string `help:"Fill the window with this hex RGB colour instead of an image" placeholder:"RGB"`
	NoAspect bool   `help:"Stretch to the window instead of keeping the aspect ratio"`
	Gray     bool   `help:"Render in grayscale"`
	Invert   bool   `help:"Invert colours (same as pressing the toolbar button)"`
	Rotate   int    `help:"Clockwise quarter turns; negative turns counter-clockwise"`
	Out      string `help:"Output file; format from extension (.png, .jpg, .bmp)" short:"o" required:"" placeholder:"FILE"`
}

func (c *renderCmd) Validate(kctx *kong.Context) error {
	if c.Image != "" && c.Color != "" {
		return fmt.Errorf("--image and --color are mutually exclusive")
	}
	if c.Image == "" && c.Color == "" {
		return fmt.Errorf("either --image or --color must be provided")
	}
	if c.Color != "" {
		c.Background = c.Color
	}
	if err := c.ViewerFlags.parse(); err != nil {
		return err
	}
	if _, err := viewer.SnapshotEncoder(c.Out); err != nil {
		return fmt.Errorf("invalid output %q: %w", c.Out, err)
	}
	return nil
}

func (c *renderCmd) Run(rc *runContext) error {
	if c.Color != "" {
		rc.log.Info("filling window", "color", viewer.FormatColor(c.BackgroundColor))
	}
	v, cleanup := c.newViewer(rc.log)
	defer cleanup()

	v.SetLockedAspectRatio(!c.NoAspect)
	v.SetGrayscale(c.Gray)
	v.SetInverted(c.Invert)
	if c.Rotate != 0 {
		v.Rotate(c.Rotate)
	}

	if err := v.Snapshot(c.Out); err != nil {
		return err
	}
	return nil
}

type serveCmd struct {
	ViewerFlags `embed:""`
}

func (c *serveCmd) Validate(kctx *kong.Context) error {
	return c.ViewerFlags.parse()
}

func (c *serveCmd) Run(rc *runContext) error {
	rc.log.Debug("starting server", "version", Version, "built", BuildTime, "commit", GitCommit)
	v, cleanup := c.newViewer(rc.log)
	defer cleanup()

	if err := server.New(v, rc.log, Version).Run(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

type versionCmd struct{}

func (c *versionCmd) Run(rc *runContext) error {
	fmt.Printf("swiv %s\n", Version)
	fmt.Printf("  Build time: %s\n", BuildTime)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	// stdout is reserved for the MCP protocol.
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("swiv"),
		kong.Description("A minimal BMP/PPM image viewer core: headless rendering and an MCP control server."),
		kong.UsageOnError(),
	)

	logger := newLogger(c.LogLevel)
	slog.SetDefault(logger)

	err := kctx.Run(&runContext{log: logger})
	kctx.FatalIfErrorf(err)
}
