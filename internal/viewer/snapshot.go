package viewer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/swiv/internal/render"
)

// snapshotQuality is the JPEG quality used for .jpg/.jpeg snapshots.
const snapshotQuality = 95

// SnapshotEncoder picks an encoder from the file extension of path.
func SnapshotEncoder(path string) (imgio.Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(snapshotQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", ext)
	}
}

// Snapshot writes the composited surface to path. The format follows the
// extension: .png, .jpg/.jpeg or .bmp.
func (v *Viewer) Snapshot(path string) error {
	if v.surfaceW <= 0 || v.surfaceH <= 0 {
		return fmt.Errorf("cannot snapshot empty %dx%d surface", v.surfaceW, v.surfaceH)
	}
	enc, err := SnapshotEncoder(path)
	if err != nil {
		return err
	}

	img := render.ToNRGBA(v.Render(), v.surfaceW, v.surfaceH)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create snapshot %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			v.log.Error("could not close snapshot", "path", path, "error", closeErr)
		}
	}()

	if err := enc(f, img); err != nil {
		return fmt.Errorf("could not encode snapshot %q: %w", path, err)
	}
	v.log.Info("wrote snapshot", slog.String("path", path), slog.Int("width", v.surfaceW), slog.Int("height", v.surfaceH))
	return nil
}
