package viewer

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/swiv/internal/pixel"
)

// ParseColor reads an RGB colour written as hex digits with an optional
// "0x" or "#" prefix. Up to six digits are accepted and short values are
// zero-extended on the left, so "ff" is blue. The result is opaque.
func ParseColor(s string) (uint32, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "#")
	if digits == "" {
		return 0, fmt.Errorf("empty colour %q", s)
	}
	if len(digits) > 6 {
		return 0, fmt.Errorf("expected at most 6 hex digits, got %d", len(digits))
	}

	c, err := colorful.Hex("#" + strings.Repeat("0", 6-len(digits)) + digits)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return pixel.Pack(0xFF, r, g, b), nil
}

// FormatColor prints a packed colour in the form ParseColor accepts.
func FormatColor(argb uint32) string {
	p := pixel.FromARGB(argb)
	return colorful.Color{
		R: float64(p.R()) / 255,
		G: float64(p.G()) / 255,
		B: float64(p.B()) / 255,
	}.Hex()
}
