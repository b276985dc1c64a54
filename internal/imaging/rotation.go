package imaging

import (
	"fmt"
	"math"
)

// Rotation is a clockwise quarter-turn orientation. Only the four values
// declared below exist; arithmetic wraps within them.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// RotationFromDegrees converts a multiple of 90 (negative values allowed) into
// a Rotation.
func RotationFromDegrees(degrees int) (Rotation, error) {
	if degrees%90 != 0 {
		return Rotate0, fmt.Errorf("rotation must be a multiple of 90 degrees, got %d", degrees)
	}
	return Rotate0.Add(degrees / 90), nil
}

// Add rotates by the given number of clockwise quarter turns. Negative values
// rotate counter-clockwise.
func (r Rotation) Add(quarterTurns int) Rotation {
	n := (int(r) + quarterTurns) % 4
	if n < 0 {
		n += 4
	}
	return Rotation(n)
}

// Clockwise returns r rotated one quarter turn clockwise.
func (r Rotation) Clockwise() Rotation { return r.Add(1) }

// CounterClockwise returns r rotated one quarter turn counter-clockwise.
func (r Rotation) CounterClockwise() Rotation { return r.Add(-1) }

// Degrees returns 0, 90, 180 or 270.
func (r Rotation) Degrees() int { return int(r%4) * 90 }

// Radians returns the angle in radians.
func (r Rotation) Radians() float64 { return float64(r.Degrees()) * math.Pi / 180 }

// SwapsAxes reports whether width and height trade places under r.
func (r Rotation) SwapsAxes() bool { return r%2 == 1 }

func (r Rotation) String() string {
	return fmt.Sprintf("%d°", r.Degrees())
}
