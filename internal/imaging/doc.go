// Package imaging holds the decoded image the viewer displays and the display
// state attached to it.
//
// An Image is produced once by a decoder (see package codec) or by NewSolid,
// and is then only ever read. Everything the user can toggle (grayscale,
// inversion, rotation and aspect locking) is stored as flags next to the pixel
// data and applied by the renderer at sample time.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Two coordinate spaces exist. Stored space is the raster as decoded.
// Effective space is what the viewer shows after rotation; its size is given
// by EffectiveSize and SourceCoords maps effective coordinates back to stored
// ones.
//
// # Rotation
//
// Rotation is a closed four-value enumeration of clockwise quarter turns.
// Adding turns wraps, so four clockwise turns always return to Rotate0.
//
// # Thread Safety
//
// An Image is not safe for concurrent use. The viewer owns it on a single
// goroutine and serialises flag changes with rendering.
package imaging
