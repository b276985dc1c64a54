// Package render turns a decoded image into the pixel buffer handed to the
// display.
//
// Rendering happens in two stages. Resample fits an imaging.Image to a
// requested size and writes the result into a Frame, applying rotation and
// the image's display transforms while sampling. Composite then places that
// Frame, centred, on a surface-sized buffer together with the toolbar strip.
//
// All buffers are packed ARGB32, row-major, top-to-bottom. Nothing in this
// package retains state between calls other than the Frame passed in, and no
// function is safe to call concurrently on the same Frame.
package render
