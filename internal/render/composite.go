package render

// Composite builds the present-ready surface buffer: surfaceW*surfaceH packed
// ARGB pixels filled with background, the frame centred on top of it and the
// toolbar strip flush with the bottom edge.
//
// Integer division is used for centring, so an odd difference leaves the
// extra pixel on the right/bottom. Parts of the frame that do not fit are
// clipped from the right and bottom. Any row whose source or destination
// range falls outside its buffer is skipped, as is a toolbar buffer that is
// not a whole number of surface rows or is taller than the surface; the
// result always has exactly surfaceW*surfaceH entries.
func Composite(surfaceW, surfaceH int, frame *Frame, toolbar []uint32, background uint32) []uint32 {
	if surfaceW <= 0 || surfaceH <= 0 {
		return []uint32{}
	}

	out := make([]uint32, surfaceW*surfaceH)
	for i := range out {
		out[i] = background
	}

	if frame != nil {
		blitFrame(out, surfaceW, surfaceH, frame)
	}
	if len(toolbar) > 0 {
		blitToolbar(out, surfaceW, surfaceH, toolbar)
	}

	return out
}

func blitFrame(out []uint32, surfaceW, surfaceH int, frame *Frame) {
	drawW := min(frame.Width, surfaceW)
	drawH := min(frame.Height, surfaceH)
	if drawW <= 0 || drawH <= 0 {
		return
	}
	vSlack := max(0, (surfaceH-frame.Height)/2)
	hSlack := max(0, (surfaceW-frame.Width)/2)

	for row := 0; row < drawH; row++ {
		srcStart := row * frame.Width
		srcEnd := srcStart + drawW
		dstStart := (row+vSlack)*surfaceW + hSlack
		dstEnd := dstStart + drawW

		if srcEnd > len(frame.Buffer) || dstEnd > len(out) {
			continue
		}
		copy(out[dstStart:dstEnd], frame.Buffer[srcStart:srcEnd])
	}
}

func blitToolbar(out []uint32, surfaceW, surfaceH int, toolbar []uint32) {
	rows := len(toolbar) / surfaceW
	if rows == 0 || rows > surfaceH || len(toolbar)%surfaceW != 0 {
		return
	}
	start := (surfaceH - rows) * surfaceW
	end := start + len(toolbar)
	if end > len(out) {
		return
	}
	copy(out[start:end], toolbar)
}
