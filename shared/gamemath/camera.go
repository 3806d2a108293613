package gamemath

// CenterCamera returns the viewport offset that centres (px, py) in a
// viewport of the given size. Each axis is clamped so the view never scrolls
// past the map origin; there is no upper clamp.
func CenterCamera(px, py, viewportW, viewportH float64) (x, y float64) {
	x = px - viewportW/2
	y = py - viewportH/2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// ClampMin returns v, or min when v is smaller.
func ClampMin(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

// ToScreen converts a y-up world rectangle into the y-down screen position of
// its top-left corner, given the camera's bottom-left corner.
func ToScreen(r Rect, camX, camY, screenH float64) (x, y float64) {
	return r.X - camX, screenH - (r.Top() - camY)
}

// Visible reports whether a world rectangle intersects the view, widened by pad.
func Visible(r Rect, camX, camY, viewW, viewH, pad float64) bool {
	view := Rect{X: camX - pad, Y: camY - pad, W: viewW + 2*pad, H: viewH + 2*pad}
	return r.Overlaps(view)
}
