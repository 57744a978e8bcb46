package render

// Camera translates between map coordinates and viewport coordinates. It
// follows a point but never scrolls past the map edge.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int
	ViewHeight int
}

// NewCamera creates a camera with the given viewport size at the origin.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow centers the view on (cx, cy), clamped so the viewport stays inside
// a mapW×mapH map where it fits.
func (c *Camera) Follow(cx, cy, mapW, mapH int) {
	c.OffsetX = clamp(cx-c.ViewWidth/2, mapW-c.ViewWidth)
	c.OffsetY = clamp(cy-c.ViewHeight/2, mapH-c.ViewHeight)
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}

// WorldToScreen converts map (wx, wy) to viewport (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts viewport (sx, sy) to map coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}
