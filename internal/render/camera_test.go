package render

import "testing"

func TestCameraFollowClamps(t *testing.T) {
	cases := []struct {
		name         string
		cx, cy       int
		mapW, mapH   int
		wantX, wantY int
	}{
		{"centered", 50, 24, 100, 48, 10, 12},
		{"top left corner", 2, 3, 100, 48, 0, 0},
		{"bottom right corner", 99, 47, 100, 48, 20, 24},
		{"map same size as view", 40, 12, 80, 24, 0, 0},
		{"map smaller than view", 5, 5, 30, 10, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(80, 24)
			c.Follow(tc.cx, tc.cy, tc.mapW, tc.mapH)
			if c.OffsetX != tc.wantX || c.OffsetY != tc.wantY {
				t.Errorf("offset = (%d,%d), want (%d,%d)", c.OffsetX, c.OffsetY, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(80, 24)
	c.Follow(60, 30, 100, 48)
	sx, sy, ok := c.WorldToScreen(60, 30)
	if !ok {
		t.Fatal("followed point should be visible")
	}
	if wx, wy := c.ScreenToWorld(sx, sy); wx != 60 || wy != 30 {
		t.Errorf("round trip = (%d,%d)", wx, wy)
	}
	if _, _, ok := c.WorldToScreen(c.OffsetX-1, 30); ok {
		t.Error("column left of the view should be hidden")
	}
	if _, _, ok := c.WorldToScreen(60, c.OffsetY+24); ok {
		t.Error("row below the view should be hidden")
	}
}
