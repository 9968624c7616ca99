package editor

import (
	"math"

	"gioui.org/f32"
)

// TrackGeometry maps between the vertical pointer coordinate of a track list
// and track indices. Top is the global y of the first slot and Height the
// height of one slot.
type TrackGeometry struct {
	Top    float32
	Height float32
}

// SnapToGrid rounds v to the nearest multiple of grid. Halves round up,
// towards positive infinity, on both sides of zero. A non-positive grid
// disables snapping.
func SnapToGrid(v, grid float32) float32 {
	if grid <= 0 {
		return v
	}
	return float32(math.Floor(float64(v/grid)+0.5)) * grid
}

// SnapPoint snaps both coordinates of p to the grid.
func SnapPoint(p f32.Point, grid float32) f32.Point {
	return f32.Pt(SnapToGrid(p.X, grid), SnapToGrid(p.Y, grid))
}

// GlobalToLocal translates a global point to the space whose origin is at
// origin.
func GlobalToLocal(p, origin f32.Point) f32.Point {
	return p.Sub(origin)
}

// IndexAt returns the slot under the global coordinate y, for a list of count
// slots. The slot changes only when y crosses the middle of a slot, so a
// pointer resting near a slot boundary does not flicker between two indices.
// The result is always within [0, count-1]; for an empty list it is 0.
func (g TrackGeometry) IndexAt(y float32, count int) int {
	if count <= 1 || g.Height <= 0 {
		return 0
	}
	i := int(math.Floor(float64((y - g.Top + g.Height/2) / g.Height)))
	return min(max(i, 0), count-1)
}

// Y returns the global y coordinate of the top of slot i.
func (g TrackGeometry) Y(i int) float32 {
	return g.Top + float32(i)*g.Height
}

// Offset returns the y of slot i relative to the top of the list, which is
// what a track's display offset converges to.
func (g TrackGeometry) Offset(i int) float32 {
	return float32(i) * g.Height
}
