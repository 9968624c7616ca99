package surface

import "gioui.org/f32"

// Size is the extent of a window or any other rectangular entity, in the same
// units as the positions of the host (usually device independent pixels).
type Size struct {
	Width  float32
	Height float32
}

func Sz(width, height float32) Size { return Size{Width: width, Height: height} }

// Max returns the componentwise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// Add grows the size by a pointer delta.
func (s Size) Add(d f32.Point) Size {
	return Size{Width: s.Width + d.X, Height: s.Height + d.Y}
}

// Point returns the size as a vector, so that it can be used as the origin of
// a drag session.
func (s Size) Point() f32.Point { return f32.Pt(s.Width, s.Height) }

// Rect is an axis-aligned rectangle [Min, Max).
type Rect struct {
	Min, Max f32.Point
}

func (r Rect) Size() Size { return Size{Width: r.Max.X - r.Min.X, Height: r.Max.Y - r.Min.Y} }

func (r Rect) Empty() bool { return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y }

func (r Rect) Contains(p f32.Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}
