package geom

import "math"

// Rect is a mutable axis-aligned collision box. Entities reposition it
// every frame to track themselves. Width and Height must be >= 0.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center returns the box's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Intersects reports whether r and other overlap. The exclusion test is
// strict, so edges that exactly touch count as intersecting.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X > other.X+other.Width ||
		r.X+r.Width < other.X ||
		r.Y > other.Y+other.Height ||
		r.Y+r.Height < other.Y)
}

// Resolve returns the minimum translation vector that moves r out of
// other: the axis with the smaller overlap is chosen (x on a tie) and
// the sign pushes r away from other's center. Returns the zero vector
// when the boxes do not intersect.
func (r Rect) Resolve(other Rect) Vec2 {
	if !r.Intersects(other) {
		return Vec2{}
	}

	rc := r.Center()
	oc := other.Center()
	dx := oc.X - rc.X
	dy := oc.Y - rc.Y
	mx := (r.Width+other.Width)/2 - math.Abs(dx)
	my := (r.Height+other.Height)/2 - math.Abs(dy)

	if mx <= my {
		if dx > 0 {
			return Vec2{X: -mx}
		}
		return Vec2{X: mx}
	}
	if dy > 0 {
		return Vec2{Y: -my}
	}
	return Vec2{Y: my}
}
