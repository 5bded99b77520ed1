package engine

import "image/color"

// Surface is the draw target handed to entities during render. Only
// the primitives entities actually use are required of it, which keeps
// the engine runnable against a recording stub in tests and headless
// runs.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}
