// Package core provides fundamental types and utilities shared by the simulation
// and the platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Insets shrinks a box independently on each side.
// Collision boxes are always derived from visual boxes by insetting, never by growing.
type Insets struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Uniform returns insets with the same margin on every side.
func Uniform(m float64) Insets {
	return Insets{Left: m, Right: m, Top: m, Bottom: m}
}

// Box is an axis-aligned bounding box in world space (y grows downward).
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAt creates a box from a top-left corner and a size.
func BoxAt(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Inset returns the box shrunk by the given insets.
func (b Box) Inset(in Insets) Box {
	return Box{
		Left:   b.Left + in.Left,
		Top:    b.Top + in.Top,
		Right:  b.Right - in.Right,
		Bottom: b.Bottom - in.Bottom,
	}
}

// Overlaps reports whether two boxes share interior area.
// Touching edges do not count as overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Left < o.Right &&
		b.Right > o.Left &&
		b.Top < o.Bottom &&
		b.Bottom > o.Top
}

// Rect represents an integer cell rectangle used for screen drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
