package figbridge

import "math"

// Vec2 is a 2D vector used for design-space positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Near reports whether v and o differ by at most eps on both axes.
func (v Vec2) Near(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Vec3 is an output-space vector. X grows right, Y grows up, Z is depth.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns v scaled uniformly by s.
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// MulVec returns the component-wise product of v and o.
func (v Vec3) MulVec(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// XY drops the depth component.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

// Rect is an axis-aligned rectangle in design space. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Position returns the top-left corner.
func (r Rect) Position() Vec2 { return Vec2{r.X, r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType distinguishes the output representation of a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // empty transform-only node
	NodeTypeText                      // text primitive with a TextBlock
	NodeTypeComponent                 // instantiated reusable component
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeContainer:
		return "container"
	case NodeTypeText:
		return "text"
	case NodeTypeComponent:
		return "component"
	default:
		return "unknown"
	}
}

// TextAlign controls horizontal text alignment within a TextBlock.
type TextAlign uint8

const (
	TextAlignLeft      TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                     // center text horizontally
	TextAlignRight                      // align text to the right edge
	TextAlignJustified                  // stretch lines to both edges
)

func (a TextAlign) String() string {
	switch a {
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	case TextAlignJustified:
		return "justified"
	default:
		return "left"
	}
}

// VerticalAlign controls vertical text alignment within a TextBlock.
type VerticalAlign uint8

const (
	VerticalAlignTop    VerticalAlign = iota // anchor lines at the top (default)
	VerticalAlignMiddle                      // center lines vertically
	VerticalAlignBottom                      // anchor lines at the bottom
)

func (a VerticalAlign) String() string {
	switch a {
	case VerticalAlignMiddle:
		return "middle"
	case VerticalAlignBottom:
		return "bottom"
	default:
		return "top"
	}
}
