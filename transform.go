package figbridge

// --- Design space to output space ---

// FrameCenterOffset returns the offset that re-centres frame-local design
// coordinates around a frame of the expected size.
func FrameCenterOffset(expected Vec2) Vec2 {
	return Vec2{-expected.X / 2, expected.Y / 2}
}

// HalfExtentOffset compensates for output nodes being positioned by their
// centre while design boxes are positioned by their top-left corner.
func HalfExtentOffset(size Vec2) Vec2 {
	return Vec2{size.X / 2, -size.Y / 2}
}

// ToOutputPosition maps an absolute design-space box to a frame-relative,
// scaled output position:
//
//	xy = (abs - frameOrigin + (w/2, -h/2) + (-W/2, H/2)) * scale
//
// where (W, H) is the frame's expected size. Z is always zero here; depth
// rules are applied by the builder.
func ToOutputPosition(abs, size Vec2, fc FrameContext, scale float64) Vec3 {
	p := abs.
		Sub(fc.FrameOrigin.XY()).
		Add(HalfExtentOffset(size)).
		Add(FrameCenterOffset(fc.ExpectedSize)).
		Mul(scale)
	return Vec3{p.X, p.Y, 0}
}

// ToTopLeftPosition is ToOutputPosition without the half-extent term: the
// output-space location of the box's top-left corner.
func ToTopLeftPosition(abs Vec2, fc FrameContext, scale float64) Vec3 {
	p := abs.
		Sub(fc.FrameOrigin.XY()).
		Add(FrameCenterOffset(fc.ExpectedSize)).
		Mul(scale)
	return Vec3{p.X, p.Y, 0}
}

// --- Hierarchy transforms ---

// LocalToWorld converts a point in this node's local space to world space.
func (n *Node) LocalToWorld(local Vec3) Vec3 {
	w := n.Position.Add(local.MulVec(n.Scale))
	if n.Parent != nil {
		return n.Parent.LocalToWorld(w)
	}
	return w
}

// WorldPosition returns the node's pivot in world space.
func (n *Node) WorldPosition() Vec3 {
	if n.Parent == nil {
		return n.Position
	}
	return n.Parent.LocalToWorld(n.Position)
}

// Corner indices, in the order returned by Corners.
const (
	CornerBottomLeft = iota
	CornerTopLeft
	CornerTopRight
	CornerBottomRight
)

// Corners returns the four corners of the node's Size rectangle in its
// parent's space, ordered bottom-left, top-left, top-right, bottom-right.
func (n *Node) Corners() [4]Vec3 {
	w := n.Size.X * n.Scale.X
	h := n.Size.Y * n.Scale.Y
	left := n.Position.X - n.Pivot.X*w
	bottom := n.Position.Y - n.Pivot.Y*h
	z := n.Position.Z
	return [4]Vec3{
		{left, bottom, z},
		{left, bottom + h, z},
		{left + w, bottom + h, z},
		{left + w, bottom, z},
	}
}

// WorldCorners returns Corners converted to world space.
func (n *Node) WorldCorners() [4]Vec3 {
	c := n.Corners()
	if n.Parent == nil {
		return c
	}
	for i := range c {
		c[i] = n.Parent.LocalToWorld(c[i])
	}
	return c
}

// --- Transform property setters ---

// SetPosition sets the node's local position.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = Vec3{x, y, z}
}

// SetScale sets the node's local scale.
func (n *Node) SetScale(sx, sy, sz float64) {
	n.Scale = Vec3{sx, sy, sz}
}

// SetUniformScale sets all three scale components to s.
func (n *Node) SetUniformScale(s float64) {
	n.Scale = Vec3{s, s, s}
}

// SetAlpha sets the node's alpha.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
}
