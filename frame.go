package figbridge

// FrameContext is the per-branch recursion state: which top-level frame a node
// belongs to and where that frame sits in design space. It is a value type;
// each level of the recursion receives its own copy.
type FrameContext struct {
	// EnclosingFrame is the output node of the top-level frame, nil above
	// any frame.
	EnclosingFrame *Node
	// FrameOrigin is the frame's absolute design-space top-left corner.
	FrameOrigin Vec3
	// ExpectedSize is the configured frame size, constant per build.
	ExpectedSize Vec2
}

// NewFrameContext returns the context used at the top of a build.
func NewFrameContext(expected Vec2) FrameContext {
	return FrameContext{ExpectedSize: expected}
}

// Enclosed reports whether a top-level frame has been established.
func (fc FrameContext) Enclosed() bool {
	return fc.EnclosingFrame != nil
}

// Enter returns the context for the descendants of a newly established
// top-level frame.
func (fc FrameContext) Enter(frame *Node, design *DesignNode) FrameContext {
	p := design.Position()
	return FrameContext{
		EnclosingFrame: frame,
		FrameOrigin:    Vec3{p.X, p.Y, 0},
		ExpectedSize:   fc.ExpectedSize,
	}
}

// FocusPolicy decides whether a freshly built top-level frame starts active.
type FocusPolicy func(frame *DesignNode) bool

// FocusByName activates frames whose name matches one of names.
func FocusByName(names ...string) FocusPolicy {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(frame *DesignNode) bool {
		_, ok := set[frame.Name]
		return ok
	}
}

// FocusFirst activates only the first top-level frame it is asked about.
// The returned policy is stateful and must not be shared between builds.
func FocusFirst() FocusPolicy {
	seen := false
	return func(*DesignNode) bool {
		if seen {
			return false
		}
		seen = true
		return true
	}
}

// FocusNone leaves every top-level frame inactive.
func FocusNone(*DesignNode) bool { return false }

// FocusAll activates every top-level frame.
func FocusAll(*DesignNode) bool { return true }
