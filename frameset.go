package figbridge

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// FrameSet is the ordered list of top-level frames produced by a build. Only
// one frame is meant to be live at a time; the others stay built but
// inactive until activated.
type FrameSet struct {
	frames []*Node
}

func newFrameSet(frames []*Node) *FrameSet {
	return &FrameSet{frames: frames}
}

// Len returns the number of frames.
func (fs *FrameSet) Len() int {
	return len(fs.frames)
}

// Frames returns the frame roots in build order. The slice MUST NOT be mutated.
func (fs *FrameSet) Frames() []*Node {
	return fs.frames
}

// Names returns the source names of the frames in build order.
func (fs *FrameSet) Names() []string {
	names := make([]string, 0, len(fs.frames))
	for _, f := range fs.frames {
		names = append(names, frameName(f))
	}
	return names
}

// Get returns the frame whose source name is name, or nil.
func (fs *FrameSet) Get(name string) *Node {
	for _, f := range fs.frames {
		if frameName(f) == name {
			return f
		}
	}
	return nil
}

// Active returns the first active frame, or nil.
func (fs *FrameSet) Active() *Node {
	for _, f := range fs.frames {
		if f.Active && !f.IsDisposed() {
			return f
		}
	}
	return nil
}

// Activate makes the named frame the only active one.
func (fs *FrameSet) Activate(name string) (*Node, error) {
	target := fs.Get(name)
	if target == nil {
		return nil, fmt.Errorf("figbridge: no frame named %q", name)
	}
	for _, f := range fs.frames {
		f.Active = f == target
	}
	return target, nil
}

// Fade activates the named frame and returns a tween that fades it in from
// transparent over duration seconds.
func (fs *FrameSet) Fade(name string, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	target, err := fs.Activate(name)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		fn = ease.Linear
	}
	target.Alpha = 0
	return TweenAlpha(target, 1, duration, fn), nil
}

func frameName(f *Node) string {
	if f.Source != nil {
		return f.Source.Name
	}
	return f.Name
}
