package figbridge

// DefaultFramesFolderName is the name AddFramesFolder uses when given "".
const DefaultFramesFolderName = "Frames"

// Scene is the top-level object that owns the output node tree and the
// frames-folder anchor that top-level frames are attached to.
type Scene struct {
	root         *Node
	framesFolder *Node
	debug        bool
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Find returns the first node with the given name in the scene, or nil.
func (s *Scene) Find(name string) *Node {
	return s.root.Find(name)
}

// AddFramesFolder creates the frames-folder anchor under the root and
// returns it. Calling it again replaces the anchor reference but leaves the
// previous node in the tree.
func (s *Scene) AddFramesFolder(name string) *Node {
	if name == "" {
		name = DefaultFramesFolderName
	}
	folder := NewContainer(name)
	s.root.AddChild(folder)
	s.framesFolder = folder
	return folder
}

// SetFramesFolder marks an existing node as the frames-folder anchor. Passing
// nil clears it.
func (s *Scene) SetFramesFolder(n *Node) {
	s.framesFolder = n
}

// FramesFolder returns the frames-folder anchor, or nil when it was never set,
// has been disposed, or is no longer attached to this scene.
func (s *Scene) FramesFolder() *Node {
	f := s.framesFolder
	if f == nil || f.IsDisposed() || !isAncestor(s.root, f) {
		return nil
	}
	return f
}

// SetDebugMode enables or disables debug mode. When enabled, tree operations
// check for disposed nodes and warn about deep or wide trees.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which have no scene pointer) can check it.
var globalDebug bool
