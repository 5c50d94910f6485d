package figbridge

// --- ID counter ---

// nodeIDCounter is a plain counter. Builds are single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the output scene graph element. A single flat struct is used for
// containers, text primitives and component instances.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Source design node, nil for nodes not produced by a build (anchors,
	// prefab sub-elements).
	Source     *DesignNode
	SourceType DesignType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local, output space)
	Position Vec3
	Scale    Vec3
	// Pivot is the normalised point of Size that Position refers to.
	// (0.5, 0.5) is the center; (0, 1) is the top-left corner in y-up space.
	Pivot Vec2
	// Size is the node's extent in its own unscaled units.
	Size Vec2

	// FramePosition is the position relative to the enclosing frame before it
	// was converted to parent-local space.
	FramePosition Vec3

	// Activation
	Alpha         float64
	Active        bool
	SourceVisible bool

	// Frame bookkeeping
	IsFrameRoot     bool
	ContainingFrame *Node

	// Component fields (NodeTypeComponent)
	Asset string

	// Text fields (NodeTypeText)
	TextBlock *TextBlock

	// Metadata
	UserData any
	EntityID uint32

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = Vec3{1, 1, 1}
	n.Pivot = Vec2{0.5, 0.5}
	n.Alpha = 1
	n.Active = true
	n.SourceVisible = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewText creates a text node with the given content and font.
func NewText(name string, content string, font Font) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		TextBlock: &TextBlock{
			Content: content,
			Font:    font,
		},
	}
	nodeDefaults(n)
	return n
}

// NewComponent creates a node standing for an instance of the named asset.
func NewComponent(name, asset string) *Node {
	n := &Node{Name: name, Type: NodeTypeComponent, Asset: asset}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("figbridge: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("figbridge: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("figbridge: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("figbridge: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("figbridge: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("figbridge: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node and returns them in
// order. Children are NOT disposed.
func (n *Node) RemoveChildren() []*Node {
	removed := make([]*Node, len(n.children))
	copy(removed, n.children)
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
	return removed
}

// DisposeChildren disposes every child of this node. Iterates over a snapshot
// so removal during disposal cannot skip entries.
func (n *Node) DisposeChildren() {
	for _, child := range n.RemoveChildren() {
		child.dispose()
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FindChild returns the first direct child named name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Find returns the first node named name in a pre-order search of the subtree
// rooted at n (n included), or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for n and every descendant in pre-order. Returning false from
// fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// CountDescendants returns the number of nodes below n, n excluded.
func (n *Node) CountDescendants() int {
	count := 0
	for _, c := range n.children {
		count += 1 + c.CountDescendants()
	}
	return count
}

// ActiveInHierarchy reports whether n and all of its ancestors are active.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Active {
			return false
		}
	}
	return true
}

// SetActive sets the node's own active flag.
func (n *Node) SetActive(active bool) {
	n.Active = active
}

// Clone returns a deep copy of the subtree rooted at n with fresh IDs and no
// parent. Source pointers are shared; TextBlocks are copied.
func (n *Node) Clone() *Node {
	c := *n
	c.ID = nextNodeID()
	c.Parent = nil
	c.children = nil
	c.disposed = false
	if n.TextBlock != nil {
		tb := *n.TextBlock
		c.TextBlock = &tb
	}
	for _, child := range n.children {
		c.AddChild(child.Clone())
	}
	return &c
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.ContainingFrame = nil
	n.Source = nil
	n.TextBlock = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
