package figbridge

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("figbridge debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 64

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[figbridge] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[figbridge] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

// DebugInfo is the per-node record of where an output node came from.
type DebugInfo struct {
	NodeName          string
	NodeType          string
	RawBoundingBox    string
	ScaledBoundingBox string
	ContainingFrame   string
}

// Describe returns the DebugInfo for a built node. Nodes without a source
// report their own name and output type.
func Describe(n *Node, positionScale float64) DebugInfo {
	info := DebugInfo{
		NodeName:          n.Name,
		NodeType:          n.Type.String(),
		RawBoundingBox:    "NULL",
		ScaledBoundingBox: "NULL",
	}
	if n.ContainingFrame != nil {
		info.ContainingFrame = n.ContainingFrame.Name
	}
	d := n.Source
	if d == nil {
		return info
	}
	info.NodeName = d.Name
	info.NodeType = d.Type.String()
	if bb := d.AbsoluteBoundingBox; bb != nil {
		info.RawBoundingBox = fmt.Sprintf("x:%g y:%g w:%g h:%g", bb.X, bb.Y, bb.Width, bb.Height)
		p := bb.Position().Mul(positionScale)
		info.ScaledBoundingBox = fmt.Sprintf("(%g, %g) %gx%g", p.X, p.Y, bb.Width*positionScale, bb.Height*positionScale)
	}
	return info
}

// Dump writes an indented outline of the subtree rooted at n: one line per
// node with its position, scale and activation.
func Dump(w io.Writer, n *Node) error {
	return dump(w, n, 0)
}

func dump(w io.Writer, n *Node, depth int) error {
	state := "active"
	if !n.Active {
		state = "inactive"
	}
	line := fmt.Sprintf("%s%s pos=(%.4f, %.4f, %.4f) scale=(%.4g, %.4g, %.4g) %s",
		strings.Repeat("  ", depth), n.Name,
		n.Position.X, n.Position.Y, n.Position.Z,
		n.Scale.X, n.Scale.Y, n.Scale.Z, state)
	if n.TextBlock != nil {
		line += fmt.Sprintf(" text=%q", n.TextBlock.Content)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := dump(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
