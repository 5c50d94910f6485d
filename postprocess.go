package figbridge

import "fmt"

// SliderReferenceWidth is the design width at which a slider prefab needs no
// rescaling.
const SliderReferenceWidth = 764.0

// PostProcessContext is passed to a PostProcessFunc for one instantiated
// component.
type PostProcessContext struct {
	// Node is the instantiated component, already positioned.
	Node *Node
	// Design is the instance node it was built from.
	Design     *DesignNode
	Resolution Resolution
	Config     Config

	state *buildState
}

// Report records a recoverable diagnostic for the current build.
func (c PostProcessContext) Report(d Diagnostic) {
	if c.state != nil {
		c.state.report(d)
	}
}

// PostProcessFunc adjusts an instantiated component after placement.
type PostProcessFunc func(ctx PostProcessContext)

// DefaultPostProcessors returns the built-in processors keyed by kind.
// PostProcessDefault has none.
func DefaultPostProcessors() map[PostProcessKind]PostProcessFunc {
	return map[PostProcessKind]PostProcessFunc{
		PostProcessButton:           ProcessButton,
		PostProcessButtonCollection: ProcessButtonCollection,
		PostProcessBackplate:        ProcessBackplate,
		PostProcessSlider:           ProcessSlider,
	}
}

// ProcessButton copies the first text found in the instance's design subtree
// into the prefab's label.
func ProcessButton(ctx PostProcessContext) {
	label := FindLabel(ctx.Node)
	if label == nil {
		return
	}
	if s, ok := ctx.Design.FirstText(); ok {
		label.TextBlock.Content = s
	}
}

// ProcessButtonCollection assigns the texts of the design's "Buttons" group
// to the prefab's buttons in order. A count mismatch is reported and only
// the overlapping prefix is assigned.
func ProcessButtonCollection(ctx PostProcessContext) {
	var labels []*Node
	if group := findBelow(ctx.Node, ButtonCollectionName); group != nil {
		for _, b := range group.Children() {
			if l := FindLabel(b); l != nil {
				labels = append(labels, l)
			}
		}
	}

	var texts []string
	for _, g := range ctx.Design.Children {
		if g.Name != ButtonsGroupName {
			continue
		}
		for _, b := range g.Children {
			s, _ := b.FirstText()
			texts = append(texts, s)
		}
	}

	if len(labels) != len(texts) {
		ctx.Report(Diagnostic{
			Kind:     DiagLabelCountMismatch,
			NodeID:   ctx.Design.ID,
			NodeName: ctx.Design.Name,
			Key:      ctx.Resolution.Key,
			Message:  fmt.Sprintf("%d button labels in the design for %d buttons in the component", len(texts), len(labels)),
		})
	}
	for i := 0; i < len(labels) && i < len(texts); i++ {
		labels[i].TextBlock.Content = texts[i]
	}
}

// ProcessBackplate scales the component to the node's size, keeping depth.
func ProcessBackplate(ctx PostProcessContext) {
	size := ctx.Design.Size().Mul(ctx.Config.PositionScale)
	ctx.Node.Scale = Vec3{size.X, size.Y, ctx.Node.Scale.Z}
}

// ProcessSlider rescales the component uniformly by the ratio of the node's
// width to SliderReferenceWidth.
func ProcessSlider(ctx PostProcessContext) {
	factor := ctx.Design.Size().X / SliderReferenceWidth
	ctx.Node.Scale = ctx.Node.Scale.Mul(factor)
}

// FindLabel returns the text node named LabelName below n, falling back to
// the first text node in pre-order. n itself is not considered.
func FindLabel(n *Node) *Node {
	if l := findBelow(n, LabelName); l != nil && l.TextBlock != nil {
		return l
	}
	var found *Node
	for _, c := range n.Children() {
		c.Walk(func(x *Node) bool {
			if found != nil {
				return false
			}
			if x.TextBlock != nil {
				found = x
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}

// findBelow is Find restricted to n's descendants.
func findBelow(n *Node, name string) *Node {
	for _, c := range n.Children() {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}
