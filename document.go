package figbridge

import "strings"

// DesignType is the kind of a node in the source design document.
type DesignType uint8

const (
	DesignUnknown DesignType = iota // unrecognised type string
	DesignCanvas                    // page
	DesignFrame                     // layout boundary
	DesignGroup
	DesignInstance // reference to a reusable component
	DesignRectangle
	DesignText
	DesignBoolean
	DesignComponent
	DesignComponentSet
	DesignDocument
	DesignEllipse
	DesignLine
	DesignRegularPolygon
	DesignSlice
	DesignStar
	DesignVector
)

var designTypeNames = [...]string{
	DesignUnknown:        "Unknown",
	DesignCanvas:         "Canvas",
	DesignFrame:          "Frame",
	DesignGroup:          "Group",
	DesignInstance:       "Instance",
	DesignRectangle:      "Rectangle",
	DesignText:           "Text",
	DesignBoolean:        "Boolean",
	DesignComponent:      "Component",
	DesignComponentSet:   "ComponentSet",
	DesignDocument:       "Document",
	DesignEllipse:        "Ellipse",
	DesignLine:           "Line",
	DesignRegularPolygon: "RegularPolygon",
	DesignSlice:          "Slice",
	DesignStar:           "Star",
	DesignVector:         "Vector",
}

func (t DesignType) String() string {
	if int(t) < len(designTypeNames) {
		return designTypeNames[t]
	}
	return "Unknown"
}

// wireDesignTypes maps the REST API's upper snake case type names.
var wireDesignTypes = map[string]DesignType{
	"CANVAS":            DesignCanvas,
	"FRAME":             DesignFrame,
	"GROUP":             DesignGroup,
	"INSTANCE":          DesignInstance,
	"RECTANGLE":         DesignRectangle,
	"TEXT":              DesignText,
	"BOOLEAN":           DesignBoolean,
	"BOOLEAN_OPERATION": DesignBoolean,
	"COMPONENT":         DesignComponent,
	"COMPONENT_SET":     DesignComponentSet,
	"DOCUMENT":          DesignDocument,
	"ELLIPSE":           DesignEllipse,
	"LINE":              DesignLine,
	"REGULAR_POLYGON":   DesignRegularPolygon,
	"SLICE":             DesignSlice,
	"STAR":              DesignStar,
	"VECTOR":            DesignVector,
}

// ParseDesignType converts a wire type name ("FRAME", "COMPONENT_SET") to a
// DesignType, ignoring case. Unrecognised names yield DesignUnknown.
func ParseDesignType(s string) DesignType {
	if t, ok := wireDesignTypes[strings.ToUpper(s)]; ok {
		return t
	}
	return DesignUnknown
}

// HorizontalAlign is the source document's horizontal text alignment.
type HorizontalAlign uint8

const (
	HAlignLeft HorizontalAlign = iota
	HAlignCenter
	HAlignRight
	HAlignJustified
)

// ParseHorizontalAlign converts "LEFT", "CENTER", "RIGHT" or "JUSTIFIED".
func ParseHorizontalAlign(s string) HorizontalAlign {
	switch strings.ToUpper(s) {
	case "CENTER":
		return HAlignCenter
	case "RIGHT":
		return HAlignRight
	case "JUSTIFIED":
		return HAlignJustified
	default:
		return HAlignLeft
	}
}

// VerticalTextAlign is the source document's vertical text alignment.
type VerticalTextAlign uint8

const (
	VAlignTop VerticalTextAlign = iota
	VAlignCenter
	VAlignBottom
)

// ParseVerticalAlign converts "TOP", "CENTER" or "BOTTOM".
func ParseVerticalAlign(s string) VerticalTextAlign {
	switch strings.ToUpper(s) {
	case "CENTER":
		return VAlignCenter
	case "BOTTOM":
		return VAlignBottom
	default:
		return VAlignTop
	}
}

// TextStyle carries the typography of a Text node.
type TextStyle struct {
	FontSize        float64
	HorizontalAlign HorizontalAlign
	VerticalAlign   VerticalTextAlign
}

// DesignNode is one element of the source document. The tree is read-only
// input owned by the caller; the builder never mutates it.
type DesignNode struct {
	ID   string
	Name string
	Type DesignType

	// AbsoluteBoundingBox is nil only for synthetic roots such as pages.
	AbsoluteBoundingBox *Rect
	Visible             bool

	// Text only.
	Characters string
	Style      *TextStyle

	Children []*DesignNode
}

// Position returns the top-left corner of the bounding box, or zero.
func (d *DesignNode) Position() Vec2 {
	if d.AbsoluteBoundingBox == nil {
		return Vec2{}
	}
	return d.AbsoluteBoundingBox.Position()
}

// Size returns the bounding box size, or zero.
func (d *DesignNode) Size() Vec2 {
	if d.AbsoluteBoundingBox == nil {
		return Vec2{}
	}
	return d.AbsoluteBoundingBox.Size()
}

// FindChild returns the first direct child with the given name.
func (d *DesignNode) FindChild(name string) *DesignNode {
	for _, c := range d.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FirstText returns the characters of the first Text node found by a
// depth-first search starting at d. ok is false when the subtree holds no text.
func (d *DesignNode) FirstText() (text string, ok bool) {
	if d == nil {
		return "", false
	}
	if d.Type == DesignText {
		return d.Characters, true
	}
	for _, c := range d.Children {
		if s, ok := c.FirstText(); ok {
			return s, true
		}
	}
	return "", false
}

// Walk calls fn for d and every descendant in pre-order. Returning false from
// fn skips that node's children.
func (d *DesignNode) Walk(fn func(*DesignNode) bool) {
	if d == nil || !fn(d) {
		return
	}
	for _, c := range d.Children {
		c.Walk(fn)
	}
}
