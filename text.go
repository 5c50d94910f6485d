package figbridge

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Text glyphs render in a different base unit than layout geometry: the
// primitive is scaled up by TextScaleFactor and its rect shrunk by
// TextRectFactor, so the rendered extent matches the design box.
const (
	TextScaleFactor = 10.0
	TextRectFactor  = 0.1
)

// Font is the interface for text measurement.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- TextBlock ---

// TextBlock holds text content and formatting for a text primitive.
type TextBlock struct {
	Content       string
	Font          Font
	FontSize      float64
	Align         TextAlign
	VerticalAlign VerticalAlign
	// Wrap enables automatic line wrapping at the rect width. Built text
	// leaves it off so runtime scale never re-wraps lines.
	Wrap bool
}

// sizedFont is a Font loaded at a known size, such as TTFFont.
type sizedFont interface {
	Size() float64
}

// Measure returns the unwrapped extent of the content, or zero without a
// font. Fonts that report their size are measured at FontSize when it is set.
func (tb *TextBlock) Measure() (width, height float64) {
	if tb.Font == nil {
		return 0, 0
	}
	w, h := tb.Font.MeasureString(tb.Content)
	if f, ok := tb.Font.(sizedFont); ok && tb.FontSize > 0 && f.Size() > 0 {
		k := tb.FontSize / f.Size()
		w, h = w*k, h*k
	}
	return w, h
}

// Overflows reports whether the measured content is wider than width.
func (tb *TextBlock) Overflows(width float64) bool {
	w, _ := tb.Measure()
	return w > width
}

// MapHorizontalAlign converts a source alignment to a TextAlign.
func MapHorizontalAlign(a HorizontalAlign) TextAlign {
	switch a {
	case HAlignCenter:
		return TextAlignCenter
	case HAlignJustified:
		return TextAlignJustified
	case HAlignRight:
		return TextAlignRight
	default:
		return TextAlignLeft
	}
}

// MapVerticalAlign converts a source alignment to a VerticalAlign.
func MapVerticalAlign(a VerticalTextAlign) VerticalAlign {
	switch a {
	case VAlignCenter:
		return VerticalAlignMiddle
	case VAlignBottom:
		return VerticalAlignBottom
	default:
		return VerticalAlignTop
	}
}

// NewTextPrimitive creates the text node for a Text design node. Position is
// left at zero; call AnchorTopLeft once the target position is known.
func NewTextPrimitive(d *DesignNode, positionScale float64, font Font) *Node {
	n := NewText(d.Name, d.Characters, font)
	tb := n.TextBlock
	if d.Style != nil {
		tb.FontSize = d.Style.FontSize
		tb.Align = MapHorizontalAlign(d.Style.HorizontalAlign)
		tb.VerticalAlign = MapVerticalAlign(d.Style.VerticalAlign)
	}
	tb.Wrap = false
	n.SetUniformScale(positionScale * TextScaleFactor)
	n.Size = d.Size().Mul(TextRectFactor)
	return n
}

// AnchorTopLeft moves n so that its rendered top-left corner, not its pivot,
// lands on anchor. The corner is measured after placement and the node is
// translated by the difference.
func AnchorTopLeft(n *Node, anchor Vec3) {
	n.Position = anchor
	c := n.Corners()
	delta := anchor.Sub(c[CornerTopLeft])
	n.Position = n.Position.Add(Vec3{delta.X, delta.Y, 0})
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font measurement.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("figbridge: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the size the font was loaded at.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// WithSize returns a font sharing this font's source at a different size.
func (f *TTFFont) WithSize(size float64) *TTFFont {
	face := &text.GoTextFace{Source: f.source, Size: size}
	m := face.Metrics()
	return &TTFFont{
		face:   face,
		source: f.source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}
