package figbridge

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// fixedFont measures every rune as w units wide and h units tall.
type fixedFont struct{ w, h float64 }

func (f fixedFont) MeasureString(s string) (float64, float64) {
	return float64(len([]rune(s))) * f.w, f.h
}

func (f fixedFont) LineHeight() float64 { return f.h }

// --- LoadTTFFont ---

func TestLoadTTFFont_InvalidData(t *testing.T) {
	_, err := LoadTTFFont([]byte("not a TTF file"), 16)
	if err == nil {
		t.Error("expected error for invalid TTF data, got nil")
	}
}

func TestLoadTTFFont_GoRegular(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadTTFFont: %v", err)
	}
	if f.Size() != 16 {
		t.Errorf("Size = %v, want 16", f.Size())
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v, want > 0", f.LineHeight())
	}
	w1, _ := f.MeasureString("W")
	w2, _ := f.MeasureString("WWWW")
	if w2 <= w1 {
		t.Errorf("longer text should measure wider: %v vs %v", w1, w2)
	}

	big := f.WithSize(32)
	if big.LineHeight() <= f.LineHeight() {
		t.Error("larger size should have a larger line height")
	}
	if big.Face() == nil {
		t.Error("Face should not be nil")
	}
}

// --- TextBlock ---

func TestTextBlock_MeasureWithoutFont(t *testing.T) {
	tb := &TextBlock{Content: "hello"}
	w, h := tb.Measure()
	if w != 0 || h != 0 {
		t.Errorf("Measure = (%v, %v), want zero", w, h)
	}
}

func TestTextBlock_Overflows(t *testing.T) {
	tb := &TextBlock{Content: "hello", Font: fixedFont{w: 10, h: 12}}
	if !tb.Overflows(40) {
		t.Error("50 units of text should overflow 40")
	}
	if tb.Overflows(50) {
		t.Error("50 units of text should fit 50")
	}
}

func TestTextBlock_MeasureAtFontSize(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadTTFFont: %v", err)
	}
	raw, _ := f.MeasureString("Start")
	tb := &TextBlock{Content: "Start", Font: f, FontSize: 32}
	w, _ := tb.Measure()
	if math.Abs(w-2*raw) > 1e-9 {
		t.Errorf("Measure at 32 = %v, want twice %v", w, raw)
	}
	if !tb.Overflows(raw * 1.5) {
		t.Error("text measured at double size should overflow 1.5x the raw width")
	}
}

// --- Alignment mapping ---

func TestMapHorizontalAlign(t *testing.T) {
	cases := map[HorizontalAlign]TextAlign{
		HAlignLeft:      TextAlignLeft,
		HAlignCenter:    TextAlignCenter,
		HAlignRight:     TextAlignRight,
		HAlignJustified: TextAlignJustified,
	}
	for in, want := range cases {
		if got := MapHorizontalAlign(in); got != want {
			t.Errorf("MapHorizontalAlign(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestMapVerticalAlign(t *testing.T) {
	cases := map[VerticalTextAlign]VerticalAlign{
		VAlignTop:    VerticalAlignTop,
		VAlignCenter: VerticalAlignMiddle,
		VAlignBottom: VerticalAlignBottom,
	}
	for in, want := range cases {
		if got := MapVerticalAlign(in); got != want {
			t.Errorf("MapVerticalAlign(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestParseAlignDefaults(t *testing.T) {
	if got := MapHorizontalAlign(ParseHorizontalAlign("SOMETHING")); got != TextAlignLeft {
		t.Errorf("unknown horizontal alignment = %v, want Left", got)
	}
	if got := MapVerticalAlign(ParseVerticalAlign("")); got != VerticalAlignTop {
		t.Errorf("unknown vertical alignment = %v, want Top", got)
	}
}

// --- Text primitive ---

func TestNewTextPrimitive(t *testing.T) {
	d := &DesignNode{
		Name:                "Title",
		Type:                DesignText,
		Characters:          "Hello",
		AbsoluteBoundingBox: &Rect{Width: 200, Height: 40},
		Style:               &TextStyle{FontSize: 24, HorizontalAlign: HAlignRight, VerticalAlign: VAlignBottom},
	}
	n := NewTextPrimitive(d, 0.001, nil)

	if n.Type != NodeTypeText || n.TextBlock.Content != "Hello" {
		t.Fatalf("node = %+v", n)
	}
	tb := n.TextBlock
	if tb.FontSize != 24 || tb.Align != TextAlignRight || tb.VerticalAlign != VerticalAlignBottom {
		t.Errorf("style = %+v", tb)
	}
	if tb.Wrap {
		t.Error("wrapping should be off")
	}
	assertNear(t, "scale", n.Scale.X, 0.01)
	assertNear(t, "size.x", n.Size.X, 20)
	assertNear(t, "size.y", n.Size.Y, 4)
}

func TestNewTextPrimitiveNoStyle(t *testing.T) {
	n := NewTextPrimitive(&DesignNode{Name: "t", Type: DesignText}, 1, nil)
	if n.TextBlock.Align != TextAlignLeft || n.TextBlock.VerticalAlign != VerticalAlignTop {
		t.Errorf("defaults = %v/%v", n.TextBlock.Align, n.TextBlock.VerticalAlign)
	}
}

func TestAnchorTopLeft(t *testing.T) {
	d := &DesignNode{Type: DesignText, AbsoluteBoundingBox: &Rect{Width: 200, Height: 40}}
	n := NewTextPrimitive(d, 0.001, nil)
	anchor := Vec3{0.3, 0.4, 0}
	AnchorTopLeft(n, anchor)

	tl := n.Corners()[CornerTopLeft]
	assertNear(t, "top-left x", tl.X, anchor.X)
	assertNear(t, "top-left y", tl.Y, anchor.Y)

	// With a centre pivot the node sits half its rendered extent away.
	assertNear(t, "pos x", n.Position.X, 0.3+0.1)
	assertNear(t, "pos y", n.Position.Y, 0.4-0.02)
	if math.IsNaN(n.Position.Z) || n.Position.Z != 0 {
		t.Errorf("Z = %v, want 0", n.Position.Z)
	}
}
