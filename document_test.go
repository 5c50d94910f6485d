package figbridge

import "testing"

func TestParseDesignType(t *testing.T) {
	cases := map[string]DesignType{
		"FRAME":             DesignFrame,
		"COMPONENT_SET":     DesignComponentSet,
		"BOOLEAN_OPERATION": DesignBoolean,
		"TEXT":              DesignText,
		"frame":             DesignFrame,
		"Instance":          DesignInstance,
		"FRAMES":            DesignUnknown,
		"":                  DesignUnknown,
	}
	for in, want := range cases {
		if got := ParseDesignType(in); got != want {
			t.Errorf("ParseDesignType(%q) = %v, want %v", in, got, want)
		}
	}
	if DesignComponentSet.String() != "ComponentSet" {
		t.Errorf("String = %q", DesignComponentSet.String())
	}
	if DesignType(200).String() != "Unknown" {
		t.Error("out of range type should print Unknown")
	}
}

func TestParseTextAlign(t *testing.T) {
	h := map[string]HorizontalAlign{
		"LEFT": HAlignLeft, "CENTER": HAlignCenter, "right": HAlignRight,
		"Justified": HAlignJustified, "": HAlignLeft, "MIDDLE": HAlignLeft,
	}
	for in, want := range h {
		if got := ParseHorizontalAlign(in); got != want {
			t.Errorf("ParseHorizontalAlign(%q) = %v, want %v", in, got, want)
		}
	}
	v := map[string]VerticalTextAlign{
		"TOP": VAlignTop, "center": VAlignCenter, "Bottom": VAlignBottom, "": VAlignTop,
	}
	for in, want := range v {
		if got := ParseVerticalAlign(in); got != want {
			t.Errorf("ParseVerticalAlign(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDesignNodeGeometry(t *testing.T) {
	d := &DesignNode{AbsoluteBoundingBox: &Rect{X: 1, Y: 2, Width: 3, Height: 4}}
	if d.Position() != (Vec2{1, 2}) || d.Size() != (Vec2{3, 4}) {
		t.Errorf("Position/Size = %v/%v", d.Position(), d.Size())
	}
	empty := &DesignNode{}
	if empty.Position() != (Vec2{}) || empty.Size() != (Vec2{}) {
		t.Error("nodes without a box should report zero geometry")
	}
}

func TestDesignNodeFirstText(t *testing.T) {
	d := &DesignNode{Type: DesignInstance, Children: []*DesignNode{
		{Type: DesignGroup, Children: []*DesignNode{
			{Type: DesignRectangle},
			{Type: DesignText, Characters: "deep"},
		}},
		{Type: DesignText, Characters: "shallow"},
	}}
	if s, ok := d.FirstText(); !ok || s != "deep" {
		t.Errorf("FirstText = %q, %v, want depth-first %q", s, ok, "deep")
	}
	if _, ok := (&DesignNode{Type: DesignGroup}).FirstText(); ok {
		t.Error("no text should report ok=false")
	}
	var nilNode *DesignNode
	if _, ok := nilNode.FirstText(); ok {
		t.Error("nil node should report ok=false")
	}
}

func TestDesignNodeWalk(t *testing.T) {
	d := &DesignNode{Name: "root", Children: []*DesignNode{
		{Name: "a", Children: []*DesignNode{{Name: "a1"}}},
		{Name: "b"},
	}}
	var names string
	d.Walk(func(n *DesignNode) bool {
		names += n.Name + ","
		return n.Name != "a"
	})
	if names != "root,a,b," {
		t.Errorf("visited %q", names)
	}
	if d.FindChild("b") == nil || d.FindChild("a1") != nil {
		t.Error("FindChild should only see direct children")
	}
}

func TestDiagnostics(t *testing.T) {
	var ds Diagnostics
	var sink DiagnosticSink = &ds
	sink.Report(Diagnostic{Kind: DiagUnmappedInstance, NodeName: "Knob", Message: "missing"})
	sink.Report(Diagnostic{Kind: DiagFrameSizeMismatch, Message: "size"})
	sink.Report(Diagnostic{Kind: DiagUnmappedInstance, NodeName: "Dial"})

	if got := len(ds.OfKind(DiagUnmappedInstance)); got != 2 {
		t.Errorf("OfKind = %d, want 2", got)
	}
	if ds[0].String() != `[unmapped-instance] "Knob": missing` {
		t.Errorf("String = %q", ds[0].String())
	}
	if ds[1].String() != "[frame-size-mismatch] size" {
		t.Errorf("String = %q", ds[1].String())
	}
	if !DiagMissingFramesFolder.Fatal() || DiagUnmappedInstance.Fatal() {
		t.Error("only the missing frames folder is fatal")
	}

	var got []DiagnosticKind
	f := DiagnosticSinkFunc(func(d Diagnostic) { got = append(got, d.Kind) })
	f.Report(Diagnostic{Kind: DiagLabelCountMismatch})
	if len(got) != 1 || got[0] != DiagLabelCountMismatch {
		t.Errorf("DiagnosticSinkFunc got %v", got)
	}
}
