package figbridge

import "testing"

func TestPrefabInstantiate(t *testing.T) {
	tmpl := NewComponent("tmpl", "")
	tmpl.Position = Vec3{Z: 0.5}
	tmpl.AddChild(NewText(LabelName, "x", nil))
	p := NewPrefab("Thing", tmpl)

	n, err := p.Instantiate("Thing/Big")
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if n == tmpl {
		t.Fatal("Instantiate should copy the template")
	}
	if n.Name != "Thing/Big" || n.Asset != "Thing" || n.Type != NodeTypeComponent {
		t.Errorf("instance = %q %q %v", n.Name, n.Asset, n.Type)
	}
	if n.Position.Z != 0.5 {
		t.Errorf("template position should be kept, got %v", n.Position)
	}
	if n.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", n.NumChildren())
	}
	if tmpl.Name != "tmpl" {
		t.Error("template should be unchanged")
	}
}

func TestPrefabInstantiateNoTemplate(t *testing.T) {
	_, err := NewPrefab("Broken", nil).Instantiate("x")
	if err == nil {
		t.Error("expected error for prefab without template")
	}
}

func TestPrefabLibrary(t *testing.T) {
	lib := PrefabLibrary{}
	lib.Add(NewPrefab("A", NewContainer("a")))

	var lookup AssetLookup = lib
	a, ok := lookup.LookupAsset("A")
	if !ok || a.AssetName() != "A" {
		t.Errorf("LookupAsset(A) = %v, %v", a, ok)
	}
	if _, ok := lookup.LookupAsset("B"); ok {
		t.Error("LookupAsset(B) should fail")
	}
}

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()
	for _, name := range []string{PrefabButton, PrefabButtonCollection, PrefabBackplate, PrefabSlider, PrefabFrameBackground} {
		if _, ok := lib.LookupAsset(name); !ok {
			t.Errorf("DefaultLibrary missing %q", name)
		}
	}

	btn, err := lib[PrefabButton].Instantiate("b")
	if err != nil {
		t.Fatal(err)
	}
	if label := FindLabel(btn); label == nil || label.Name != LabelName {
		t.Error("button should carry a MainLabel")
	}

	coll, err := lib[PrefabButtonCollection].Instantiate("c")
	if err != nil {
		t.Fatal(err)
	}
	group := coll.FindChild(ButtonCollectionName)
	if group == nil || group.NumChildren() != 3 {
		t.Fatalf("collection should hold a %s group of 3 buttons", ButtonCollectionName)
	}
	for _, b := range group.Children() {
		if FindLabel(b) == nil {
			t.Errorf("button %q has no label", b.Name)
		}
	}
}
