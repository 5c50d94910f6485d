package figbridge

import "fmt"

// ComponentAsset is a reusable component that can be instantiated into the
// output tree.
type ComponentAsset interface {
	AssetName() string
	Instantiate(name string) (*Node, error)
}

// AssetLookup finds component assets by name.
type AssetLookup interface {
	LookupAsset(name string) (ComponentAsset, bool)
}

// Prefab is a ComponentAsset backed by a template subtree. Each instance is a
// deep copy of the template.
type Prefab struct {
	Name     string
	Template *Node
}

// NewPrefab wraps template as a prefab named name.
func NewPrefab(name string, template *Node) *Prefab {
	return &Prefab{Name: name, Template: template}
}

// AssetName returns the prefab's name.
func (p *Prefab) AssetName() string {
	return p.Name
}

// Instantiate clones the template and renames the copy.
func (p *Prefab) Instantiate(name string) (*Node, error) {
	if p.Template == nil {
		return nil, fmt.Errorf("prefab %q has no template", p.Name)
	}
	n := p.Template.Clone()
	n.Name = name
	n.Type = NodeTypeComponent
	n.Asset = p.Name
	return n, nil
}

// PrefabLibrary is an AssetLookup over a fixed set of prefabs.
type PrefabLibrary map[string]*Prefab

// Add registers p under its name, replacing any previous prefab.
func (l PrefabLibrary) Add(p *Prefab) {
	l[p.Name] = p
}

// LookupAsset implements AssetLookup.
func (l PrefabLibrary) LookupAsset(name string) (ComponentAsset, bool) {
	p, ok := l[name]
	if !ok {
		return nil, false
	}
	return p, true
}

// Names of the sub-elements the default post-processors look for.
const (
	LabelName            = "MainLabel"
	ButtonCollectionName = "ButtonCollection"
	ButtonsGroupName     = "Buttons"
)

// Built-in prefab names.
const (
	PrefabButton           = "PressableButton"
	PrefabButtonCollection = "ButtonCollection"
	PrefabBackplate        = "Backplate"
	PrefabSlider           = "PinchSlider"
	PrefabFrameBackground  = "FrameBackground"
)

// FrameBackgroundName is the node name given to a frame background plate.
const FrameBackgroundName = "Background"

// DefaultLibrary returns the built-in prefab set: a labelled button, a
// collection of three buttons, a unit backplate and a slider.
func DefaultLibrary() PrefabLibrary {
	lib := PrefabLibrary{}
	button := newButtonTemplate()
	lib.Add(NewPrefab(PrefabButton, button))

	collection := NewComponent(PrefabButtonCollection, PrefabButtonCollection)
	group := NewContainer(ButtonCollectionName)
	for i := 0; i < 3; i++ {
		b := button.Clone()
		b.Name = fmt.Sprintf("Button%d", i+1)
		b.Position = Vec3{X: float64(i) * 0.032}
		group.AddChild(b)
	}
	collection.AddChild(group)
	lib.Add(NewPrefab(PrefabButtonCollection, collection))

	plate := NewComponent(PrefabBackplate, PrefabBackplate)
	plate.Size = Vec2{1, 1}
	lib.Add(NewPrefab(PrefabBackplate, plate))

	background := NewComponent(PrefabFrameBackground, PrefabFrameBackground)
	background.Size = Vec2{1, 1}
	lib.Add(NewPrefab(PrefabFrameBackground, background))

	slider := NewComponent(PrefabSlider, PrefabSlider)
	slider.Size = Vec2{0.25, 0.03}
	slider.AddChild(NewContainer("ThumbRoot"))
	lib.Add(NewPrefab(PrefabSlider, slider))

	return lib
}

func newButtonTemplate() *Node {
	b := NewComponent(PrefabButton, PrefabButton)
	b.Size = Vec2{0.032, 0.032}
	label := NewText(LabelName, "Button", nil)
	label.Position = Vec3{Z: -0.01}
	b.AddChild(label)
	return b
}
