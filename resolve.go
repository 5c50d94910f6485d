package figbridge

import (
	"fmt"
	"strings"
)

// VariantSeparator splits a component name from its variant suffix
// ("Button/Primary").
const VariantSeparator = "/"

// Resolve returns the normalised component key for an instance name: the part
// before the first variant separator, or the whole name.
func Resolve(name string) string {
	if i := strings.Index(name, VariantSeparator); i >= 0 {
		return name[:i]
	}
	return name
}

// PostProcessKind selects the adjustment applied to an instantiated component.
type PostProcessKind uint8

const (
	PostProcessDefault PostProcessKind = iota
	PostProcessButton
	PostProcessButtonCollection
	PostProcessBackplate
	PostProcessSlider
)

func (k PostProcessKind) String() string {
	switch k {
	case PostProcessButton:
		return "button"
	case PostProcessButtonCollection:
		return "button-collection"
	case PostProcessBackplate:
		return "backplate"
	case PostProcessSlider:
		return "slider"
	default:
		return "default"
	}
}

// ParsePostProcessKind converts a kind name as written in component maps.
// Matching ignores case, dashes and underscores; "" means default.
func ParsePostProcessKind(s string) (PostProcessKind, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	switch norm {
	case "", "default", "none":
		return PostProcessDefault, nil
	case "button":
		return PostProcessButton, nil
	case "buttoncollection":
		return PostProcessButtonCollection, nil
	case "backplate":
		return PostProcessBackplate, nil
	case "slider":
		return PostProcessSlider, nil
	default:
		return PostProcessDefault, fmt.Errorf("figbridge: unknown post-process kind %q", s)
	}
}

// ComponentEntry is the table value for one normalised component name.
type ComponentEntry struct {
	// Asset may be nil; such entries resolve as unmapped.
	Asset       ComponentAsset
	PostProcess PostProcessKind
}

// ComponentTable maps normalised instance names to reusable components. It is
// read-only during a build.
type ComponentTable map[string]ComponentEntry

// Resolution is the outcome of looking an instance name up in a
// ComponentTable. Callers branch on Mapped rather than on nil values.
type Resolution struct {
	// Name is the original instance name, Key its normalised form.
	Name  string
	Key   string
	Entry ComponentEntry
	found bool
}

// Mapped reports whether the name resolved to a usable asset.
func (r Resolution) Mapped() bool {
	return r.found && r.Entry.Asset != nil
}

// Found reports whether the table has an entry for the key, usable or not.
func (r Resolution) Found() bool {
	return r.found
}

// Reason describes why an unmapped resolution failed.
func (r Resolution) Reason() string {
	switch {
	case r.Mapped():
		return ""
	case r.found:
		return fmt.Sprintf("component %q (original name: %q) has no reference asset", r.Key, r.Name)
	default:
		return fmt.Sprintf("component %q (original name: %q) not found in component table", r.Key, r.Name)
	}
}

// Lookup resolves an instance name. It never fails; unknown names yield an
// unmapped Resolution.
func (t ComponentTable) Lookup(name string) Resolution {
	key := Resolve(name)
	entry, ok := t[key]
	return Resolution{Name: name, Key: key, Entry: entry, found: ok}
}
