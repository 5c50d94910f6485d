// Package componentmap loads component tables from YAML.
//
// A map file names, for each normalised instance name, the prefab that
// replaces it and the post-process kind to apply:
//
//	components:
//	  Button:
//	    prefab: PressableButton
//	    process: button
//	  Icon:
//	    prefab: ""        # known but unmapped; instances are skipped
package componentmap

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/phanxgames/figbridge"
)

//go:embed default.yaml
var defaultMap []byte

// File is the on-disk layout of a component map.
type File struct {
	Components map[string]Entry `yaml:"components"`
}

// Entry is one component map row.
type Entry struct {
	Prefab  string `yaml:"prefab"`
	Process string `yaml:"process,omitempty"`
}

// Parse decodes a component map without resolving prefabs.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("componentmap: parse: %w", err)
	}
	for key := range f.Components {
		if key == "" {
			return nil, fmt.Errorf("componentmap: empty component name")
		}
		if strings.Contains(key, figbridge.VariantSeparator) {
			return nil, fmt.Errorf("componentmap: component name %q contains the variant separator %q", key, figbridge.VariantSeparator)
		}
	}
	return &f, nil
}

// Table resolves every entry against assets. Entries whose prefab is empty or
// unknown are kept without an asset, so instances of them resolve as unmapped.
// The second return value lists those keys in sorted order.
func (f *File) Table(assets figbridge.AssetLookup) (figbridge.ComponentTable, []string, error) {
	table := make(figbridge.ComponentTable, len(f.Components))
	var missing []string
	for key, e := range f.Components {
		kind, err := figbridge.ParsePostProcessKind(e.Process)
		if err != nil {
			return nil, nil, fmt.Errorf("componentmap: %s: %w", key, err)
		}
		entry := figbridge.ComponentEntry{PostProcess: kind}
		if e.Prefab != "" && assets != nil {
			if a, ok := assets.LookupAsset(e.Prefab); ok {
				entry.Asset = a
			}
		}
		if entry.Asset == nil {
			missing = append(missing, key)
		}
		table[key] = entry
	}
	sort.Strings(missing)
	return table, missing, nil
}

// Load parses data and resolves it against assets.
func Load(data []byte, assets figbridge.AssetLookup) (figbridge.ComponentTable, []string, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return f.Table(assets)
}

// LoadFile reads and loads the map at path.
func LoadFile(path string, assets figbridge.AssetLookup) (figbridge.ComponentTable, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("componentmap: %w", err)
	}
	return Load(data, assets)
}

// Default returns the built-in map resolved against assets, normally
// figbridge.DefaultLibrary().
func Default(assets figbridge.AssetLookup) (figbridge.ComponentTable, error) {
	table, _, err := Load(defaultMap, assets)
	return table, err
}

// Encode writes a table back to YAML. Assets are recorded by name.
func Encode(table figbridge.ComponentTable) ([]byte, error) {
	f := File{Components: make(map[string]Entry, len(table))}
	for key, e := range table {
		row := Entry{}
		if e.Asset != nil {
			row.Prefab = e.Asset.AssetName()
		}
		if e.PostProcess != figbridge.PostProcessDefault {
			row.Process = e.PostProcess.String()
		}
		f.Components[key] = row
	}
	return yaml.Marshal(f)
}
