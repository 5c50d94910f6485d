// Package figmafile decodes Figma REST API file responses into design trees.
//
// Only the fields the builder reads are decoded; everything else in the
// response is ignored. Retrieval and caching of the JSON are left to the
// caller.
package figmafile

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"

	"github.com/phanxgames/figbridge"
)

// File is a decoded file response.
type File struct {
	Name         string
	LastModified string
	Version      string
	Document     *figbridge.DesignNode
}

type rawFile struct {
	Name         string   `json:"name"`
	LastModified string   `json:"lastModified"`
	Version      string   `json:"version"`
	Document     *rawNode `json:"document"`
}

type rawNode struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Visible             *bool      `json:"visible"`
	AbsoluteBoundingBox *rawRect   `json:"absoluteBoundingBox"`
	Characters          string     `json:"characters"`
	Style               *rawStyle  `json:"style"`
	Children            []*rawNode `json:"children"`
}

type rawRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type rawStyle struct {
	FontSize            float64 `json:"fontSize"`
	TextAlignHorizontal string  `json:"textAlignHorizontal"`
	TextAlignVertical   string  `json:"textAlignVertical"`
}

// Parse decodes a file response body.
func Parse(data []byte) (*File, error) {
	var raw rawFile
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("figmafile: decode: %w", err)
	}
	return convert(&raw)
}

// Decode reads and decodes a file response from r.
func Decode(r io.Reader) (*File, error) {
	var raw rawFile
	if err := sonic.ConfigDefault.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("figmafile: decode: %w", err)
	}
	return convert(&raw)
}

// Load reads a cached file response from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("figmafile: %w", err)
	}
	return Parse(data)
}

func convert(raw *rawFile) (*File, error) {
	if raw.Document == nil {
		return nil, fmt.Errorf("figmafile: response has no document")
	}
	return &File{
		Name:         raw.Name,
		LastModified: raw.LastModified,
		Version:      raw.Version,
		Document:     convertNode(raw.Document),
	}, nil
}

func convertNode(r *rawNode) *figbridge.DesignNode {
	d := &figbridge.DesignNode{
		ID:      r.ID,
		Name:    r.Name,
		Type:    figbridge.ParseDesignType(r.Type),
		Visible: r.Visible == nil || *r.Visible,
	}
	if bb := r.AbsoluteBoundingBox; bb != nil {
		d.AbsoluteBoundingBox = &figbridge.Rect{X: bb.X, Y: bb.Y, Width: bb.Width, Height: bb.Height}
	}
	if d.Type == figbridge.DesignText {
		d.Characters = r.Characters
		d.Style = &figbridge.TextStyle{}
		if s := r.Style; s != nil {
			d.Style.FontSize = s.FontSize
			d.Style.HorizontalAlign = figbridge.ParseHorizontalAlign(s.TextAlignHorizontal)
			d.Style.VerticalAlign = figbridge.ParseVerticalAlign(s.TextAlignVertical)
		}
	}
	if len(r.Children) > 0 {
		d.Children = make([]*figbridge.DesignNode, 0, len(r.Children))
		for _, c := range r.Children {
			if c == nil {
				continue
			}
			d.Children = append(d.Children, convertNode(c))
		}
	}
	return d
}

// Pages returns the document's top-level nodes, normally canvases.
func (f *File) Pages() []*figbridge.DesignNode {
	if f.Document == nil {
		return nil
	}
	return f.Document.Children
}

// Page returns the page with the given name, or nil.
func (f *File) Page(name string) *figbridge.DesignNode {
	for _, p := range f.Pages() {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// TopLevelFrames returns every Frame that has no Frame ancestor, in document
// order. These are the frames a build with the default handlers attaches to
// the frames folder: the walk only enters node types that build descends
// into.
func (f *File) TopLevelFrames() []*figbridge.DesignNode {
	handlers := figbridge.DefaultHandlers()
	var frames []*figbridge.DesignNode
	for _, p := range f.Pages() {
		p.Walk(func(d *figbridge.DesignNode) bool {
			if d.Type == figbridge.DesignFrame {
				frames = append(frames, d)
				return false
			}
			if _, ok := handlers[d.Type]; !ok {
				return false
			}
			return d.Type != figbridge.DesignInstance
		})
	}
	return frames
}
