package figmafile

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/figbridge"
)

func TestLoadSample(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	assert.Equal(t, "Hand Menu", f.Name)
	assert.Equal(t, "4412", f.Version)
	assert.Equal(t, figbridge.DesignDocument, f.Document.Type)

	pages := f.Pages()
	require.Len(t, pages, 1)
	assert.Equal(t, figbridge.DesignCanvas, pages[0].Type)
	assert.Same(t, pages[0], f.Page("Page 1"))
	assert.Nil(t, f.Page("Missing"))
}

func TestNodeConversion(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	main := f.Page("Page 1").FindChild("Main")
	require.NotNil(t, main)
	require.NotNil(t, main.AbsoluteBoundingBox)
	assert.Equal(t, figbridge.Vec2{X: 1440, Y: 1024}, main.Size())
	assert.True(t, main.Visible, "visible defaults to true")

	title := main.FindChild("Title")
	require.NotNil(t, title)
	assert.Equal(t, figbridge.DesignText, title.Type)
	assert.Equal(t, "Hello", title.Characters)
	require.NotNil(t, title.Style)
	assert.Equal(t, 32.0, title.Style.FontSize)
	assert.Equal(t, figbridge.HAlignCenter, title.Style.HorizontalAlign)
	assert.Equal(t, figbridge.VAlignBottom, title.Style.VerticalAlign)

	hidden := main.FindChild("Hidden")
	require.NotNil(t, hidden)
	assert.False(t, hidden.Visible)
	assert.Nil(t, hidden.Style, "only text nodes carry a style")

	inst := main.FindChild("Button/Primary")
	require.NotNil(t, inst)
	assert.Equal(t, figbridge.DesignInstance, inst.Type)
	assert.Len(t, inst.Children, 1)

	deco := f.Page("Page 1").FindChild("Decoration")
	require.NotNil(t, deco)
	assert.Equal(t, figbridge.DesignVector, deco.Type)
}

func TestTopLevelFrames(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	var names []string
	for _, fr := range f.TopLevelFrames() {
		names = append(names, fr.Name)
	}
	// "Inner" sits under an instance and is not reported.
	assert.Equal(t, []string{"Main", "Settings"}, names)
}

func TestTopLevelFramesSkipsUnbuiltSubtrees(t *testing.T) {
	body := `{"name":"c","document":{"id":"0:0","type":"DOCUMENT","children":[
	  {"id":"0:1","type":"CANVAS","name":"P","children":[
	    {"id":"1:1","type":"COMPONENT","name":"Card","children":[
	      {"id":"1:2","type":"FRAME","name":"InComponent"}]},
	    {"id":"2:1","type":"BOOLEAN_OPERATION","name":"Cut","children":[
	      {"id":"2:2","type":"FRAME","name":"InBoolean"}]},
	    {"id":"3:1","type":"COMPONENT_SET","name":"Set","children":[
	      {"id":"3:2","type":"FRAME","name":"InSet"}]},
	    {"id":"4:1","type":"GROUP","name":"Group","children":[
	      {"id":"4:2","type":"FRAME","name":"InGroup"}]}]}]}}`
	f, err := Parse([]byte(body))
	require.NoError(t, err)

	var names []string
	for _, fr := range f.TopLevelFrames() {
		names = append(names, fr.Name)
	}
	assert.Equal(t, []string{"InGroup"}, names)
}

func TestDecodeReader(t *testing.T) {
	body := `{"name":"x","document":{"id":"0:0","type":"DOCUMENT","children":[{"id":"0:1","type":"CANVAS","name":"P"}]}}`
	f, err := Decode(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, f.Pages(), 1)
	assert.Nil(t, f.Pages()[0].AbsoluteBoundingBox)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`{"name":`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"name":"no document"}`))
	assert.ErrorContains(t, err, "no document")

	_, err = Load(filepath.Join("testdata", "missing.json"))
	assert.Error(t, err)
}

func TestUnknownTypeIsKept(t *testing.T) {
	body := `{"document":{"id":"0:0","type":"DOCUMENT","children":[{"id":"9:9","type":"WASHI_TAPE","name":"t"}]}}`
	f, err := Parse([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, figbridge.DesignUnknown, f.Pages()[0].Type)
}
