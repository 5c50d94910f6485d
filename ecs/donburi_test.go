package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/figbridge"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Report(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []figbridge.Diagnostic
	DiagnosticEventType.Subscribe(world, func(w donburi.World, d figbridge.Diagnostic) {
		received = append(received, d)
	})

	sink.Report(figbridge.Diagnostic{Kind: figbridge.DiagUnmappedInstance, NodeName: "Knob", Key: "Knob"})
	sink.Report(figbridge.Diagnostic{Kind: figbridge.DiagFrameSizeMismatch, NodeName: "Main"})

	if len(received) != 0 {
		t.Fatalf("events delivered before processing: %d", len(received))
	}
	DiagnosticEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Kind != figbridge.DiagUnmappedInstance || received[0].Key != "Knob" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Kind != figbridge.DiagFrameSizeMismatch {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	DiagnosticEventType.Subscribe(world, func(w donburi.World, d figbridge.Diagnostic) { count1++ })
	DiagnosticEventType.Subscribe(world, func(w donburi.World, d figbridge.Diagnostic) { count2++ })

	sink.Report(figbridge.Diagnostic{Kind: figbridge.DiagUnsupportedNode})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func buildSample(t *testing.T, world donburi.World) *figbridge.Scene {
	t.Helper()
	scene := figbridge.NewScene()
	scene.AddFramesFolder("")
	cfg := figbridge.DefaultConfig()
	cfg.FrameSize = figbridge.Vec2{X: 200, Y: 100}
	b := figbridge.NewBuilder(scene, figbridge.ComponentTable{}, cfg,
		figbridge.WithSink(NewDonburiSink(world)))

	frame := &figbridge.DesignNode{
		ID: "1:1", Name: "Main", Type: figbridge.DesignFrame, Visible: true,
		AbsoluteBoundingBox: &figbridge.Rect{Width: 200, Height: 100},
		Children: []*figbridge.DesignNode{
			{ID: "1:2", Name: "Box", Type: figbridge.DesignRectangle, Visible: true,
				AbsoluteBoundingBox: &figbridge.Rect{X: 10, Y: 10, Width: 20, Height: 20}},
			{ID: "1:3", Name: "Knob", Type: figbridge.DesignInstance, Visible: true,
				AbsoluteBoundingBox: &figbridge.Rect{X: 50, Y: 10, Width: 20, Height: 20}},
		},
	}
	if _, err := b.Build([]*figbridge.DesignNode{frame}, "Document"); err != nil {
		t.Fatalf("Build: %v", err)
	}
	return scene
}

func TestMirror(t *testing.T) {
	world := donburi.NewWorld()
	scene := buildSample(t, world)

	created := Mirror(world, scene.Root(), figbridge.DefaultPositionScale)
	// Frame and rectangle; the unmapped instance produced nothing and the
	// anchors have no source.
	if len(created) != 2 {
		t.Fatalf("created %d entities, want 2", len(created))
	}

	box := scene.Find("Box [Rectangle]")
	if box == nil {
		t.Fatal("Box not built")
	}
	if box.EntityID != uint32(created[1].Id()) {
		t.Errorf("EntityID = %d, want %d", box.EntityID, created[1].Id())
	}

	data := Source.Get(world.Entry(created[1]))
	if data.NodeID != box.ID {
		t.Errorf("NodeID = %d, want %d", data.NodeID, box.ID)
	}
	if data.Info.RawBoundingBox != "x:10 y:10 w:20 h:20" {
		t.Errorf("RawBoundingBox = %q", data.Info.RawBoundingBox)
	}
	if data.Frame != "Main [Frame]" {
		t.Errorf("Frame = %q", data.Frame)
	}
}

func TestMirror_DiagnosticsReachWorld(t *testing.T) {
	world := donburi.NewWorld()
	var kinds []figbridge.DiagnosticKind
	DiagnosticEventType.Subscribe(world, func(w donburi.World, d figbridge.Diagnostic) {
		kinds = append(kinds, d.Kind)
	})
	buildSample(t, world)
	DiagnosticEventType.ProcessEvents(world)

	if len(kinds) != 1 || kinds[0] != figbridge.DiagUnmappedInstance {
		t.Errorf("kinds = %v, want [unmapped-instance]", kinds)
	}
}

func TestClear(t *testing.T) {
	world := donburi.NewWorld()
	scene := buildSample(t, world)
	Mirror(world, scene.Root(), figbridge.DefaultPositionScale)

	Clear(world)
	n := donburi.NewQuery(filter.Contains(Source)).Count(world)
	if n != 0 {
		t.Errorf("%d entities left after Clear", n)
	}
}
