// Package ecs mirrors figbridge output into a Donburi world.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/figbridge"
)

// DiagnosticEventType is the Donburi event type for build diagnostics.
// Subscribe to it in ECS systems to react to unmapped components, frame size
// mismatches and the like.
var DiagnosticEventType = events.NewEventType[figbridge.Diagnostic]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a DiagnosticSink that publishes every diagnostic to
// DiagnosticEventType. Events are queued and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) figbridge.DiagnosticSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Report(d figbridge.Diagnostic) {
	DiagnosticEventType.Publish(s.world, d)
}

// SourceData is the component attached to every mirrored node.
type SourceData struct {
	NodeID uint32
	Info   figbridge.DebugInfo
	Active bool
	Frame  string
}

// Source is the component type holding SourceData.
var Source = donburi.NewComponentType[SourceData]()

// Mirror creates one entity per node in the subtree rooted at root, in
// pre-order, and stores the entity id back on Node.EntityID. Nodes without a
// design source are skipped. It returns the created entities.
func Mirror(world donburi.World, root *figbridge.Node, scale float64) []donburi.Entity {
	var created []donburi.Entity
	root.Walk(func(n *figbridge.Node) bool {
		if n.Source == nil {
			return true
		}
		e := world.Create(Source)
		entry := world.Entry(e)
		data := SourceData{
			NodeID: n.ID,
			Info:   figbridge.Describe(n, scale),
			Active: n.ActiveInHierarchy(),
		}
		if n.ContainingFrame != nil {
			data.Frame = n.ContainingFrame.Name
		}
		Source.SetValue(entry, data)
		n.EntityID = uint32(e.Id())
		created = append(created, e)
		return true
	})
	return created
}

// Clear removes every entity carrying the Source component.
func Clear(world donburi.World) {
	var stale []donburi.Entity
	donburi.NewQuery(filter.Contains(Source)).Each(world, func(entry *donburi.Entry) {
		stale = append(stale, entry.Entity())
	})
	for _, e := range stale {
		world.Remove(e)
	}
}
