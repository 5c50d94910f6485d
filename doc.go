// Package figbridge rebuilds Figma design documents as a retained node tree.
//
// A [Builder] walks a tree of [DesignNode] values depth first and emits one
// [Node] per node it can represent: canvases, frames, groups and rectangles
// become empty containers, text becomes a text primitive, and component
// instances are resolved by name through a [ComponentTable] to reusable
// assets such as [Prefab] templates.
//
// # Quick start
//
//	scene := figbridge.NewScene()
//	scene.AddFramesFolder("Frames")
//
//	cfg := figbridge.DefaultConfig()
//	cfg.FrameSize = figbridge.Vec2{X: 1440, Y: 1024}
//	cfg.Focus = figbridge.FocusByName("Home")
//
//	b := figbridge.NewBuilder(scene, table, cfg, figbridge.WithLogger(logger))
//	res, err := b.Build(pages, "Document")
//
// # Frames
//
// A Frame with no enclosing frame is a top-level frame. It is attached to the
// scene's frames folder, anchored at the origin, and becomes the coordinate
// reference for every node below it. Only frames selected by
// [Config.Focus] start active; [FrameSet.Activate] switches between them
// later.
//
// # Coordinates
//
// Design space has its origin at the top-left with Y down. Positions are
// converted with [ToOutputPosition]: relative to the enclosing frame, shifted
// by half the node's extent and re-centred on the expected frame size, then
// multiplied by [Config.PositionScale].
//
// # Diagnostics
//
// Unsupported node types, unmapped instances, frame size mismatches and
// label count mismatches do not stop a build. They are logged and returned as
// typed [Diagnostic] values in [BuildResult.Diagnostics]. A missing frames
// folder is fatal and returns [ErrMissingFramesFolder] before anything is
// touched.
package figbridge
