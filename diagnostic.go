package figbridge

import (
	"errors"
	"fmt"
)

// Fatal build errors. Recoverable conditions are reported as Diagnostics.
var (
	// ErrMissingFramesFolder is returned when the scene has no frames-folder
	// anchor. Nothing is mutated.
	ErrMissingFramesFolder = errors.New("figbridge: frames folder anchor not found in scene")
	// ErrBuildInProgress is returned by a Build call made while another Build
	// on the same Builder is still running.
	ErrBuildInProgress = errors.New("figbridge: build already in progress")
	// ErrInstantiate wraps a component asset failure. The live tree is left
	// untouched.
	ErrInstantiate = errors.New("figbridge: component instantiation failed")
)

// DiagnosticKind classifies a diagnostic so callers and tests can tell
// conditions apart without parsing messages.
type DiagnosticKind uint8

const (
	DiagUnsupportedNode     DiagnosticKind = iota // node type has no representation; subtree skipped
	DiagUnmappedInstance                          // instance name has no asset; subtree skipped
	DiagFrameSizeMismatch                         // top-level frame differs from the configured size
	DiagLabelCountMismatch                        // post-process label count differs from prefab
	DiagMissingFramesFolder                       // fatal: scene anchor absent
	DiagTextOverflow                              // unwrapped text is wider than its box
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagUnsupportedNode:
		return "unsupported-node"
	case DiagUnmappedInstance:
		return "unmapped-instance"
	case DiagFrameSizeMismatch:
		return "frame-size-mismatch"
	case DiagLabelCountMismatch:
		return "label-count-mismatch"
	case DiagMissingFramesFolder:
		return "missing-frames-folder"
	case DiagTextOverflow:
		return "text-overflow"
	default:
		return "unknown"
	}
}

// Fatal reports whether the kind aborts a build.
func (k DiagnosticKind) Fatal() bool {
	return k == DiagMissingFramesFolder
}

// Diagnostic is one condition observed during a build.
type Diagnostic struct {
	Kind     DiagnosticKind
	NodeID   string
	NodeName string
	// Key is the normalised component name for instance diagnostics.
	Key     string
	Message string
}

func (d Diagnostic) String() string {
	if d.NodeName == "" {
		return fmt.Sprintf("[%s] %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("[%s] %q: %s", d.Kind, d.NodeName, d.Message)
}

// DiagnosticSink receives diagnostics as they are produced.
type DiagnosticSink interface {
	Report(d Diagnostic)
}

// DiagnosticSinkFunc adapts a function to DiagnosticSink.
type DiagnosticSinkFunc func(Diagnostic)

// Report calls f(d).
func (f DiagnosticSinkFunc) Report(d Diagnostic) { f(d) }

// Diagnostics is a DiagnosticSink that records everything it receives.
type Diagnostics []Diagnostic

// Report appends d.
func (ds *Diagnostics) Report(d Diagnostic) { *ds = append(*ds, d) }

// OfKind returns the diagnostics with the given kind, in report order.
func (ds Diagnostics) OfKind(kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range ds {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Count returns the number of diagnostics with the given kind.
func (ds Diagnostics) Count(kind DiagnosticKind) int {
	n := 0
	for _, d := range ds {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
