package figbridge

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPositionScale converts design units (pixels) to output units.
const DefaultPositionScale = 0.00033333

// DefaultBackplateDepth places backplates just in front of their frame's base
// plane.
const DefaultBackplateDepth = 0.01

// DefaultBackplateName is the normalised component name given the backplate role.
const DefaultBackplateName = "Backplate"

// Config is the run configuration of a Builder. It is constant for the
// duration of a build.
type Config struct {
	// PositionScale converts design units to output units.
	PositionScale float64
	// FrameSize is the expected size of every top-level frame.
	FrameSize Vec2
	// SizeTolerance is the largest per-axis difference between a frame and
	// FrameSize that is not reported as a mismatch.
	SizeTolerance float64
	// Focus selects which top-level frames start active. Nil means none.
	Focus FocusPolicy
	// BackplateNames lists normalised component names playing the backplate role.
	BackplateNames []string
	// BackplateDepth is the z offset pinned on backplates.
	BackplateDepth float64
	// EnforceVisibility deactivates nodes whose source is hidden. When false
	// the source flag is only recorded in Node.SourceVisible.
	EnforceVisibility bool
	// Font measures text primitives; may be nil.
	Font Font
	// FrameBackground, when set, is instantiated as the first child of every
	// focused top-level frame, at BackplateDepth and scaled to FrameSize.
	FrameBackground ComponentAsset
}

// DefaultConfig returns a Config with the default scale and backplate
// settings, a zero frame size and no focus frame.
func DefaultConfig() Config {
	return Config{
		PositionScale:  DefaultPositionScale,
		SizeTolerance:  0.01,
		BackplateNames: []string{DefaultBackplateName},
		BackplateDepth: DefaultBackplateDepth,
	}
}

// IsBackplate reports whether key names a backplate component.
func (c Config) IsBackplate(key string) bool {
	for _, n := range c.BackplateNames {
		if n == key {
			return true
		}
	}
	return false
}

func (c Config) focused(d *DesignNode) bool {
	if c.Focus == nil {
		return false
	}
	return c.Focus(d)
}

// BuildContext is what a NodeHandler sees of the build: the output parent,
// the frame context before this node updates it, and the run configuration.
type BuildContext struct {
	Parent *Node
	Frame  FrameContext
	Config Config
	Table  ComponentTable

	state *buildState
}

// Report records a recoverable diagnostic.
func (c BuildContext) Report(d Diagnostic) {
	if c.state != nil {
		c.state.report(d)
	}
}

// PostProcess runs the post-process hook for an instantiated component when
// post-processing is enabled on the builder.
func (c BuildContext) PostProcess(n *Node, d *DesignNode, res Resolution) {
	if c.state != nil {
		c.state.postProcess(n, d, res)
	}
}

// NodeHandler produces the output representation of one design node. It
// returns nil when the node has no representation; its children are then
// skipped. Errors abort the build.
type NodeHandler func(ctx BuildContext, d *DesignNode) (*Node, error)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithSink sends every diagnostic to sink as well as the BuildResult.
func WithSink(sink DiagnosticSink) BuilderOption {
	return func(b *Builder) { b.sink = sink }
}

// WithPostProcessing enables or disables the post-process hook for
// instantiated components. It is disabled by default.
func WithPostProcessing(enabled bool) BuilderOption {
	return func(b *Builder) { b.postProcess = enabled }
}

// WithPostProcessor replaces the post-processor for kind. It does not enable
// post-processing by itself.
func WithPostProcessor(kind PostProcessKind, fn PostProcessFunc) BuilderOption {
	return func(b *Builder) { b.processors[kind] = fn }
}

// WithHandler installs or replaces the handler for a design type. A nil
// handler makes the type unsupported.
func WithHandler(t DesignType, h NodeHandler) BuilderOption {
	return func(b *Builder) {
		if h == nil {
			delete(b.handlers, t)
			return
		}
		b.handlers[t] = h
	}
}

// Builder translates design trees into the output scene. A Builder is not
// safe for concurrent use; a second Build while one is running fails with
// ErrBuildInProgress.
type Builder struct {
	scene       *Scene
	table       ComponentTable
	cfg         Config
	log         *zap.Logger
	sink        DiagnosticSink
	handlers    map[DesignType]NodeHandler
	processors  map[PostProcessKind]PostProcessFunc
	postProcess bool
	building    bool
}

// NewBuilder returns a Builder writing into scene.
func NewBuilder(scene *Scene, table ComponentTable, cfg Config, opts ...BuilderOption) *Builder {
	b := &Builder{
		scene:      scene,
		table:      table,
		cfg:        cfg,
		log:        zap.NewNop(),
		handlers:   DefaultHandlers(),
		processors: DefaultPostProcessors(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Config returns the builder's run configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// DefaultHandlers returns the dispatch table: containers for canvases,
// frames, groups and rectangles, text primitives for text, and component
// resolution for instances. Every other design type is unsupported.
func DefaultHandlers() map[DesignType]NodeHandler {
	return map[DesignType]NodeHandler{
		DesignCanvas:    BuildContainer,
		DesignFrame:     BuildContainer,
		DesignGroup:     BuildContainer,
		DesignRectangle: BuildContainer,
		DesignText:      BuildText,
		DesignInstance:  BuildInstance,
	}
}

// BuildResult describes a committed build.
type BuildResult struct {
	ID          string
	Target      *Node
	Nodes       int
	Frames      *FrameSet
	Diagnostics Diagnostics
}

// Build translates nodes into the scene. Top-level frames are attached to the
// frames folder; everything else goes under the container named target,
// which is created under the scene root if missing.
//
// The new tree is built detached and swapped in only after the traversal
// completes: previous children of the frames folder and the target are
// disposed at commit time. A missing frames folder or an instantiation error
// returns an error and leaves the scene untouched.
func (b *Builder) Build(nodes []*DesignNode, target string) (*BuildResult, error) {
	if b.building {
		return nil, ErrBuildInProgress
	}
	b.building = true
	defer func() { b.building = false }()

	s := &buildState{
		b:      b,
		id:     uuid.New().String(),
		frames: NewContainer("staged frames"),
		target: NewContainer(target),
	}
	s.log = b.log.With(zap.String("build", s.id), zap.String("target", target))

	folder := b.scene.FramesFolder()
	if folder == nil {
		s.report(Diagnostic{
			Kind:    DiagMissingFramesFolder,
			Message: "no frames folder anchor in scene; add one with Scene.AddFramesFolder",
		})
		return nil, ErrMissingFramesFolder
	}

	live := b.scene.Find(target)
	if live != nil && live != folder {
		if isAncestor(folder, live) {
			return nil, fmt.Errorf("figbridge: target %q is inside the frames folder", target)
		}
		if isAncestor(live, folder) {
			return nil, fmt.Errorf("figbridge: target %q contains the frames folder", target)
		}
	}

	s.log.Debug("build started", zap.Int("roots", len(nodes)))
	fc := NewFrameContext(b.cfg.FrameSize)
	for _, d := range nodes {
		if _, err := s.buildOne(d, s.target, fc); err != nil {
			s.log.Error("build aborted", zap.Error(err))
			return nil, err
		}
	}

	if live == nil {
		live = NewContainer(target)
		b.scene.Root().AddChild(live)
	}
	folder.DisposeChildren()
	if live != folder {
		live.DisposeChildren()
	}
	for _, c := range s.frames.RemoveChildren() {
		folder.AddChild(c)
	}
	for _, c := range s.target.RemoveChildren() {
		live.AddChild(c)
	}

	s.log.Info("build committed",
		zap.Int("nodes", s.count),
		zap.Int("frames", len(s.frameList)),
		zap.Int("diagnostics", len(s.diags)))

	return &BuildResult{
		ID:          s.id,
		Target:      live,
		Nodes:       s.count,
		Frames:      newFrameSet(s.frameList),
		Diagnostics: s.diags,
	}, nil
}

// buildState is the mutable bookkeeping of one Build call.
type buildState struct {
	b         *Builder
	id        string
	log       *zap.Logger
	frames    *Node // staging frames folder
	target    *Node // staging target container
	frameList []*Node
	diags     Diagnostics
	count     int
}

func (s *buildState) report(d Diagnostic) {
	s.diags = append(s.diags, d)
	if s.b.sink != nil {
		s.b.sink.Report(d)
	}
	fields := []zap.Field{
		zap.Stringer("kind", d.Kind),
		zap.String("node", d.NodeName),
	}
	if d.NodeID != "" {
		fields = append(fields, zap.String("node_id", d.NodeID))
	}
	if d.Key != "" {
		fields = append(fields, zap.String("key", d.Key))
	}
	if d.Kind.Fatal() {
		s.log.Error(d.Message, fields...)
		return
	}
	s.log.Warn(d.Message, fields...)
}

func (s *buildState) postProcess(n *Node, d *DesignNode, res Resolution) {
	if !s.b.postProcess {
		return
	}
	fn := s.b.processors[res.Entry.PostProcess]
	if fn == nil {
		return
	}
	fn(PostProcessContext{
		Node:       n,
		Design:     d,
		Resolution: res,
		Config:     s.b.cfg,
		state:      s,
	})
}

// buildOne emits the output node for d and recurses into its children.
// It returns nil when d yields no representation.
func (s *buildState) buildOne(d *DesignNode, parent *Node, fc FrameContext) (*Node, error) {
	handler, ok := s.b.handlers[d.Type]
	if !ok {
		s.report(Diagnostic{
			Kind:     DiagUnsupportedNode,
			NodeID:   d.ID,
			NodeName: d.Name,
			Message:  fmt.Sprintf("%s node was not built", d.Type),
		})
		return nil, nil
	}

	ctx := BuildContext{Parent: parent, Frame: fc, Config: s.b.cfg, Table: s.b.table, state: s}
	n, err := handler(ctx, d)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}

	n.Source = d
	n.SourceType = d.Type
	n.SourceVisible = d.Visible
	n.ContainingFrame = fc.EnclosingFrame

	childFC := fc
	if d.Type == DesignFrame && !fc.Enclosed() {
		s.frames.AddChild(n)
		n.FramePosition = Vec3{}
		n.Position = Vec3{}
		n.IsFrameRoot = true
		n.ContainingFrame = n
		childFC = fc.Enter(n, d)
		s.checkFrameSize(d)
		n.Active = s.b.cfg.focused(d)
		s.frameList = append(s.frameList, n)
		if n.Active && s.b.cfg.FrameBackground != nil {
			if err := s.addFrameBackground(n); err != nil {
				return nil, err
			}
		}
	} else {
		parent.AddChild(n)
		n.Position = n.FramePosition.Sub(parent.FramePosition)
	}

	if s.b.cfg.EnforceVisibility && !d.Visible {
		n.Active = false
	}
	if d.AbsoluteBoundingBox == nil {
		n.Active = true
	}
	s.count++

	if d.Type != DesignInstance && d.Type != DesignComponentSet {
		for _, child := range d.Children {
			if _, err := s.buildOne(child, n, childFC); err != nil {
				return nil, err
			}
		}
	}

	n.Name += " [" + d.Type.String() + "]"
	return n, nil
}

// addFrameBackground puts the configured background plate behind frame.
func (s *buildState) addFrameBackground(frame *Node) error {
	asset := s.b.cfg.FrameBackground
	bg, err := asset.Instantiate(FrameBackgroundName)
	if err != nil {
		return fmt.Errorf("%w: frame background %q: %w", ErrInstantiate, asset.AssetName(), err)
	}
	size := s.b.cfg.FrameSize.Mul(s.b.cfg.PositionScale)
	bg.Position = Vec3{Z: s.b.cfg.BackplateDepth}
	bg.FramePosition = bg.Position
	bg.Scale = Vec3{size.X, size.Y, bg.Scale.Z}
	bg.ContainingFrame = frame
	frame.AddChild(bg)
	return nil
}

func (s *buildState) checkFrameSize(d *DesignNode) {
	if d.AbsoluteBoundingBox == nil {
		return
	}
	got := d.Size()
	want := s.b.cfg.FrameSize
	if got.Near(want, s.b.cfg.SizeTolerance) {
		return
	}
	s.report(Diagnostic{
		Kind:     DiagFrameSizeMismatch,
		NodeID:   d.ID,
		NodeName: d.Name,
		Message: fmt.Sprintf("frame of size %gx%g does not match the expected frame size %gx%g; "+
			"update the expected size in the config or fix the frame in the source file",
			got.X, got.Y, want.X, want.Y),
	})
}

// --- Handlers ---

// BuildContainer produces an empty container positioned over the node's
// bounding box.
func BuildContainer(ctx BuildContext, d *DesignNode) (*Node, error) {
	n := NewContainer(d.Name)
	if d.AbsoluteBoundingBox != nil {
		n.FramePosition = ToOutputPosition(d.Position(), d.Size(), ctx.Frame, ctx.Config.PositionScale)
		n.Size = d.Size().Mul(ctx.Config.PositionScale)
	}
	return n, nil
}

// BuildText produces a text primitive whose top-left corner sits on the
// node's top-left corner. Content measuring wider than the design box is
// reported, since built text never wraps.
func BuildText(ctx BuildContext, d *DesignNode) (*Node, error) {
	n := NewTextPrimitive(d, ctx.Config.PositionScale, ctx.Config.Font)
	if d.AbsoluteBoundingBox != nil {
		AnchorTopLeft(n, ToTopLeftPosition(d.Position(), ctx.Frame, ctx.Config.PositionScale))
		if n.TextBlock.Overflows(d.Size().X) {
			w, _ := n.TextBlock.Measure()
			ctx.Report(Diagnostic{
				Kind:     DiagTextOverflow,
				NodeID:   d.ID,
				NodeName: d.Name,
				Message:  fmt.Sprintf("text measures %.0f wide in a %.0f wide box", w, d.Size().X),
			})
		}
	}
	n.FramePosition = n.Position
	return n, nil
}

// BuildInstance resolves the node's name in the component table and
// instantiates the mapped asset. Unmapped names are reported and produce no
// node.
func BuildInstance(ctx BuildContext, d *DesignNode) (*Node, error) {
	res := ctx.Table.Lookup(d.Name)
	if !res.Mapped() {
		ctx.Report(Diagnostic{
			Kind:     DiagUnmappedInstance,
			NodeID:   d.ID,
			NodeName: d.Name,
			Key:      res.Key,
			Message:  res.Reason(),
		})
		return nil, nil
	}

	n, err := res.Entry.Asset.Instantiate(d.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInstantiate, d.Name, err)
	}

	scale := ctx.Config.PositionScale
	z := 0.0
	if !ctx.Frame.Enclosed() {
		z = n.Position.Z
	}
	n.FramePosition = ToOutputPosition(d.Position(), d.Size(), ctx.Frame, scale)
	n.FramePosition.Z = z

	if ctx.Config.IsBackplate(res.Key) {
		size := d.Size().Mul(scale)
		n.Scale = Vec3{size.X, size.Y, n.Scale.Z}
		n.FramePosition.Z = ctx.Config.BackplateDepth
	}

	ctx.PostProcess(n, d, res)
	return n, nil
}
