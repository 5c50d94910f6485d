package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/figbridge"
)

var (
	previewFrame string
	previewZoom  float64
	previewShot  string
)

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Open a window showing one built frame",
	Long: `Builds FILE and draws the focused frame, or the one named with --frame,
as outlines and text. Number keys 1-9 switch between frames; hovering a node
shows its name.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewFrame, "frame", "", "frame to show first")
	previewCmd.Flags().Float64Var(&previewZoom, "zoom", 0.5, "window pixels per design pixel")
	previewCmd.Flags().StringVar(&previewShot, "screenshot", "", "write a PNG of the first frame to this directory and exit")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd, args[0])
	if err != nil {
		return err
	}
	res, err := p.build()
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	if res.Frames.Len() == 0 {
		return fmt.Errorf("no frames to preview in %s", args[0])
	}

	v := newPreview(res.Frames, p.builder.Config(), previewZoom)
	v.shotDir = previewShot
	switch {
	case previewFrame != "":
		if err := v.show(previewFrame); err != nil {
			return err
		}
	case res.Frames.Active() == nil:
		if err := v.show(res.Frames.Names()[0]); err != nil {
			return err
		}
	}

	w, h := v.Layout(0, 0)
	ebiten.SetWindowTitle("figbridge: " + p.file.Name)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(v); err != nil {
		return err
	}
	if v.shotPath != "" {
		cmd.Printf("wrote %s\n", v.shotPath)
	}
	return v.shotErr
}

var frameKeys = [...]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var (
	colorBackground = color.RGBA{0x1e, 0x1e, 0x28, 0xff}
	colorContainer  = color.RGBA{0x50, 0xb4, 0xff, 0xff}
	colorComponent  = color.RGBA{0xff, 0x99, 0x33, 0xff}
	colorText       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	colorHover      = color.RGBA{0xff, 0xe0, 0x40, 0xff}
)

// preview is the ebiten.Game showing the active frame of a FrameSet.
type preview struct {
	frames *figbridge.FrameSet
	cfg    figbridge.Config
	zoom   float64
	fade   *figbridge.TweenGroup
	hover  *figbridge.Node

	shotDir  string
	shotPath string
	shotErr  error
}

func newPreview(frames *figbridge.FrameSet, cfg figbridge.Config, zoom float64) *preview {
	if zoom <= 0 {
		zoom = 1
	}
	return &preview{frames: frames, cfg: cfg, zoom: zoom}
}

func (v *preview) show(name string) error {
	tg, err := v.frames.Fade(name, 0.25, ease.OutQuad)
	if err != nil {
		return err
	}
	v.fade = tg
	return nil
}

func (v *preview) Update() error {
	if v.shotPath != "" || v.shotErr != nil {
		return ebiten.Termination
	}
	names := v.frames.Names()
	for i, key := range frameKeys {
		if i >= len(names) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			if err := v.show(names[i]); err != nil {
				return err
			}
		}
	}
	if frame := v.frames.Active(); frame != nil && frame.Source != nil {
		cx, cy := ebiten.CursorPosition()
		origin := frame.Source.Position()
		v.hover = nodeAt(frame, origin.X+float64(cx)/v.zoom, origin.Y+float64(cy)/v.zoom)
	}
	if v.fade != nil {
		v.fade.Update(float32(1.0 / float64(ebiten.TPS())))
		if v.fade.Done {
			v.fade = nil
		}
	}
	return nil
}

func (v *preview) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	frame := v.frames.Active()
	if frame == nil || frame.Source == nil {
		return
	}
	origin := frame.Source.Position()
	alpha := float32(frame.Alpha)
	frame.Walk(func(n *figbridge.Node) bool {
		if !n.Active {
			return false
		}
		if n != frame {
			v.drawNode(screen, n, origin, alpha)
		}
		return true
	})

	if v.hover != nil && v.shotDir == "" {
		v.drawHover(screen, origin)
	}

	if v.shotDir != "" && v.fade == nil && v.shotPath == "" {
		v.shotPath, v.shotErr = captureFrame(screen, v.shotDir, frame.Source.Name)
	}
}

// drawNode draws n at its source bounding box, relative to the frame's
// top-left corner. Prefab sub-elements have no source and are skipped.
func (v *preview) drawNode(screen *ebiten.Image, n *figbridge.Node, origin figbridge.Vec2, alpha float32) {
	if n.Source == nil || n.Source.AbsoluteBoundingBox == nil {
		return
	}
	p := n.Source.Position().Sub(origin).Mul(v.zoom)
	size := n.Source.Size().Mul(v.zoom)
	x, y, w, h := float32(p.X), float32(p.Y), float32(size.X), float32(size.Y)

	switch n.Type {
	case figbridge.NodeTypeText:
		tb := n.TextBlock
		font, ok := tb.Font.(*figbridge.TTFFont)
		if !ok || tb.Content == "" {
			return
		}
		fs := tb.FontSize * v.zoom
		if fs <= 0 {
			fs = font.Size() * v.zoom
		}
		f := font.WithSize(fs)
		op := &text.DrawOptions{}
		op.GeoM.Translate(p.X, p.Y)
		op.LineSpacing = f.LineHeight()
		op.ColorScale.ScaleWithColor(colorText)
		op.ColorScale.ScaleAlpha(alpha)
		text.Draw(screen, tb.Content, f.Face(), op)
	case figbridge.NodeTypeComponent:
		vector.StrokeRect(screen, x, y, w, h, 2, fade(colorComponent, alpha), true)
		if label := figbridge.FindLabel(n); label != nil && label.TextBlock.Content != "" {
			op := &text.DrawOptions{}
			op.GeoM.Translate(p.X+4, p.Y+4)
			op.ColorScale.ScaleWithColor(colorComponent)
			op.ColorScale.ScaleAlpha(alpha)
			if font, ok := v.cfg.Font.(*figbridge.TTFFont); ok {
				text.Draw(screen, label.TextBlock.Content, font.Face(), op)
			}
		}
	default:
		if w == 0 || h == 0 {
			return
		}
		vector.StrokeRect(screen, x, y, w, h, 1, fade(colorContainer, alpha), true)
	}
}

// nodeAt returns the last active node below frame, in pre-order, whose source
// box contains the design-space point (x, y). That is the innermost node
// drawn there.
func nodeAt(frame *figbridge.Node, x, y float64) *figbridge.Node {
	var hit *figbridge.Node
	frame.Walk(func(n *figbridge.Node) bool {
		if !n.Active {
			return false
		}
		if n != frame && n.Source != nil && n.Source.AbsoluteBoundingBox != nil &&
			n.Source.AbsoluteBoundingBox.Contains(x, y) {
			hit = n
		}
		return true
	})
	return hit
}

func (v *preview) drawHover(screen *ebiten.Image, origin figbridge.Vec2) {
	p := v.hover.Source.Position().Sub(origin).Mul(v.zoom)
	size := v.hover.Source.Size().Mul(v.zoom)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(size.X), float32(size.Y), 2, colorHover, true)

	font, ok := v.cfg.Font.(*figbridge.TTFFont)
	if !ok {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(screen.Bounds().Dy())-font.LineHeight()-8)
	op.ColorScale.ScaleWithColor(colorHover)
	text.Draw(screen, v.hover.Name, font.Face(), op)
}

func (v *preview) frameSize() (float64, float64) {
	return v.cfg.FrameSize.X * v.zoom, v.cfg.FrameSize.Y * v.zoom
}

func (v *preview) Layout(_, _ int) (int, int) {
	w, h := v.frameSize()
	if w < 1 || h < 1 {
		return 640, 480
	}
	return int(w), int(h)
}

func fade(c color.RGBA, alpha float32) color.Color {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
