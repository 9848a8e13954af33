package gui

import (
	"github.com/appengine-ltd/retro-rally/internal/gui/theme"
	"github.com/appengine-ltd/retro-rally/internal/menu"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	logicalWidth  = 640
	logicalHeight = 480

	// nodeFontSize is the logical pixel size of a node with Scale 1.
	nodeFontSize = 64

	sceneFadeSpeed = 2
)

// viewport maps the logical 640x480 menu space, origin at its center, onto
// the window. The logical area is scaled uniformly and centered.
type viewport struct {
	scale  float32
	cx, cy float32
}

func newViewport(screenW, screenH int32) viewport {
	scale := min(float32(screenW)/logicalWidth, float32(screenH)/logicalHeight)
	if scale <= 0 {
		scale = 1
	}
	return viewport{
		scale: scale,
		cx:    float32(screenW) / 2,
		cy:    float32(screenH) / 2,
	}
}

func (v viewport) point(x, y float32) (float32, float32) {
	return v.cx + x*v.scale, v.cy + y*v.scale
}

func (v viewport) fontSize(nodeScale float32) int32 {
	return max(int32(nodeScale*nodeFontSize*v.scale+0.5), 1)
}

// textOrigin returns the top-left corner of a node whose rendered width is
// width screen pixels. A MinExtent widens centered text to a fixed box so
// the rows of a menu share their left edge.
func textOrigin(v viewport, node *menu.TextNode, width, height float32) (float32, float32) {
	x, y := v.point(node.X, node.Y)
	y -= height / 2
	if node.Align == menu.AlignLeft {
		return x, y
	}
	if node.MinExtent > 0 {
		if box := node.MinExtent * v.scale; width < 2*box {
			return x - box, y
		}
	}
	return x - width/2, y
}

func toRL(c menu.Color) rl.Color {
	ch := func(f float32) uint8 {
		return uint8(min(max(f, 0), 1)*255 + 0.5)
	}
	return rl.NewColor(ch(c.R), ch(c.G), ch(c.B), ch(c.A))
}

// menuRenderer draws menu frames with raylib. Nodes handed over by an
// asynchronous exit keep fading in whatever scene is drawn next.
type menuRenderer struct {
	menu.Leftovers
}

func newMenuRenderer() *menuRenderer {
	return &menuRenderer{}
}

func (r *menuRenderer) DrawFrame(f menu.Frame, background func()) {
	rl.BeginDrawing()
	rl.ClearBackground(theme.BG)
	if background != nil {
		background()
	}
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	v := newViewport(w, h)
	if f.DarkenPane {
		theme.DrawPane(w, h, f.PaneScaleY*v.scale, f.PaneAlpha)
	}
	r.drawLeftovers(v, rl.GetFrameTime())
	for _, node := range f.Nodes {
		drawNode(v, node)
	}
	rl.EndDrawing()
}

// DrawLeftovers is called by non-menu scenes between BeginDrawing and
// EndDrawing.
func (r *menuRenderer) DrawLeftovers(dt float32) {
	if r.Len() == 0 {
		return
	}
	r.drawLeftovers(newViewport(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())), dt)
}

func (r *menuRenderer) drawLeftovers(v viewport, dt float32) {
	r.Step(dt)
	for _, node := range r.Nodes() {
		drawNode(v, node)
	}
}

// FadeOutScene darkens the background to black over half a second.
func (r *menuRenderer) FadeOutScene(background func()) {
	for a := float32(0); a < 1 && !rl.WindowShouldClose(); a += rl.GetFrameTime() * sceneFadeSpeed {
		rl.BeginDrawing()
		rl.ClearBackground(theme.BG)
		if background != nil {
			background()
		}
		rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), rl.Fade(rl.Black, a))
		rl.EndDrawing()
	}
}

func drawNode(v viewport, node *menu.TextNode) {
	if !node.Visible() {
		return
	}
	size := v.fontSize(node.Scale)
	width := float32(measureText(node.Text, size))
	x, y := textOrigin(v, node, width, float32(size))
	drawText(node.Text, int32(x), int32(y), size, toRL(node.Color))
}
