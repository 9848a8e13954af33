package menu

import "math"

// Role decides how a text node is colored each frame.
type Role uint8

const (
	RoleLabel Role = iota
	RoleAction
	RoleKeyBinding
	RolePadBinding
	RoleMouseBinding
)

type Align uint8

const (
	AlignCenter Align = iota
	AlignLeft
)

// TextNode is one positioned piece of menu text. X and Y are relative to
// the center of a 640x480 logical screen, y pointing down. Color already
// includes every fade and animation for the current frame.
type TextNode struct {
	Text  string
	Row   int
	Col   int
	X, Y  float32
	Scale float32
	Align Align
	Color Color

	// MinExtent is the minimum half width the renderer should reserve
	// around the anchor, zero for none.
	MinExtent float32

	role  Role
	base  Color
	baseX float32
	muted bool
	sweep float32
	pulse float32
}

// Visible reports whether the node would draw anything.
func (t *TextNode) Visible() bool {
	return t.Color.A > 0 && t.Text != ""
}

// Frame is what the renderer receives every tick.
type Frame struct {
	Nodes      []*TextNode
	DarkenPane bool
	PaneScaleY float32
	PaneAlpha  float32
}

// Renderer draws menu frames on top of a caller supplied background.
type Renderer interface {
	DrawFrame(f Frame, background func())
	// Adopt takes ownership of nodes left behind by an asynchronous exit.
	Adopt(nodes []*TextNode)
	FadeOutScene(background func())
}

const (
	sweepSpeed     = 5
	sweepSlide     = 50
	pulseFrequency = 10
	mutedAlpha     = .5
	adoptFadeSpeed = 3
	syncFadeSpeed  = 2
)

func pulseIntensity(t float32) float32 {
	return float32(1+math.Sin(float64(t)*pulseFrequency)) / 2
}

// animate computes the node's color and position for this frame.
func (n *Nav) animate(node *TextNode, dt float32) {
	var c Color
	active := node.Row == n.row
	switch node.role {
	case RoleLabel:
		c = node.base
		c.A = n.fade
	case RoleAction:
		c = n.highlightOr(active)
	case RoleKeyBinding:
		c = n.bindingColor(node, active && node.Col == n.keyCol+1, StateAwaitingKeyPress, dt)
	case RolePadBinding:
		c = n.bindingColor(node, active && node.Col == n.padCol+1, StateAwaitingPadPress, dt)
	case RoleMouseBinding:
		c = n.bindingColor(node, active, StateAwaitingMouseClick, dt)
	}
	if node.role != RoleLabel {
		c.A *= n.fade
	}

	node.sweep += dt * sweepSpeed
	node.X = node.baseX
	switch {
	case node.sweep < 0:
		c.A = 0
	case node.sweep < 1:
		c.A *= node.sweep
		p := 1 - node.sweep
		node.X -= p * p * sweepSlide
	}
	if node.muted {
		c.A *= mutedAlpha
	}
	node.Color = c
}

func (n *Nav) highlightOr(active bool) Color {
	if active {
		return n.style.HighlightColor
	}
	return n.style.InactiveColor
}

func (n *Nav) bindingColor(node *TextNode, selected bool, awaiting State, dt float32) Color {
	if !selected {
		return n.style.InactiveColor
	}
	if n.state != awaiting {
		return n.style.HighlightColor
	}
	node.pulse += dt
	i := pulseIntensity(node.pulse)
	c := n.style.HighlightColor.Blend(white, i)
	c.A = i
	return c
}

// Leftovers fades out nodes adopted from a finished menu and forgets them
// once invisible. Renderers embed it to implement Adopt.
type Leftovers struct {
	nodes []*TextNode
}

func (l *Leftovers) Adopt(nodes []*TextNode) {
	l.nodes = append(l.nodes, nodes...)
}

// Step fades every adopted node and drops the ones that are gone.
func (l *Leftovers) Step(dt float32) {
	kept := l.nodes[:0]
	for _, node := range l.nodes {
		node.Color.A -= dt * adoptFadeSpeed
		if node.Color.A >= 0 {
			kept = append(kept, node)
		}
	}
	clear(l.nodes[len(kept):])
	l.nodes = kept
}

func (l *Leftovers) Nodes() []*TextNode {
	return l.nodes
}

func (l *Leftovers) Len() int {
	return len(l.nodes)
}
