package menu

import (
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/locale"
)

// ErrNested is returned by Run while another menu is already running.
var ErrNested = errors.New("menu: a menu is already running")

// fatalAlert reports broken menu data. Tests swap it for a panic.
var fatalAlert = func(format string, args ...any) {
	log.Fatalf("menu: "+format, args...)
}

var running atomic.Bool

// State is the top-level state of a Nav.
type State uint8

const (
	StateOff State = iota
	StateFadeIn
	StateReady
	StateAwaitingKeyPress
	StateAwaitingPadPress
	StateAwaitingMouseClick
	StateFadeOut
)

func (s State) String() string {
	switch s {
	case StateOff:
		return "off"
	case StateFadeIn:
		return "fade-in"
	case StateReady:
		return "ready"
	case StateAwaitingKeyPress:
		return "awaiting-key"
	case StateAwaitingPadPress:
		return "awaiting-pad"
	case StateAwaitingMouseClick:
		return "awaiting-click"
	case StateFadeOut:
		return "fade-out"
	}
	return "invalid"
}

// Input is the slice of the input system a menu reads. *input.System
// implements it.
type Input interface {
	Poll() error
	NeedPressedAny(input.Need) bool
	NeedDownAny(input.Need) bool
	KeyPressed(input.Key) bool
	PressedKey() (input.Key, bool)
	PressedClick() (input.MouseButton, bool)
	PressedPadInput() (input.PadBinding, bool)
	PadButtonPressed(input.PadButton) bool
	UserWantsOut() bool
	InvalidateNeedState(input.Need)
	InvalidateAllInputs()
}

// Cue identifies a menu sound effect.
type Cue uint8

const (
	CueNavigate Cue = iota
	CueMenuChange
	CueBack
	CueCycle
	CueConfirm
	CueError
	CueDelete
)

type Sound interface {
	PlayCue(Cue)
}

type Localizer interface {
	Localize(locale.ID) string
}

// Deps are the collaborators of a Nav. Sound and Render may be nil.
type Deps struct {
	Input    Input
	Sound    Sound
	Text     Localizer
	Render   Renderer
	Bindings *input.Bindings

	// FrameTime returns the seconds elapsed since the previous frame. Only
	// Run uses it.
	FrameTime func() float32
	// Sleep paces the confirm drain loop. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

const (
	drainInterval = 30 * time.Millisecond
	maxDrainPolls = 100
)

type historyEntry struct {
	menu ID
	row  int
}

// Nav runs one menu session over a Tree.
type Nav struct {
	tree  Tree
	style Style
	deps  Deps

	menuID ID
	menu   Menu
	row    int
	keyCol int
	padCol int
	rowY   [MaxRows]float32

	fade  float32
	state State
	pick  int
	idle  float32

	nodes [MaxRows][MaxCols]*TextNode

	history    [MaxHistory]historyEntry
	historyPos int
}

// New prepares a menu session. A nil style selects DefaultStyle.
func New(tree Tree, style *Style, deps Deps) *Nav {
	n := &Nav{
		tree:  tree,
		deps:  deps,
		pick:  -1,
		state: StateOff,
	}
	if style != nil {
		n.style = *style
	} else {
		n.style = DefaultStyle()
	}
	if n.deps.Sleep == nil {
		n.deps.Sleep = time.Sleep
	}
	if n.deps.FrameTime == nil {
		n.deps.FrameTime = func() float32 { return 1.0 / 60 }
	}
	return n
}

// Run shows the menu until it is dismissed and returns the ID of the item
// that ended it, or -1. update runs once per frame after menu logic;
// background draws the scene behind the menu. Errors from input polling,
// ErrQuit included, abort the menu and are returned unchanged.
func (n *Nav) Run(update func(dt float32), background func()) (int, error) {
	if !running.CompareAndSwap(false, true) {
		return -1, ErrNested
	}
	defer running.Store(false)

	n.Start()
	for n.state != StateOff {
		dt := n.deps.FrameTime()
		if err := n.Step(dt); err != nil {
			n.drop()
			return -1, err
		}
		if update != nil {
			update(dt)
		}
		if n.deps.Render != nil {
			n.deps.Render.DrawFrame(n.Frame(), background)
		}
	}
	return n.Finish(background), nil
}

// Start resets the session and lays out the root menu.
func (n *Nav) Start() {
	n.state = StateFadeIn
	n.fade = 0
	n.row = -1
	n.keyCol, n.padCol = 0, 0
	n.pick = -1
	n.historyPos = 0
	n.history[0] = historyEntry{menu: Root}
	n.layout(Root)
}

// Step advances the session by one frame of dt seconds.
func (n *Nav) Step(dt float32) error {
	in := n.deps.Input
	if err := in.Poll(); err != nil {
		return err
	}

	n.idle += dt

	if n.style.StartButtonExits && n.style.CanBackOutOfRootMenu && in.NeedPressedAny(input.NeedUIStart) {
		n.state = StateFadeOut
	}

	var err error
	switch n.state {
	case StateFadeIn:
		n.fade += dt * n.style.FadeInSpeed
		if n.fade >= 1 {
			n.fade = 1
			n.state = StateReady
		}
	case StateFadeOut:
		if n.style.AsyncFadeOut {
			n.state = StateOff
		} else {
			n.fade -= dt * syncFadeSpeed
			if n.fade <= 0 {
				n.fade = 0
				n.state = StateOff
			}
		}
	case StateReady:
		if n.style.IsInteractive {
			err = n.navigate()
		} else if in.UserWantsOut() {
			n.back()
		}
	case StateAwaitingKeyPress:
		n.awaitKeyPress()
	case StateAwaitingPadPress:
		n.awaitPadPress()
	case StateAwaitingMouseClick:
		n.awaitMouseClick()
	}
	if err != nil {
		return err
	}

	for _, row := range n.nodes[:len(n.menu)] {
		for _, node := range row {
			if node != nil {
				n.animate(node, dt)
			}
		}
	}
	return nil
}

// Finish tears the session down once Step has reached StateOff and returns
// the pick.
func (n *Nav) Finish(background func()) int {
	if n.style.FadeOutSceneOnExit && n.deps.Render != nil {
		n.deps.Render.FadeOutScene(background)
	}
	if n.style.AsyncFadeOut && n.deps.Render != nil {
		n.deps.Render.Adopt(n.collect())
		n.nodes = [MaxRows][MaxCols]*TextNode{}
	} else {
		n.drop()
	}
	n.deps.Input.InvalidateAllInputs()
	n.state = StateOff
	return n.pick
}

// Frame returns the nodes to draw this tick.
func (n *Nav) Frame() Frame {
	return Frame{
		Nodes:      n.collect(),
		DarkenPane: n.style.DarkenPane,
		PaneScaleY: n.style.DarkenPaneScaleY,
		PaneAlpha:  n.fade * n.style.DarkenPaneOpacity,
	}
}

func (n *Nav) collect() []*TextNode {
	var out []*TextNode
	for r := range n.nodes {
		for _, node := range n.nodes[r] {
			if node != nil {
				out = append(out, node)
			}
		}
	}
	return out
}

func (n *Nav) drop() {
	n.nodes = [MaxRows][MaxCols]*TextNode{}
}

// Kill ends the menu with code as the pick. It only has an effect while
// the menu is ready for input.
func (n *Nav) Kill(code int) {
	if n.state == StateReady {
		n.pick = code
		n.state = StateFadeOut
	}
}

// Relayout rebuilds the current menu, for instance after the language or
// the bindings changed behind its back.
func (n *Nav) Relayout() {
	n.history[n.historyPos].row = n.row
	n.layout(n.menuID)
}

func (n *Nav) Menu() ID          { return n.menuID }
func (n *Nav) Row() int          { return n.row }
func (n *Nav) State() State      { return n.state }
func (n *Nav) Fade() float32     { return n.fade }
func (n *Nav) Pick() int         { return n.pick }
func (n *Nav) IdleTime() float32 { return n.idle }
func (n *Nav) KeyColumn() int    { return n.keyCol }
func (n *Nav) PadColumn() int    { return n.padCol }
func (n *Nav) Depth() int        { return n.historyPos }

// Node returns the text node at row and col, or nil.
func (n *Nav) Node(row, col int) *TextNode {
	if row < 0 || row >= MaxRows || col < 0 || col >= MaxCols {
		return nil
	}
	return n.nodes[row][col]
}

func (n *Nav) play(c Cue) {
	if n.deps.Sound != nil {
		n.deps.Sound.PlayCue(c)
	}
}

func (n *Nav) localize(id locale.ID) string {
	if n.deps.Text == nil {
		return string(id)
	}
	return n.deps.Text.Localize(id)
}
