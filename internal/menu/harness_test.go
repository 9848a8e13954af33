package menu

import (
	"fmt"
	"io"
	"log"
	"testing"
	"time"

	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/input/inputtest"
	"github.com/appengine-ltd/retro-rally/internal/locale"
)

const frame = float32(1.0 / 60)

type idText struct{}

func (idText) Localize(id locale.ID) string { return string(id) }

type cueLog []Cue

func (c *cueLog) PlayCue(cue Cue) { *c = append(*c, cue) }

func (c cueLog) last() Cue {
	if len(c) == 0 {
		return Cue(255)
	}
	return c[len(c)-1]
}

type fakeRenderer struct {
	frames  int
	adopted []*TextNode
	fades   int
}

func (r *fakeRenderer) DrawFrame(Frame, func()) { r.frames++ }
func (r *fakeRenderer) Adopt(nodes []*TextNode) { r.adopted = append(r.adopted, nodes...) }
func (r *fakeRenderer) FadeOutScene(func())     { r.fades++ }

type harness struct {
	t        *testing.T
	be       *inputtest.Backend
	sys      *input.System
	bindings *input.Bindings
	cues     *cueLog
	render   *fakeRenderer
	sleeps   int
	onSleep  func(n int)
	nav      *Nav
}

func newHarness(t *testing.T, tree Tree, style *Style) *harness {
	t.Helper()
	if err := tree.Validate(); err != nil {
		t.Fatalf("invalid tree: %v", err)
	}
	b := input.DefaultBindings()
	h := &harness{
		t:        t,
		be:       inputtest.New(),
		bindings: &b,
		cues:     &cueLog{},
		render:   &fakeRenderer{},
	}
	h.sys = input.NewSystem(h.be, h.bindings, input.Config{Logger: log.New(io.Discard, "", 0)})
	h.nav = New(tree, style, Deps{
		Input:     h.sys,
		Sound:     h.cues,
		Text:      idText{},
		Render:    h.render,
		Bindings:  h.bindings,
		FrameTime: func() float32 { return frame },
		Sleep: func(time.Duration) {
			h.sleeps++
			if h.onSleep != nil {
				h.onSleep(h.sleeps)
			}
		},
	})
	return h
}

func (h *harness) step() {
	h.t.Helper()
	if err := h.nav.Step(frame); err != nil {
		h.t.Fatalf("step: %v", err)
	}
}

// start lays out the root menu and runs frames until it accepts input.
func (h *harness) start() {
	h.t.Helper()
	h.nav.Start()
	for i := 0; i < 200 && h.nav.State() == StateFadeIn; i++ {
		h.step()
	}
	if h.nav.State() != StateReady {
		h.t.Fatalf("menu never became ready, state %v", h.nav.State())
	}
}

// tap presses keys for one frame, then releases them for one frame.
func (h *harness) tap(keys ...input.Key) {
	h.t.Helper()
	h.be.Press(keys...)
	h.step()
	h.be.Release(keys...)
	h.step()
}

func (h *harness) text(row, col int) string {
	node := h.nav.Node(row, col)
	if node == nil {
		return ""
	}
	return node.Text
}

func withPanickingFatal(t *testing.T) {
	t.Helper()
	prev := fatalAlert
	fatalAlert = func(format string, args ...any) {
		panic(fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { fatalAlert = prev })
}
