package menu

import (
	"errors"
	"testing"

	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/locale"
)

func startQuitTree() Tree {
	return Tree{
		Root: {
			{Kind: KindTitle, RawText: "Retro Rally"},
			{Kind: KindPick, RawText: "Start", Goto: 1, ID: 1},
			{Kind: KindPick, RawText: "Quit", Goto: GotoExit, ID: 2},
		},
		1: {
			{Kind: KindTitle, RawText: "Start"},
			{Kind: KindPick, RawText: "Back", Goto: GotoBack},
		},
	}
}

func TestPickPushesAndBackRestoresRow(t *testing.T) {
	h := newHarness(t, startQuitTree(), nil)
	h.start()
	if h.nav.Row() != 1 {
		t.Fatalf("expected cursor on the first pick, got row %d", h.nav.Row())
	}

	h.tap(input.KeyEnter)
	if h.nav.Menu() != 1 || h.nav.Depth() != 1 {
		t.Fatalf("expected submenu 1 at depth 1, got %v at %d", h.nav.Menu(), h.nav.Depth())
	}
	if h.nav.Row() != 1 {
		t.Fatalf("expected cursor on the back pick, got %d", h.nav.Row())
	}

	h.tap(input.KeyEscape)
	if h.nav.Menu() != Root || h.nav.Depth() != 0 {
		t.Fatalf("expected root after back, got %v", h.nav.Menu())
	}
	if h.nav.Row() != 1 {
		t.Fatalf("expected row 1 restored, got %d", h.nav.Row())
	}
	if h.cues.last() != CueBack {
		t.Fatalf("expected back cue, got %v", h.cues.last())
	}
}

func TestBackAtRootIsAnError(t *testing.T) {
	h := newHarness(t, startQuitTree(), nil)
	h.start()
	h.tap(input.KeyEscape)
	if h.nav.State() != StateReady || h.nav.Menu() != Root {
		t.Fatalf("back at root must not leave the menu")
	}
	if h.cues.last() != CueError {
		t.Fatalf("expected error cue, got %v", h.cues.last())
	}
}

func TestBackOutOfRootWhenAllowed(t *testing.T) {
	style := DefaultStyle()
	style.CanBackOutOfRootMenu = true
	h := newHarness(t, startQuitTree(), &style)
	h.start()
	h.tap(input.KeyEscape)
	if h.nav.State() != StateOff {
		t.Fatalf("expected async fade out to finish at once, got %v", h.nav.State())
	}
}

func TestGotoBackPickPops(t *testing.T) {
	h := newHarness(t, startQuitTree(), nil)
	h.start()
	h.tap(input.KeyEnter)
	h.tap(input.KeyEnter)
	if h.nav.Menu() != Root {
		t.Fatalf("expected the back pick to return to root, got %v", h.nav.Menu())
	}
}

func TestPickExitReturnsID(t *testing.T) {
	h := newHarness(t, startQuitTree(), nil)
	h.start()
	h.tap(input.KeyDown)
	if h.nav.Row() != 2 {
		t.Fatalf("expected quit row, got %d", h.nav.Row())
	}
	h.be.Press(input.KeyEnter)
	h.step()
	if h.nav.State() != StateFadeOut {
		t.Fatalf("expected fade out, got %v", h.nav.State())
	}
	h.step()
	if h.nav.State() != StateOff {
		t.Fatalf("expected off, got %v", h.nav.State())
	}
	if h.nav.Pick() != 2 {
		t.Fatalf("expected pending pick 2, got %d", h.nav.Pick())
	}
	if pick := h.nav.Finish(nil); pick != 2 {
		t.Fatalf("expected pick 2, got %d", pick)
	}
	if len(h.render.adopted) == 0 || h.render.fades != 1 {
		t.Fatalf("expected nodes handed to the renderer and a scene fade")
	}
}

func TestFadeAndIdleClock(t *testing.T) {
	h := newHarness(t, startQuitTree(), nil)
	h.start()
	if h.nav.Fade() != 1 || h.nav.Pick() != -1 {
		t.Fatalf("ready menu must be fully faded in with no pick, got fade %v pick %d", h.nav.Fade(), h.nav.Pick())
	}
	before := h.nav.IdleTime()
	h.step()
	h.step()
	if h.nav.IdleTime() < before+2*frame-1e-6 {
		t.Fatalf("idle clock must run while nothing is pressed, got %v", h.nav.IdleTime())
	}
	h.tap(input.KeyDown)
	if h.nav.IdleTime() > frame+1e-6 {
		t.Fatalf("navigation must reset the idle clock, got %v", h.nav.IdleTime())
	}
}

func TestVerticalNavigationSkipsAndWraps(t *testing.T) {
	never := func(*Item) bool { return false }
	tree := Tree{Root: {
		{Kind: KindLabel, RawText: "label"},
		{Kind: KindPick, RawText: "disabled", EnableIf: never},
		{Kind: KindSpacer},
		{Kind: KindPick, RawText: "a"},
		{Kind: KindSubtitle, RawText: "sub"},
		{Kind: KindPick, RawText: "b"},
	}}
	h := newHarness(t, tree, nil)
	h.start()
	if h.nav.Row() != 3 {
		t.Fatalf("expected first selectable row 3, got %d", h.nav.Row())
	}
	want := []int{5, 3, 5}
	for i, row := range want {
		h.tap(input.KeyDown)
		if h.nav.Row() != row {
			t.Fatalf("down #%d: expected row %d, got %d", i+1, row, h.nav.Row())
		}
	}
	h.tap(input.KeyUp)
	if h.nav.Row() != 3 {
		t.Fatalf("expected up to land on 3, got %d", h.nav.Row())
	}
	if node := h.nav.Node(1, 0); node == nil || !node.muted {
		t.Fatalf("expected the disabled pick to be muted")
	}
}

func TestNavigationWithoutSelectableRows(t *testing.T) {
	tree := Tree{Root: {
		{Kind: KindTitle, RawText: "Nothing"},
		{Kind: KindLabel, RawText: "to pick"},
	}}
	h := newHarness(t, tree, nil)
	h.start()
	if h.nav.Row() != -1 {
		t.Fatalf("expected no cursor, got %d", h.nav.Row())
	}
	h.tap(input.KeyDown)
	h.tap(input.KeyEnter)
	if h.nav.Row() != -1 || h.nav.State() != StateReady {
		t.Fatalf("navigation must be a no-op")
	}
}

func TestEveryStartRowReachesSelectable(t *testing.T) {
	tree := Tree{Root: {
		{Kind: KindPick, RawText: "a"},
		{Kind: KindSpacer},
		{Kind: KindLabel, RawText: "l"},
		{Kind: KindPick, RawText: "b", EnableIf: func(*Item) bool { return false }},
		{Kind: KindCycler, RawText: "c", Cycler: &Cycler{Value: new(int), Choices: []Choice{{Raw: "x"}}}},
	}}
	h := newHarness(t, tree, nil)
	h.start()
	for start := -1; start < len(h.nav.menu); start++ {
		for _, delta := range []int{-1, 1} {
			h.nav.row = start
			h.nav.navigateVertically(delta)
			if h.nav.row < 0 || !Selectable(&h.nav.menu[h.nav.row]) {
				t.Fatalf("start %d delta %d landed on %d", start, delta, h.nav.row)
			}
		}
	}
}

func volumeTree(v *int) Tree {
	return Tree{Root: {
		{Kind: KindCycler, Text: locale.Music, Cycler: &Cycler{
			Value: v,
			Choices: []Choice{
				{Text: locale.Volume000, Value: 0},
				{Text: locale.Volume020, Value: 20},
				{Text: locale.Volume040, Value: 40},
				{Text: locale.Volume060, Value: 60},
				{Text: locale.Volume080, Value: 80},
				{Text: locale.Volume100, Value: 100},
			},
		}},
	}}
}

func TestCyclerWraps(t *testing.T) {
	v := 60
	h := newHarness(t, volumeTree(&v), nil)
	h.start()

	h.tap(input.KeyRight)
	if v != 80 {
		t.Fatalf("expected 80, got %d", v)
	}
	if h.text(0, 1) != string(locale.Volume080) {
		t.Fatalf("expected value text updated, got %q", h.text(0, 1))
	}
	for _, want := range []int{100, 0, 20} {
		h.tap(input.KeyRight)
		if v != want {
			t.Fatalf("expected %d, got %d", want, v)
		}
	}

	v = 0
	h.tap(input.KeyLeft)
	if v != 100 {
		t.Fatalf("expected decrement from the first choice to wrap, got %d", v)
	}
}

func TestCyclerUnknownValueResets(t *testing.T) {
	v := 33
	h := newHarness(t, volumeTree(&v), nil)
	h.start()
	if h.text(0, 1) != "???" {
		t.Fatalf("expected placeholder for unknown value, got %q", h.text(0, 1))
	}
	h.tap(input.KeyRight)
	if v != 0 {
		t.Fatalf("expected reset to the first choice, got %d", v)
	}
}

func TestCyclerCallbackSetsValue(t *testing.T) {
	v := 1
	calls := 0
	tree := Tree{Root: {
		{Kind: KindCMRCycler, RawText: "Players", Callback: func(nav *Nav, it *Item) {
			calls++
			*it.Cycler.Value = 2
		}, Cycler: &Cycler{Value: &v, CallbackSetsValue: true, Choices: []Choice{{Raw: "1", Value: 1}, {Raw: "2", Value: 2}}}},
	}}
	h := newHarness(t, tree, nil)
	h.start()
	if h.text(0, 0) != "Players: 1" {
		t.Fatalf("unexpected label %q", h.text(0, 0))
	}
	h.tap(input.KeyLeft)
	if calls != 1 || v != 2 {
		t.Fatalf("expected callback to set the value, calls=%d v=%d", calls, v)
	}
	if h.text(0, 0) != "Players: 2" {
		t.Fatalf("expected combined label refreshed, got %q", h.text(0, 0))
	}
}

func keyboardTree() Tree {
	return Tree{Root: {
		{Kind: KindSubtitle, Text: locale.ConfigureKeyboardHelp},
		{Kind: KindKeyBinding, Need: input.NeedForward},
		{Kind: KindKeyBinding, Need: input.NeedBackward},
	}}
}

func TestKeyCaptureBindsAndStrips(t *testing.T) {
	h := newHarness(t, keyboardTree(), nil)
	h.bindings.ClearKey(input.NeedForward, 0)
	h.bindings.ClearKey(input.NeedForward, 1)
	h.bindings.AssignKey(input.NeedBackward, 0, input.KeyW)
	h.start()
	if h.nav.Row() != 1 || h.nav.KeyColumn() != 0 {
		t.Fatalf("expected forward row, column 0")
	}
	if h.text(1, 1) != string(locale.Unbound) {
		t.Fatalf("expected unbound placeholder, got %q", h.text(1, 1))
	}

	h.tap(input.KeyEnter)
	if h.nav.State() != StateAwaitingKeyPress {
		t.Fatalf("expected key capture, got %v", h.nav.State())
	}
	if h.text(0, 0) != string(locale.ConfigureKeyboardHelpCancel) {
		t.Fatalf("expected cancel help, got %q", h.text(0, 0))
	}

	h.tap(input.KeyW)
	if h.nav.State() != StateReady {
		t.Fatalf("expected ready after capture, got %v", h.nav.State())
	}
	if h.bindings[input.NeedForward].Keys[0] != input.KeyW {
		t.Fatalf("expected W on forward slot 0")
	}
	if h.bindings[input.NeedBackward].Keys[0] != input.KeyNull {
		t.Fatalf("expected W stripped from backward")
	}
	if h.text(1, 1) != "W" || h.text(2, 1) != string(locale.Unbound) {
		t.Fatalf("unexpected binding texts %q %q", h.text(1, 1), h.text(2, 1))
	}
	if h.text(0, 0) != string(locale.ConfigureKeyboardHelp) {
		t.Fatalf("expected help restored, got %q", h.text(0, 0))
	}
	matches := 0
	for n := input.Need(0); n < input.NumRemappableNeeds; n++ {
		for _, k := range h.bindings[n].Keys {
			if k == input.KeyW {
				matches++
			}
		}
	}
	if matches != 1 {
		t.Fatalf("expected W bound once, got %d", matches)
	}
}

func TestKeyCaptureEscapeCancels(t *testing.T) {
	h := newHarness(t, keyboardTree(), nil)
	h.start()
	h.tap(input.KeyRight)
	if h.nav.KeyColumn() != 1 {
		t.Fatalf("expected column 1, got %d", h.nav.KeyColumn())
	}
	before := h.bindings[input.NeedForward]
	h.tap(input.KeyEnter)
	h.tap(input.KeyEscape)
	if h.nav.State() != StateReady {
		t.Fatalf("expected ready after cancel, got %v", h.nav.State())
	}
	if h.bindings[input.NeedForward] != before {
		t.Fatalf("cancel must not change bindings")
	}
	if h.text(1, 2) != "W" {
		t.Fatalf("expected previous text restored, got %q", h.text(1, 2))
	}
	if h.cues.last() != CueError {
		t.Fatalf("expected error cue on cancel")
	}
	if h.nav.Menu() != Root || h.nav.State() != StateReady {
		t.Fatalf("escape during capture must not back out")
	}
}

func TestPadConfirmDoesNotStartKeyCapture(t *testing.T) {
	h := newHarness(t, keyboardTree(), nil)
	pad := h.be.Plug(1)
	h.start()
	pad.Buttons[input.PadA] = true
	h.step()
	if h.nav.State() != StateReady {
		t.Fatalf("pad A must not start key capture, got %v", h.nav.State())
	}
	pad.Buttons[input.PadA] = false
	h.step()

	h.tap(input.KeyKpEnter)
	if h.nav.State() != StateAwaitingKeyPress {
		t.Fatalf("keypad enter must start key capture, got %v", h.nav.State())
	}
}

func TestKeyBindingDelete(t *testing.T) {
	h := newHarness(t, keyboardTree(), nil)
	h.start()
	h.tap(input.KeyDelete)
	if h.bindings[input.NeedForward].Keys[0] != input.KeyNull {
		t.Fatalf("expected slot cleared")
	}
	if h.text(1, 1) != string(locale.Unbound) || h.cues.last() != CueDelete {
		t.Fatalf("expected unbound text and delete cue")
	}
}

func gamepadTree() Tree {
	return Tree{Root: {
		{Kind: KindSubtitle, Text: locale.ConfigureGamepadHelp},
		{Kind: KindPadBinding, Need: input.NeedBrakes},
		{Kind: KindPadBinding, Need: input.NeedCameraMode},
	}}
}

func TestPadCaptureDrainsConfirm(t *testing.T) {
	h := newHarness(t, gamepadTree(), nil)
	pad := h.be.Plug(1)
	h.start()

	h.onSleep = func(n int) {
		if n == 1 {
			pad.Buttons[input.PadA] = false
		}
	}
	pad.Buttons[input.PadA] = true
	h.step()
	if h.nav.State() != StateAwaitingPadPress {
		t.Fatalf("expected pad capture, got %v", h.nav.State())
	}
	if h.sleeps != 2 {
		t.Fatalf("expected two drain rounds, got %d", h.sleeps)
	}
	if h.text(0, 0) != string(locale.ConfigureGamepadHelpCancel) {
		t.Fatalf("expected cancel help, got %q", h.text(0, 0))
	}

	pad.Buttons[input.PadY] = true
	h.step()
	if h.nav.State() != StateReady {
		t.Fatalf("expected ready after capture, got %v", h.nav.State())
	}
	if h.bindings[input.NeedBrakes].Pad[0] != input.ButtonBinding(input.PadY) {
		t.Fatalf("expected Y on brakes, got %v", h.bindings[input.NeedBrakes].Pad[0])
	}
	if h.bindings[input.NeedCameraMode].Pad[0].Bound() {
		t.Fatalf("expected Y stripped from camera mode")
	}
	if h.text(1, 1) != "Y" || h.text(2, 1) != string(locale.Unbound) {
		t.Fatalf("unexpected texts %q %q", h.text(1, 1), h.text(2, 1))
	}
}

func TestPadBindingColumnWraps(t *testing.T) {
	h := newHarness(t, gamepadTree(), nil)
	h.start()
	if h.nav.PadColumn() != 0 {
		t.Fatalf("expected column 0, got %d", h.nav.PadColumn())
	}
	h.tap(input.KeyRight)
	if h.nav.PadColumn() != 1 {
		t.Fatalf("expected column 1, got %d", h.nav.PadColumn())
	}
	h.tap(input.KeyLeft)
	h.tap(input.KeyLeft)
	if h.nav.PadColumn() != input.MaxPadPerNeed-1 {
		t.Fatalf("expected wrap to the last column, got %d", h.nav.PadColumn())
	}
}

func TestPadCaptureDrainIsBounded(t *testing.T) {
	h := newHarness(t, gamepadTree(), nil)
	pad := h.be.Plug(1)
	h.start()
	pad.Buttons[input.PadA] = true
	h.step()
	if h.sleeps != maxDrainPolls {
		t.Fatalf("expected %d drain rounds, got %d", maxDrainPolls, h.sleeps)
	}
	if h.nav.State() != StateAwaitingPadPress {
		t.Fatalf("expected pad capture after giving up, got %v", h.nav.State())
	}
}

func TestPadCaptureStartCancels(t *testing.T) {
	h := newHarness(t, gamepadTree(), nil)
	pad := h.be.Plug(1)
	h.start()
	h.tap(input.KeyEnter)
	if h.nav.State() != StateAwaitingPadPress {
		t.Fatalf("expected pad capture, got %v", h.nav.State())
	}
	before := *h.bindings
	pad.Buttons[input.PadStart] = true
	h.step()
	if h.nav.State() != StateReady || *h.bindings != before {
		t.Fatalf("start must cancel the capture without binding")
	}
	if h.text(0, 0) != string(locale.ConfigureGamepadHelp) {
		t.Fatalf("expected help restored, got %q", h.text(0, 0))
	}
}

func TestDrainPropagatesQuit(t *testing.T) {
	h := newHarness(t, gamepadTree(), nil)
	pad := h.be.Plug(1)
	h.start()
	h.onSleep = func(int) { h.be.Quit() }
	pad.Buttons[input.PadA] = true
	if err := h.nav.Step(frame); !errors.Is(err, input.ErrQuit) {
		t.Fatalf("expected quit from the drain loop, got %v", err)
	}
}

func TestMouseCapture(t *testing.T) {
	tree := Tree{Root: {
		{Kind: KindMouseBinding, Need: input.NeedThrowForward},
		{Kind: KindMouseBinding, Need: input.NeedThrowBackward},
	}}
	h := newHarness(t, tree, nil)
	h.start()
	h.onSleep = func(int) { h.be.Release(input.KeyEnter) }
	h.be.Press(input.KeyEnter)
	h.step()
	if h.nav.State() != StateAwaitingMouseClick {
		t.Fatalf("expected mouse capture, got %v", h.nav.State())
	}
	if h.text(0, 1) != string(locale.ClickButton) {
		t.Fatalf("expected click prompt, got %q", h.text(0, 1))
	}
	h.be.Buttons[input.MouseRight] = true
	h.step()
	if h.bindings[input.NeedThrowForward].Mouse != input.MouseRight {
		t.Fatalf("expected right click on throw forward")
	}
	if h.bindings[input.NeedThrowBackward].Mouse != input.MouseNone {
		t.Fatalf("expected right click stripped from throw backward")
	}
	if h.text(0, 1) != string(locale.MouseRight) || h.text(1, 1) != string(locale.Unbound) {
		t.Fatalf("unexpected texts %q %q", h.text(0, 1), h.text(1, 1))
	}
}

func TestNonInteractiveMenuBacksOut(t *testing.T) {
	style := DefaultStyle()
	style.IsInteractive = false
	style.CanBackOutOfRootMenu = true
	h := newHarness(t, startQuitTree(), &style)
	h.start()
	h.tap(input.KeyDown)
	if h.nav.Row() != 1 {
		t.Fatalf("non-interactive menu must not navigate")
	}
	h.tap(input.KeyEnter)
	if h.nav.State() != StateOff {
		t.Fatalf("expected confirm to leave, got %v", h.nav.State())
	}
}

func TestKillEndsReadyMenu(t *testing.T) {
	h := newHarness(t, startQuitTree(), nil)
	h.nav.Start()
	h.nav.Kill(9)
	if h.nav.State() != StateFadeIn {
		t.Fatalf("kill during fade in must be ignored")
	}
	h.start()
	h.nav.Kill(42)
	h.step()
	if got := h.nav.Finish(nil); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestSynchronousFadeOut(t *testing.T) {
	style := DefaultStyle()
	style.AsyncFadeOut = false
	style.FadeOutSceneOnExit = false
	h := newHarness(t, startQuitTree(), &style)
	h.start()
	h.nav.Kill(1)
	frames := 0
	for h.nav.State() != StateOff && frames < 100 {
		h.step()
		frames++
	}
	if frames < 25 || frames > 35 {
		t.Fatalf("expected about half a second of fade out, took %d frames", frames)
	}
	h.nav.Finish(nil)
	if len(h.render.adopted) != 0 || h.render.fades != 0 {
		t.Fatalf("synchronous exit must drop nodes itself")
	}
	if h.nav.Node(1, 0) != nil {
		t.Fatalf("expected nodes dropped")
	}
}

func TestStartButtonExits(t *testing.T) {
	style := DefaultStyle()
	style.StartButtonExits = true
	style.CanBackOutOfRootMenu = true
	h := newHarness(t, startQuitTree(), &style)
	pad := h.be.Plug(1)
	h.start()
	pad.Buttons[input.PadStart] = true
	h.step()
	if h.nav.State() != StateOff {
		t.Fatalf("expected start to exit, got %v", h.nav.State())
	}
}

func TestRunReturnsPickAndGuardsNesting(t *testing.T) {
	h := newHarness(t, startQuitTree(), nil)
	frames := 0
	var nestedErr error
	update := func(float32) {
		frames++
		if frames == 1 {
			_, nestedErr = New(startQuitTree(), nil, h.nav.deps).Run(nil, nil)
		}
		switch frames {
		case 30:
			h.be.Press(input.KeyDown)
		case 31:
			h.be.Release(input.KeyDown)
		case 32:
			h.be.Press(input.KeyEnter)
		}
	}
	pick, err := h.nav.Run(update, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !errors.Is(nestedErr, ErrNested) {
		t.Fatalf("expected nested run to fail, got %v", nestedErr)
	}
	if pick != 2 {
		t.Fatalf("expected quit pick 2, got %d", pick)
	}
	if h.render.frames == 0 {
		t.Fatalf("expected frames drawn")
	}
}

func TestRunPropagatesQuit(t *testing.T) {
	h := newHarness(t, startQuitTree(), nil)
	update := func(float32) { h.be.Quit() }
	if _, err := h.nav.Run(update, nil); !errors.Is(err, input.ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if _, err := New(startQuitTree(), nil, h.nav.deps).Run(func(float32) { h.be.Quit() }, nil); !errors.Is(err, input.ErrQuit) {
		t.Fatalf("guard must be released after an error, got %v", err)
	}
}

func TestUnsupportedKindIsFatal(t *testing.T) {
	withPanickingFatal(t)
	tree := Tree{Root: {{Kind: Kind(99)}}}
	if err := tree.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
	nav := New(tree, nil, Deps{})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected fatal alert")
		}
	}()
	nav.Start()
}

func TestTreeValidate(t *testing.T) {
	if err := (Tree{}).Validate(); err == nil {
		t.Fatalf("expected missing root error")
	}
	bad := Tree{Root: {{Kind: KindPick, Goto: Tag("nope")}}}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected dangling goto error")
	}
	long := make(Menu, MaxRows+1)
	for i := range long {
		long[i] = Item{Kind: KindLabel}
	}
	if err := (Tree{Root: long}).Validate(); err == nil {
		t.Fatalf("expected too many rows error")
	}
	if Tag("keyb").String() != "keyb" {
		t.Fatalf("unexpected tag round trip %q", Tag("keyb").String())
	}
}
