package menu

import (
	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/locale"
)

func posMod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}

func (n *Nav) pressed(needs ...input.Need) bool {
	for _, need := range needs {
		if n.deps.Input.NeedPressedAny(need) {
			return true
		}
	}
	return false
}

func (n *Nav) navigate() error {
	if n.pressed(input.NeedUIBack) {
		n.back()
		if n.state != StateReady {
			return nil
		}
	}
	if n.pressed(input.NeedUIUp) {
		n.navigateVertically(-1)
	}
	if n.pressed(input.NeedUIDown) {
		n.navigateVertically(1)
	}

	if n.row < 0 || n.row >= len(n.menu) {
		return nil
	}
	it := &n.menu[n.row]
	if nav := kindOf(it.Kind).navigate; nav != nil {
		return nav(n, it)
	}
	return nil
}

// back pops one menu off the history, or leaves the root menu when the
// style allows it.
func (n *Nav) back() {
	switch {
	case n.historyPos > 0:
		n.play(CueBack)
		n.historyPos--
		n.layout(n.history[n.historyPos].menu)
	case n.style.CanBackOutOfRootMenu:
		n.play(CueBack)
		n.state = StateFadeOut
	default:
		n.play(CueError)
	}
}

// navigateVertically moves the cursor to the next selectable row in the
// direction of delta, wrapping around. It leaves the cursor alone when no
// row is selectable.
func (n *Nav) navigateVertically(delta int) {
	count := len(n.menu)
	if count == 0 {
		return
	}
	makeSound := n.row >= 0
	row := n.row
	for browsed := 0; ; browsed++ {
		if browsed >= count {
			return
		}
		row = posMod(row+delta, count)
		if Selectable(&n.menu[row]) {
			break
		}
	}
	n.row = row
	n.idle = 0
	if makeSound {
		n.play(CueNavigate)
	}
}

func (n *Nav) push(id ID) {
	if n.historyPos+1 >= MaxHistory {
		n.play(CueError)
		return
	}
	n.history[n.historyPos].row = n.row
	n.historyPos++
	n.history[n.historyPos] = historyEntry{menu: id}
	n.deps.Input.InvalidateNeedState(input.NeedUIConfirm)
	n.layout(id)
}

func (n *Nav) navigatePick(it *Item) error {
	if !n.pressed(input.NeedUIConfirm) {
		return nil
	}
	n.idle = 0

	if it.Goto != GotoBack {
		n.play(CueConfirm)
	} else if n.style.PlayMenuChangeSounds {
		n.play(CueMenuChange)
	}

	n.pick = it.ID
	if it.Callback != nil {
		it.Callback(n, it)
	}

	switch {
	case it.Goto > 0:
		n.push(it.Goto)
	case it.Goto == GotoBack:
		n.back()
	case it.Goto == GotoExit:
		n.state = StateFadeOut
	}
	return nil
}

func (n *Nav) navigateCycler(it *Item) error {
	delta := 0
	switch {
	case n.pressed(input.NeedUILeft, input.NeedUIPrev):
		delta = -1
	case n.pressed(input.NeedUIRight, input.NeedUINext, input.NeedUIConfirm):
		delta = 1
	}
	if delta == 0 {
		return nil
	}

	n.idle = 0
	n.play(CueCycle)

	if c := it.Cycler; c != nil && c.Value != nil && !c.CallbackSetsValue && len(c.Choices) > 0 {
		i := c.index(*c.Value)
		if i >= 0 {
			i = posMod(i+delta, len(c.Choices))
		} else {
			i = 0
		}
		*c.Value = c.Choices[i].Value
	}

	row := n.row
	if it.Callback != nil {
		it.Callback(n, it)
	}
	// The callback may have moved to another menu.
	if row < 0 || row >= len(n.menu) || &n.menu[row] != it {
		return nil
	}
	if it.Kind == KindCMRCycler {
		n.layoutCMRCycler(row, 0)
	} else {
		n.layoutCyclerValue(row)
	}
	return nil
}

// bindingColumn moves a slot cursor left or right. It reports whether the
// frame's input was consumed.
func (n *Nav) bindingColumn(col *int, slots int) bool {
	switch {
	case n.pressed(input.NeedUILeft, input.NeedUIPrev):
		*col = posMod(*col-1, slots)
	case n.pressed(input.NeedUIRight, input.NeedUINext):
		*col = posMod(*col+1, slots)
	default:
		return false
	}
	n.idle = 0
	n.play(CueNavigate)
	return true
}

func (n *Nav) navigateKeyBinding(it *Item) error {
	if n.bindingColumn(&n.keyCol, input.MaxKeysPerNeed) {
		return nil
	}
	if n.keyCol < 0 || n.keyCol >= input.MaxKeysPerNeed {
		return nil
	}

	switch {
	case n.pressed(input.NeedUIDelete):
		n.idle = 0
		n.deps.Bindings.ClearKey(it.Need, n.keyCol)
		n.play(CueDelete)
		n.makeText(n.localize(locale.Unbound), n.row, n.keyCol+1)
	case n.deps.Input.KeyPressed(input.KeyEnter) || n.deps.Input.KeyPressed(input.KeyKpEnter):
		// Only the keyboard starts key capture. Pad A would leave the
		// player with nothing to cancel it from.
		n.idle = 0
		n.state = StateAwaitingKeyPress
		n.makeText(n.localize(locale.PressKey), n.row, n.keyCol+1)
		n.replaceText(locale.ConfigureKeyboardHelp, locale.ConfigureKeyboardHelpCancel)
	}
	return nil
}

func (n *Nav) navigatePadBinding(it *Item) error {
	if n.bindingColumn(&n.padCol, input.MaxPadPerNeed) {
		return nil
	}
	if n.padCol < 0 || n.padCol >= input.MaxPadPerNeed {
		return nil
	}

	switch {
	case n.pressed(input.NeedUIDelete):
		n.idle = 0
		n.deps.Bindings.ClearPad(it.Need, n.padCol)
		n.play(CueDelete)
		n.makeText(n.localize(locale.Unbound), n.row, n.padCol+1)
	case n.pressed(input.NeedUIConfirm):
		n.idle = 0
		if err := n.drainConfirm(); err != nil {
			return err
		}
		n.state = StateAwaitingPadPress
		n.makeText(n.localize(locale.PressButton), n.row, n.padCol+1)
		n.replaceText(locale.ConfigureGamepadHelp, locale.ConfigureGamepadHelpCancel)
	}
	return nil
}

func (n *Nav) navigateMouseBinding(it *Item) error {
	switch {
	case n.pressed(input.NeedUIDelete):
		n.idle = 0
		n.deps.Bindings.ClearMouse(it.Need)
		n.play(CueDelete)
		n.makeText(n.localize(locale.Unbound), n.row, 1)
	case n.pressed(input.NeedUIConfirm):
		n.idle = 0
		if err := n.drainConfirm(); err != nil {
			return err
		}
		n.state = StateAwaitingMouseClick
		n.makeText(n.localize(locale.ClickButton), n.row, 1)
		n.replaceText(locale.ConfigureMouseHelp, locale.ConfigureMouseHelpCancel)
	}
	return nil
}

// drainConfirm waits for the confirm input that opened a capture to be
// released, so the capture does not grab it. It polls at a fixed pace and
// gives up after maxDrainPolls rounds.
func (n *Nav) drainConfirm() error {
	in := n.deps.Input
	for i := 0; i < maxDrainPolls && in.NeedDownAny(input.NeedUIConfirm); i++ {
		if err := in.Poll(); err != nil {
			return err
		}
		n.deps.Sleep(drainInterval)
	}
	return nil
}

func (n *Nav) endCapture(cue Cue) {
	n.state = StateReady
	n.idle = 0
	n.play(cue)
}

func (n *Nav) awaitKeyPress() {
	if n.deps.Input.KeyPressed(input.KeyEscape) {
		n.makeText(n.keyBindingName(n.row, n.keyCol), n.row, n.keyCol+1)
		n.endCapture(CueError)
		n.replaceText(locale.ConfigureKeyboardHelp, locale.ConfigureKeyboardHelp)
		return
	}
	k, ok := n.deps.Input.PressedKey()
	if !ok {
		return
	}
	n.deps.Bindings.AssignKey(n.menu[n.row].Need, n.keyCol, k)
	n.refreshBindings(KindKeyBinding)
	n.endCapture(CueConfirm)
	n.replaceText(locale.ConfigureKeyboardHelp, locale.ConfigureKeyboardHelp)
}

func (n *Nav) awaitPadPress() {
	in := n.deps.Input
	if in.KeyPressed(input.KeyEscape) || in.PadButtonPressed(input.PadStart) {
		n.makeText(n.padBindingName(n.row, n.padCol), n.row, n.padCol+1)
		n.endCapture(CueError)
		n.replaceText(locale.ConfigureGamepadHelp, locale.ConfigureGamepadHelp)
		return
	}
	pb, ok := in.PressedPadInput()
	if !ok {
		return
	}
	n.deps.Bindings.AssignPad(n.menu[n.row].Need, n.padCol, pb)
	n.refreshBindings(KindPadBinding)
	n.endCapture(CueConfirm)
	n.replaceText(locale.ConfigureGamepadHelp, locale.ConfigureGamepadHelp)
}

func (n *Nav) awaitMouseClick() {
	in := n.deps.Input
	if in.KeyPressed(input.KeyEscape) {
		n.makeText(n.mouseBindingName(n.row), n.row, 1)
		n.endCapture(CueError)
		n.replaceText(locale.ConfigureMouseHelp, locale.ConfigureMouseHelp)
		return
	}
	b, ok := in.PressedClick()
	if !ok {
		return
	}
	n.deps.Bindings.AssignMouse(n.menu[n.row].Need, b)
	n.refreshBindings(KindMouseBinding)
	n.endCapture(CueConfirm)
	n.replaceText(locale.ConfigureMouseHelp, locale.ConfigureMouseHelp)
}
