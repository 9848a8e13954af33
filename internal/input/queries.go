package input

func (s *System) KeyDown(k Key) bool {
	return k > KeyNull && k < NumKeys && s.keys[k].Active()
}

func (s *System) KeyPressed(k Key) bool {
	return k > KeyNull && k < NumKeys && s.keys[k] == StatePressed
}

func (s *System) ClickDown(b MouseButton) bool {
	return b > MouseNone && b < NumMouseButtons && s.mouse[b].Active()
}

func (s *System) ClickPressed(b MouseButton) bool {
	return b > MouseNone && b < NumMouseButtons && s.mouse[b] == StatePressed
}

// PressedKey returns the lowest key code that went down this frame.
func (s *System) PressedKey() (Key, bool) {
	for k := Key(1); k < NumKeys; k++ {
		if s.keys[k] == StatePressed {
			return k, true
		}
	}
	return KeyNull, false
}

// PressedClick returns the first mouse button, wheel included, that went
// down this frame.
func (s *System) PressedClick() (MouseButton, bool) {
	for b := MouseLeft; b < NumMouseButtons; b++ {
		if s.mouse[b] == StatePressed {
			return b, true
		}
	}
	return MouseNone, false
}

// PadButtonPressed reports a fresh press of b on any open controller.
func (s *System) PadButtonPressed(b PadButton) bool {
	if b >= NumPadButtons {
		return false
	}
	for i := range s.controllers {
		if s.controllers[i].open && s.controllers[i].buttons[b] == StatePressed {
			return true
		}
	}
	return false
}

// PressedPadInput returns a binding for the first gamepad input that went
// down this frame on any open controller. The d-pad and thumbsticks are
// reserved for menu navigation and never returned; triggers count once
// pushed past three quarters of their travel.
func (s *System) PressedPadInput() (PadBinding, bool) {
	for i := range s.controllers {
		c := &s.controllers[i]
		if !c.open {
			continue
		}
		for b := PadButton(0); b < NumPadButtons; b++ {
			if b.IsDpad() {
				continue
			}
			if c.buttons[b] == StatePressed {
				return ButtonBinding(b), true
			}
		}
		for a := PadAxis(0); a < NumPadAxes; a++ {
			if !a.IsTrigger() || c.axes[a] != StatePressed {
				continue
			}
			if c.pad.Axis(a) < 0 {
				return AxisMinus(a), true
			}
			return AxisPlus(a), true
		}
	}
	return PadBinding{}, false
}

// NeedState returns the keyboard and mouse state of n.
func (s *System) NeedState(n Need) KeyState {
	if !n.Valid() {
		return StateOff
	}
	return s.needs[n]
}

// usesKeyboard reports whether player reads the shared keyboard and mouse.
func (s *System) usesKeyboard(player int) bool {
	return s.numLocal <= 1 || !s.controllers[player].open || s.fallback[player]
}

func (s *System) validPlayer(n Need, player int) bool {
	return n.Valid() && player >= 0 && player < MaxLocalPlayers
}

// NeedDown reports whether player is holding n.
func (s *System) NeedDown(n Need, player int) bool {
	if !s.validPlayer(n, player) {
		return false
	}
	c := &s.controllers[player]
	if c.open && c.needStates[n].Active() {
		return true
	}
	return s.usesKeyboard(player) && s.needs[n].Active()
}

// NeedPressed reports whether player started pressing n this frame.
func (s *System) NeedPressed(n Need, player int) bool {
	if !s.validPlayer(n, player) {
		return false
	}
	c := &s.controllers[player]
	if c.open && c.needStates[n] == StatePressed {
		return true
	}
	return s.usesKeyboard(player) && s.needs[n] == StatePressed
}

// NeedDownAny reports whether anybody holds n.
func (s *System) NeedDownAny(n Need) bool {
	if !n.Valid() {
		return false
	}
	for i := range s.controllers {
		if s.controllers[i].open && s.controllers[i].needStates[n].Active() {
			return true
		}
	}
	return s.needs[n].Active()
}

// NeedPressedAny reports whether anybody started pressing n this frame.
func (s *System) NeedPressedAny(n Need) bool {
	if !n.Valid() {
		return false
	}
	for i := range s.controllers {
		if s.controllers[i].open && s.controllers[i].needStates[n] == StatePressed {
			return true
		}
	}
	return s.needs[n] == StatePressed
}

// AnalogValue returns how far player actuates n, from 0 to 1. A held key or
// pad button counts as full actuation. raw skips dead zone removal.
func (s *System) AnalogValue(n Need, player int, raw bool) float32 {
	if !s.validPlayer(n, player) {
		return 0
	}
	if s.usesKeyboard(player) && s.needs[n].Active() {
		return 1
	}
	c := &s.controllers[player]
	if !c.open {
		return 0
	}
	if raw {
		return c.needAnalogRaw[n]
	}
	return c.needAnalog[n]
}

// NeedAxis1D folds two opposing needs into one axis in -1..1; the stronger
// side wins.
func (s *System) NeedAxis1D(negative, positive Need, player int) float32 {
	neg := s.AnalogValue(negative, player, false)
	pos := s.AnalogValue(positive, player, false)
	if neg > pos {
		return -neg
	}
	return pos
}

// AnalogSteering returns the steering vector of player: x is left/right,
// y is forward (negative) / backward (positive).
func (s *System) AnalogSteering(player int) (x, y float32) {
	return s.NeedAxis1D(NeedLeft, NeedRight, player), s.NeedAxis1D(NeedForward, NeedBackward, player)
}

// UserWantsOut reports a fresh confirm, back or pause from anyone. Used to
// dismiss non-interactive screens.
func (s *System) UserWantsOut() bool {
	return s.NeedPressedAny(NeedUIConfirm) ||
		s.NeedPressedAny(NeedUIBack) ||
		s.NeedPressedAny(NeedUIPause)
}

// PlayerUsesGamepad reports whether player has a controller of their own.
func (s *System) PlayerUsesGamepad(player int) bool {
	return s.ControllerOpen(player) && !s.fallback[player]
}
