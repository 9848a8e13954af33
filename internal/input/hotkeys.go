package input

func (s *System) ShiftDown() bool {
	return s.KeyDown(KeyLeftShift) || s.KeyDown(KeyRightShift)
}

func (s *System) CtrlDown() bool {
	return s.KeyDown(KeyLeftControl) || s.KeyDown(KeyRightControl)
}

func (s *System) AltDown() bool {
	return s.KeyDown(KeyLeftAlt) || s.KeyDown(KeyRightAlt)
}

func (s *System) SuperDown() bool {
	return s.KeyDown(KeyLeftSuper) || s.KeyDown(KeyRightSuper)
}

// ModifiedKeyPressed reports a fresh press of key while any of Shift, Ctrl
// or Alt is held.
func (s *System) ModifiedKeyPressed(key Key) bool {
	return (s.ShiftDown() || s.CtrlDown() || s.AltDown()) && s.KeyPressed(key)
}

// AltEnterPressed is the fullscreen toggle chord.
func (s *System) AltEnterPressed() bool {
	return s.KeyPressed(KeyEnter) && s.AltDown()
}

// CmdQPressed reports Cmd+Q. Other platforms close the window through the
// window manager, so it is always false there.
func (s *System) CmdQPressed() bool {
	return s.macShortcuts && s.SuperDown() && s.KeyPressed(KeyQ)
}
