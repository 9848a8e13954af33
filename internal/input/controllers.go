package input

func (s *System) slotOf(id DeviceID) int {
	for i := range s.controllers {
		if s.controllers[i].open && s.controllers[i].device == id {
			return i
		}
	}
	return -1
}

func (s *System) freeSlot() int {
	for i := range s.controllers {
		if !s.controllers[i].open {
			return i
		}
	}
	return -1
}

// openDevice binds a joystick to the first free slot. It reports whether
// the device ends up bound, including when it already was.
func (s *System) openDevice(id DeviceID) bool {
	if s.slotOf(id) >= 0 {
		return true
	}
	slot := s.freeSlot()
	if slot < 0 {
		s.log.Printf("input: all controller slots used up, joystick %d left unopened", id)
		return false
	}
	pad, err := s.backend.OpenPad(id)
	if err != nil {
		if !errIsUnsupported(err) {
			s.log.Printf("input: open joystick %d: %v", id, err)
		}
		return false
	}
	pad.SetPlayerIndex(slot)
	s.controllers[slot] = controller{open: true, pad: pad, device: id}
	s.log.Printf("input: opened joystick %d as controller %d: %s", id, slot, pad.Name())
	return true
}

func (s *System) closeSlot(slot int) {
	c := &s.controllers[slot]
	if c.pad != nil {
		c.pad.Close()
	}
	*c = controller{device: NoDevice}
}

func (s *System) onDeviceRemoved(id DeviceID) {
	if slot := s.slotOf(id); slot >= 0 {
		s.log.Printf("input: joystick %d removed, was used by controller slot %d", id, slot)
		s.closeSlot(slot)
	}
	if !s.locked {
		s.compact()
	}
	s.fillVacantSlots()
}

// compact moves open controllers to the front of the slot array, keeping
// their relative order.
func (s *System) compact() {
	write := 0
	for i := range s.controllers {
		if !s.controllers[i].open {
			continue
		}
		if i != write {
			s.log.Printf("input: remapped player controller %d -> %d", i, write)
			s.controllers[write] = s.controllers[i]
			s.controllers[write].pad.SetPlayerIndex(write)
			s.controllers[i] = controller{device: NoDevice}
		}
		write++
	}
}

// fillVacantSlots opens connected devices that are not bound yet until the
// slots run out.
func (s *System) fillVacantSlots() {
	for _, id := range s.backend.Devices() {
		if s.freeSlot() < 0 {
			return
		}
		if s.slotOf(id) >= 0 {
			continue
		}
		s.openDevice(id)
	}
}

// ScanDevices opens every connected gamepad that fits in a free slot.
func (s *System) ScanDevices() {
	s.fillVacantSlots()
}

// LockPlayerControllerMapping freezes slot assignment once players are
// seated. The last local player falls back to the keyboard.
func (s *System) LockPlayerControllerMapping() {
	keyboardPlayer := s.numLocal - 1
	for i := range s.fallback {
		s.fallback[i] = i == keyboardPlayer
	}
	s.locked = true
}

func (s *System) UnlockPlayerControllerMapping() {
	s.locked = false
	for i := range s.fallback {
		s.fallback[i] = false
	}
	s.compact()
	s.fillVacantSlots()
}

func (s *System) MappingLocked() bool {
	return s.locked
}

func (s *System) SetNumLocalPlayers(n int) {
	s.numLocal = min(max(n, 1), MaxLocalPlayers)
}

func (s *System) NumLocalPlayers() int {
	return s.numLocal
}

// NumControllers counts open controller slots.
func (s *System) NumControllers() int {
	n := 0
	for i := range s.controllers {
		if s.controllers[i].open {
			n++
		}
	}
	return n
}

func (s *System) ControllerOpen(slot int) bool {
	return slot >= 0 && slot < MaxLocalPlayers && s.controllers[slot].open
}

func (s *System) ControllerName(slot int) string {
	if !s.ControllerOpen(slot) {
		return ""
	}
	return s.controllers[slot].pad.Name()
}

// ControllerDevice returns the device bound to slot, or NoDevice.
func (s *System) ControllerDevice(slot int) DeviceID {
	if !s.ControllerOpen(slot) {
		return NoDevice
	}
	return s.controllers[slot].device
}

func (s *System) EnoughControllers() bool {
	return s.NumControllers() >= s.numLocal
}

// UserPrefersGamepad reports whether the last key or button event came from
// a gamepad.
func (s *System) UserPrefersGamepad() bool {
	return s.prefersGamepad
}

// Close releases every open pad.
func (s *System) Close() {
	for i := range s.controllers {
		if s.controllers[i].open {
			s.closeSlot(i)
		}
	}
}
