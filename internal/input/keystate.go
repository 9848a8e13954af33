package input

// KeyState is the debounced state of one key, button or need for the
// current tick.
type KeyState uint8

const (
	activeBit KeyState = 1 << iota
	changeBit
	ignoreBit
)

const (
	StateOff         KeyState = 0
	StatePressed              = activeBit | changeBit
	StateHeld                 = activeBit
	StateUp                   = changeBit
	StateIgnoredHeld          = ignoreBit
)

// Next returns the state for this tick given the previous state and whether
// the physical source is down right now. Pressed and Up last one tick.
func (s KeyState) Next(down bool) KeyState {
	switch s {
	case StateHeld, StatePressed:
		if down {
			return StateHeld
		}
		return StateUp
	case StateIgnoredHeld:
		if down {
			return StateIgnoredHeld
		}
		return StateOff
	default:
		if down {
			return StatePressed
		}
		return StateOff
	}
}

// Active reports whether the source counts as down (Pressed or Held).
func (s KeyState) Active() bool {
	return s&activeBit != 0
}

func (s KeyState) String() string {
	switch s {
	case StateOff:
		return "off"
	case StatePressed:
		return "pressed"
	case StateHeld:
		return "held"
	case StateUp:
		return "up"
	case StateIgnoredHeld:
		return "ignored-held"
	default:
		return "invalid"
	}
}

func invalidate(states []KeyState) {
	for i := range states {
		states[i] = StateIgnoredHeld
	}
}
