package input

import (
	"fmt"
	"strings"
)

const (
	MaxKeysPerNeed = 2
	MaxPadPerNeed  = 2
)

// PadInputType says how a PadBinding reads the controller.
type PadInputType uint8

const (
	PadUnbound PadInputType = iota
	PadTypeButton
	PadTypeAxisPlus
	PadTypeAxisMinus
)

// PadBinding is one gamepad source for a need. ID is a PadButton for
// buttons and a PadAxis for the two axis types.
type PadBinding struct {
	Type PadInputType
	ID   uint8
}

func ButtonBinding(b PadButton) PadBinding { return PadBinding{Type: PadTypeButton, ID: uint8(b)} }
func AxisPlus(a PadAxis) PadBinding        { return PadBinding{Type: PadTypeAxisPlus, ID: uint8(a)} }
func AxisMinus(a PadAxis) PadBinding       { return PadBinding{Type: PadTypeAxisMinus, ID: uint8(a)} }

// Bound reports whether the binding points at anything.
func (p PadBinding) Bound() bool {
	return p.Type != PadUnbound
}

// String renders the binding in the form used by preference files:
// "button:a", "axis+:lefttrigger", "axis-:leftx" or "none".
func (p PadBinding) String() string {
	switch p.Type {
	case PadTypeButton:
		return "button:" + PadButton(p.ID).String()
	case PadTypeAxisPlus:
		return "axis+:" + PadAxis(p.ID).String()
	case PadTypeAxisMinus:
		return "axis-:" + PadAxis(p.ID).String()
	default:
		return "none"
	}
}

// ParsePadBinding is the inverse of PadBinding.String.
func ParsePadBinding(s string) (PadBinding, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return PadBinding{}, nil
	}
	kind, id, ok := strings.Cut(s, ":")
	if !ok {
		return PadBinding{}, fmt.Errorf("pad binding %q: expected type:id", s)
	}
	switch kind {
	case "button":
		for b := PadButton(0); b < NumPadButtons; b++ {
			if b.String() == id {
				return ButtonBinding(b), nil
			}
		}
		return PadBinding{}, fmt.Errorf("pad binding %q: unknown button %q", s, id)
	case "axis+", "axis-":
		for a := PadAxis(0); a < NumPadAxes; a++ {
			if a.String() != id {
				continue
			}
			if kind == "axis+" {
				return AxisPlus(a), nil
			}
			return AxisMinus(a), nil
		}
		return PadBinding{}, fmt.Errorf("pad binding %q: unknown axis %q", s, id)
	}
	return PadBinding{}, fmt.Errorf("pad binding %q: unknown type %q", s, kind)
}

// Binding lists the physical sources of one need.
type Binding struct {
	Keys  [MaxKeysPerNeed]Key
	Pad   [MaxPadPerNeed]PadBinding
	Mouse MouseButton
}

// Bindings is the binding table, indexed by Need. It lives in the
// preferences and is mutated only by the rebinding flows.
type Bindings [NumNeeds]Binding

func keys(k ...Key) (out [MaxKeysPerNeed]Key) {
	copy(out[:], k)
	return out
}

func pads(p ...PadBinding) (out [MaxPadPerNeed]PadBinding) {
	copy(out[:], p)
	return out
}

// DefaultBindings returns the factory binding table.
func DefaultBindings() Bindings {
	return Bindings{
		NeedForward:       {Keys: keys(KeyUp, KeyW), Pad: pads(ButtonBinding(PadA), AxisPlus(PadTriggerRight))},
		NeedBackward:      {Keys: keys(KeyDown, KeyS), Pad: pads(ButtonBinding(PadX), AxisPlus(PadTriggerLeft))},
		NeedLeft:          {Keys: keys(KeyLeft, KeyA), Pad: pads(AxisMinus(PadLeftX), ButtonBinding(PadDpadLeft))},
		NeedRight:         {Keys: keys(KeyRight, KeyD), Pad: pads(AxisPlus(PadLeftX), ButtonBinding(PadDpadRight))},
		NeedBrakes:        {Keys: keys(KeySpace), Pad: pads(ButtonBinding(PadB))},
		NeedThrowForward:  {Keys: keys(KeyLeftShift, KeyRightShift), Pad: pads(ButtonBinding(PadRightShoulder)), Mouse: MouseLeft},
		NeedThrowBackward: {Keys: keys(KeyLeftControl, KeyRightControl), Pad: pads(ButtonBinding(PadLeftShoulder)), Mouse: MouseRight},
		NeedCameraMode:    {Keys: keys(Key('C')), Pad: pads(ButtonBinding(PadY))},
		NeedRearView:      {Keys: keys(Key('R')), Pad: pads(ButtonBinding(PadLeftStick)), Mouse: MouseMiddle},

		NeedUIUp:      {Keys: keys(KeyUp), Pad: pads(ButtonBinding(PadDpadUp), AxisMinus(PadLeftY))},
		NeedUIDown:    {Keys: keys(KeyDown), Pad: pads(ButtonBinding(PadDpadDown), AxisPlus(PadLeftY))},
		NeedUILeft:    {Keys: keys(KeyLeft), Pad: pads(ButtonBinding(PadDpadLeft), AxisMinus(PadLeftX))},
		NeedUIRight:   {Keys: keys(KeyRight), Pad: pads(ButtonBinding(PadDpadRight), AxisPlus(PadLeftX))},
		NeedUIPrev:    {Pad: pads(ButtonBinding(PadLeftShoulder))},
		NeedUINext:    {Pad: pads(ButtonBinding(PadRightShoulder))},
		NeedUIConfirm: {Keys: keys(KeyEnter, KeyKpEnter), Pad: pads(ButtonBinding(PadA))},
		NeedUIBack:    {Keys: keys(KeyEscape, KeyBackspace), Pad: pads(ButtonBinding(PadB), ButtonBinding(PadBack))},
		NeedUIDelete:  {Keys: keys(KeyDelete), Pad: pads(ButtonBinding(PadX))},
		NeedUIPause:   {Keys: keys(KeyEscape), Pad: pads(ButtonBinding(PadStart))},
		NeedUIStart:   {Pad: pads(ButtonBinding(PadStart))},
	}
}

// ResetKeyboard restores the keyboard part of every binding.
func (b *Bindings) ResetKeyboard(defaults *Bindings) {
	for i := range b {
		b[i].Keys = defaults[i].Keys
	}
}

// ResetGamepad restores the gamepad part of every binding.
func (b *Bindings) ResetGamepad(defaults *Bindings) {
	for i := range b {
		b[i].Pad = defaults[i].Pad
	}
}

// ResetMouse restores the mouse part of every binding.
func (b *Bindings) ResetMouse(defaults *Bindings) {
	for i := range b {
		b[i].Mouse = defaults[i].Mouse
	}
}

// AssignKey binds key into the given slot of need. The key is first removed
// from every remappable need that used it, so a key drives at most one
// remappable need. It returns the needs that lost the key.
func (b *Bindings) AssignKey(need Need, slot int, key Key) []Need {
	if !need.Valid() || slot < 0 || slot >= MaxKeysPerNeed {
		return nil
	}
	var stripped []Need
	for n := Need(0); n < NumRemappableNeeds; n++ {
		for j := range b[n].Keys {
			if b[n].Keys[j] == key && (n != need || j != slot) {
				b[n].Keys[j] = KeyNull
				stripped = appendNeed(stripped, n)
			}
		}
	}
	b[need].Keys[slot] = key
	return stripped
}

// AssignPad binds a gamepad source into the given slot of need, stripping it
// from every other remappable need first.
func (b *Bindings) AssignPad(need Need, slot int, pb PadBinding) []Need {
	if !need.Valid() || slot < 0 || slot >= MaxPadPerNeed {
		return nil
	}
	var stripped []Need
	for n := Need(0); n < NumRemappableNeeds; n++ {
		for j := range b[n].Pad {
			if b[n].Pad[j] == pb && (n != need || j != slot) {
				b[n].Pad[j] = PadBinding{}
				stripped = appendNeed(stripped, n)
			}
		}
	}
	b[need].Pad[slot] = pb
	return stripped
}

// AssignMouse binds a mouse button to need, stripping it from every other
// remappable need first.
func (b *Bindings) AssignMouse(need Need, btn MouseButton) []Need {
	if !need.Valid() {
		return nil
	}
	var stripped []Need
	for n := Need(0); n < NumRemappableNeeds; n++ {
		if n != need && b[n].Mouse == btn {
			b[n].Mouse = MouseNone
			stripped = appendNeed(stripped, n)
		}
	}
	b[need].Mouse = btn
	return stripped
}

func (b *Bindings) ClearKey(need Need, slot int) {
	if need.Valid() && slot >= 0 && slot < MaxKeysPerNeed {
		b[need].Keys[slot] = KeyNull
	}
}

func (b *Bindings) ClearPad(need Need, slot int) {
	if need.Valid() && slot >= 0 && slot < MaxPadPerNeed {
		b[need].Pad[slot] = PadBinding{}
	}
}

func (b *Bindings) ClearMouse(need Need) {
	if need.Valid() {
		b[need].Mouse = MouseNone
	}
}

func appendNeed(list []Need, n Need) []Need {
	for _, have := range list {
		if have == n {
			return list
		}
	}
	return append(list, n)
}
