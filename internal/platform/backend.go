// Package platform connects the input system to the real devices: raylib
// for the window, keyboard and mouse, SDL3 for joysticks.
package platform

import (
	"github.com/appengine-ltd/retro-rally/internal/input"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Backend implements input.Backend. Joysticks may be nil, in which case no
// pad is ever reported.
type Backend struct {
	pads   *Joysticks
	events []input.Event
}

func NewBackend(pads *Joysticks) *Backend {
	return &Backend{pads: pads}
}

func (b *Backend) PumpEvents() []input.Event {
	b.events = b.events[:0]
	if rl.WindowShouldClose() {
		b.events = append(b.events, input.Event{Kind: input.EventQuit})
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		b.events = append(b.events, input.Event{Kind: input.EventMouseWheel, Wheel: wheel})
	}
	typed := false
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		typed = true
	}
	if typed {
		b.events = append(b.events, input.Event{Kind: input.EventKeyDown})
	}
	if b.pads != nil {
		b.events = b.pads.PumpEvents(b.events)
	}
	return b.events
}

func (b *Backend) KeyDown(k input.Key) bool {
	return rl.IsKeyDown(int32(k))
}

func (b *Backend) MouseButtonDown(m input.MouseButton) bool {
	switch m {
	case input.MouseLeft:
		return rl.IsMouseButtonDown(rl.MouseButtonLeft)
	case input.MouseMiddle:
		return rl.IsMouseButtonDown(rl.MouseButtonMiddle)
	case input.MouseRight:
		return rl.IsMouseButtonDown(rl.MouseButtonRight)
	case input.MouseX1:
		return rl.IsMouseButtonDown(rl.MouseButtonSide)
	case input.MouseX2:
		return rl.IsMouseButtonDown(rl.MouseButtonExtra)
	}
	// Wheel directions arrive as events.
	return false
}

func (b *Backend) Devices() []input.DeviceID {
	if b.pads == nil {
		return nil
	}
	return b.pads.Devices()
}

func (b *Backend) OpenPad(id input.DeviceID) (input.Pad, error) {
	if b.pads == nil {
		return nil, input.ErrUnsupportedDevice
	}
	return b.pads.Open(id)
}
