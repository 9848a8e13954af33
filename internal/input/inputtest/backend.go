// Package inputtest provides a scriptable input.Backend for tests.
package inputtest

import (
	"fmt"

	"github.com/appengine-ltd/retro-rally/internal/input"
)

// Backend holds the raw device state a test wants the next Poll to see.
// Events queued with Push are delivered once.
type Backend struct {
	Keys    map[input.Key]bool
	Buttons map[input.MouseButton]bool

	events  []input.Event
	devices []*Pad
}

func New() *Backend {
	return &Backend{
		Keys:    make(map[input.Key]bool),
		Buttons: make(map[input.MouseButton]bool),
	}
}

func (b *Backend) PumpEvents() []input.Event {
	evs := b.events
	b.events = nil
	return evs
}

func (b *Backend) KeyDown(k input.Key) bool { return b.Keys[k] }

func (b *Backend) MouseButtonDown(m input.MouseButton) bool { return b.Buttons[m] }

func (b *Backend) Devices() []input.DeviceID {
	ids := make([]input.DeviceID, 0, len(b.devices))
	for _, p := range b.devices {
		ids = append(ids, p.ID)
	}
	return ids
}

func (b *Backend) OpenPad(id input.DeviceID) (input.Pad, error) {
	p := b.Device(id)
	if p == nil {
		return nil, fmt.Errorf("joystick %d not connected", id)
	}
	if p.Unsupported {
		return nil, input.ErrUnsupportedDevice
	}
	p.Opened = true
	p.Closed = false
	return p, nil
}

// Push queues a raw event for the next Poll.
func (b *Backend) Push(ev input.Event) {
	b.events = append(b.events, ev)
}

// Quit queues a quit event.
func (b *Backend) Quit() {
	b.Push(input.Event{Kind: input.EventQuit})
}

// Wheel queues a mouse wheel movement.
func (b *Backend) Wheel(delta float32) {
	b.Push(input.Event{Kind: input.EventMouseWheel, Wheel: delta})
}

// Connect adds a pad without telling the system, as if it was plugged in
// before startup.
func (b *Backend) Connect(id input.DeviceID) *Pad {
	p := &Pad{ID: id, PlayerIndex: -1}
	b.devices = append(b.devices, p)
	return p
}

// Plug connects a pad and queues its attach event.
func (b *Backend) Plug(id input.DeviceID) *Pad {
	p := b.Connect(id)
	b.Push(input.Event{Kind: input.EventDeviceAdded, Device: id})
	return p
}

// Unplug disconnects a pad and queues its detach event.
func (b *Backend) Unplug(id input.DeviceID) {
	for i, p := range b.devices {
		if p.ID == id {
			b.devices = append(b.devices[:i], b.devices[i+1:]...)
			break
		}
	}
	b.Push(input.Event{Kind: input.EventDeviceRemoved, Device: id})
}

func (b *Backend) Device(id input.DeviceID) *Pad {
	for _, p := range b.devices {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Pad is a fake gamepad whose buttons and axes are set directly.
type Pad struct {
	ID          input.DeviceID
	Unsupported bool

	Buttons [input.NumPadButtons]bool
	Axes    [input.NumPadAxes]int16

	PlayerIndex int
	Opened      bool
	Closed      bool
}

func (p *Pad) Button(b input.PadButton) bool { return p.Buttons[b] }
func (p *Pad) Axis(a input.PadAxis) int16    { return p.Axes[a] }
func (p *Pad) Name() string                  { return fmt.Sprintf("Test Pad %d", p.ID) }
func (p *Pad) SetPlayerIndex(i int)          { p.PlayerIndex = i }
func (p *Pad) Close()                        { p.Closed = true; p.Opened = false }

// Press holds the given keys on the backend.
func (b *Backend) Press(keys ...input.Key) {
	for _, k := range keys {
		b.Keys[k] = true
	}
}

// Release lets go of the given keys.
func (b *Backend) Release(keys ...input.Key) {
	for _, k := range keys {
		delete(b.Keys, k)
	}
}

// ReleaseAll lets go of every key and mouse button.
func (b *Backend) ReleaseAll() {
	clear(b.Keys)
	clear(b.Buttons)
}
