package platform

import (
	"fmt"
	"log"

	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/jupiterrider/purego-sdl3/sdl"
)

// Joysticks is the SDL3 joystick subsystem. It reports hot-plug events with
// stable instance ids and opens pads in the standard layout.
type Joysticks struct {
	log *log.Logger
}

// OpenJoysticks initializes SDL's joystick subsystem. Call it from the main
// goroutine.
func OpenJoysticks(logger *log.Logger) (*Joysticks, error) {
	if logger == nil {
		logger = log.Default()
	}
	if !sdl.Init(sdl.InitJoystick) {
		return nil, fmt.Errorf("sdl init: %s", sdl.GetError())
	}
	logger.Println("SDL3 joystick subsystem initialized")
	return &Joysticks{log: logger}, nil
}

func (j *Joysticks) Close() {
	sdl.Quit()
}

// PumpEvents drains SDL's queue and keeps the events the input system
// cares about.
func (j *Joysticks) PumpEvents(out []input.Event) []input.Event {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			out = append(out, input.Event{Kind: input.EventDeviceAdded, Device: input.DeviceID(event.JDevice().Which)})
		case sdl.EventJoystickRemoved:
			out = append(out, input.Event{Kind: input.EventDeviceRemoved, Device: input.DeviceID(event.JDevice().Which)})
		case sdl.EventJoystickButtonDown:
			out = append(out, input.Event{Kind: input.EventPadButtonDown, Device: input.DeviceID(event.JButton().Which)})
		}
	}
	return out
}

func (j *Joysticks) Devices() []input.DeviceID {
	ids := sdl.GetJoysticks()
	out := make([]input.DeviceID, len(ids))
	for i, id := range ids {
		out[i] = input.DeviceID(id)
	}
	return out
}

func (j *Joysticks) Open(id input.DeviceID) (input.Pad, error) {
	js := sdl.OpenJoystick(sdl.JoystickID(id))
	if js == nil {
		return nil, fmt.Errorf("open joystick %d: %s", id, sdl.GetError())
	}
	vendor := sdl.GetJoystickVendor(js)
	product := sdl.GetJoystickProduct(js)
	numAxes := sdl.GetNumJoystickAxes(js)
	numButtons := sdl.GetNumJoystickButtons(js)
	mapping := lookupMapping(vendor, product, numAxes, numButtons)
	if mapping == nil {
		sdl.CloseJoystick(js)
		return nil, input.ErrUnsupportedDevice
	}

	p := &sdlPad{
		js:         js,
		mapping:    mapping,
		name:       sdl.GetJoystickName(js),
		numAxes:    numAxes,
		numButtons: numButtons,
		hasHat:     mapping.hasHat && sdl.GetNumJoystickHats(js) > 0,
		player:     -1,
	}
	j.log.Printf("Joystick connected: %s (VID=%04X PID=%04X) mapping=%s axes=%d buttons=%d",
		p.name, vendor, product, mapping.name, numAxes, numButtons)
	return p, nil
}

type sdlPad struct {
	js         *sdl.Joystick
	mapping    *deviceMapping
	name       string
	numAxes    int32
	numButtons int32
	hasHat     bool
	player     int
}

func (p *sdlPad) Button(b input.PadButton) bool {
	if b >= input.NumPadButtons {
		return false
	}
	if b.IsDpad() {
		return p.hasHat && hatButton(sdl.GetJoystickHat(p.js, 0), b)
	}
	idx := p.mapping.buttons[b]
	if idx == noIndex || idx >= p.numButtons {
		return false
	}
	return sdl.GetJoystickButton(p.js, idx)
}

func (p *sdlPad) Axis(a input.PadAxis) int16 {
	if a >= input.NumPadAxes {
		return 0
	}
	m := p.mapping.axes[a]
	if m.index == noIndex || m.index >= p.numAxes {
		return 0
	}
	raw := sdl.GetJoystickAxis(p.js, m.index)
	if m.trigger {
		return triggerValue(raw)
	}
	if m.invert {
		return invertAxis(raw)
	}
	return raw
}

func (p *sdlPad) Name() string { return p.name }

// SetPlayerIndex only records the slot; the input system logs the remap.
func (p *sdlPad) SetPlayerIndex(i int) { p.player = i }

func (p *sdlPad) Close() {
	if p.js != nil {
		sdl.CloseJoystick(p.js)
		p.js = nil
	}
}

func invertAxis(raw int16) int16 {
	if raw == -32768 {
		return 32767
	}
	return -raw
}
