package input

import (
	"errors"
	"log"
	"runtime"
)

const MaxLocalPlayers = 4

const (
	DefaultDeadZone   = 0.33
	DefaultUIDeadZone = 0.66

	// An axis has to travel this far before pad capture accepts it.
	bindingThreshold = 0.75
)

// Config tunes a System. Zero values pick the defaults.
type Config struct {
	DeadZone     float32
	UIDeadZone   float32
	LocalPlayers int

	// ToggleFullscreen runs on Alt+Enter.
	ToggleFullscreen func()

	// MacShortcuts enables Cmd+Q detection. Defaults to true on darwin.
	MacShortcuts *bool

	Logger *log.Logger
}

type controller struct {
	open   bool
	pad    Pad
	device DeviceID

	needStates    [NumNeeds]KeyState
	needAnalog    [NumNeeds]float32
	needAnalogRaw [NumNeeds]float32

	buttons [NumPadButtons]KeyState
	axes    [NumPadAxes]KeyState
}

// System owns every debounced input state of the game. It is driven by one
// Poll per frame from the main loop and is not safe for concurrent use.
type System struct {
	backend  Backend
	bindings *Bindings
	log      *log.Logger

	deadZone   float32
	uiDeadZone float32
	numLocal   int

	toggleFullscreen func()
	macShortcuts     bool

	keys  [NumKeys]KeyState
	mouse [NumMouseButtons]KeyState
	needs [NumNeeds]KeyState

	controllers [MaxLocalPlayers]controller
	fallback    [MaxLocalPlayers]bool
	locked      bool

	prefersGamepad bool
	wheel          float32
}

func NewSystem(backend Backend, bindings *Bindings, cfg Config) *System {
	s := &System{
		backend:          backend,
		bindings:         bindings,
		log:              cfg.Logger,
		deadZone:         cfg.DeadZone,
		uiDeadZone:       cfg.UIDeadZone,
		numLocal:         1,
		toggleFullscreen: cfg.ToggleFullscreen,
		macShortcuts:     runtime.GOOS == "darwin",
	}
	if s.bindings == nil {
		def := DefaultBindings()
		s.bindings = &def
	}
	if s.log == nil {
		s.log = log.Default()
	}
	if s.deadZone <= 0 || s.deadZone >= 1 {
		s.deadZone = DefaultDeadZone
	}
	if s.uiDeadZone <= 0 || s.uiDeadZone >= 1 {
		s.uiDeadZone = DefaultUIDeadZone
	}
	if cfg.MacShortcuts != nil {
		s.macShortcuts = *cfg.MacShortcuts
	}
	if cfg.LocalPlayers > 0 {
		s.SetNumLocalPlayers(cfg.LocalPlayers)
	}
	for i := range s.controllers {
		s.controllers[i].device = NoDevice
	}
	return s
}

// Bindings returns the live binding table.
func (s *System) Bindings() *Bindings {
	return s.bindings
}

// Poll drains the backend's events and refreshes every state for this
// frame. It returns ErrQuit as soon as a quit event is seen; the rest of the
// tick is skipped.
func (s *System) Poll() error {
	s.wheel = 0
	for _, ev := range s.backend.PumpEvents() {
		switch ev.Kind {
		case EventQuit:
			return ErrQuit
		case EventDeviceAdded:
			s.openDevice(ev.Device)
			s.prefersGamepad = true
		case EventDeviceRemoved:
			s.onDeviceRemoved(ev.Device)
		case EventMouseWheel:
			s.wheel += ev.Wheel
		case EventKeyDown:
			s.prefersGamepad = false
		case EventPadButtonDown:
			s.prefersGamepad = true
		}
	}

	s.updateKeyboard()
	s.parseAltEnter()
	s.updateMouse()
	s.updateNeeds()
	for i := range s.controllers {
		s.updateController(i)
	}
	return nil
}

func (s *System) updateKeyboard() {
	for k := Key(1); k < NumKeys; k++ {
		s.keys[k] = s.keys[k].Next(s.backend.KeyDown(k))
	}
}

func (s *System) parseAltEnter() {
	if !s.AltEnterPressed() {
		return
	}
	if s.toggleFullscreen != nil {
		s.toggleFullscreen()
	}
	s.InvalidateAllInputs()
}

func (s *System) updateMouse() {
	for b := MouseLeft; b <= MouseX2; b++ {
		s.mouse[b] = s.mouse[b].Next(s.backend.MouseButtonDown(b))
	}
	s.mouse[MouseWheelUp] = s.mouse[MouseWheelUp].Next(s.wheel > 0)
	s.mouse[MouseWheelDown] = s.mouse[MouseWheelDown].Next(s.wheel < 0)
}

func (s *System) updateNeeds() {
	for n := range s.needs {
		b := &s.bindings[n]
		down := false
		for _, k := range b.Keys {
			if k > KeyNull && k < NumKeys && s.keys[k].Active() {
				down = true
			}
		}
		if b.Mouse > MouseNone && b.Mouse < NumMouseButtons && s.mouse[b.Mouse].Active() {
			down = true
		}
		s.needs[n] = s.needs[n].Next(down)
	}
}

func (s *System) updateController(slot int) {
	c := &s.controllers[slot]
	if !c.open {
		return
	}

	for b := PadButton(0); b < NumPadButtons; b++ {
		c.buttons[b] = c.buttons[b].Next(c.pad.Button(b))
	}
	for a := PadAxis(0); a < NumPadAxes; a++ {
		v := float32(c.pad.Axis(a))
		if v < 0 {
			v = -v
		}
		c.axes[a] = c.axes[a].Next(v > bindingThreshold*32767)
	}

	for n := Need(0); n < NumNeeds; n++ {
		dz := s.deadZoneFor(n)
		down := false
		var analog, raw float32
		for _, pb := range s.bindings[n].Pad {
			switch pb.Type {
			case PadTypeButton:
				if PadButton(pb.ID) < NumPadButtons && c.pad.Button(PadButton(pb.ID)) {
					down = true
					analog, raw = 1, 1
				}
			case PadTypeAxisPlus, PadTypeAxisMinus:
				if PadAxis(pb.ID) >= NumPadAxes {
					continue
				}
				v := AxisActuation(c.pad.Axis(PadAxis(pb.ID)), pb.Type)
				raw = max(raw, v)
				if v >= dz {
					down = true
					analog = max(analog, ApplyDeadZone(v, dz))
				}
			}
		}
		c.needAnalog[n] = analog
		c.needAnalogRaw[n] = raw
		c.needStates[n] = c.needStates[n].Next(down)
	}
}

func (s *System) deadZoneFor(n Need) float32 {
	if n.Remappable() {
		return s.deadZone
	}
	return s.uiDeadZone
}

// AxisActuation maps a signed axis reading to 0..1 in the direction of the
// binding type.
func AxisActuation(v int16, t PadInputType) float32 {
	var a float32
	switch t {
	case PadTypeAxisPlus:
		a = float32(v) / 32767
	case PadTypeAxisMinus:
		a = float32(v) / -32768
	}
	return min(max(a, 0), 1)
}

// ApplyDeadZone rescales a raw actuation so the dead zone maps to 0 and full
// travel stays at 1.
func ApplyDeadZone(v, deadZone float32) float32 {
	if v < deadZone {
		return 0
	}
	return min(max((v-deadZone)/(1-deadZone), 0), 1)
}

// InvalidateNeedState ignores need until all its sources are released.
func (s *System) InvalidateNeedState(n Need) {
	if !n.Valid() {
		return
	}
	s.needs[n] = StateIgnoredHeld
	for i := range s.controllers {
		s.controllers[i].needStates[n] = StateIgnoredHeld
	}
}

// InvalidateAllInputs ignores every key, button and need that is currently
// held until it is released.
func (s *System) InvalidateAllInputs() {
	invalidate(s.keys[:])
	invalidate(s.mouse[:])
	invalidate(s.needs[:])
	for i := range s.controllers {
		c := &s.controllers[i]
		invalidate(c.needStates[:])
		invalidate(c.buttons[:])
		invalidate(c.axes[:])
	}
}

// errIsUnsupported keeps log noise down for joysticks we never intend to use.
func errIsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedDevice)
}
