package input

import "errors"

var (
	// ErrQuit is returned by Poll when the window or the OS asked the game to
	// close. Only the outermost frame loop should handle it.
	ErrQuit = errors.New("input: quit requested")

	// ErrUnsupportedDevice is returned by Backend.OpenPad for joysticks that
	// do not expose the standard gamepad layout.
	ErrUnsupportedDevice = errors.New("input: device is not a supported gamepad")
)

// DeviceID is a backend's instance id for one connected joystick. It stays
// stable for as long as the device is plugged in.
type DeviceID int32

const NoDevice DeviceID = -1

type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventDeviceAdded
	EventDeviceRemoved
	EventMouseWheel
	EventKeyDown
	EventPadButtonDown
)

type Event struct {
	Kind   EventKind
	Device DeviceID
	Wheel  float32
}

// Backend is the OS-facing source of raw input. PumpEvents is called exactly
// once per Poll, before any state query.
type Backend interface {
	PumpEvents() []Event
	KeyDown(Key) bool
	MouseButtonDown(MouseButton) bool
	Devices() []DeviceID
	OpenPad(DeviceID) (Pad, error)
}

// Pad is an opened gamepad. Axis values follow the usual signed 16-bit
// range; triggers report 0..32767.
type Pad interface {
	Button(PadButton) bool
	Axis(PadAxis) int16
	Name() string
	SetPlayerIndex(int)
	Close()
}
