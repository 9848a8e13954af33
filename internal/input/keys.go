package input

import (
	"fmt"
	"sort"
	"strings"
)

// Key is a keyboard key code. Values match raylib's KeyboardKey codes so the
// platform layer can pass them straight through. Zero means unbound.
type Key int32

const NumKeys = 349

const (
	KeyNull         Key = 0
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyD            Key = 68
	KeyE            Key = 69
	KeyQ            Key = 81
	KeyS            Key = 83
	KeyW            Key = 87
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGrave        Key = 96
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyCapsLock     Key = 280
	KeyScrollLock   Key = 281
	KeyNumLock      Key = 282
	KeyPrintScreen  Key = 283
	KeyPause        Key = 284
	KeyF1           Key = 290
	KeyF12          Key = 301
	KeyKp0          Key = 320
	KeyKp9          Key = 329
	KeyKpDecimal    Key = 330
	KeyKpDivide     Key = 331
	KeyKpMultiply   Key = 332
	KeyKpSubtract   Key = 333
	KeyKpAdd        Key = 334
	KeyKpEnter      Key = 335
	KeyKpEqual      Key = 336
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348
)

var specialKeyNames = map[Key]string{
	KeySpace:        "Space",
	KeyApostrophe:   "'",
	KeyComma:        ",",
	KeyMinus:        "-",
	KeyPeriod:       ".",
	KeySlash:        "/",
	KeySemicolon:    ";",
	KeyEqual:        "=",
	KeyLeftBracket:  "[",
	KeyBackslash:    "\\",
	KeyRightBracket: "]",
	KeyGrave:        "`",
	KeyEscape:       "Escape",
	KeyEnter:        "Return",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyCapsLock:     "CapsLock",
	KeyScrollLock:   "ScrollLock",
	KeyNumLock:      "Numlock",
	KeyPrintScreen:  "PrintScreen",
	KeyPause:        "Pause",
	KeyKpDecimal:    "Keypad .",
	KeyKpDivide:     "Keypad /",
	KeyKpMultiply:   "Keypad *",
	KeyKpSubtract:   "Keypad -",
	KeyKpAdd:        "Keypad +",
	KeyKpEnter:      "Keypad Enter",
	KeyKpEqual:      "Keypad =",
	KeyLeftShift:    "Left Shift",
	KeyLeftControl:  "Left Ctrl",
	KeyLeftAlt:      "Left Alt",
	KeyLeftSuper:    "Left GUI",
	KeyRightShift:   "Right Shift",
	KeyRightControl: "Right Ctrl",
	KeyRightAlt:     "Right Alt",
	KeyRightSuper:   "Right GUI",
	KeyMenu:         "Menu",
}

var keysByName map[string]Key

func init() {
	keysByName = make(map[string]Key, 128)
	for k := Key(1); k < NumKeys; k++ {
		if name, ok := keyName(k); ok {
			keysByName[strings.ToLower(name)] = k
		}
	}
}

func keyName(k Key) (string, bool) {
	if name, ok := specialKeyNames[k]; ok {
		return name, true
	}
	switch {
	case k >= Key0 && k <= Key9, k >= KeyA && k <= KeyZ:
		return string(rune(k)), true
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1), true
	case k >= KeyKp0 && k <= KeyKp9:
		return fmt.Sprintf("Keypad %d", k-KeyKp0), true
	}
	return "", false
}

// Name returns the display name of the key, or "" for unknown codes.
func (k Key) Name() string {
	name, _ := keyName(k)
	return name
}

func (k Key) String() string {
	if name, ok := keyName(k); ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// KeyByName resolves a display name (case-insensitive) back to a key. Codes
// without a name round-trip through their "Key(N)" form.
func KeyByName(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keysByName[name]; ok {
		return k, true
	}
	var code int32
	if n, err := fmt.Sscanf(name, "key(%d)", &code); err == nil && n == 1 {
		if k := Key(code); k > KeyNull && k < NumKeys && name == strings.ToLower(k.String()) {
			return k, true
		}
	}
	return KeyNull, false
}

// KeyNames lists every named key, sorted. Used for "did you mean" hints.
func KeyNames() []string {
	out := make([]string, 0, len(keysByName))
	for k := Key(1); k < NumKeys; k++ {
		if name, ok := keyName(k); ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// MouseButton identifies a mouse button. Wheel directions are reported as
// fake buttons so they can be bound like clicks. Zero means unbound.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseX1
	MouseX2
	MouseWheelUp
	MouseWheelDown
	NumMouseButtons
)

var mouseButtonNames = [NumMouseButtons]string{
	MouseNone:      "none",
	MouseLeft:      "left",
	MouseMiddle:    "middle",
	MouseRight:     "right",
	MouseX1:        "x1",
	MouseX2:        "x2",
	MouseWheelUp:   "wheelup",
	MouseWheelDown: "wheeldown",
}

func (b MouseButton) String() string {
	if b < NumMouseButtons {
		return mouseButtonNames[b]
	}
	return fmt.Sprintf("mouse%d", uint8(b))
}

// MouseButtonByName is the inverse of MouseButton.String.
func MouseButtonByName(name string) (MouseButton, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range mouseButtonNames {
		if n == name {
			return MouseButton(b), true
		}
	}
	return MouseNone, false
}

// PadButton is a button of the standard gamepad layout.
type PadButton uint8

const (
	PadA PadButton = iota
	PadB
	PadX
	PadY
	PadBack
	PadGuide
	PadStart
	PadLeftStick
	PadRightStick
	PadLeftShoulder
	PadRightShoulder
	PadDpadUp
	PadDpadDown
	PadDpadLeft
	PadDpadRight
	NumPadButtons
)

var padButtonNames = [NumPadButtons]string{
	PadA:             "a",
	PadB:             "b",
	PadX:             "x",
	PadY:             "y",
	PadBack:          "back",
	PadGuide:         "guide",
	PadStart:         "start",
	PadLeftStick:     "leftstick",
	PadRightStick:    "rightstick",
	PadLeftShoulder:  "leftshoulder",
	PadRightShoulder: "rightshoulder",
	PadDpadUp:        "dpup",
	PadDpadDown:      "dpdown",
	PadDpadLeft:      "dpleft",
	PadDpadRight:     "dpright",
}

func (b PadButton) String() string {
	if b < NumPadButtons {
		return padButtonNames[b]
	}
	return fmt.Sprintf("button%d", uint8(b))
}

// IsDpad reports whether the button belongs to the directional pad.
func (b PadButton) IsDpad() bool {
	return b >= PadDpadUp && b <= PadDpadRight
}

// PadAxis is an analog axis of the standard gamepad layout.
type PadAxis uint8

const (
	PadLeftX PadAxis = iota
	PadLeftY
	PadRightX
	PadRightY
	PadTriggerLeft
	PadTriggerRight
	NumPadAxes
)

var padAxisNames = [NumPadAxes]string{
	PadLeftX:        "leftx",
	PadLeftY:        "lefty",
	PadRightX:       "rightx",
	PadRightY:       "righty",
	PadTriggerLeft:  "lefttrigger",
	PadTriggerRight: "righttrigger",
}

func (a PadAxis) String() string {
	if a < NumPadAxes {
		return padAxisNames[a]
	}
	return fmt.Sprintf("axis%d", uint8(a))
}

// IsTrigger reports whether the axis is one of the two analog triggers.
func (a PadAxis) IsTrigger() bool {
	return a == PadTriggerLeft || a == PadTriggerRight
}
