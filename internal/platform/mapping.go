package platform

import "github.com/appengine-ltd/retro-rally/internal/input"

const noIndex = -1

type axisMapping struct {
	index   int32
	invert  bool
	trigger bool
}

// deviceMapping translates raw joystick indices into the standard gamepad
// layout. D-pad buttons come from hat 0 when hasHat is set.
type deviceMapping struct {
	name    string
	axes    [input.NumPadAxes]axisMapping
	buttons [input.NumPadButtons]int32
	hasHat  bool
}

func buttons(pairs map[input.PadButton]int32) (out [input.NumPadButtons]int32) {
	for i := range out {
		out[i] = noIndex
	}
	for b, idx := range pairs {
		out[b] = idx
	}
	return out
}

var standardAxes = [input.NumPadAxes]axisMapping{
	input.PadLeftX:        {index: 0},
	input.PadLeftY:        {index: 1},
	input.PadRightX:       {index: 2},
	input.PadRightY:       {index: 3},
	input.PadTriggerLeft:  {index: 4, trigger: true},
	input.PadTriggerRight: {index: 5, trigger: true},
}

var xboxMapping = &deviceMapping{
	name: "xbox",
	axes: standardAxes,
	buttons: buttons(map[input.PadButton]int32{
		input.PadA:             0,
		input.PadB:             1,
		input.PadX:             2,
		input.PadY:             3,
		input.PadLeftShoulder:  4,
		input.PadRightShoulder: 5,
		input.PadBack:          6,
		input.PadStart:         7,
		input.PadLeftStick:     8,
		input.PadRightStick:    9,
		input.PadGuide:         10,
	}),
	hasHat: true,
}

var playstationMapping = &deviceMapping{
	name: "playstation",
	axes: standardAxes,
	buttons: buttons(map[input.PadButton]int32{
		input.PadA:             0,
		input.PadB:             1,
		input.PadX:             2,
		input.PadY:             3,
		input.PadBack:          4,
		input.PadGuide:         5,
		input.PadStart:         6,
		input.PadLeftStick:     7,
		input.PadRightStick:    8,
		input.PadLeftShoulder:  9,
		input.PadRightShoulder: 10,
	}),
	hasHat: true,
}

// The Switch Pro controller has digital triggers and reports them as
// buttons; they stay unmapped here.
var switchProMapping = &deviceMapping{
	name: "switch_pro",
	axes: [input.NumPadAxes]axisMapping{
		input.PadLeftX:        {index: 0},
		input.PadLeftY:        {index: 1},
		input.PadRightX:       {index: 2},
		input.PadRightY:       {index: 3},
		input.PadTriggerLeft:  {index: noIndex, trigger: true},
		input.PadTriggerRight: {index: noIndex, trigger: true},
	},
	buttons: xboxMapping.buttons,
	hasHat:  true,
}

var genericMapping = &deviceMapping{
	name:    "generic",
	axes:    standardAxes,
	buttons: xboxMapping.buttons,
	hasHat:  true,
}

type deviceKey struct {
	vendor  uint16
	product uint16
}

var knownDevices = map[deviceKey]*deviceMapping{
	{0x045E, 0x028E}: xboxMapping,
	{0x045E, 0x02FF}: xboxMapping,
	{0x045E, 0x0B12}: xboxMapping,
	{0x045E, 0x0B13}: xboxMapping,
	{0x054C, 0x0CE6}: playstationMapping,
	{0x054C, 0x09CC}: playstationMapping,
	{0x054C, 0x05C4}: playstationMapping,
	{0x057E, 0x2009}: switchProMapping,
}

// lookupMapping picks the mapping for a device. Unknown devices get the
// generic layout if they have enough axes and buttons for it, and nil
// otherwise.
func lookupMapping(vendor, product uint16, numAxes, numButtons int32) *deviceMapping {
	if m, ok := knownDevices[deviceKey{vendor, product}]; ok {
		return m
	}
	if numAxes < 4 || numButtons < 4 {
		return nil
	}
	return genericMapping
}

// triggerValue maps a full-range trigger reading onto 0..32767.
func triggerValue(raw int16) int16 {
	return int16((int32(raw) + 32768) / 2)
}

const (
	hatUp    uint8 = 0x01
	hatRight uint8 = 0x02
	hatDown  uint8 = 0x04
	hatLeft  uint8 = 0x08
)

func hatButton(hat uint8, b input.PadButton) bool {
	switch b {
	case input.PadDpadUp:
		return hat&hatUp != 0
	case input.PadDpadDown:
		return hat&hatDown != 0
	case input.PadDpadLeft:
		return hat&hatLeft != 0
	case input.PadDpadRight:
		return hat&hatRight != 0
	}
	return false
}
