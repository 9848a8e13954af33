package input

import (
	"fmt"
	"strings"
)

// Need is a logical input action, decoupled from the physical controls bound
// to it.
type Need int

const (
	NeedForward Need = iota
	NeedBackward
	NeedLeft
	NeedRight
	NeedBrakes
	NeedThrowForward
	NeedThrowBackward
	NeedCameraMode
	NeedRearView

	NeedUIUp
	NeedUIDown
	NeedUILeft
	NeedUIRight
	NeedUIPrev
	NeedUINext
	NeedUIConfirm
	NeedUIBack
	NeedUIDelete
	NeedUIPause
	NeedUIStart

	NumNeeds
)

// Needs below NumRemappableNeeds can be rebound from the settings menus and
// use the gameplay dead zone. The UI needs after them are fixed.
const NumRemappableNeeds = NeedRearView + 1

var needNames = [NumNeeds]string{
	NeedForward:       "forward",
	NeedBackward:      "backward",
	NeedLeft:          "left",
	NeedRight:         "right",
	NeedBrakes:        "brakes",
	NeedThrowForward:  "throw_forward",
	NeedThrowBackward: "throw_backward",
	NeedCameraMode:    "camera_mode",
	NeedRearView:      "rear_view",
	NeedUIUp:          "ui_up",
	NeedUIDown:        "ui_down",
	NeedUILeft:        "ui_left",
	NeedUIRight:       "ui_right",
	NeedUIPrev:        "ui_prev",
	NeedUINext:        "ui_next",
	NeedUIConfirm:     "ui_confirm",
	NeedUIBack:        "ui_back",
	NeedUIDelete:      "ui_delete",
	NeedUIPause:       "ui_pause",
	NeedUIStart:       "ui_start",
}

func (n Need) String() string {
	if n >= 0 && n < NumNeeds {
		return needNames[n]
	}
	return fmt.Sprintf("need(%d)", int(n))
}

// Valid reports whether n names a known need.
func (n Need) Valid() bool {
	return n >= 0 && n < NumNeeds
}

// Remappable reports whether the need is exposed to rebinding.
func (n Need) Remappable() bool {
	return n >= 0 && n < NumRemappableNeeds
}

// NeedByName resolves the snake_case name used in preference files.
func NeedByName(name string) (Need, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range needNames {
		if n == name {
			return Need(i), true
		}
	}
	return 0, false
}

// NeedNames lists every need name in declaration order.
func NeedNames() []string {
	out := make([]string, len(needNames))
	copy(out, needNames[:])
	return out
}
