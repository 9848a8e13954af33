package gui

import (
	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/menu"
)

type hotkeyInput interface {
	CmdQPressed() bool
	ModifiedKeyPressed(input.Key) bool
}

type hotkey int

const (
	hotkeyNone hotkey = iota
	hotkeyQuit
	hotkeyMusicDown
	hotkeyMusicUp
)

// HotkeysEnabled is false while a binding row waits for a key, so the
// chord being captured does not also fire a shortcut.
func HotkeysEnabled(nav *menu.Nav) bool {
	if nav == nil {
		return true
	}
	switch nav.State() {
	case menu.StateAwaitingKeyPress, menu.StateAwaitingPadPress, menu.StateAwaitingMouseClick:
		return false
	}
	return true
}

func pollHotkey(in hotkeyInput, nav *menu.Nav) hotkey {
	// Cmd+Q always wins.
	if in.CmdQPressed() {
		return hotkeyQuit
	}
	if !HotkeysEnabled(nav) {
		return hotkeyNone
	}
	switch {
	case in.ModifiedKeyPressed(input.KeyMinus):
		return hotkeyMusicDown
	case in.ModifiedKeyPressed(input.KeyEqual):
		return hotkeyMusicUp
	}
	return hotkeyNone
}
