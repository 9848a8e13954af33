package gui

import (
	"github.com/appengine-ltd/retro-rally/internal/gui/theme"
	"github.com/appengine-ltd/retro-rally/internal/locale"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type formatter interface {
	Localize(locale.ID) string
	Sprintf(locale.ID, ...any) string
}

type deviceReporter interface {
	PlayerUsesGamepad(player int) bool
	EnoughControllers() bool
	ControllerName(slot int) string
}

// playerName labels player (zero based). When some players have to share
// the keyboard the name carries a device hint, e.g. "Player 2 (Gamepad)".
func playerName(text formatter, devices deviceReporter, player int) string {
	name := text.Sprintf(locale.Player, player+1)
	if devices.EnoughControllers() {
		return name
	}
	device := locale.Keyboard
	if devices.PlayerUsesGamepad(player) {
		device = locale.Gamepad
	}
	return name + " (" + text.Localize(device) + ")"
}

type rosterRow struct {
	Name   string
	Device string
}

// roster lists the seated players with the pad each one holds.
func roster(text formatter, devices deviceReporter, players int) []rosterRow {
	rows := make([]rosterRow, players)
	for i := range rows {
		rows[i].Name = playerName(text, devices, i)
		if devices.PlayerUsesGamepad(i) {
			rows[i].Device = devices.ControllerName(i)
		}
	}
	return rows
}

// drawRoster is the drive screen's player panel in the top left corner.
func drawRoster(title string, rows []rosterRow, x, y int32) {
	lineH := theme.Type.Body + int32(theme.PaddingS)
	w := float32(300)
	h := float32(theme.Type.Header+int32(theme.PaddingM)) + float32(len(rows))*float32(lineH) + 2*theme.PaddingS
	theme.DrawPanel(rl.NewRectangle(float32(x), float32(y), w, h), false)

	px := x + int32(theme.PaddingS)
	theme.DrawHeader(title, px, y+int32(theme.PaddingS))
	ry := y + theme.Type.Header + int32(theme.PaddingM) + int32(theme.PaddingS)
	for i, row := range rows {
		clr := theme.PlayerColors[i%len(theme.PlayerColors)]
		rl.DrawCircle(px+6, ry+theme.Type.Body/2, 6, clr)
		theme.DrawBodyText(row.Name, px+20, ry, theme.TextPrimary)
		if row.Device != "" {
			theme.DrawHintText(row.Device, px+170, ry+(theme.Type.Body-theme.Type.Small)/2)
		}
		if i < len(rows)-1 {
			theme.DrawDivider(float32(px), float32(ry+lineH-int32(theme.PaddingS)/2), w-2*theme.PaddingS)
		}
		ry += lineH
	}
}
