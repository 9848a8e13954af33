package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Arcade palette: night track, sodium lamps, neon trims.
var (
	BG          = rl.NewColor(0x0B, 0x0E, 0x1A, 255) // #0B0E1A
	Asphalt     = rl.NewColor(0x23, 0x26, 0x31, 255) // #232631
	Kerb        = rl.NewColor(0xE0, 0x3A, 0x3A, 255) // #E03A3A
	Panel       = rl.NewColor(0x14, 0x18, 0x2A, 255) // #14182A
	PanelRaised = rl.NewColor(0x1C, 0x22, 0x3A, 255) // #1C223A
	Border      = rl.NewColor(0x3A, 0x44, 0x6E, 255) // #3A446E
	Divider     = rl.NewColor(0x2A, 0x31, 0x52, 255) // #2A3152
	TextPrimary = rl.NewColor(0xF2, 0xEE, 0xE3, 255) // #F2EEE3
	TextMuted   = rl.NewColor(0x8A, 0x90, 0xA8, 255) // #8A90A8
	AccentNeon  = rl.NewColor(0xFF, 0x4F, 0xB8, 255) // #FF4FB8
	AccentLamp  = rl.NewColor(0xFF, 0xB8, 0x3D, 255) // #FFB83D
)

// PlayerColors tints each local player's car.
var PlayerColors = [4]rl.Color{
	rl.NewColor(0xFF, 0x4F, 0x4F, 255),
	rl.NewColor(0x4F, 0xA8, 0xFF, 255),
	rl.NewColor(0x6B, 0xE0, 0x5A, 255),
	rl.NewColor(0xFF, 0xD8, 0x4F, 255),
}
