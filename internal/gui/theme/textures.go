package theme

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Skin holds the optional track art. Missing files leave zero values, which
// draw as flat fallbacks.
var Skin skinAssets

type skinAssets struct {
	Barrier NineSlice
	loaded  bool
}

const barrierSlice = 16

// InitSkin loads textures. Call once after rl.InitWindow.
func InitSkin() {
	if Skin.loaded {
		return
	}
	Skin.loaded = true
	Skin.Barrier = loadNineSlice("assets/ui/barrier_9slice.png", barrierSlice)
}

// UnloadSkin releases GPU memory. Call before rl.CloseWindow.
func UnloadSkin() {
	if Skin.Barrier.Tex.ID != 0 {
		rl.UnloadTexture(Skin.Barrier.Tex)
	}
	Skin = skinAssets{}
}

// DrawTrack paints the arena the cars drive in and returns its inner
// rectangle.
func DrawTrack(screenW, screenH int32) rl.Rectangle {
	outer := rl.NewRectangle(0, 0, float32(screenW), float32(screenH))
	rl.DrawRectangleRec(outer, Asphalt)
	DrawNineSlice(Skin.Barrier, outer, Kerb)
	inner := TrackBounds(screenW, screenH)
	rl.DrawRectangleLinesEx(inner, 2, rl.Fade(TextPrimary, 0.5))
	return inner
}

// TrackBounds is the drivable area inside the barrier.
func TrackBounds(screenW, screenH int32) rl.Rectangle {
	m := float32(barrierSlice)
	return rl.NewRectangle(m, m, max(float32(screenW)-2*m, 0), max(float32(screenH)-2*m, 0))
}

func loadNineSlice(path string, inset float32) NineSlice {
	ns := NineSlice{Left: inset, Right: inset, Top: inset, Bottom: inset}
	if _, err := os.Stat(path); err != nil {
		return ns
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return ns
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	ns.Tex = tex
	return ns
}
