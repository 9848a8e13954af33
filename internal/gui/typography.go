package gui

import (
	"math"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/retro-rally/internal/gui/theme"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Menu items zoom while selected, so text is drawn at many sizes. A pixel
// font only stays sharp when rasterized near the size it is drawn at, so
// faces are baked lazily per size bucket.
const (
	faceStep    = 8
	faceMinSize = 8
	faceMaxSize = 96
)

type typographyState struct {
	path  string
	faces map[int32]rl.Font
}

var uiType typographyState

// fontBucket is the baked face size used to draw text at size pixels.
func fontBucket(size int32) int32 {
	size = min(max(size, faceMinSize), faceMaxSize)
	return (size + faceStep - 1) / faceStep * faceStep
}

func initTypography() {
	uiType = typographyState{
		path: firstExisting(
			filepath.Join("assets", "fonts", "PressStart2P-Regular.ttf"),
			filepath.Join("assets", "fonts", "Orbitron-Bold.ttf"),
			filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
		),
		faces: make(map[int32]rl.Font),
	}
	theme.SetTextRenderer(drawText, measureText)
}

func shutdownTypography() {
	for _, f := range uiType.faces {
		rl.UnloadFont(f)
	}
	uiType = typographyState{}
}

func firstExisting(candidates ...string) string {
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// face returns the font baked for size. ok is false when no font file was
// found or it failed to load, and raylib's default font should be used.
func face(size int32) (rl.Font, bool) {
	if uiType.path == "" {
		return rl.Font{}, false
	}
	bucket := fontBucket(size)
	if f, ok := uiType.faces[bucket]; ok {
		return f, f.Texture.ID != 0
	}
	f := rl.LoadFontEx(uiType.path, bucket, nil, 0)
	if f.Texture.ID != 0 {
		rl.SetTextureFilter(f.Texture, rl.FilterPoint)
	}
	// Failed loads are cached too so the file is not retried every frame.
	uiType.faces[bucket] = f
	return f, f.Texture.ID != 0
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	f, ok := face(fontSize)
	if !ok {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(f, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	f, ok := face(fontSize)
	if !ok {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(f, text, float32(fontSize), 1).X)))
}
