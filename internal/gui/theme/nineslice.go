package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// NineSlice is a 9-patch texture. Insets are in source pixels; corners are
// drawn as is, edges stretch along one axis and the center along both.
type NineSlice struct {
	Tex                      rl.Texture2D
	Left, Right, Top, Bottom float32
}

// DrawNineSlice renders ns into dest. Without a texture it falls back to a
// translucent flat rectangle.
func DrawNineSlice(ns NineSlice, dest rl.Rectangle, tint rl.Color) {
	if ns.Tex.ID == 0 {
		rl.DrawRectangleRec(dest, rl.Fade(tint, 0.35))
		return
	}

	sw, sh := float32(ns.Tex.Width), float32(ns.Tex.Height)
	l, r, t, b := ns.Left, ns.Right, ns.Top, ns.Bottom
	if l+r > dest.Width {
		l, r = dest.Width/2, dest.Width/2
	}
	if t+b > dest.Height {
		t, b = dest.Height/2, dest.Height/2
	}

	srcX := [3]float32{0, ns.Left, sw - ns.Right}
	srcW := [3]float32{ns.Left, sw - ns.Left - ns.Right, ns.Right}
	srcY := [3]float32{0, ns.Top, sh - ns.Bottom}
	srcH := [3]float32{ns.Top, sh - ns.Top - ns.Bottom, ns.Bottom}
	dstX := [3]float32{dest.X, dest.X + l, dest.X + dest.Width - r}
	dstW := [3]float32{l, dest.Width - l - r, r}
	dstY := [3]float32{dest.Y, dest.Y + t, dest.Y + dest.Height - b}
	dstH := [3]float32{t, dest.Height - t - b, b}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			d := rl.NewRectangle(dstX[col], dstY[row], dstW[col], dstH[row])
			if d.Width <= 0 || d.Height <= 0 {
				continue
			}
			s := rl.NewRectangle(srcX[col], srcY[row], srcW[col], srcH[row])
			rl.DrawTexturePro(ns.Tex, s, d, rl.Vector2{}, 0, tint)
		}
	}
}
