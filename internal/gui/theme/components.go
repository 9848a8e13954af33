package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingS = float32(12)
	PaddingM = float32(18)

	CornerRadius   = float32(0.08)
	CornerSegments = int32(8)
	BorderWidth    = float32(1.4)
)

// DrawPane darkens a horizontal band behind the menu. alpha is already
// scaled by the menu fade.
func DrawPane(screenW, screenH int32, height float32, alpha float32) {
	if alpha <= 0 {
		return
	}
	h := min(height, float32(screenH))
	y := (float32(screenH) - h) / 2
	rl.DrawRectangleRec(rl.NewRectangle(0, y, float32(screenW), h), rl.Fade(rl.Black, alpha))
	edge := rl.Fade(AccentNeon, alpha*0.6)
	drawLine(0, y, float32(screenW), y, 2, edge)
	drawLine(0, y+h, float32(screenW), y+h, 2, edge)
}

// DrawPanel draws a rounded panel, lifted when focused.
func DrawPanel(rect rl.Rectangle, focused bool) {
	fill, stroke := Panel, Border
	if focused {
		fill = PanelRaised
		stroke = mix(Border, AccentNeon, 0.5)
	}
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, BorderWidth, stroke)
}

func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Header, TextPrimary)
	w := max(int32(float32(measureText(text, Type.Header))*0.6), 44)
	drawLine(float32(x), float32(y+Type.Header+6), float32(x+w), float32(y+Type.Header+6), 2, AccentLamp)
}

func DrawBodyText(text string, x, y int32, clr rl.Color) {
	drawText(text, x, y, Type.Body, clr)
}

// DrawDivider is a thin horizontal rule of width w.
func DrawDivider(x, y, w float32) {
	drawLine(x, y, x+w, y, 1, Divider)
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextMuted)
}

// DrawTextCentered centers text horizontally on cx.
func DrawTextCentered(text string, cx, y, size int32, clr rl.Color) {
	drawText(text, cx-measureText(text, size)/2, y, size, clr)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	t = min(max(t, 0), 1)
	inv := 1 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
