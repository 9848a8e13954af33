package menu

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is a straight-alpha RGBA color with components in 0..1.
type Color struct {
	R, G, B, A float32
}

var white = Color{1, 1, 1, 1}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Blend mixes c toward o in Lab space; t=0 is c, t=1 is o.
func (c Color) Blend(o Color, t float32) Color {
	m := c.colorful().BlendLab(o.colorful(), float64(t)).Clamped()
	return Color{
		R: float32(m.R),
		G: float32(m.G),
		B: float32(m.B),
		A: c.A + (o.A-c.A)*t,
	}
}

// Hex formats the color as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// ParseHex reads #rrggbb into an opaque color.
func ParseHex(s string) (Color, error) {
	m, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: float32(m.R), G: float32(m.G), B: float32(m.B), A: 1}, nil
}

// Style holds the look and behavior knobs of one menu session.
type Style struct {
	DarkenPane        bool
	DarkenPaneScaleY  float32
	DarkenPaneOpacity float32

	FadeInSpeed        float32
	AsyncFadeOut       bool
	FadeOutSceneOnExit bool
	CenteredText       bool

	TitleColor     Color
	HighlightColor Color
	InactiveColor  Color
	InactiveColor2 Color
	LabelColor     Color

	StandardScale  float32
	RowHeight      float32
	UniformXExtent float32

	PlayMenuChangeSounds bool
	StartButtonExits     bool
	IsInteractive        bool
	CanBackOutOfRootMenu bool
}

// DefaultStyle returns the stock menu look. Distances are in logical
// 640x480 pixels.
func DefaultStyle() Style {
	return Style{
		DarkenPane:           true,
		DarkenPaneScaleY:     480,
		DarkenPaneOpacity:    .8,
		FadeInSpeed:          3,
		AsyncFadeOut:         true,
		FadeOutSceneOnExit:   true,
		CenteredText:         true,
		TitleColor:           Color{1, 1, .7, 1},
		HighlightColor:       Color{.3, .5, .2, 1},
		InactiveColor:        Color{1, 1, 1, 1},
		InactiveColor2:       Color{.8, 0, .5, .5},
		LabelColor:           Color{.7, .4, .2, 1},
		StandardScale:        .45,
		RowHeight:            36,
		UniformXExtent:       0,
		PlayMenuChangeSounds: true,
		StartButtonExits:     false,
		IsInteractive:        true,
		CanBackOutOfRootMenu: false,
	}
}

var colX = [MaxCols]float32{0, 170, 300, 430, 560}

const (
	leftAlignedStartX = -170
	layoutOffsetY     = 24
)
