// Package prefs loads and saves the player's preferences: volumes, video and
// language settings, dead zones, menu colors and the binding table.
package prefs

import (
	"fmt"

	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/menu"
)

type Prefs struct {
	MusicVolume  int
	SFXVolume    int
	Fullscreen   bool
	Language     string
	LocalPlayers int

	DeadZone   float32
	UIDeadZone float32

	Colors   Colors
	Bindings input.Bindings
}

// Colors are the menu colors as #rrggbb strings.
type Colors struct {
	Title     string
	Highlight string
	Inactive  string
	Label     string
}

func Default() Prefs {
	style := menu.DefaultStyle()
	return Prefs{
		MusicVolume:  60,
		SFXVolume:    80,
		Fullscreen:   false,
		Language:     "en",
		LocalPlayers: 1,
		DeadZone:     input.DefaultDeadZone,
		UIDeadZone:   input.DefaultUIDeadZone,
		Colors: Colors{
			Title:     style.TitleColor.Hex(),
			Highlight: style.HighlightColor.Hex(),
			Inactive:  style.InactiveColor.Hex(),
			Label:     style.LabelColor.Hex(),
		},
		Bindings: input.DefaultBindings(),
	}
}

// Apply copies the colors into style. Alpha is kept from style; colors that
// fail to parse leave the style untouched and are reported.
func (c Colors) Apply(style *menu.Style) error {
	set := func(name, hex string, dst *menu.Color) error {
		if hex == "" {
			return nil
		}
		parsed, err := menu.ParseHex(hex)
		if err != nil {
			return fmt.Errorf("color %s: %w", name, err)
		}
		parsed.A = dst.A
		*dst = parsed
		return nil
	}
	for _, f := range []struct {
		name string
		hex  string
		dst  *menu.Color
	}{
		{"title", c.Title, &style.TitleColor},
		{"highlight", c.Highlight, &style.HighlightColor},
		{"inactive", c.Inactive, &style.InactiveColor},
		{"label", c.Label, &style.LabelColor},
	} {
		if err := set(f.name, f.hex, f.dst); err != nil {
			return err
		}
	}
	return nil
}
