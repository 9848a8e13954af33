package gui

import (
	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/locale"
	"github.com/appengine-ltd/retro-rally/internal/menu"
	"github.com/appengine-ltd/retro-rally/internal/prefs"
	"golang.org/x/text/language"
)

// Row ids reported by the root menu.
const (
	pickPlay = 1
	pickQuit = 2
)

var (
	menuSettings = menu.Tag("sett")
	menuKeyboard = menu.Tag("keyb")
	menuGamepad  = menu.Tag("gpad")
	menuMouse    = menu.Tag("mous")
)

const volumeStep = 20

var volumeChoices = []menu.Choice{
	{Text: locale.Volume000, Value: 0},
	{Text: locale.Volume020, Value: 20},
	{Text: locale.Volume040, Value: 40},
	{Text: locale.Volume060, Value: 60},
	{Text: locale.Volume080, Value: 80},
	{Text: locale.Volume100, Value: 100},
}

// languageSetter is the part of the locale catalog the settings menu drives.
type languageSetter interface {
	Languages() []language.Tag
	LanguageIndex() int
	SetLanguage(language.Tag)
}

// menuModel owns the values the menu cyclers edit and pushes every change
// into prefs and the live subsystems.
type menuModel struct {
	prefs    *prefs.Prefs
	defaults input.Bindings
	text     languageSetter

	setPlayers    func(n int)
	setVolumes    func(music, sfx int)
	setFullscreen func(on bool)

	players    int
	music      int
	sfx        int
	fullscreen int
	language   int
}

func newMenuModel(p *prefs.Prefs, text languageSetter) *menuModel {
	m := &menuModel{
		prefs:    p,
		defaults: input.DefaultBindings(),
		text:     text,
		players:  min(max(p.LocalPlayers, 1), input.MaxLocalPlayers),
		music:    snapVolume(p.MusicVolume),
		sfx:      snapVolume(p.SFXVolume),
	}
	if p.Fullscreen {
		m.fullscreen = 1
	}
	if text != nil {
		m.language = text.LanguageIndex()
	}
	return m
}

func snapVolume(v int) int {
	v = min(max(v, 0), 100)
	return (v + volumeStep/2) / volumeStep * volumeStep
}

func (m *menuModel) tree() menu.Tree {
	return menu.Tree{
		menu.Root:    m.rootMenu(),
		menuSettings: m.settingsMenu(),
		menuKeyboard: m.bindingMenu(menu.KindKeyBinding, locale.ConfigureKeyboard, locale.ConfigureKeyboardHelp, locale.ResetKeyboardBindings),
		menuGamepad:  m.bindingMenu(menu.KindPadBinding, locale.ConfigureGamepad, locale.ConfigureGamepadHelp, locale.ResetGamepadBindings),
		menuMouse:    m.bindingMenu(menu.KindMouseBinding, locale.ConfigureMouse, locale.ConfigureMouseHelp, locale.ResetMouseBindings),
	}
}

func (m *menuModel) rootMenu() menu.Menu {
	players := make([]menu.Choice, input.MaxLocalPlayers)
	for i := range players {
		players[i] = menu.Choice{Raw: string(rune('1' + i)), Value: i + 1}
	}
	return menu.Menu{
		{Kind: menu.KindTitle, Text: locale.GameTitle},
		{Kind: menu.KindSpacer},
		{Kind: menu.KindPick, Text: locale.Play, ID: pickPlay, Goto: menu.GotoExit},
		{Kind: menu.KindCMRCycler, Text: locale.Players, Callback: m.onPlayers,
			Cycler: &menu.Cycler{Value: &m.players, Choices: players}},
		{Kind: menu.KindPick, Text: locale.Settings, Goto: menuSettings},
		{Kind: menu.KindPick, Text: locale.Quit, ID: pickQuit, Goto: menu.GotoExit},
	}
}

func (m *menuModel) settingsMenu() menu.Menu {
	var langs []menu.Choice
	if m.text != nil {
		for i, tag := range m.text.Languages() {
			langs = append(langs, menu.Choice{Raw: locale.LanguageName(tag), Value: i})
		}
	}
	onOff := []menu.Choice{{Text: locale.Off, Value: 0}, {Text: locale.On, Value: 1}}
	rows := menu.Menu{
		{Kind: menu.KindTitle, Text: locale.Settings},
		{Kind: menu.KindSpacer, Height: .75},
		{Kind: menu.KindPick, Text: locale.ConfigureKeyboard, Goto: menuKeyboard},
		{Kind: menu.KindPick, Text: locale.ConfigureGamepad, Goto: menuGamepad},
		{Kind: menu.KindPick, Text: locale.ConfigureMouse, Goto: menuMouse},
		{Kind: menu.KindSpacer},
		{Kind: menu.KindCycler, Text: locale.Music, Callback: m.onVolume,
			Cycler: &menu.Cycler{Value: &m.music, Choices: volumeChoices}},
		{Kind: menu.KindCycler, Text: locale.SFX, Callback: m.onVolume,
			Cycler: &menu.Cycler{Value: &m.sfx, Choices: volumeChoices}},
		{Kind: menu.KindCycler, Text: locale.Fullscreen, Callback: m.onFullscreen,
			Cycler: &menu.Cycler{Value: &m.fullscreen, Choices: onOff}},
	}
	if len(langs) > 1 {
		rows = append(rows, menu.Item{Kind: menu.KindCycler, Text: locale.Language, Callback: m.onLanguage,
			Cycler: &menu.Cycler{Value: &m.language, Choices: langs}})
	}
	return append(rows,
		menu.Item{Kind: menu.KindSpacer},
		menu.Item{Kind: menu.KindPick, Text: locale.Back, Goto: menu.GotoBack},
	)
}

func (m *menuModel) bindingMenu(kind menu.Kind, title, help, reset locale.ID) menu.Menu {
	rows := menu.Menu{
		{Kind: menu.KindTitle, Text: title},
		{Kind: menu.KindSubtitle, Text: help, Height: .75},
		{Kind: menu.KindSpacer, Height: .2},
	}
	for need := input.Need(0); need < input.NumRemappableNeeds; need++ {
		rows = append(rows, menu.Item{Kind: kind, Need: need})
	}
	return append(rows,
		menu.Item{Kind: menu.KindSpacer, Height: .5},
		menu.Item{Kind: menu.KindPick, Text: reset, Callback: m.resetter(kind)},
		menu.Item{Kind: menu.KindPick, Text: locale.Back, Goto: menu.GotoBack},
	)
}

func (m *menuModel) resetter(kind menu.Kind) func(*menu.Nav, *menu.Item) {
	return func(nav *menu.Nav, _ *menu.Item) {
		b := &m.prefs.Bindings
		switch kind {
		case menu.KindKeyBinding:
			b.ResetKeyboard(&m.defaults)
		case menu.KindPadBinding:
			b.ResetGamepad(&m.defaults)
		case menu.KindMouseBinding:
			b.ResetMouse(&m.defaults)
		}
		if nav != nil {
			nav.Relayout()
		}
	}
}

func (m *menuModel) onPlayers(*menu.Nav, *menu.Item) {
	m.prefs.LocalPlayers = m.players
	if m.setPlayers != nil {
		m.setPlayers(m.players)
	}
}

func (m *menuModel) onVolume(*menu.Nav, *menu.Item) {
	m.prefs.MusicVolume, m.prefs.SFXVolume = m.music, m.sfx
	if m.setVolumes != nil {
		m.setVolumes(m.music, m.sfx)
	}
}

func (m *menuModel) onFullscreen(*menu.Nav, *menu.Item) {
	on := m.fullscreen == 1
	m.prefs.Fullscreen = on
	if m.setFullscreen != nil {
		m.setFullscreen(on)
	}
}

func (m *menuModel) onLanguage(nav *menu.Nav, _ *menu.Item) {
	if m.text == nil {
		return
	}
	langs := m.text.Languages()
	if m.language < 0 || m.language >= len(langs) {
		return
	}
	m.text.SetLanguage(langs[m.language])
	m.prefs.Language = langs[m.language].String()
	if nav != nil {
		nav.Relayout()
	}
}

// syncFullscreen mirrors a fullscreen change made outside the menu, such as
// Alt+Enter.
func (m *menuModel) syncFullscreen(on bool) {
	m.prefs.Fullscreen = on
	m.fullscreen = 0
	if on {
		m.fullscreen = 1
	}
}
