package gui

import (
	"io"
	"log"
	"testing"

	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/input/inputtest"
	"github.com/appengine-ltd/retro-rally/internal/locale"
	"github.com/appengine-ltd/retro-rally/internal/menu"
	"github.com/appengine-ltd/retro-rally/internal/prefs"
	"golang.org/x/text/language"
)

type fakeLanguages struct {
	tags []language.Tag
	cur  int
}

func (f *fakeLanguages) Languages() []language.Tag { return f.tags }
func (f *fakeLanguages) LanguageIndex() int        { return f.cur }
func (f *fakeLanguages) SetLanguage(tag language.Tag) {
	for i, t := range f.tags {
		if t == tag {
			f.cur = i
		}
	}
}

func TestMenuTreeValidates(t *testing.T) {
	p := prefs.Default()
	text, err := locale.New()
	if err != nil {
		t.Fatalf("locale: %v", err)
	}
	tree := newMenuModel(&p, text).tree()
	if err := tree.Validate(); err != nil {
		t.Fatalf("menu tree invalid: %v", err)
	}
	for _, id := range []menu.ID{menuKeyboard, menuGamepad, menuMouse} {
		count := 0
		for _, it := range tree[id] {
			if it.Kind == menu.KindKeyBinding || it.Kind == menu.KindPadBinding || it.Kind == menu.KindMouseBinding {
				count++
			}
		}
		if count != int(input.NumRemappableNeeds) {
			t.Fatalf("menu %v: expected %d binding rows, got %d", id, input.NumRemappableNeeds, count)
		}
	}
}

func TestSnapVolume(t *testing.T) {
	cases := map[int]int{-5: 0, 0: 0, 9: 0, 10: 20, 55: 60, 80: 80, 99: 100, 140: 100}
	for in, want := range cases {
		if got := snapVolume(in); got != want {
			t.Fatalf("snapVolume(%d): expected %d got %d", in, want, got)
		}
	}
}

func TestModelCallbacksUpdatePrefs(t *testing.T) {
	p := prefs.Default()
	langs := &fakeLanguages{tags: []language.Tag{language.English, language.French}}
	m := newMenuModel(&p, langs)

	var players, music, sfx int
	var fullscreen bool
	m.setPlayers = func(n int) { players = n }
	m.setVolumes = func(mu, fx int) { music, sfx = mu, fx }
	m.setFullscreen = func(on bool) { fullscreen = on }

	m.players = 3
	m.onPlayers(nil, nil)
	if players != 3 || p.LocalPlayers != 3 {
		t.Fatalf("expected 3 players, got hook=%d prefs=%d", players, p.LocalPlayers)
	}

	m.music, m.sfx = 20, 100
	m.onVolume(nil, nil)
	if music != 20 || sfx != 100 || p.MusicVolume != 20 || p.SFXVolume != 100 {
		t.Fatalf("volumes not applied: hook=%d/%d prefs=%d/%d", music, sfx, p.MusicVolume, p.SFXVolume)
	}

	m.fullscreen = 1
	m.onFullscreen(nil, nil)
	if !fullscreen || !p.Fullscreen {
		t.Fatalf("expected fullscreen on")
	}
	m.syncFullscreen(false)
	if m.fullscreen != 0 || p.Fullscreen {
		t.Fatalf("expected external fullscreen change mirrored")
	}

	m.language = 1
	m.onLanguage(nil, nil)
	if langs.cur != 1 || p.Language != "fr" {
		t.Fatalf("expected french, got index %d prefs %q", langs.cur, p.Language)
	}
}

func TestResetRestoresOnlyOneDeviceFamily(t *testing.T) {
	p := prefs.Default()
	m := newMenuModel(&p, nil)
	defaults := input.DefaultBindings()

	p.Bindings.AssignKey(input.NeedBrakes, 0, input.KeyZ)
	p.Bindings.ClearPad(input.NeedBrakes, 0)
	m.resetter(menu.KindKeyBinding)(nil, nil)
	if p.Bindings[input.NeedBrakes].Keys != defaults[input.NeedBrakes].Keys {
		t.Fatalf("keyboard reset did not restore brakes")
	}
	if p.Bindings[input.NeedBrakes].Pad == defaults[input.NeedBrakes].Pad {
		t.Fatalf("keyboard reset should leave pad bindings alone")
	}
	m.resetter(menu.KindPadBinding)(nil, nil)
	if p.Bindings[input.NeedBrakes].Pad != defaults[input.NeedBrakes].Pad {
		t.Fatalf("gamepad reset did not restore brakes")
	}
}

func TestPlayersCyclerDrivesInputSystem(t *testing.T) {
	p := prefs.Default()
	text, err := locale.New()
	if err != nil {
		t.Fatalf("locale: %v", err)
	}
	be := inputtest.New()
	sys := input.NewSystem(be, &p.Bindings, input.Config{Logger: log.New(io.Discard, "", 0)})
	m := newMenuModel(&p, text)
	m.setPlayers = sys.SetNumLocalPlayers

	nav := menu.New(m.tree(), nil, menu.Deps{Input: sys, Text: text, Bindings: &p.Bindings})
	step := func() {
		t.Helper()
		if err := nav.Step(1.0 / 60); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	tap := func(k input.Key) {
		t.Helper()
		be.Press(k)
		step()
		be.Release(k)
		step()
	}

	nav.Start()
	for i := 0; i < 200 && nav.State() == menu.StateFadeIn; i++ {
		step()
	}
	if nav.Row() != 2 {
		t.Fatalf("expected Play selected first, got row %d", nav.Row())
	}
	tap(input.KeyDown)
	tap(input.KeyRight)
	if sys.NumLocalPlayers() != 2 || p.LocalPlayers != 2 {
		t.Fatalf("expected 2 local players, got system=%d prefs=%d", sys.NumLocalPlayers(), p.LocalPlayers)
	}
	if got := nav.Node(3, 0).Text; got != "Players: 2" {
		t.Fatalf("unexpected players row %q", got)
	}

	tap(input.KeyDown)
	tap(input.KeyEnter)
	if nav.Menu() != menuSettings {
		t.Fatalf("expected settings menu, got %v", nav.Menu())
	}
}

func prefsWith(players int, lang string, fullscreen bool) prefs.Prefs {
	p := prefs.Default()
	p.LocalPlayers = players
	p.Language = lang
	p.Fullscreen = fullscreen
	return p
}
