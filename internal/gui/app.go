package gui

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/appengine-ltd/retro-rally/internal/audio"
	"github.com/appengine-ltd/retro-rally/internal/gui/theme"
	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/locale"
	"github.com/appengine-ltd/retro-rally/internal/menu"
	"github.com/appengine-ltd/retro-rally/internal/platform"
	"github.com/appengine-ltd/retro-rally/internal/prefs"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	PrefsPath string
	Windowed  bool
	NoAudio   bool

	// Players and Language override the saved preferences when set.
	Players  int
	Language string

	Logger *log.Logger
}

type App struct {
	cfg AppConfig
	log *log.Logger
}

func NewApp(cfg AppConfig) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &App{cfg: cfg, log: logger}
}

// session is everything one run of the game window shares.
type session struct {
	log      *log.Logger
	prefs    *prefs.Prefs
	style    menu.Style
	sys      *input.System
	text     *locale.Catalog
	audio    *audio.Player
	cues     *cueQueue
	renderer *menuRenderer
	model    *menuModel
	nav      *menu.Nav
	clock    float32
}

func (a *App) Run() error {
	store := prefs.NewStore(a.cfg.PrefsPath)
	p, err := store.Load()
	if err != nil {
		// Broken entries already fell back to their defaults.
		a.log.Printf("prefs %s: %v", store.Path(), err)
	}
	applyOverrides(&p, a.cfg)

	text, err := locale.New()
	if err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	if err := text.SetLanguageName(p.Language); err != nil {
		a.log.Printf("prefs: %v", err)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(1280, 720, text.Localize(locale.GameTitle))
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()
	defer shutdownTypography()
	theme.InitSkin()
	defer theme.UnloadSkin()
	if p.Fullscreen && !rl.IsWindowFullscreen() {
		rl.ToggleFullscreen()
	}

	pads, err := platform.OpenJoysticks(a.log)
	if err != nil {
		a.log.Printf("gamepads unavailable: %v", err)
	} else {
		defer pads.Close()
	}

	s := &session{
		log:      a.log,
		prefs:    &p,
		text:     text,
		cues:     newCueQueue(16),
		renderer: newMenuRenderer(),
		style:    menu.DefaultStyle(),
	}
	if err := p.Colors.Apply(&s.style); err != nil {
		a.log.Printf("prefs: %v", err)
	}

	s.sys = input.NewSystem(platform.NewBackend(pads), &p.Bindings, input.Config{
		DeadZone:         p.DeadZone,
		UIDeadZone:       p.UIDeadZone,
		LocalPlayers:     p.LocalPlayers,
		ToggleFullscreen: s.toggleFullscreen,
		Logger:           a.log,
	})
	defer s.sys.Close()
	s.sys.ScanDevices()

	s.audio = audio.NewPlayer(audio.Config{
		Disabled:    a.cfg.NoAudio,
		MusicVolume: p.MusicVolume,
		SFXVolume:   p.SFXVolume,
		Logger:      a.log,
	})
	if err := s.audio.Init(); err != nil && !errors.Is(err, audio.ErrDisabled) {
		a.log.Printf("audio unavailable: %v", err)
	}
	defer s.audio.Close()

	s.model = newMenuModel(&p, text)
	s.model.setPlayers = s.sys.SetNumLocalPlayers
	s.model.setVolumes = s.audio.SetVolumes
	s.model.setFullscreen = s.setFullscreen

	err = s.loop()
	if serr := store.Save(p); serr != nil {
		a.log.Printf("prefs: %v", serr)
	}
	if errors.Is(err, input.ErrQuit) {
		return nil
	}
	return err
}

// applyOverrides folds command line choices into the loaded preferences.
// Windowed also clears the saved fullscreen choice.
func applyOverrides(p *prefs.Prefs, cfg AppConfig) {
	if cfg.Players > 0 {
		p.LocalPlayers = min(cfg.Players, input.MaxLocalPlayers)
	}
	if cfg.Language != "" {
		p.Language = cfg.Language
	}
	if cfg.Windowed {
		p.Fullscreen = false
	}
}

func (s *session) loop() error {
	for {
		s.audio.StartMusic()
		s.nav = menu.New(s.model.tree(), &s.style, menu.Deps{
			Input:     s.sys,
			Sound:     s.cues,
			Text:      s.text,
			Render:    s.renderer,
			Bindings:  &s.prefs.Bindings,
			FrameTime: rl.GetFrameTime,
		})
		pick, err := s.nav.Run(s.update, s.background)
		s.nav = nil
		s.cues.Flush(s.audio)
		if err != nil {
			return err
		}
		if pick != pickPlay {
			return nil
		}
		if err := s.drive(); err != nil {
			return err
		}
	}
}

func (s *session) update(dt float32) {
	s.clock += dt
	s.cues.Flush(s.audio)
	switch pollHotkey(s.sys, s.nav) {
	case hotkeyQuit:
		s.nav.Kill(pickQuit)
	case hotkeyMusicDown:
		s.nudgeMusic(-volumeStep)
	case hotkeyMusicUp:
		s.nudgeMusic(volumeStep)
	}
}

func (s *session) nudgeMusic(delta int) {
	s.model.music = snapVolume(s.model.music + delta)
	s.model.onVolume(nil, nil)
	if s.nav != nil && s.nav.Menu() == menuSettings {
		s.nav.Relayout()
	}
}

// background draws the track behind the menus with a slow scrolling kerb.
func (s *session) background() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	inner := theme.DrawTrack(w, h)
	const dash = 48
	offset := float32(math.Mod(float64(s.clock*90), dash*2))
	for y := inner.Y - dash*2 + offset; y < inner.Y+inner.Height; y += dash * 2 {
		rl.DrawRectangleRec(rl.NewRectangle(inner.X+inner.Width/2-4, y, 8, dash), rl.Fade(theme.TextMuted, 0.35))
	}
}

func (s *session) drive() error {
	s.sys.LockPlayerControllerMapping()
	defer s.sys.UnlockPlayerControllerMapping()
	s.audio.StopMusic()

	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	scene := newDriveScene(s.sys.NumLocalPlayers(), theme.TrackBounds(w, h))
	labels := make([]string, len(scene.cars))
	for {
		if err := s.sys.Poll(); err != nil {
			return err
		}
		if pollHotkey(s.sys, nil) == hotkeyQuit {
			return input.ErrQuit
		}
		dt := rl.GetFrameTime()
		w, h = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		scene.bounds = theme.TrackBounds(w, h)
		if scene.step(s.sys, dt) {
			s.audio.Play(audio.EffectBack)
			s.sys.InvalidateAllInputs()
			return nil
		}
		rows := roster(s.text, s.sys, len(scene.cars))
		for i := range labels {
			labels[i] = rows[i].Name
		}

		rl.BeginDrawing()
		rl.ClearBackground(theme.BG)
		theme.DrawTrack(w, h)
		scene.draw(labels)
		drawRoster(s.text.Localize(locale.GameTitle), rows, int32(theme.PaddingM)+16, int32(theme.PaddingM)+16)
		s.renderer.DrawLeftovers(dt)
		theme.DrawHintText(s.text.Localize(locale.DriveHelp), int32(theme.PaddingM)+16, h-theme.Type.Small-int32(theme.PaddingM)-16)
		rl.EndDrawing()
	}
}

func (s *session) toggleFullscreen() {
	rl.ToggleFullscreen()
	s.model.syncFullscreen(rl.IsWindowFullscreen())
	if s.nav != nil && s.nav.Menu() == menuSettings {
		s.nav.Relayout()
	}
}

func (s *session) setFullscreen(on bool) {
	if rl.IsWindowFullscreen() != on {
		rl.ToggleFullscreen()
	}
}
