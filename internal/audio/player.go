// Package audio plays the menu sound effects and the looping menu music.
// Every sound is synthesized, so there are no assets to ship.
package audio

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	DefaultSampleRate = beep.SampleRate(48000)
	MaxVolume         = 100
)

var ErrDisabled = errors.New("audio: disabled")

type Config struct {
	SampleRate  beep.SampleRate
	Disabled    bool
	MusicVolume int
	SFXVolume   int
	Logger      *log.Logger
}

// Player owns the speaker. Until Init succeeds every method is a no-op, so
// a machine without an audio device still runs the game.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	log         *log.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVol    *effects.Volume
	initialized bool

	musicVolume int
	sfxVolume   int
}

func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	p := &Player{
		cfg:         cfg,
		log:         cfg.Logger,
		mixer:       &beep.Mixer{},
		musicVolume: clampVolume(cfg.MusicVolume),
		sfxVolume:   clampVolume(cfg.SFXVolume),
	}
	if p.log == nil {
		p.log = log.Default()
	}
	return p
}

// Init opens the speaker. It is safe to call again after success.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cfg.Disabled {
		return ErrDisabled
	}
	if p.initialized {
		return nil
	}
	rate := p.cfg.SampleRate
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Printf("audio: speaker ready at %d Hz", int(rate))
	return nil
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.music, p.musicVol = nil, nil
	p.initialized = false
}

// Play starts an effect at the current effect volume.
func (p *Player) Play(e Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.sfxVolume == 0 {
		return
	}
	s := newEffect(e, p.cfg.SampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(newVolume(s, gain(p.sfxVolume)))
	speaker.Unlock()
}

// StartMusic starts the menu loop, or resumes it if paused.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if p.music != nil {
		p.music.Paused = false
		return
	}
	p.musicVol = newVolume(newArpeggio(p.cfg.SampleRate), gain(p.musicVolume))
	p.music = &beep.Ctrl{Streamer: p.musicVol}
	p.mixer.Add(p.music)
}

func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// SetVolumes takes both volumes on a 0..100 scale.
func (p *Player) SetVolumes(music, sfx int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicVolume = clampVolume(music)
	p.sfxVolume = clampVolume(sfx)
	if p.musicVol == nil {
		return
	}
	speaker.Lock()
	applyGain(p.musicVol, gain(p.musicVolume))
	speaker.Unlock()
}

func (p *Player) Volumes() (music, sfx int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicVolume, p.sfxVolume
}

func clampVolume(v int) int {
	return min(max(v, 0), MaxVolume)
}

func gain(volume int) float64 {
	return float64(volume) / MaxVolume
}

func applyGain(v *effects.Volume, g float64) {
	fresh := newVolume(nil, g)
	v.Volume = fresh.Volume
	v.Silent = fresh.Silent
}
