package gui

import (
	"github.com/appengine-ltd/retro-rally/internal/audio"
	"github.com/appengine-ltd/retro-rally/internal/menu"
)

type effectPlayer interface {
	Play(audio.Effect)
}

var cueEffects = map[menu.Cue]audio.Effect{
	menu.CueNavigate:   audio.EffectNavigate,
	menu.CueMenuChange: audio.EffectMenuChange,
	menu.CueBack:       audio.EffectBack,
	menu.CueCycle:      audio.EffectCycle,
	menu.CueConfirm:    audio.EffectConfirm,
	menu.CueError:      audio.EffectError,
	menu.CueDelete:     audio.EffectDelete,
}

// cueQueue collects menu sound cues during a frame so that they reach the
// mixer once per frame.
type cueQueue struct {
	ch chan menu.Cue
}

func newCueQueue(size int) *cueQueue {
	if size < 1 {
		size = 16
	}
	return &cueQueue{ch: make(chan menu.Cue, size)}
}

func (q *cueQueue) PlayCue(c menu.Cue) {
	if q == nil {
		return
	}
	select {
	case q.ch <- c:
	default:
		// Saturated: the frame already has plenty of sounds.
	}
}

func (q *cueQueue) Dequeue() (menu.Cue, bool) {
	if q == nil {
		return 0, false
	}
	select {
	case c := <-q.ch:
		return c, true
	default:
		return 0, false
	}
}

// Flush plays every queued cue once, even if it was queued several times,
// and returns how many effects were started.
func (q *cueQueue) Flush(p effectPlayer) int {
	var seen uint32
	played := 0
	for {
		c, ok := q.Dequeue()
		if !ok {
			return played
		}
		if seen&(1<<c) != 0 {
			continue
		}
		seen |= 1 << c
		e, ok := cueEffects[c]
		if !ok || p == nil {
			continue
		}
		p.Play(e)
		played++
	}
}
