package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Effect names one of the short menu sounds.
type Effect int

const (
	EffectNavigate Effect = iota
	EffectMenuChange
	EffectBack
	EffectCycle
	EffectConfirm
	EffectError
	EffectDelete
	numEffects
)

var effectNames = [numEffects]string{
	EffectNavigate:   "navigate",
	EffectMenuChange: "menu-change",
	EffectBack:       "back",
	EffectCycle:      "cycle",
	EffectConfirm:    "confirm",
	EffectError:      "error",
	EffectDelete:     "delete",
}

func (e Effect) String() string {
	if e >= 0 && e < numEffects {
		return effectNames[e]
	}
	return "unknown"
}

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear gain. Log2(0) is -Inf, so zero
// becomes a silent stream.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

func tone(freq float64, d time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(freq, d, wave, rate), d, 4*time.Millisecond, d/2, rate)
}

// newEffect synthesizes one menu sound at unity gain.
func newEffect(e Effect, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch e {
	case EffectNavigate:
		return tone(660, 40*ms, waveSquare, rate)
	case EffectMenuChange:
		return beep.Seq(tone(523.25, 50*ms, waveSquare, rate), tone(783.99, 70*ms, waveSquare, rate))
	case EffectBack:
		return beep.Seq(tone(783.99, 50*ms, waveSquare, rate), tone(523.25, 70*ms, waveSquare, rate))
	case EffectCycle:
		return tone(880, 35*ms, waveSine, rate)
	case EffectConfirm:
		return beep.Mix(
			newVolume(tone(987.77, 120*ms, waveSine, rate), .7),
			newVolume(tone(1975.5, 120*ms, waveSine, rate), .3),
		)
	case EffectError:
		return tone(110, 150*ms, waveSaw, rate)
	case EffectDelete:
		return newEnvelope(newOscillator(0, 90*ms, waveNoise, rate), 90*ms, 2*ms, 60*ms, rate)
	}
	return nil
}
