package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// arpeggio loops a minor chord progression with a kick on every bar. It
// never ends.
type arpeggio struct {
	rate beep.SampleRate
	pos  int
	step int
}

var arpeggioChords = [][3]float64{
	{220.00, 261.63, 329.63},
	{174.61, 220.00, 261.63},
	{196.00, 246.94, 293.66},
	{164.81, 207.65, 246.94},
}

const arpeggioStep = 150 * time.Millisecond

func newArpeggio(rate beep.SampleRate) *arpeggio {
	return &arpeggio{rate: rate, step: rate.N(arpeggioStep)}
}

func (a *arpeggio) Stream(samples [][2]float64) (n int, ok bool) {
	perBar := a.step * 8
	for i := range samples {
		bar := (a.pos / perBar) % len(arpeggioChords)
		note := (a.pos / a.step) % 3
		inStep := a.pos % a.step
		t := float64(inStep) / float64(a.rate)

		freq := arpeggioChords[bar][note] * 2
		env := math.Exp(-t * 18)
		v := .25 * env * squareish(freq*t)

		bass := .15 * math.Sin(2*math.Pi*arpeggioChords[bar][0]/2*float64(a.pos)/float64(a.rate))

		kick := 0.0
		if inBar := a.pos % perBar; inBar < a.step {
			kt := float64(inBar) / float64(a.rate)
			kenv := math.Exp(-kt * 30)
			kick = .4 * kenv * math.Sin(2*math.Pi*(55+110*kenv)*kt)
		}

		s := v + bass + kick
		samples[i][0] = s
		samples[i][1] = s
		a.pos++
	}
	return len(samples), true
}

func (a *arpeggio) Err() error { return nil }

// squareish is a soft square wave made of its first odd harmonics.
func squareish(phase float64) float64 {
	x := 2 * math.Pi * phase
	return math.Sin(x) + math.Sin(3*x)/3 + math.Sin(5*x)/5
}
