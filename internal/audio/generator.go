package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator is a sine tone with an exponential decay envelope.
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64
	pos   int
}

// NewToneGenerator creates a tone at freq Hz. decay is the envelope rate per
// second; larger values die out faster.
func NewToneGenerator(sr beep.SampleRate, freq, decay float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, decay: decay}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.4 * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator glides linearly from one frequency to another over a fixed
// number of samples, then holds the end frequency.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting length samples.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, length int) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, length: max(length, 1)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the glide click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := 1 - 0.8*progress
		sample := 0.3 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ArpeggioGenerator plays a sequence of notes, each noteLen samples long,
// and then repeats it.
type ArpeggioGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
}

// NewArpeggioGenerator creates an arpeggio over notes (Hz).
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, noteLen int) *ArpeggioGenerator {
	return &ArpeggioGenerator{sr: sr, notes: notes, noteLen: max(noteLen, 1)}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if len(g.notes) == 0 {
		clear(samples)
		return len(samples), true
	}

	for i := range samples {
		idx := (g.pos / g.noteLen) % len(g.notes)
		within := g.pos % g.noteLen
		t := float64(within) / float64(g.sr)

		envelope := 1 - float64(within)/float64(g.noteLen)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.notes[idx]*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}

// scale multiplies a streamer's output by a constant gain.
func scale(s beep.Streamer, gain float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		n, ok = s.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		return n, ok
	})
}
