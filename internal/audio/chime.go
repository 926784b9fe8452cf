package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	chimeLength = 180 * time.Millisecond
	baseFreq    = 440.0
)

// Chime plays a short tone each time a node settles.
type Chime struct {
	sr    beep.SampleRate
	mixer *beep.Mixer
}

// NewChime opens the audio device and starts an always-running mixer.
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	c := &Chime{sr: sampleRate, mixer: &beep.Mixer{}}
	speaker.Play(c.mixer)
	return c, nil
}

// Play queues the tone for node index. Higher nodes sound higher.
func (c *Chime) Play(index int) {
	s := beep.Take(c.sr.N(chimeLength), NewToneGenerator(c.sr, NoteFreq(index)))
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// NoteFreq walks a whole-tone scale up from A4.
func NoteFreq(index int) float64 {
	return baseFreq * math.Pow(2, float64(2*index)/12)
}

// ToneGenerator is a sine with a fast attack and exponential decay.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.6*math.Sin(2*math.Pi*g.freq*t) + 0.2*math.Sin(4*math.Pi*g.freq*t)

		attack := math.Min(t/0.005, 1.0)
		sample *= attack * math.Exp(-t/0.05) * 0.3

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
