package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Bell returns a struck tone of length d: an A5 fundamental with an octave
// partial under an exponential decay.
func Bell(sr beep.SampleRate, d time.Duration) (beep.Streamer, error) {
	fund, err := generators.SineTone(sr, 880)
	if err != nil {
		return nil, err
	}
	over, err := generators.SineTone(sr, 1760)
	if err != nil {
		return nil, err
	}

	mixed := beep.Mix(
		newVolume(fund, 0.35),
		newVolume(over, 0.15),
	)
	return beep.Take(sr.N(d), &decay{streamer: mixed, rate: sr, k: 6}), nil
}

// Drone returns an endless low fifth that swells and fades every few seconds.
func Drone(sr beep.SampleRate) beep.Streamer {
	return &droneGenerator{
		sr:     sr,
		period: sr.N(6 * time.Second),
	}
}

type droneGenerator struct {
	sr     beep.SampleRate
	pos    int
	period int
}

func (g *droneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		cycle := float64(g.pos%g.period) / float64(g.period)

		swell := 0.6 + 0.4*math.Sin(cycle*2*math.Pi)
		sample := swell * (0.12*math.Sin(2*math.Pi*110*t) + 0.06*math.Sin(2*math.Pi*165*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *droneGenerator) Err() error {
	return nil
}

// decay scales a stream by exp(-k·t)
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	k        float64
	pos      int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-d.k * float64(d.pos) / float64(d.rate))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is silenced instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
