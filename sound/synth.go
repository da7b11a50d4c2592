package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/meghashyamc/pong2d/game"
)

// tone is one segment of a cue
type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[game.Cue][]tone{
	game.CueHit:  {{freq: 440, duration: 60 * time.Millisecond}},
	game.CueWall: {{freq: 220, duration: 50 * time.Millisecond}},
	game.CueGoal: {
		{freq: 660, duration: 120 * time.Millisecond},
		{freq: 330, duration: 220 * time.Millisecond},
	},
}

const (
	attack  = 5 * time.Millisecond
	release = 30 * time.Millisecond
)

// Synthesize builds the streamer for a cue at the given volume (0..1).
func Synthesize(cue game.Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	tones, ok := cueTones[cue]
	if !ok {
		return nil, fmt.Errorf("no tones for cue %s", cue)
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, tn := range tones {
		sine, err := generators.SineTone(rate, tn.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to create %v Hz tone for cue %s: %w", tn.freq, cue, err)
		}
		shaped := newEnvelope(beep.Take(rate.N(tn.duration), sine), tn.duration, attack, release, rate)
		parts = append(parts, shaped)
	}

	return newVolume(beep.Seq(parts...), volume), nil
}

// Duration is how long a cue lasts.
func Duration(cue game.Cue) time.Duration {
	var total time.Duration
	for _, tn := range cueTones[cue] {
		total += tn.duration
	}
	return total
}

// envelope fades a stream in and out to avoid clicks
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear 0..1 volume onto beep's exponential volume.
// math.Log2(0) is -Inf, so zero is handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	if vol > 1 {
		vol = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
